//go:build !js

package clipboard

import (
	"encoding/json"
	"log/slog"

	sysclip "github.com/atotto/clipboard"

	"github.com/sketchwell/sketchwell/engine-go/internal/document"
)

// writeSystem mirrors the snapshot to the OS clipboard. Best effort: a
// headless environment without a clipboard is not an error.
func (c *Clipboard) writeSystem() {
	if !c.useSystem {
		return
	}
	data, err := json.Marshal(envelope{Source: document.SourceTag, Shapes: c.shapes})
	if err != nil {
		return
	}
	if err := sysclip.WriteAll(string(data)); err != nil {
		slog.Debug("system clipboard write failed", "error", err)
	}
}

// readSystem replaces the snapshot with OS clipboard content when it holds
// a shape envelope from this engine.
func (c *Clipboard) readSystem() {
	if !c.useSystem {
		return
	}
	text, err := sysclip.ReadAll()
	if err != nil || text == "" {
		return
	}
	var env envelope
	if err := json.Unmarshal([]byte(text), &env); err != nil {
		return
	}
	if env.Source != document.SourceTag || len(env.Shapes) == 0 {
		return
	}
	c.shapes = env.Shapes
}

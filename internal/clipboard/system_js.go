//go:build js

package clipboard

// The OS clipboard bridge has no wasm implementation; the browser host owns
// clipboard access there. In-engine copy/paste works off the snapshot alone.

func (c *Clipboard) writeSystem() {}

func (c *Clipboard) readSystem() {}

package session

import "encoding/json"

// Message is the websocket envelope in both directions.
type Message struct {
	Type      string          `json:"type"`
	DocID     string          `json:"docId,omitempty"`
	SessionID string          `json:"sessionId,omitempty"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

const (
	// Client → server
	TypePointerDown = "pointer.down"
	TypePointerMove = "pointer.move"
	TypePointerUp   = "pointer.up"
	TypeKeyDown     = "key.down"
	TypeToolSet     = "tool.set"
	TypeCommand     = "command"
	TypeDocLoad     = "doc.load"

	// Server → client
	TypeWelcome = "welcome"
	TypeDocSync = "doc.sync"
	TypeError   = "error"
)

// PointerPayload carries one pointer sample in canvas coordinates.
type PointerPayload struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Shift bool    `json:"shift,omitempty"`
	Alt   bool    `json:"alt,omitempty"`
	Ctrl  bool    `json:"ctrl,omitempty"`
}

// KeyPayload carries one engine-relevant key press.
type KeyPayload struct {
	Key   string `json:"key"`
	Shift bool   `json:"shift,omitempty"`
}

// ToolPayload selects the active tool.
type ToolPayload struct {
	Tool string `json:"tool"`
}

// CommandPayload invokes one named editor command (undo, redo, copy, paste,
// group, alignLeft, bringToFront, ...).
type CommandPayload struct {
	Name string `json:"name"`
}

// SyncPayload is the full engine state pushed after every applied message.
type SyncPayload struct {
	Document   json.RawMessage `json:"document"`
	Selection  []string        `json:"selection"`
	ActiveTool string          `json:"activeTool"`
	CanUndo    bool            `json:"canUndo"`
	CanRedo    bool            `json:"canRedo"`
}

// ErrorPayload reports a rejected message.
type ErrorPayload struct {
	Reason string `json:"reason"`
}

// WelcomePayload greets a new client with its session id.
type WelcomePayload struct {
	SessionID string `json:"sessionId"`
	DocID     string `json:"docId"`
}

// Package session exposes an editor over a websocket: pointer, keyboard and
// command messages flow in, full document syncs flow out. Each document is
// served by exactly one Editor; message handling is serialized per document
// so the engine keeps its single-writer discipline.
package session

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/sketchwell/sketchwell/engine-go/internal/editor"
	"github.com/sketchwell/sketchwell/engine-go/internal/geometry"
	"github.com/sketchwell/sketchwell/engine-go/internal/tool"
)

// Room pairs one editor with the clients viewing it. mu serializes all
// engine access for the document.
type Room struct {
	mu      sync.Mutex
	docID   string
	editor  *editor.Editor
	clients map[string]*Client
}

func NewRoom(docID string, ed *editor.Editor) *Room {
	return &Room{
		docID:   docID,
		editor:  ed,
		clients: make(map[string]*Client),
	}
}

// Hub owns the rooms and registers clients onto them.
type Hub struct {
	mu         sync.RWMutex
	rooms      map[string]*Room
	newEditor  func() *editor.Editor
	register   chan *Client
	unregister chan *Client
}

func NewHub(newEditor func() *editor.Editor) *Hub {
	return &Hub{
		rooms:      make(map[string]*Room),
		newEditor:  newEditor,
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.addClient(client)
		case client := <-h.unregister:
			h.removeClient(client)
		}
	}
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

// CreateDocument opens an empty document and returns its room.
func (h *Hub) CreateDocument() *Room {
	ed := h.newEditor()
	room := NewRoom(ed.ID(), ed)
	h.mu.Lock()
	h.rooms[ed.ID()] = room
	h.mu.Unlock()
	return room
}

// Room looks up a document's room.
func (h *Hub) Room(docID string) (*Room, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	room, ok := h.rooms[docID]
	return room, ok
}

func (r *Room) DocID() string { return r.docID }

// Export serializes the room's document under the room lock.
func (r *Room) Export() ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.editor.SaveDocument()
}

// Import replaces the room's document under the room lock and syncs all
// clients on success.
func (r *Room) Import(data []byte) error {
	r.mu.Lock()
	err := r.editor.LoadDocument(data)
	r.mu.Unlock()
	if err != nil {
		return err
	}
	r.broadcastSync("")
	return nil
}

func (h *Hub) addClient(client *Client) {
	h.mu.RLock()
	room, ok := h.rooms[client.DocID]
	h.mu.RUnlock()
	if !ok {
		client.Send(errorMessage("unknown document"))
		close(client.send)
		return
	}

	room.mu.Lock()
	room.clients[client.SessionID] = client
	room.mu.Unlock()

	welcome, _ := json.Marshal(WelcomePayload{SessionID: client.SessionID, DocID: client.DocID})
	client.Send(&Message{Type: TypeWelcome, DocID: client.DocID, Payload: welcome})
	if msg := room.syncMessage(); msg != nil {
		client.Send(msg)
	}

	slog.Info("client joined", "session", client.SessionID, "doc", client.DocID)
}

func (h *Hub) removeClient(client *Client) {
	h.mu.RLock()
	room, ok := h.rooms[client.DocID]
	h.mu.RUnlock()
	if !ok {
		return
	}

	room.mu.Lock()
	if _, present := room.clients[client.SessionID]; present {
		delete(room.clients, client.SessionID)
		close(client.send)
	}
	empty := len(room.clients) == 0
	room.mu.Unlock()

	slog.Info("client left", "session", client.SessionID, "doc", client.DocID)

	// The last client leaving tears the room down; the document lives on
	// only if it was exported.
	if empty {
		h.mu.Lock()
		delete(h.rooms, client.DocID)
		h.mu.Unlock()
		slog.Info("room closed", "doc", client.DocID)
	}
}

func (h *Hub) handleMessage(sender *Client, msg *Message) {
	h.mu.RLock()
	room, ok := h.rooms[msg.DocID]
	h.mu.RUnlock()
	if !ok {
		sender.Send(errorMessage("unknown document"))
		return
	}

	room.mu.Lock()
	err := room.apply(msg)
	room.mu.Unlock()

	if err != nil {
		payload, _ := json.Marshal(ErrorPayload{Reason: err.Error()})
		sender.Send(&Message{Type: TypeError, DocID: msg.DocID, Payload: payload})
		return
	}
	room.broadcastSync("")
}

// apply dispatches one message to the editor. Caller holds the room lock.
func (r *Room) apply(msg *Message) error {
	switch msg.Type {
	case TypePointerDown, TypePointerMove, TypePointerUp:
		var p PointerPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return err
		}
		ev := tool.PointerEvent{
			Point: geometry.Point{X: p.X, Y: p.Y},
			Shift: p.Shift,
			Alt:   p.Alt,
			Ctrl:  p.Ctrl,
		}
		switch msg.Type {
		case TypePointerDown:
			r.editor.PointerDown(ev)
		case TypePointerMove:
			r.editor.PointerMove(ev)
		case TypePointerUp:
			r.editor.PointerUp(ev)
		}
	case TypeKeyDown:
		var k KeyPayload
		if err := json.Unmarshal(msg.Payload, &k); err != nil {
			return err
		}
		r.editor.KeyDown(tool.KeyEvent{Key: k.Key, Shift: k.Shift})
	case TypeToolSet:
		var t ToolPayload
		if err := json.Unmarshal(msg.Payload, &t); err != nil {
			return err
		}
		r.editor.SetTool(tool.Type(t.Tool))
	case TypeCommand:
		var c CommandPayload
		if err := json.Unmarshal(msg.Payload, &c); err != nil {
			return err
		}
		r.runCommand(c.Name)
	case TypeDocLoad:
		return r.editor.LoadDocument(msg.Payload)
	default:
		slog.Warn("unknown message type", "type", msg.Type, "session", msg.SessionID)
	}
	return nil
}

func (r *Room) runCommand(name string) {
	switch name {
	case "undo":
		r.editor.Undo()
	case "redo":
		r.editor.Redo()
	case "copy":
		r.editor.CopySelectedShapes()
	case "cut":
		r.editor.CutSelectedShapes()
	case "paste":
		r.editor.PasteShapes()
	case "duplicate":
		r.editor.DuplicateShapes()
	case "delete":
		r.editor.DeleteSelectedShapes()
	case "selectAll":
		r.editor.SelectAll()
	case "group":
		r.editor.GroupSelectedShapes()
	case "ungroup":
		r.editor.UngroupSelectedShapes()
	case "alignLeft":
		r.editor.AlignLeft()
	case "alignRight":
		r.editor.AlignRight()
	case "alignTop":
		r.editor.AlignTop()
	case "alignBottom":
		r.editor.AlignBottom()
	case "alignCenterH":
		r.editor.AlignCenterH()
	case "alignCenterV":
		r.editor.AlignCenterV()
	case "distributeH":
		r.editor.DistributeHorizontally()
	case "distributeV":
		r.editor.DistributeVertically()
	case "bringToFront":
		r.editor.BringToFront()
	case "sendToBack":
		r.editor.SendToBack()
	case "bringForward":
		r.editor.BringForward()
	case "sendBackward":
		r.editor.SendBackward()
	default:
		slog.Warn("unknown command", "name", name, "doc", r.docID)
	}
}

// syncMessage snapshots the engine state for clients. Caller need not hold
// the lock; it is taken here.
func (r *Room) syncMessage() *Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, err := r.editor.SaveDocument()
	if err != nil {
		slog.Error("serialize document", "error", err, "doc", r.docID)
		return nil
	}
	payload, _ := json.Marshal(SyncPayload{
		Document:   doc,
		Selection:  r.editor.Store().SelectedIDs(),
		ActiveTool: string(r.editor.ActiveTool()),
		CanUndo:    r.editor.CanUndo(),
		CanRedo:    r.editor.CanRedo(),
	})
	return &Message{Type: TypeDocSync, DocID: r.docID, Payload: payload}
}

func (r *Room) broadcastSync(excludeSessionID string) {
	msg := r.syncMessage()
	if msg == nil {
		return
	}
	r.mu.Lock()
	clients := make([]*Client, 0, len(r.clients))
	for _, c := range r.clients {
		if c.SessionID != excludeSessionID {
			clients = append(clients, c)
		}
	}
	r.mu.Unlock()

	for _, c := range clients {
		c.Send(msg)
	}
}

func errorMessage(reason string) *Message {
	payload, _ := json.Marshal(ErrorPayload{Reason: reason})
	return &Message{Type: TypeError, Payload: payload}
}

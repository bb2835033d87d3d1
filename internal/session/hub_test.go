package session

import (
	"encoding/json"
	"testing"

	"github.com/sketchwell/sketchwell/engine-go/internal/editor"
	"github.com/sketchwell/sketchwell/engine-go/internal/shape"
	"github.com/sketchwell/sketchwell/engine-go/internal/tool"
)

func newTestHub() *Hub {
	return NewHub(func() *editor.Editor { return editor.New(editor.Options{}) })
}

func payload(t *testing.T, v any) json.RawMessage {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func TestHubCreateAndLookup(t *testing.T) {
	h := newTestHub()
	room := h.CreateDocument()

	got, ok := h.Room(room.DocID())
	if !ok || got != room {
		t.Fatal("created room not found by id")
	}
	if _, ok := h.Room("doc_missing"); ok {
		t.Error("unknown id must not resolve")
	}
}

func TestRoomAppliesPointerGesture(t *testing.T) {
	h := newTestHub()
	room := h.CreateDocument()

	msgs := []*Message{
		{Type: TypeToolSet, Payload: payload(t, ToolPayload{Tool: "rectangle"})},
		{Type: TypePointerDown, Payload: payload(t, PointerPayload{X: 0, Y: 0})},
		{Type: TypePointerMove, Payload: payload(t, PointerPayload{X: 40, Y: 30})},
		{Type: TypePointerUp, Payload: payload(t, PointerPayload{X: 40, Y: 30})},
	}
	for _, msg := range msgs {
		if err := room.apply(msg); err != nil {
			t.Fatalf("apply(%s): %v", msg.Type, err)
		}
	}

	if room.editor.Store().Len() != 1 {
		t.Error("gesture messages did not create a shape")
	}
	if room.editor.ActiveTool() != tool.TypeRectangle {
		t.Error("tool.set message not applied")
	}
}

func TestRoomAppliesCommands(t *testing.T) {
	h := newTestHub()
	room := h.CreateDocument()

	a := shape.New(shape.TypeRectangle)
	a.Width, a.Height = 10, 10
	room.editor.Store().AddShape(a, true)

	undo := &Message{Type: TypeCommand, Payload: payload(t, CommandPayload{Name: "undo"})}
	if err := room.apply(undo); err != nil {
		t.Fatal(err)
	}
	if room.editor.Store().Len() != 0 {
		t.Error("undo command not applied")
	}

	redo := &Message{Type: TypeCommand, Payload: payload(t, CommandPayload{Name: "redo"})}
	if err := room.apply(redo); err != nil {
		t.Fatal(err)
	}
	if room.editor.Store().Len() != 1 {
		t.Error("redo command not applied")
	}
}

func TestRoomRejectsBadPayload(t *testing.T) {
	h := newTestHub()
	room := h.CreateDocument()
	msg := &Message{Type: TypePointerDown, Payload: json.RawMessage(`"nope"`)}
	if err := room.apply(msg); err == nil {
		t.Error("malformed payload must error")
	}
}

func TestRoomImportValidates(t *testing.T) {
	h := newTestHub()
	room := h.CreateDocument()
	if err := room.Import([]byte(`{"source":"other"}`)); err == nil {
		t.Error("foreign document must be rejected")
	}

	data, err := room.Export()
	if err != nil {
		t.Fatal(err)
	}
	if err := room.Import(data); err != nil {
		t.Errorf("round-tripped document rejected: %v", err)
	}
}

func TestSyncMessageSnapshotsState(t *testing.T) {
	h := newTestHub()
	room := h.CreateDocument()
	a := shape.New(shape.TypeRectangle)
	a.Width, a.Height = 10, 10
	room.editor.Store().AddShape(a, true)
	room.editor.Store().Select(a.ID)

	msg := room.syncMessage()
	if msg == nil || msg.Type != TypeDocSync {
		t.Fatal("syncMessage failed")
	}
	var sync SyncPayload
	if err := json.Unmarshal(msg.Payload, &sync); err != nil {
		t.Fatal(err)
	}
	if !sync.CanUndo || sync.CanRedo {
		t.Error("history flags wrong in sync payload")
	}
	if len(sync.Selection) != 1 || sync.Selection[0] != a.ID {
		t.Errorf("selection = %v", sync.Selection)
	}
	if sync.ActiveTool != string(tool.TypeSelect) {
		t.Errorf("active tool = %q", sync.ActiveTool)
	}
}

func TestRoomTornDownWhenLastClientLeaves(t *testing.T) {
	h := newTestHub()
	room := h.CreateDocument()

	c1 := NewClient(h, nil, room.DocID(), "sess_a")
	c2 := NewClient(h, nil, room.DocID(), "sess_b")
	h.addClient(c1)
	h.addClient(c2)

	h.removeClient(c1)
	if _, ok := h.Room(room.DocID()); !ok {
		t.Fatal("room must survive while a client remains")
	}

	h.removeClient(c2)
	if _, ok := h.Room(room.DocID()); ok {
		t.Error("last client leaving must tear the room down")
	}
}

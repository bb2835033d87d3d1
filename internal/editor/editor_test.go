package editor

import (
	"testing"

	"github.com/sketchwell/sketchwell/engine-go/internal/geometry"
	"github.com/sketchwell/sketchwell/engine-go/internal/shape"
	"github.com/sketchwell/sketchwell/engine-go/internal/tool"
)

func addRect(e *Editor, x, y, w, h float64) *shape.Shape {
	sh := shape.New(shape.TypeRectangle)
	sh.X, sh.Y, sh.Width, sh.Height = x, y, w, h
	e.Store().AddShape(sh, false)
	return sh
}

func TestEditorsAreIndependent(t *testing.T) {
	a := New(Options{})
	b := New(Options{})
	if a.ID() == b.ID() {
		t.Fatal("editors must get distinct document ids")
	}

	addRect(a, 0, 0, 10, 10)
	if b.Store().Len() != 0 {
		t.Error("stores must not be shared")
	}

	a.SetTool(tool.TypeDraw)
	if b.ActiveTool() != tool.TypeSelect {
		t.Error("tool state must not be shared")
	}
}

func TestEditorGestureRoundTrip(t *testing.T) {
	e := New(Options{})
	e.SetTool(tool.TypeRectangle)
	e.PointerDown(tool.PointerEvent{Point: geometry.Point{X: 0, Y: 0}})
	e.PointerMove(tool.PointerEvent{Point: geometry.Point{X: 40, Y: 30}})
	e.PointerUp(tool.PointerEvent{Point: geometry.Point{X: 40, Y: 30}})

	if !e.CanUndo() {
		t.Fatal("committed creation must be undoable")
	}
	e.Undo()
	if e.Store().Len() != 0 {
		t.Error("undo must remove the created shape")
	}
	e.Redo()
	if e.Store().Len() != 1 {
		t.Error("redo must restore it")
	}
}

func TestSaveLoadDocument(t *testing.T) {
	e := New(Options{})
	sh := addRect(e, 10, 10, 30, 30)

	data, err := e.SaveDocument()
	if err != nil {
		t.Fatal(err)
	}

	fresh := New(Options{})
	if err := fresh.LoadDocument(data); err != nil {
		t.Fatal(err)
	}
	got, ok := fresh.Store().Shape(sh.ID)
	if !ok || got.Width != 30 {
		t.Error("loaded document lost the shape")
	}
}

func TestLoadDocumentRejectsGarbage(t *testing.T) {
	e := New(Options{})
	addRect(e, 0, 0, 10, 10)
	if err := e.LoadDocument([]byte(`{"source":"other"}`)); err == nil {
		t.Fatal("foreign document must be rejected")
	}
	if e.Store().Len() != 1 {
		t.Error("rejected load must leave the document alone")
	}
}

func TestLoadDocumentCancelsGesture(t *testing.T) {
	e := New(Options{})
	e.SetTool(tool.TypeRectangle)
	e.PointerDown(tool.PointerEvent{Point: geometry.Point{X: 0, Y: 0}})
	e.PointerMove(tool.PointerEvent{Point: geometry.Point{X: 50, Y: 50}})

	donor := New(Options{})
	data, _ := donor.SaveDocument()
	if err := e.LoadDocument(data); err != nil {
		t.Fatal(err)
	}
	if e.Store().Len() != 0 {
		t.Error("in-flight creation must not leak into the loaded document")
	}
}

func TestEditorCommandSurface(t *testing.T) {
	e := New(Options{})
	a := addRect(e, 0, 0, 10, 10)
	b := addRect(e, 50, 0, 10, 10)
	e.Store().SelectMultiple([]string{a.ID, b.ID})

	g := e.GroupSelectedShapes()
	if g == nil {
		t.Fatal("group command failed")
	}
	e.UngroupSelectedShapes()
	if _, ok := e.Store().Shape(g.ID); ok {
		t.Fatal("ungroup command failed")
	}

	e.Store().SelectMultiple([]string{a.ID, b.ID})
	e.AlignTop()
	e.CopySelectedShapes()
	if ids := e.PasteShapes(); len(ids) != 2 {
		t.Errorf("paste created %d shapes, want 2", len(ids))
	}

	e.SelectAll()
	e.DeleteSelectedShapes()
	if e.Store().Len() != 0 {
		t.Error("delete command left shapes behind")
	}
}

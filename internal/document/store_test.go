package document

import (
	"testing"

	"github.com/sketchwell/sketchwell/engine-go/internal/geometry"
	"github.com/sketchwell/sketchwell/engine-go/internal/shape"
)

func newRect(x, y, w, h float64) *shape.Shape {
	sh := shape.New(shape.TypeRectangle)
	sh.X, sh.Y, sh.Width, sh.Height = x, y, w, h
	return sh
}

func TestAddShapeUndoRedo(t *testing.T) {
	st := NewStore()
	sh := newRect(0, 0, 50, 50)
	st.AddShape(sh, true)

	if st.Len() != 1 || len(st.ShapeIDs()) != 1 {
		t.Fatal("shape not added")
	}

	if !st.Undo() {
		t.Fatal("Undo returned false")
	}
	if st.Len() != 0 || len(st.ShapeIDs()) != 0 {
		t.Fatal("undo of create must remove the shape")
	}

	if !st.Redo() {
		t.Fatal("Redo returned false")
	}
	got, ok := st.Shape(sh.ID)
	if !ok {
		t.Fatal("redo of create must restore the shape")
	}
	if got.ID != sh.ID || got.Width != 50 {
		t.Errorf("restored shape = %+v", got)
	}
	if st.ShapeIDs()[0] != sh.ID {
		t.Error("restored shape missing from order list")
	}
}

func TestDeleteRestoresOrderPosition(t *testing.T) {
	st := NewStore()
	a := newRect(0, 0, 10, 10)
	b := newRect(20, 0, 10, 10)
	c := newRect(40, 0, 10, 10)
	st.AddShape(a, false)
	st.AddShape(b, false)
	st.AddShape(c, false)

	st.DeleteShape(b.ID, true)
	if len(st.ShapeIDs()) != 2 {
		t.Fatal("delete did not remove the shape")
	}

	st.Undo()
	ids := st.ShapeIDs()
	if len(ids) != 3 || ids[1] != b.ID {
		t.Errorf("order after undo = %v, want %s in the middle", ids, b.ID)
	}

	st.Redo()
	ids = st.ShapeIDs()
	if len(ids) != 2 || ids[0] != a.ID || ids[1] != c.ID {
		t.Errorf("order after redo = %v", ids)
	}
}

func TestBatchUpdateUndoRedo(t *testing.T) {
	st := NewStore()
	sh := newRect(0, 0, 50, 50)
	st.AddShape(sh, true)

	// Simulate a drag: interim moves without history, one batch at the end.
	before := []*shape.Shape{sh.Clone()}
	st.UpdateShape(sh.ID, false, func(s *shape.Shape) { s.X, s.Y = 4, 4 })
	st.UpdateShape(sh.ID, false, func(s *shape.Shape) { s.X, s.Y = 10, 10 })
	after := []*shape.Shape{sh.Clone()}
	st.RecordBatchUpdate(before, after)

	st.Undo()
	got, _ := st.Shape(sh.ID)
	if got.X != 0 || got.Y != 0 {
		t.Fatalf("after undo at (%v, %v), want (0, 0)", got.X, got.Y)
	}

	st.Redo()
	got, _ = st.Shape(sh.ID)
	if got.X != 10 || got.Y != 10 {
		t.Fatalf("after redo at (%v, %v), want (10, 10)", got.X, got.Y)
	}

	// Undo/redo pairs are idempotent.
	st.Undo()
	st.Redo()
	got, _ = st.Shape(sh.ID)
	if got.X != 10 || got.Y != 10 {
		t.Errorf("after second undo/redo at (%v, %v), want (10, 10)", got.X, got.Y)
	}
}

func TestRecordBatchUpdateEmptyIsNoop(t *testing.T) {
	st := NewStore()
	st.RecordBatchUpdate(nil, nil)
	st.RecordBatchUpdate([]*shape.Shape{newRect(0, 0, 1, 1)}, nil)
	if st.CanUndo() {
		t.Error("empty batch must record nothing")
	}
}

func TestSelectionRules(t *testing.T) {
	st := NewStore()
	a := newRect(0, 0, 10, 10)
	st.AddShape(a, false)

	hidden := shape.New(shape.TypeText)
	st.PutHidden(hidden)

	st.Select(hidden.ID)
	if len(st.SelectedIDs()) != 0 {
		t.Error("shapes outside the order list must not be selectable")
	}

	st.Select(a.ID)
	if !st.IsSelected(a.ID) {
		t.Error("Select failed")
	}

	st.ToggleSelection(a.ID)
	if st.IsSelected(a.ID) {
		t.Error("toggle did not deselect")
	}

	st.SelectAll()
	if len(st.SelectedIDs()) != 1 {
		t.Errorf("SelectAll selected %d, want 1", len(st.SelectedIDs()))
	}
}

func TestDeleteClearsSelection(t *testing.T) {
	st := NewStore()
	a := newRect(0, 0, 10, 10)
	st.AddShape(a, false)
	st.Select(a.ID)
	st.DeleteShape(a.ID, true)
	if len(st.SelectedIDs()) != 0 {
		t.Error("deleted shape still selected")
	}
}

func TestHistoryCapacityForecloses(t *testing.T) {
	st := NewStore()
	st.SetHistoryLimit(3)
	var first *shape.Shape
	for i := 0; i < 5; i++ {
		sh := newRect(float64(i*10), 0, 10, 10)
		if first == nil {
			first = sh
		}
		st.AddShape(sh, true)
	}

	// Only the last three creates survive; undoing everything leaves the
	// first two shapes in place.
	for st.Undo() {
	}
	if st.Len() != 2 {
		t.Fatalf("Len() = %d after exhausting undo, want 2", st.Len())
	}
	if _, ok := st.Shape(first.ID); !ok {
		t.Error("oldest shape lost its evicted create entry but must remain")
	}
}

func TestTranslateShapes(t *testing.T) {
	st := NewStore()
	sh := newRect(5, 5, 10, 10)
	st.AddShape(sh, false)
	st.TranslateShapes([]string{sh.ID}, 3, -2)
	got, _ := st.Shape(sh.ID)
	if got.X != 8 || got.Y != 3 {
		t.Errorf("translated to (%v, %v), want (8, 3)", got.X, got.Y)
	}
	if st.CanUndo() {
		t.Error("TranslateShapes must not record history")
	}
}

func TestRestoreShapes(t *testing.T) {
	st := NewStore()
	sh := newRect(0, 0, 10, 10)
	st.AddShape(sh, false)
	snapshot := []*shape.Shape{sh.Clone()}

	st.UpdateShape(sh.ID, false, func(s *shape.Shape) { s.X = 100 })
	st.RestoreShapes(snapshot)

	got, _ := st.Shape(sh.ID)
	if got.X != 0 {
		t.Errorf("restore left X = %v, want 0", got.X)
	}
	if st.CanUndo() {
		t.Error("RestoreShapes must not record history")
	}
}

func TestHitShapeFrontToBack(t *testing.T) {
	st := NewStore()
	back := newRect(0, 0, 100, 100)
	front := newRect(20, 20, 40, 40)
	st.AddShape(back, false)
	st.AddShape(front, false)

	hit := st.HitShape(geometry.Point{X: 30, Y: 30}, 0)
	if hit == nil || hit.ID != front.ID {
		t.Error("overlapping hit must return the topmost shape")
	}

	hit = st.HitShape(geometry.Point{X: 5, Y: 5}, 0)
	if hit == nil || hit.ID != back.ID {
		t.Error("uncovered area must return the back shape")
	}

	if st.HitShape(geometry.Point{X: 500, Y: 500}, 0) != nil {
		t.Error("empty canvas must return nil")
	}
}

func TestShapesInRect(t *testing.T) {
	st := NewStore()
	inside := newRect(10, 10, 20, 20)
	straddling := newRect(40, 40, 30, 30)
	st.AddShape(inside, false)
	st.AddShape(straddling, false)

	got := st.ShapesInRect(geometry.Rect{X: 0, Y: 0, Width: 50, Height: 50})
	if len(got) != 1 || got[0] != inside.ID {
		t.Errorf("ShapesInRect = %v, want only the fully contained shape", got)
	}
}

func TestAlignSelectedRecordsOneEntry(t *testing.T) {
	st := NewStore()
	a := newRect(0, 0, 10, 10)
	b := newRect(50, 30, 10, 10)
	st.AddShape(a, false)
	st.AddShape(b, false)
	st.SelectMultiple([]string{a.ID, b.ID})

	st.AlignSelected(geometry.AlignLeft)

	got, _ := st.Shape(b.ID)
	if got.X != 0 {
		t.Fatalf("b.X = %v after align left, want 0", got.X)
	}
	if st.History().Len() != 1 {
		t.Fatalf("history entries = %d, want 1", st.History().Len())
	}

	st.Undo()
	got, _ = st.Shape(b.ID)
	if got.X != 50 {
		t.Errorf("b.X = %v after undo, want 50", got.X)
	}
}

func TestAlignSelectedNeedsTwo(t *testing.T) {
	st := NewStore()
	a := newRect(0, 0, 10, 10)
	st.AddShape(a, false)
	st.Select(a.ID)
	st.AlignSelected(geometry.AlignRight)
	if st.CanUndo() {
		t.Error("aligning a single shape must be a no-op")
	}
}

func TestDistributeSelected(t *testing.T) {
	st := NewStore()
	a := newRect(0, 0, 10, 10)
	b := newRect(20, 0, 10, 10)
	c := newRect(90, 0, 10, 10)
	st.AddShape(a, false)
	st.AddShape(b, false)
	st.AddShape(c, false)
	st.SelectMultiple([]string{a.ID, b.ID, c.ID})

	st.DistributeSelected(geometry.AxisHorizontal)

	got, _ := st.Shape(b.ID)
	if got.X != 45 {
		t.Errorf("middle shape at %v, want 45", got.X)
	}
	ga, _ := st.Shape(a.ID)
	gc, _ := st.Shape(c.ID)
	if ga.X != 0 || gc.X != 90 {
		t.Error("outermost shapes must stay fixed")
	}
}

func TestClearShapes(t *testing.T) {
	st := NewStore()
	a := newRect(0, 0, 10, 10)
	st.AddShape(a, false)
	hidden := shape.New(shape.TypeText)
	st.PutHidden(hidden)

	st.ClearShapes(true)
	if st.Len() != 0 {
		t.Fatal("ClearShapes left shapes behind")
	}

	st.Undo()
	if st.Len() != 2 {
		t.Fatalf("Len() = %d after undo, want 2", st.Len())
	}
	if len(st.ShapeIDs()) != 1 {
		t.Error("hidden shape must not re-enter the order list")
	}
}

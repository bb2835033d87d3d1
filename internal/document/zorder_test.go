package document

import (
	"slices"
	"testing"
)

// fourShapes builds a store with shapes a, b, c, d back to front and
// returns their ids in that order.
func fourShapes(t *testing.T) (*Store, []string) {
	t.Helper()
	st := NewStore()
	ids := make([]string, 4)
	for i := range ids {
		sh := newRect(float64(i*20), 0, 10, 10)
		st.AddShape(sh, false)
		ids[i] = sh.ID
	}
	return st, ids
}

func TestBringToFront(t *testing.T) {
	st, ids := fourShapes(t)
	st.SelectMultiple([]string{ids[0], ids[2]})
	st.BringToFront()
	want := []string{ids[1], ids[3], ids[0], ids[2]}
	if !slices.Equal(st.ShapeIDs(), want) {
		t.Errorf("order = %v, want %v", st.ShapeIDs(), want)
	}
}

func TestSendToBack(t *testing.T) {
	st, ids := fourShapes(t)
	st.SelectMultiple([]string{ids[1], ids[3]})
	st.SendToBack()
	want := []string{ids[1], ids[3], ids[0], ids[2]}
	if !slices.Equal(st.ShapeIDs(), want) {
		t.Errorf("order = %v, want %v", st.ShapeIDs(), want)
	}
}

func TestBringForward(t *testing.T) {
	st, ids := fourShapes(t)
	st.Select(ids[1])
	st.BringForward()
	want := []string{ids[0], ids[2], ids[1], ids[3]}
	if !slices.Equal(st.ShapeIDs(), want) {
		t.Errorf("order = %v, want %v", st.ShapeIDs(), want)
	}
}

func TestBringForwardAtTop(t *testing.T) {
	st, ids := fourShapes(t)
	st.Select(ids[3])
	st.BringForward()
	if !slices.Equal(st.ShapeIDs(), ids) {
		t.Error("topmost shape must stay put")
	}
	if st.CanUndo() {
		t.Error("no-op reorder must record nothing")
	}
}

func TestBringForwardAdjacentPair(t *testing.T) {
	st, ids := fourShapes(t)
	st.SelectMultiple([]string{ids[1], ids[2]})
	st.BringForward()
	// The pair moves up one step together without leapfrogging itself.
	want := []string{ids[0], ids[3], ids[1], ids[2]}
	if !slices.Equal(st.ShapeIDs(), want) {
		t.Errorf("order = %v, want %v", st.ShapeIDs(), want)
	}
}

func TestSendBackward(t *testing.T) {
	st, ids := fourShapes(t)
	st.Select(ids[2])
	st.SendBackward()
	want := []string{ids[0], ids[2], ids[1], ids[3]}
	if !slices.Equal(st.ShapeIDs(), want) {
		t.Errorf("order = %v, want %v", st.ShapeIDs(), want)
	}
}

func TestReorderUndoRedo(t *testing.T) {
	st, ids := fourShapes(t)
	st.Select(ids[0])
	st.BringToFront()

	st.Undo()
	if !slices.Equal(st.ShapeIDs(), ids) {
		t.Errorf("order after undo = %v, want %v", st.ShapeIDs(), ids)
	}

	st.Redo()
	want := []string{ids[1], ids[2], ids[3], ids[0]}
	if !slices.Equal(st.ShapeIDs(), want) {
		t.Errorf("order after redo = %v, want %v", st.ShapeIDs(), want)
	}
}

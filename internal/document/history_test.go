package document

import (
	"fmt"
	"testing"

	"github.com/sketchwell/sketchwell/engine-go/internal/shape"
)

func TestHistoryCursor(t *testing.T) {
	h := NewHistory(10)
	if h.CanUndo() || h.CanRedo() {
		t.Fatal("fresh history must have nothing to undo or redo")
	}

	h.Record(Command{Type: CommandCreate})
	if !h.CanUndo() || h.CanRedo() {
		t.Fatal("after one record: undo yes, redo no")
	}

	h.index--
	if h.CanUndo() {
		t.Error("cursor at -1 must not allow undo")
	}
	if !h.CanRedo() {
		t.Error("cursor behind an entry must allow redo")
	}
}

func TestHistoryTruncatesOnBranch(t *testing.T) {
	h := NewHistory(10)
	for i := 0; i < 3; i++ {
		h.Record(Command{Type: CommandCreate})
	}
	// Step the cursor back twice, then record: the two undone entries are
	// gone for good.
	h.index -= 2
	h.Record(Command{Type: CommandDelete})

	if h.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", h.Len())
	}
	if h.CanRedo() {
		t.Error("recording on a branch must drop the redo tail")
	}
	if h.entries[1].Command.Type != CommandDelete {
		t.Errorf("tail entry type = %q, want delete", h.entries[1].Command.Type)
	}
}

func TestHistoryEvictsOldest(t *testing.T) {
	h := NewHistory(3)
	for i := 0; i < 5; i++ {
		h.Record(Command{Type: CommandUpdate, Before: []*shape.Shape{{ID: fmt.Sprintf("s%d", i)}}})
	}
	if h.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", h.Len())
	}
	if h.index != 2 {
		t.Errorf("index = %d, want 2", h.index)
	}
	// Oldest two entries are gone; the log starts at the third record.
	if got := h.entries[0].Command.Before[0].ID; got != "s2" {
		t.Errorf("oldest surviving entry = %q, want s2", got)
	}
}

func TestHistoryClear(t *testing.T) {
	h := NewHistory(10)
	h.Record(Command{Type: CommandCreate})
	h.Clear()
	if h.CanUndo() || h.CanRedo() || h.Len() != 0 {
		t.Error("Clear must empty the log and reset the cursor")
	}
}

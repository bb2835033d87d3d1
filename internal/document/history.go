package document

import (
	"time"

	"github.com/sketchwell/sketchwell/engine-go/internal/shape"
	"github.com/sketchwell/sketchwell/engine-go/internal/typeid"
)

// DefaultHistoryLimit bounds the command log. Exceeding it silently evicts
// the oldest entry, foreclosing undo past that point.
const DefaultHistoryLimit = 100

type CommandType string

const (
	CommandCreate  CommandType = "create"
	CommandDelete  CommandType = "delete"
	CommandUpdate  CommandType = "update"
	CommandReorder CommandType = "reorder"
)

// Command is one undoable unit of change. The Type tag discriminates which
// fields are set: Shapes/OrderIndex for create and delete, Before/After for
// update, PrevOrder/NewOrder for reorder. All shape values are deep copies
// detached from the live document.
type Command struct {
	Type CommandType

	Shapes []*shape.Shape
	// OrderIndex holds each shape's position in the order list at the time
	// the command was recorded, or -1 for shapes that live outside it
	// (bound text, group children).
	OrderIndex []int

	Before []*shape.Shape
	After  []*shape.Shape

	PrevOrder []string
	NewOrder  []string
}

// Entry is one element of the history log.
type Entry struct {
	ID        string
	Timestamp time.Time
	Command   Command
}

// History is a bounded linear command log with a cursor. The cursor points
// at the last applied entry; -1 means nothing to undo.
type History struct {
	entries []Entry
	index   int
	limit   int
}

func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &History{index: -1, limit: limit}
}

func (h *History) CanUndo() bool { return h.index >= 0 }
func (h *History) CanRedo() bool { return h.index < len(h.entries)-1 }

// Len returns the number of entries currently held.
func (h *History) Len() int { return len(h.entries) }

// Record appends a command, discarding any redo branch past the cursor.
// When the log exceeds its limit the oldest entry is dropped and the cursor
// shifts down to stay consistent.
func (h *History) Record(cmd Command) {
	h.entries = append(h.entries[:h.index+1], Entry{
		ID:        typeid.NewHistoryID(),
		Timestamp: time.Now(),
		Command:   cmd,
	})
	h.index = len(h.entries) - 1

	if len(h.entries) > h.limit {
		h.entries = h.entries[1:]
		h.index--
	}
}

// Clear drops all entries, e.g. on document load.
func (h *History) Clear() {
	h.entries = nil
	h.index = -1
}

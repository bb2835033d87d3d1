// Package clipboard implements copy/cut/paste/duplicate over detached shape
// snapshots. Pasted shapes always get fresh ids with parent and bound-text
// references remapped, so a snapshot can be pasted any number of times.
package clipboard

import (
	"github.com/sketchwell/sketchwell/engine-go/internal/document"
	"github.com/sketchwell/sketchwell/engine-go/internal/shape"
	"github.com/sketchwell/sketchwell/engine-go/internal/typeid"
)

// PasteOffset is how far each consecutive paste lands from the previous
// copy, per axis.
const PasteOffset = 20.0

// envelope is the JSON form written to the system clipboard, tagged so
// foreign clipboard content is rejected on paste.
type envelope struct {
	Source string         `json:"source"`
	Shapes []*shape.Shape `json:"shapes"`
}

// Clipboard holds deep-copied shapes independent of any document.
type Clipboard struct {
	shapes     []*shape.Shape
	pasteCount int

	// useSystem mirrors snapshots to the OS clipboard as JSON and lets
	// Paste pick up snapshots written by another process.
	useSystem bool
}

func New(useSystem bool) *Clipboard {
	return &Clipboard{useSystem: useSystem}
}

// IsEmpty reports whether there is anything to paste.
func (c *Clipboard) IsEmpty() bool { return len(c.shapes) == 0 }

// Copy snapshots the selected shapes plus their bound text children and
// returns how many shapes were captured. An empty selection is a no-op that
// keeps the previous snapshot.
func (c *Clipboard) Copy(st *document.Store) int {
	snapshot := snapshotSelection(st)
	if len(snapshot) == 0 {
		return 0
	}
	c.shapes = snapshot
	c.pasteCount = 0
	c.writeSystem()
	return len(snapshot)
}

// Cut copies the selection then deletes the originals, bound text included,
// as one delete history entry.
func (c *Clipboard) Cut(st *document.Store) int {
	n := c.Copy(st)
	if n == 0 {
		return 0
	}
	st.DeleteShapes(st.SelectedIDs(), true)
	return n
}

// Paste inserts a remapped copy of the snapshot, offset by a growing
// multiple of PasteOffset per consecutive paste, records one create command
// and selects the new shapes. Returns the new top-level ids; empty clipboard
// is a no-op.
func (c *Clipboard) Paste(st *document.Store) []string {
	c.readSystem()
	if len(c.shapes) == 0 {
		return nil
	}
	c.pasteCount++
	offset := PasteOffset * float64(c.pasteCount)
	return insertRemapped(st, c.shapes, offset)
}

// Duplicate applies the same remap logic directly to the current selection
// with a single fixed offset, without touching the clipboard snapshot.
func (c *Clipboard) Duplicate(st *document.Store) []string {
	snapshot := snapshotSelection(st)
	if len(snapshot) == 0 {
		return nil
	}
	return insertRemapped(st, snapshot, PasteOffset)
}

// snapshotSelection deep-copies the selected shapes and, for containers,
// their bound text children (not independently selectable but carried
// along). Group children are captured recursively.
func snapshotSelection(st *document.Store) []*shape.Shape {
	var out []*shape.Shape
	seen := make(map[string]struct{})
	var capture func(id string)
	capture = func(id string) {
		if _, dup := seen[id]; dup {
			return
		}
		sh, ok := st.Shape(id)
		if !ok {
			return
		}
		seen[id] = struct{}{}
		out = append(out, sh.Clone())
		for _, childID := range sh.Children {
			capture(childID)
		}
		if sh.BoundTextID != "" {
			capture(sh.BoundTextID)
		}
	}
	for _, id := range st.SelectedIDs() {
		capture(id)
	}
	return out
}

// insertRemapped mints fresh ids for every snapshot shape, remaps internal
// references through the id map, offsets positions, and adds the shapes to
// the store. Only shapes that belong in the order list are selectable; bound
// text stays hidden. One create command covers the whole batch.
func insertRemapped(st *document.Store, snapshot []*shape.Shape, offset float64) []string {
	idMap := make(map[string]string, len(snapshot))
	for _, sh := range snapshot {
		idMap[sh.ID] = typeid.NewShapeID()
	}

	// Bound text ids referenced inside the batch stay out of the order list.
	bound := make(map[string]struct{})
	for _, sh := range snapshot {
		if sh.BoundTextID != "" {
			bound[sh.BoundTextID] = struct{}{}
		}
	}
	// Group children likewise: they are addressed through their group.
	grouped := make(map[string]struct{})
	for _, sh := range snapshot {
		for _, childID := range sh.Children {
			grouped[childID] = struct{}{}
		}
	}

	var created []*shape.Shape
	var topLevel []string
	for _, src := range snapshot {
		sh := src.Clone()
		oldID := sh.ID
		sh.ID = idMap[oldID]
		sh.X += offset
		sh.Y += offset
		if sh.ParentID != "" {
			if mapped, ok := idMap[sh.ParentID]; ok {
				sh.ParentID = mapped
			} else {
				sh.ParentID = ""
			}
		}
		if sh.BoundTextID != "" {
			if mapped, ok := idMap[sh.BoundTextID]; ok {
				sh.BoundTextID = mapped
			} else {
				sh.BoundTextID = ""
			}
		}
		if len(sh.Children) > 0 {
			remapped := sh.Children[:0]
			for _, childID := range sh.Children {
				if mapped, ok := idMap[childID]; ok {
					remapped = append(remapped, mapped)
				}
			}
			sh.Children = remapped
		}

		_, isBound := bound[oldID]
		_, isGrouped := grouped[oldID]
		if isBound || isGrouped {
			st.PutHidden(sh)
		} else {
			st.AddShape(sh, false)
			topLevel = append(topLevel, sh.ID)
		}
		created = append(created, sh)
	}

	st.RecordCreate(created)
	st.SelectMultiple(topLevel)
	return topLevel
}

package document

import (
	"slices"

	"github.com/sketchwell/sketchwell/engine-go/internal/geometry"
	"github.com/sketchwell/sketchwell/engine-go/internal/shape"
)

// Viewport is the user's view of the infinite canvas.
type Viewport struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Zoom float64 `json:"zoom"`
}

// Store owns the shape collection, the z-order list, the selection set and
// the viewport. Every shape value is owned exclusively by the store; callers
// mutate shapes only through store operations so history capture stays
// correct. Mutating operations take a record flag — interim gesture states
// pass false and are later coalesced via RecordBatchUpdate.
type Store struct {
	shapes    map[string]*shape.Shape
	order     []string
	selection map[string]struct{}
	viewport  Viewport
	history   *History
}

// NewStore creates an empty document with the default history bound.
func NewStore() *Store {
	return &Store{
		shapes:    make(map[string]*shape.Shape),
		selection: make(map[string]struct{}),
		viewport:  Viewport{Zoom: 1},
		history:   NewHistory(DefaultHistoryLimit),
	}
}

// SetHistoryLimit replaces the history bound. Existing entries are kept.
func (s *Store) SetHistoryLimit(limit int) {
	if limit > 0 {
		s.history.limit = limit
	}
}

// --- Read accessors ---

// Shape returns the live shape for id. Callers must treat the result as
// read-only; mutations go through UpdateShape.
func (s *Store) Shape(id string) (*shape.Shape, bool) {
	sh, ok := s.shapes[id]
	return sh, ok
}

// ShapeIDs returns a copy of the z-order list, back to front.
func (s *Store) ShapeIDs() []string {
	return slices.Clone(s.order)
}

// Len returns the number of shapes in the mapping, bound children included.
func (s *Store) Len() int { return len(s.shapes) }

// OrderedShapes returns the order-list shapes back to front.
func (s *Store) OrderedShapes() []*shape.Shape {
	out := make([]*shape.Shape, 0, len(s.order))
	for _, id := range s.order {
		if sh, ok := s.shapes[id]; ok {
			out = append(out, sh)
		}
	}
	return out
}

func (s *Store) Viewport() Viewport     { return s.viewport }
func (s *Store) SetViewport(v Viewport) { s.viewport = v }
func (s *Store) History() *History      { return s.history }
func (s *Store) CanUndo() bool          { return s.history.CanUndo() }
func (s *Store) CanRedo() bool          { return s.history.CanRedo() }

// --- Selection (history-exempt UI state) ---

// Select replaces the selection with a single id. Ids absent from the order
// list (bound text, group children) are not selectable.
func (s *Store) Select(id string) {
	if !s.inOrder(id) {
		return
	}
	s.selection = map[string]struct{}{id: {}}
}

// SelectMultiple replaces the selection with the given ids, dropping any
// that are not independently selectable.
func (s *Store) SelectMultiple(ids []string) {
	s.selection = make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if s.inOrder(id) {
			s.selection[id] = struct{}{}
		}
	}
}

// ToggleSelection adds or removes one id from the selection.
func (s *Store) ToggleSelection(id string) {
	if _, ok := s.selection[id]; ok {
		delete(s.selection, id)
		return
	}
	if s.inOrder(id) {
		s.selection[id] = struct{}{}
	}
}

func (s *Store) ClearSelection() {
	s.selection = make(map[string]struct{})
}

// SelectAll selects every shape in the order list.
func (s *Store) SelectAll() {
	s.SelectMultiple(s.order)
}

func (s *Store) IsSelected(id string) bool {
	_, ok := s.selection[id]
	return ok
}

// SelectedIDs returns the selected ids in z-order.
func (s *Store) SelectedIDs() []string {
	out := make([]string, 0, len(s.selection))
	for _, id := range s.order {
		if _, ok := s.selection[id]; ok {
			out = append(out, id)
		}
	}
	return out
}

// SelectionBounds returns the union bounds of the selection.
func (s *Store) SelectionBounds() geometry.Rect {
	var bounds geometry.Rect
	first := true
	for _, id := range s.SelectedIDs() {
		sh := s.shapes[id]
		if first {
			bounds = sh.Bounds()
			first = false
		} else {
			bounds = bounds.Union(sh.Bounds())
		}
	}
	return bounds
}

// --- Mutations ---

// AddShape inserts a shape into the mapping and appends its id to the order
// list. Ids are generated; uniqueness is the caller's responsibility.
func (s *Store) AddShape(sh *shape.Shape, record bool) {
	s.shapes[sh.ID] = sh
	s.order = append(s.order, sh.ID)
	if record {
		s.history.Record(Command{
			Type:       CommandCreate,
			Shapes:     []*shape.Shape{sh.Clone()},
			OrderIndex: []int{len(s.order) - 1},
		})
	}
}

// PutHidden inserts a shape into the mapping without touching the order
// list. Used for bound text and group children, which are addressed only
// through their parent.
func (s *Store) PutHidden(sh *shape.Shape) {
	s.shapes[sh.ID] = sh
}

// UpdateShape applies mutate to the shape. No-op if the id is absent. With
// record, deep copies of the prior and merged shape are captured as one
// update command.
func (s *Store) UpdateShape(id string, record bool, mutate func(*shape.Shape)) {
	sh, ok := s.shapes[id]
	if !ok {
		return
	}
	var before *shape.Shape
	if record {
		before = sh.Clone()
	}
	mutate(sh)
	if record {
		s.history.Record(Command{
			Type:   CommandUpdate,
			Before: []*shape.Shape{before},
			After:  []*shape.Shape{sh.Clone()},
		})
	}
}

// DeleteShape removes a single shape. See DeleteShapes.
func (s *Store) DeleteShape(id string, record bool) {
	s.DeleteShapes([]string{id}, record)
}

// DeleteShapes removes shapes from the mapping, order list and selection
// atomically. The set is expanded to cover group children and bound text so
// no orphan stays behind in the mapping; the recorded delete command holds
// the full prior values so undo can restore them.
func (s *Store) DeleteShapes(ids []string, record bool) {
	expanded := s.expandWithDependents(ids)
	if len(expanded) == 0 {
		return
	}

	snapshots := make([]*shape.Shape, 0, len(expanded))
	indices := make([]int, 0, len(expanded))
	for _, id := range expanded {
		sh, ok := s.shapes[id]
		if !ok {
			continue
		}
		snapshots = append(snapshots, sh.Clone())
		indices = append(indices, s.orderIndexOf(id))
	}
	if len(snapshots) == 0 {
		return
	}

	for _, sh := range snapshots {
		s.removeShape(sh.ID)
	}

	if record {
		s.history.Record(Command{
			Type:       CommandDelete,
			Shapes:     snapshots,
			OrderIndex: indices,
		})
	}
}

// ClearShapes empties the document, recording one delete command holding
// every prior shape.
func (s *Store) ClearShapes(record bool) {
	if len(s.shapes) == 0 {
		return
	}
	snapshots := make([]*shape.Shape, 0, len(s.shapes))
	indices := make([]int, 0, len(s.shapes))
	// Order-list shapes first so undo reinserts them at stable positions.
	for i, id := range s.order {
		snapshots = append(snapshots, s.shapes[id].Clone())
		indices = append(indices, i)
	}
	for id, sh := range s.shapes {
		if !s.inOrder(id) {
			snapshots = append(snapshots, sh.Clone())
			indices = append(indices, -1)
		}
	}

	s.shapes = make(map[string]*shape.Shape)
	s.order = nil
	s.selection = make(map[string]struct{})

	if record {
		s.history.Record(Command{Type: CommandDelete, Shapes: snapshots, OrderIndex: indices})
	}
}

// RecordCreate appends one create command for shapes already added with
// history disabled (tool gestures). No-op on an empty slice.
func (s *Store) RecordCreate(shapes []*shape.Shape) {
	if len(shapes) == 0 {
		return
	}
	indices := make([]int, len(shapes))
	for i, sh := range shapes {
		indices[i] = s.orderIndexOf(sh.ID)
	}
	s.history.Record(Command{
		Type:       CommandCreate,
		Shapes:     shape.CloneAll(shapes),
		OrderIndex: indices,
	})
}

// RecordBatchUpdate coalesces a gesture's interim updates into one history
// entry from the pre-gesture and post-gesture snapshots. No-op if either
// slice is empty, so a gesture with no net change records nothing.
func (s *Store) RecordBatchUpdate(before, after []*shape.Shape) {
	if len(before) == 0 || len(after) == 0 {
		return
	}
	s.history.Record(Command{
		Type:   CommandUpdate,
		Before: shape.CloneAll(before),
		After:  shape.CloneAll(after),
	})
}

// TranslateShapes moves shapes by (dx, dy) without recording history,
// keeping bound text and group members in step. Gestures call this per
// pointer move and batch the result at commit.
func (s *Store) TranslateShapes(ids []string, dx, dy float64) {
	seen := make(map[string]struct{})
	var move func(id string)
	move = func(id string) {
		if _, dup := seen[id]; dup {
			return
		}
		sh, ok := s.shapes[id]
		if !ok {
			return
		}
		seen[id] = struct{}{}
		sh.X += dx
		sh.Y += dy
		if sh.BoundTextID != "" {
			s.SyncBoundText(id)
		}
		for _, childID := range sh.Children {
			move(childID)
		}
	}
	for _, id := range ids {
		move(id)
	}
}

// RestoreShapes overwrites live shapes with the given snapshots, without
// recording history. Gesture cancellation uses this to revert to the exact
// pre-gesture state. Snapshots for ids no longer present are skipped.
func (s *Store) RestoreShapes(snapshots []*shape.Shape) {
	for _, snap := range snapshots {
		if _, ok := s.shapes[snap.ID]; ok {
			s.shapes[snap.ID] = snap.Clone()
		}
	}
}

// --- Undo / redo ---

// Undo reverts the command at the cursor by applying its semantic inverse,
// then moves the cursor back. The inverse application is never re-recorded.
func (s *Store) Undo() bool {
	if !s.history.CanUndo() {
		return false
	}
	e := s.history.entries[s.history.index]
	s.applyInverse(e.Command)
	s.history.index--
	return true
}

// Redo replays the command after the cursor and advances it.
func (s *Store) Redo() bool {
	if !s.history.CanRedo() {
		return false
	}
	e := s.history.entries[s.history.index+1]
	s.applyForward(e.Command)
	s.history.index++
	return true
}

func (s *Store) applyInverse(cmd Command) {
	switch cmd.Type {
	case CommandCreate:
		s.unapplyCreate(cmd)
	case CommandDelete:
		s.reinsertShapes(cmd)
	case CommandUpdate:
		for _, b := range cmd.Before {
			if _, ok := s.shapes[b.ID]; ok {
				s.shapes[b.ID] = b.Clone()
			}
		}
	case CommandReorder:
		s.order = slices.Clone(cmd.PrevOrder)
	}
}

func (s *Store) applyForward(cmd Command) {
	switch cmd.Type {
	case CommandCreate:
		s.reinsertShapes(cmd)
	case CommandDelete:
		s.unapplyCreate(cmd)
	case CommandUpdate:
		for _, a := range cmd.After {
			if _, ok := s.shapes[a.ID]; ok {
				s.shapes[a.ID] = a.Clone()
			}
		}
	case CommandReorder:
		s.order = slices.Clone(cmd.NewOrder)
	}
}

// unapplyCreate removes the command's shapes from the document. It is both
// the inverse of create and the forward replay of delete. Removing a group
// whose children survive (ungroup-style commands) splices the children back
// into the order list at the group's slot.
func (s *Store) unapplyCreate(cmd Command) {
	inCmd := make(map[string]struct{}, len(cmd.Shapes))
	for _, sh := range cmd.Shapes {
		inCmd[sh.ID] = struct{}{}
	}

	for _, snap := range cmd.Shapes {
		live, ok := s.shapes[snap.ID]
		if !ok {
			continue
		}

		if live.Type == shape.TypeGroup {
			idx := s.orderIndexOf(live.ID)
			surviving := make([]string, 0, len(live.Children))
			for _, childID := range live.Children {
				if _, dying := inCmd[childID]; dying {
					continue
				}
				if child, ok := s.shapes[childID]; ok {
					child.ParentID = ""
					surviving = append(surviving, childID)
				}
			}
			if idx >= 0 && len(surviving) > 0 {
				s.order = slices.Delete(s.order, idx, idx+1)
				s.order = slices.Insert(s.order, idx, surviving...)
				delete(s.shapes, live.ID)
				delete(s.selection, live.ID)
				continue
			}
		}

		// Deleting bound text clears the container's reference.
		if live.ParentID != "" {
			if container, ok := s.shapes[live.ParentID]; ok && container.BoundTextID == live.ID {
				container.BoundTextID = ""
			}
		}
		s.removeShape(live.ID)
	}
}

// reinsertShapes puts the command's shapes back into the document at their
// recorded order positions. It is both the inverse of delete and the forward
// replay of create. Reinserting a group re-wires its children; reinserting
// bound text restores the container's reference.
func (s *Store) reinsertShapes(cmd Command) {
	// Ascending order positions so earlier inserts don't shift later ones.
	idxs := make([]int, len(cmd.Shapes))
	for i := range idxs {
		idxs[i] = i
	}
	slices.SortStableFunc(idxs, func(a, b int) int {
		return cmd.OrderIndex[a] - cmd.OrderIndex[b]
	})

	inCmd := make(map[string]struct{}, len(cmd.Shapes))
	for _, sh := range cmd.Shapes {
		inCmd[sh.ID] = struct{}{}
	}

	for _, i := range idxs {
		snap := cmd.Shapes[i].Clone()
		s.shapes[snap.ID] = snap

		if pos := cmd.OrderIndex[i]; pos >= 0 {
			pos = min(pos, len(s.order))
			s.order = slices.Insert(s.order, pos, snap.ID)
		}

		if snap.Type == shape.TypeGroup {
			for _, childID := range snap.Children {
				child, ok := s.shapes[childID]
				if !ok {
					continue
				}
				child.ParentID = snap.ID
				if _, alsoInserted := inCmd[childID]; !alsoInserted {
					// Ungroup being undone: the child currently lives in the
					// order list and must go back under the group.
					if ci := s.orderIndexOf(childID); ci >= 0 {
						s.order = slices.Delete(s.order, ci, ci+1)
					}
				}
			}
		}

		if snap.Type == shape.TypeText && snap.ParentID != "" {
			if container, ok := s.shapes[snap.ParentID]; ok && container.IsContainer() {
				container.BoundTextID = snap.ID
			}
		}
	}
}

// --- internals ---

func (s *Store) inOrder(id string) bool {
	return s.orderIndexOf(id) >= 0
}

func (s *Store) orderIndexOf(id string) int {
	return slices.Index(s.order, id)
}

// removeShape drops one id from the mapping, order list and selection.
func (s *Store) removeShape(id string) {
	delete(s.shapes, id)
	delete(s.selection, id)
	if i := s.orderIndexOf(id); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}
}

// expandWithDependents widens a delete set with group children (recursively)
// and bound text, clearing container references for bound text whose
// container survives. Missing ids are dropped.
func (s *Store) expandWithDependents(ids []string) []string {
	var out []string
	seen := make(map[string]struct{})
	var visit func(id string)
	visit = func(id string) {
		if _, dup := seen[id]; dup {
			return
		}
		sh, ok := s.shapes[id]
		if !ok {
			return
		}
		seen[id] = struct{}{}
		out = append(out, id)
		for _, childID := range sh.Children {
			visit(childID)
		}
		if sh.BoundTextID != "" {
			visit(sh.BoundTextID)
		}
	}
	for _, id := range ids {
		visit(id)
	}

	// A bound text deleted without its container leaves the reference
	// cleared on the surviving container.
	for _, id := range out {
		sh := s.shapes[id]
		if sh.ParentID == "" {
			continue
		}
		if _, containerDying := seen[sh.ParentID]; containerDying {
			continue
		}
		if container, ok := s.shapes[sh.ParentID]; ok && container.BoundTextID == id {
			container.BoundTextID = ""
		}
	}
	return out
}

package document

import (
	"slices"

	"github.com/sketchwell/sketchwell/engine-go/internal/geometry"
	"github.com/sketchwell/sketchwell/engine-go/internal/shape"
)

// GroupSelected wraps the current selection (two or more shapes) in a new
// group: members leave the order list and the group takes the slot of the
// first removed member. The group frame is the union of member bounds at
// creation time and is not kept live afterwards.
func (s *Store) GroupSelected() *shape.Shape {
	members := s.SelectedIDs()
	if len(members) < 2 {
		return nil
	}

	bounds := s.shapes[members[0]].Bounds()
	for _, id := range members[1:] {
		bounds = bounds.Union(s.shapes[id].Bounds())
	}

	g := shape.New(shape.TypeGroup)
	g.X = bounds.X
	g.Y = bounds.Y
	g.Width = bounds.Width
	g.Height = bounds.Height
	g.Children = members

	insertAt := s.orderIndexOf(members[0])
	for _, id := range members {
		s.shapes[id].ParentID = g.ID
		if i := s.orderIndexOf(id); i >= 0 {
			s.order = slices.Delete(s.order, i, i+1)
		}
	}
	s.shapes[g.ID] = g
	s.order = slices.Insert(s.order, min(insertAt, len(s.order)), g.ID)
	s.selection = map[string]struct{}{g.ID: {}}

	s.history.Record(Command{
		Type:       CommandCreate,
		Shapes:     []*shape.Shape{g.Clone()},
		OrderIndex: []int{s.orderIndexOf(g.ID)},
	})
	return g
}

// UngroupSelected dissolves every selected group: children get their
// parent reference cleared and are spliced back into the order list at the
// group's slot in their original relative order. Each dissolved group
// records one delete command.
func (s *Store) UngroupSelected() {
	for _, id := range s.SelectedIDs() {
		g, ok := s.shapes[id]
		if !ok || g.Type != shape.TypeGroup {
			continue
		}

		idx := s.orderIndexOf(id)
		snapshot := g.Clone()

		delete(s.shapes, id)
		delete(s.selection, id)
		s.order = slices.Delete(s.order, idx, idx+1)

		restored := make([]string, 0, len(g.Children))
		for _, childID := range g.Children {
			if child, ok := s.shapes[childID]; ok {
				child.ParentID = ""
				restored = append(restored, childID)
			}
		}
		s.order = slices.Insert(s.order, idx, restored...)
		for _, childID := range restored {
			s.selection[childID] = struct{}{}
		}

		s.history.Record(Command{
			Type:       CommandDelete,
			Shapes:     []*shape.Shape{snapshot},
			OrderIndex: []int{idx},
		})
	}
}

// Descendants returns the transitive member ids of a group, depth first.
// Non-group ids yield nil. Members missing from the document are skipped.
func (s *Store) Descendants(id string) []string {
	sh, ok := s.shapes[id]
	if !ok || sh.Type != shape.TypeGroup {
		return nil
	}
	var out []string
	for _, childID := range sh.Children {
		if _, ok := s.shapes[childID]; !ok {
			continue
		}
		out = append(out, childID)
		out = append(out, s.Descendants(childID)...)
	}
	return out
}

// SyncGroupBounds recomputes a group's frame from its current children.
// Group bounds are otherwise a snapshot taken at creation; this is the
// explicit resync.
func (s *Store) SyncGroupBounds(groupID string) {
	g, ok := s.shapes[groupID]
	if !ok || g.Type != shape.TypeGroup || len(g.Children) == 0 {
		return
	}
	var bounds geometry.Rect
	first := true
	for _, childID := range g.Children {
		child, ok := s.shapes[childID]
		if !ok {
			continue
		}
		if first {
			bounds = child.Bounds()
			first = false
		} else {
			bounds = bounds.Union(child.Bounds())
		}
	}
	if first {
		return
	}
	g.X, g.Y, g.Width, g.Height = bounds.X, bounds.Y, bounds.Width, bounds.Height
}

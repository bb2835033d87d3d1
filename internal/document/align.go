package document

import (
	"github.com/sketchwell/sketchwell/engine-go/internal/geometry"
	"github.com/sketchwell/sketchwell/engine-go/internal/shape"
)

// AlignSelected aligns the selected shapes (two or more) to their union
// bounds, recording the whole move as one batched update.
func (s *Store) AlignSelected(a geometry.Alignment) {
	ids := s.SelectedIDs()
	if len(ids) < 2 {
		return
	}
	rects := s.selectedBounds(ids)
	s.applyOffsets(ids, geometry.AlignOffsets(rects, a))
}

// DistributeSelected spreads the selected shapes (three or more) evenly
// along the axis, recording one batched update.
func (s *Store) DistributeSelected(axis geometry.Axis) {
	ids := s.SelectedIDs()
	if len(ids) < 3 {
		return
	}
	rects := s.selectedBounds(ids)
	s.applyOffsets(ids, geometry.DistributeOffsets(rects, axis))
}

func (s *Store) selectedBounds(ids []string) []geometry.Rect {
	rects := make([]geometry.Rect, len(ids))
	for i, id := range ids {
		rects[i] = s.shapes[id].Bounds()
	}
	return rects
}

// applyOffsets translates each shape by its offset, snapshotting before and
// after states (bound text and group members included) into a single history
// entry. All-zero offsets record nothing.
func (s *Store) applyOffsets(ids []string, offsets []geometry.Point) {
	moved := false
	for _, o := range offsets {
		if o.X != 0 || o.Y != 0 {
			moved = true
			break
		}
	}
	if !moved {
		return
	}

	var before, after []*shape.Shape
	for i, id := range ids {
		targets := []*shape.Shape{s.shapes[id]}
		for _, did := range s.Descendants(id) {
			targets = append(targets, s.shapes[did])
		}
		for _, sh := range targets[:len(targets):len(targets)] {
			if t, ok := s.BoundText(sh.ID); ok {
				targets = append(targets, t)
			}
		}
		for _, t := range targets {
			before = append(before, t.Clone())
		}
		s.TranslateShapes([]string{id}, offsets[i].X, offsets[i].Y)
		for _, t := range targets {
			after = append(after, t.Clone())
		}
	}
	s.RecordBatchUpdate(before, after)
}

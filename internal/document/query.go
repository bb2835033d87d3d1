package document

import (
	"github.com/sketchwell/sketchwell/engine-go/internal/geometry"
	"github.com/sketchwell/sketchwell/engine-go/internal/shape"
)

// HitShape returns the topmost order-list shape hit at p, scanning front to
// back, or nil. Locked shapes never hit.
func (s *Store) HitShape(p geometry.Point, tolerance float64) *shape.Shape {
	for i := len(s.order) - 1; i >= 0; i-- {
		sh := s.shapes[s.order[i]]
		if shape.HitTest(sh, p, tolerance) {
			return sh
		}
	}
	return nil
}

// ShapesInRect returns order-list ids whose bounds lie fully inside r,
// back to front. Used for marquee selection.
func (s *Store) ShapesInRect(r geometry.Rect) []string {
	var out []string
	for _, id := range s.order {
		b := s.shapes[id].Bounds()
		if b.X >= r.X && b.Y >= r.Y &&
			b.X+b.Width <= r.X+r.Width && b.Y+b.Height <= r.Y+r.Height {
			out = append(out, id)
		}
	}
	return out
}

// UnselectedBounds returns the bounds of every order-list shape outside the
// selection. These are the snap anchors for a move gesture.
func (s *Store) UnselectedBounds() []geometry.Rect {
	out := make([]geometry.Rect, 0, len(s.order))
	for _, id := range s.order {
		if s.IsSelected(id) {
			continue
		}
		out = append(out, s.shapes[id].Bounds())
	}
	return out
}

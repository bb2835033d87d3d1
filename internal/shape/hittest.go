package shape

import (
	"math"

	"github.com/sketchwell/sketchwell/engine-go/internal/geometry"
)

// DefaultHitTolerance expands hit areas so thin shapes stay clickable.
const DefaultHitTolerance = 10.0

// arrowheadLength is the side length of the triangle at an arrow's end.
const arrowheadLength = 15.0

// HitTest reports whether p hits the shape, with hit areas expanded by
// tolerance. The point is first un-rotated about the shape center so all
// per-type math is axis-aligned. Locked shapes never hit.
func HitTest(s *Shape, p geometry.Point, tolerance float64) bool {
	if s.Locked {
		return false
	}

	local := geometry.RotatePoint(p, s.Center(), -s.Angle)

	switch s.Type {
	case TypeRectangle, TypeEllipse, TypeImage, TypeText, TypeGroup, TypeCustom:
		b := s.Bounds()
		if b.IsEmpty() && tolerance <= 0 {
			return false
		}
		return b.Expand(tolerance).Contains(local.X, local.Y)
	case TypeLine:
		return hitSegments(s, local, tolerance)
	case TypeArrow:
		return hitSegments(s, local, tolerance) || hitArrowhead(s, local)
	case TypeDraw:
		return hitSegments(s, local, tolerance)
	}
	return false
}

// hitSegments tests the point against every consecutive segment of the
// shape's point list. Zero-length point lists are a degenerate no-hit.
func hitSegments(s *Shape, p geometry.Point, tolerance float64) bool {
	if len(s.Points) < 2 {
		return false
	}
	threshold := tolerance + s.Style.StrokeWidth/2
	for i := 0; i < len(s.Points)-1; i++ {
		a := geometry.Point{X: s.X + s.Points[i].X, Y: s.Y + s.Points[i].Y}
		b := geometry.Point{X: s.X + s.Points[i+1].X, Y: s.Y + s.Points[i+1].Y}
		if geometry.DistanceToSegment(p, a, b) <= threshold {
			return true
		}
	}
	return false
}

// hitArrowhead tests the point against the triangle at the arrow's last
// point, oriented along the final segment.
func hitArrowhead(s *Shape, p geometry.Point) bool {
	if len(s.Points) < 2 {
		return false
	}
	last := s.Points[len(s.Points)-1]
	prev := s.Points[len(s.Points)-2]
	tip := geometry.Point{X: s.X + last.X, Y: s.Y + last.Y}
	tail := geometry.Point{X: s.X + prev.X, Y: s.Y + prev.Y}

	dx := tip.X - tail.X
	dy := tip.Y - tail.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return false
	}
	ux, uy := dx/length, dy/length

	// Base corners sit arrowheadLength behind the tip, offset perpendicular
	// to the segment direction.
	baseX := tip.X - ux*arrowheadLength
	baseY := tip.Y - uy*arrowheadLength
	half := arrowheadLength / 2
	left := geometry.Point{X: baseX - uy*half, Y: baseY + ux*half}
	right := geometry.Point{X: baseX + uy*half, Y: baseY - ux*half}

	return geometry.PointInTriangle(p, tip, left, right)
}

package geometry

import "math"

// Handle identifies one of the eight resize handles or the rotation handle
// drawn around a selection.
type Handle string

const (
	HandleTopLeft      Handle = "top-left"
	HandleTopCenter    Handle = "top-center"
	HandleTopRight     Handle = "top-right"
	HandleMiddleLeft   Handle = "middle-left"
	HandleMiddleRight  Handle = "middle-right"
	HandleBottomLeft   Handle = "bottom-left"
	HandleBottomCenter Handle = "bottom-center"
	HandleBottomRight  Handle = "bottom-right"
	HandleRotation     Handle = "rotation"
	HandleNone         Handle = ""
)

const (
	// MinShapeSize is the smallest width/height a resize may produce.
	MinShapeSize = 10.0

	// HandleSize is the edge length of the square hit area around a handle.
	HandleSize = 8.0

	// RotationHandleOffset is the gap between the selection's top edge and
	// the rotation handle.
	RotationHandleOffset = 20.0
)

// resizeHandles lists the eight handles in canonical order.
var resizeHandles = []Handle{
	HandleTopLeft, HandleTopCenter, HandleTopRight,
	HandleMiddleLeft, HandleMiddleRight,
	HandleBottomLeft, HandleBottomCenter, HandleBottomRight,
}

// HandlePosition returns the center point of a handle for the given bounds.
func HandlePosition(bounds Rect, h Handle) Point {
	cx, cy := bounds.Center()
	switch h {
	case HandleTopLeft:
		return Point{X: bounds.X, Y: bounds.Y}
	case HandleTopCenter:
		return Point{X: cx, Y: bounds.Y}
	case HandleTopRight:
		return Point{X: bounds.X + bounds.Width, Y: bounds.Y}
	case HandleMiddleLeft:
		return Point{X: bounds.X, Y: cy}
	case HandleMiddleRight:
		return Point{X: bounds.X + bounds.Width, Y: cy}
	case HandleBottomLeft:
		return Point{X: bounds.X, Y: bounds.Y + bounds.Height}
	case HandleBottomCenter:
		return Point{X: cx, Y: bounds.Y + bounds.Height}
	case HandleBottomRight:
		return Point{X: bounds.X + bounds.Width, Y: bounds.Y + bounds.Height}
	case HandleRotation:
		return Point{X: cx, Y: bounds.Y - RotationHandleOffset}
	}
	return Point{}
}

// HitHandle returns the handle under p for the given selection bounds, or
// HandleNone. The rotation handle is tested first since it sits outside the
// bounds and must not be shadowed by the top-center handle.
func HitHandle(p Point, bounds Rect) Handle {
	if hitHandleAt(p, HandlePosition(bounds, HandleRotation)) {
		return HandleRotation
	}
	for _, h := range resizeHandles {
		if hitHandleAt(p, HandlePosition(bounds, h)) {
			return h
		}
	}
	return HandleNone
}

func hitHandleAt(p, center Point) bool {
	half := HandleSize / 2
	return math.Abs(p.X-center.X) <= half && math.Abs(p.Y-center.Y) <= half
}

// Resize applies a handle drag of (dx, dy) to start and returns the new
// frame. Width and height are clamped to MinShapeSize; when a clamp fires,
// the anchor edge is corrected so the opposite edge stays fixed.
func Resize(start Rect, h Handle, dx, dy float64) Rect {
	r := start

	switch h {
	case HandleTopLeft:
		r.X += dx
		r.Y += dy
		r.Width -= dx
		r.Height -= dy
	case HandleTopCenter:
		r.Y += dy
		r.Height -= dy
	case HandleTopRight:
		r.Y += dy
		r.Width += dx
		r.Height -= dy
	case HandleMiddleLeft:
		r.X += dx
		r.Width -= dx
	case HandleMiddleRight:
		r.Width += dx
	case HandleBottomLeft:
		r.X += dx
		r.Width -= dx
		r.Height += dy
	case HandleBottomCenter:
		r.Height += dy
	case HandleBottomRight:
		r.Width += dx
		r.Height += dy
	default:
		return start
	}

	// Clamp to the minimum size, keeping the opposite edge in place. Left
	// and top handles move the origin, so the origin absorbs the correction.
	if r.Width < MinShapeSize {
		if movesLeftEdge(h) {
			r.X = start.X + start.Width - MinShapeSize
		}
		r.Width = MinShapeSize
	}
	if r.Height < MinShapeSize {
		if movesTopEdge(h) {
			r.Y = start.Y + start.Height - MinShapeSize
		}
		r.Height = MinShapeSize
	}

	return r
}

func movesLeftEdge(h Handle) bool {
	return h == HandleTopLeft || h == HandleMiddleLeft || h == HandleBottomLeft
}

func movesTopEdge(h Handle) bool {
	return h == HandleTopLeft || h == HandleTopCenter || h == HandleTopRight
}

// RotationDelta computes the rotation applied by dragging from startPointer
// to pointer around the given center, in radians. With snap15 the delta is
// snapped to 15 degree increments.
func RotationDelta(center, startPointer, pointer Point, snap15 bool) float64 {
	startAngle := math.Atan2(startPointer.Y-center.Y, startPointer.X-center.X)
	angle := math.Atan2(pointer.Y-center.Y, pointer.X-center.X)
	delta := angle - startAngle
	if snap15 {
		delta = SnapAngle(delta, 15*math.Pi/180)
	}
	return delta
}

package geometry

import "math"

// SnapThreshold is the maximum distance at which shape-to-shape snapping
// engages, per axis.
const SnapThreshold = 5.0

// snapProximity limits which anchor rects are considered at all. Rects
// further than this from the moving bounds are skipped before any line
// comparison happens.
const snapProximity = 100.0

// GuideLine is alignment feedback for the renderer to draw. Orientation is
// "vertical" or "horizontal"; Position is the x (vertical) or y (horizontal)
// coordinate of the line, and From/To are its extents.
type GuideLine struct {
	Orientation string  `json:"orientation"`
	Position    float64 `json:"position"`
	From        Point   `json:"from"`
	To          Point   `json:"to"`
}

// SnapResult describes the per-axis adjustment chosen by SnapBounds.
type SnapResult struct {
	OffsetX  float64
	OffsetY  float64
	SnappedX bool
	SnappedY bool
	Guides   []GuideLine
}

// SnapBounds compares the moving bounds' left/center/right lines against the
// same lines of every anchor rect, and top/center/bottom likewise, choosing
// the smallest offset within SnapThreshold independently per axis. Anchors
// outside a coarse proximity box are skipped.
func SnapBounds(moving Rect, anchors []Rect) SnapResult {
	res := SnapResult{}
	bestX := math.Inf(1)
	bestY := math.Inf(1)
	var bestXGuide, bestYGuide GuideLine

	proximity := moving.Expand(snapProximity)

	movingX := [3]float64{moving.X, moving.X + moving.Width/2, moving.X + moving.Width}
	movingY := [3]float64{moving.Y, moving.Y + moving.Height/2, moving.Y + moving.Height}

	for _, a := range anchors {
		if !proximity.Intersects(a.Expand(snapProximity)) {
			continue
		}

		anchorX := [3]float64{a.X, a.X + a.Width/2, a.X + a.Width}
		anchorY := [3]float64{a.Y, a.Y + a.Height/2, a.Y + a.Height}

		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				dx := anchorX[j] - movingX[i]
				if d := math.Abs(dx); d <= SnapThreshold && d < math.Abs(bestX) {
					bestX = dx
					bestXGuide = verticalGuide(anchorX[j], moving, a)
				}
				dy := anchorY[j] - movingY[i]
				if d := math.Abs(dy); d <= SnapThreshold && d < math.Abs(bestY) {
					bestY = dy
					bestYGuide = horizontalGuide(anchorY[j], moving, a)
				}
			}
		}
	}

	if !math.IsInf(bestX, 1) {
		res.SnappedX = true
		res.OffsetX = bestX
		res.Guides = append(res.Guides, bestXGuide)
	}
	if !math.IsInf(bestY, 1) {
		res.SnappedY = true
		res.OffsetY = bestY
		res.Guides = append(res.Guides, bestYGuide)
	}
	return res
}

func verticalGuide(x float64, moving, anchor Rect) GuideLine {
	top := min(moving.Y, anchor.Y)
	bottom := max(moving.Y+moving.Height, anchor.Y+anchor.Height)
	return GuideLine{
		Orientation: "vertical",
		Position:    x,
		From:        Point{X: x, Y: top},
		To:          Point{X: x, Y: bottom},
	}
}

func horizontalGuide(y float64, moving, anchor Rect) GuideLine {
	left := min(moving.X, anchor.X)
	right := max(moving.X+moving.Width, anchor.X+anchor.Width)
	return GuideLine{
		Orientation: "horizontal",
		Position:    y,
		From:        Point{X: left, Y: y},
		To:          Point{X: right, Y: y},
	}
}

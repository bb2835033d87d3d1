package shape

import (
	"math"
	"testing"

	"github.com/sketchwell/sketchwell/engine-go/internal/geometry"
)

func TestHitTestRectangle(t *testing.T) {
	sh := New(TypeRectangle)
	sh.X, sh.Y, sh.Width, sh.Height = 100, 100, 80, 60

	tests := []struct {
		name string
		p    geometry.Point
		want bool
	}{
		{"interior", geometry.Point{X: 140, Y: 130}, true},
		{"within tolerance outside edge", geometry.Point{X: 185, Y: 130}, true},
		{"beyond tolerance", geometry.Point{X: 195, Y: 130}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HitTest(sh, tt.p, DefaultHitTolerance); got != tt.want {
				t.Errorf("HitTest(%+v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestHitTestRotatedRectangle(t *testing.T) {
	// 40x20 rectangle centered at (100,100) rotated a quarter turn: the hit
	// area follows the rotation, so a point above the center hits and a
	// point to the right does not.
	sh := New(TypeRectangle)
	sh.X, sh.Y, sh.Width, sh.Height = 80, 90, 40, 20
	sh.Angle = math.Pi / 2

	if !HitTest(sh, geometry.Point{X: 100, Y: 130}, DefaultHitTolerance) {
		t.Error("point along the rotated long axis must hit")
	}
	if HitTest(sh, geometry.Point{X: 130, Y: 100}, DefaultHitTolerance) {
		t.Error("point along the unrotated long axis must not hit")
	}
}

func TestHitTestLocked(t *testing.T) {
	sh := New(TypeRectangle)
	sh.X, sh.Y, sh.Width, sh.Height = 0, 0, 100, 100
	sh.Locked = true
	if HitTest(sh, geometry.Point{X: 50, Y: 50}, DefaultHitTolerance) {
		t.Error("locked shape must never hit")
	}
}

func TestHitTestLine(t *testing.T) {
	sh := New(TypeLine)
	sh.X, sh.Y = 10, 10
	sh.Style.StrokeWidth = 2
	sh.Points = []geometry.Point{{X: 0, Y: 0}, {X: 100, Y: 0}}

	// Threshold is tolerance + half the stroke width = 11.
	tests := []struct {
		name string
		p    geometry.Point
		want bool
	}{
		{"on the segment", geometry.Point{X: 60, Y: 10}, true},
		{"just inside threshold", geometry.Point{X: 60, Y: 20}, true},
		{"just outside threshold", geometry.Point{X: 60, Y: 22}, false},
		{"past the endpoint", geometry.Point{X: 140, Y: 10}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HitTest(sh, tt.p, DefaultHitTolerance); got != tt.want {
				t.Errorf("HitTest(%+v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestHitTestLineDegenerate(t *testing.T) {
	sh := New(TypeLine)
	sh.Points = []geometry.Point{{X: 5, Y: 5}}
	if HitTest(sh, geometry.Point{X: 5, Y: 5}, DefaultHitTolerance) {
		t.Error("single-point line must not hit")
	}
}

func TestHitTestArrowhead(t *testing.T) {
	// Rightward arrow ending at (100, 0): the arrowhead triangle extends
	// sideways past the segment threshold near the tip.
	sh := New(TypeArrow)
	sh.Points = []geometry.Point{{X: 0, Y: 0}, {X: 100, Y: 0}}

	// Inside the triangle: slightly behind the tip, slightly off axis.
	if !HitTest(sh, geometry.Point{X: 95, Y: 2}, 0) {
		t.Error("point inside the arrowhead must hit")
	}
	// Behind the triangle base.
	if !HitTest(sh, geometry.Point{X: 50, Y: 0}, 0) {
		t.Error("point on the shaft must hit")
	}
	if HitTest(sh, geometry.Point{X: 95, Y: 9}, 0) {
		t.Error("point beside the arrowhead must not hit")
	}
}

func TestHitTestDraw(t *testing.T) {
	sh := New(TypeDraw)
	sh.X, sh.Y = 0, 0
	sh.Points = []geometry.Point{{X: 0, Y: 0}, {X: 20, Y: 20}, {X: 40, Y: 0}}

	if !HitTest(sh, geometry.Point{X: 30, Y: 10}, 1) {
		t.Error("point on the polyline must hit")
	}
	if HitTest(sh, geometry.Point{X: 20, Y: 0}, 1) {
		t.Error("point between the strokes must not hit")
	}
}

func TestShapeBounds(t *testing.T) {
	sh := New(TypeLine)
	sh.X, sh.Y = 10, 20
	sh.Points = []geometry.Point{{X: 0, Y: 0}, {X: 30, Y: -5}}
	b := sh.Bounds()
	want := geometry.Rect{X: 10, Y: 15, Width: 30, Height: 5}
	if b != want {
		t.Errorf("Bounds() = %+v, want %+v", b, want)
	}
}

func TestCloneIsDeep(t *testing.T) {
	sh := New(TypeDraw)
	sh.Points = []geometry.Point{{X: 1, Y: 1}}
	sh.Children = []string{"a"}
	sh.Custom = map[string]any{"k": "v"}

	c := sh.Clone()
	c.Points[0].X = 99
	c.Children[0] = "b"
	c.Custom["k"] = "w"

	if sh.Points[0].X == 99 || sh.Children[0] == "b" || sh.Custom["k"] == "w" {
		t.Error("Clone shares backing storage with the original")
	}
}

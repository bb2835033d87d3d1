package geometry

import (
	"math"
	"testing"
)

func TestResize(t *testing.T) {
	start := Rect{X: 100, Y: 100, Width: 80, Height: 60}

	tests := []struct {
		name   string
		handle Handle
		dx, dy float64
		want   Rect
	}{
		{
			name:   "bottom-right grows both axes",
			handle: HandleBottomRight,
			dx:     20, dy: 10,
			want: Rect{X: 100, Y: 100, Width: 100, Height: 70},
		},
		{
			name:   "top-left moves origin and shrinks",
			handle: HandleTopLeft,
			dx:     10, dy: 20,
			want: Rect{X: 110, Y: 120, Width: 70, Height: 40},
		},
		{
			name:   "middle-right leaves height alone",
			handle: HandleMiddleRight,
			dx:     -30, dy: 999,
			want: Rect{X: 100, Y: 100, Width: 50, Height: 60},
		},
		{
			name:   "top-center leaves width alone",
			handle: HandleTopCenter,
			dx:     999, dy: -15,
			want: Rect{X: 100, Y: 85, Width: 80, Height: 75},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resize(start, tt.handle, tt.dx, tt.dy); !rectsEqual(got, tt.want) {
				t.Errorf("Resize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestResizeMinClamp(t *testing.T) {
	start := Rect{X: 100, Y: 100, Width: 80, Height: 60}

	t.Run("right handle clamps width", func(t *testing.T) {
		got := Resize(start, HandleMiddleRight, -200, 0)
		if got.Width != MinShapeSize {
			t.Fatalf("width = %v, want %v", got.Width, MinShapeSize)
		}
		if got.X != start.X {
			t.Errorf("x moved to %v, want %v", got.X, start.X)
		}
	})

	t.Run("top-left clamp keeps bottom-right fixed", func(t *testing.T) {
		got := Resize(start, HandleTopLeft, 200, 200)
		if got.Width != MinShapeSize || got.Height != MinShapeSize {
			t.Fatalf("size = %vx%v, want %vx%v", got.Width, got.Height, MinShapeSize, MinShapeSize)
		}
		if got.X+got.Width != start.X+start.Width {
			t.Errorf("right edge moved: %v, want %v", got.X+got.Width, start.X+start.Width)
		}
		if got.Y+got.Height != start.Y+start.Height {
			t.Errorf("bottom edge moved: %v, want %v", got.Y+got.Height, start.Y+start.Height)
		}
	})
}

func TestHitHandle(t *testing.T) {
	bounds := Rect{X: 100, Y: 100, Width: 80, Height: 60}

	tests := []struct {
		name string
		p    Point
		want Handle
	}{
		{"top-left corner", Point{X: 100, Y: 100}, HandleTopLeft},
		{"bottom-right within half size", Point{X: 183, Y: 163}, HandleBottomRight},
		{"rotation handle above top-center", Point{X: 140, Y: 80}, HandleRotation},
		{"shape interior misses", Point{X: 140, Y: 130}, HandleNone},
		{"just outside handle box", Point{X: 100, Y: 95}, HandleNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HitHandle(tt.p, bounds); got != tt.want {
				t.Errorf("HitHandle(%+v) = %q, want %q", tt.p, got, tt.want)
			}
		})
	}
}

func TestRotationDelta(t *testing.T) {
	center := Point{X: 0, Y: 0}
	start := Point{X: 10, Y: 0}

	t.Run("quarter turn", func(t *testing.T) {
		got := RotationDelta(center, start, Point{X: 0, Y: 10}, false)
		if !approxEqual(got, math.Pi/2) {
			t.Errorf("delta = %v, want %v", got, math.Pi/2)
		}
	})

	t.Run("shift snaps to 15 degrees", func(t *testing.T) {
		// 22 degrees raw snaps down to the nearest 15 degree step.
		raw := 22 * math.Pi / 180
		pointer := RotatePoint(start, center, raw)
		got := RotationDelta(center, start, pointer, true)
		if !approxEqual(got, 15*math.Pi/180) {
			t.Errorf("snapped delta = %v, want %v", got, 15*math.Pi/180)
		}
	})
}

func TestHandlePositionRotation(t *testing.T) {
	bounds := Rect{X: 0, Y: 0, Width: 40, Height: 40}
	got := HandlePosition(bounds, HandleRotation)
	want := Point{X: 20, Y: -RotationHandleOffset}
	if !pointsEqual(got, want) {
		t.Errorf("HandlePosition(rotation) = %+v, want %+v", got, want)
	}
}

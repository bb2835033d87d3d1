package geometry

import "testing"

func TestSnapBounds(t *testing.T) {
	anchor := Rect{X: 100, Y: 100, Width: 50, Height: 50}

	t.Run("left edge snaps within threshold", func(t *testing.T) {
		moving := Rect{X: 103, Y: 200, Width: 30, Height: 30}
		res := SnapBounds(moving, []Rect{anchor})
		if !res.SnappedX {
			t.Fatal("expected horizontal snap")
		}
		if !approxEqual(res.OffsetX, -3) {
			t.Errorf("OffsetX = %v, want -3", res.OffsetX)
		}
	})

	t.Run("beyond threshold no snap", func(t *testing.T) {
		// All three vertical lines of the moving rect stay more than the
		// threshold away from all three anchor lines.
		moving := Rect{X: 108, Y: 300, Width: 4, Height: 30}
		res := SnapBounds(moving, []Rect{anchor})
		if res.SnappedX {
			t.Errorf("unexpected horizontal snap, offset %v", res.OffsetX)
		}
	})

	t.Run("axes snap independently", func(t *testing.T) {
		// Left edge 2 off anchor's left, top edge 4 off anchor's bottom.
		moving := Rect{X: 102, Y: 154, Width: 30, Height: 30}
		res := SnapBounds(moving, []Rect{anchor})
		if !res.SnappedX || !res.SnappedY {
			t.Fatalf("snapped = (%v, %v), want both", res.SnappedX, res.SnappedY)
		}
		if !approxEqual(res.OffsetX, -2) || !approxEqual(res.OffsetY, -4) {
			t.Errorf("offsets = (%v, %v), want (-2, -4)", res.OffsetX, res.OffsetY)
		}
		if len(res.Guides) != 2 {
			t.Errorf("guides = %d, want 2", len(res.Guides))
		}
	})

	t.Run("centers snap", func(t *testing.T) {
		// Moving center x at 126, anchor center x at 125.
		moving := Rect{X: 111, Y: 160, Width: 30, Height: 30}
		res := SnapBounds(moving, []Rect{anchor})
		if !res.SnappedX || !approxEqual(res.OffsetX, -1) {
			t.Errorf("center snap offset = %v (snapped %v), want -1", res.OffsetX, res.SnappedX)
		}
	})

	t.Run("distant anchors skipped", func(t *testing.T) {
		far := Rect{X: 5000, Y: 5000, Width: 50, Height: 50}
		moving := Rect{X: 103, Y: 200, Width: 30, Height: 30}
		res := SnapBounds(moving, []Rect{far})
		if res.SnappedX || res.SnappedY {
			t.Error("snapped to an anchor outside proximity")
		}
	})

	t.Run("smallest offset wins", func(t *testing.T) {
		// Equal widths keep all three line pairs at the same distance, so
		// the anchor at 101 wins over the one at 104.
		near := Rect{X: 104, Y: 200, Width: 10, Height: 10}
		nearer := Rect{X: 101, Y: 200, Width: 10, Height: 10}
		moving := Rect{X: 100, Y: 200, Width: 10, Height: 10}
		res := SnapBounds(moving, []Rect{near, nearer})
		if !approxEqual(res.OffsetX, 1) {
			t.Errorf("OffsetX = %v, want 1", res.OffsetX)
		}
	})
}

func TestSnapBoundsGuideExtents(t *testing.T) {
	anchor := Rect{X: 100, Y: 100, Width: 50, Height: 50}
	moving := Rect{X: 100, Y: 200, Width: 30, Height: 30}
	res := SnapBounds(moving, []Rect{anchor})
	if !res.SnappedX {
		t.Fatal("expected snap")
	}
	g := res.Guides[0]
	if g.Orientation != "vertical" {
		t.Fatalf("orientation = %q, want vertical", g.Orientation)
	}
	if !approxEqual(g.From.Y, 100) || !approxEqual(g.To.Y, 230) {
		t.Errorf("guide spans %v..%v, want 100..230", g.From.Y, g.To.Y)
	}
}

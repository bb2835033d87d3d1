package geometry

import "sort"

// Alignment selects the edge or axis AlignOffsets aligns to.
type Alignment string

const (
	AlignLeft    Alignment = "left"
	AlignRight   Alignment = "right"
	AlignTop     Alignment = "top"
	AlignBottom  Alignment = "bottom"
	AlignCenterH Alignment = "center-horizontal"
	AlignCenterV Alignment = "center-vertical"
)

// AlignOffsets returns, for each input rect, the (dx, dy) translation that
// aligns it to the union bounds of all rects. Fewer than two rects align to
// nothing and produce all-zero offsets.
func AlignOffsets(rects []Rect, a Alignment) []Point {
	offsets := make([]Point, len(rects))
	if len(rects) < 2 {
		return offsets
	}

	union := rects[0]
	for _, r := range rects[1:] {
		union = union.Union(r)
	}
	unionCX, unionCY := union.Center()

	for i, r := range rects {
		cx, cy := r.Center()
		switch a {
		case AlignLeft:
			offsets[i].X = union.X - r.X
		case AlignRight:
			offsets[i].X = (union.X + union.Width) - (r.X + r.Width)
		case AlignTop:
			offsets[i].Y = union.Y - r.Y
		case AlignBottom:
			offsets[i].Y = (union.Y + union.Height) - (r.Y + r.Height)
		case AlignCenterH:
			offsets[i].X = unionCX - cx
		case AlignCenterV:
			offsets[i].Y = unionCY - cy
		}
	}
	return offsets
}

// Axis selects the direction for DistributeOffsets.
type Axis string

const (
	AxisHorizontal Axis = "horizontal"
	AxisVertical   Axis = "vertical"
)

// DistributeOffsets returns per-rect translations that spread the rects
// evenly along the axis: the outermost rects stay fixed and the gaps between
// consecutive rects become equal. Fewer than three rects need no change.
func DistributeOffsets(rects []Rect, axis Axis) []Point {
	offsets := make([]Point, len(rects))
	if len(rects) < 3 {
		return offsets
	}

	idx := make([]int, len(rects))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		if axis == AxisHorizontal {
			return rects[idx[a]].X < rects[idx[b]].X
		}
		return rects[idx[a]].Y < rects[idx[b]].Y
	})

	first := rects[idx[0]]
	last := rects[idx[len(idx)-1]]

	var span, total float64
	if axis == AxisHorizontal {
		span = (last.X + last.Width) - first.X
	} else {
		span = (last.Y + last.Height) - first.Y
	}
	for _, i := range idx {
		if axis == AxisHorizontal {
			total += rects[i].Width
		} else {
			total += rects[i].Height
		}
	}
	gap := (span - total) / float64(len(rects)-1)

	var cursor float64
	if axis == AxisHorizontal {
		cursor = first.X
	} else {
		cursor = first.Y
	}
	for _, i := range idx {
		if axis == AxisHorizontal {
			offsets[i].X = cursor - rects[i].X
			cursor += rects[i].Width + gap
		} else {
			offsets[i].Y = cursor - rects[i].Y
			cursor += rects[i].Height + gap
		}
	}
	return offsets
}

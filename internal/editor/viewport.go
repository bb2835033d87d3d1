package editor

import (
	"time"

	"github.com/sketchwell/sketchwell/engine-go/internal/document"
	"github.com/sketchwell/sketchwell/engine-go/internal/geometry"
)

const (
	MinZoom = 0.1
	MaxZoom = 10.0

	// DefaultZoomDuration is how long an animated zoom eases.
	DefaultZoomDuration = 200 * time.Millisecond
)

// Scheduler queues a step function for the next animation frame. The
// frontend supplies one (requestAnimationFrame or equivalent); steps run on
// the same event loop as all other editor calls.
type Scheduler func(step func())

// zoomAnimation is the cancellation token of an in-flight eased zoom.
// Starting a new animation replaces the editor's token, so a superseded
// step sees itself stale and stops rescheduling — there is never more than
// one viewport writer.
type zoomAnimation struct {
	from, to document.Viewport
	start    time.Time
	duration time.Duration
}

// SetZoom applies a zoom factor immediately, keeping the given canvas point
// stationary on screen.
func (e *Editor) SetZoom(zoom float64, anchor geometry.Point) {
	e.anim = nil
	e.store.SetViewport(zoomedViewport(e.store.Viewport(), zoom, anchor))
}

// Pan shifts the viewport, cancelling any zoom animation.
func (e *Editor) Pan(dx, dy float64) {
	e.anim = nil
	v := e.store.Viewport()
	v.X += dx
	v.Y += dy
	e.store.SetViewport(v)
}

// AnimateZoom eases the viewport to the target zoom over duration,
// scheduling itself one frame at a time. Any in-flight animation is
// superseded.
func (e *Editor) AnimateZoom(zoom float64, anchor geometry.Point, duration time.Duration, schedule Scheduler) {
	if duration <= 0 {
		duration = DefaultZoomDuration
	}
	anim := &zoomAnimation{
		from:     e.store.Viewport(),
		to:       zoomedViewport(e.store.Viewport(), zoom, anchor),
		start:    time.Now(),
		duration: duration,
	}
	e.anim = anim

	var step func()
	step = func() {
		if e.anim != anim {
			return // superseded or cancelled
		}
		t := float64(time.Since(anim.start)) / float64(anim.duration)
		if t >= 1 {
			e.store.SetViewport(anim.to)
			e.anim = nil
			return
		}
		eased := easeOutCubic(t)
		e.store.SetViewport(document.Viewport{
			X:    anim.from.X + (anim.to.X-anim.from.X)*eased,
			Y:    anim.from.Y + (anim.to.Y-anim.from.Y)*eased,
			Zoom: anim.from.Zoom + (anim.to.Zoom-anim.from.Zoom)*eased,
		})
		schedule(step)
	}
	schedule(step)
}

// CancelZoomAnimation stops any in-flight animation, freezing the viewport
// where it is.
func (e *Editor) CancelZoomAnimation() {
	e.anim = nil
}

// ZoomToFit centers the viewport on the content bounds and picks a zoom
// that fits them into the given screen size with a margin.
func (e *Editor) ZoomToFit(screenWidth, screenHeight float64) {
	shapes := e.store.OrderedShapes()
	if len(shapes) == 0 || screenWidth <= 0 || screenHeight <= 0 {
		return
	}
	bounds := shapes[0].Bounds()
	for _, sh := range shapes[1:] {
		bounds = bounds.Union(sh.Bounds())
	}
	const margin = 32.0
	zoom := min(
		(screenWidth-2*margin)/max(bounds.Width, 1),
		(screenHeight-2*margin)/max(bounds.Height, 1),
	)
	zoom = clampZoom(min(zoom, 1))

	cx, cy := bounds.Center()
	e.anim = nil
	e.store.SetViewport(document.Viewport{
		X:    cx - screenWidth/zoom/2,
		Y:    cy - screenHeight/zoom/2,
		Zoom: zoom,
	})
}

func zoomedViewport(v document.Viewport, zoom float64, anchor geometry.Point) document.Viewport {
	zoom = clampZoom(zoom)
	if v.Zoom <= 0 {
		v.Zoom = 1
	}
	// Keep the anchor's canvas position fixed: the viewport origin moves so
	// the anchor maps to the same screen point before and after.
	v.X = anchor.X - (anchor.X-v.X)*v.Zoom/zoom
	v.Y = anchor.Y - (anchor.Y-v.Y)*v.Zoom/zoom
	v.Zoom = zoom
	return v
}

func clampZoom(zoom float64) float64 {
	return max(MinZoom, min(MaxZoom, zoom))
}

func easeOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

package app

import (
	"github.com/irfansharif/vimg/internal/geom"
)

const (
	minZoom = 0.1
	maxZoom = 8.0

	// zoomStep is the magnification applied per scroll notch. Zooming in
	// shrinks the visible extent by 1/zoomStep, zooming out grows it by
	// zoomStep.
	zoomStep = 1.1
)

// Camera manages which region of the canvas is visible: a center point in
// canvas coordinates and a magnification. The visible extent is the canvas
// size divided by Zoom.
type Camera struct {
	Center geom.Point
	Zoom   float64

	canvas Canvas
}

// NewCamera creates a camera showing the whole canvas.
func NewCamera(canvas Canvas) Camera {
	return Camera{
		Center: canvas.Box().Center(),
		Zoom:   1.0,
		canvas: canvas,
	}
}

// SetZoom sets the zoom level, clamping to valid range.
func (c *Camera) SetZoom(zoom float64) {
	if zoom < minZoom {
		c.Zoom = minZoom
	} else if zoom > maxZoom {
		c.Zoom = maxZoom
	} else {
		c.Zoom = zoom
	}
}

// ApplyZoom zooms in one step for a negative scroll delta and out one step for
// a positive one; only the sign of delta is used. Reports whether the camera
// changed (a zero delta, or one that runs into the zoom bounds, does not).
func (c *Camera) ApplyZoom(delta float64) bool {
	old := c.Zoom
	switch {
	case delta < 0:
		c.SetZoom(c.Zoom * zoomStep)
	case delta > 0:
		c.SetZoom(c.Zoom / zoomStep)
	}
	return c.Zoom != old
}

// ApplyPan moves the camera by the negated pointer delta, so dragging the
// image right moves the view left. The delta is applied in canvas units as-is,
// without accounting for zoom: when zoomed in, the same drag covers more of the
// visible content.
func (c *Camera) ApplyPan(dx, dy int) {
	c.Center = c.Center.Sub(geom.MakePoint(float64(dx), float64(dy)))
}

// Extent returns the width and height of the visible region of the canvas.
func (c *Camera) Extent() (w, h float64) {
	return float64(c.canvas.W) / c.Zoom, float64(c.canvas.H) / c.Zoom
}

// Rect returns the visible region of the canvas.
func (c *Camera) Rect() geom.Box {
	w, h := c.Extent()
	return geom.BoxAround(c.Center, w, h)
}

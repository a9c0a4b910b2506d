package app

import (
	"fmt"
	"image"

	"github.com/irfansharif/vimg/internal/geom"
)

// Canvas is the fixed logical coordinate space the image is laid out in. It's
// sized to the display's native resolution at startup and never changes, so
// resizing the window only moves the viewport around, never the content.
type Canvas struct {
	W, H int
}

// NewCanvas validates and returns a canvas of the given size.
func NewCanvas(w, h int) (Canvas, error) {
	if w <= 0 || h <= 0 {
		return Canvas{}, fmt.Errorf("canvas must have positive dimensions, got %dx%d", w, h)
	}
	return Canvas{W: w, H: h}, nil
}

// Size returns the canvas dimensions as an image.Point.
func (c Canvas) Size() image.Point { return image.Pt(c.W, c.H) }

// Box returns the full canvas rectangle.
func (c Canvas) Box() geom.Box { return geom.MakeBox(0, 0, float64(c.W), float64(c.H)) }

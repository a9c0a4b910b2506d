package app

import (
	"log"

	"github.com/irfansharif/vimg/internal/geom"
)

// FitViewport computes the sub-rectangle of a width x height window (in
// normalized [0,1] window coordinates) that the canvas is projected onto. The
// canvas aspect ratio is preserved by pillarboxing windows that are
// proportionally wider than the canvas and letterboxing those that are
// proportionally taller.
//
// A zero-sized window (e.g. while minimized) yields the empty box.
func FitViewport(width, height int, canvas Canvas) geom.Box {
	if width <= 0 || height <= 0 {
		return geom.Box{}
	}
	if canvas.W <= 0 || canvas.H <= 0 {
		log.Fatalf("cannot fit viewport to degenerate canvas %dx%d", canvas.W, canvas.H)
	}

	ratioW := float64(width) / float64(canvas.W)
	ratioH := float64(height) / float64(canvas.H)

	viewport := geom.MakeBox(0, 0, 1, 1)
	switch {
	case ratioW > ratioH: // wider than the canvas; bars left and right
		viewport.W = ratioH / ratioW
		viewport.X = 0.5 * (1 - viewport.W)
	case ratioW < ratioH: // taller than the canvas; bars above and below
		viewport.H = ratioW / ratioH
		viewport.Y = 0.5 * (1 - viewport.H)
	}
	return viewport
}

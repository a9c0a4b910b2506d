package app

import (
	"image"

	"github.com/irfansharif/vimg/internal/geom"
)

// Placement is the transform applied to the source image to lay it out on the
// canvas: a uniform-or-not scale followed by a translation to Position.
type Placement struct {
	Position geom.Point
	Scale    geom.Point
}

// Bounds returns the rectangle covered by an image of the given pixel size
// under this placement.
func (p Placement) Bounds(imageSize image.Point) geom.Box {
	return geom.MakeBox(
		p.Position.X,
		p.Position.Y,
		float64(imageSize.X)*p.Scale.X,
		float64(imageSize.Y)*p.Scale.Y,
	)
}

// ResetZoom shows the image at its actual size. The position is deliberately
// left alone.
func (p *Placement) ResetZoom() {
	p.Scale = geom.MakePoint(1, 1)
}

// CenterAndMaximize computes the placement that scales the image uniformly to
// fill target on its limiting axis and centers it along the other one. Offsets
// are truncated to whole pixels.
//
// Returns false if either size is degenerate, in which case the caller should
// keep its current placement.
func CenterAndMaximize(target, imageSize image.Point) (Placement, bool) {
	if target.X <= 0 || target.Y <= 0 || imageSize.X <= 0 || imageSize.Y <= 0 {
		return Placement{}, false
	}

	ratioY := float64(target.Y) / float64(imageSize.Y)
	ratioX := float64(target.X) / float64(imageSize.X)
	if ratioY < ratioX {
		// Height is the tighter constraint; center horizontally.
		scaledW := int(ratioY * float64(imageSize.X))
		offX := (target.X - scaledW) / 2
		return Placement{
			Position: geom.MakePoint(float64(offX), 0),
			Scale:    geom.MakePoint(ratioY, ratioY),
		}, true
	}

	scaledH := int(ratioX * float64(imageSize.Y))
	offY := (target.Y - scaledH) / 2
	return Placement{
		Position: geom.MakePoint(0, float64(offY)),
		Scale:    geom.MakePoint(ratioX, ratioX),
	}, true
}

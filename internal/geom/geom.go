// Package geom provides the 2D primitives shared by the view logic and the
// renderer:
// - Points/vectors and axis-aligned boxes
// - 2D affine transformations (translation, scaling)
// - Transform composition and box-to-box mapping
package geom

// Point represents a 2D point or vector in Cartesian coordinates.
type Point struct {
	X float64
	Y float64
}

// Box represents an axis-aligned rectangle. X, Y is the top-left corner.
type Box struct {
	X float64
	Y float64
	W float64
	H float64
}

// Affine represents a 2D affine transform in row-major form:
// [ a b c ]
// [ d e f ]
// where (x', y') = (a*x + b*y + c, d*x + e*y + f)
type Affine struct {
	A float64
	B float64
	C float64
	D float64
	E float64
	F float64
}

func MakePoint(x, y float64) Point               { return Point{X: x, Y: y} }
func MakeBox(x, y, w, h float64) Box             { return Box{X: x, Y: y, W: w, H: h} }
func MakeAffine(a, b, c, d, e, f float64) Affine { return Affine{A: a, B: b, C: c, D: d, E: e, F: f} }

func (p Point) Add(q Point) Point     { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point     { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s} }

// Min returns the top-left corner of the box.
func (b Box) Min() Point { return Point{b.X, b.Y} }

// Max returns the bottom-right corner of the box.
func (b Box) Max() Point { return Point{b.X + b.W, b.Y + b.H} }

// Center returns the center of the box.
func (b Box) Center() Point { return Point{b.X + 0.5*b.W, b.Y + 0.5*b.H} }

// Empty reports whether the box covers no area.
func (b Box) Empty() bool { return b.W <= 0 || b.H <= 0 }

// Corners returns the four corners of the box in clockwise order (in a y-down
// coordinate system), starting at the top-left.
func (b Box) Corners() []Point {
	return []Point{
		{b.X, b.Y},
		{b.X + b.W, b.Y},
		{b.X + b.W, b.Y + b.H},
		{b.X, b.Y + b.H},
	}
}

// BoxAround returns the box of the given size centered on c.
func BoxAround(c Point, w, h float64) Box {
	return Box{X: c.X - 0.5*w, Y: c.Y - 0.5*h, W: w, H: h}
}

// MulPoint applies the affine transform to a point.
func (t Affine) MulPoint(p Point) Point {
	return Point{
		X: t.A*p.X + t.B*p.Y + t.C,
		Y: t.D*p.X + t.E*p.Y + t.F,
	}
}

// Mul composes two affine transforms (applies u then t).
func (t Affine) Mul(u Affine) Affine {
	return MakeAffine(
		t.A*u.A+t.B*u.D,
		t.A*u.B+t.B*u.E,
		t.A*u.C+t.B*u.F+t.C,
		t.D*u.A+t.E*u.D,
		t.D*u.B+t.E*u.E,
		t.D*u.C+t.E*u.F+t.F,
	)
}

// Translate returns a transform that offsets points by (dx, dy).
func Translate(dx, dy float64) Affine { return MakeAffine(1, 0, dx, 0, 1, dy) }

// Scale returns a transform that scales points by (sx, sy) about the origin.
func Scale(sx, sy float64) Affine { return MakeAffine(sx, 0, 0, 0, sy, 0) }

// MapBox returns the transform that maps box src onto box dst, scaling each
// axis independently.
func MapBox(src, dst Box) Affine {
	return Translate(dst.X, dst.Y).
		Mul(Scale(dst.W/src.W, dst.H/src.H)).
		Mul(Translate(-src.X, -src.Y))
}

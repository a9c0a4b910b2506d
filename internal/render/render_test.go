package render

import (
	"math"
	"testing"

	"github.com/irfansharif/vimg/internal/geom"
)

func TestViewportPixels(t *testing.T) {
	for _, tc := range []struct {
		vp         geom.Box
		fbW, fbH   int
		x, y, w, h int32
	}{
		{geom.MakeBox(0, 0, 1, 1), 800, 600, 0, 0, 800, 600},
		{geom.Box{}, 800, 600, 0, 600, 0, 0},
		{geom.MakeBox(0.25, 0, 0.5, 1), 800, 600, 200, 0, 400, 600},
		{geom.MakeBox(0, 0.1, 1, 0.8), 800, 600, 0, 60, 800, 480},
		{geom.MakeBox(0, 0, 1, 0.5), 100, 100, 0, 50, 100, 50},
	} {
		x, y, w, h := viewportPixels(tc.vp, tc.fbW, tc.fbH)
		if x != tc.x || y != tc.y || w != tc.w || h != tc.h {
			t.Errorf("viewportPixels(%v, %d, %d) = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
				tc.vp, tc.fbW, tc.fbH, x, y, w, h, tc.x, tc.y, tc.w, tc.h)
		}
	}
}

func apply(m [16]float32, p geom.Point) (float64, float64) {
	// Column-major 4x4 times (x, y, 0, 1).
	x := float64(m[0])*p.X + float64(m[4])*p.Y + float64(m[12])
	y := float64(m[1])*p.X + float64(m[5])*p.Y + float64(m[13])
	return x, y
}

func TestComputeTransformMatrix(t *testing.T) {
	camera := geom.MakeBox(100, 50, 400, 200)
	m := computeTransformMatrix(camera)

	for _, tc := range []struct {
		in   geom.Point
		x, y float64
	}{
		{camera.Min(), -1, 1},
		{camera.Max(), 1, -1},
		{camera.Center(), 0, 0},
		{geom.MakePoint(100, 250), -1, -1},
		{geom.MakePoint(700, 50), 2, 1},
	} {
		x, y := apply(m, tc.in)
		if math.Abs(x-tc.x) > 1e-5 || math.Abs(y-tc.y) > 1e-5 {
			t.Errorf("transform(%v) = (%v, %v), want (%v, %v)", tc.in, x, y, tc.x, tc.y)
		}
	}
}

func TestQuadVertices(t *testing.T) {
	bounds := geom.MakeBox(10, 20, 300, 150)
	vertices := quadVertices(bounds)
	if len(vertices) != 2*3*floatsPerVertex {
		t.Fatalf("got %d floats, want two triangles", len(vertices))
	}

	area := 0.0
	for i := 0; i < len(vertices); i += 3 * floatsPerVertex {
		var pts [3]geom.Point
		for v := 0; v < 3; v++ {
			base := i + v*floatsPerVertex
			x, y, u, tv := vertices[base], vertices[base+1], vertices[base+2], vertices[base+3]
			if x < 10 || x > 310 || y < 20 || y > 170 {
				t.Fatalf("vertex (%v, %v) outside bounds", x, y)
			}
			// Texture coordinates follow position; row 0 at the top.
			if wantU := (float64(x) - 10) / 300; math.Abs(float64(u)-wantU) > 1e-6 {
				t.Fatalf("u = %v at x = %v, want %v", u, x, wantU)
			}
			if wantV := (float64(y) - 20) / 150; math.Abs(float64(tv)-wantV) > 1e-6 {
				t.Fatalf("v = %v at y = %v, want %v", tv, y, wantV)
			}
			pts[v] = geom.MakePoint(float64(x), float64(y))
		}
		area += math.Abs((pts[1].X-pts[0].X)*(pts[2].Y-pts[0].Y)-(pts[2].X-pts[0].X)*(pts[1].Y-pts[0].Y)) / 2
	}
	if math.Abs(area-300*150) > 1e-3 {
		t.Fatalf("triangles cover %v, want %v", area, 300*150)
	}

	if got := quadVertices(geom.Box{}); got != nil {
		t.Fatalf("empty bounds produced %d floats", len(got))
	}
}

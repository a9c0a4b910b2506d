package render

import (
	"log"

	"github.com/rclancey/earcut"

	"github.com/irfansharif/vimg/internal/geom"
)

// earClip triangulates a polygon using the earcut algorithm. It takes in a list
// of polygon vertices in order and returns a slice of triangles, each
// represented as a [3]geom.Point. Degenerate polygons triangulate to nothing.
func earClip(polygonPoints []geom.Point) [][3]geom.Point {
	if len(polygonPoints) < 3 {
		log.Fatalf("Degenerate polygon (%d vertices < 3)", len(polygonPoints))
	}

	// Convert polygon points to flat coordinate array required by earcut.
	// Format: [x0, y0, x1, y1, ..., xn, yn]
	vertexCoords := make([]float64, len(polygonPoints)*2)
	for i, point := range polygonPoints {
		vertexCoords[i*2] = point.X
		vertexCoords[i*2+1] = point.Y
	}

	triangleIndices, err := earcut.Earcut(vertexCoords, nil /* holeIndices */, 2 /* dim */)
	if err != nil {
		log.Fatalf("Triangulation failed for %d-vertex polygon: %v", len(polygonPoints), err)
	}

	if len(triangleIndices)%3 != 0 {
		log.Fatalf("Invalid triangle count (indices: %d, not divisible by 3)", len(triangleIndices))
	}

	// Convert triangle indices back to geom.Point triangles.
	triangles := make([][3]geom.Point, len(triangleIndices)/3)
	for i := range triangles {
		for v := 0; v < 3; v++ {
			idx := triangleIndices[i*3+v]
			triangles[i][v] = geom.Point{X: vertexCoords[idx*2], Y: vertexCoords[idx*2+1]}
		}
	}
	return triangles
}

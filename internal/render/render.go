// Package render draws the loaded image with OpenGL.
//
// It takes the image placement and camera from the app package and:
// 1. Triangulates the placed image quad in canvas coordinates.
// 2. Maps the camera's visible region of the canvas to NDC.
// 3. Projects that onto the aspect-preserving viewport of the framebuffer,
// clearing the rest to the background colour.
package render

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"log"
	"math"
	"os"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/irfansharif/vimg/internal/geom"
	"github.com/irfansharif/vimg/internal/palette"
)

var renderLogger *log.Logger = log.New(io.Discard, "", 0)

func init() {
	if os.Getenv("VIMG_DEBUG_RENDER") == "1" {
		renderLogger = log.New(os.Stdout, "[render] ", log.Ltime|log.Lmsgprefix)
	}
}

const floatsPerVertex = 4 // x, y, u, v

// ndcBox is the NDC square with y pointing up, expressed as a y-down box so
// canvas boxes map onto it directly.
var ndcBox = geom.MakeBox(-1, 1, 2, -2)

type Renderer struct {
	fbW, fbH int
	viewport geom.Box // normalized, y-down
	camera   geom.Box // visible canvas region

	shaderManager *ShaderManager
	texture       uint32
	vao, vbo      uint32
	vertexCount   int32
	quad          geom.Box // placement bounds currently in the VBO

	background color.RGBA
	stats      Stats
}

// Stats tracks rendering performance metrics.
type Stats struct {
	Frames         int
	LastDrawTimeUs float64 // time spent in last Draw() call in microseconds
}

// NewRenderer uploads img as a texture in the current GL context.
func NewRenderer(img *image.RGBA, background color.RGBA, smooth bool) (*Renderer, error) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()

	var maxSize int32
	gl.GetIntegerv(gl.MAX_TEXTURE_SIZE, &maxSize)
	if w > int(maxSize) || h > int(maxSize) {
		return nil, fmt.Errorf("image is %dx%d, larger than the maximum texture size %d", w, h, maxSize)
	}

	r := &Renderer{
		shaderManager: NewShaderManager(),
		background:    background,
	}
	r.texture = uploadTexture(img, smooth)

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	stride := int32(floatsPerVertex * 4)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0) // position
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, 2*4) // texture coordinate
	gl.EnableVertexAttribArray(1)

	renderLogger.Printf("uploaded %dx%d texture (smooth=%t)", w, h, smooth)
	return r, nil
}

// uploadTexture creates a texture holding img. Row 0 of the image ends up at
// v=0.
func uploadTexture(img *image.RGBA, smooth bool) uint32 {
	filter := int32(gl.NEAREST)
	if smooth {
		filter = gl.LINEAR
	}

	var texture uint32
	gl.GenTextures(1, &texture)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(img.Stride/4))
	gl.TexImage2D(
		gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(img.Bounds().Dx()), int32(img.Bounds().Dy()),
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix),
	)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	return texture
}

// SetView sets the framebuffer size, the normalized viewport within it, and
// the region of the canvas shown in that viewport.
func (r *Renderer) SetView(fbW, fbH int, viewport, camera geom.Box) {
	if r.fbW != fbW || r.fbH != fbH || r.viewport != viewport {
		renderLogger.Printf("framebuffer %dx%d, viewport %+v", fbW, fbH, viewport)
	}
	r.fbW, r.fbH = fbW, fbH
	r.viewport = viewport
	r.camera = camera
}

// Draw clears the framebuffer and draws the image covering bounds (in canvas
// coordinates).
func (r *Renderer) Draw(bounds geom.Box) {
	startTime := time.Now()

	if bounds != r.quad {
		r.uploadQuad(bounds)
	}

	// Clear everything, bars included.
	gl.Viewport(0, 0, int32(r.fbW), int32(r.fbH))
	gl.ClearColor(palette.Normalized(r.background))
	gl.Clear(gl.COLOR_BUFFER_BIT)

	x, y, w, h := viewportPixels(r.viewport, r.fbW, r.fbH)
	if w <= 0 || h <= 0 || r.camera.Empty() || r.vertexCount == 0 {
		return // nothing visible
	}
	gl.Viewport(x, y, w, h)

	r.shaderManager.Use()
	r.shaderManager.SetTransform(computeTransformMatrix(r.camera))
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.texture)
	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, r.vertexCount)

	r.stats.Frames++
	r.stats.LastDrawTimeUs = float64(time.Since(startTime).Microseconds())
}

// uploadQuad replaces the VBO contents with the triangulated image quad.
func (r *Renderer) uploadQuad(bounds geom.Box) {
	vertices := quadVertices(bounds)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	if len(vertices) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.DYNAMIC_DRAW)
	}
	r.vertexCount = int32(len(vertices) / floatsPerVertex)
	r.quad = bounds
	renderLogger.Printf("image quad %+v (%d vertices)", bounds, r.vertexCount)
}

// Stats returns the current performance statistics
func (r *Renderer) Stats() Stats {
	return r.stats
}

// Delete releases the GL objects owned by the renderer. The renderer's context
// must be current.
func (r *Renderer) Delete() {
	gl.DeleteTextures(1, &r.texture)
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteVertexArrays(1, &r.vao)
	r.shaderManager.Delete()
}

// quadVertices triangulates the image quad covering bounds, returning
// interleaved position and texture coordinates.
func quadVertices(bounds geom.Box) []float32 {
	if bounds.Empty() {
		return nil
	}

	triangles := earClip(bounds.Corners())
	vertices := make([]float32, 0, len(triangles)*3*floatsPerVertex)
	for _, tri := range triangles {
		for v := 0; v < 3; v++ {
			p := tri[v]
			u := (p.X - bounds.X) / bounds.W
			t := (p.Y - bounds.Y) / bounds.H
			vertices = append(vertices,
				float32(p.X), float32(p.Y), // position
				float32(u), float32(t), // texture coordinate
			)
		}
	}
	return vertices
}

// viewportPixels converts a normalized, y-down viewport into the pixel
// rectangle expected by glViewport (origin at the bottom-left).
func viewportPixels(viewport geom.Box, fbW, fbH int) (x, y, w, h int32) {
	x = int32(math.Round(viewport.X * float64(fbW)))
	w = int32(math.Round(viewport.W * float64(fbW)))
	h = int32(math.Round(viewport.H * float64(fbH)))
	top := int32(math.Round(viewport.Y * float64(fbH)))
	y = int32(fbH) - top - h
	return x, y, w, h
}

// computeTransformMatrix computes the transformation from canvas coordinates
// to NDC such that the camera's visible region fills the viewport.
func computeTransformMatrix(camera geom.Box) [16]float32 {
	return affineToMatrix4(geom.MapBox(camera, ndcBox))
}

// affineToMatrix4 converts an affine transform to OpenGL 4x4 matrix format.
func affineToMatrix4(transform geom.Affine) [16]float32 {
	return [16]float32{
		float32(transform.A), float32(transform.D), 0, 0,
		float32(transform.B), float32(transform.E), 0, 0,
		0, 0, 1, 0,
		float32(transform.C), float32(transform.F), 0, 1,
	}
}

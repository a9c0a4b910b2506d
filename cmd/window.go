package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/irfansharif/vimg/internal/app"
	"github.com/irfansharif/vimg/internal/geom"
	"github.com/irfansharif/vimg/internal/render"
)

// windowStyle is the set of GLFW window attributes that differ between modes.
type windowStyle struct {
	decorated bool
	resizable bool
}

// styleFor maps a window mode to its GLFW style. Fullscreen is a borderless
// window covering the desktop rather than an exclusive video mode switch.
func styleFor(mode app.Mode) windowStyle {
	switch mode {
	case app.Fullscreen:
		return windowStyle{decorated: false, resizable: false}
	default:
		return windowStyle{decorated: true, resizable: true}
	}
}

func (s windowStyle) hints() map[glfw.Hint]int {
	return map[glfw.Hint]int{
		glfw.Decorated: glfwBool(s.decorated),
		glfw.Resizable: glfwBool(s.resizable),
	}
}

func glfwBool(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

// glfwBackend creates GLFW windows, each with its own GL context and a copy
// of the image uploaded as a texture.
type glfwBackend struct {
	title      string
	image      *image.RGBA
	background color.RGBA
	smooth     bool

	glInitialized bool
}

var _ app.Backend = (*glfwBackend)(nil)

func (b *glfwBackend) CreateWindow(mode app.Mode, size image.Point) (app.Window, error) {
	// Configure GLFW window hints - use OpenGL 4.1.
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	for hint, value := range styleFor(mode).hints() {
		glfw.WindowHint(hint, value)
	}

	handle, err := glfw.CreateWindow(size.X, size.Y, b.title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("creating %s window: %w", mode, err)
	}
	handle.MakeContextCurrent()

	// Function pointers are loaded once; all our contexts share a profile.
	if !b.glInitialized {
		if err := gl.Init(); err != nil {
			handle.Destroy()
			return nil, fmt.Errorf("initializing OpenGL: %w", err)
		}
		b.glInitialized = true
	}

	renderer, err := render.NewRenderer(b.image, b.background, b.smooth)
	if err != nil {
		handle.Destroy()
		return nil, err
	}

	return &glfwWindow{
		handle:    handle,
		renderer:  renderer,
		handlers:  NewEventHandlers(handle),
		imageSize: b.image.Bounds().Size(),
	}, nil
}

// glfwWindow is a GLFW window drawing the image through its own renderer. GL
// calls make the window's context current first, since during a window swap
// two contexts are alive at once.
type glfwWindow struct {
	handle    *glfw.Window
	renderer  *render.Renderer
	handlers  *EventHandlers
	imageSize image.Point
}

var _ app.Window = (*glfwWindow)(nil)

func (w *glfwWindow) WaitEvent() (app.Event, bool) {
	if ev, ok := w.handlers.pop(); ok {
		return ev, true
	}
	glfw.WaitEvents()
	return w.handlers.pop()
}

func (w *glfwWindow) Size() image.Point {
	fbW, fbH := w.handle.GetFramebufferSize()
	return image.Pt(fbW, fbH)
}

func (w *glfwWindow) SetPosition(x, y int) {
	w.handle.SetPos(x, y)
}

func (w *glfwWindow) SetVSync(enabled bool) {
	w.handle.MakeContextCurrent()
	if enabled {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
}

func (w *glfwWindow) SetView(viewport, camera geom.Box) {
	fbW, fbH := w.handle.GetFramebufferSize()
	w.renderer.SetView(fbW, fbH, viewport, camera)
}

func (w *glfwWindow) DrawFrame(placement app.Placement) {
	w.handle.MakeContextCurrent()
	w.renderer.Draw(placement.Bounds(w.imageSize))
}

func (w *glfwWindow) Present() {
	w.handle.SwapBuffers()
}

func (w *glfwWindow) Destroy() {
	w.handle.MakeContextCurrent()
	w.renderer.Delete()
	w.handle.Destroy()
}

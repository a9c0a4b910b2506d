package app

import (
	"fmt"
	"image"
	"log"

	"github.com/irfansharif/vimg/internal/geom"
)

// Backend creates windows. Everything platform-specific (the window itself,
// the decoded image, the GL context) lives behind it.
type Backend interface {
	// CreateWindow creates a window of the given size in the given mode. The
	// window must be able to draw the loaded image.
	CreateWindow(mode Mode, size image.Point) (Window, error)
}

// Window is a single on-screen window.
type Window interface {
	// WaitEvent blocks until the next input event is available. It returns
	// false if woken up without an event.
	WaitEvent() (Event, bool)
	// Size returns the current framebuffer size.
	Size() image.Point
	SetPosition(x, y int)
	SetVSync(enabled bool)
	// SetView sets the normalized viewport and the visible region of the
	// canvas for subsequent frames.
	SetView(viewport, camera geom.Box)
	// DrawFrame clears the window and draws the image under the given
	// placement.
	DrawFrame(placement Placement)
	Present()
	Destroy()
}

// Options configures the application.
type Options struct {
	VSync bool
}

// App encapsulates the main application state and the event loop.
type App struct {
	State *State

	backend Backend
	window  Window
	opts    Options

	redraws int
}

// NewApp creates the initial window and state.
func NewApp(backend Backend, canvas Canvas, imageSize image.Point, opts Options) (*App, error) {
	window, err := backend.CreateWindow(Windowed, canvas.Size())
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	app := &App{
		backend: backend,
		window:  window,
		opts:    opts,
	}
	app.configureWindow(window)
	app.State = NewState(canvas, window.Size(), imageSize)
	return app, nil
}

// Run processes events one at a time until the user quits. Each iteration
// waits for an event, applies it, resolves any pending window swap, and
// redraws if anything changed.
func (app *App) Run() {
	if app.State.Dirty {
		app.redraw()
	}

	for {
		ev, ok := app.window.WaitEvent()
		if !ok {
			continue // spurious wakeup
		}

		app.State.Handle(ev)
		if app.State.Quit {
			return
		}

		app.resolvePendingSwap()

		if app.State.Dirty {
			app.redraw()
		}
	}
}

// Frames returns the number of frames drawn so far.
func (app *App) Frames() int {
	return app.redraws
}

// Close releases the current window.
func (app *App) Close() {
	app.window.Destroy()
}

// configureWindow (re)applies per-window settings.
func (app *App) configureWindow(window Window) {
	window.SetPosition(0, 0)
	window.SetVSync(app.opts.VSync)
}

// resolvePendingSwap replaces the window if a mode change was requested. The
// old window is only destroyed once the new one is fully configured; if
// creation fails we stay on the old window and revert the mode.
func (app *App) resolvePendingSwap() {
	swap := app.State.Pending
	if swap == nil {
		return // nothing to do
	}
	app.State.Pending = nil

	window, err := app.backend.CreateWindow(swap.Mode, app.State.Canvas.Size())
	if err != nil {
		log.Printf("WARNING: cannot switch to %s mode: %v", swap.Mode, err)
		app.State.Mode = swap.Mode.Toggle()
		return
	}
	app.configureWindow(window)

	old := app.window
	app.window = window
	old.Destroy()

	eventLogger.Printf("switched to %s mode", swap.Mode)
	app.State.Resize(window.Size())
	app.State.Dirty = true
}

// redraw draws and presents a frame using the current view and placement.
func (app *App) redraw() {
	app.window.SetView(app.State.Viewport, app.State.Camera.Rect())
	app.window.DrawFrame(app.State.Placement)
	app.window.Present()
	app.State.Dirty = false
	app.redraws++
}

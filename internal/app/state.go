package app

import (
	"image"
	"io"
	"log"
	"os"

	"github.com/irfansharif/vimg/internal/geom"
)

var eventLogger *log.Logger = log.New(io.Discard, "", 0)

func init() {
	if os.Getenv("VIMG_DEBUG_EVENTS") == "1" {
		eventLogger = log.New(os.Stdout, "[events] ", log.Ltime|log.Lmsgprefix)
	}
}

// Mode is the window presentation mode.
type Mode int

const (
	Windowed Mode = iota
	Fullscreen
)

func (m Mode) String() string {
	if m == Fullscreen {
		return "fullscreen"
	}
	return "windowed"
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == Fullscreen {
		return Windowed
	}
	return Fullscreen
}

// WindowSwap is a request to replace the current window with one in the given
// mode. It's resolved once per loop iteration, after the event that caused it
// has been fully handled.
type WindowSwap struct {
	Mode Mode
}

// State is everything the event loop mutates. Handlers only ever touch the
// state they're given; window side effects are expressed as requests (Pending,
// Dirty, Quit) that the loop acts on.
type State struct {
	Canvas     Canvas      // fixed at startup
	ImageSize  image.Point // source image, in pixels
	WindowSize image.Point // current framebuffer size

	Viewport  geom.Box // normalized window rectangle the canvas is shown in
	Camera    Camera
	Placement Placement

	// Drag state, set on left-button press and cleared on release or when
	// focus is lost (so a release we never see can't leave us stuck dragging).
	Dragging    bool
	LastPointer image.Point

	Mode    Mode
	Pending *WindowSwap // at most one outstanding window swap

	Dirty bool // a redraw is needed
	Quit  bool
}

// NewState creates the initial state: windowed, whole canvas visible, image
// centered and maximized.
func NewState(canvas Canvas, windowSize, imageSize image.Point) *State {
	s := &State{
		Canvas:    canvas,
		ImageSize: imageSize,
		Camera:    NewCamera(canvas),
		Placement: Placement{Scale: geom.MakePoint(1, 1)},
		Mode:      Windowed,
	}
	s.Resize(windowSize)
	s.ResetView()
	s.Dirty = true
	return s
}

// Handle applies a single event to the state. Unrecognized events are ignored.
func (s *State) Handle(ev Event) {
	eventLogger.Printf("%T %v", ev, ev)

	switch ev := ev.(type) {
	case CloseEvent:
		s.Quit = true
	case KeyEvent:
		s.handleKey(ev.Key)
	case ResizeEvent:
		s.Resize(image.Pt(ev.Width, ev.Height))
	case ScrollEvent:
		if s.Camera.ApplyZoom(ev.Delta) {
			s.Dirty = true
		}
	case ButtonEvent:
		if ev.Button == ButtonLeft {
			s.Dragging = ev.Pressed
		}
	case MoveEvent:
		s.handleMove(image.Pt(ev.X, ev.Y))
	case FocusLostEvent:
		s.Dragging = false
	}
}

func (s *State) handleKey(key Key) {
	switch key {
	case KeyQuit:
		s.Quit = true
	case KeyToggleFullscreen:
		s.Mode = s.Mode.Toggle()
		s.Pending = &WindowSwap{Mode: s.Mode}
	case KeyResetView:
		s.ResetView()
	case KeyActualSize:
		s.Placement.ResetZoom()
		s.Dirty = true
	}
}

// handleMove pans the camera by the pointer delta if a drag is in progress.
// The pointer position is tracked either way, so a drag starts from wherever
// the pointer was when the button went down.
func (s *State) handleMove(pos image.Point) {
	if s.Dragging {
		delta := pos.Sub(s.LastPointer)
		s.Camera.ApplyPan(delta.X, delta.Y)
		s.Dirty = true
	}
	s.LastPointer = pos
}

// Resize records the new window size and refits the viewport.
func (s *State) Resize(size image.Point) {
	s.WindowSize = size
	s.Viewport = FitViewport(size.X, size.Y, s.Canvas)
	s.Dirty = true
}

// ResetView centers and maximizes the image on the canvas. The camera is left
// untouched.
func (s *State) ResetView() {
	placement, ok := CenterAndMaximize(s.Canvas.Size(), s.ImageSize)
	if !ok {
		eventLogger.Printf("skipping reset for degenerate image %v", s.ImageSize)
		return
	}
	s.Placement = placement
	s.Dirty = true
}

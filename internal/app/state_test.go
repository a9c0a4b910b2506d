package app

import (
	"image"
	"testing"

	"github.com/irfansharif/vimg/internal/geom"
)

type unknownEvent struct{}

func (unknownEvent) event() {}

func newTestState(t *testing.T) *State {
	t.Helper()
	s := NewState(mustCanvas(t, 1920, 1080), image.Pt(1920, 1080), image.Pt(640, 480))
	s.Dirty = false
	return s
}

func TestNewState(t *testing.T) {
	canvas := mustCanvas(t, 1920, 1080)
	s := NewState(canvas, image.Pt(960, 1080), image.Pt(640, 480))

	if s.Mode != Windowed {
		t.Fatalf("Mode = %v, want windowed", s.Mode)
	}
	if !s.Dirty {
		t.Fatal("initial state should need a redraw")
	}
	if s.Camera.Rect() != canvas.Box() {
		t.Fatalf("camera = %v, want whole canvas", s.Camera.Rect())
	}
	if want := FitViewport(960, 1080, canvas); s.Viewport != want {
		t.Fatalf("Viewport = %v, want %v", s.Viewport, want)
	}
	if want, _ := CenterAndMaximize(canvas.Size(), image.Pt(640, 480)); s.Placement != want {
		t.Fatalf("Placement = %v, want %v", s.Placement, want)
	}
}

func TestNewStateDegenerateImage(t *testing.T) {
	s := NewState(mustCanvas(t, 1920, 1080), image.Pt(1920, 1080), image.Pt(0, 0))
	if want := (Placement{Scale: geom.MakePoint(1, 1)}); s.Placement != want {
		t.Fatalf("Placement = %v, want identity %v", s.Placement, want)
	}
}

func TestPointerMovesWithoutDragLeaveCamera(t *testing.T) {
	s := newTestState(t)
	camera := s.Camera

	for _, p := range []image.Point{{10, 10}, {300, -20}, {5, 900}, {0, 0}} {
		s.Handle(MoveEvent{X: p.X, Y: p.Y})
		if s.LastPointer != p {
			t.Fatalf("LastPointer = %v, want %v", s.LastPointer, p)
		}
	}
	if s.Camera != camera {
		t.Fatalf("camera changed without dragging: %v -> %v", camera, s.Camera)
	}
	if s.Dirty {
		t.Fatal("pointer moves without dragging requested a redraw")
	}
}

func TestDragAccumulatesNegatedDeltas(t *testing.T) {
	s := newTestState(t)
	start := s.Camera.Center

	s.Handle(MoveEvent{X: 100, Y: 100})
	s.Handle(ButtonEvent{Button: ButtonLeft, Pressed: true})
	s.Handle(MoveEvent{X: 110, Y: 105})
	s.Handle(MoveEvent{X: 130, Y: 95})
	s.Handle(MoveEvent{X: 125, Y: 95})

	// Sum of deltas is (25, -5); the camera moves the opposite way.
	if want := start.Add(geom.MakePoint(-25, 5)); s.Camera.Center != want {
		t.Fatalf("Center = %v, want %v", s.Camera.Center, want)
	}
	if !s.Dirty {
		t.Fatal("drag did not request a redraw")
	}

	s.Handle(ButtonEvent{Button: ButtonLeft, Pressed: false})
	moved := s.Camera.Center
	s.Handle(MoveEvent{X: 500, Y: 500})
	if s.Camera.Center != moved {
		t.Fatal("camera moved after release")
	}
}

func TestOtherButtonsDoNotDrag(t *testing.T) {
	s := newTestState(t)
	s.Handle(ButtonEvent{Button: ButtonOther, Pressed: true})
	if s.Dragging {
		t.Fatal("non-left button started a drag")
	}
}

func TestFocusLossEndsDrag(t *testing.T) {
	s := newTestState(t)
	s.Handle(ButtonEvent{Button: ButtonLeft, Pressed: true})
	s.Handle(FocusLostEvent{})
	if s.Dragging {
		t.Fatal("drag survived focus loss")
	}

	camera := s.Camera
	s.Handle(MoveEvent{X: 40, Y: 40})
	if s.Camera != camera {
		t.Fatal("camera moved after focus loss")
	}
}

func TestScrollZooms(t *testing.T) {
	s := newTestState(t)
	s.Handle(ScrollEvent{Delta: -1})
	if s.Camera.Zoom <= 1 {
		t.Fatalf("Zoom = %v after scrolling down, want > 1", s.Camera.Zoom)
	}
	if !s.Dirty {
		t.Fatal("zoom did not request a redraw")
	}

	s.Dirty = false
	s.Handle(ScrollEvent{Delta: 0})
	if s.Dirty {
		t.Fatal("zero scroll requested a redraw")
	}
}

func TestResizeRefitsViewport(t *testing.T) {
	s := newTestState(t)
	camera, placement := s.Camera, s.Placement

	s.Handle(ResizeEvent{Width: 1000, Height: 1000})
	if want := FitViewport(1000, 1000, s.Canvas); s.Viewport != want {
		t.Fatalf("Viewport = %v, want %v", s.Viewport, want)
	}
	if s.WindowSize != image.Pt(1000, 1000) {
		t.Fatalf("WindowSize = %v", s.WindowSize)
	}
	if s.Camera != camera || s.Placement != placement {
		t.Fatal("resize changed the camera or placement")
	}

	s.Handle(ResizeEvent{Width: 0, Height: 0})
	if s.Viewport != (geom.Box{}) {
		t.Fatalf("Viewport = %v after minimizing, want empty", s.Viewport)
	}
}

func TestKeys(t *testing.T) {
	s := newTestState(t)
	fitted := s.Placement

	s.Handle(KeyEvent{Key: KeyActualSize})
	if s.Placement.Scale != geom.MakePoint(1, 1) || s.Placement.Position != fitted.Position {
		t.Fatalf("Placement = %v after actual size", s.Placement)
	}
	if !s.Dirty {
		t.Fatal("actual size did not request a redraw")
	}

	s.Handle(ScrollEvent{Delta: -1})
	camera := s.Camera
	s.Handle(KeyEvent{Key: KeyResetView})
	if s.Placement != fitted {
		t.Fatalf("Placement = %v after reset, want %v", s.Placement, fitted)
	}
	if s.Camera != camera {
		t.Fatal("reset view changed the camera")
	}

	s.Dirty = false
	s.Handle(KeyEvent{Key: KeyUnknown})
	s.Handle(unknownEvent{})
	if s.Dirty || s.Quit || s.Pending != nil {
		t.Fatal("unrecognized input changed the state")
	}

	s.Handle(KeyEvent{Key: KeyQuit})
	if !s.Quit {
		t.Fatal("quit key did not quit")
	}
}

func TestCloseQuits(t *testing.T) {
	s := newTestState(t)
	s.Handle(CloseEvent{})
	if !s.Quit {
		t.Fatal("close did not quit")
	}
}

func TestToggleFullscreenQueuesSwap(t *testing.T) {
	s := newTestState(t)

	s.Handle(KeyEvent{Key: KeyToggleFullscreen})
	if s.Mode != Fullscreen {
		t.Fatalf("Mode = %v, want fullscreen", s.Mode)
	}
	if s.Pending == nil || s.Pending.Mode != Fullscreen {
		t.Fatalf("Pending = %v, want swap to fullscreen", s.Pending)
	}

	// A second toggle within the same iteration replaces the request.
	s.Handle(KeyEvent{Key: KeyToggleFullscreen})
	if s.Mode != Windowed || s.Pending == nil || s.Pending.Mode != Windowed {
		t.Fatalf("Mode = %v, Pending = %v, want swap to windowed", s.Mode, s.Pending)
	}
}

func TestModeToggle(t *testing.T) {
	if Windowed.Toggle() != Fullscreen || Fullscreen.Toggle() != Windowed {
		t.Fatal("Toggle is not an involution between the two modes")
	}
}

package app

import "fmt"

// Event is a single input event delivered by the windowing backend.
type Event interface {
	event()
}

// Key is a backend-independent key binding.
type Key int

const (
	KeyUnknown Key = iota
	KeyQuit
	KeyToggleFullscreen
	KeyResetView
	KeyActualSize
)

func (k Key) String() string {
	switch k {
	case KeyQuit:
		return "quit"
	case KeyToggleFullscreen:
		return "toggle-fullscreen"
	case KeyResetView:
		return "reset-view"
	case KeyActualSize:
		return "actual-size"
	default:
		return "unknown"
	}
}

// Button identifies a mouse button. Only the left button is bound.
type Button int

const (
	ButtonOther Button = iota
	ButtonLeft
)

// CloseEvent is sent when the user closes the window.
type CloseEvent struct{}

// KeyEvent is sent on key press.
type KeyEvent struct{ Key Key }

// ResizeEvent carries the new framebuffer size of the window.
type ResizeEvent struct{ Width, Height int }

// ScrollEvent carries the vertical scroll offset.
type ScrollEvent struct{ Delta float64 }

// ButtonEvent is sent on mouse button press and release.
type ButtonEvent struct {
	Button  Button
	Pressed bool
}

// MoveEvent carries the pointer position in window coordinates.
type MoveEvent struct{ X, Y int }

// FocusLostEvent is sent when the window loses input focus.
type FocusLostEvent struct{}

func (CloseEvent) event()     {}
func (KeyEvent) event()       {}
func (ResizeEvent) event()    {}
func (ScrollEvent) event()    {}
func (ButtonEvent) event()    {}
func (MoveEvent) event()      {}
func (FocusLostEvent) event() {}

func (e KeyEvent) String() string { return fmt.Sprintf("key(%s)", e.Key) }

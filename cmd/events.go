package main

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/irfansharif/vimg/internal/app"
)

// EventHandlers translates GLFW callbacks into app events. GLFW delivers
// callbacks from inside glfw.WaitEvents, possibly several at once, so they're
// queued here and handed to the event loop one at a time.
type EventHandlers struct {
	queue []app.Event
}

// NewEventHandlers creates a new event handlers manager for the window.
func NewEventHandlers(window *glfw.Window) *EventHandlers {
	eh := &EventHandlers{}
	eh.SetupCallbacks(window)
	return eh
}

// SetupCallbacks configures all GLFW event callbacks.
func (eh *EventHandlers) SetupCallbacks(window *glfw.Window) {
	window.SetCloseCallback(func(wnd *glfw.Window) {
		eh.push(app.CloseEvent{})
	})
	window.SetKeyCallback(func(wnd *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action == glfw.Press { // ignore releases and repeats
			eh.push(app.KeyEvent{Key: bindKey(key)})
		}
	})
	window.SetFramebufferSizeCallback(func(wnd *glfw.Window, newW, newH int) {
		eh.push(app.ResizeEvent{Width: newW, Height: newH})
	})
	window.SetScrollCallback(func(wnd *glfw.Window, _, yoff float64) {
		if yoff != 0 { // horizontal scrolling
			eh.push(app.ScrollEvent{Delta: yoff})
		}
	})
	window.SetMouseButtonCallback(func(wnd *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		eh.push(app.ButtonEvent{Button: bindButton(button), Pressed: action == glfw.Press})
	})
	window.SetCursorPosCallback(func(wnd *glfw.Window, xpos, ypos float64) {
		eh.push(app.MoveEvent{X: int(xpos), Y: int(ypos)})
	})
	window.SetFocusCallback(func(wnd *glfw.Window, focused bool) {
		if !focused {
			eh.push(app.FocusLostEvent{})
		}
	})
}

func (eh *EventHandlers) push(ev app.Event) {
	eh.queue = append(eh.queue, ev)
}

// pop returns the oldest queued event, if any.
func (eh *EventHandlers) pop() (app.Event, bool) {
	if len(eh.queue) == 0 {
		return nil, false
	}
	ev := eh.queue[0]
	eh.queue[0] = nil
	eh.queue = eh.queue[1:]
	return ev, true
}

// bindKey maps physical keys to key bindings.
func bindKey(key glfw.Key) app.Key {
	switch key {
	case glfw.KeyQ:
		return app.KeyQuit
	case glfw.KeyF:
		return app.KeyToggleFullscreen
	case glfw.KeyR:
		return app.KeyResetView
	case glfw.Key0, glfw.KeyKP0:
		return app.KeyActualSize
	default:
		return app.KeyUnknown
	}
}

func bindButton(button glfw.MouseButton) app.Button {
	if button == glfw.MouseButtonLeft {
		return app.ButtonLeft
	}
	return app.ButtonOther
}

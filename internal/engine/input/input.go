// Package input turns SDL2 events into engine events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType identifies an engine event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventPointerDown
	EventPointerMove
	EventPointerUp
	EventPointerCancel
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Keycode
	Width  int
	Height int
	// Pointer position in window coordinates
	X, Y float32
	// Pointer movement since the previous motion event
	DX, DY float32
	Button uint8
}

// Input collects the events of one frame.
type Input struct {
	events  []Event
	buttons uint32 // SDL button mask of held buttons
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update drains the SDL event queue. Returns true if the user asked to quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		e, ok := i.translate(event)
		if !ok {
			continue
		}
		i.events = append(i.events, e)
		if e.Type == EventQuit {
			quit = true
		}
	}
	return quit
}

// translate converts one SDL event, tracking held buttons so a focus loss
// during a press can be reported as a cancel.
func (i *Input) translate(event sdl.Event) (Event, bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return Event{Type: EventQuit}, true

	case *sdl.WindowEvent:
		switch e.Event {
		case sdl.WINDOWEVENT_RESIZED, sdl.WINDOWEVENT_SIZE_CHANGED:
			return Event{
				Type:   EventWindowResize,
				Width:  int(e.Data1),
				Height: int(e.Data2),
			}, true
		case sdl.WINDOWEVENT_FOCUS_LOST:
			if i.buttons != 0 {
				i.buttons = 0
				return Event{Type: EventPointerCancel}, true
			}
		}

	case *sdl.KeyboardEvent:
		if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
			return Event{Type: EventKeyDown, Key: e.Keysym.Sym}, true
		}

	case *sdl.MouseMotionEvent:
		return Event{
			Type: EventPointerMove,
			X:    float32(e.X),
			Y:    float32(e.Y),
			DX:   float32(e.XRel),
			DY:   float32(e.YRel),
		}, true

	case *sdl.MouseButtonEvent:
		mask := uint32(1) << (e.Button - 1)
		ev := Event{
			X:      float32(e.X),
			Y:      float32(e.Y),
			Button: e.Button,
		}
		if e.Type == sdl.MOUSEBUTTONDOWN {
			i.buttons |= mask
			ev.Type = EventPointerDown
			return ev, true
		}
		if e.Type == sdl.MOUSEBUTTONUP {
			i.buttons &^= mask
			ev.Type = EventPointerUp
			return ev, true
		}
	}

	return Event{}, false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// IsKeyPressed checks if a key went down this frame.
func (i *Input) IsKeyPressed(key sdl.Keycode) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == key {
			return true
		}
	}
	return false
}

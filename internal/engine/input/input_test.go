package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestTranslatePointerDrag(t *testing.T) {
	in := New()

	down, ok := in.translate(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_LEFT, X: 100, Y: 80})
	if !ok || down.Type != EventPointerDown {
		t.Fatalf("expected pointer down, got %+v", down)
	}
	if down.X != 100 || down.Y != 80 || down.Button != sdl.BUTTON_LEFT {
		t.Errorf("unexpected pointer down %+v", down)
	}

	move, ok := in.translate(&sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION, X: 110, Y: 75, XRel: 10, YRel: -5})
	if !ok || move.Type != EventPointerMove {
		t.Fatalf("expected pointer move, got %+v", move)
	}
	if move.DX != 10 || move.DY != -5 {
		t.Errorf("expected relative movement (10,-5), got (%v,%v)", move.DX, move.DY)
	}

	up, ok := in.translate(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONUP, Button: sdl.BUTTON_LEFT, X: 110, Y: 75})
	if !ok || up.Type != EventPointerUp {
		t.Fatalf("expected pointer up, got %+v", up)
	}
}

func TestTranslateFocusLostCancelsHeldButton(t *testing.T) {
	in := New()
	focusLost := &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_FOCUS_LOST}

	// Nothing held: focus loss is not a cancel.
	if _, ok := in.translate(focusLost); ok {
		t.Error("expected focus loss without a held button to be ignored")
	}

	in.translate(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_LEFT})
	ev, ok := in.translate(focusLost)
	if !ok || ev.Type != EventPointerCancel {
		t.Fatalf("expected pointer cancel, got %+v", ev)
	}

	// The cancel released the capture.
	if _, ok := in.translate(focusLost); ok {
		t.Error("expected a single cancel per press")
	}
}

func TestTranslateWindowAndKeys(t *testing.T) {
	in := New()

	tests := []struct {
		name  string
		event sdl.Event
		want  Event
		ok    bool
	}{
		{"quit", &sdl.QuitEvent{Type: sdl.QUIT}, Event{Type: EventQuit}, true},
		{
			"resize",
			&sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_RESIZED, Data1: 800, Data2: 600},
			Event{Type: EventWindowResize, Width: 800, Height: 600},
			true,
		},
		{
			"escape",
			&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Sym: sdl.K_ESCAPE}},
			Event{Type: EventKeyDown, Key: sdl.K_ESCAPE},
			true,
		},
		{"key repeat", &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Repeat: 1, Keysym: sdl.Keysym{Sym: sdl.K_F12}}, Event{}, false},
		{"key up", &sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Sym: sdl.K_F12}}, Event{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := in.translate(tt.event)
			if ok != tt.ok || got != tt.want {
				t.Errorf("translate = %+v, %v; want %+v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

package app

import (
	"testing"

	"github.com/Faultbox/labelsphere/internal/engine/camera"
	"github.com/Faultbox/labelsphere/internal/engine/input"
	"github.com/Faultbox/labelsphere/internal/globe"
	"github.com/Faultbox/labelsphere/pkg/math"
)

func newTestCamera() *camera.Camera {
	c := camera.New(math.Vec3{Z: 5}, 75, 0.1, 1000)
	c.SetViewport(800, 600)
	return c
}

func newTestGlobe(t *testing.T) *globe.Globe {
	t.Helper()
	g, err := globe.New(globe.Options{
		Radius:          2,
		DragSensitivity: globe.DefaultDragSensitivity,
		Names:           []string{"a", "b"},
		Source:          constSource(0.5),
	})
	if err != nil {
		t.Fatalf("globe.New failed: %v", err)
	}
	return g
}

type constSource float64

func (c constSource) Float64() float64 { return float64(c) }

func TestHitSphere(t *testing.T) {
	cam := newTestCamera()

	tests := []struct {
		name string
		x, y float32
		want bool
	}{
		{"center", 400, 300, true},
		{"near edge", 400, 180, true},
		{"top left corner", 0, 0, false},
		{"bottom right corner", 800, 600, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hitSphere(cam, tt.x, tt.y, 800, 600, 2); got != tt.want {
				t.Errorf("hitSphere(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestHitSphereEmptyViewport(t *testing.T) {
	if hitSphere(newTestCamera(), 0, 0, 0, 0, 2) {
		t.Error("expected no hit for an empty viewport")
	}
}

func TestRoutePointerDrag(t *testing.T) {
	g := newTestGlobe(t)
	hit := func(x, y float32) bool { return true }

	routePointer(g, input.Event{Type: input.EventPointerDown, Button: primaryButton}, hit)
	if g.DragState() != globe.DragActive {
		t.Fatalf("expected dragging after press on sphere, got %v", g.DragState())
	}

	routePointer(g, input.Event{Type: input.EventPointerMove, DX: 100, DY: 50}, hit)
	tr := g.Transform()
	if !approx(tr.RotationY, 0.008) || !approx(tr.RotationX, -0.004) {
		t.Errorf("rotation = %+v, want Y=0.008 X=-0.004", tr)
	}

	routePointer(g, input.Event{Type: input.EventPointerUp, Button: primaryButton}, hit)
	if g.DragState() != globe.DragIdle {
		t.Errorf("expected idle after release, got %v", g.DragState())
	}

	routePointer(g, input.Event{Type: input.EventPointerMove, DX: 100}, hit)
	if g.Transform() != tr {
		t.Error("moves after release must not rotate")
	}
}

func TestRoutePointerMiss(t *testing.T) {
	g := newTestGlobe(t)
	miss := func(x, y float32) bool { return false }

	routePointer(g, input.Event{Type: input.EventPointerDown, Button: primaryButton}, miss)
	routePointer(g, input.Event{Type: input.EventPointerMove, DX: 100}, miss)

	if g.DragState() != globe.DragIdle {
		t.Errorf("expected idle after press off sphere, got %v", g.DragState())
	}
	if g.Transform() != (globe.SceneTransform{}) {
		t.Errorf("expected no rotation, got %+v", g.Transform())
	}
}

func TestRoutePointerOtherButtons(t *testing.T) {
	g := newTestGlobe(t)
	calls := 0
	hit := func(x, y float32) bool { calls++; return true }

	routePointer(g, input.Event{Type: input.EventPointerDown, Button: 3}, hit)
	if calls != 0 || g.DragState() != globe.DragIdle {
		t.Error("right button must not start a drag")
	}

	routePointer(g, input.Event{Type: input.EventPointerDown, Button: primaryButton}, hit)
	routePointer(g, input.Event{Type: input.EventPointerUp, Button: 3}, hit)
	if g.DragState() != globe.DragActive {
		t.Error("releasing another button must not end the drag")
	}
}

func TestRoutePointerCancel(t *testing.T) {
	g := newTestGlobe(t)
	hit := func(x, y float32) bool { return true }

	routePointer(g, input.Event{Type: input.EventPointerDown, Button: primaryButton}, hit)
	routePointer(g, input.Event{Type: input.EventPointerCancel}, hit)
	if g.DragState() != globe.DragIdle {
		t.Errorf("expected idle after cancel, got %v", g.DragState())
	}
}

func approx(a, b float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-6
}

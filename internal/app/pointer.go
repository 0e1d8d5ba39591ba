package app

import (
	"github.com/Faultbox/labelsphere/internal/engine/camera"
	"github.com/Faultbox/labelsphere/internal/engine/input"
	"github.com/Faultbox/labelsphere/internal/engine/picking"
	"github.com/Faultbox/labelsphere/pkg/math"
)

// primaryButton is SDL_BUTTON_LEFT.
const primaryButton = 1

// dragTarget receives pointer events. *globe.Globe implements it.
type dragTarget interface {
	PointerDown(hit bool) bool
	PointerMove(dx, dy float32) bool
	PointerUp()
	PointerCancel()
}

// hitSphere reports whether the ray through window point (x, y) meets the
// sphere of radius r at the origin. width and height are the window size in
// the same coordinates as x and y.
func hitSphere(cam *camera.Camera, x, y float32, width, height int, r float32) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	ray := picking.ScreenToRay(x, y, float32(width), float32(height), cam.ViewProj().Inverse())
	_, hit := ray.IntersectSphere(math.Vec3{}, r)
	return hit
}

// routePointer forwards a pointer event to t. The hit test only runs on
// press. Non-pointer events are ignored.
func routePointer(t dragTarget, ev input.Event, hit func(x, y float32) bool) {
	switch ev.Type {
	case input.EventPointerDown:
		if ev.Button != primaryButton {
			return
		}
		t.PointerDown(hit(ev.X, ev.Y))
	case input.EventPointerMove:
		t.PointerMove(ev.DX, ev.DY)
	case input.EventPointerUp:
		if ev.Button != primaryButton {
			return
		}
		t.PointerUp()
	case input.EventPointerCancel:
		t.PointerCancel()
	}
}

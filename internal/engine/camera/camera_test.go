package camera

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/labelsphere/pkg/math"
)

func TestNewDefaults(t *testing.T) {
	c := New(math.Vec3{Z: 5}, 75, 0.1, 1000)

	if c.Up != (math.Vec3{Y: 1}) {
		t.Errorf("expected +Y up, got %v", c.Up)
	}
	if want := float32(75 * gomath.Pi / 180); gomath.Abs(float64(c.FovY-want)) > 1e-6 {
		t.Errorf("expected fov %v rad, got %v", want, c.FovY)
	}
}

func TestSetViewport(t *testing.T) {
	c := New(math.Vec3{Z: 5}, 75, 0.1, 1000)

	c.SetViewport(1920, 1080)
	if want := float32(1920) / 1080; c.Aspect != want {
		t.Errorf("expected aspect %v, got %v", want, c.Aspect)
	}

	// Minimised windows report zero size; keep the last aspect.
	c.SetViewport(0, 0)
	if want := float32(1920) / 1080; c.Aspect != want {
		t.Errorf("expected aspect to survive zero size, got %v", c.Aspect)
	}
}

func TestViewProjCentersTarget(t *testing.T) {
	c := New(math.Vec3{Z: 5}, 75, 0.1, 1000)
	c.SetViewport(800, 600)

	ndc := c.ViewProj().TransformVec3(math.Vec3{})
	if gomath.Abs(float64(ndc.X)) > 1e-5 || gomath.Abs(float64(ndc.Y)) > 1e-5 {
		t.Errorf("target should project to screen center, got %v", ndc)
	}
	if ndc.Z <= -1 || ndc.Z >= 1 {
		t.Errorf("target should be inside the clip range, got depth %v", ndc.Z)
	}

	// A point to the right of the target lands right of center.
	if right := c.ViewProj().TransformVec3(math.Vec3{X: 1}); right.X <= 0 {
		t.Errorf("expected +X to project right of center, got %v", right)
	}
}

// Package camera provides the perspective camera the scene is viewed through.
package camera

import (
	gomath "math"

	"github.com/Faultbox/labelsphere/pkg/math"
)

// Camera is a perspective camera looking at a fixed target.
type Camera struct {
	Position math.Vec3
	Target   math.Vec3
	Up       math.Vec3

	FovY   float32 // Vertical field of view, radians
	Near   float32
	Far    float32
	Aspect float32 // Width / height
}

// New creates a camera at position looking at the origin with +Y up.
// fovDegrees is the vertical field of view.
func New(position math.Vec3, fovDegrees, near, far float32) *Camera {
	return &Camera{
		Position: position,
		Up:       math.Vec3{Y: 1},
		FovY:     fovDegrees * gomath.Pi / 180,
		Near:     near,
		Far:      far,
		Aspect:   1,
	}
}

// SetViewport updates the aspect ratio from the framebuffer size.
func (c *Camera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
}

// ViewMatrix returns the world-to-view matrix.
func (c *Camera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.Target, c.Up)
}

// ProjectionMatrix returns the perspective projection.
func (c *Camera) ProjectionMatrix() math.Mat4 {
	return math.Perspective(c.FovY, c.Aspect, c.Near, c.Far)
}

// ViewProj returns projection * view.
func (c *Camera) ViewProj() math.Mat4 {
	return c.ProjectionMatrix().Mul(c.ViewMatrix())
}

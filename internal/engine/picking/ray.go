// Package picking turns screen positions into world rays and tests them against scene shapes.
package picking

import (
	gomath "math"

	"github.com/Faultbox/labelsphere/pkg/math"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3 // Normalized
}

// ScreenToRay converts screen coordinates to a world-space ray.
// screenX, screenY are in the same units as viewportW/H (window coordinates,
// origin top-left). invViewProj is the inverse of the view-projection matrix.
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, invViewProj math.Mat4) Ray {
	ndcX := 2.0*screenX/viewportW - 1.0
	ndcY := 1.0 - 2.0*screenY/viewportH // Flip Y

	// Unproject the same pixel on the near and far planes
	near := invViewProj.TransformVec3(math.Vec3{X: ndcX, Y: ndcY, Z: -1})
	far := invViewProj.TransformVec3(math.Vec3{X: ndcX, Y: ndcY, Z: 1})

	return Ray{Origin: near, Direction: far.Sub(near).Normalize()}
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// IntersectSphere tests the ray against a sphere and returns the distance to
// the nearest hit in front of the origin. A ray starting inside the sphere
// hits its far side.
func (r Ray) IntersectSphere(center math.Vec3, radius float32) (t float32, hit bool) {
	// |O + tD - C|^2 = r^2 with |D| = 1
	oc := r.Origin.Sub(center)
	b := oc.Dot(r.Direction)
	c := oc.Dot(oc) - radius*radius

	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := float32(gomath.Sqrt(float64(disc)))

	t = -b - sq
	if t < 0 {
		t = -b + sq
	}
	if t < 0 {
		return 0, false // Sphere is behind the ray
	}
	return t, true
}

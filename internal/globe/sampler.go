// Package globe holds the label sphere: where the labels sit, how they turn
// to face the camera, and how pointer drags spin the sphere.
package globe

import (
	"errors"
	gomath "math"

	"github.com/Faultbox/labelsphere/pkg/math"
)

// ErrInvalidRadius is returned for a sphere radius that is not a positive finite number.
var ErrInvalidRadius = errors.New("globe: radius must be positive")

// Source supplies uniform random numbers in [0, 1).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	Float64() float64
}

// Sampler draws points distributed uniformly over a sphere surface.
type Sampler struct {
	radius float32
	src    Source
}

// NewSampler creates a sampler for a sphere of the given radius centered at the origin.
func NewSampler(radius float32, src Source) (*Sampler, error) {
	if !validRadius(radius) {
		return nil, ErrInvalidRadius
	}
	return &Sampler{radius: radius, src: src}, nil
}

// Radius returns the sphere radius.
func (s *Sampler) Radius() float32 {
	return s.radius
}

// Next returns the next point on the sphere surface.
func (s *Sampler) Next() math.Vec3 {
	return SurfacePoint(s.src, s.radius)
}

// SurfacePoint returns a uniformly distributed point on the surface of a
// sphere of radius r. The polar angle comes from arccos(2v-1) so points do
// not bunch up at the poles.
func SurfacePoint(src Source, r float32) math.Vec3 {
	u := src.Float64()
	v := src.Float64()

	azimuth := 2 * gomath.Pi * u
	polar := gomath.Acos(2*v - 1)

	sinPolar := gomath.Sin(polar)
	radius := float64(r)

	return math.Vec3{
		X: float32(radius * sinPolar * gomath.Cos(azimuth)),
		Y: float32(radius * sinPolar * gomath.Sin(azimuth)),
		Z: float32(radius * gomath.Cos(polar)),
	}
}

func validRadius(r float32) bool {
	f := float64(r)
	return f > 0 && !gomath.IsInf(f, 0) && !gomath.IsNaN(f)
}

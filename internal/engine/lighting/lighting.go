// Package lighting holds the scene's light setup in GPU-ready form.
package lighting

import "github.com/Faultbox/labelsphere/pkg/math"

// AmbientLight lights every surface evenly.
type AmbientLight struct {
	Color     math.Vec3
	Intensity float32
}

// PointLight radiates from a position in all directions.
type PointLight struct {
	Position  math.Vec3
	Color     math.Vec3
	Intensity float32
}

// Rig is the set of lights the scene uses.
type Rig struct {
	Ambient AmbientLight
	Point   PointLight
}

// NewRig creates white ambient and point lights.
func NewRig(ambientIntensity float32, pointPos math.Vec3, pointIntensity float32) Rig {
	white := math.Vec3{X: 1, Y: 1, Z: 1}
	return Rig{
		Ambient: AmbientLight{Color: white, Intensity: ambientIntensity},
		Point:   PointLight{Position: pointPos, Color: white, Intensity: pointIntensity},
	}
}

// AmbientRGB returns the ambient color scaled by its intensity.
func (r Rig) AmbientRGB() [3]float32 {
	return r.Ambient.Color.Scale(r.Ambient.Intensity).Array()
}

// PointRGB returns the point light color scaled by its intensity.
func (r Rig) PointRGB() [3]float32 {
	return r.Point.Color.Scale(r.Point.Intensity).Array()
}

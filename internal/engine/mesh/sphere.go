// Package mesh generates vertex data for primitive shapes.
package mesh

import (
	gomath "math"
)

// FloatsPerVertex is the interleaved layout: position(3) + normal(3) + uv(2).
const FloatsPerVertex = 8

// Mesh is interleaved vertex data with triangle indices.
type Mesh struct {
	Vertices []float32
	Indices  []uint32
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / FloatsPerVertex
}

// Sphere builds a UV sphere centered at the origin. segments divides the
// equator, rings runs pole to pole; both are clamped to at least 3 and 2.
func Sphere(radius float32, segments, rings int) *Mesh {
	if segments < 3 {
		segments = 3
	}
	if rings < 2 {
		rings = 2
	}

	m := &Mesh{
		Vertices: make([]float32, 0, (rings+1)*(segments+1)*FloatsPerVertex),
		Indices:  make([]uint32, 0, rings*segments*6),
	}

	for ring := 0; ring <= rings; ring++ {
		theta := float64(ring) * gomath.Pi / float64(rings)
		sinTheta, cosTheta := gomath.Sincos(theta)

		for seg := 0; seg <= segments; seg++ {
			phi := float64(seg) * 2 * gomath.Pi / float64(segments)
			sinPhi, cosPhi := gomath.Sincos(phi)

			nx := float32(cosPhi * sinTheta)
			ny := float32(cosTheta)
			nz := float32(sinPhi * sinTheta)

			m.Vertices = append(m.Vertices,
				nx*radius, ny*radius, nz*radius,
				nx, ny, nz,
				float32(seg)/float32(segments), float32(ring)/float32(rings),
			)
		}
	}

	stride := uint32(segments + 1)
	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			current := uint32(ring)*stride + uint32(seg)
			next := current + stride

			// Counter-clockwise seen from outside
			m.Indices = append(m.Indices,
				current, current+1, next,
				current+1, next+1, next,
			)
		}
	}

	return m
}

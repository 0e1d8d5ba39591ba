package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/labelsphere/internal/engine/lighting"
	"github.com/Faultbox/labelsphere/internal/engine/mesh"
	"github.com/Faultbox/labelsphere/internal/engine/scene/shaders"
	"github.com/Faultbox/labelsphere/internal/engine/shader"
	"github.com/Faultbox/labelsphere/pkg/math"
)

// SphereRenderer draws the transparent anchor sphere the labels sit on.
type SphereRenderer struct {
	program *shader.Program

	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32

	Color   [3]float32
	Opacity float32
}

// NewSphereRenderer uploads a UV sphere of the given radius.
func NewSphereRenderer(radius float32, segments int, opacity float32) (*SphereRenderer, error) {
	program, err := shader.New("sphere", shaders.SphereVertexShader, shaders.SphereFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("sphere shader: %w", err)
	}

	sr := &SphereRenderer{
		program: program,
		Color:   [3]float32{1, 1, 1},
		Opacity: opacity,
	}
	sr.upload(mesh.Sphere(radius, segments, segments))
	return sr, nil
}

func (sr *SphereRenderer) upload(m *mesh.Mesh) {
	sr.indexCount = int32(len(m.Indices))
	stride := int32(mesh.FloatsPerVertex * 4)

	gl.GenVertexArrays(1, &sr.vao)
	gl.BindVertexArray(sr.vao)

	gl.GenBuffers(1, &sr.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, sr.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*4, unsafe.Pointer(&m.Vertices[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &sr.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, sr.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	// Position (location 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)

	// Normal (location 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)

	// TexCoord (location 2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)
}

// Visible reports whether the sphere produces any fragments.
func (sr *SphereRenderer) Visible() bool {
	return sr.Opacity > 0
}

// Render draws the sphere rotated by model. Fully transparent spheres are
// skipped; they still act as the drag hit area.
func (sr *SphereRenderer) Render(viewProj, model math.Mat4, lights lighting.Rig) {
	if sr.vao == 0 || !sr.Visible() {
		return
	}

	sr.program.Use()
	sr.program.SetMat4("uViewProj", viewProj)
	sr.program.SetMat4("uModel", model)
	sr.program.SetVec3("uColor", sr.Color)
	sr.program.SetFloat("uOpacity", sr.Opacity)
	sr.program.SetVec3("uAmbient", lights.AmbientRGB())
	sr.program.SetVec3("uLightPos", lights.Point.Position.Array())
	sr.program.SetVec3("uLightColor", lights.PointRGB())

	// Double sided, neither tested against nor written to the depth buffer
	gl.Disable(gl.DEPTH_TEST)
	gl.DepthMask(false)
	gl.BindVertexArray(sr.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, sr.indexCount, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
	gl.DepthMask(true)
	gl.Enable(gl.DEPTH_TEST)
}

// Destroy releases all resources.
func (sr *SphereRenderer) Destroy() {
	if sr.vao != 0 {
		gl.DeleteVertexArrays(1, &sr.vao)
		sr.vao = 0
	}
	if sr.vbo != 0 {
		gl.DeleteBuffers(1, &sr.vbo)
		sr.vbo = 0
	}
	if sr.ebo != 0 {
		gl.DeleteBuffers(1, &sr.ebo)
		sr.ebo = 0
	}
	if sr.program != nil {
		sr.program.Delete()
	}
}

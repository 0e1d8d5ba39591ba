package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/labelsphere/internal/engine/scene/shaders"
	"github.com/Faultbox/labelsphere/internal/engine/shader"
	"github.com/Faultbox/labelsphere/internal/engine/text"
	"github.com/Faultbox/labelsphere/internal/engine/texture"
	"github.com/Faultbox/labelsphere/internal/globe"
	"github.com/Faultbox/labelsphere/internal/logger"
	"github.com/Faultbox/labelsphere/pkg/math"
)

// labelSprite is the GPU side of one label.
type labelSprite struct {
	tex    *texture.Texture
	width  float32
	height float32
}

// LabelRenderer draws each label as a textured quad oriented by its billboard.
type LabelRenderer struct {
	program *shader.Program

	// Unit quad centered on the origin in the XY plane
	vao uint32
	vbo uint32

	sprites []labelSprite
	order   []int

	Color [3]float32
}

// NewLabelRenderer rasterizes every label and uploads its texture.
// Labels that fail to rasterize are kept as empty slots so indices stay
// aligned with the globe's billboards.
func NewLabelRenderer(labels []globe.Label, r *text.Rasterizer, fontSize float32, color [3]float32) (*LabelRenderer, error) {
	program, err := shader.New("label", shaders.LabelVertexShader, shaders.LabelFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("label shader: %w", err)
	}

	lr := &LabelRenderer{
		program: program,
		sprites: make([]labelSprite, len(labels)),
		Color:   color,
	}
	lr.createQuad()

	for i, l := range labels {
		if missing := r.Missing(l.Text); len(missing) > 0 {
			logger.Warn("font has no glyphs for label",
				zap.String("label", l.Text),
				zap.String("missing", string(missing)),
				zap.String("font", r.Source()),
			)
		}

		img, err := r.Rasterize(l.Text)
		if err != nil {
			logger.Warn("skipping label", zap.String("label", l.Text), zap.Error(err))
			continue
		}
		tex, err := texture.Upload(img)
		if err != nil {
			lr.Destroy()
			return nil, fmt.Errorf("label %q texture: %w", l.Text, err)
		}
		w, h := r.WorldSize(img.Bounds(), fontSize)
		lr.sprites[i] = labelSprite{tex: tex, width: w, height: h}
	}

	logger.Debug("label textures uploaded", zap.Int("count", len(labels)))
	return lr, nil
}

func (lr *LabelRenderer) createQuad() {
	// Position (XY), TexCoord (UV); image row 0 is the top edge
	vertices := []float32{
		-0.5, -0.5, 0.0, 1.0, // Bottom-left
		0.5, -0.5, 1.0, 1.0, // Bottom-right
		0.5, 0.5, 1.0, 0.0, // Top-right
		-0.5, -0.5, 0.0, 1.0, // Bottom-left
		0.5, 0.5, 1.0, 0.0, // Top-right
		-0.5, 0.5, 0.0, 0.0, // Top-left
	}

	gl.GenVertexArrays(1, &lr.vao)
	gl.BindVertexArray(lr.vao)

	gl.GenBuffers(1, &lr.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, lr.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	// Position attribute (location 0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 4*4, 0)
	gl.EnableVertexAttribArray(0)

	// TexCoord attribute (location 1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, 4*4, 2*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
}

// Render draws the billboards back to front as seen from camPos.
func (lr *LabelRenderer) Render(viewProj math.Mat4, camPos math.Vec3, billboards []globe.Billboard) {
	if lr.vao == 0 {
		return
	}

	lr.program.Use()
	lr.program.SetMat4("uViewProj", viewProj)
	lr.program.SetVec3("uColor", lr.Color)
	lr.program.SetInt("uTexture", 0)

	// Keep depth testing against the sphere, but let labels overlap
	gl.DepthMask(false)
	gl.BindVertexArray(lr.vao)

	lr.order = backToFront(lr.order[:0], billboards, camPos)
	for _, i := range lr.order {
		if i >= len(lr.sprites) {
			continue
		}
		s := lr.sprites[i]
		if s.tex == nil {
			continue
		}
		lr.program.SetMat4("uModel", billboards[i].Model(s.width, s.height))
		s.tex.Bind(0)
		gl.DrawArrays(gl.TRIANGLES, 0, 6)
	}

	gl.BindVertexArray(0)
	gl.DepthMask(true)
}

// Destroy releases all resources.
func (lr *LabelRenderer) Destroy() {
	for i := range lr.sprites {
		if lr.sprites[i].tex != nil {
			lr.sprites[i].tex.Delete()
			lr.sprites[i].tex = nil
		}
	}
	if lr.vao != 0 {
		gl.DeleteVertexArrays(1, &lr.vao)
		lr.vao = 0
	}
	if lr.vbo != 0 {
		gl.DeleteBuffers(1, &lr.vbo)
		lr.vbo = 0
	}
	if lr.program != nil {
		lr.program.Delete()
	}
}

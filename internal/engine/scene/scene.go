// Package scene renders the label sphere: a transparent anchor sphere and
// one camera-facing text quad per label.
package scene

import (
	"fmt"

	"github.com/Faultbox/labelsphere/internal/engine/camera"
	"github.com/Faultbox/labelsphere/internal/engine/lighting"
	"github.com/Faultbox/labelsphere/internal/engine/text"
	"github.com/Faultbox/labelsphere/internal/globe"
)

// Config contains scene configuration options.
type Config struct {
	Radius         float32
	SphereSegments int
	SphereOpacity  float32
	FontSize       float32
	LabelColor     [3]float32
	Lights         lighting.Rig
}

// Scene owns the GPU resources for one globe.
type Scene struct {
	config Config

	sphereRenderer *SphereRenderer
	labelRenderer  *LabelRenderer
}

// New creates the renderers and uploads a texture per label.
// Must be called with a current GL context.
func New(cfg Config, labels []globe.Label, rasterizer *text.Rasterizer) (*Scene, error) {
	s := &Scene{config: cfg}

	var err error
	s.sphereRenderer, err = NewSphereRenderer(cfg.Radius, cfg.SphereSegments, cfg.SphereOpacity)
	if err != nil {
		return nil, fmt.Errorf("creating sphere renderer: %w", err)
	}

	s.labelRenderer, err = NewLabelRenderer(labels, rasterizer, cfg.FontSize, cfg.LabelColor)
	if err != nil {
		s.Destroy()
		return nil, fmt.Errorf("creating label renderer: %w", err)
	}

	return s, nil
}

// Render draws the globe as seen by cam. The sphere goes first so labels
// blend over it.
func (s *Scene) Render(cam *camera.Camera, g *globe.Globe) {
	viewProj := cam.ViewProj()

	s.sphereRenderer.Render(viewProj, g.Rotation(), s.config.Lights)
	s.labelRenderer.Render(viewProj, cam.Position, g.Billboards())
}

// Destroy releases all resources.
func (s *Scene) Destroy() {
	if s.labelRenderer != nil {
		s.labelRenderer.Destroy()
		s.labelRenderer = nil
	}
	if s.sphereRenderer != nil {
		s.sphereRenderer.Destroy()
		s.sphereRenderer = nil
	}
}

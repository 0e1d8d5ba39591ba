package app

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/labelsphere/internal/globe"
)

// Layout is the sampled label placement, as printed by -layout.
type Layout struct {
	Radius float32       `yaml:"radius"`
	Seed   uint64        `yaml:"seed"`
	Labels []globe.Label `yaml:"labels"`
}

// WriteLayout encodes the globe's labels as YAML.
func WriteLayout(w io.Writer, g *globe.Globe, seed uint64) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Layout{Radius: g.Radius(), Seed: seed, Labels: g.Labels()}); err != nil {
		return fmt.Errorf("encoding layout: %w", err)
	}
	return enc.Close()
}

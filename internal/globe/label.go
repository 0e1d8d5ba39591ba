package globe

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/Faultbox/labelsphere/pkg/math"
)

// Label is a piece of text pinned to a point on the sphere, in the sphere's
// local (unrotated) space.
type Label struct {
	Text     string    `yaml:"text"`
	Position math.Vec3 `yaml:"position,flow"`
}

// BuildLabels places one label per name, in list order, at points drawn
// from s. Names are NFC-normalised and trimmed; blank names are skipped.
// An empty list yields no labels.
func BuildLabels(names []string, s *Sampler) []Label {
	labels := make([]Label, 0, len(names))
	for _, name := range names {
		text := strings.TrimSpace(norm.NFC.String(name))
		if text == "" {
			continue
		}
		labels = append(labels, Label{
			Text:     text,
			Position: s.Next(),
		})
	}
	return labels
}

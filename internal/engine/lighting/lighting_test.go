package lighting

import (
	"testing"

	"github.com/Faultbox/labelsphere/pkg/math"
)

func TestNewRig(t *testing.T) {
	r := NewRig(0.5, math.Vec3{X: 10, Y: 10, Z: 10}, 2)

	if got := r.AmbientRGB(); got != [3]float32{0.5, 0.5, 0.5} {
		t.Errorf("ambient = %v, want 0.5 grey", got)
	}
	if got := r.PointRGB(); got != [3]float32{2, 2, 2} {
		t.Errorf("point = %v, want 2x white", got)
	}
}

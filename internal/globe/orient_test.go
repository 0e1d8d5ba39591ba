package globe

import (
	"testing"

	"github.com/Faultbox/labelsphere/pkg/math"
)

func TestFaceCamera(t *testing.T) {
	up := math.Vec3{Y: 1}
	tests := []struct {
		name   string
		label  math.Vec3
		camera math.Vec3
	}{
		{"label on +X, camera on +Z", math.Vec3{X: 2}, math.Vec3{Z: 10}},
		{"label behind sphere", math.Vec3{Z: -2}, math.Vec3{Z: 5}},
		{"camera overhead", math.Vec3{X: 1, Y: 1}, math.Vec3{Y: 8}},
		{"arbitrary", math.Vec3{X: -1.2, Y: 0.4, Z: 1.5}, math.Vec3{X: 3, Y: -2, Z: 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := FaceCamera(tt.label, tt.camera, up)
			if !ok {
				t.Fatal("expected a valid orientation")
			}
			want := tt.camera.Sub(tt.label).Normalize()
			if got := m.Column(2); !got.ApproxEqual(want, 1e-5) {
				t.Errorf("forward = %v, want %v", got, want)
			}
		})
	}
}

func TestFaceCameraScenario(t *testing.T) {
	m, ok := FaceCamera(math.Vec3{X: 2}, math.Vec3{Z: 10}, math.Vec3{Y: 1})
	if !ok {
		t.Fatal("expected a valid orientation")
	}
	want := math.Vec3{X: -2, Z: 10}.Normalize()
	if got := m.Column(2); !got.ApproxEqual(want, 1e-5) {
		t.Errorf("forward = %v, want %v", got, want)
	}
	// Up stays vertical when the camera is level with the label.
	if got := m.Column(1); !got.ApproxEqual(math.Vec3{Y: 1}, 1e-5) {
		t.Errorf("up = %v, want (0,1,0)", got)
	}
}

func TestFaceCameraDegenerate(t *testing.T) {
	p := math.Vec3{X: 1, Y: 1, Z: 1}
	if _, ok := FaceCamera(p, p, math.Vec3{Y: 1}); ok {
		t.Error("expected coincident label and camera to be rejected")
	}
}

func TestFaceCameraIsStateless(t *testing.T) {
	label := math.Vec3{X: 2}
	cam := math.Vec3{Z: 10}
	up := math.Vec3{Y: 1}

	first, _ := FaceCamera(label, cam, up)
	// Point somewhere else in between; the result must not depend on it.
	FaceCamera(label, math.Vec3{X: -4, Y: 3}, up)
	second, _ := FaceCamera(label, cam, up)

	if first != second {
		t.Errorf("orientation changed between identical calls: %v vs %v", first, second)
	}
}

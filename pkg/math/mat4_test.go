package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	result := m.Mul(Identity())
	if result != m {
		t.Errorf("M * I should equal M, got %v", result)
	}
}

func TestTransformVec3(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
		in   Vec3
		want Vec3
	}{
		{"translate", Translate(10, 20, 30), Vec3{1, 2, 3}, Vec3{11, 22, 33}},
		{"scale", Scale(2, 2, 2), Vec3{1, 2, 3}, Vec3{2, 4, 6}},
		{"scale then translate", Translate(1, 0, 0).Mul(Scale(3, 3, 3)), Vec3{1, 1, 1}, Vec3{4, 3, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.TransformVec3(tt.in); got != tt.want {
				t.Errorf("TransformVec3 = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRotateY90(t *testing.T) {
	m := RotateY(float32(math.Pi / 2))
	got := m.TransformVec3(Vec3{1, 0, 0})

	// (1,0,0) turns to (0,0,-1)
	if !got.ApproxEqual(Vec3{0, 0, -1}, 0.001) {
		t.Errorf("RotateY 90: got %v, want (0, 0, -1)", got)
	}
}

func TestRotateX90(t *testing.T) {
	m := RotateX(float32(math.Pi / 2))
	got := m.TransformVec3(Vec3{0, 1, 0})

	// (0,1,0) turns to (0,0,1)
	if !got.ApproxEqual(Vec3{0, 0, 1}, 0.001) {
		t.Errorf("RotateX 90: got %v, want (0, 0, 1)", got)
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(float32(math.Pi/4), 1.0, 0.1, 100.0)

	if m[0] == 0 || m[5] == 0 {
		t.Error("Perspective should have non-zero elements")
	}
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
}

func TestLookAt(t *testing.T) {
	m := LookAt(Vec3{0, 0, 5}, Vec3{0, 0, 0}, Vec3{0, 1, 0})

	// The eye maps to the view-space origin, the center to -Z.
	if got := m.TransformVec3(Vec3{0, 0, 5}); !got.ApproxEqual(Vec3{}, 1e-5) {
		t.Errorf("eye in view space = %v, want origin", got)
	}
	if got := m.TransformVec3(Vec3{0, 0, 0}); !got.ApproxEqual(Vec3{0, 0, -5}, 1e-5) {
		t.Errorf("center in view space = %v, want (0,0,-5)", got)
	}
}

func TestLookRotation(t *testing.T) {
	tests := []struct {
		name    string
		forward Vec3
		up      Vec3
	}{
		{"along +Z", Vec3{0, 0, 1}, Vec3{0, 1, 0}},
		{"oblique", Vec3{-2, 0, 10}, Vec3{0, 1, 0}},
		{"straight up", Vec3{0, 3, 0}, Vec3{0, 1, 0}},
		{"straight down", Vec3{0, -1, 0}, Vec3{0, 1, 0}},
		{"up parallel to +Z", Vec3{0, 0, 4}, Vec3{0, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := LookRotation(tt.forward, tt.up)
			if !ok {
				t.Fatal("LookRotation reported degenerate input")
			}

			z := m.Column(2)
			if !z.ApproxEqual(tt.forward.Normalize(), 1e-5) {
				t.Errorf("forward axis = %v, want %v", z, tt.forward.Normalize())
			}

			// Basis must stay orthonormal.
			x, y := m.Column(0), m.Column(1)
			for _, axis := range []Vec3{x, y, z} {
				if l := axis.Length(); abs(l-1) > 1e-5 {
					t.Errorf("axis %v has length %v", axis, l)
				}
			}
			if abs(x.Dot(y)) > 1e-5 || abs(x.Dot(z)) > 1e-5 || abs(y.Dot(z)) > 1e-5 {
				t.Errorf("axes not orthogonal: %v %v %v", x, y, z)
			}
		})
	}
}

func TestLookRotationDegenerate(t *testing.T) {
	m, ok := LookRotation(Vec3{}, Vec3{0, 1, 0})
	if ok {
		t.Error("expected zero forward vector to be rejected")
	}
	if m != Identity() {
		t.Errorf("expected identity for degenerate input, got %v", m)
	}
}

func TestInverse(t *testing.T) {
	m := Translate(1, 2, 3).Mul(RotateY(0.7)).Mul(Scale(2, 2, 2))
	got := m.Mul(m.Inverse())

	id := Identity()
	for i := range got {
		if abs(got[i]-id[i]) > 1e-5 {
			t.Fatalf("M * M^-1 element %d = %f, want %f", i, got[i], id[i])
		}
	}
}

func TestInverseSingular(t *testing.T) {
	if got := (Mat4{}).Inverse(); got != Identity() {
		t.Errorf("singular inverse = %v, want identity", got)
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

package globe

import "github.com/Faultbox/labelsphere/pkg/math"

// FaceCamera returns the rotation that points a label's local +Z axis from
// label toward camera, with local +Y kept near up. The result depends only
// on the arguments. It returns false when label and camera coincide; the
// caller should then keep whatever orientation it had.
func FaceCamera(label, camera, up math.Vec3) (math.Mat4, bool) {
	return math.LookRotation(camera.Sub(label), up)
}

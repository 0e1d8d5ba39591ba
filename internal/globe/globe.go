package globe

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/Faultbox/labelsphere/pkg/math"
)

// CameraPose is the camera state the host hands in each frame.
type CameraPose struct {
	Position math.Vec3
	Up       math.Vec3
}

// FrameContext carries the per-frame data Update needs.
type FrameContext struct {
	Camera CameraPose
	Delta  time.Duration
	Frame  uint64
}

// Billboard is a label placed in world space for the current frame.
type Billboard struct {
	Label       Label
	World       math.Vec3
	Orientation math.Mat4
}

// Model returns the label's model matrix for a quad of the given world size.
func (b Billboard) Model(width, height float32) math.Mat4 {
	return math.Translate(b.World.X, b.World.Y, b.World.Z).
		Mul(b.Orientation).
		Mul(math.Scale(width, height, 1))
}

// Options configures a Globe.
type Options struct {
	Radius          float32
	DragSensitivity float32
	Names           []string

	// Source drives label placement. Nil means a clock-seeded generator.
	Source Source
}

// Globe is the rotatable sphere and the labels attached to it.
// It is driven from a single thread: the host calls the pointer methods as
// input arrives and Update once per frame.
type Globe struct {
	radius     float32
	labels     []Label
	billboards []Billboard
	transform  SceneTransform
	drag       *Drag
}

// New samples a position for every name and builds the globe.
func New(opts Options) (*Globe, error) {
	src := opts.Source
	if src == nil {
		seed := uint64(time.Now().UnixNano())
		src = rand.New(rand.NewPCG(seed, seed>>1))
	}

	sampler, err := NewSampler(opts.Radius, src)
	if err != nil {
		return nil, fmt.Errorf("creating sampler: %w", err)
	}

	labels := BuildLabels(opts.Names, sampler)
	g := &Globe{
		radius:     opts.Radius,
		labels:     labels,
		billboards: make([]Billboard, len(labels)),
		drag:       NewDrag(opts.DragSensitivity),
	}
	for i, l := range labels {
		g.billboards[i] = Billboard{Label: l, World: l.Position, Orientation: math.Identity()}
	}
	return g, nil
}

// Radius returns the sphere radius.
func (g *Globe) Radius() float32 {
	return g.radius
}

// Labels returns the labels in sphere-local space.
func (g *Globe) Labels() []Label {
	return g.labels
}

// Transform returns the current sphere rotation.
func (g *Globe) Transform() SceneTransform {
	return g.transform
}

// Rotation returns the sphere's rotation matrix (X applied after Y).
func (g *Globe) Rotation() math.Mat4 {
	return math.RotateX(g.transform.RotationX).Mul(math.RotateY(g.transform.RotationY))
}

// DragState returns whether the sphere is being dragged.
func (g *Globe) DragState() DragState {
	return g.drag.State()
}

// PointerDown starts a drag when hit is true (the press ray met the sphere).
func (g *Globe) PointerDown(hit bool) bool {
	return g.drag.PointerDown(hit)
}

// PointerMove rotates the sphere by the pointer movement since the last move.
func (g *Globe) PointerMove(dx, dy float32) bool {
	return g.drag.PointerMove(&g.transform, dx, dy)
}

// PointerUp ends a drag.
func (g *Globe) PointerUp() {
	g.drag.PointerUp()
}

// PointerCancel ends a drag after pointer capture was lost.
func (g *Globe) PointerCancel() {
	g.drag.PointerCancel()
}

// Update moves every label into world space under the current rotation and
// turns it toward the camera. Orientation is rebuilt from scratch each frame;
// a label sitting exactly on the camera keeps its previous orientation.
func (g *Globe) Update(ctx FrameContext) {
	rot := g.Rotation()
	up := ctx.Camera.Up
	if up.LengthSquared() == 0 {
		up = math.Vec3{Y: 1}
	}

	for i := range g.billboards {
		b := &g.billboards[i]
		b.World = rot.TransformVec3(b.Label.Position)
		if o, ok := FaceCamera(b.World, ctx.Camera.Position, up); ok {
			b.Orientation = o
		}
	}
}

// Billboards returns the labels as placed by the last Update.
func (g *Globe) Billboards() []Billboard {
	return g.billboards
}

package globe

// DefaultDragSensitivity converts pointer pixels into radians of rotation.
const DefaultDragSensitivity float32 = 0.00008

// DragState is the pointer capture state of the sphere.
type DragState int

const (
	DragIdle DragState = iota
	DragActive
)

// String returns the state name.
func (s DragState) String() string {
	switch s {
	case DragIdle:
		return "idle"
	case DragActive:
		return "dragging"
	default:
		return "unknown"
	}
}

// SceneTransform is the sphere's rotation around its horizontal (X) and
// vertical (Y) axes, in radians. Angles accumulate without wraparound.
type SceneTransform struct {
	RotationX float32
	RotationY float32
}

// Drag turns pointer movement into sphere rotation. Movement is only applied
// between a press that hit the sphere and the matching release or cancel.
type Drag struct {
	Sensitivity float32

	state DragState
}

// NewDrag creates an idle drag handler.
func NewDrag(sensitivity float32) *Drag {
	return &Drag{Sensitivity: sensitivity}
}

// State returns the current capture state.
func (d *Drag) State() DragState {
	return d.state
}

// PointerDown starts a drag if the press landed on the sphere.
// Returns true if the drag started.
func (d *Drag) PointerDown(hit bool) bool {
	if !hit {
		return false
	}
	d.state = DragActive
	return true
}

// PointerMove applies the movement since the previous move event to t.
// Returns false, leaving t alone, when no drag is active.
func (d *Drag) PointerMove(t *SceneTransform, dx, dy float32) bool {
	if d.state != DragActive {
		return false
	}
	t.RotationY += dx * d.Sensitivity
	t.RotationX -= dy * d.Sensitivity
	return true
}

// PointerUp ends the drag. Rotation stops where it is.
func (d *Drag) PointerUp() {
	d.state = DragIdle
}

// PointerCancel ends the drag when the pointer capture is lost.
func (d *Drag) PointerCancel() {
	d.state = DragIdle
}

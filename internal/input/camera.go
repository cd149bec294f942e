package input

import "glscene/internal/graphics"

const (
	fastFactor = 5.0
	slowFactor = 5.0
)

var moves = [...]struct {
	action    Action
	direction graphics.CameraMovement
}{
	{ActionMoveForward, graphics.Forward},
	{ActionMoveBackward, graphics.Backward},
	{ActionMoveLeft, graphics.Left},
	{ActionMoveRight, graphics.Right},
	{ActionMoveUp, graphics.Up},
	{ActionMoveDown, graphics.Down},
}

// EffectiveDelta scales the frame delta by the held speed modifiers.
// Holding both cancels out.
func EffectiveDelta(im *InputManager, dt float32) float32 {
	if im.IsActive(ActionModFast) {
		dt *= fastFactor
	}
	if im.IsActive(ActionModSlow) {
		dt /= slowFactor
	}
	return dt
}

// MoveCamera applies every held movement action to cam for this frame.
func MoveCamera(im *InputManager, cam *graphics.Camera, dt float32) {
	dt = EffectiveDelta(im, dt)
	for _, m := range moves {
		if im.Triggered(m.action) {
			cam.ProcessKeyboard(m.direction, dt)
		}
	}
}

// MouseLook turns absolute cursor positions into per-event look offsets.
type MouseLook struct {
	firstMouse bool
	lastX      float64
	lastY      float64
}

// NewMouseLook starts tracking from the given cursor position.
func NewMouseLook(x, y float64) *MouseLook {
	return &MouseLook{firstMouse: true, lastX: x, lastY: y}
}

// Offset returns the cursor movement since the previous call. Y is inverted
// because window coordinates grow downward. The first call only records the
// position so the camera does not jump.
func (m *MouseLook) Offset(x, y float64) (float32, float32) {
	if m.firstMouse {
		m.lastX, m.lastY = x, y
		m.firstMouse = false
	}
	dx := x - m.lastX
	dy := m.lastY - y
	m.lastX, m.lastY = x, y
	return float32(dx), float32(dy)
}

// Reset makes the next Offset call re-anchor instead of producing a jump.
func (m *MouseLook) Reset() {
	m.firstMouse = true
}

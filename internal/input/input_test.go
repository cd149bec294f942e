package input

import (
	"testing"

	"glscene/internal/graphics"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

type fakeKeys map[glfw.Key]bool

func (f fakeKeys) GetKey(key glfw.Key) glfw.Action {
	if f[key] {
		return glfw.Press
	}
	return glfw.Release
}

func TestPollMapsKeysToActions(t *testing.T) {
	im := NewInputManager()
	im.Poll(fakeKeys{glfw.KeyW: true, glfw.KeyE: true})

	assert.True(t, im.IsActive(ActionMoveForward))
	assert.True(t, im.IsActive(ActionMoveUp))
	assert.False(t, im.IsActive(ActionMoveBackward))
	assert.False(t, im.IsActive(ActionMoveDown))
}

func TestPollFollowsHeldKeys(t *testing.T) {
	im := NewInputManager()
	keys := fakeKeys{glfw.KeyA: true}

	im.Poll(keys)
	assert.True(t, im.IsActive(ActionMoveLeft))
	assert.False(t, im.JustPressed(ActionMoveLeft), "polling does not record taps")

	keys[glfw.KeyA] = false
	im.Poll(keys)
	assert.False(t, im.IsActive(ActionMoveLeft))
}

func TestTapBetweenPollsStillTriggers(t *testing.T) {
	im := NewInputManager()
	im.HandleKeyEvent(glfw.KeyW, glfw.Press)
	im.HandleKeyEvent(glfw.KeyW, glfw.Release)
	im.Poll(fakeKeys{})

	assert.False(t, im.IsActive(ActionMoveForward))
	assert.True(t, im.JustPressed(ActionMoveForward))
	assert.True(t, im.Triggered(ActionMoveForward))

	cam := graphics.NewCamera(mgl32.Vec3{0, 0, 3})
	MoveCamera(im, cam, 0.1)
	assert.Less(t, cam.Position.Z(), float32(3))

	im.PostUpdate()
	assert.False(t, im.Triggered(ActionMoveForward))
}

func TestHandleKeyEvent(t *testing.T) {
	im := NewInputManager()
	im.HandleKeyEvent(glfw.KeyLeftShift, glfw.Press)
	assert.True(t, im.IsActive(ActionModFast))
	im.HandleKeyEvent(glfw.KeyLeftShift, glfw.Repeat)
	assert.True(t, im.IsActive(ActionModFast))
	im.HandleKeyEvent(glfw.KeyLeftShift, glfw.Release)
	assert.False(t, im.IsActive(ActionModFast))

	// Unbound keys are ignored.
	im.HandleKeyEvent(glfw.KeyZ, glfw.Press)
	for a := Action(0); a < ActionCount; a++ {
		assert.False(t, im.IsActive(a))
	}
}

func TestExtraBindingSharesAction(t *testing.T) {
	im := NewInputManager()
	im.BindKey(glfw.KeyUp, ActionMoveForward)
	im.Poll(fakeKeys{glfw.KeyUp: true})
	assert.True(t, im.IsActive(ActionMoveForward))

	im.Poll(fakeKeys{glfw.KeyW: true})
	assert.True(t, im.IsActive(ActionMoveForward))
}

func TestOutOfRangeAction(t *testing.T) {
	im := NewInputManager()
	im.BindKey(glfw.KeyX, ActionCount)
	im.Poll(fakeKeys{glfw.KeyX: true})
	assert.False(t, im.IsActive(ActionCount))
	assert.False(t, im.IsActive(-1))
}

func TestRelease(t *testing.T) {
	im := NewInputManager()
	im.Poll(fakeKeys{glfw.KeyD: true})
	im.HandleKeyEvent(glfw.KeyA, glfw.Press)
	im.Release()
	assert.False(t, im.Triggered(ActionMoveRight))
	assert.False(t, im.Triggered(ActionMoveLeft))
}

func TestEffectiveDelta(t *testing.T) {
	cases := []struct {
		name string
		keys fakeKeys
		want float32
	}{
		{"plain", fakeKeys{}, 0.1},
		{"shift", fakeKeys{glfw.KeyLeftShift: true}, 0.5},
		{"ctrl", fakeKeys{glfw.KeyLeftControl: true}, 0.02},
		{"both", fakeKeys{glfw.KeyLeftShift: true, glfw.KeyLeftControl: true}, 0.1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			im := NewInputManager()
			im.Poll(c.keys)
			assert.InDelta(t, c.want, EffectiveDelta(im, 0.1), 1e-6)
		})
	}
}

func TestMoveCamera(t *testing.T) {
	im := NewInputManager()
	cam := graphics.NewCamera(mgl32.Vec3{0, 0, 3})
	speed := cam.MovementSpeed

	im.Poll(fakeKeys{glfw.KeyW: true, glfw.KeyLeftShift: true})
	MoveCamera(im, cam, 0.1)

	// Default front is -Z.
	assert.InDelta(t, 3-speed*0.5, cam.Position.Z(), 1e-5)
	assert.InDelta(t, 0, cam.Position.X(), 1e-5)

	im.Poll(fakeKeys{glfw.KeyE: true})
	MoveCamera(im, cam, 1)
	assert.InDelta(t, speed, cam.Position.Y(), 1e-5)

	im.Poll(fakeKeys{glfw.KeyQ: true})
	MoveCamera(im, cam, 1)
	assert.InDelta(t, 0, cam.Position.Y(), 1e-5)
}

func TestMouseLook(t *testing.T) {
	m := NewMouseLook(640, 360)

	dx, dy := m.Offset(700, 300)
	assert.Zero(t, dx)
	assert.Zero(t, dy)

	dx, dy = m.Offset(710, 290)
	assert.Equal(t, float32(10), dx)
	assert.Equal(t, float32(10), dy, "moving up yields a positive offset")

	m.Reset()
	dx, dy = m.Offset(0, 0)
	assert.Zero(t, dx)
	assert.Zero(t, dy)
}

package graphics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestNewCameraLooksDownNegativeZ(t *testing.T) {
	c := NewCamera(mgl32.Vec3{0, 0, 3})
	assert.True(t, c.Front.ApproxEqualThreshold(mgl32.Vec3{0, 0, -1}, 1e-5), "front %v", c.Front)
	assert.True(t, c.Right.ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, 1e-5), "right %v", c.Right)
	assert.True(t, c.Up.ApproxEqualThreshold(mgl32.Vec3{0, 1, 0}, 1e-5), "up %v", c.Up)
}

func TestProcessKeyboard(t *testing.T) {
	c := NewCamera(mgl32.Vec3{0, 0, 3})

	c.ProcessKeyboard(Forward, 1)
	assert.True(t, c.Position.ApproxEqualThreshold(mgl32.Vec3{0, 0, 0.5}, 1e-5), "%v", c.Position)

	c.ProcessKeyboard(Right, 2)
	assert.True(t, c.Position.ApproxEqualThreshold(mgl32.Vec3{5, 0, 0.5}, 1e-5), "%v", c.Position)

	c.ProcessKeyboard(Up, 0.4)
	c.ProcessKeyboard(Down, 0.2)
	assert.InDelta(t, 0.5, c.Position.Y(), 1e-5)
}

func TestPitchIsConstrained(t *testing.T) {
	c := NewCamera(mgl32.Vec3{})
	c.ProcessMouseMovement(0, 5000)
	assert.Equal(t, float32(89), c.Pitch)

	c.ProcessMouseMovement(0, -10000)
	assert.Equal(t, float32(-89), c.Pitch)

	c.ProcessMouseMovement(100, 0)
	assert.InDelta(t, -80.0, c.Yaw, 1e-4)
}

func TestZoomIsClamped(t *testing.T) {
	c := NewCamera(mgl32.Vec3{})
	c.ProcessMouseScroll(-10)
	assert.Equal(t, float32(45), c.Zoom)

	c.ProcessMouseScroll(20)
	assert.Equal(t, float32(25), c.Zoom)

	c.ProcessMouseScroll(100)
	assert.Equal(t, float32(1), c.Zoom)
}

func TestViewMatrixMapsPositionToOrigin(t *testing.T) {
	c := NewCamera(mgl32.Vec3{1, 2, 3})
	eye := c.GetViewMatrix().Mul4x1(mgl32.Vec4{1, 2, 3, 1})
	assert.True(t, eye.ApproxEqualThreshold(mgl32.Vec4{0, 0, 0, 1}, 1e-5), "%v", eye)
}

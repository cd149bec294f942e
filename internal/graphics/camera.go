package graphics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// CameraMovement is a direction the fly camera can move in
type CameraMovement int

const (
	Forward CameraMovement = iota
	Backward
	Left
	Right
	Up
	Down
)

const (
	defaultYaw         = -90.0
	defaultPitch       = 0.0
	defaultSpeed       = 2.5
	defaultSensitivity = 0.1
	defaultZoom        = 45.0

	maxPitch = 89.0
	minZoom  = 1.0
	maxZoom  = 45.0
)

// Camera is an Euler-angle fly camera. Yaw and Pitch are in degrees; Zoom is
// the vertical field of view in degrees.
type Camera struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3
	Right    mgl32.Vec3
	WorldUp  mgl32.Vec3

	Yaw   float32
	Pitch float32

	MovementSpeed    float32
	MouseSensitivity float32
	Zoom             float32

	NearPlane float32
	FarPlane  float32
}

// NewCamera returns a camera at position looking down -Z.
func NewCamera(position mgl32.Vec3) *Camera {
	c := &Camera{
		Position:         position,
		WorldUp:          mgl32.Vec3{0, 1, 0},
		Yaw:              defaultYaw,
		Pitch:            defaultPitch,
		MovementSpeed:    defaultSpeed,
		MouseSensitivity: defaultSensitivity,
		Zoom:             defaultZoom,
		NearPlane:        0.1,
		FarPlane:         100.0,
	}
	c.updateVectors()
	return c
}

// GetViewMatrix returns the look-at matrix for the current position and orientation
func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

// GetProjectionMatrix returns a perspective projection using Zoom as the field of view
func (c *Camera) GetProjectionMatrix(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.Zoom), aspect, c.NearPlane, c.FarPlane)
}

// ProcessKeyboard moves the camera along its local axes. Up and Down follow the world up axis.
func (c *Camera) ProcessKeyboard(direction CameraMovement, dt float32) {
	velocity := c.MovementSpeed * dt
	switch direction {
	case Forward:
		c.Position = c.Position.Add(c.Front.Mul(velocity))
	case Backward:
		c.Position = c.Position.Sub(c.Front.Mul(velocity))
	case Left:
		c.Position = c.Position.Sub(c.Right.Mul(velocity))
	case Right:
		c.Position = c.Position.Add(c.Right.Mul(velocity))
	case Up:
		c.Position = c.Position.Add(c.WorldUp.Mul(velocity))
	case Down:
		c.Position = c.Position.Sub(c.WorldUp.Mul(velocity))
	}
}

// ProcessMouseMovement turns the camera by the given cursor offsets. Pitch is
// constrained so the view never flips.
func (c *Camera) ProcessMouseMovement(xoffset, yoffset float32) {
	c.Yaw += xoffset * c.MouseSensitivity
	c.Pitch += yoffset * c.MouseSensitivity

	if c.Pitch > maxPitch {
		c.Pitch = maxPitch
	}
	if c.Pitch < -maxPitch {
		c.Pitch = -maxPitch
	}
	c.updateVectors()
}

// ProcessMouseScroll narrows or widens the field of view.
func (c *Camera) ProcessMouseScroll(yoffset float32) {
	c.Zoom -= yoffset
	if c.Zoom < minZoom {
		c.Zoom = minZoom
	}
	if c.Zoom > maxZoom {
		c.Zoom = maxZoom
	}
}

func (c *Camera) updateVectors() {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))
	front := mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}
	c.Front = front.Normalize()
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}

package flycam

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/flycam/scene"
)

// FlyCam marks a camera entity as driven by the controller and carries its
// look angles. A FlyCam added without angles picks them up from the entity's
// rotation the first time the controller sees it.
type FlyCam struct {
	Yaw   float32
	Pitch float32
	Roll  float32

	// Velocity is the last frame's movement in world units per second.
	Velocity mgl32.Vec3

	ready bool
}

// Resync makes the controller re-read the angles from the entity's rotation
// on the next frame. Call it after moving the camera's rotation by hand.
func (c *FlyCam) Resync() {
	c.ready = false
}

func (c *FlyCam) sync(t *scene.Transform) {
	if c.ready {
		return
	}
	c.Yaw, c.Pitch, c.Roll = t.YawPitchRoll()
	c.Pitch = mgl32.Clamp(c.Pitch, -MaxPitch, MaxPitch)
	c.ready = true
}

func (c *FlyCam) rotation() mgl32.Quat {
	return scene.YawPitchRoll(c.Yaw, c.Pitch, c.Roll)
}

// ControllerInput is the input collected for the controller this frame.
// Axes are in [-1, 1]: Move is right, up, forward and Turn is yaw left,
// pitch up, roll left.
type ControllerInput struct {
	Move mgl32.Vec3
	Turn mgl32.Vec3
	// Factor is the speed multiplier from the Boost and Slow keys.
	Factor float32
	// Look is the mouse motion in pixels.
	Look mgl32.Vec2
	// Scroll is the wheel movement in lines, positive away from the user.
	Scroll float32
	// Active is set while the cursor is grabbed.
	Active bool
}

type cameraView struct {
	Transform *scene.Transform
	Cam       *FlyCam
}

package flycam

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/flycam/ecs"
	"github.com/plus3/flycam/input"
)

// LookSystem turns the cameras from mouse motion and the keyboard turn keys.
// Pitch is clamped to ±MaxPitch. The rotation is rewritten only when an angle
// changes, so a camera left alone keeps whatever rotation it was given.
type LookSystem struct {
	Settings ecs.Singleton[MovementSettings]
	Window   ecs.Singleton[input.Window]
	Input    ecs.Singleton[ControllerInput]
	Cameras  ecs.Query[cameraView]
}

func (s *LookSystem) Execute(frame *ecs.UpdateFrame) {
	settings := s.Settings.Get()
	in := s.Input.Get()
	dt := float32(frame.DeltaTime)

	// Mouse look is measured against the smaller window side so both axes
	// turn at the same rate.
	scale := settings.Sensitivity * s.Window.Get().Scale()
	dYaw := -mgl32.DegToRad(in.Look[0] * scale)
	dPitch := -mgl32.DegToRad(in.Look[1] * scale)
	var dRoll float32

	if in.Turn != (mgl32.Vec3{}) {
		rate := settings.Speed * in.Factor * dt
		dYaw += in.Turn[0] * settings.TurnRate * rate
		dPitch += in.Turn[1] * settings.TiltRate * rate
		dRoll += in.Turn[2] * settings.TiltRate * rate
	}

	for _, cam := range s.Cameras.Iter() {
		c := cam.Cam
		c.sync(cam.Transform)
		if !in.Active || (dYaw == 0 && dPitch == 0 && dRoll == 0) {
			continue
		}

		c.Yaw += dYaw
		c.Pitch = mgl32.Clamp(c.Pitch+dPitch, -MaxPitch, MaxPitch)
		c.Roll += dRoll
		cam.Transform.Rotation = c.rotation()
	}
}

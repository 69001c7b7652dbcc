package flycam

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/flycam/ecs"
)

// MoveSystem moves every FlyCam along the ground-plane projection of its
// view direction, plus straight up or down, at Speed * Factor units per second.
type MoveSystem struct {
	Settings ecs.Singleton[MovementSettings]
	Input    ecs.Singleton[ControllerInput]
	Cameras  ecs.Query[cameraView]
}

func (s *MoveSystem) Execute(frame *ecs.UpdateFrame) {
	in := s.Input.Get()
	speed := s.Settings.Get().Speed * in.Factor
	dt := float32(frame.DeltaTime)

	for _, cam := range s.Cameras.Iter() {
		cam.Cam.Velocity = mgl32.Vec3{}
		if !in.Active || in.Move == (mgl32.Vec3{}) {
			continue
		}

		localZ := cam.Transform.LocalZ()
		forward := mgl32.Vec3{-localZ[0], 0, -localZ[2]}
		right := mgl32.Vec3{localZ[2], 0, -localZ[0]}

		dir := right.Mul(in.Move[0]).
			Add(mgl32.Vec3{0, in.Move[1], 0}).
			Add(forward.Mul(in.Move[2]))
		if dir.Len() == 0 {
			continue
		}

		velocity := dir.Normalize().Mul(speed)
		cam.Cam.Velocity = velocity
		cam.Transform.Translation = cam.Transform.Translation.Add(velocity.Mul(dt))
	}
}

package flycam

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/flycam/ecs"
	"github.com/plus3/flycam/scene"
)

// SpawnPosition is where PlayerPlugin places its camera. It looks at the origin.
var SpawnPosition = mgl32.Vec3{-2, 5, 5}

// SetupCamera spawns a perspective camera tagged with FlyCam.
type SetupCamera struct{}

func (SetupCamera) Execute(frame *ecs.UpdateFrame) {
	frame.Commands.Spawn(CameraBundle(SpawnPosition, mgl32.Vec3{})...)
}

// CameraBundle returns the components of a fly camera at position looking at target.
func CameraBundle(position, target mgl32.Vec3) []any {
	transform := scene.FromXYZ(position[0], position[1], position[2]).LookingAt(target)
	return []any{transform, scene.DefaultCamera(), FlyCam{}}
}

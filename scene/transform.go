// Package scene holds the spatial components shared by the camera controller
// and the renderer: transforms, perspective cameras and wireframe meshes.
//
// Coordinates are right handed with +Y up. An identity rotation looks down -Z.
package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	AxisX = mgl32.Vec3{1, 0, 0}
	AxisY = mgl32.Vec3{0, 1, 0}
	AxisZ = mgl32.Vec3{0, 0, 1}
)

// Transform places an entity in world space.
type Transform struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Quat
	Scale       mgl32.Vec3
}

// Identity returns a transform at the origin with no rotation and unit scale.
func Identity() Transform {
	return Transform{
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// FromXYZ returns an unrotated transform at (x, y, z).
func FromXYZ(x, y, z float32) Transform {
	t := Identity()
	t.Translation = mgl32.Vec3{x, y, z}
	return t
}

// LookingAt returns t rotated so Forward points at target with no roll.
// A target equal to the translation leaves the rotation unchanged.
func (t Transform) LookingAt(target mgl32.Vec3) Transform {
	dir := target.Sub(t.Translation)
	if dir.Len() < 1e-6 {
		return t
	}
	yaw, pitch := DirectionAngles(dir.Normalize())
	t.Rotation = YawPitchRoll(yaw, pitch, 0)
	return t
}

// Forward is the direction the transform looks along (-Z in local space).
func (t Transform) Forward() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{0, 0, -1})
}

func (t Transform) Right() mgl32.Vec3 {
	return t.Rotation.Rotate(AxisX)
}

func (t Transform) Up() mgl32.Vec3 {
	return t.Rotation.Rotate(AxisY)
}

// LocalZ is the local +Z axis in world space, pointing behind the view.
func (t Transform) LocalZ() mgl32.Vec3 {
	return t.Rotation.Rotate(AxisZ)
}

// Matrix returns the local-to-world matrix: translate * rotate * scale.
func (t Transform) Matrix() mgl32.Mat4 {
	tr := t.Translation
	s := t.Scale
	return mgl32.Translate3D(tr[0], tr[1], tr[2]).
		Mul4(t.Rotation.Mat4()).
		Mul4(mgl32.Scale3D(s[0], s[1], s[2]))
}

// View returns the world-to-view matrix, ignoring scale.
func (t Transform) View() mgl32.Mat4 {
	tr := t.Translation
	return t.Rotation.Conjugate().Mat4().Mul4(mgl32.Translate3D(-tr[0], -tr[1], -tr[2]))
}

// YawPitchRoll decomposes the rotation into the angles accepted by the
// package-level YawPitchRoll. Pitch is in [-pi/2, pi/2].
func (t Transform) YawPitchRoll() (yaw, pitch, roll float32) {
	yaw, pitch = DirectionAngles(t.Forward())

	// Undo yaw and pitch; what is left of the right axis is pure roll.
	base := YawPitchRoll(yaw, pitch, 0)
	r := base.Conjugate().Rotate(t.Right())
	roll = float32(math.Atan2(float64(r[1]), float64(r[0])))
	return yaw, pitch, roll
}

// YawPitchRoll builds Ry(yaw) * Rx(pitch) * Rz(roll).
func YawPitchRoll(yaw, pitch, roll float32) mgl32.Quat {
	return mgl32.QuatRotate(yaw, AxisY).
		Mul(mgl32.QuatRotate(pitch, AxisX)).
		Mul(mgl32.QuatRotate(roll, AxisZ)).
		Normalize()
}

// DirectionAngles returns the yaw and pitch that turn -Z onto the unit vector dir.
func DirectionAngles(dir mgl32.Vec3) (yaw, pitch float32) {
	y := mgl32.Clamp(dir[1], -1, 1)
	pitch = float32(math.Asin(float64(y)))
	yaw = float32(math.Atan2(float64(-dir[0]), float64(-dir[2])))
	return yaw, pitch
}

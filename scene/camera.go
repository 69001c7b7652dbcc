package scene

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a perspective projection. FovY is the vertical field of view in radians.
type Camera struct {
	FovY float32
	Near float32
	Far  float32
}

// DefaultCamera returns a 45 degree camera with a 0.1..1000 depth range.
func DefaultCamera() Camera {
	return Camera{
		FovY: mgl32.DegToRad(45),
		Near: 0.1,
		Far:  1000,
	}
}

// Projection returns the clip-space projection for the given width/height ratio.
func (c Camera) Projection(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(c.FovY, aspect, c.Near, c.Far)
}

// ViewProjection combines the projection with the camera transform's view matrix.
func (c Camera) ViewProjection(t Transform, aspect float32) mgl32.Mat4 {
	return c.Projection(aspect).Mul4(t.View())
}

// Segment is a line between two points in model space.
type Segment [2]mgl32.Vec3

// Wireframe is a line mesh drawn in a single colour.
type Wireframe struct {
	Segments []Segment
	Color    color.RGBA
}

// ProjectSegment maps a world-space segment to screen pixels. The part of the
// segment behind the near plane is clipped away; ok is false when nothing is left.
func ProjectSegment(viewProj mgl32.Mat4, seg Segment, width, height float32) (a, b mgl32.Vec2, ok bool) {
	ca := viewProj.Mul4x1(seg[0].Vec4(1))
	cb := viewProj.Mul4x1(seg[1].Vec4(1))

	// Signed distance to the near plane in clip space: z >= -w.
	da := ca[2] + ca[3]
	db := cb[2] + cb[3]
	switch {
	case da < 0 && db < 0:
		return a, b, false
	case da < 0:
		ca = lerp4(ca, cb, da/(da-db))
	case db < 0:
		cb = lerp4(cb, ca, db/(db-da))
	}
	if ca[3] <= 0 || cb[3] <= 0 {
		return a, b, false
	}

	return toScreen(ca, width, height), toScreen(cb, width, height), true
}

func lerp4(from, to mgl32.Vec4, t float32) mgl32.Vec4 {
	return from.Add(to.Sub(from).Mul(t))
}

func toScreen(clip mgl32.Vec4, width, height float32) mgl32.Vec2 {
	x := clip[0] / clip[3]
	y := clip[1] / clip[3]
	return mgl32.Vec2{(x + 1) / 2 * width, (1 - y) / 2 * height}
}

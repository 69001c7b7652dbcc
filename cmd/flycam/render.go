package main

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/flycam/ecs"
	"github.com/plus3/flycam/flycam"
	"github.com/plus3/flycam/scene"
)

var background = color.RGBA{18, 18, 24, 255}

type meshView struct {
	Transform *scene.Transform
	Mesh      *scene.Wireframe
}

type cameraView struct {
	Transform *scene.Transform
	Camera    *scene.Camera
	Cam       *flycam.FlyCam
}

// renderer draws every Wireframe entity from the first fly camera's point of view.
type renderer struct {
	meshes  *ecs.Query[meshView]
	cameras *ecs.Query[cameraView]
}

func newRenderer(storage *ecs.Storage) *renderer {
	return &renderer{
		meshes:  ecs.NewQuery[meshView](storage),
		cameras: ecs.NewQuery[cameraView](storage),
	}
}

func (r *renderer) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	r.cameras.Execute()
	viewProj, found := r.viewProjection(screen)
	if !found {
		return
	}

	bounds := screen.Bounds()
	w, h := float32(bounds.Dx()), float32(bounds.Dy())

	r.meshes.Execute()
	for _, m := range r.meshes.Iter() {
		mvp := viewProj.Mul4(m.Transform.Matrix())
		for _, seg := range m.Mesh.Segments {
			a, b, ok := scene.ProjectSegment(mvp, seg, w, h)
			if !ok {
				continue
			}
			vector.StrokeLine(screen, a[0], a[1], b[0], b[1], 1, m.Mesh.Color, true)
		}
	}
}

func (r *renderer) viewProjection(screen *ebiten.Image) (viewProj mgl32.Mat4, ok bool) {
	bounds := screen.Bounds()
	if bounds.Dy() == 0 {
		return viewProj, false
	}
	aspect := float32(bounds.Dx()) / float32(bounds.Dy())
	for _, c := range r.cameras.Iter() {
		return c.Camera.ViewProjection(*c.Transform, aspect), true
	}
	return viewProj, false
}

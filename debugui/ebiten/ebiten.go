// Package ebiten provides Dear ImGui backend integration for the Ebiten game engine.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/flycam/input/ebiteninput"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// NewImguiBackend creates the backend and its window. ImGui's ini file is disabled.
func NewImguiBackend(title string, width, height int) *ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return &ImguiBackend{EbitenBackend: backend}
}

// Attach hooks the backend into game: an ImGui frame wraps every app update,
// the overlay is drawn after the game's other drawers, and layout changes are
// forwarded.
func (b *ImguiBackend) Attach(game *ebiteninput.Game) {
	before, after, onLayout := game.BeforeUpdate, game.AfterUpdate, game.OnLayout

	game.BeforeUpdate = func() {
		if before != nil {
			before()
		}
		b.BeginFrame()
	}
	game.AfterUpdate = func() {
		b.EndFrame()
		if after != nil {
			after()
		}
	}
	game.Drawers = append(game.Drawers, func(screen *ebiten.Image) {
		b.Draw(screen)
	})
	game.OnLayout = func(width, height int) {
		b.Layout(width, height)
		if onLayout != nil {
			onLayout(width, height)
		}
	}
}

package ebiteninput

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/flycam/ecs"
	"github.com/plus3/flycam/input"
)

// maxDelta caps the frame delta after a stall, e.g. a window drag.
const maxDelta = 0.25

// Game runs an ecs.App as an ebiten.Game. BeforeUpdate and AfterUpdate wrap
// each app frame; Drawers paint in order after the app has updated.
type Game struct {
	App          *ecs.App
	BeforeUpdate func()
	AfterUpdate  func()
	Drawers      []func(screen *ebiten.Image)
	OnLayout     func(width, height int)

	last time.Time
	quit bool
}

// NewGame returns a Game driving app.
func NewGame(app *ecs.App) *Game {
	return &Game{App: app}
}

// Quit ends the run loop after the current frame.
func (g *Game) Quit() {
	g.quit = true
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	now := time.Now()
	dt := 1.0 / float64(ebiten.TPS())
	if !g.last.IsZero() {
		dt = min(now.Sub(g.last).Seconds(), maxDelta)
	}
	g.last = now

	if g.BeforeUpdate != nil {
		g.BeforeUpdate()
	}
	g.App.Update(dt)
	if g.AfterUpdate != nil {
		g.AfterUpdate()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	for _, draw := range g.Drawers {
		draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if w := input.PrimaryWindow(g.App.Storage()); w != nil {
		w.Width = float32(outsideWidth)
		w.Height = float32(outsideHeight)
	}
	if g.OnLayout != nil {
		g.OnLayout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

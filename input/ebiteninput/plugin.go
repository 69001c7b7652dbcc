// Package ebiteninput feeds Ebiten's keyboard, mouse and window state into
// the input package's resources and applies cursor grab changes back to
// Ebiten.
package ebiteninput

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/flycam/ecs"
	"github.com/plus3/flycam/input"
)

// Plugin polls Ebiten in PreUpdate and syncs the cursor mode in Last.
type Plugin struct{}

func (Plugin) Build(app *ecs.App) {
	app.AddPlugins(input.Plugin{})
	app.AddSystems(ecs.PreUpdate, &PollSystem{})
	app.AddSystems(ecs.Last, &CursorSystem{})
}

// PollSystem copies Ebiten's input state into the input resources.
type PollSystem struct {
	Keys    ecs.Singleton[input.ButtonInput[input.Key]]
	Buttons ecs.Singleton[input.ButtonInput[input.MouseButton]]
	Window  ecs.Singleton[input.Window]
	Motion  ecs.Singleton[ecs.Events[input.MouseMotion]]
	Wheel   ecs.Singleton[ecs.Events[input.MouseWheel]]

	pressed  []ebiten.Key
	down     map[input.Key]bool
	lastX    int
	lastY    int
	tracking bool
	locked   bool
}

func (s *PollSystem) Execute(frame *ecs.UpdateFrame) {
	s.pollKeys()

	buttons := s.Buttons.Get()
	for eb, b := range mouseButtonMap {
		buttons.Set(b, ebiten.IsMouseButtonPressed(eb))
	}

	window := s.Window.Get()
	window.Focused = ebiten.IsFocused()

	// Switching cursor modes makes Ebiten report a jump in position.
	if window.CursorLocked != s.locked {
		s.locked = window.CursorLocked
		s.tracking = false
	}

	x, y := ebiten.CursorPosition()
	if s.tracking && (x != s.lastX || y != s.lastY) {
		s.Motion.Get().Send(input.MouseMotion{
			Delta: mgl32.Vec2{float32(x - s.lastX), float32(y - s.lastY)},
		})
	}
	s.lastX, s.lastY = x, y
	s.tracking = true

	if dx, dy := ebiten.Wheel(); dx != 0 || dy != 0 {
		s.Wheel.Get().Send(input.MouseWheel{X: float32(dx), Y: float32(dy), Unit: input.ScrollLine})
	}
}

func (s *PollSystem) pollKeys() {
	if s.down == nil {
		s.down = make(map[input.Key]bool)
	}
	clear(s.down)

	s.pressed = inpututil.AppendPressedKeys(s.pressed[:0])
	for _, k := range s.pressed {
		if key := ToKey(k); key != input.KeyUnknown {
			s.down[key] = true
		}
	}

	keys := s.Keys.Get()
	for _, key := range input.AllKeys() {
		keys.Set(key, s.down[key])
	}
}

// CursorSystem applies Window.CursorLocked and CursorVisible to Ebiten's cursor mode.
type CursorSystem struct {
	Window ecs.Singleton[input.Window]

	applied bool
	mode    ebiten.CursorModeType
}

func (s *CursorSystem) Execute(frame *ecs.UpdateFrame) {
	mode := CursorMode(s.Window.Get())
	if s.applied && mode == s.mode {
		return
	}
	ebiten.SetCursorMode(mode)
	s.mode = mode
	s.applied = true
}

// CursorMode picks the Ebiten cursor mode for a window's grab state.
func CursorMode(w *input.Window) ebiten.CursorModeType {
	switch {
	case w.CursorLocked:
		return ebiten.CursorModeCaptured
	case !w.CursorVisible:
		return ebiten.CursorModeHidden
	default:
		return ebiten.CursorModeVisible
	}
}

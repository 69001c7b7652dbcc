// Package input holds backend-independent input state for an ecs.App:
// keyboard and mouse buttons, mouse motion and wheel events, and the primary
// window's cursor state. A backend such as ebiteninput fills it in each frame.
package input

import "github.com/plus3/flycam/ecs"

// Default window size used until a backend reports the real one.
const (
	DefaultWidth  = 1280
	DefaultHeight = 720
)

// Plugin registers the input resources and events.
type Plugin struct{}

func (Plugin) Build(app *ecs.App) {
	ecs.InitResource[ButtonInput[Key]](app)
	ecs.InitResource[ButtonInput[MouseButton]](app)
	ecs.InitResource(app, NewWindow(DefaultWidth, DefaultHeight))
	ecs.InitResource[UICapture](app)
	ecs.AddEvent[MouseMotion](app)
	ecs.AddEvent[MouseWheel](app)
	app.AddSystems(ecs.Last, &ClearJustSystem{})
}

// ClearJustSystem forgets just-pressed and just-released state at the end of a frame.
type ClearJustSystem struct {
	Keys    ecs.Singleton[ButtonInput[Key]]
	Buttons ecs.Singleton[ButtonInput[MouseButton]]
}

func (s *ClearJustSystem) Execute(frame *ecs.UpdateFrame) {
	s.Keys.Get().ClearJust()
	s.Buttons.Get().ClearJust()
}

// Keys returns the keyboard resource of app's storage, or nil without Plugin.
func Keys(storage *ecs.Storage) *ButtonInput[Key] {
	return ecs.LookupSingleton[ButtonInput[Key]](storage)
}

// PrimaryWindow returns the window resource, or nil without Plugin.
func PrimaryWindow(storage *ecs.Storage) *Window {
	return ecs.LookupSingleton[Window](storage)
}

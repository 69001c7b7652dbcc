package flycam

import (
	"github.com/plus3/flycam/ecs"
	"github.com/plus3/flycam/input"
)

// CursorGrabSystem toggles cursor lock and visibility when a ToggleGrab key
// goes down. The backend applies the new state at the end of the frame.
type CursorGrabSystem struct {
	Settings ecs.Singleton[MovementSettings]
	Keys     ecs.Singleton[input.ButtonInput[input.Key]]
	Window   ecs.Singleton[input.Window]
	Capture  ecs.Singleton[input.UICapture]
}

func (s *CursorGrabSystem) Execute(frame *ecs.UpdateFrame) {
	if s.Capture.Get().Keyboard {
		return
	}
	if s.Keys.Get().AnyJustPressed(s.Settings.Get().Bindings.ToggleGrab...) {
		s.Window.Get().ToggleGrab()
	}
}

// InitialGrab locks and hides the cursor once at startup.
type InitialGrab struct {
	Window ecs.Singleton[input.Window]
}

func (s *InitialGrab) Execute(frame *ecs.UpdateFrame) {
	s.Window.Get().SetGrab(true)
}

package flycam

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/flycam/ecs"
	"github.com/plus3/flycam/input"
)

// pixelsPerLine converts pixel-precise scrolling to lines.
const pixelsPerLine = 16

// CollectInputSystem turns raw key, mouse and window state into ControllerInput.
// Nothing is collected while the cursor is free; keyboard and mouse are also
// ignored while an overlay UI is using them. Motion and wheel events are
// consumed either way so they do not pile up until the next grab.
type CollectInputSystem struct {
	Settings ecs.Singleton[MovementSettings]
	Keys     ecs.Singleton[input.ButtonInput[input.Key]]
	Window   ecs.Singleton[input.Window]
	Capture  ecs.Singleton[input.UICapture]
	Motion   ecs.Singleton[ecs.Events[input.MouseMotion]]
	Wheel    ecs.Singleton[ecs.Events[input.MouseWheel]]
	Input    ecs.Singleton[ControllerInput]

	motion ecs.EventReader[input.MouseMotion]
	wheel  ecs.EventReader[input.MouseWheel]
}

func (s *CollectInputSystem) Execute(frame *ecs.UpdateFrame) {
	out := s.Input.Get()
	*out = ControllerInput{Factor: 1}

	window := s.Window.Get()
	capture := s.Capture.Get()
	out.Active = window.CursorLocked

	mouse := out.Active && !capture.Mouse
	for ev := range s.motion.Read(s.Motion.Get()) {
		if mouse {
			out.Look = out.Look.Add(ev.Delta)
		}
	}
	for ev := range s.wheel.Read(s.Wheel.Get()) {
		if !mouse {
			continue
		}
		if ev.Unit == input.ScrollPixel {
			out.Scroll += ev.Y / pixelsPerLine
		} else {
			out.Scroll += ev.Y
		}
	}

	if !out.Active || capture.Keyboard {
		return
	}

	settings := s.Settings.Get()
	keys := s.Keys.Get()
	b := &settings.Bindings

	out.Move = mgl32.Vec3{
		axis(keys, b.Right, b.Left),
		axis(keys, b.Ascend, b.Descend),
		axis(keys, b.Forward, b.Backward),
	}
	out.Turn = mgl32.Vec3{
		axis(keys, b.YawLeft, b.YawRight),
		axis(keys, b.PitchUp, b.PitchDown),
		axis(keys, b.RollLeft, b.RollRight),
	}

	if keys.AnyPressed(b.Boost...) {
		out.Factor *= settings.Boost
	}
	if keys.AnyPressed(b.Slow...) && settings.Boost != 0 {
		out.Factor /= settings.Boost
	}
}

func axis(keys *input.ButtonInput[input.Key], positive, negative []input.Key) float32 {
	var v float32
	if keys.AnyPressed(positive...) {
		v++
	}
	if keys.AnyPressed(negative...) {
		v--
	}
	return v
}

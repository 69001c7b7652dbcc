package flycam

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/flycam/ecs"
)

// ScrollSpeedSystem scales MovementSettings.Speed by (1+ScrollStep) per
// scroll line, keeping it within [MinSpeed, MaxSpeed].
type ScrollSpeedSystem struct {
	Settings ecs.Singleton[MovementSettings]
	Input    ecs.Singleton[ControllerInput]
}

func (s *ScrollSpeedSystem) Execute(frame *ecs.UpdateFrame) {
	in := s.Input.Get()
	if !in.Active || in.Scroll == 0 {
		return
	}
	settings := s.Settings.Get()
	factor := math.Pow(float64(1+settings.ScrollStep), float64(in.Scroll))
	settings.Speed = mgl32.Clamp(settings.Speed*float32(factor), settings.MinSpeed, settings.MaxSpeed)
}

package config

import (
	"github.com/plus3/flycam/ecs"
	"github.com/plus3/flycam/flycam"
	"go.uber.org/zap"
)

// ReloadSystem replaces the MovementSettings resource whenever a path arrives
// on Changes. A file that fails to load leaves the current settings in place.
type ReloadSystem struct {
	Settings ecs.Singleton[flycam.MovementSettings]

	Path    string
	Changes <-chan string
	Logger  *zap.Logger
}

func (s *ReloadSystem) Execute(frame *ecs.UpdateFrame) {
	changed := false
	for drained := false; !drained; {
		select {
		case _, ok := <-s.Changes:
			if !ok {
				s.Changes = nil
				drained = true
				break
			}
			changed = true
		default:
			drained = true
		}
	}
	if !changed {
		return
	}

	logger := s.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	settings, err := LoadSettings(s.Path, flycam.DefaultMovementSettings())
	if err != nil {
		logger.Warn("settings reload failed", zap.String("path", s.Path), zap.Error(err))
		return
	}
	*s.Settings.Get() = settings
	logger.Info("settings reloaded", zap.String("path", s.Path),
		zap.Float32("speed", settings.Speed),
		zap.Float32("sensitivity", settings.Sensitivity))
}

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env is the demo's process configuration.
type Env struct {
	WindowWidth  int    `env:"FLYCAM_WINDOW_WIDTH" envDefault:"1280"`
	WindowHeight int    `env:"FLYCAM_WINDOW_HEIGHT" envDefault:"720"`
	Title        string `env:"FLYCAM_TITLE" envDefault:"flycam"`
	SettingsPath string `env:"FLYCAM_SETTINGS" envDefault:"flycam.yaml"`
	DebugUI      bool   `env:"FLYCAM_DEBUG_UI" envDefault:"false"`
	LogLevel     string `env:"FLYCAM_LOG_LEVEL" envDefault:"info"`
	LogDev       bool   `env:"FLYCAM_LOG_DEV" envDefault:"false"`
}

// LoadEnv reads Env from the environment.
func LoadEnv() (Env, error) {
	var cfg Env
	if err := env.Parse(&cfg); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

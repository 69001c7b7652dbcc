// Package config loads the controller settings from YAML, watches the file
// for edits, and reads process settings from the environment.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/plus3/flycam/flycam"
	"github.com/plus3/flycam/input"
	"gopkg.in/yaml.v3"
)

// settingsFile mirrors flycam.MovementSettings. Absent fields keep the base value.
type settingsFile struct {
	Sensitivity *float32     `yaml:"sensitivity,omitempty"`
	Speed       *float32     `yaml:"speed,omitempty"`
	Boost       *float32     `yaml:"boost,omitempty"`
	ScrollStep  *float32     `yaml:"scroll_step,omitempty"`
	MinSpeed    *float32     `yaml:"min_speed,omitempty"`
	MaxSpeed    *float32     `yaml:"max_speed,omitempty"`
	TurnRate    *float32     `yaml:"turn_rate,omitempty"`
	TiltRate    *float32     `yaml:"tilt_rate,omitempty"`
	Bindings    bindingsFile `yaml:"bindings,omitempty"`
}

type bindingsFile struct {
	Forward    []string `yaml:"forward,omitempty"`
	Backward   []string `yaml:"backward,omitempty"`
	Left       []string `yaml:"left,omitempty"`
	Right      []string `yaml:"right,omitempty"`
	Ascend     []string `yaml:"ascend,omitempty"`
	Descend    []string `yaml:"descend,omitempty"`
	Boost      []string `yaml:"boost,omitempty"`
	Slow       []string `yaml:"slow,omitempty"`
	YawLeft    []string `yaml:"yaw_left,omitempty"`
	YawRight   []string `yaml:"yaw_right,omitempty"`
	PitchUp    []string `yaml:"pitch_up,omitempty"`
	PitchDown  []string `yaml:"pitch_down,omitempty"`
	RollLeft   []string `yaml:"roll_left,omitempty"`
	RollRight  []string `yaml:"roll_right,omitempty"`
	ToggleGrab []string `yaml:"toggle_grab,omitempty"`
}

// LoadSettings reads a settings file and applies it on top of base.
func LoadSettings(path string, base flycam.MovementSettings) (flycam.MovementSettings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read settings: %w", err)
	}
	s, err := ParseSettings(data, base)
	if err != nil {
		return base, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// ParseSettings decodes YAML settings on top of base. Unknown fields and key
// names are errors. An empty document returns base unchanged.
func ParseSettings(data []byte, base flycam.MovementSettings) (flycam.MovementSettings, error) {
	var f settingsFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return base, fmt.Errorf("decode settings: %w", err)
	}

	out := base
	setFloat(&out.Sensitivity, f.Sensitivity)
	setFloat(&out.Speed, f.Speed)
	setFloat(&out.Boost, f.Boost)
	setFloat(&out.ScrollStep, f.ScrollStep)
	setFloat(&out.MinSpeed, f.MinSpeed)
	setFloat(&out.MaxSpeed, f.MaxSpeed)
	setFloat(&out.TurnRate, f.TurnRate)
	setFloat(&out.TiltRate, f.TiltRate)

	b := &out.Bindings
	fb := &f.Bindings
	for _, bind := range []struct {
		name  string
		dst   *[]input.Key
		names []string
	}{
		{"forward", &b.Forward, fb.Forward},
		{"backward", &b.Backward, fb.Backward},
		{"left", &b.Left, fb.Left},
		{"right", &b.Right, fb.Right},
		{"ascend", &b.Ascend, fb.Ascend},
		{"descend", &b.Descend, fb.Descend},
		{"boost", &b.Boost, fb.Boost},
		{"slow", &b.Slow, fb.Slow},
		{"yaw_left", &b.YawLeft, fb.YawLeft},
		{"yaw_right", &b.YawRight, fb.YawRight},
		{"pitch_up", &b.PitchUp, fb.PitchUp},
		{"pitch_down", &b.PitchDown, fb.PitchDown},
		{"roll_left", &b.RollLeft, fb.RollLeft},
		{"roll_right", &b.RollRight, fb.RollRight},
		{"toggle_grab", &b.ToggleGrab, fb.ToggleGrab},
	} {
		if bind.names == nil {
			continue
		}
		keys, err := input.ParseKeys(bind.names)
		if err != nil {
			return base, fmt.Errorf("bindings.%s: %w", bind.name, err)
		}
		*bind.dst = keys
	}

	return out, nil
}

// MarshalSettings encodes every field of s, suitable for writing a starter file.
func MarshalSettings(s flycam.MovementSettings) ([]byte, error) {
	b := s.Bindings
	f := settingsFile{
		Sensitivity: &s.Sensitivity,
		Speed:       &s.Speed,
		Boost:       &s.Boost,
		ScrollStep:  &s.ScrollStep,
		MinSpeed:    &s.MinSpeed,
		MaxSpeed:    &s.MaxSpeed,
		TurnRate:    &s.TurnRate,
		TiltRate:    &s.TiltRate,
		Bindings: bindingsFile{
			Forward:    keyNames(b.Forward),
			Backward:   keyNames(b.Backward),
			Left:       keyNames(b.Left),
			Right:      keyNames(b.Right),
			Ascend:     keyNames(b.Ascend),
			Descend:    keyNames(b.Descend),
			Boost:      keyNames(b.Boost),
			Slow:       keyNames(b.Slow),
			YawLeft:    keyNames(b.YawLeft),
			YawRight:   keyNames(b.YawRight),
			PitchUp:    keyNames(b.PitchUp),
			PitchDown:  keyNames(b.PitchDown),
			RollLeft:   keyNames(b.RollLeft),
			RollRight:  keyNames(b.RollRight),
			ToggleGrab: keyNames(b.ToggleGrab),
		},
	}
	return yaml.Marshal(&f)
}

func setFloat(dst *float32, v *float32) {
	if v != nil {
		*dst = *v
	}
}

func keyNames(keys []input.Key) []string {
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return names
}

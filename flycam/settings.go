package flycam

import (
	"math"

	"github.com/plus3/flycam/input"
)

// MaxPitch bounds the look pitch in radians, just short of straight up or down.
const MaxPitch = 1.54

// MovementSettings is the controller's tuning resource. Values are used as
// given; nothing is validated.
type MovementSettings struct {
	// Sensitivity scales mouse motion. One pixel turns the camera by
	// Sensitivity * min(window width, height) degrees.
	Sensitivity float32
	// Speed is the movement speed in world units per second.
	Speed float32
	// Boost multiplies Speed while a Boost key is held; Slow keys divide by it.
	Boost float32

	// ScrollStep is the fractional speed change per scroll line.
	ScrollStep float32
	MinSpeed   float32
	MaxSpeed   float32

	// TurnRate and TiltRate are keyboard yaw and pitch/roll rates in radians
	// per second per unit of speed.
	TurnRate float32
	TiltRate float32

	Bindings KeyBindings
}

// KeyBindings lists the keys bound to each action. Any listed key triggers it.
type KeyBindings struct {
	Forward    []input.Key
	Backward   []input.Key
	Left       []input.Key
	Right      []input.Key
	Ascend     []input.Key
	Descend    []input.Key
	Boost      []input.Key
	Slow       []input.Key
	YawLeft    []input.Key
	YawRight   []input.Key
	PitchUp    []input.Key
	PitchDown  []input.Key
	RollLeft   []input.Key
	RollRight  []input.Key
	ToggleGrab []input.Key
}

func DefaultMovementSettings() MovementSettings {
	return MovementSettings{
		Sensitivity: 0.00012,
		Speed:       12,
		Boost:       4,
		ScrollStep:  0.1,
		MinSpeed:    0.1,
		MaxSpeed:    1000,
		TurnRate:    2 * math.Pi / 10,
		TiltRate:    math.Pi / 100,
		Bindings:    DefaultKeyBindings(),
	}
}

func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Forward:    []input.Key{input.KeyW, input.KeyUp},
		Backward:   []input.Key{input.KeyS, input.KeyDown},
		Left:       []input.Key{input.KeyA, input.KeyLeft},
		Right:      []input.Key{input.KeyD, input.KeyRight},
		Ascend:     []input.Key{input.KeySpace, input.KeyPeriod},
		Descend:    []input.Key{input.KeyRightShift, input.KeyComma},
		Boost:      []input.Key{input.KeyLeftShift},
		Slow:       []input.Key{input.KeyO},
		YawLeft:    []input.Key{input.KeyQ},
		YawRight:   []input.Key{input.KeyE},
		PitchUp:    []input.Key{input.KeyLeftBracket},
		PitchDown:  []input.Key{input.KeyRightBracket},
		RollLeft:   []input.Key{input.KeyZ},
		RollRight:  []input.Key{input.KeyX},
		ToggleGrab: []input.Key{input.KeyEscape},
	}
}

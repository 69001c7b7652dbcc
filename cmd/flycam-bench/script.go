package main

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/flycam/ecs"
	"github.com/plus3/flycam/flycam"
	"github.com/plus3/flycam/input"
)

// scriptKeys are the keys the script may hold down.
var scriptKeys = []input.Key{
	input.KeyW, input.KeyA, input.KeyS, input.KeyD,
	input.KeySpace, input.KeyComma, input.KeyLeftShift, input.KeyO,
	input.KeyQ, input.KeyE, input.KeyLeftBracket, input.KeyRightBracket,
	input.KeyZ, input.KeyX,
}

// holdFrames is how long the script keeps a key combination held.
const holdFrames = 30

// ScriptSystem plays deterministic pseudo-random input: a new key combination
// every holdFrames frames, mouse motion and the occasional scroll every frame.
// Every 500 frames it taps Escape twice to exercise the grab toggle.
type ScriptSystem struct {
	Keys   ecs.Singleton[input.ButtonInput[input.Key]]
	Motion ecs.Singleton[ecs.Events[input.MouseMotion]]
	Wheel  ecs.Singleton[ecs.Events[input.MouseWheel]]

	rng   *rand.Rand
	frame int
}

func NewScriptSystem(seed uint64) *ScriptSystem {
	return &ScriptSystem{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *ScriptSystem) Execute(frame *ecs.UpdateFrame) {
	keys := s.Keys.Get()

	switch s.frame % 500 {
	case 10, 12:
		keys.Press(input.KeyEscape)
	case 11, 13:
		keys.Release(input.KeyEscape)
	}

	if s.frame%holdFrames == 0 {
		for _, k := range scriptKeys {
			keys.Set(k, s.rng.IntN(4) == 0)
		}
	}

	s.Motion.Get().Send(input.MouseMotion{
		Delta: mgl32.Vec2{float32(s.rng.NormFloat64() * 8), float32(s.rng.NormFloat64() * 8)},
	})
	if s.rng.IntN(20) == 0 {
		s.Wheel.Get().Send(input.MouseWheel{Y: float32(s.rng.IntN(3) - 1)})
	}

	s.frame++
}

// SpawnCameras spawns Count fly cameras at seeded positions looking at the origin.
type SpawnCameras struct {
	Count int
	Seed  uint64
}

func (s *SpawnCameras) Execute(frame *ecs.UpdateFrame) {
	rng := rand.New(rand.NewPCG(s.Seed, s.Seed+1))
	for range s.Count {
		pos := mgl32.Vec3{
			float32(rng.Float64()*200 - 100),
			float32(rng.Float64()*50 + 1),
			float32(rng.Float64()*200 - 100),
		}
		frame.Commands.Spawn(flycam.CameraBundle(pos, mgl32.Vec3{})...)
	}
}

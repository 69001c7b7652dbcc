package input

import "github.com/go-gl/mathgl/mgl32"

// MouseMotion reports raw pointer movement in window pixels since the last event.
type MouseMotion struct {
	Delta mgl32.Vec2
}

// ScrollUnit says how MouseWheel amounts are measured.
type ScrollUnit int

const (
	ScrollLine ScrollUnit = iota
	ScrollPixel
)

// MouseWheel reports a scroll step. Positive Y scrolls up (away from the user).
type MouseWheel struct {
	X, Y float32
	Unit ScrollUnit
}

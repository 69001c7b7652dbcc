package input

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// ButtonInput tracks which buttons of type T are held, and which changed
// state since the last ClearJust.
type ButtonInput[T cmp.Ordered] struct {
	pressed      map[T]bool
	justPressed  map[T]bool
	justReleased map[T]bool
}

func (b *ButtonInput[T]) ensure() {
	if b.pressed == nil {
		b.pressed = make(map[T]bool)
		b.justPressed = make(map[T]bool)
		b.justReleased = make(map[T]bool)
	}
}

// Press marks button as held. It is just-pressed only if it was not already held.
func (b *ButtonInput[T]) Press(button T) {
	b.ensure()
	if !b.pressed[button] {
		b.pressed[button] = true
		b.justPressed[button] = true
	}
}

// Release marks button as no longer held.
func (b *ButtonInput[T]) Release(button T) {
	b.ensure()
	if b.pressed[button] {
		delete(b.pressed, button)
		b.justReleased[button] = true
	}
}

// Set presses or releases button to match down.
func (b *ButtonInput[T]) Set(button T, down bool) {
	if down {
		b.Press(button)
	} else {
		b.Release(button)
	}
}

func (b *ButtonInput[T]) Pressed(button T) bool      { return b.pressed[button] }
func (b *ButtonInput[T]) JustPressed(button T) bool  { return b.justPressed[button] }
func (b *ButtonInput[T]) JustReleased(button T) bool { return b.justReleased[button] }

// AnyPressed reports whether any of buttons is held.
func (b *ButtonInput[T]) AnyPressed(buttons ...T) bool {
	for _, button := range buttons {
		if b.pressed[button] {
			return true
		}
	}
	return false
}

// AnyJustPressed reports whether any of buttons went down this frame.
func (b *ButtonInput[T]) AnyJustPressed(buttons ...T) bool {
	for _, button := range buttons {
		if b.justPressed[button] {
			return true
		}
	}
	return false
}

// GetPressed yields the held buttons in ascending order.
func (b *ButtonInput[T]) GetPressed() iter.Seq[T] {
	return slices.Values(slices.Sorted(maps.Keys(b.pressed)))
}

// ClearJust forgets this frame's transitions but keeps held buttons held.
func (b *ButtonInput[T]) ClearJust() {
	clear(b.justPressed)
	clear(b.justReleased)
}

// Reset releases everything without recording transitions.
func (b *ButtonInput[T]) Reset() {
	clear(b.pressed)
	clear(b.justPressed)
	clear(b.justReleased)
}

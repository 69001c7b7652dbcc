package ecs

import "iter"

// Events is a double-buffered queue of T. Events sent during a frame stay
// readable through the end of the next frame, then are dropped by Update.
// Store it as a resource and let each consumer keep its own EventReader.
type Events[T any] struct {
	previous      []T
	current       []T
	previousStart int
	currentStart  int
	sent          int
}

// Send queues an event for readers.
func (e *Events[T]) Send(event T) {
	e.current = append(e.current, event)
	e.sent++
}

// Update rotates the buffers, dropping events older than one frame.
func (e *Events[T]) Update() {
	e.previous, e.current = e.current, e.previous[:0]
	e.previousStart = e.currentStart
	e.currentStart = e.sent
}

// Clear drops every buffered event. Readers skip ahead to the next Send.
func (e *Events[T]) Clear() {
	e.previous = e.previous[:0]
	e.current = e.current[:0]
	e.previousStart = e.sent
	e.currentStart = e.sent
}

// Len returns the number of buffered events.
func (e *Events[T]) Len() int {
	return len(e.previous) + len(e.current)
}

// EventReader tracks which events of an Events[T] a consumer has seen.
// The zero value reads every buffered event on first use.
type EventReader[T any] struct {
	last int
}

// Read yields every event this reader has not seen yet, oldest first.
func (r *EventReader[T]) Read(events *Events[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if events == nil {
			return
		}
		for i, ev := range events.previous {
			id := events.previousStart + i
			if id < r.last {
				continue
			}
			r.last = id + 1
			if !yield(ev) {
				return
			}
		}
		for i, ev := range events.current {
			id := events.currentStart + i
			if id < r.last {
				continue
			}
			r.last = id + 1
			if !yield(ev) {
				return
			}
		}
		r.last = max(r.last, events.previousStart)
	}
}

// Skip marks every buffered event as seen.
func (r *EventReader[T]) Skip(events *Events[T]) {
	if events != nil {
		r.last = events.sent
	}
}

type eventUpdateSystem[T any] struct {
	events *Events[T]
}

func (s *eventUpdateSystem[T]) Execute(frame *UpdateFrame) {
	s.events.Update()
}

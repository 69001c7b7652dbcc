package ecs

// System represents a behavior that runs once per frame inside a stage.
// Systems can declare Query and Singleton fields, which the Scheduler wires to
// the storage on registration, plus any custom state that persists between frames.
type System interface {
	Execute(frame *UpdateFrame)
}

// SystemFunc adapts a plain function to the System interface.
type SystemFunc func(frame *UpdateFrame)

func (f SystemFunc) Execute(frame *UpdateFrame) {
	f(frame)
}

package ecs

// UpdateFrame is handed to every system of a single scheduler pass.
type UpdateFrame struct {
	DeltaTime float64
	Stage     Stage
	Commands  *Commands
	Storage   *Storage
}

func newUpdateFrame(dt float64, storage *Storage) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Commands:  NewCommands(),
		Storage:   storage,
	}
}

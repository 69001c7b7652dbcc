// Package flycam is a first-person fly camera controller for an ecs.App.
//
// With the cursor grabbed, WASD or the arrow keys move along the ground plane,
// Space/Period and RightShift/Comma move up and down, LeftShift boosts and O
// slows down. The mouse looks around, Q/E, [/] and Z/X turn with the keyboard
// and the wheel changes speed. Escape grabs and releases the cursor.
//
// Only entities carrying both FlyCam and scene.Transform are controlled. An app
// without such an entity runs the controller as a no-op.
package flycam

import (
	"github.com/plus3/flycam/ecs"
	"github.com/plus3/flycam/input"
	"github.com/plus3/flycam/scene"
)

// PlayerPlugin adds the controller and spawns a camera to drive.
type PlayerPlugin struct{}

func (PlayerPlugin) Build(app *ecs.App) {
	app.AddPlugins(controllerPlugin{})
	app.AddStartupSystems(SetupCamera{})
}

// NoCameraPlayerPlugin adds the controller without spawning a camera. Tag your
// own camera with FlyCam.
type NoCameraPlayerPlugin struct{}

func (NoCameraPlayerPlugin) Build(app *ecs.App) {
	app.AddPlugins(controllerPlugin{})
}

type controllerPlugin struct{}

func (controllerPlugin) Build(app *ecs.App) {
	app.AddPlugins(input.Plugin{})

	ecs.RegisterComponent[scene.Transform](app.Registry())
	ecs.RegisterComponent[scene.Camera](app.Registry())
	ecs.RegisterComponent[FlyCam](app.Registry())

	ecs.InitResource(app, DefaultMovementSettings())
	ecs.InitResource(app, ControllerInput{Factor: 1})

	app.AddStartupSystems(&InitialGrab{})
	app.AddSystems(ecs.Update,
		&CollectInputSystem{},
		&ScrollSpeedSystem{},
		&MoveSystem{},
		&LookSystem{},
		&CursorGrabSystem{},
	)
}

package ecs_test

import (
	"fmt"

	"github.com/plus3/flycam/ecs"
)

type Gravity struct {
	Y float32
}

type FallSystem struct {
	Bodies ecs.Query[struct {
		*Position
		*Velocity
	}]
	Gravity ecs.Singleton[Gravity]
}

func (s *FallSystem) Execute(frame *ecs.UpdateFrame) {
	dt := float32(frame.DeltaTime)
	for body := range s.Bodies.Values() {
		body.Velocity.DY += s.Gravity.Get().Y * dt
		body.Position.Y += body.Velocity.DY * dt
	}
}

type fallPlugin struct{}

func (fallPlugin) Build(app *ecs.App) {
	ecs.RegisterComponent[Position](app.Registry())
	ecs.RegisterComponent[Velocity](app.Registry())
	ecs.InitResource(app, Gravity{Y: -10})
	app.AddStartupSystems(ecs.SystemFunc(func(frame *ecs.UpdateFrame) {
		frame.Commands.Spawn(Position{Y: 100}, Velocity{})
	}))
	app.AddSystems(ecs.Update, &FallSystem{})
}

// ExampleApp shows a plugin registering components, a resource, a startup
// system and a per-frame system against an App.
func ExampleApp() {
	app := ecs.NewApp()
	app.AddPlugins(fallPlugin{})

	for range 2 {
		app.Update(0.5)
	}

	for body := range ecs.NewView[struct{ *Position }](app.Storage()).Values() {
		fmt.Printf("y=%.1f\n", body.Position.Y)
	}

	// Output:
	// y=92.5
}

// ExampleStorage_ReadSingleton demonstrates reading a resource outside of systems.
func ExampleStorage_ReadSingleton() {
	storage := ecs.NewStorage(ecs.NewComponentRegistry())
	ecs.NewSingleton(storage, Gravity{Y: -9.8})

	var gravity *Gravity
	if storage.ReadSingleton(&gravity) {
		fmt.Printf("gravity %.1f\n", gravity.Y)
	}

	var missing *Health
	fmt.Println(storage.ReadSingleton(&missing))

	// Output:
	// gravity -9.8
	// false
}

package flycam_test

import (
	"fmt"

	"github.com/plus3/flycam/ecs"
	"github.com/plus3/flycam/flycam"
	"github.com/plus3/flycam/input"
	"github.com/plus3/flycam/scene"
)

func ExampleNoCameraPlayerPlugin() {
	app := ecs.NewApp()
	app.AddPlugins(flycam.NoCameraPlayerPlugin{})

	id := app.Storage().Spawn(scene.FromXYZ(0, 1, 0), flycam.FlyCam{})

	input.Keys(app.Storage()).Press(input.KeyW)
	app.Update(0.25)

	t := ecs.ReadComponent[scene.Transform](app.Storage(), id)
	fmt.Printf("%.1f %.1f %.1f\n", t.Translation[0], t.Translation[1], t.Translation[2])
	// Output: 0.0 1.0 -3.0
}

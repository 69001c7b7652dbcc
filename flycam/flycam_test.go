package flycam_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/flycam/ecs"
	"github.com/plus3/flycam/flycam"
	"github.com/plus3/flycam/input"
	"github.com/plus3/flycam/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-4

type harness struct {
	app    *ecs.App
	keys   *input.ButtonInput[input.Key]
	window *input.Window
}

// newHarness builds an app with the controller and runs the startup frame.
func newHarness(t *testing.T, plugin ecs.Plugin) *harness {
	t.Helper()
	app := ecs.NewApp()
	app.AddPlugins(plugin)
	app.Update(0)

	h := &harness{
		app:    app,
		keys:   input.Keys(app.Storage()),
		window: input.PrimaryWindow(app.Storage()),
	}
	require.NotNil(t, h.keys)
	require.NotNil(t, h.window)
	return h
}

func (h *harness) spawnCamera(transform scene.Transform) ecs.EntityId {
	return h.app.Storage().Spawn(transform, scene.DefaultCamera(), flycam.FlyCam{})
}

func (h *harness) transform(id ecs.EntityId) *scene.Transform {
	return ecs.ReadComponent[scene.Transform](h.app.Storage(), id)
}

func (h *harness) cam(id ecs.EntityId) *flycam.FlyCam {
	return ecs.ReadComponent[flycam.FlyCam](h.app.Storage(), id)
}

func (h *harness) settings() *flycam.MovementSettings {
	return ecs.LookupSingleton[flycam.MovementSettings](h.app.Storage())
}

func (h *harness) tap(k input.Key) {
	h.keys.Press(k)
	h.app.Update(0.016)
	h.keys.Release(k)
}

func assertVec3(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	assert.True(t, want.ApproxEqualThreshold(got, eps), "want %v, got %v", want, got)
}

func TestPlayerPluginSpawnsCamera(t *testing.T) {
	h := newHarness(t, flycam.PlayerPlugin{})

	q := ecs.NewQuery[struct {
		Transform *scene.Transform
		Camera    *scene.Camera
		Cam       *flycam.FlyCam
	}](h.app.Storage())
	q.Execute()
	require.Equal(t, 1, q.Len())

	for _, c := range q.Iter() {
		assertVec3(t, mgl32.Vec3{-2, 5, 5}, c.Transform.Translation)
		assertVec3(t, mgl32.Vec3{2, -5, -5}.Normalize(), c.Transform.Forward())
		assert.Equal(t, scene.DefaultCamera(), *c.Camera)
	}

	assert.True(t, h.window.CursorLocked, "cursor is grabbed at startup")
	assert.False(t, h.window.CursorVisible)
}

func TestNoCameraPlayerPluginDoesNotSpawn(t *testing.T) {
	h := newHarness(t, flycam.NoCameraPlayerPlugin{})
	assert.Equal(t, 0, h.app.Storage().CollectStats().TotalEntityCount)
	assert.True(t, h.window.CursorLocked)
}

func TestNoCameraIsNoOp(t *testing.T) {
	h := newHarness(t, flycam.NoCameraPlayerPlugin{})
	h.keys.Press(input.KeyW)
	h.keys.Press(input.KeyQ)
	ecs.LookupSingleton[ecs.Events[input.MouseMotion]](h.app.Storage()).Send(input.MouseMotion{Delta: mgl32.Vec2{10, 10}})

	assert.NotPanics(t, func() {
		for range 3 {
			h.app.Update(0.016)
		}
	})
	assert.Equal(t, 0, h.app.Storage().CollectStats().TotalEntityCount)
}

func TestPluginsShareController(t *testing.T) {
	h := newHarness(t, flycam.PlayerPlugin{})
	h.app.AddPlugins(flycam.NoCameraPlayerPlugin{})

	count := 0
	for _, s := range h.app.Scheduler().GetStats().Systems {
		if s.Name == "MoveSystem" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestMovement(t *testing.T) {
	const dt = 0.5
	speed := flycam.DefaultMovementSettings().Speed * dt
	diag := speed / float32(math.Sqrt2)

	tests := []struct {
		name string
		keys []input.Key
		want mgl32.Vec3
	}{
		{"forward", []input.Key{input.KeyW}, mgl32.Vec3{0, 0, -speed}},
		{"forward arrow", []input.Key{input.KeyUp}, mgl32.Vec3{0, 0, -speed}},
		{"backward", []input.Key{input.KeyS}, mgl32.Vec3{0, 0, speed}},
		{"left", []input.Key{input.KeyA}, mgl32.Vec3{-speed, 0, 0}},
		{"right", []input.Key{input.KeyD}, mgl32.Vec3{speed, 0, 0}},
		{"up", []input.Key{input.KeySpace}, mgl32.Vec3{0, speed, 0}},
		{"down", []input.Key{input.KeyComma}, mgl32.Vec3{0, -speed, 0}},
		{"diagonal is normalized", []input.Key{input.KeyW, input.KeyD}, mgl32.Vec3{diag, 0, -diag}},
		{"opposites cancel", []input.Key{input.KeyW, input.KeyS}, mgl32.Vec3{}},
		{"boost", []input.Key{input.KeyW, input.KeyLeftShift}, mgl32.Vec3{0, 0, -speed * 4}},
		{"slow", []input.Key{input.KeyW, input.KeyO}, mgl32.Vec3{0, 0, -speed / 4}},
		{"boost and slow", []input.Key{input.KeyW, input.KeyLeftShift, input.KeyO}, mgl32.Vec3{0, 0, -speed}},
		{"modifiers alone", []input.Key{input.KeyLeftShift}, mgl32.Vec3{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, flycam.NoCameraPlayerPlugin{})
			id := h.spawnCamera(scene.Identity())
			for _, k := range tt.keys {
				h.keys.Press(k)
			}

			h.app.Update(dt)

			assertVec3(t, tt.want, h.transform(id).Translation)
			assertVec3(t, tt.want.Mul(1/dt), h.cam(id).Velocity)
		})
	}
}

func TestMovementIgnoresPitch(t *testing.T) {
	h := newHarness(t, flycam.NoCameraPlayerPlugin{})
	tr := scene.Identity()
	tr.Rotation = scene.YawPitchRoll(0, 1, 0)
	id := h.spawnCamera(tr)

	h.keys.Press(input.KeyW)
	h.app.Update(1)

	assertVec3(t, mgl32.Vec3{0, 0, -12}, h.transform(id).Translation)
}

func TestOnlyTaggedEntitiesMove(t *testing.T) {
	h := newHarness(t, flycam.NoCameraPlayerPlugin{})
	tagged := h.spawnCamera(scene.Identity())
	untagged := h.app.Storage().Spawn(scene.Identity(), scene.DefaultCamera())

	h.keys.Press(input.KeyW)
	h.keys.Press(input.KeyQ)
	h.app.Update(0.1)

	assert.NotEqual(t, mgl32.Vec3{}, h.transform(tagged).Translation)
	assert.Equal(t, scene.Identity(), *h.transform(untagged))
}

func TestUnlockedCursorIgnoresInput(t *testing.T) {
	h := newHarness(t, flycam.NoCameraPlayerPlugin{})
	id := h.spawnCamera(scene.Identity())
	h.window.SetGrab(false)

	h.keys.Press(input.KeyW)
	h.keys.Press(input.KeyE)
	motion := ecs.LookupSingleton[ecs.Events[input.MouseMotion]](h.app.Storage())
	motion.Send(input.MouseMotion{Delta: mgl32.Vec2{50, 50}})
	h.app.Update(0.1)

	assert.Equal(t, scene.Identity(), *h.transform(id))

	// Motion sent while free is not replayed after grabbing.
	h.keys.Reset()
	h.window.SetGrab(true)
	h.app.Update(0.1)
	assert.Equal(t, scene.Identity(), *h.transform(id))
}

func TestUICaptureBlocksInput(t *testing.T) {
	h := newHarness(t, flycam.NoCameraPlayerPlugin{})
	id := h.spawnCamera(scene.Identity())
	capture := ecs.LookupSingleton[input.UICapture](h.app.Storage())
	capture.Keyboard = true
	capture.Mouse = true

	h.keys.Press(input.KeyW)
	h.keys.Press(input.KeyEscape)
	ecs.LookupSingleton[ecs.Events[input.MouseMotion]](h.app.Storage()).Send(input.MouseMotion{Delta: mgl32.Vec2{50, 0}})
	h.app.Update(0.1)

	assert.Equal(t, scene.Identity(), *h.transform(id))
	assert.True(t, h.window.CursorLocked, "escape goes to the UI")
}

func TestMouseLook(t *testing.T) {
	h := newHarness(t, flycam.NoCameraPlayerPlugin{})
	id := h.spawnCamera(scene.Identity())

	motion := ecs.LookupSingleton[ecs.Events[input.MouseMotion]](h.app.Storage())
	motion.Send(input.MouseMotion{Delta: mgl32.Vec2{60, 0}})
	motion.Send(input.MouseMotion{Delta: mgl32.Vec2{40, -20}})
	h.app.Update(0.016)

	s := flycam.DefaultMovementSettings()
	scale := s.Sensitivity * input.DefaultHeight
	cam := h.cam(id)
	assert.InDelta(t, -mgl32.DegToRad(100*scale), cam.Yaw, eps)
	assert.InDelta(t, mgl32.DegToRad(20*scale), cam.Pitch, eps)
	assert.InDelta(t, 0, cam.Roll, eps)

	want := scene.YawPitchRoll(cam.Yaw, cam.Pitch, 0)
	assert.True(t, want.ApproxEqualThreshold(h.transform(id).Rotation, eps))

	// Events are read once.
	h.app.Update(0.016)
	assert.InDelta(t, -mgl32.DegToRad(100*scale), h.cam(id).Yaw, eps)
}

func TestPitchIsClamped(t *testing.T) {
	tests := []struct {
		name  string
		delta float32
		want  float32
	}{
		{"up", -1e6, flycam.MaxPitch},
		{"down", 1e6, -flycam.MaxPitch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, flycam.NoCameraPlayerPlugin{})
			id := h.spawnCamera(scene.Identity())
			motion := ecs.LookupSingleton[ecs.Events[input.MouseMotion]](h.app.Storage())

			for range 5 {
				motion.Send(input.MouseMotion{Delta: mgl32.Vec2{0, tt.delta}})
				h.app.Update(0.016)
				assert.InDelta(t, tt.want, h.cam(id).Pitch, eps)
			}

			forward := h.transform(id).Forward()
			assert.InDelta(t, math.Sin(float64(tt.want)), forward[1], eps)
			assert.Greater(t, -forward[2], float32(0), "camera never flips over")
		})
	}

	t.Run("keyboard", func(t *testing.T) {
		h := newHarness(t, flycam.NoCameraPlayerPlugin{})
		id := h.spawnCamera(scene.Identity())
		h.keys.Press(input.KeyLeftBracket)
		h.keys.Press(input.KeyLeftShift)
		for range 100 {
			h.app.Update(0.1)
		}
		assert.InDelta(t, flycam.MaxPitch, h.cam(id).Pitch, eps)
	})
}

func TestKeyboardTurn(t *testing.T) {
	const dt = 0.1
	s := flycam.DefaultMovementSettings()

	tests := []struct {
		name             string
		key              input.Key
		yaw, pitch, roll float32
	}{
		{"yaw left", input.KeyQ, s.TurnRate * s.Speed * dt, 0, 0},
		{"yaw right", input.KeyE, -s.TurnRate * s.Speed * dt, 0, 0},
		{"pitch up", input.KeyLeftBracket, 0, s.TiltRate * s.Speed * dt, 0},
		{"pitch down", input.KeyRightBracket, 0, -s.TiltRate * s.Speed * dt, 0},
		{"roll left", input.KeyZ, 0, 0, s.TiltRate * s.Speed * dt},
		{"roll right", input.KeyX, 0, 0, -s.TiltRate * s.Speed * dt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, flycam.NoCameraPlayerPlugin{})
			id := h.spawnCamera(scene.Identity())
			h.keys.Press(tt.key)
			h.app.Update(dt)

			cam := h.cam(id)
			assert.InDelta(t, tt.yaw, cam.Yaw, eps)
			assert.InDelta(t, tt.pitch, cam.Pitch, eps)
			assert.InDelta(t, tt.roll, cam.Roll, eps)
		})
	}
}

func TestAttachToExistingCamera(t *testing.T) {
	h := newHarness(t, flycam.NoCameraPlayerPlugin{})
	start := scene.FromXYZ(3, 2, 1).LookingAt(mgl32.Vec3{0, 0, -4})
	id := h.spawnCamera(start)

	h.app.Update(0.016)
	assert.Equal(t, start, *h.transform(id), "an idle camera keeps its rotation")

	yaw, pitch, _ := start.YawPitchRoll()
	assert.InDelta(t, yaw, h.cam(id).Yaw, eps)
	assert.InDelta(t, pitch, h.cam(id).Pitch, eps)

	// Looking continues from the existing orientation instead of snapping.
	motion := ecs.LookupSingleton[ecs.Events[input.MouseMotion]](h.app.Storage())
	motion.Send(input.MouseMotion{Delta: mgl32.Vec2{1, 0}})
	h.app.Update(0.016)
	assert.InDelta(t, 0, h.transform(id).Forward().Sub(start.Forward()).Len(), 0.01)
}

func TestResync(t *testing.T) {
	h := newHarness(t, flycam.NoCameraPlayerPlugin{})
	id := h.spawnCamera(scene.Identity())
	h.app.Update(0.016)

	tr := h.transform(id)
	tr.Rotation = scene.YawPitchRoll(1, 0.5, 0)
	h.cam(id).Resync()
	h.app.Update(0.016)

	assert.InDelta(t, 1, h.cam(id).Yaw, eps)
	assert.InDelta(t, 0.5, h.cam(id).Pitch, eps)
}

func TestEscapeTogglesGrab(t *testing.T) {
	h := newHarness(t, flycam.NoCameraPlayerPlugin{})
	require.True(t, h.window.CursorLocked)

	h.tap(input.KeyEscape)
	assert.False(t, h.window.CursorLocked)
	assert.True(t, h.window.CursorVisible)

	// Holding the key does not toggle again.
	h.keys.Press(input.KeyEscape)
	h.app.Update(0.016)
	h.app.Update(0.016)
	assert.True(t, h.window.CursorLocked)
	assert.False(t, h.window.CursorVisible)
	h.keys.Release(input.KeyEscape)
	h.app.Update(0.016)

	h.tap(input.KeyEscape)
	assert.False(t, h.window.CursorLocked)
}

func TestScrollChangesSpeed(t *testing.T) {
	h := newHarness(t, flycam.NoCameraPlayerPlugin{})
	wheel := ecs.LookupSingleton[ecs.Events[input.MouseWheel]](h.app.Storage())

	wheel.Send(input.MouseWheel{Y: 1})
	h.app.Update(0.016)
	assert.InDelta(t, 12*1.1, h.settings().Speed, eps)

	wheel.Send(input.MouseWheel{Y: -2})
	h.app.Update(0.016)
	assert.InDelta(t, 12*1.1/1.21, h.settings().Speed, 1e-3)

	wheel.Send(input.MouseWheel{Y: 500})
	h.app.Update(0.016)
	assert.Equal(t, h.settings().MaxSpeed, h.settings().Speed)

	wheel.Send(input.MouseWheel{Y: -5000, Unit: input.ScrollPixel})
	h.app.Update(0.016)
	assert.Equal(t, h.settings().MinSpeed, h.settings().Speed)

	h.window.SetGrab(false)
	wheel.Send(input.MouseWheel{Y: 3})
	h.app.Update(0.016)
	assert.Equal(t, h.settings().MinSpeed, h.settings().Speed, "scroll is ignored while the cursor is free")
}

func TestCustomSettingsSurvivePlugin(t *testing.T) {
	app := ecs.NewApp()
	custom := flycam.DefaultMovementSettings()
	custom.Speed = 2
	custom.Bindings.Forward = []input.Key{input.KeyI}
	ecs.InsertResource(app, custom)
	app.AddPlugins(flycam.NoCameraPlayerPlugin{})
	app.Update(0)

	id := app.Storage().Spawn(scene.Identity(), flycam.FlyCam{})
	keys := input.Keys(app.Storage())
	keys.Press(input.KeyW)
	app.Update(1)
	assert.Equal(t, mgl32.Vec3{}, ecs.ReadComponent[scene.Transform](app.Storage(), id).Translation)

	keys.Press(input.KeyI)
	app.Update(1)
	assertVec3(t, mgl32.Vec3{0, 0, -2}, ecs.ReadComponent[scene.Transform](app.Storage(), id).Translation)
}

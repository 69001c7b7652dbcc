package input_test

import (
	"slices"
	"testing"

	"github.com/plus3/flycam/ecs"
	"github.com/plus3/flycam/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		name string
		want input.Key
	}{
		{"W", input.KeyW},
		{"w", input.KeyW},
		{" Escape ", input.KeyEscape},
		{"esc", input.KeyEscape},
		{"LShift", input.KeyLeftShift},
		{"RightShift", input.KeyRightShift},
		{"[", input.KeyLeftBracket},
		{"RightBracket", input.KeyRightBracket},
		{"Comma", input.KeyComma},
		{".", input.KeyPeriod},
		{"F12", input.KeyF12},
		{"7", input.Key7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := input.ParseKey(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := input.ParseKey("Unknown")
	assert.Error(t, err)
	_, err = input.ParseKey("Hyper")
	assert.ErrorContains(t, err, "Hyper")

	_, err = input.ParseKeys([]string{"W", "nope"})
	assert.Error(t, err)
}

func TestKeyNamesRoundTrip(t *testing.T) {
	for _, k := range input.AllKeys() {
		parsed, err := input.ParseKey(k.String())
		require.NoError(t, err, k.String())
		assert.Equal(t, k, parsed)
	}
	assert.Equal(t, "Key(-1)", input.Key(-1).String())
}

func TestButtonInput(t *testing.T) {
	var keys input.ButtonInput[input.Key]

	assert.False(t, keys.Pressed(input.KeyW))

	keys.Press(input.KeyW)
	keys.Press(input.KeyA)
	assert.True(t, keys.Pressed(input.KeyW))
	assert.True(t, keys.JustPressed(input.KeyW))
	assert.True(t, keys.AnyPressed(input.KeyS, input.KeyA))
	assert.Equal(t, []input.Key{input.KeyA, input.KeyW}, slices.Collect(keys.GetPressed()))

	keys.ClearJust()
	keys.Press(input.KeyW)
	assert.True(t, keys.Pressed(input.KeyW))
	assert.False(t, keys.JustPressed(input.KeyW), "holding a key is not a new press")

	keys.Set(input.KeyW, false)
	assert.False(t, keys.Pressed(input.KeyW))
	assert.True(t, keys.JustReleased(input.KeyW))

	keys.Release(input.KeyQ)
	assert.False(t, keys.JustReleased(input.KeyQ))

	keys.Reset()
	assert.False(t, keys.AnyPressed(input.KeyA))
	assert.False(t, keys.AnyJustPressed(input.KeyA, input.KeyW))
}

func TestWindowGrab(t *testing.T) {
	w := input.NewWindow(800, 600)
	assert.False(t, w.CursorLocked)
	assert.True(t, w.CursorVisible)
	assert.Equal(t, float32(600), w.Scale())

	w.ToggleGrab()
	assert.True(t, w.CursorLocked)
	assert.False(t, w.CursorVisible)

	w.ToggleGrab()
	assert.False(t, w.CursorLocked)
	assert.True(t, w.CursorVisible)

	w.SetGrab(true)
	assert.True(t, w.CursorLocked)
	assert.False(t, w.CursorVisible)
}

func TestPluginClearsJustPressedAtFrameEnd(t *testing.T) {
	app := ecs.NewApp()
	app.AddPlugins(input.Plugin{})

	keys := input.Keys(app.Storage())
	require.NotNil(t, keys)
	require.NotNil(t, input.PrimaryWindow(app.Storage()))

	var sawJust bool
	app.AddSystems(ecs.Update, ecs.SystemFunc(func(*ecs.UpdateFrame) {
		sawJust = keys.JustPressed(input.KeyEscape)
	}))

	keys.Press(input.KeyEscape)
	app.Update(0.016)
	assert.True(t, sawJust)
	assert.True(t, keys.Pressed(input.KeyEscape))

	app.Update(0.016)
	assert.False(t, sawJust)
	assert.True(t, keys.Pressed(input.KeyEscape))
}

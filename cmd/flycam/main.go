// Command flycam opens a window with a wireframe scene and a fly camera.
//
// Configuration comes from FLYCAM_* environment variables; see config.Env.
// Controller settings are read from a YAML file (created with defaults when
// missing) and reloaded whenever it changes.
package main

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/flycam/config"
	"github.com/plus3/flycam/debugui"
	debugui_ebiten "github.com/plus3/flycam/debugui/ebiten"
	"github.com/plus3/flycam/ecs"
	"github.com/plus3/flycam/flycam"
	"github.com/plus3/flycam/input/ebiteninput"
	"github.com/plus3/flycam/logging"
	"github.com/plus3/flycam/scene"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogDev)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer logger.Sync()

	settings, err := loadOrCreateSettings(cfg.SettingsPath, logger)
	if err != nil {
		logger.Fatal("failed to load settings", zap.String("path", cfg.SettingsPath), zap.Error(err))
	}

	app := ecs.NewApp(ecs.WithLogger(logger))
	ecs.InsertResource(app, settings)
	app.AddPlugins(ebiteninput.Plugin{}, flycam.PlayerPlugin{})
	spawnScene(app)

	watcher, err := config.NewWatcher(cfg.SettingsPath)
	if err != nil {
		logger.Warn("settings hot reload disabled", zap.Error(err))
	} else {
		defer watcher.Close()
		go func() {
			for err := range watcher.Errors {
				logger.Warn("settings watcher", zap.Error(err))
			}
		}()
		app.AddSystems(ecs.PreUpdate, &config.ReloadSystem{
			Path:    cfg.SettingsPath,
			Changes: watcher.Events,
			Logger:  logger,
		})
	}

	game := ebiteninput.NewGame(app)
	renderer := newRenderer(app.Storage())
	game.Drawers = append(game.Drawers, renderer.Draw)

	if cfg.DebugUI {
		backend := debugui_ebiten.NewImguiBackend(cfg.Title, cfg.WindowWidth, cfg.WindowHeight)
		backend.Attach(game)
		app.AddPlugins(debugui.Plugin{})
		app.Storage().Spawn(debugui.ImguiItem{Render: renderHelp})
	} else {
		ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
		ebiten.SetWindowTitle(cfg.Title)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	logger.Info("starting",
		zap.Int("width", cfg.WindowWidth),
		zap.Int("height", cfg.WindowHeight),
		zap.Bool("debug_ui", cfg.DebugUI),
		zap.String("settings", cfg.SettingsPath))

	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("game exited", zap.Error(err))
	}
}

func loadOrCreateSettings(path string, logger *zap.Logger) (flycam.MovementSettings, error) {
	defaults := flycam.DefaultMovementSettings()

	settings, err := config.LoadSettings(path, defaults)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return defaults, err
	}

	data, err := config.MarshalSettings(defaults)
	if err != nil {
		return defaults, err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return defaults, fmt.Errorf("write default settings: %w", err)
	}
	logger.Info("wrote default settings", zap.String("path", path))
	return defaults, nil
}

func spawnScene(app *ecs.App) {
	ecs.RegisterComponent[scene.Wireframe](app.Registry())
	storage := app.Storage()

	storage.Spawn(scene.Identity(), scene.Grid(20, 1, color.RGBA{60, 60, 70, 255}))

	cubes := []struct {
		at   mgl32.Vec3
		size float32
		c    color.RGBA
	}{
		{mgl32.Vec3{0, 0.5, 0}, 1, color.RGBA{230, 230, 230, 255}},
		{mgl32.Vec3{4, 1, -3}, 2, color.RGBA{220, 80, 80, 255}},
		{mgl32.Vec3{-5, 0.75, 2}, 1.5, color.RGBA{80, 200, 120, 255}},
		{mgl32.Vec3{2, 3, 6}, 1, color.RGBA{90, 140, 230, 255}},
	}
	for _, cube := range cubes {
		storage.Spawn(scene.Identity(), scene.Cube(cube.at, cube.size, cube.c))
	}
}

func renderHelp() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 440), imgui.CondOnce, imgui.NewVec2(0, 0))
	if !imgui.BeginV("Controls", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}
	imgui.Text("Esc: grab / release the cursor")
	imgui.Text("WASD, arrows: move   Space / RShift: up / down")
	imgui.Text("LShift: boost   O: slow   wheel: speed")
	imgui.Text("Q/E, [/], Z/X: yaw, pitch, roll")
	imgui.End()
}

// Package debugui draws Dear ImGui overlays for an ecs.App: camera and
// settings editors, scheduler and storage statistics, and any ImguiItem
// entities the app spawns.
//
// The backend must begin an ImGui frame before App.Update and end it after.
// Windows are rendered from deferred commands, so they always run inside that
// frame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/flycam/ecs"
	"github.com/plus3/flycam/input"
)

// ImguiItem is a component that holds a Dear ImGui render function.
// Attach this to entities that should render ImGui widgets each frame.
type ImguiItem struct {
	Render func()
}

// ImguiSystem publishes ImGui's input capture to input.UICapture and queues
// every ImguiItem for rendering.
type ImguiSystem struct {
	Items   ecs.Query[struct{ *ImguiItem }]
	Capture ecs.Singleton[input.UICapture]
}

func (s *ImguiSystem) Execute(frame *ecs.UpdateFrame) {
	io := imgui.CurrentIO()
	capture := s.Capture.Get()
	capture.Mouse = io.WantCaptureMouse()
	capture.Keyboard = io.WantCaptureKeyboard()

	for item := range s.Items.Values() {
		frame.Commands.Defer(item.Render)
	}
}

// Plugin adds the overlay systems. The camera panel needs the flycam plugin's
// resources and shows nothing without them.
type Plugin struct {
	// HistoryFrames is the length of the frame time plot. Zero means 240.
	HistoryFrames int
}

func (p Plugin) Build(app *ecs.App) {
	app.AddPlugins(input.Plugin{})
	ecs.RegisterComponent[ImguiItem](app.Registry())

	history := p.HistoryFrames
	if history <= 0 {
		history = 240
	}

	app.AddSystems(ecs.PreUpdate, &ImguiSystem{})
	app.AddSystems(ecs.PostUpdate,
		&FlyCamPanelSystem{},
		NewStatsPanelSystem(app.Scheduler(), history),
	)
}

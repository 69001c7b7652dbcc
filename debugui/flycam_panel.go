package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/flycam/ecs"
	"github.com/plus3/flycam/flycam"
	"github.com/plus3/flycam/input"
	"github.com/plus3/flycam/scene"
)

type cameraRow struct {
	ID        ecs.EntityId
	Transform *scene.Transform
	Cam       *flycam.FlyCam
	Camera    *scene.Camera `ecs:"optional"`
}

// FlyCamPanelSystem shows the movement settings, the cursor grab state and
// every fly camera, with an inspector for the selected one.
type FlyCamPanelSystem struct {
	Settings ecs.Singleton[flycam.MovementSettings]
	Window   ecs.Singleton[input.Window]
	Cameras  ecs.Query[cameraRow]

	selected ecs.EntityId
	rows     []cameraRow
}

func (s *FlyCamPanelSystem) Execute(frame *ecs.UpdateFrame) {
	settings := s.Settings.Get()
	if settings == nil {
		return
	}
	s.rows = s.rows[:0]
	for row := range s.Cameras.Values() {
		s.rows = append(s.rows, row)
	}
	frame.Commands.Defer(func() { s.render(settings) })
}

func (s *FlyCamPanelSystem) render(settings *flycam.MovementSettings) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(340, 420), imgui.CondOnce)
	if !imgui.BeginV("Fly Camera", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	window := s.Window.Get()
	grabbed := window.CursorLocked
	if imgui.Checkbox("Cursor grabbed", &grabbed) {
		window.SetGrab(grabbed)
	}
	imgui.Text(fmt.Sprintf("Window: %.0f x %.0f", window.Width, window.Height))

	imgui.Separator()
	EditValue("Settings", settings)
	if imgui.Button("Reset settings") {
		*settings = flycam.DefaultMovementSettings()
	}

	imgui.Separator()
	s.renderCameras()

	imgui.End()
}

func (s *FlyCamPanelSystem) renderCameras() {
	if len(s.rows) == 0 {
		imgui.Text("No fly cameras")
		return
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("FlyCamTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Entity")
		imgui.TableSetupColumn("Position")
		imgui.TableSetupColumn("Yaw/Pitch")
		imgui.TableSetupColumn("Speed")
		imgui.TableHeadersRow()

		for _, row := range s.rows {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			label := fmt.Sprintf("%d", row.ID)
			if imgui.SelectableBoolV(label, row.ID == s.selected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				s.selected = row.ID
			}
			p := row.Transform.Translation
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.1f, %.1f, %.1f", p[0], p[1], p[2]))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.2f / %.2f", row.Cam.Yaw, row.Cam.Pitch))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.1f", row.Cam.Velocity.Len()))
		}
		imgui.EndTable()
	}

	for _, row := range s.rows {
		if row.ID != s.selected {
			continue
		}
		if EditValue("Transform", row.Transform) {
			row.Cam.Resync()
		}
		EditValue("FlyCam", row.Cam)
		if row.Camera != nil {
			EditValue("Camera", row.Camera)
		}
	}
}

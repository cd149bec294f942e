package gui

import (
	"fmt"

	"glscene/internal/config"
	"glscene/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/inkyblackness/imgui-go/v4"
)

func (s *Shell) mainMenu() {
	if !imgui.BeginMainMenuBar() {
		return
	}
	if imgui.BeginMenu("Window") {
		toggle("OpenGL Scene", &s.Panels.Scene)
		toggle("Console Log", &s.Panels.Console)
		toggle("Performance", &s.Panels.Performance)
		toggle("Imgui Demo", &s.Panels.Demo)
		imgui.EndMenu()
	}
	if imgui.BeginMenu("Other") {
		toggle("About", &s.Panels.About)
		toggle("Controls", &s.Panels.Controls)
		imgui.EndMenu()
	}
	imgui.EndMainMenuBar()
}

func toggle(label string, flag *bool) {
	if imgui.MenuItemV(label, "", *flag, true) {
		*flag = !*flag
	}
}

func (s *Shell) sceneView(scene SceneTexture) {
	defer imgui.End()
	if !imgui.BeginV("OpenGL Scene View", &s.Panels.Scene, 0) {
		return
	}
	imgui.BeginChildV("Render", imgui.Vec2{}, false, 0)
	s.sceneSize = imgui.ContentRegionAvail()
	// Framebuffer rows start at the bottom, so the texture is flipped vertically.
	imgui.ImageV(imgui.TextureID(scene.ColorHandle()), s.sceneSize,
		imgui.Vec2{X: 0, Y: 1}, imgui.Vec2{X: 1, Y: 0},
		imgui.Vec4{X: 1, Y: 1, Z: 1, W: 1}, imgui.Vec4{})
	imgui.EndChild()
}

func (s *Shell) consoleWindow() {
	defer imgui.End()
	if !imgui.BeginV("Logging Console", &s.Panels.Console, 0) {
		return
	}
	buf := s.log.Buffer()

	if imgui.Button("Clear console") {
		buf.Clear()
	}
	if imgui.IsItemHovered() {
		imgui.SetTooltip("This action will not remove contents from the log file.")
	}
	imgui.SameLineV(120, -1)
	imgui.Text(fmt.Sprintf("Log buffer contents: %d bytes", buf.Len()))

	imgui.BeginChildV("log", imgui.Vec2{}, true, imgui.WindowFlagsHorizontalScrollbar)
	imgui.PushFont(s.consoleFont)
	imgui.Text(buf.String())
	imgui.PopFont()
	if s.console.Changed(buf.Len()) {
		imgui.SetScrollHereY(1.0)
	}
	imgui.EndChild()
}

func (s *Shell) performanceWindow(stats PerfStats) {
	defer imgui.End()
	if !imgui.BeginV("Performance Metrics", &s.Panels.Performance, 0) {
		return
	}
	imgui.Text(fmt.Sprintf("GL RESL: %.0fx%.0f", s.sceneSize.X, s.sceneSize.Y))
	imgui.Text(fmt.Sprintf("UPTIME: %.0f seconds", stats.Uptime))

	speed := config.GetGraphSpeed()
	imgui.Text(fmt.Sprintf("Graph update speed -> %.1f", speed))
	if imgui.SliderFloat("##graphspeed", &speed, 1, 60) {
		config.SetGraphSpeed(speed)
	}

	cc := config.GetClearColor()
	rgb := [3]float32{cc[0], cc[1], cc[2]}
	if imgui.ColorEdit3("Clear colour", &rgb) {
		config.SetClearColor(mgl32.Vec4{rgb[0], rgb[1], rgb[2], cc[3]})
	}

	vsync := config.GetVSync()
	if imgui.Checkbox("VSync", &vsync) {
		config.SetVSync(vsync)
	}
	limit := int32(config.GetFPSLimit())
	if imgui.SliderInt("FPS cap (0 = off)", &limit, 0, 240) {
		config.SetFPSLimit(int(limit))
	}

	imgui.BeginChildV("FPS graph", imgui.Vec2{}, true, 0)
	imgui.Text(fmt.Sprintf("Current FPS: %.2f", stats.FPS))
	imgui.Text(fmt.Sprintf("Graph Average: %.2f", s.perf.Average()))
	imgui.Text(fmt.Sprintf("ms per frame: %.2f", stats.MsPerFrame))
	values, offset := s.perf.Values()
	imgui.PlotLinesV("##fps", values, offset, "", graphMin, graphMax,
		imgui.Vec2{X: imgui.ContentRegionAvail().X, Y: graphHeight})

	imgui.Separator()
	for _, p := range stats.Phases {
		imgui.Text(fmt.Sprintf("%-16s %s", p.Name, profiling.FormatMs(p.Dur)))
	}
	imgui.EndChild()
}

func (s *Shell) aboutWindow() {
	defer imgui.End()
	if !imgui.BeginV("About", &s.Panels.About, imgui.WindowFlagsAlwaysAutoResize) {
		return
	}
	imgui.Text("Learning OpenGL")
	imgui.Separator()
	imgui.Text("A rotating textured cube rendered off-screen and shown in a GUI.")
	imgui.Text("Dear ImGui " + imgui.Version())
}

var controls = [...][2]string{
	{"W", "move forward"},
	{"S", "move backward"},
	{"A", "move left"},
	{"D", "move right"},
	{"E", "move up"},
	{"Q", "move down"},
	{"LShift", "move 5x faster"},
	{"LCtrl", "move 5x slower"},
	{"Mouse", "look around"},
	{"Wheel", "zoom"},
}

func (s *Shell) controlsWindow() {
	defer imgui.End()
	if !imgui.BeginV("Controls", &s.Panels.Controls, imgui.WindowFlagsAlwaysAutoResize) {
		return
	}
	for _, c := range controls {
		imgui.BulletText(fmt.Sprintf("%-6s  %s", c[0], c[1]))
	}
}

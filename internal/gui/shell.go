// Package gui declares the application's immediate-mode windows: the main
// menu, log console, performance metrics, scene view, about and controls.
package gui

import (
	"fmt"

	"glscene/internal/config"
	"glscene/internal/gui/backend"
	"glscene/internal/logging"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/inkyblackness/imgui-go/v4"
)

const (
	windowRounding = 8
	styleVarCount  = 6
)

// SceneTexture is the colour attachment shown in the scene view.
type SceneTexture interface {
	ColorHandle() uint32
}

// Shell owns the imgui context and the per-window state.
type Shell struct {
	context  *imgui.Context
	io       imgui.IO
	platform *backend.Platform
	renderer *backend.Renderer
	log      *logging.Logger

	regularFont imgui.Font
	consoleFont imgui.Font

	Panels  Panels
	console ConsoleScroll
	perf    *PerfGraph

	sceneSize imgui.Vec2
}

// New creates the imgui context for window, loads the fonts and sets up the
// backend. Font problems fall back to the built-in font with a warning.
func New(window *glfw.Window, logger *logging.Logger) (*Shell, error) {
	s := &Shell{
		log:    logger,
		Panels: DefaultPanels(),
		perf:   NewPerfGraph(),
	}

	s.context = imgui.CreateContext(nil)
	s.io = imgui.CurrentIO()
	s.io.SetIniFilename("")
	imgui.StyleColorsDark()

	s.loadFonts()

	s.platform = backend.NewPlatform(s.io, window)
	renderer, err := backend.NewRenderer(s.io)
	if err != nil {
		s.context.Destroy()
		return nil, fmt.Errorf("failed to init GUI renderer: %w", err)
	}
	s.renderer = renderer

	logger.Log(logging.Info, "ImGui initialized.")
	return s, nil
}

func (s *Shell) loadFonts() {
	atlas := s.io.Fonts()

	var err error
	s.regularFont, err = addFont(atlas, config.RegularFont, config.FontSize)
	if err != nil {
		s.log.Warnf("Using built-in GUI font: %v", err)
		// The first font in the atlas is the default, so it must be added explicitly.
		s.regularFont = atlas.AddFontDefault()
	}
	s.consoleFont, err = addFont(atlas, config.ConsoleFont, config.FontSize)
	if err != nil {
		s.log.Warnf("Using regular font for the console: %v", err)
		s.consoleFont = s.regularFont
	}
}

// Platform exposes the input backend so the application can chain handlers.
func (s *Shell) Platform() *backend.Platform { return s.platform }

// WantCaptureMouse reports whether the GUI is using the mouse this frame.
func (s *Shell) WantCaptureMouse() bool { return s.io.WantCaptureMouse() }

// WantCaptureKeyboard reports whether the GUI is using the keyboard this frame.
func (s *Shell) WantCaptureKeyboard() bool { return s.io.WantCaptureKeyboard() }

// NewFrame starts a GUI frame.
func (s *Shell) NewFrame() {
	s.platform.NewFrame()
	imgui.NewFrame()
}

// Declare emits every visible window for this frame.
func (s *Shell) Declare(scene SceneTexture, stats PerfStats) {
	imgui.PushStyleVarFloat(imgui.StyleVarWindowRounding, windowRounding)
	imgui.PushStyleVarFloat(imgui.StyleVarChildRounding, windowRounding)
	imgui.PushStyleVarFloat(imgui.StyleVarFrameRounding, windowRounding)
	imgui.PushStyleVarFloat(imgui.StyleVarGrabRounding, windowRounding)
	imgui.PushStyleVarFloat(imgui.StyleVarPopupRounding, windowRounding)
	imgui.PushStyleVarFloat(imgui.StyleVarTabRounding, windowRounding)
	defer imgui.PopStyleVarV(styleVarCount)

	s.mainMenu()

	s.perf.Sample(stats, config.GetGraphSpeed())

	if s.Panels.Scene {
		s.sceneView(scene)
	}
	if s.Panels.Console {
		s.consoleWindow()
	}
	if s.Panels.Performance {
		s.performanceWindow(stats)
	}
	if s.Panels.About {
		s.aboutWindow()
	}
	if s.Panels.Controls {
		s.controlsWindow()
	}
	if s.Panels.Demo {
		imgui.ShowDemoWindow(&s.Panels.Demo)
	}
}

// Render finishes the frame and composites it over the default framebuffer.
func (s *Shell) Render() {
	imgui.Render()
	s.renderer.Render(s.platform.DisplaySize(), s.platform.FramebufferSize(), imgui.RenderedDrawData())
}

// Shutdown releases the GUI's GPU objects and destroys the imgui context.
func (s *Shell) Shutdown() {
	s.renderer.Destroy()
	s.context.Destroy()
}

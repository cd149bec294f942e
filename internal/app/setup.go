package app

import (
	"fmt"

	"glscene/internal/config"
	"glscene/internal/logging"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// SetupWindow creates the main window with a 4.1 core context, makes it
// current and loads the GL entry points. glfw.Init must already have run.
func SetupWindow() (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(config.WindowWidth, config.WindowHeight, config.WindowTitle, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		window.Destroy()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	glfw.SwapInterval(swapInterval(config.GetVSync()))
	window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)

	return window, nil
}

// LogGLInfo records the driver's version and renderer strings.
func LogGLInfo(logger *logging.Logger) {
	logger.Log(logging.Info, "Logging GL version and renderer:")
	logger.Infof("GL version: %s", gl.GoStr(gl.GetString(gl.VERSION)))
	logger.Infof("GL renderer: %s", gl.GoStr(gl.GetString(gl.RENDERER)))
}

func swapInterval(vsync bool) int {
	if vsync {
		return 1
	}
	return 0
}

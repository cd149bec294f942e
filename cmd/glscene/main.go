package main

import (
	"runtime"

	"glscene/internal/app"
	"glscene/internal/config"
	"glscene/internal/logging"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
)

func init() {
	// GLFW and the GL context must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	logger := logging.New(config.LogFile)

	closer.Bind(closeLog(logger))

	logger.Log(logging.Info, "Program started.")

	if err := glfw.Init(); err != nil {
		logger.Errorf("Failed to initialize GLFW: %v", err)
		closer.Exit(1)
		return
	}

	window, err := app.SetupWindow()
	if err != nil {
		logger.Errorf("%v", err)
		glfw.Terminate()
		closer.Exit(1)
		return
	}
	app.LogGLInfo(logger)

	a, err := app.New(window, logger)
	if err != nil {
		logger.Errorf("%v", err)
		window.Destroy()
		glfw.Terminate()
		closer.Exit(1)
		return
	}

	a.Run()

	exitSequence(logger, a.Close, window.Destroy, glfw.Terminate)
	closer.Close()
}

// closeLog is the closer cleanup. It runs on closer's own goroutine, on a
// signal or after closer.Close/Exit, so it only touches the log file.
func closeLog(logger *logging.Logger) func() {
	return func() {
		_ = logger.Close()
	}
}

// exitSequence releases resources in order after a normal window close.
func exitSequence(logger *logging.Logger, steps ...func()) {
	logger.Log(logging.Info, "Program beginning exit sequence.")
	for _, step := range steps {
		step()
	}
	logger.Log(logging.Info, "Program terminated by user.")
}

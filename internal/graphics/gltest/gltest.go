// Package gltest provides an OpenGL context for tests. Packages call Main from
// TestMain; tests call Context and are skipped when no display is available.
package gltest

import (
	"fmt"
	"os"
	"runtime"
	"testing"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// GLFW must be initialised from the main thread.
	runtime.LockOSThread()
}

var (
	window  *glfw.Window
	initErr = fmt.Errorf("gltest.Main was not called from TestMain")
)

// Main creates a hidden 1x1 window, runs the tests and exits.
func Main(m *testing.M) {
	initErr = setup()
	code := m.Run()
	if window != nil {
		window.Destroy()
		glfw.Terminate()
	}
	os.Exit(code)
}

func setup() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	w, err := glfw.CreateWindow(1, 1, "gltest", nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("create window: %w", err)
	}
	w.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		w.Destroy()
		glfw.Terminate()
		return fmt.Errorf("gl init: %w", err)
	}
	glfw.DetachCurrentContext()
	window = w
	return nil
}

// Context makes the shared context current on the test's OS thread for the
// duration of the test, or skips the test if no context could be created.
// The hidden window owning the context is returned.
func Context(t testing.TB) *glfw.Window {
	t.Helper()
	if initErr != nil {
		t.Skipf("no OpenGL context: %v", initErr)
	}
	runtime.LockOSThread()
	window.MakeContextCurrent()
	t.Cleanup(func() {
		glfw.DetachCurrentContext()
		runtime.UnlockOSThread()
	})
	return window
}

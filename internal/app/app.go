// Package app owns the window's frame loop: input, GUI, off-screen scene
// rendering and presentation.
package app

import (
	"log"
	"time"

	"glscene/internal/config"
	"glscene/internal/graphics"
	"glscene/internal/gui"
	"glscene/internal/input"
	"glscene/internal/logging"
	"glscene/internal/profiling"
	"glscene/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	slowFrame       = 50 * time.Millisecond
	frameRateWindow = 60
)

// App wires the window to the GUI shell, the camera and the scene.
type App struct {
	window *glfw.Window
	log    *logging.Logger

	shell  *gui.Shell
	target *graphics.RenderTarget
	scene  *scene.Scene
	camera *graphics.Camera

	inputManager *input.InputManager
	mouse        *input.MouseLook

	frameRate  *profiling.FrameRate
	stats      gui.PerfStats
	fpsLimiter *FPSLimiter
	start      time.Time
	lastTime   time.Time
	vsync      bool
}

// New builds every per-window resource and installs the input callbacks. The
// window's context must be current.
func New(window *glfw.Window, logger *logging.Logger) (*App, error) {
	shell, err := gui.New(window, logger)
	if err != nil {
		return nil, err
	}

	fbW, fbH := window.GetFramebufferSize()
	now := time.Now()
	a := &App{
		window:       window,
		log:          logger,
		shell:        shell,
		target:       graphics.NewRenderTarget(fbW, fbH, logger),
		camera:       graphics.NewCamera(mgl32.Vec3{0, 0, 3}),
		inputManager: input.NewInputManager(),
		mouse:        input.NewMouseLook(config.WindowWidth/2, config.WindowHeight/2),
		frameRate:    profiling.NewFrameRate(frameRateWindow),
		fpsLimiter:   NewFPSLimiter(),
		start:        now,
		lastTime:     now,
		vsync:        config.GetVSync(),
	}

	gl.Enable(gl.DEPTH_TEST)
	a.scene = scene.New(scene.Paths{
		VertexShader:   config.CubeVertShader,
		FragmentShader: config.CubeFragShader,
		Texture1:       config.CubeTexture,
		Texture2:       config.CubeUnderlineTexture,
	}, config.SceneAspect, logger)

	a.setupCallbacks()
	return a, nil
}

func (a *App) setupCallbacks() {
	a.window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		a.onCursorMove(x, y)
	})
	a.shell.Platform().OnScroll(func(_, y float64) {
		a.onScroll(y)
	})
	a.shell.Platform().OnKey(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		a.onKey(key, action)
	})
	a.window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		a.onFramebufferSize(width, height)
	})
}

func (a *App) onCursorMove(x, y float64) {
	if a.shell.WantCaptureMouse() {
		// Re-anchor so the camera does not jump when the cursor leaves the GUI.
		a.mouse.Reset()
		return
	}
	dx, dy := a.mouse.Offset(x, y)
	a.camera.ProcessMouseMovement(dx, dy)
}

func (a *App) onKey(key glfw.Key, action glfw.Action) {
	if a.shell.WantCaptureKeyboard() {
		return
	}
	a.inputManager.HandleKeyEvent(key, action)
}

func (a *App) onScroll(yoff float64) {
	if a.shell.WantCaptureMouse() {
		return
	}
	a.camera.ProcessMouseScroll(float32(yoff))
}

func (a *App) onFramebufferSize(width, height int) {
	// Minimising reports 0x0; the target keeps its last size.
	if width <= 0 || height <= 0 {
		return
	}
	a.target.Resize(width, height)
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Run ticks until the window is asked to close.
func (a *App) Run() {
	for !a.window.ShouldClose() {
		a.tick()
	}
}

func (a *App) tick() {
	// The panel shows the last complete frame; the current one is still running.
	phases := profiling.Phases()
	profiling.ResetFrame()
	startTick := time.Now()
	now := startTick
	dt := now.Sub(a.lastTime).Seconds()
	a.lastTime = now
	a.frameRate.Add(dt)
	elapsed := now.Sub(a.start).Seconds()

	a.applySettings()

	glfw.PollEvents()
	a.processInput(float32(dt))

	func() {
		defer profiling.Track("gui.Declare")()
		a.shell.NewFrame()
		a.stats = gui.PerfStats{
			Uptime:     elapsed,
			FPS:        a.frameRate.FPS(),
			MsPerFrame: a.frameRate.MsPerFrame(),
			Phases:     phases,
		}
		a.shell.Declare(a.target, a.stats)
	}()

	a.target.Bind()
	clearTo(config.GetClearColor())
	a.scene.Render(a.camera, elapsed)
	a.target.Unbind()

	func() {
		defer profiling.Track("gui.Render")()
		fbW, fbH := a.window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(fbW), int32(fbH))
		clearTo(config.GetClearColor())
		a.shell.Render()
	}()

	func() {
		defer profiling.Track("swap")()
		a.window.SwapBuffers()
	}()

	if d := time.Since(startTick); d > slowFrame {
		log.Printf("Slow frame: %v. Top tasks: %s", d, profiling.TopN(3))
	}

	a.inputManager.PostUpdate()
	a.fpsLimiter.Wait(a.window.GetAttrib(glfw.Iconified) == glfw.True)
}

func (a *App) processInput(dt float32) {
	defer profiling.Track("input")()

	if a.shell.WantCaptureKeyboard() {
		a.inputManager.Release()
		return
	}
	a.inputManager.Poll(a.window)
	input.MoveCamera(a.inputManager, a.camera, dt)
}

func (a *App) applySettings() {
	vsync := config.GetVSync()
	if vsync == a.vsync {
		return
	}
	a.vsync = vsync
	glfw.SwapInterval(swapInterval(vsync))
	a.log.Infof("VSync %s.", onOff(vsync))
}

func onOff(b bool) string {
	if b {
		return "enabled"
	}
	return "disabled"
}

func clearTo(c mgl32.Vec4) {
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Close releases the scene, the render target and the GUI. The context must
// still be current.
func (a *App) Close() {
	a.scene.Cleanup()
	a.target.Delete()
	a.shell.Shutdown()
}

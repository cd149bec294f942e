package config

import (
	"path/filepath"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	WindowTitle  = "glscene"
	WindowWidth  = 1280
	WindowHeight = 720

	// GLSLVersion is handed to the GUI renderer for its own shaders.
	GLSLVersion = "#version 410"

	LogFile = "logfile.txt"

	ShadersDir  = "assets/shaders"
	TexturesDir = "assets/textures"
	FontsDir    = "assets/fonts"

	FontSize = 18
)

var (
	CubeVertShader = filepath.Join(ShadersDir, "cube", "cube.vert")
	CubeFragShader = filepath.Join(ShadersDir, "cube", "cube.frag")

	CubeTexture          = filepath.Join(TexturesDir, "test-texture.png")
	CubeUnderlineTexture = filepath.Join(TexturesDir, "test-texture-underline.png")

	RegularFont = filepath.Join(FontsDir, "Roboto-Regular.ttf")
	ConsoleFont = filepath.Join(FontsDir, "JetBrainsMono-Regular.ttf")
)

// SceneAspect is the fixed aspect ratio of the scene projection.
const SceneAspect = float32(WindowWidth) / float32(WindowHeight)

// RenderSettings holds values the GUI may change at runtime
type RenderSettings struct {
	mu         sync.RWMutex
	clearColor mgl32.Vec4
	vsync      bool
	fpsLimit   int // 0 = unlimited
	graphSpeed float32
}

var globalRenderSettings = &RenderSettings{
	clearColor: mgl32.Vec4{0.05, 0.15, 0.20, 1.0},
	vsync:      true,
	graphSpeed: 1.0,
}

// GetClearColor returns the scene clear colour
func GetClearColor() mgl32.Vec4 {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.clearColor
}

// SetClearColor sets the scene clear colour
func SetClearColor(c mgl32.Vec4) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.clearColor = c
}

// GetVSync reports whether buffer swaps wait for vertical blank
func GetVSync() bool {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.vsync
}

// SetVSync toggles vertical sync. The swap interval is applied by the app.
func SetVSync(enabled bool) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.vsync = enabled
}

// GetFPSLimit returns the software frame cap, 0 when uncapped
func GetFPSLimit() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.fpsLimit
}

// SetFPSLimit sets the software frame cap
func SetFPSLimit(limit int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	if limit < 0 {
		limit = 0
	}
	if limit > 1000 {
		limit = 1000
	}
	globalRenderSettings.fpsLimit = limit
}

// GetGraphSpeed returns how many frame-rate samples per second the performance graph records
func GetGraphSpeed() float32 {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.graphSpeed
}

// SetGraphSpeed sets the performance graph refresh cadence, clamped to [1, 60]
func SetGraphSpeed(speed float32) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	if speed < 1 {
		speed = 1
	}
	if speed > 60 {
		speed = 60
	}
	globalRenderSettings.graphSpeed = speed
}

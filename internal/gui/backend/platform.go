// Package backend connects imgui to GLFW input and an OpenGL 4.1 renderer.
package backend

import (
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/inkyblackness/imgui-go/v4"
)

var buttonIDs = [...]glfw.MouseButton{glfw.MouseButton1, glfw.MouseButton2, glfw.MouseButton3}

// ScrollHandler receives scroll events after imgui has seen them.
type ScrollHandler func(xoff, yoff float64)

// Platform feeds GLFW window state and events into imgui's IO.
type Platform struct {
	io     imgui.IO
	window *glfw.Window

	time             float64
	mouseJustPressed [len(buttonIDs)]bool

	onScroll ScrollHandler
	onKey    glfw.KeyCallback
}

// NewPlatform installs key, char, mouse-button and scroll callbacks on window.
// Cursor-position and framebuffer-size callbacks are left to the caller.
func NewPlatform(io imgui.IO, window *glfw.Window) *Platform {
	p := &Platform{io: io, window: window}
	p.setKeyMapping()

	window.SetMouseButtonCallback(p.mouseButtonChange)
	window.SetScrollCallback(p.mouseScrollChange)
	window.SetKeyCallback(p.keyChange)
	window.SetCharCallback(p.charChange)

	io.SetClipboard(clipboard{window: window})
	return p
}

// OnScroll chains fn after imgui's scroll handling.
func (p *Platform) OnScroll(fn ScrollHandler) { p.onScroll = fn }

// OnKey chains fn after imgui's key handling.
func (p *Platform) OnKey(fn glfw.KeyCallback) { p.onKey = fn }

// DisplaySize returns the window size in screen coordinates.
func (p *Platform) DisplaySize() [2]float32 {
	w, h := p.window.GetSize()
	return [2]float32{float32(w), float32(h)}
}

// FramebufferSize returns the window's framebuffer size in pixels.
func (p *Platform) FramebufferSize() [2]float32 {
	w, h := p.window.GetFramebufferSize()
	return [2]float32{float32(w), float32(h)}
}

// NewFrame updates display size, delta time and mouse state ahead of imgui.NewFrame.
func (p *Platform) NewFrame() {
	size := p.DisplaySize()
	p.io.SetDisplaySize(imgui.Vec2{X: size[0], Y: size[1]})

	now := glfw.GetTime()
	if p.time > 0 && now > p.time {
		p.io.SetDeltaTime(float32(now - p.time))
	}
	p.time = now

	if p.window.GetAttrib(glfw.Focused) != 0 {
		x, y := p.window.GetCursorPos()
		p.io.SetMousePosition(imgui.Vec2{X: float32(x), Y: float32(y)})
	} else {
		p.io.SetMousePosition(imgui.Vec2{X: -math.MaxFloat32, Y: -math.MaxFloat32})
	}

	// A press and release within one frame still registers as a click.
	for i, id := range buttonIDs {
		down := p.mouseJustPressed[i] || p.window.GetMouseButton(id) == glfw.Press
		p.io.SetMouseButtonDown(i, down)
		p.mouseJustPressed[i] = false
	}
}

func (p *Platform) setKeyMapping() {
	p.io.KeyMap(imgui.KeyTab, int(glfw.KeyTab))
	p.io.KeyMap(imgui.KeyLeftArrow, int(glfw.KeyLeft))
	p.io.KeyMap(imgui.KeyRightArrow, int(glfw.KeyRight))
	p.io.KeyMap(imgui.KeyUpArrow, int(glfw.KeyUp))
	p.io.KeyMap(imgui.KeyDownArrow, int(glfw.KeyDown))
	p.io.KeyMap(imgui.KeyPageUp, int(glfw.KeyPageUp))
	p.io.KeyMap(imgui.KeyPageDown, int(glfw.KeyPageDown))
	p.io.KeyMap(imgui.KeyHome, int(glfw.KeyHome))
	p.io.KeyMap(imgui.KeyEnd, int(glfw.KeyEnd))
	p.io.KeyMap(imgui.KeyInsert, int(glfw.KeyInsert))
	p.io.KeyMap(imgui.KeyDelete, int(glfw.KeyDelete))
	p.io.KeyMap(imgui.KeyBackspace, int(glfw.KeyBackspace))
	p.io.KeyMap(imgui.KeySpace, int(glfw.KeySpace))
	p.io.KeyMap(imgui.KeyEnter, int(glfw.KeyEnter))
	p.io.KeyMap(imgui.KeyEscape, int(glfw.KeyEscape))
	p.io.KeyMap(imgui.KeyA, int(glfw.KeyA))
	p.io.KeyMap(imgui.KeyC, int(glfw.KeyC))
	p.io.KeyMap(imgui.KeyV, int(glfw.KeyV))
	p.io.KeyMap(imgui.KeyX, int(glfw.KeyX))
	p.io.KeyMap(imgui.KeyY, int(glfw.KeyY))
	p.io.KeyMap(imgui.KeyZ, int(glfw.KeyZ))
}

func (p *Platform) keyChange(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action == glfw.Press {
		p.io.KeyPress(int(key))
	}
	if action == glfw.Release {
		p.io.KeyRelease(int(key))
	}

	// Modifier state from the event is not reliable across systems.
	p.io.KeyCtrl(int(glfw.KeyLeftControl), int(glfw.KeyRightControl))
	p.io.KeyShift(int(glfw.KeyLeftShift), int(glfw.KeyRightShift))
	p.io.KeyAlt(int(glfw.KeyLeftAlt), int(glfw.KeyRightAlt))
	p.io.KeySuper(int(glfw.KeyLeftSuper), int(glfw.KeyRightSuper))

	if p.onKey != nil {
		p.onKey(w, key, scancode, action, mods)
	}
}

func (p *Platform) charChange(_ *glfw.Window, char rune) {
	p.io.AddInputCharacters(string(char))
}

func (p *Platform) mouseButtonChange(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	for i, id := range buttonIDs {
		if id == button && action == glfw.Press {
			p.mouseJustPressed[i] = true
		}
	}
}

func (p *Platform) mouseScrollChange(_ *glfw.Window, x, y float64) {
	p.io.AddMouseWheelDelta(float32(x), float32(y))
	if p.onScroll != nil {
		p.onScroll(x, y)
	}
}

type clipboard struct {
	window *glfw.Window
}

func (c clipboard) Text() (string, error) {
	return c.window.GetClipboardString(), nil
}

func (c clipboard) SetText(text string) {
	c.window.SetClipboardString(text)
}

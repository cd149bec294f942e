package backend

import (
	"testing"

	"glscene/internal/graphics/gltest"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/inkyblackness/imgui-go/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gltest.Main(m)
}

func TestRendererDrawsFrameAndRestoresState(t *testing.T) {
	window := gltest.Context(t)

	ctx := imgui.CreateContext(nil)
	defer ctx.Destroy()
	io := imgui.CurrentIO()
	io.SetIniFilename("")

	platform := NewPlatform(io, window)
	renderer, err := NewRenderer(io)
	require.NoError(t, err)
	defer renderer.Destroy()

	assert.NotZero(t, renderer.fontTex)

	gl.Enable(gl.DEPTH_TEST)
	gl.Disable(gl.BLEND)

	// The hidden test window may report a zero display size, so force one.
	platform.NewFrame()
	io.SetDisplaySize(imgui.Vec2{X: 64, Y: 64})
	imgui.NewFrame()
	imgui.Text("hello")
	imgui.Render()
	renderer.Render([2]float32{64, 64}, [2]float32{64, 64}, imgui.RenderedDrawData())

	assert.True(t, gl.IsEnabled(gl.DEPTH_TEST))
	assert.False(t, gl.IsEnabled(gl.BLEND))
	assert.Equal(t, uint32(gl.NO_ERROR), gl.GetError())
}

func TestRendererSkipsEmptyFramebuffer(t *testing.T) {
	gltest.Context(t)

	ctx := imgui.CreateContext(nil)
	defer ctx.Destroy()
	io := imgui.CurrentIO()
	io.SetIniFilename("")

	renderer, err := NewRenderer(io)
	require.NoError(t, err)
	defer renderer.Destroy()

	io.SetDisplaySize(imgui.Vec2{X: 64, Y: 64})
	imgui.NewFrame()
	imgui.Render()
	renderer.Render([2]float32{64, 64}, [2]float32{0, 0}, imgui.RenderedDrawData())
	assert.Equal(t, uint32(gl.NO_ERROR), gl.GetError())
}

func TestScrollChainsToHandler(t *testing.T) {
	window := gltest.Context(t)

	ctx := imgui.CreateContext(nil)
	defer ctx.Destroy()

	p := NewPlatform(imgui.CurrentIO(), window)
	var got float64
	p.OnScroll(func(_, y float64) { got = y })
	p.mouseScrollChange(window, 0, 2)
	assert.Equal(t, 2.0, got)
}

func TestKeyChainsToHandler(t *testing.T) {
	window := gltest.Context(t)

	ctx := imgui.CreateContext(nil)
	defer ctx.Destroy()

	p := NewPlatform(imgui.CurrentIO(), window)
	var got glfw.Key
	p.OnKey(func(_ *glfw.Window, key glfw.Key, _ int, _ glfw.Action, _ glfw.ModifierKey) { got = key })
	p.keyChange(window, glfw.KeyW, 0, glfw.Press, 0)
	assert.Equal(t, glfw.KeyW, got)
}

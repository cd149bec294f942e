package backend

import (
	"fmt"

	"glscene/internal/config"
	"glscene/internal/graphics"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/inkyblackness/imgui-go/v4"
)

const vertexShaderSource = config.GLSLVersion + ` core
uniform mat4 ProjMtx;
layout (location = 0) in vec2 Position;
layout (location = 1) in vec2 UV;
layout (location = 2) in vec4 Color;
out vec2 Frag_UV;
out vec4 Frag_Color;
void main()
{
    Frag_UV = UV;
    Frag_Color = Color;
    gl_Position = ProjMtx * vec4(Position.xy, 0, 1);
}
`

const fragmentShaderSource = config.GLSLVersion + ` core
uniform sampler2D Texture;
in vec2 Frag_UV;
in vec4 Frag_Color;
out vec4 Out_Color;
void main()
{
    Out_Color = Frag_Color * texture(Texture, Frag_UV.st);
}
`

// Renderer draws imgui draw data with OpenGL 4.1 core.
type Renderer struct {
	io imgui.IO

	program uint32
	texLoc  int32
	projLoc int32
	vao     uint32
	vbo     uint32
	ebo     uint32
	fontTex uint32
}

// NewRenderer compiles the GUI shader and uploads the font atlas. Fonts must
// already be added to io.
func NewRenderer(io imgui.IO) (*Renderer, error) {
	r := &Renderer{io: io}

	program, err := graphics.CompileProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create GUI shader: %w", err)
	}
	r.program = program
	r.texLoc = gl.GetUniformLocation(program, gl.Str("Texture\x00"))
	r.projLoc = gl.GetUniformLocation(program, gl.Str("ProjMtx\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.GenBuffers(1, &r.ebo)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	vertexSize, offsetPos, offsetUV, offsetCol := imgui.VertexBufferLayout()
	stride := int32(vertexSize)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, uintptr(offsetPos))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, uintptr(offsetUV))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 4, gl.UNSIGNED_BYTE, true, stride, uintptr(offsetCol))

	gl.BindVertexArray(0)

	r.createFontTexture()
	return r, nil
}

func (r *Renderer) createFontTexture() {
	image := r.io.Fonts().TextureDataRGBA32()

	var last int32
	gl.GetIntegerv(gl.TEXTURE_BINDING_2D, &last)

	gl.GenTextures(1, &r.fontTex)
	gl.BindTexture(gl.TEXTURE_2D, r.fontTex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(image.Width), int32(image.Height),
		0, gl.RGBA, gl.UNSIGNED_BYTE, image.Pixels)

	r.io.Fonts().SetTextureID(imgui.TextureID(r.fontTex))
	gl.BindTexture(gl.TEXTURE_2D, uint32(last))
}

// Render draws drawData over whatever framebuffer is bound. Blend, scissor,
// depth and cull state is set for the GUI and restored afterwards.
func (r *Renderer) Render(displaySize, framebufferSize [2]float32, drawData imgui.DrawData) {
	displayW, displayH := displaySize[0], displaySize[1]
	fbW, fbH := framebufferSize[0], framebufferSize[1]
	if fbW <= 0 || fbH <= 0 || displayW <= 0 || displayH <= 0 {
		return
	}
	drawData.ScaleClipRects(imgui.Vec2{X: fbW / displayW, Y: fbH / displayH})

	saved := saveState()
	defer saved.restore()

	gl.Enable(gl.BLEND)
	gl.BlendEquation(gl.FUNC_ADD)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)

	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	ortho := [4][4]float32{
		{2.0 / displayW, 0.0, 0.0, 0.0},
		{0.0, 2.0 / -displayH, 0.0, 0.0},
		{0.0, 0.0, -1.0, 0.0},
		{-1.0, 1.0, 0.0, 1.0},
	}
	gl.UseProgram(r.program)
	gl.Uniform1i(r.texLoc, 0)
	gl.UniformMatrix4fv(r.projLoc, 1, false, &ortho[0][0])
	gl.ActiveTexture(gl.TEXTURE0)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	indexSize := imgui.IndexBufferLayout()
	drawType := uint32(gl.UNSIGNED_SHORT)
	if indexSize == 4 {
		drawType = gl.UNSIGNED_INT
	}

	for _, list := range drawData.CommandLists() {
		vertexBuffer, vertexBufferSize := list.VertexBuffer()
		gl.BufferData(gl.ARRAY_BUFFER, vertexBufferSize, vertexBuffer, gl.STREAM_DRAW)

		indexBuffer, indexBufferSize := list.IndexBuffer()
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, indexBufferSize, indexBuffer, gl.STREAM_DRAW)

		indexOffset := 0
		for _, cmd := range list.Commands() {
			if cmd.HasUserCallback() {
				cmd.CallUserCallback(list)
			} else {
				gl.BindTexture(gl.TEXTURE_2D, uint32(cmd.TextureID()))
				clip := cmd.ClipRect()
				gl.Scissor(int32(clip.X), int32(fbH)-int32(clip.W), int32(clip.Z-clip.X), int32(clip.W-clip.Y))
				gl.DrawElements(gl.TRIANGLES, int32(cmd.ElementCount()), drawType, gl.PtrOffset(indexOffset))
			}
			indexOffset += cmd.ElementCount() * indexSize
		}
	}
}

// Destroy releases the GUI's GPU objects.
func (r *Renderer) Destroy() {
	gl.DeleteVertexArrays(1, &r.vao)
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteBuffers(1, &r.ebo)
	gl.DeleteProgram(r.program)
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
		r.io.Fonts().SetTextureID(0)
		r.fontTex = 0
	}
}

type glState struct {
	program     int32
	texture     int32
	activeTex   int32
	vao         int32
	arrayBuffer int32
	viewport    [4]int32
	scissorBox  [4]int32
	polygonMode [2]int32
	blend       bool
	cullFace    bool
	depthTest   bool
	scissorTest bool
}

func saveState() glState {
	var s glState
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &s.program)
	gl.GetIntegerv(gl.TEXTURE_BINDING_2D, &s.texture)
	gl.GetIntegerv(gl.ACTIVE_TEXTURE, &s.activeTex)
	gl.GetIntegerv(gl.VERTEX_ARRAY_BINDING, &s.vao)
	gl.GetIntegerv(gl.ARRAY_BUFFER_BINDING, &s.arrayBuffer)
	gl.GetIntegerv(gl.VIEWPORT, &s.viewport[0])
	gl.GetIntegerv(gl.SCISSOR_BOX, &s.scissorBox[0])
	gl.GetIntegerv(gl.POLYGON_MODE, &s.polygonMode[0])
	s.blend = gl.IsEnabled(gl.BLEND)
	s.cullFace = gl.IsEnabled(gl.CULL_FACE)
	s.depthTest = gl.IsEnabled(gl.DEPTH_TEST)
	s.scissorTest = gl.IsEnabled(gl.SCISSOR_TEST)
	return s
}

func (s glState) restore() {
	gl.UseProgram(uint32(s.program))
	gl.ActiveTexture(uint32(s.activeTex))
	gl.BindTexture(gl.TEXTURE_2D, uint32(s.texture))
	gl.BindVertexArray(uint32(s.vao))
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(s.arrayBuffer))
	gl.PolygonMode(gl.FRONT_AND_BACK, uint32(s.polygonMode[0]))
	gl.Viewport(s.viewport[0], s.viewport[1], s.viewport[2], s.viewport[3])
	gl.Scissor(s.scissorBox[0], s.scissorBox[1], s.scissorBox[2], s.scissorBox[3])
	setCap(gl.BLEND, s.blend)
	setCap(gl.CULL_FACE, s.cullFace)
	setCap(gl.DEPTH_TEST, s.depthTest)
	setCap(gl.SCISSOR_TEST, s.scissorTest)
}

func setCap(capability uint32, on bool) {
	if on {
		gl.Enable(capability)
	} else {
		gl.Disable(capability)
	}
}

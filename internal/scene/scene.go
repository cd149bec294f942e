// Package scene draws the demo's single rotating textured cube.
package scene

import (
	"glscene/internal/graphics"
	"glscene/internal/logging"
	"glscene/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// DegreesPerSecond is the cube's spin rate about the Y axis.
const DegreesPerSecond = 50.0

// Paths names the files the scene loads at setup.
type Paths struct {
	VertexShader   string
	FragmentShader string
	Texture1       string
	Texture2       string
}

// Scene owns the cube geometry, its shader and its two textures.
type Scene struct {
	vao uint32
	vbo uint32

	shader   *graphics.Shader
	texture1 *graphics.Texture
	texture2 *graphics.Texture

	// Aspect is the projection aspect ratio; it does not follow the target size.
	Aspect float32

	log *logging.Logger
}

// New uploads the cube, builds the shader and loads both textures. Resource
// failures are logged at ERROR and leave the scene drawable but visibly broken.
func New(paths Paths, aspect float32, logger *logging.Logger) *Scene {
	s := &Scene{Aspect: aspect, log: logger}

	logger.Log(logging.Info, "Pre-rendering...")

	var err error
	s.shader, err = graphics.NewShader(paths.VertexShader, paths.FragmentShader, logger)
	if err != nil {
		logger.Errorf("Shader program failed to build: %v", err)
	}

	gl.GenBuffers(1, &s.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(cubeVertices)*4, gl.Ptr(cubeVertices), gl.STATIC_DRAW)

	gl.GenVertexArrays(1, &s.vao)
	gl.BindVertexArray(s.vao)

	stride := int32(floatsPerVertex * 4)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	s.texture1 = s.loadTexture(paths.Texture1)
	s.texture2 = s.loadTexture(paths.Texture2)

	s.shader.Use()
	s.shader.SetInt("texture1", 0)
	s.shader.SetInt("texture2", 1)

	logger.Log(logging.Info, "Rendering...")
	return s
}

func (s *Scene) loadTexture(path string) *graphics.Texture {
	tex, err := graphics.LoadTexture(path)
	if err != nil {
		s.log.Errorf("Texture failed to load: %v", err)
		return tex
	}
	s.log.Infof("Texture loaded successfully: %s (%dx%d).", path, tex.Width, tex.Height)
	return tex
}

// ModelMatrix is the cube's model transform after elapsed seconds.
func ModelMatrix(elapsed float64) mgl32.Mat4 {
	angle := mgl32.DegToRad(float32(elapsed * DegreesPerSecond))
	return mgl32.Ident4().Mul4(mgl32.HomogRotate3D(angle, mgl32.Vec3{0, 1, 0}))
}

// Render draws the cube into whatever framebuffer is bound.
func (s *Scene) Render(cam *graphics.Camera, elapsed float64) {
	defer profiling.Track("scene.Render")()

	s.texture1.Bind(0)
	s.texture2.Bind(1)

	s.shader.Use()
	s.shader.SetMatrix4("projection", cam.GetProjectionMatrix(s.Aspect))
	s.shader.SetMatrix4("view", cam.GetViewMatrix())
	s.shader.SetMatrix4("model", ModelMatrix(elapsed))

	gl.BindVertexArray(s.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, cubeVertexCount)
	gl.BindVertexArray(0)
}

// Cleanup releases every GPU object the scene owns.
func (s *Scene) Cleanup() {
	s.log.Log(logging.Info, "Cleanup, deleting vertex arrays.")
	gl.DeleteVertexArrays(1, &s.vao)
	s.log.Log(logging.Info, "Cleanup, deleting buffers.")
	gl.DeleteBuffers(1, &s.vbo)
	s.log.Log(logging.Info, "Cleanup, deleting shader program.")
	s.shader.Delete()
	s.log.Log(logging.Info, "Cleanup, deleting textures.")
	s.texture1.Delete()
	s.texture2.Delete()
}

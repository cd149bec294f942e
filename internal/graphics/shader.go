package graphics

import (
	"fmt"
	"os"
	"strings"

	"glscene/internal/logging"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Shader represents an OpenGL shader program. A Shader whose build failed has
// ID 0; Use and the uniform setters are no-ops on it.
type Shader struct {
	ID uint32

	log     *logging.Logger
	missing map[string]struct{}
}

// NewShader creates a new shader program from vertex and fragment shader source files.
// On failure it returns the error together with an unusable zero-ID shader so that
// callers can log and carry on.
func NewShader(vertexPath, fragmentPath string, logger *logging.Logger) (*Shader, error) {
	s := &Shader{log: logger, missing: make(map[string]struct{})}

	vertexSource, err := os.ReadFile(vertexPath)
	if err != nil {
		return s, fmt.Errorf("could not read vertex shader file: %w", err)
	}

	fragmentSource, err := os.ReadFile(fragmentPath)
	if err != nil {
		return s, fmt.Errorf("could not read fragment shader file: %w", err)
	}

	program, err := CompileProgram(string(vertexSource), string(fragmentSource))
	if err != nil {
		return s, err
	}
	s.ID = program
	return s, nil
}

// Use activates the shader program
func (s *Shader) Use() {
	if s.ID == 0 {
		return
	}
	gl.UseProgram(s.ID)
}

// Delete releases the program object
func (s *Shader) Delete() {
	if s.ID != 0 {
		gl.DeleteProgram(s.ID)
		s.ID = 0
	}
}

// location looks the uniform up on every call. A name that does not resolve is
// reported once.
func (s *Shader) location(name string) int32 {
	if s.ID == 0 {
		return -1
	}
	loc := gl.GetUniformLocation(s.ID, gl.Str(name+"\x00"))
	if loc < 0 {
		if _, seen := s.missing[name]; !seen {
			s.missing[name] = struct{}{}
			if s.log != nil {
				s.log.Warnf("Shader %d has no active uniform %q.", s.ID, name)
			}
		}
	}
	return loc
}

// SetBool sets a boolean uniform
func (s *Shader) SetBool(name string, value bool) {
	var intValue int32
	if value {
		intValue = 1
	}
	if loc := s.location(name); loc >= 0 {
		gl.Uniform1i(loc, intValue)
	}
}

// SetInt sets an integer uniform
func (s *Shader) SetInt(name string, value int32) {
	if loc := s.location(name); loc >= 0 {
		gl.Uniform1i(loc, value)
	}
}

// SetFloat sets a float uniform
func (s *Shader) SetFloat(name string, value float32) {
	if loc := s.location(name); loc >= 0 {
		gl.Uniform1f(loc, value)
	}
}

func (s *Shader) SetVector2(name string, v mgl32.Vec2) { s.SetVector2f(name, v[0], v[1]) }

func (s *Shader) SetVector2f(name string, x, y float32) {
	if loc := s.location(name); loc >= 0 {
		gl.Uniform2f(loc, x, y)
	}
}

func (s *Shader) SetVector3(name string, v mgl32.Vec3) { s.SetVector3f(name, v[0], v[1], v[2]) }

// SetVector3f sets a vector3 uniform
func (s *Shader) SetVector3f(name string, x, y, z float32) {
	if loc := s.location(name); loc >= 0 {
		gl.Uniform3f(loc, x, y, z)
	}
}

func (s *Shader) SetVector4(name string, v mgl32.Vec4) { s.SetVector4f(name, v[0], v[1], v[2], v[3]) }

func (s *Shader) SetVector4f(name string, x, y, z, w float32) {
	if loc := s.location(name); loc >= 0 {
		gl.Uniform4f(loc, x, y, z, w)
	}
}

func (s *Shader) SetMatrix2(name string, m mgl32.Mat2) {
	if loc := s.location(name); loc >= 0 {
		gl.UniformMatrix2fv(loc, 1, false, &m[0])
	}
}

func (s *Shader) SetMatrix3(name string, m mgl32.Mat3) {
	if loc := s.location(name); loc >= 0 {
		gl.UniformMatrix3fv(loc, 1, false, &m[0])
	}
}

// SetMatrix4 sets a 4x4 matrix uniform
func (s *Shader) SetMatrix4(name string, m mgl32.Mat4) {
	if loc := s.location(name); loc >= 0 {
		gl.UniformMatrix4fv(loc, 1, false, &m[0])
	}
}

// CompileProgram compiles and links a vertex and a fragment stage from source.
// The returned error carries the GLSL diagnostic.
func CompileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertexShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex stage: %w", err)
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment stage: %w", err)
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)

		return 0, fmt.Errorf("failed to link program: %v", strings.TrimRight(log, "\x00"))
	}
	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)

		return 0, fmt.Errorf("failed to compile shader: %v", strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}

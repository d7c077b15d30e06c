package triangle

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// VertexShaderSource passes the position attribute straight through.
const VertexShaderSource = `#version 330 core

layout(location = 0) in vec4 position;

void main() {
    gl_Position = position;
}
`

// FragmentShaderSource paints every fragment opaque red.
const FragmentShaderSource = `#version 330 core

layout(location = 0) out vec4 color;

void main() {
    color = vec4(1.0, 0.0, 0.0, 1.0);
}
`

// CompileError reports a shader stage that failed to compile.
type CompileError struct {
	Kind ShaderKind
	Log  string // Driver-provided diagnostic text
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("failed to compile %s shader: %s", e.Kind, e.Log)
}

// LinkError reports a program that failed to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("shader program linking failed: %s", e.Log)
}

// CompileShader compiles source as a shader of the given kind.
// On failure the diagnostic is logged, the shader object is deleted and a
// zero handle is returned together with a *CompileError.
func CompileShader(d ShaderDriver, log logrus.FieldLogger, kind ShaderKind, source string) (uint32, error) {
	shader := d.CreateShader(kind)
	d.ShaderSource(shader, source)
	d.CompileShader(shader)

	if !d.ShaderCompiled(shader) {
		msg := d.ShaderInfoLog(shader)
		log.WithField("stage", kind.String()).Errorf("failed to compile %s shader", kind)
		log.Error(msg)
		d.DeleteShader(shader)
		return 0, &CompileError{Kind: kind, Log: msg}
	}

	return shader, nil
}

// CreateProgram compiles both stages and links them into one program.
// The intermediate shader objects are deleted once linked.
func CreateProgram(d ShaderDriver, log logrus.FieldLogger, vertexSource, fragmentSource string) (Program, error) {
	vs, err := CompileShader(d, log, ShaderVertex, vertexSource)
	if err != nil {
		return 0, err
	}
	fs, err := CompileShader(d, log, ShaderFragment, fragmentSource)
	if err != nil {
		d.DeleteShader(vs)
		return 0, err
	}

	program := d.CreateProgram()
	d.AttachShader(program, vs)
	d.AttachShader(program, fs)
	d.LinkProgram(program)
	d.ValidateProgram(program)

	// Linked into the program now.
	d.DeleteShader(vs)
	d.DeleteShader(fs)

	if !d.ProgramLinked(program) {
		msg := d.ProgramInfoLog(program)
		log.WithField("program", program).Error("failed to link shader program")
		log.Error(msg)
		d.DeleteProgram(program)
		return 0, &LinkError{Log: msg}
	}

	return Program(program), nil
}

// Package opengl provides the OpenGL 4.1 core driver and GLFW window for
// the triangle package.
package opengl

import (
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	triangle "github.com/TolgaAktas/OpenGL"
)

// Driver implements triangle.Driver on top of go-gl.
// gl.Init must have been called with a context current.
type Driver struct{}

var _ triangle.Driver = Driver{}

// NewDriver returns a Driver for the current context.
func NewDriver() Driver {
	return Driver{}
}

func shaderType(kind triangle.ShaderKind) uint32 {
	if kind == triangle.ShaderFragment {
		return gl.FRAGMENT_SHADER
	}
	return gl.VERTEX_SHADER
}

// CreateShader creates an empty shader object for the stage.
func (Driver) CreateShader(kind triangle.ShaderKind) uint32 {
	return gl.CreateShader(shaderType(kind))
}

// ShaderSource replaces the shader's source, NUL-terminating it.
func (Driver) ShaderSource(shader uint32, source string) {
	if !strings.HasSuffix(source, "\x00") {
		source += "\x00"
	}
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
}

// CompileShader compiles the shader's source.
func (Driver) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

// ShaderCompiled reports the shader's COMPILE_STATUS.
func (Driver) ShaderCompiled(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

// ShaderInfoLog returns the shader's compiler diagnostic.
func (Driver) ShaderInfoLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := make([]byte, logLength+1)
	gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
	return strings.TrimRight(string(log), "\x00")
}

// DeleteShader deletes a shader object.
func (Driver) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

// CreateProgram creates an empty program object.
func (Driver) CreateProgram() uint32 {
	return gl.CreateProgram()
}

// AttachShader attaches a shader to a program.
func (Driver) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

// LinkProgram links the attached stages.
func (Driver) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

// ValidateProgram checks the program against the current state.
func (Driver) ValidateProgram(program uint32) {
	gl.ValidateProgram(program)
}

// ProgramLinked reports the program's LINK_STATUS.
func (Driver) ProgramLinked(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

// ProgramInfoLog returns the program's linker diagnostic.
func (Driver) ProgramInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := make([]byte, logLength+1)
	gl.GetProgramInfoLog(program, logLength, nil, &log[0])
	return strings.TrimRight(string(log), "\x00")
}

// UseProgram installs the program for drawing.
func (Driver) UseProgram(program uint32) {
	gl.UseProgram(program)
}

// DeleteProgram deletes a program object.
func (Driver) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

// GenVertexArray creates a vertex array object.
func (Driver) GenVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

// BindVertexArray binds a vertex array object.
func (Driver) BindVertexArray(vao uint32) {
	gl.BindVertexArray(vao)
}

// DeleteVertexArray deletes a vertex array object.
func (Driver) DeleteVertexArray(vao uint32) {
	gl.DeleteVertexArrays(1, &vao)
}

// GenBuffer creates a buffer object.
func (Driver) GenBuffer() uint32 {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	return vbo
}

// BindArrayBuffer binds a buffer to ARRAY_BUFFER.
func (Driver) BindArrayBuffer(buffer uint32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, buffer)
}

// BufferStaticData uploads data to the bound array buffer, 4 bytes per float.
func (Driver) BufferStaticData(data []float32) {
	if len(data) == 0 {
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
}

// DeleteBuffer deletes a buffer object.
func (Driver) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
}

// EnableVertexAttribArray enables an attribute location.
func (Driver) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

// VertexAttribPointer describes float attribute data in the bound buffer.
func (Driver) VertexAttribPointer(l triangle.VertexLayout) {
	gl.VertexAttribPointerWithOffset(l.Index, l.Components, gl.FLOAT, false, l.Stride, l.Offset)
}

// Viewport sets the viewport rectangle.
func (Driver) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

// ClearColor sets the colour used by ClearColorBuffer.
func (Driver) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

// ClearColorBuffer clears the colour buffer.
func (Driver) ClearColorBuffer() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// DrawTriangles draws count vertices as triangles starting at first.
func (Driver) DrawTriangles(first, count int32) {
	gl.DrawArrays(gl.TRIANGLES, first, count)
}

// Version returns the GL_VERSION string.
func (Driver) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

package triangle

// ShaderDriver compiles and links shader objects.
type ShaderDriver interface {
	CreateShader(kind ShaderKind) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	ShaderCompiled(shader uint32) bool
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	ValidateProgram(program uint32)
	ProgramLinked(program uint32) bool
	ProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)
}

// BufferDriver manages vertex arrays and array buffers.
type BufferDriver interface {
	GenVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)

	GenBuffer() uint32
	BindArrayBuffer(buffer uint32)
	// BufferStaticData uploads data to the bound array buffer with
	// static-draw usage.
	BufferStaticData(data []float32)
	DeleteBuffer(buffer uint32)

	EnableVertexAttribArray(index uint32)
	VertexAttribPointer(layout VertexLayout)
}

// DrawDriver issues per-frame commands.
type DrawDriver interface {
	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	ClearColorBuffer()
	DrawTriangles(first, count int32)
	// Version returns the driver's version string.
	Version() string
}

// Driver is the graphics API surface used by the program.
// backend/opengl provides the OpenGL implementation.
type Driver interface {
	ShaderDriver
	BufferDriver
	DrawDriver
}

// Surface is the window the triangle is presented to.
type Surface interface {
	ShouldClose() bool
	FramebufferSize() (width, height int)
	SwapBuffers()
	PollEvents()
}

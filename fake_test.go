package triangle_test

import (
	"fmt"
	"strings"

	triangle "github.com/TolgaAktas/OpenGL"
)

// fakeDriver records every call and hands out increasing object names.
type fakeDriver struct {
	next  uint32
	calls []string

	// Sources containing failSource fail to compile with compileLog.
	failSource string
	compileLog string
	linkFails  bool
	linkLog    string

	sources  map[uint32]string
	deleted  map[uint32]bool
	attached map[uint32][]uint32
	uploaded []float32
	layout   triangle.VertexLayout
	draws    int
	viewport [4]int32
	clear    [4]float32
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{
		sources:  make(map[uint32]string),
		deleted:  make(map[uint32]bool),
		attached: make(map[uint32][]uint32),
	}
}

func (f *fakeDriver) record(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeDriver) gen() uint32 {
	f.next++
	return f.next
}

func (f *fakeDriver) CreateShader(kind triangle.ShaderKind) uint32 {
	id := f.gen()
	f.record("CreateShader(%s)=%d", kind, id)
	return id
}

func (f *fakeDriver) ShaderSource(shader uint32, source string) {
	f.sources[shader] = source
}

func (f *fakeDriver) CompileShader(shader uint32) { f.record("CompileShader(%d)", shader) }

func (f *fakeDriver) ShaderCompiled(shader uint32) bool {
	if f.failSource == "" {
		return true
	}
	return !strings.Contains(f.sources[shader], f.failSource)
}

func (f *fakeDriver) ShaderInfoLog(shader uint32) string { return f.compileLog }

func (f *fakeDriver) DeleteShader(shader uint32) {
	f.deleted[shader] = true
	f.record("DeleteShader(%d)", shader)
}

func (f *fakeDriver) CreateProgram() uint32 {
	id := f.gen()
	f.record("CreateProgram()=%d", id)
	return id
}

func (f *fakeDriver) AttachShader(program, shader uint32) {
	f.attached[program] = append(f.attached[program], shader)
}

func (f *fakeDriver) LinkProgram(program uint32) { f.record("LinkProgram(%d)", program) }
func (f *fakeDriver) ValidateProgram(program uint32) { f.record("ValidateProgram(%d)", program) }
func (f *fakeDriver) ProgramLinked(program uint32) bool { return !f.linkFails }
func (f *fakeDriver) ProgramInfoLog(program uint32) string { return f.linkLog }
func (f *fakeDriver) UseProgram(program uint32) { f.record("UseProgram(%d)", program) }

func (f *fakeDriver) DeleteProgram(program uint32) {
	f.deleted[program] = true
	f.record("DeleteProgram(%d)", program)
}

func (f *fakeDriver) GenVertexArray() uint32 {
	id := f.gen()
	f.record("GenVertexArray()=%d", id)
	return id
}

func (f *fakeDriver) BindVertexArray(vao uint32) { f.record("BindVertexArray(%d)", vao) }

func (f *fakeDriver) DeleteVertexArray(vao uint32) {
	f.deleted[vao] = true
	f.record("DeleteVertexArray(%d)", vao)
}

func (f *fakeDriver) GenBuffer() uint32 {
	id := f.gen()
	f.record("GenBuffer()=%d", id)
	return id
}

func (f *fakeDriver) BindArrayBuffer(buffer uint32) { f.record("BindArrayBuffer(%d)", buffer) }

func (f *fakeDriver) BufferStaticData(data []float32) {
	f.uploaded = append([]float32(nil), data...)
	f.record("BufferStaticData(%d)", len(data))
}

func (f *fakeDriver) DeleteBuffer(buffer uint32) {
	f.deleted[buffer] = true
	f.record("DeleteBuffer(%d)", buffer)
}

func (f *fakeDriver) EnableVertexAttribArray(index uint32) {
	f.record("EnableVertexAttribArray(%d)", index)
}

func (f *fakeDriver) VertexAttribPointer(layout triangle.VertexLayout) {
	f.layout = layout
	f.record("VertexAttribPointer(%d)", layout.Index)
}

func (f *fakeDriver) Viewport(x, y, width, height int32) {
	f.viewport = [4]int32{x, y, width, height}
}

func (f *fakeDriver) ClearColor(r, g, b, a float32) { f.clear = [4]float32{r, g, b, a} }
func (f *fakeDriver) ClearColorBuffer() { f.record("Clear") }

func (f *fakeDriver) DrawTriangles(first, count int32) {
	f.draws++
	f.record("DrawTriangles(%d,%d)", first, count)
}

func (f *fakeDriver) Version() string { return "4.1 fake" }

// fakeSurface closes after closeAfter frames have been swapped.
type fakeSurface struct {
	closeAfter int
	swaps      int
	polls      int
	events     []string
}

func (s *fakeSurface) ShouldClose() bool { return s.closeAfter > 0 && s.swaps >= s.closeAfter }
func (s *fakeSurface) FramebufferSize() (int, int) { return 640, 480 }

func (s *fakeSurface) SwapBuffers() {
	s.swaps++
	s.events = append(s.events, "swap")
}

func (s *fakeSurface) PollEvents() {
	s.polls++
	s.events = append(s.events, "poll")
}

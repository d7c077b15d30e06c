package triangle

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"
)

// App owns the program and mesh and runs the frame loop.
type App struct {
	driver  Driver
	surface Surface
	log     logrus.FieldLogger

	clearColor     mgl32.Vec4
	maxFrames      int
	vertexSource   string
	fragmentSource string
	positions      []mgl32.Vec2

	program Program
	mesh    *Mesh
	frames  int
}

// AppOption configures an App instance.
type AppOption func(*App)

// WithLogger sets the logger used for diagnostics.
func WithLogger(log logrus.FieldLogger) AppOption {
	return func(a *App) { a.log = log }
}

// WithClearColor sets the colour the framebuffer is cleared to each frame.
func WithClearColor(c mgl32.Vec4) AppOption {
	return func(a *App) { a.clearColor = c }
}

// WithMaxFrames stops Run after n frames. Zero runs until the surface closes.
func WithMaxFrames(n int) AppOption {
	return func(a *App) { a.maxFrames = n }
}

// WithShaders replaces the built-in shader pair.
func WithShaders(vertexSource, fragmentSource string) AppOption {
	return func(a *App) {
		a.vertexSource = vertexSource
		a.fragmentSource = fragmentSource
	}
}

// WithPositions replaces the triangle's vertex positions.
func WithPositions(positions []mgl32.Vec2) AppOption {
	return func(a *App) { a.positions = positions }
}

// New creates an App drawing to surface through driver.
func New(driver Driver, surface Surface, opts ...AppOption) *App {
	a := &App{
		driver:         driver,
		surface:        surface,
		log:            NewLogger(),
		clearColor:     mgl32.Vec4{0, 0, 0, 1},
		vertexSource:   VertexShaderSource,
		fragmentSource: FragmentShaderSource,
		positions:      TrianglePositions[:],
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Setup links the shader program, binds it and uploads the vertex buffer.
// Call it once with the surface's context current.
func (a *App) Setup() error {
	if a.program != 0 {
		return errors.New("app already set up")
	}

	a.log.Info(a.driver.Version())

	program, err := CreateProgram(a.driver, a.log, a.vertexSource, a.fragmentSource)
	if err != nil {
		return fmt.Errorf("create program: %w", err)
	}
	a.program = program

	mesh, err := NewMesh(a.driver, a.positions)
	if err != nil {
		a.Delete()
		return fmt.Errorf("upload vertices: %w", err)
	}
	a.mesh = mesh

	a.driver.UseProgram(uint32(a.program))
	a.driver.ClearColor(a.clearColor[0], a.clearColor[1], a.clearColor[2], a.clearColor[3])

	return nil
}

// Frame renders one frame: clear, draw, swap, poll.
func (a *App) Frame() {
	w, h := a.surface.FramebufferSize()
	a.driver.Viewport(0, 0, int32(w), int32(h))
	a.driver.ClearColorBuffer()

	if a.mesh != nil {
		a.driver.DrawTriangles(0, a.mesh.Count)
	}

	a.surface.SwapBuffers()
	a.surface.PollEvents()
	a.frames++
}

// Run renders frames until the surface asks to close or the frame limit
// is reached. Setup is called first if it has not been.
func (a *App) Run() error {
	if a.program == 0 {
		if err := a.Setup(); err != nil {
			return err
		}
	}

	for !a.surface.ShouldClose() {
		if a.maxFrames > 0 && a.frames >= a.maxFrames {
			break
		}
		a.Frame()
	}

	a.log.WithField("frames", a.frames).Debug("render loop finished")
	return nil
}

// Frames returns the number of frames rendered so far.
func (a *App) Frames() int {
	return a.frames
}

// Program returns the linked program, or zero before Setup.
func (a *App) Program() Program {
	return a.program
}

// Mesh returns the uploaded mesh, or nil before Setup.
func (a *App) Mesh() *Mesh {
	return a.mesh
}

// Delete releases the mesh and program.
func (a *App) Delete() {
	if a.mesh != nil {
		a.mesh.Delete(a.driver)
		a.mesh = nil
	}
	if a.program != 0 {
		a.driver.DeleteProgram(uint32(a.program))
		a.program = 0
	}
}

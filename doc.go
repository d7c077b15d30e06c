/*
Package triangle draws a single red triangle with OpenGL and redraws it every
frame until the window is closed.

The package does not call OpenGL directly. Graphics calls go through Driver
and presentation through Surface; backend/opengl implements both with go-gl
and GLFW.

# Quick Start

	window, _ := opengl.Open(triangle.DefaultConfig().Window)
	defer window.Close()

	app := triangle.New(opengl.NewDriver(), window)
	defer app.Delete()

	if err := app.Run(); err != nil {
	    log.Fatal(err)
	}

# Pipeline

Setup links VertexShaderSource and FragmentShaderSource into one program,
deleting the intermediate shader objects, then uploads TrianglePositions into
a static array buffer described by PositionLayout (attribute 0, two floats per
vertex).

Each Frame clears the colour buffer, draws the mesh as triangles, swaps
buffers and polls window events, in that order.

# Errors

A stage that fails to compile is logged with its driver diagnostic, deleted,
and reported as *CompileError with a zero handle. Link failures are reported
as *LinkError.

# Configuration

LoadConfig reads defaults, an optional TOML file and TRIANGLE_* variables
from dotenv files and the environment:

	TRIANGLE_WIDTH        window width in pixels
	TRIANGLE_HEIGHT       window height in pixels
	TRIANGLE_TITLE        window title
	TRIANGLE_VSYNC        swap interval 1 when true
	TRIANGLE_FRAMES       stop after N frames, 0 runs until closed
	TRIANGLE_LOG_LEVEL    logrus level name
	TRIANGLE_CLEAR_COLOR  "r,g,b,a" in [0, 1]
*/
package triangle

package triangle

import (
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// ShaderKind identifies a programmable pipeline stage.
type ShaderKind int

const (
	ShaderVertex ShaderKind = iota
	ShaderFragment
)

// String returns the stage name used in diagnostics.
func (k ShaderKind) String() string {
	switch k {
	case ShaderVertex:
		return "Vertex"
	case ShaderFragment:
		return "Fragment"
	default:
		return "Unknown"
	}
}

// TrianglePositions are the three 2D clip-space corners of the triangle.
var TrianglePositions = [3]mgl32.Vec2{
	{-0.5, -0.5},
	{0.0, 0.5},
	{0.5, -0.5},
}

// Flatten packs positions into the tightly packed float stream uploaded to
// the vertex buffer (x0, y0, x1, y1, ...).
func Flatten(positions []mgl32.Vec2) []float32 {
	out := make([]float32, 0, len(positions)*2)
	for _, p := range positions {
		out = append(out, p.X(), p.Y())
	}
	return out
}

// VertexLayout describes one vertex attribute inside the array buffer.
type VertexLayout struct {
	Index      uint32  // Attribute location in the vertex shader
	Components int32   // Number of float components per vertex
	Stride     int32   // Bytes between consecutive vertices
	Offset     uintptr // Byte offset of the first component
}

// PositionLayout is the layout of a 2D position at attribute location 0.
var PositionLayout = VertexLayout{
	Index:      0,
	Components: 2,
	Stride:     int32(unsafe.Sizeof(mgl32.Vec2{})),
	Offset:     0,
}

// Program is a linked shader program handle owned by the driver.
// The zero value means "no program".
type Program uint32

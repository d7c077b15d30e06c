package triangle

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrNoVertices is returned when a mesh is built from an empty position list.
var ErrNoVertices = errors.New("mesh has no vertices")

// Mesh is a static vertex buffer of 2D positions and the vertex array
// describing it.
type Mesh struct {
	VAO, VBO uint32
	Count    int32
}

// NewMesh uploads positions into a new array buffer and describes them at
// PositionLayout. The vertex array and buffer are left bound.
func NewMesh(d BufferDriver, positions []mgl32.Vec2) (*Mesh, error) {
	if len(positions) == 0 {
		return nil, ErrNoVertices
	}

	m := &Mesh{Count: int32(len(positions))}

	m.VAO = d.GenVertexArray()
	d.BindVertexArray(m.VAO)

	m.VBO = d.GenBuffer()
	d.BindArrayBuffer(m.VBO)
	d.BufferStaticData(Flatten(positions))

	d.EnableVertexAttribArray(PositionLayout.Index)
	d.VertexAttribPointer(PositionLayout)

	return m, nil
}

// UploadTriangle builds the mesh for TrianglePositions.
func UploadTriangle(d BufferDriver) (*Mesh, error) {
	return NewMesh(d, TrianglePositions[:])
}

// Delete releases the buffer and vertex array.
func (m *Mesh) Delete(d BufferDriver) {
	if m.VBO != 0 {
		d.DeleteBuffer(m.VBO)
		m.VBO = 0
	}
	if m.VAO != 0 {
		d.DeleteVertexArray(m.VAO)
		m.VAO = 0
	}
}

package mesh

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/richinsley/gophong/phong"
)

// Mesh is geometry uploaded to a vertex array object.
type Mesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
	textured   bool
}

// Upload validates d for flags and copies it to the GPU using the attribute
// locations of the Phong program.
func Upload(d *Data, flags phong.Flags) (*Mesh, error) {
	if err := d.Validate(flags); err != nil {
		return nil, fmt.Errorf("failed to upload mesh: %w", err)
	}

	vertices, stride := d.Interleave()
	m := &Mesh{
		indexCount: int32(len(d.Indices)),
		textured:   stride > 6,
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.GenBuffers(1, &m.ebo)

	gl.BindVertexArray(m.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	strideBytes := int32(stride * 4)
	gl.EnableVertexAttribArray(Position)
	gl.VertexAttribPointer(Position, PositionAttribute.Components, gl.FLOAT, false, strideBytes, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(Normal)
	gl.VertexAttribPointer(Normal, NormalAttribute.Components, gl.FLOAT, false, strideBytes, gl.PtrOffset(3*4))
	if m.textured {
		gl.EnableVertexAttribArray(TextureCoordinates)
		gl.VertexAttribPointer(TextureCoordinates, TextureCoordinatesAttribute.Components, gl.FLOAT, false, strideBytes, gl.PtrOffset(6*4))
	}

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(d.Indices)*4, gl.Ptr(d.Indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	return m, nil
}

// Draw issues the indexed draw call. The program must already be current.
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
	gl.BindVertexArray(0)
}

func (m *Mesh) Textured() bool {
	return m.textured
}

func (m *Mesh) Destroy() {
	gl.DeleteVertexArrays(1, &m.vao)
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteBuffers(1, &m.ebo)
}

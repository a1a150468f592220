package mesh

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/gophong/phong"
)

var (
	ErrIndexCount       = errors.New("index count is not divisible by 3")
	ErrAttributeCount   = errors.New("attribute count mismatch")
	ErrMissingTexCoords = errors.New("texture coordinates required by a textured variant")
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrEmpty            = errors.New("mesh has no vertices")
)

// Data is indexed triangle geometry on the CPU side.
type Data struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	TexCoords []mgl32.Vec2
	Indices   []uint32
}

func (d *Data) VertexCount() int {
	return len(d.Positions)
}

// Validate checks d can feed a program built with flags.
func (d *Data) Validate(flags phong.Flags) error {
	n := len(d.Positions)
	if n == 0 {
		return ErrEmpty
	}
	if len(d.Normals) != n {
		return fmt.Errorf("%w: %d positions, %d normals", ErrAttributeCount, n, len(d.Normals))
	}
	if flags.Textured() && len(d.TexCoords) == 0 {
		return ErrMissingTexCoords
	}
	if len(d.TexCoords) != 0 && len(d.TexCoords) != n {
		return fmt.Errorf("%w: %d positions, %d texture coordinates", ErrAttributeCount, n, len(d.TexCoords))
	}
	if len(d.Indices)%3 != 0 {
		return ErrIndexCount
	}
	for i, idx := range d.Indices {
		if int(idx) >= n {
			return fmt.Errorf("%w: index %d is %d, %d vertices", ErrIndexOutOfRange, i, idx, n)
		}
	}
	return nil
}

// Interleave packs the vertices as position, normal and, when present,
// texture coordinates. It returns the packed floats and the stride in floats.
func (d *Data) Interleave() ([]float32, int) {
	stride := 6
	textured := len(d.TexCoords) == len(d.Positions)
	if textured {
		stride += 2
	}
	out := make([]float32, 0, len(d.Positions)*stride)
	for i, p := range d.Positions {
		n := d.Normals[i]
		out = append(out, p[0], p[1], p[2], n[0], n[1], n[2])
		if textured {
			uv := d.TexCoords[i]
			out = append(out, uv[0], uv[1])
		}
	}
	return out, stride
}

package mesh

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/gophong/phong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequiredAttributes(t *testing.T) {
	assert.Equal(t, []Attribute{PositionAttribute, NormalAttribute}, RequiredAttributes(0))
	for _, flags := range phong.AllFlags()[1:] {
		attrs := RequiredAttributes(flags)
		require.Len(t, attrs, 3, flags.String())
		assert.Equal(t, TextureCoordinatesAttribute, attrs[2])
	}
}

func TestFlipNormals(t *testing.T) {
	normals := []mgl32.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	FlipNormals(normals)
	assert.Equal(t, []mgl32.Vec3{{-1, 0, 0}, {0, -1, 0}, {0, 0, -1}}, normals)
}

func TestFlipFaceWinding(t *testing.T) {
	indices := []uint32{0, 1, 2, 3, 4, 5}
	require.NoError(t, FlipFaceWinding(indices))
	assert.Equal(t, []uint32{0, 2, 1, 3, 5, 4}, indices)
}

func TestFlipFaceWinding_WrongIndexCount(t *testing.T) {
	indices := []uint32{0, 1}
	assert.ErrorIs(t, FlipFaceWinding(indices), ErrIndexCount)
	assert.Equal(t, []uint32{0, 1}, indices)
}

func TestInvert(t *testing.T) {
	d := Cube()
	before := append([]mgl32.Vec3(nil), d.Normals...)
	require.NoError(t, d.Invert())
	for i, n := range d.Normals {
		assert.Equal(t, before[i].Mul(-1), n)
	}
	assert.Equal(t, []uint32{0, 2, 1}, d.Indices[:3])
}

func TestValidate(t *testing.T) {
	textured := phong.NewFlags(phong.DiffuseTexture)

	require.NoError(t, Cube().Validate(0))
	require.NoError(t, Cube().Validate(textured))

	noUV := Cube()
	noUV.TexCoords = nil
	assert.NoError(t, noUV.Validate(0))
	assert.ErrorIs(t, noUV.Validate(textured), ErrMissingTexCoords)

	shortNormals := Cube()
	shortNormals.Normals = shortNormals.Normals[:3]
	assert.ErrorIs(t, shortNormals.Validate(0), ErrAttributeCount)

	badIndices := Cube()
	badIndices.Indices = badIndices.Indices[:4]
	assert.ErrorIs(t, badIndices.Validate(0), ErrIndexCount)

	outOfRange := Cube()
	outOfRange.Indices[5] = 1000
	assert.ErrorIs(t, outOfRange.Validate(0), ErrIndexOutOfRange)

	assert.ErrorIs(t, (&Data{}).Validate(0), ErrEmpty)
}

func TestUVSphere(t *testing.T) {
	d := UVSphere(8, 16)
	require.NoError(t, d.Validate(phong.NewFlags(phong.AmbientTexture)))
	assert.Equal(t, 9*17, d.VertexCount())
	assert.Len(t, d.Indices, 8*16*6)

	for i, p := range d.Positions {
		assert.InDelta(t, 1.0, p.Len(), 1e-5)
		assert.Equal(t, p, d.Normals[i])
	}
	assert.InDelta(t, 1.0, d.Positions[0].Y(), 1e-6)
	assert.InDelta(t, -1.0, d.Positions[len(d.Positions)-1].Y(), 1e-6)

	clamped := UVSphere(0, 0)
	assert.Equal(t, 3*4, clamped.VertexCount())
}

func TestUVSphere_OutwardWinding(t *testing.T) {
	d := UVSphere(6, 12)
	for i := 0; i < len(d.Indices); i += 3 {
		a, b, c := d.Positions[d.Indices[i]], d.Positions[d.Indices[i+1]], d.Positions[d.Indices[i+2]]
		n := b.Sub(a).Cross(c.Sub(a))
		if n.Len() < 1e-6 {
			// degenerate triangles at the poles
			continue
		}
		centroid := a.Add(b).Add(c).Mul(1.0 / 3)
		assert.Greater(t, n.Dot(centroid), float32(0), "triangle %d faces inward", i/3)
	}
}

func TestCube(t *testing.T) {
	d := Cube()
	require.NoError(t, d.Validate(0))
	assert.Equal(t, 24, d.VertexCount())
	assert.Len(t, d.Indices, 36)

	for i := 0; i < len(d.Indices); i += 3 {
		a, b, c := d.Positions[d.Indices[i]], d.Positions[d.Indices[i+1]], d.Positions[d.Indices[i+2]]
		n := b.Sub(a).Cross(c.Sub(a)).Normalize()
		assert.True(t, n.ApproxEqual(d.Normals[d.Indices[i]]), "triangle %d winding", i/3)
	}
	for _, p := range d.Positions {
		for _, c := range p {
			assert.Equal(t, float32(1), c*c)
		}
	}
}

func TestInterleave(t *testing.T) {
	d := &Data{
		Positions: []mgl32.Vec3{{1, 2, 3}},
		Normals:   []mgl32.Vec3{{0, 1, 0}},
		TexCoords: []mgl32.Vec2{{0.5, 0.25}},
		Indices:   []uint32{0, 0, 0},
	}
	out, stride := d.Interleave()
	assert.Equal(t, 8, stride)
	assert.Equal(t, []float32{1, 2, 3, 0, 1, 0, 0.5, 0.25}, out)

	d.TexCoords = nil
	out, stride = d.Interleave()
	assert.Equal(t, 6, stride)
	assert.Equal(t, []float32{1, 2, 3, 0, 1, 0}, out)
}

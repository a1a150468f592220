package mesh

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// UVSphere returns a unit sphere centered at the origin. rings and segments
// are clamped to at least 2 and 3.
func UVSphere(rings, segments int) *Data {
	if rings < 2 {
		rings = 2
	}
	if segments < 3 {
		segments = 3
	}

	d := &Data{}
	for r := 0; r <= rings; r++ {
		v := float32(r) / float32(rings)
		theta := float64(v) * math.Pi
		sinTheta, cosTheta := math.Sincos(theta)
		for s := 0; s <= segments; s++ {
			u := float32(s) / float32(segments)
			phi := float64(u) * 2 * math.Pi
			sinPhi, cosPhi := math.Sincos(phi)

			n := mgl32.Vec3{
				float32(sinTheta * sinPhi),
				float32(cosTheta),
				float32(sinTheta * cosPhi),
			}
			d.Positions = append(d.Positions, n)
			d.Normals = append(d.Normals, n)
			d.TexCoords = append(d.TexCoords, mgl32.Vec2{u, 1 - v})
		}
	}

	row := uint32(segments + 1)
	for r := 0; r < rings; r++ {
		for s := 0; s < segments; s++ {
			a := uint32(r)*row + uint32(s)
			b := a + row
			// counter-clockwise seen from outside
			d.Indices = append(d.Indices, a, b, a+1, a+1, b, b+1)
		}
	}
	return d
}

var cubeFaces = [6]struct {
	normal, u, v mgl32.Vec3
}{
	{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
	{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 1, 0}},
	{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}},
	{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}},
	{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}},
	{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}},
}

// Cube returns a cube spanning -1..1 with flat per-face normals.
func Cube() *Data {
	d := &Data{}
	corners := [4]mgl32.Vec2{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	for _, f := range cubeFaces {
		base := uint32(len(d.Positions))
		for _, c := range corners {
			p := f.normal.Add(f.u.Mul(c[0])).Add(f.v.Mul(c[1]))
			d.Positions = append(d.Positions, p)
			d.Normals = append(d.Normals, f.normal)
			d.TexCoords = append(d.TexCoords, mgl32.Vec2{(c[0] + 1) / 2, (c[1] + 1) / 2})
		}
		d.Indices = append(d.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return d
}

package mesh

import "github.com/go-gl/mathgl/mgl32"

// FlipNormals negates every normal in place.
func FlipNormals(normals []mgl32.Vec3) {
	for i := range normals {
		normals[i] = normals[i].Mul(-1)
	}
}

// FlipFaceWinding swaps the second and third index of every triangle.
func FlipFaceWinding(indices []uint32) error {
	if len(indices)%3 != 0 {
		return ErrIndexCount
	}
	for i := 0; i < len(indices); i += 3 {
		indices[i+1], indices[i+2] = indices[i+2], indices[i+1]
	}
	return nil
}

// Invert turns the mesh inside out, so it can be viewed from within.
func (d *Data) Invert() error {
	if err := FlipFaceWinding(d.Indices); err != nil {
		return err
	}
	FlipNormals(d.Normals)
	return nil
}

package renderer

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a perspective camera looking at a fixed point.
type Camera struct {
	Eye    mgl32.Vec3
	Center mgl32.Vec3
	Up     mgl32.Vec3
	FovY   float32 // degrees
	Near   float32
	Far    float32
}

func DefaultCamera() Camera {
	return Camera{
		Eye:    mgl32.Vec3{0, 0, 3},
		Center: mgl32.Vec3{0, 0, 0},
		Up:     mgl32.Vec3{0, 1, 0},
		FovY:   45,
		Near:   0.1,
		Far:    100,
	}
}

func (c Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye, c.Center, c.Up)
}

func (c Camera) Projection(width, height int) mgl32.Mat4 {
	aspect := float32(1)
	if height > 0 {
		aspect = float32(width) / float32(height)
	}
	return mgl32.Perspective(mgl32.DegToRad(c.FovY), aspect, c.Near, c.Far)
}

// NormalMatrix is the inverse transpose of the rotation-scale part of
// modelView. It keeps normals perpendicular to surfaces under non-uniform
// scaling. A singular matrix yields the zero matrix.
func NormalMatrix(modelView mgl32.Mat4) mgl32.Mat3 {
	return modelView.Mat3().Inv().Transpose()
}

// ModelMatrix spins the model about the Y axis and tilts it slightly so the
// poles of a sphere come into view.
func ModelMatrix(t float64) mgl32.Mat4 {
	spin := mgl32.HomogRotate3DY(float32(t * 0.5))
	tilt := mgl32.HomogRotate3DX(mgl32.DegToRad(15))
	return tilt.Mul4(spin)
}

// LightPosition orbits the light around the view axis, in camera space.
func LightPosition(t float64) mgl32.Vec3 {
	const radius = 4
	a := t * 0.8
	return mgl32.Vec3{
		float32(radius * math.Cos(a)),
		2,
		float32(radius*math.Sin(a)) + 1,
	}
}

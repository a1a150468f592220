package phong

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// Color3 is a linear RGB color. Components are not clamped.
type Color3 [3]float32

func RGB(r, g, b float32) Color3 {
	return Color3{r, g, b}
}

// Gray returns a color with all three components set to v.
func Gray(v float32) Color3 {
	return Color3{v, v, v}
}

// FromColor converts an image/color value, dropping alpha. Premultiplied
// inputs are unpremultiplied first so translucency does not darken them.
func FromColor(c color.Color) Color3 {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return Color3{float32(n.R) / 0xffff, float32(n.G) / 0xffff, float32(n.B) / 0xffff}
}

func (c Color3) R() float32 { return c[0] }
func (c Color3) G() float32 { return c[1] }
func (c Color3) B() float32 { return c[2] }

func (c Color3) Vec3() mgl32.Vec3 {
	return mgl32.Vec3(c)
}

// Mul scales every component by s.
func (c Color3) Mul(s float32) Color3 {
	return Color3{c[0] * s, c[1] * s, c[2] * s}
}

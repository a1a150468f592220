package phong

import "github.com/go-gl/mathgl/mgl32"

// Uniform is an opaque parameter slot handle into a linked program. A value
// of -1 means the program has no such slot; writes to it are ignored.
type Uniform int32

// NoUniform is the handle of a slot the linked program does not have.
const NoUniform Uniform = -1

// Program is the linked shader program Phong writes its parameters into.
type Program interface {
	// Use makes the program current for subsequent draw calls.
	Use()
	UniformLocation(name string) Uniform
	SetInt(u Uniform, v int32)
	SetFloat(u Uniform, v float32)
	SetVec3(u Uniform, v mgl32.Vec3)
	SetColor3(u Uniform, c Color3)
	SetMat3(u Uniform, m mgl32.Mat3)
	SetMat4(u Uniform, m mgl32.Mat4)
}

// Linker produces the program variant whose source is conditioned on flags.
type Linker interface {
	Link(flags Flags) (Program, error)
}

// Texture is a non-owning reference to a GPU texture.
type Texture interface {
	GetTextureID() uint32
}

// TextureBinder attaches textures to binding units.
type TextureBinder interface {
	Bind(unit int, tex Texture)
	// BindTextures binds textures to consecutive units starting at first.
	// Nil entries leave their unit untouched.
	BindTextures(first int, textures []Texture)
}

// Binding units sampled by the textured variants.
const (
	AmbientTextureUnit  = 0
	DiffuseTextureUnit  = 1
	SpecularTextureUnit = 2
)

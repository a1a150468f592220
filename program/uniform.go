package program

import (
	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/gophong/phong"
)

// uniformFunc writes one value at a location of the current program.
type uniformFunc func(loc int32, v any)

func glUniform(loc int32, v any) {
	switch v := v.(type) {
	case int32:
		gl.Uniform1i(loc, v)
	case float32:
		gl.Uniform1f(loc, v)
	case mgl32.Vec3:
		gl.Uniform3fv(loc, 1, &v[0])
	case phong.Color3:
		gl.Uniform3fv(loc, 1, &v[0])
	case mgl32.Mat3:
		gl.UniformMatrix3fv(loc, 1, false, &v[0])
	case mgl32.Mat4:
		gl.UniformMatrix4fv(loc, 1, false, &v[0])
	}
}

// binding tracks the program current on the context. glUniform* targets
// the current program, so a setter on any other program must switch first.
// Code that binds programs directly must go through UseProgram.
type binding struct {
	program uint32
	known   bool
	bind    func(id uint32)
}

// current is the single GL context the process renders with.
var current = &binding{bind: gl.UseProgram}

// use binds id unconditionally.
func (b *binding) use(id uint32) {
	b.bind(id)
	b.program, b.known = id, true
}

// ensure binds id unless it is already current.
func (b *binding) ensure(id uint32) {
	if b.known && b.program == id {
		return
	}
	b.use(id)
}

// forget drops the record of id, e.g. when it is deleted.
func (b *binding) forget(id uint32) {
	if b.program == id {
		b.known = false
	}
}

// UseProgram makes a program that is not a *Program current, e.g. the blit
// program, keeping the record the setters rely on in sync. Zero unbinds.
func UseProgram(id uint32) {
	current.use(id)
}

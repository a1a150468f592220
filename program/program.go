package program

import (
	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/gophong/phong"
	gst "github.com/richinsley/goshadertranslator"
)

// Program is a linked GL program whose uniform names went through the
// shader translator. It implements phong.Program.
type Program struct {
	id       uint32
	flags    phong.Flags
	mapped   map[string]string
	resolved map[string]phong.Uniform
	state    *binding
	write    uniformFunc
}

var _ phong.Program = (*Program)(nil)

func newProgram(id uint32, flags phong.Flags, variables ...map[string]gst.ShaderVariable) *Program {
	p := &Program{
		id:       id,
		flags:    flags,
		mapped:   mappedNames(variables...),
		resolved: make(map[string]phong.Uniform),
		state:    current,
		write:    glUniform,
	}
	return p
}

// mappedNames merges the translator's variable tables of several stages into
// a source name -> emitted name lookup.
func mappedNames(variables ...map[string]gst.ShaderVariable) map[string]string {
	out := make(map[string]string)
	for _, vars := range variables {
		for name, v := range vars {
			if v.MappedName == "" {
				continue
			}
			out[name] = v.MappedName
		}
	}
	return out
}

// MappedName returns the name the translator emitted for a source name, or
// the name unchanged when the translator did not report it.
func (p *Program) MappedName(name string) string {
	if m, ok := p.mapped[name]; ok {
		return m
	}
	return name
}

func (p *Program) ID() uint32 { return p.id }

func (p *Program) Flags() phong.Flags { return p.flags }

// Use makes the program current.
func (p *Program) Use() {
	p.state.use(p.id)
}

// UniformLocation resolves name through the translator mapping. Names the
// linked program does not use resolve to phong.NoUniform.
func (p *Program) UniformLocation(name string) phong.Uniform {
	if u, ok := p.resolved[name]; ok {
		return u
	}
	loc := gl.GetUniformLocation(p.id, gl.Str(p.MappedName(name)+"\x00"))
	u := phong.Uniform(loc)
	p.resolved[name] = u
	return u
}

// set writes v into this program, making it current first if another
// program is.
func (p *Program) set(u phong.Uniform, v any) {
	if u == phong.NoUniform {
		return
	}
	p.state.ensure(p.id)
	p.write(int32(u), v)
}

func (p *Program) SetInt(u phong.Uniform, v int32)           { p.set(u, v) }
func (p *Program) SetFloat(u phong.Uniform, v float32)       { p.set(u, v) }
func (p *Program) SetVec3(u phong.Uniform, v mgl32.Vec3)     { p.set(u, v) }
func (p *Program) SetColor3(u phong.Uniform, c phong.Color3) { p.set(u, c) }
func (p *Program) SetMat3(u phong.Uniform, m mgl32.Mat3)     { p.set(u, m) }
func (p *Program) SetMat4(u phong.Uniform, m mgl32.Mat4)     { p.set(u, m) }

// Destroy deletes the GL program. The Program must not be used afterwards.
func (p *Program) Destroy() {
	if p.id != 0 {
		p.state.forget(p.id)
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}

package phong

import (
	"github.com/go-gl/mathgl/mgl32"
)

type write struct {
	uniform Uniform
	value   any
}

type fakeProgram struct {
	locations map[string]Uniform
	values    map[Uniform]any
	writes    []write
	used      int
}

func newFakeProgram() *fakeProgram {
	return &fakeProgram{
		locations: make(map[string]Uniform),
		values:    make(map[Uniform]any),
	}
}

func (f *fakeProgram) Use() { f.used++ }

func (f *fakeProgram) UniformLocation(name string) Uniform {
	if u, ok := f.locations[name]; ok {
		return u
	}
	u := Uniform(len(f.locations))
	f.locations[name] = u
	return u
}

func (f *fakeProgram) set(u Uniform, v any) {
	f.writes = append(f.writes, write{u, v})
	if u == NoUniform {
		return
	}
	f.values[u] = v
}

func (f *fakeProgram) SetInt(u Uniform, v int32)       { f.set(u, v) }
func (f *fakeProgram) SetFloat(u Uniform, v float32)   { f.set(u, v) }
func (f *fakeProgram) SetVec3(u Uniform, v mgl32.Vec3) { f.set(u, v) }
func (f *fakeProgram) SetColor3(u Uniform, c Color3)   { f.set(u, c) }
func (f *fakeProgram) SetMat3(u Uniform, m mgl32.Mat3) { f.set(u, m) }
func (f *fakeProgram) SetMat4(u Uniform, m mgl32.Mat4) { f.set(u, m) }

// value returns what the named uniform currently holds, or nil if it was
// never written.
func (f *fakeProgram) value(name string) any {
	u, ok := f.locations[name]
	if !ok {
		return nil
	}
	return f.values[u]
}

type fakeLinker struct {
	programs map[Flags]*fakeProgram
	links    []Flags
	err      error
}

func newFakeLinker() *fakeLinker {
	return &fakeLinker{programs: make(map[Flags]*fakeProgram)}
}

func (l *fakeLinker) Link(flags Flags) (Program, error) {
	l.links = append(l.links, flags)
	if l.err != nil {
		return nil, l.err
	}
	p := newFakeProgram()
	l.programs[flags] = p
	return p, nil
}

type fakeTexture uint32

func (t fakeTexture) GetTextureID() uint32 { return uint32(t) }

type bindCall struct {
	first    int
	textures []Texture
}

type fakeBinder struct {
	units map[int]Texture
	calls []bindCall
}

func newFakeBinder() *fakeBinder {
	return &fakeBinder{units: make(map[int]Texture)}
}

func (b *fakeBinder) Bind(unit int, tex Texture) {
	b.calls = append(b.calls, bindCall{unit, []Texture{tex}})
	b.units[unit] = tex
}

func (b *fakeBinder) BindTextures(first int, textures []Texture) {
	b.calls = append(b.calls, bindCall{first, append([]Texture(nil), textures...)})
	for i, tex := range textures {
		if tex != nil {
			b.units[first+i] = tex
		}
	}
}

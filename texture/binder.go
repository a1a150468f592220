package texture

import (
	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/richinsley/gophong/phong"
)

// bindFunc performs the actual unit activation and bind.
type bindFunc func(unit int, id uint32)

func glBind(unit int, id uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, id)
}

// Binder binds 2D textures to units and remembers what each unit holds so
// repeated binds of the same texture cost nothing. It implements
// phong.TextureBinder. State changes made behind its back require Reset.
type Binder struct {
	bound map[int]uint32
	bind  bindFunc
	calls int
}

var _ phong.TextureBinder = (*Binder)(nil)

func NewBinder() *Binder {
	return &Binder{
		bound: make(map[int]uint32),
		bind:  glBind,
	}
}

func (b *Binder) Bind(unit int, tex phong.Texture) {
	if tex == nil {
		return
	}
	b.bindID(unit, tex.GetTextureID())
}

// BindTextures binds textures to units first, first+1, ... in a single pass.
// Nil entries leave their unit as it is.
func (b *Binder) BindTextures(first int, textures []phong.Texture) {
	for i, tex := range textures {
		if tex == nil {
			continue
		}
		b.bindID(first+i, tex.GetTextureID())
	}
}

func (b *Binder) bindID(unit int, id uint32) {
	if cur, ok := b.bound[unit]; ok && cur == id {
		return
	}
	b.bind(unit, id)
	b.bound[unit] = id
	b.calls++
}

// Unbind clears every unit the binder touched.
func (b *Binder) Unbind() {
	for unit, id := range b.bound {
		if id != 0 {
			b.bind(unit, 0)
			b.calls++
		}
		b.bound[unit] = 0
	}
}

// Bound returns the texture id the binder last put on unit.
func (b *Binder) Bound(unit int) (uint32, bool) {
	id, ok := b.bound[unit]
	return id, ok
}

// Calls reports how many binds actually reached GL.
func (b *Binder) Calls() int {
	return b.calls
}

// Reset forgets the cached state, e.g. after another component bound
// textures directly.
func (b *Binder) Reset() {
	b.bound = make(map[int]uint32)
}

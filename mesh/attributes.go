// Package mesh holds the vertex attribute contract of the Phong program and
// the geometry fed through it.
package mesh

import "github.com/richinsley/gophong/phong"

// Attribute locations shared with the generated vertex shader.
const (
	Position           uint32 = 0
	Normal             uint32 = 1
	TextureCoordinates uint32 = 2
)

type Attribute struct {
	Name       string
	Location   uint32
	Components int32
}

var (
	PositionAttribute           = Attribute{Name: "position", Location: Position, Components: 3}
	NormalAttribute             = Attribute{Name: "normal", Location: Normal, Components: 3}
	TextureCoordinatesAttribute = Attribute{Name: "textureCoordinates", Location: TextureCoordinates, Components: 2}
)

// RequiredAttributes lists the vertex inputs a variant reads. Texture
// coordinates are only needed when some channel is textured.
func RequiredAttributes(flags phong.Flags) []Attribute {
	attrs := []Attribute{PositionAttribute, NormalAttribute}
	if flags.Textured() {
		attrs = append(attrs, TextureCoordinatesAttribute)
	}
	return attrs
}

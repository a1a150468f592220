package texture

import (
	"fmt"
	"image"
	"image/color"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/richinsley/gophong/phong"
)

// Texture2D is a GL 2D texture. It implements phong.Texture.
type Texture2D struct {
	textureID uint32
	width     int
	height    int
	sampler   Sampler
}

var _ phong.Texture = (*Texture2D)(nil)

// New uploads img as an RGBA texture.
func New(img image.Image, sampler Sampler) (*Texture2D, error) {
	if img == nil {
		return nil, fmt.Errorf("input image is nil")
	}

	rgba := toRGBA(img, sampler.MaxSize)
	if sampler.VFlip {
		rgba = VFlip(rgba)
	}

	width := int32(rgba.Rect.Size().X)
	height := int32(rgba.Rect.Size().Y)
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("input image is empty")
	}

	var textureID uint32
	gl.GenTextures(1, &textureID)
	gl.BindTexture(gl.TEXTURE_2D, textureID)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, getWrapMode(sampler.Wrap))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, getWrapMode(sampler.Wrap))

	minFilter, magFilter := getFilterMode(sampler.Filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, minFilter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, magFilter)

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		internalFormat(sampler),
		width,
		height,
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(rgba.Pix),
	)

	if sampler.Filter == "mipmap" {
		gl.GenerateMipmap(gl.TEXTURE_2D)
	}

	gl.BindTexture(gl.TEXTURE_2D, 0)

	return &Texture2D{
		textureID: textureID,
		width:     int(width),
		height:    int(height),
		sampler:   sampler,
	}, nil
}

// Solid creates a 1x1 texture of a single color, useful as a stand-in when a
// textured variant has no image for one of its channels.
func Solid(c phong.Color3) (*Texture2D, error) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.RGBA{
		R: unitToByte(c.R()),
		G: unitToByte(c.G()),
		B: unitToByte(c.B()),
		A: 0xff,
	})
	return New(img, Sampler{Wrap: "repeat", Filter: "nearest"})
}

func unitToByte(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 0xff
	}
	return uint8(v*255 + 0.5)
}

func (t *Texture2D) GetTextureID() uint32 {
	return t.textureID
}

func (t *Texture2D) Size() (int, int) {
	return t.width, t.height
}

func (t *Texture2D) Destroy() {
	if t.textureID != 0 {
		gl.DeleteTextures(1, &t.textureID)
		t.textureID = 0
	}
}

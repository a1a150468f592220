package renderer

import (
	"fmt"
	"image"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/richinsley/gophong/texture"
)

// Offscreen is a color texture plus depth renderbuffer the scene renders
// into. Its color attachment can be sampled like any other texture.
type Offscreen struct {
	fbo               uint32
	textureID         uint32
	depthRenderbuffer uint32
	width             int
	height            int
}

func NewOffscreen(width, height int) (*Offscreen, error) {
	o := &Offscreen{}

	gl.GenFramebuffers(1, &o.fbo)
	gl.GenTextures(1, &o.textureID)
	gl.GenRenderbuffers(1, &o.depthRenderbuffer)
	o.allocate(width, height)

	gl.BindFramebuffer(gl.FRAMEBUFFER, o.fbo)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, o.textureID, 0)
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, o.depthRenderbuffer)
	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	if status != gl.FRAMEBUFFER_COMPLETE {
		o.Destroy()
		return nil, fmt.Errorf("offscreen fbo is not complete (status 0x%x)", status)
	}
	return o, nil
}

func (o *Offscreen) allocate(width, height int) {
	o.width, o.height = width, height

	gl.BindTexture(gl.TEXTURE_2D, o.textureID)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.BindRenderbuffer(gl.RENDERBUFFER, o.depthRenderbuffer)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24, int32(width), int32(height))
	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)
}

// Resize reallocates the attachments when the size changed and reports
// whether it did. Reallocation rebinds the active texture unit.
func (o *Offscreen) Resize(width, height int) bool {
	if width == o.width && height == o.height {
		return false
	}
	o.allocate(width, height)
	return true
}

func (o *Offscreen) Bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, o.fbo)
	gl.Viewport(0, 0, int32(o.width), int32(o.height))
}

func (o *Offscreen) Unbind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

func (o *Offscreen) GetTextureID() uint32 {
	return o.textureID
}

func (o *Offscreen) Size() (int, int) {
	return o.width, o.height
}

// ReadPixels copies the color attachment into buf, bottom row first, and
// returns it. buf is grown when it is too small.
func (o *Offscreen) ReadPixels(buf []byte) []byte {
	size := o.width * o.height * 4
	if cap(buf) < size {
		buf = make([]byte, size)
	}
	buf = buf[:size]

	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, o.fbo)
	gl.ReadBuffer(gl.COLOR_ATTACHMENT0)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(o.width), int32(o.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(buf))
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)
	return buf
}

// Image returns the color attachment top row first.
func (o *Offscreen) Image() *image.RGBA {
	img := &image.RGBA{
		Pix:    o.ReadPixels(nil),
		Stride: o.width * 4,
		Rect:   image.Rect(0, 0, o.width, o.height),
	}
	return texture.VFlip(img)
}

func (o *Offscreen) Destroy() {
	gl.DeleteFramebuffers(1, &o.fbo)
	gl.DeleteTextures(1, &o.textureID)
	gl.DeleteRenderbuffers(1, &o.depthRenderbuffer)
}

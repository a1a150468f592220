package texture

import (
	gl "github.com/go-gl/gl/v4.1-core/gl"
)

// Sampler describes how a texture is uploaded and filtered.
type Sampler struct {
	Wrap   string // "repeat", "clamp" or "mirror"
	Filter string // "nearest", "linear" or "mipmap"
	SRGB   bool
	VFlip  bool
	// MaxSize downscales images whose larger side exceeds it. Zero keeps the
	// original size.
	MaxSize int
}

// DefaultSampler repeats and trilinearly filters.
func DefaultSampler() Sampler {
	return Sampler{Wrap: "repeat", Filter: "mipmap", VFlip: true}
}

// Helper to convert a wrap string to the OpenGL constant.
func getWrapMode(wrap string) int32 {
	switch wrap {
	case "repeat":
		return gl.REPEAT
	case "clamp":
		return gl.CLAMP_TO_EDGE
	case "mirror":
		return gl.MIRRORED_REPEAT
	default:
		return gl.REPEAT
	}
}

// Helper to convert a filter string to OpenGL constants.
func getFilterMode(filter string) (minFilter, magFilter int32) {
	switch filter {
	case "mipmap":
		return gl.LINEAR_MIPMAP_LINEAR, gl.LINEAR
	case "linear":
		return gl.LINEAR, gl.LINEAR
	case "nearest":
		return gl.NEAREST, gl.NEAREST
	default:
		return gl.LINEAR, gl.LINEAR
	}
}

func internalFormat(s Sampler) int32 {
	if s.SRGB {
		return gl.SRGB8_ALPHA8
	}
	return gl.RGBA8
}

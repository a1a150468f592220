package texture

import (
	"fmt"
	"image"
	"os"

	// Decoders available to Load.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Decode reads an image file in any registered format.
func Decode(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open texture: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode texture %s: %w", path, err)
	}
	return img, format, nil
}

// Load decodes path and uploads it as a texture.
func Load(path string, sampler Sampler) (*Texture2D, error) {
	img, _, err := Decode(path)
	if err != nil {
		return nil, err
	}
	tex, err := New(img, sampler)
	if err != nil {
		return nil, fmt.Errorf("failed to create texture from %s: %w", path, err)
	}
	return tex, nil
}

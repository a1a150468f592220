package texture

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/richinsley/gophong/phong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

type idTexture uint32

func (t idTexture) GetTextureID() uint32 { return uint32(t) }

type recordedBind struct {
	unit int
	id   uint32
}

func newRecordingBinder() (*Binder, *[]recordedBind) {
	var log []recordedBind
	b := NewBinder()
	b.bind = func(unit int, id uint32) {
		log = append(log, recordedBind{unit, id})
	}
	return b, &log
}

func TestBinder_SkipsRedundantBinds(t *testing.T) {
	b, log := newRecordingBinder()

	b.Bind(1, idTexture(7))
	b.Bind(1, idTexture(7))
	b.Bind(1, idTexture(8))
	b.Bind(0, idTexture(8))

	assert.Equal(t, []recordedBind{{1, 7}, {1, 8}, {0, 8}}, *log)
	assert.Equal(t, 3, b.Calls())

	id, ok := b.Bound(1)
	assert.True(t, ok)
	assert.Equal(t, uint32(8), id)
	_, ok = b.Bound(2)
	assert.False(t, ok)
}

func TestBinder_BindTexturesMatchesIndividualBinds(t *testing.T) {
	batched, _ := newRecordingBinder()
	batched.BindTextures(0, []phong.Texture{idTexture(1), idTexture(2), idTexture(3)})

	single, _ := newRecordingBinder()
	single.Bind(2, idTexture(3))
	single.Bind(0, idTexture(1))
	single.Bind(1, idTexture(2))

	assert.Equal(t, single.bound, batched.bound)
}

func TestBinder_BindTexturesSkipsNil(t *testing.T) {
	b, log := newRecordingBinder()
	b.Bind(1, idTexture(5))

	b.BindTextures(0, []phong.Texture{idTexture(4), nil, idTexture(6)})

	assert.Equal(t, []recordedBind{{1, 5}, {0, 4}, {2, 6}}, *log)
	id, _ := b.Bound(1)
	assert.Equal(t, uint32(5), id)

	b.Bind(0, nil)
	assert.Len(t, *log, 3)
}

func TestBinder_ResetAndUnbind(t *testing.T) {
	b, log := newRecordingBinder()
	b.Bind(0, idTexture(1))
	b.Reset()
	b.Bind(0, idTexture(1))
	assert.Len(t, *log, 2, "reset forgets cached state")

	b.Unbind()
	assert.Equal(t, recordedBind{0, 0}, (*log)[2])
	id, ok := b.Bound(0)
	assert.True(t, ok)
	assert.Zero(t, id)
}

func TestSamplerModes(t *testing.T) {
	assert.Equal(t, int32(gl.REPEAT), getWrapMode("repeat"))
	assert.Equal(t, int32(gl.CLAMP_TO_EDGE), getWrapMode("clamp"))
	assert.Equal(t, int32(gl.MIRRORED_REPEAT), getWrapMode("mirror"))
	assert.Equal(t, int32(gl.REPEAT), getWrapMode(""))

	minF, magF := getFilterMode("mipmap")
	assert.Equal(t, int32(gl.LINEAR_MIPMAP_LINEAR), minF)
	assert.Equal(t, int32(gl.LINEAR), magF)
	minF, magF = getFilterMode("nearest")
	assert.Equal(t, int32(gl.NEAREST), minF)
	assert.Equal(t, int32(gl.NEAREST), magF)

	assert.Equal(t, int32(gl.SRGB8_ALPHA8), internalFormat(Sampler{SRGB: true}))
	assert.Equal(t, int32(gl.RGBA8), internalFormat(DefaultSampler()))
}

func TestVFlip(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 3))
	for y := 0; y < 3; y++ {
		img.Set(0, y, color.RGBA{R: uint8(y), A: 255})
	}
	flipped := VFlip(img)
	for y := 0; y < 3; y++ {
		assert.Equal(t, uint8(2-y), flipped.RGBAAt(0, y).R)
	}
}

func TestToRGBA(t *testing.T) {
	src := image.NewNRGBA(image.Rect(10, 10, 18, 14))
	src.Set(10, 10, color.NRGBA{G: 200, A: 255})

	same := toRGBA(src, 0)
	assert.Equal(t, image.Rect(0, 0, 8, 4), same.Bounds())
	assert.Equal(t, uint8(200), same.RGBAAt(0, 0).G)

	scaled := toRGBA(src, 4)
	assert.Equal(t, image.Rect(0, 0, 4, 2), scaled.Bounds())

	tall := toRGBA(image.NewGray(image.Rect(0, 0, 3, 100)), 10)
	assert.Equal(t, image.Rect(0, 0, 1, 10), tall.Bounds())
}

func TestUnitToByte(t *testing.T) {
	assert.Equal(t, uint8(0), unitToByte(-1))
	assert.Equal(t, uint8(128), unitToByte(0.5))
	assert.Equal(t, uint8(255), unitToByte(3))
}

func TestDecode(t *testing.T) {
	dir := t.TempDir()
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	img.Set(1, 1, color.RGBA{B: 255, A: 255})

	pngPath := filepath.Join(dir, "tex.png")
	f, err := os.Create(pngPath)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	bmpPath := filepath.Join(dir, "tex.bmp")
	f, err = os.Create(bmpPath)
	require.NoError(t, err)
	require.NoError(t, bmp.Encode(f, img))
	require.NoError(t, f.Close())

	for path, format := range map[string]string{pngPath: "png", bmpPath: "bmp"} {
		decoded, got, err := Decode(path)
		require.NoError(t, err, path)
		assert.Equal(t, format, got)
		assert.Equal(t, 4, decoded.Bounds().Dx())
		_, _, b, _ := decoded.At(1, 1).RGBA()
		assert.Equal(t, uint32(0xffff), b)
	}

	_, _, err = Decode(filepath.Join(dir, "missing.png"))
	assert.Error(t, err)

	garbage := filepath.Join(dir, "garbage.png")
	require.NoError(t, os.WriteFile(garbage, []byte("not an image"), 0o644))
	_, _, err = Decode(garbage)
	assert.Error(t, err)
}

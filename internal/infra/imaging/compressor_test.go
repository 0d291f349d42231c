package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"log/slog"
	"math/rand/v2"
	"testing"

	"storefront/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noisePNG(t *testing.T, w, h int) []byte {
	t.Helper()

	rng := rand.New(rand.NewPCG(1, 2))
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, color.NRGBA{R: uint8(rng.UintN(256)), G: uint8(rng.UintN(256)), B: uint8(rng.UintN(256)), A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func newTestCompressor(maxBytes int64) *compressor {
	cfg := &config.Config{Storage: &config.StorageConfig{MaxImageBytes: maxBytes}}

	return NewCompressor(cfg, slog.Default()).(*compressor)
}

func TestCompress_UndecodableReturnsOriginal(t *testing.T) {
	c := newTestCompressor(1 << 20)
	data := []byte("definitely not an image")

	got := c.Compress(data, "")

	assert.False(t, got.Compressed)
	assert.Equal(t, data, got.Data)
	assert.Equal(t, "bin", got.Extension)
}

func TestCompress_FitsFirstTier(t *testing.T) {
	c := newTestCompressor(1 << 20)
	data := noisePNG(t, 300, 200)

	got := c.Compress(data, "image/png")

	require.True(t, got.Compressed)
	assert.Equal(t, "image/jpeg", got.ContentType)
	assert.Equal(t, "jpg", got.Extension)
	assert.Equal(t, 1920, got.MaxDimension)
	assert.LessOrEqual(t, len(got.Data), 1<<20)

	decoded, err := jpeg.Decode(bytes.NewReader(got.Data))
	require.NoError(t, err)
	assert.Equal(t, 300, decoded.Bounds().Dx(), "small images are not enlarged")
}

func TestCompress_CeilingTooSmallReturnsOriginal(t *testing.T) {
	c := newTestCompressor(10)
	data := noisePNG(t, 64, 64)

	got := c.Compress(data, "image/png")

	assert.False(t, got.Compressed)
	assert.Equal(t, data, got.Data)
	assert.Equal(t, "image/png", got.ContentType)
	assert.Equal(t, "png", got.Extension)
}

func TestCompress_DefaultCeiling(t *testing.T) {
	c := NewCompressor(&config.Config{}, slog.Default()).(*compressor)

	assert.Equal(t, defaultMaxBytes, c.maxBytes)
}

func TestResize_KeepsAspectRatio(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4000, 1000))

	landscape := resize(img, 1920)
	assert.Equal(t, 1920, landscape.Bounds().Dx())
	assert.Equal(t, 480, landscape.Bounds().Dy())

	portrait := resize(image.NewRGBA(image.Rect(0, 0, 500, 2000)), 800)
	assert.Equal(t, 200, portrait.Bounds().Dx())
	assert.Equal(t, 800, portrait.Bounds().Dy())
}

func TestFlatten_TransparentBecomesWhite(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))

	r, g, b, _ := flatten(img).At(0, 0).RGBA()

	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0xffff), g)
	assert.Equal(t, uint32(0xffff), b)
}

func grayPNG(t *testing.T, w, h int) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, w, h))))

	return buf.Bytes()
}

func TestCompress_OversizedCanvasIsNotDecoded(t *testing.T) {
	c := newTestCompressor(1 << 20)
	data := grayPNG(t, 8000, 8000)
	require.Less(t, len(data), 1<<20)

	got := c.Compress(data, "image/png")

	assert.False(t, got.Compressed)
	assert.Equal(t, data, got.Data)
	assert.Equal(t, "png", got.Extension)
}

func TestCompress_PixelCeilingFromConfig(t *testing.T) {
	cfg := &config.Config{Storage: &config.StorageConfig{MaxImageBytes: 1 << 20, MaxImagePixels: 100 * 100}}
	c := NewCompressor(cfg, slog.Default())

	small := c.Compress(grayPNG(t, 100, 100), "image/png")
	assert.True(t, small.Compressed)

	large := c.Compress(grayPNG(t, 101, 100), "image/png")
	assert.False(t, large.Compressed)
}

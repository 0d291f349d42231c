// Package imaging shrinks uploaded images before they reach blob storage.
package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"log/slog"

	// Decoders registered for image.Decode.
	_ "image/gif"
	_ "image/png"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	defaultMaxBytes  = 1 << 20
	defaultMaxPixels = 40_000_000
)

// tier is one compression attempt: fit the longest edge into MaxDimension, encode JPEG at Quality.
type tier struct {
	MaxDimension int
	Quality      int
}

// tiers are tried in order until the encoded size fits the ceiling.
var tiers = []tier{
	{MaxDimension: 1920, Quality: 85},
	{MaxDimension: 1280, Quality: 80},
	{MaxDimension: 1024, Quality: 75},
	{MaxDimension: 800, Quality: 60},
}

type compressor struct {
	maxBytes  int
	maxPixels int64
	logger    *slog.Logger
}

// NewCompressor uses storage.maxImageBytes as the ceiling, 1 MiB when unset.
// Images larger than storage.maxImagePixels (40 MP when unset) are never decoded.
func NewCompressor(cfg *config.Config, logger *slog.Logger) service.ImageCompressor {
	maxBytes := defaultMaxBytes
	maxPixels := int64(defaultMaxPixels)
	if cfg != nil && cfg.Storage != nil {
		if cfg.Storage.MaxImageBytes > 0 {
			maxBytes = int(cfg.Storage.MaxImageBytes)
		}
		if cfg.Storage.MaxImagePixels > 0 {
			maxPixels = cfg.Storage.MaxImagePixels
		}
	}

	return &compressor{maxBytes: maxBytes, maxPixels: maxPixels, logger: logger}
}

// Compress never fails: undecodable input, or input no tier can bring under the ceiling,
// comes back untouched.
func (c *compressor) Compress(data []byte, contentType string) *service.CompressedImage {
	original := c.original(data, contentType)

	// The header is enough to reject canvases whose decoded size would exhaust memory.
	header, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		c.logger.Warn("Image could not be decoded, storing original", slog.Any("error", err))

		return original
	}
	if pixels := int64(header.Width) * int64(header.Height); pixels > c.maxPixels {
		c.logger.Warn("Image exceeds the pixel ceiling, storing original",
			slog.Int("width", header.Width), slog.Int("height", header.Height),
			slog.Int64("maxPixels", c.maxPixels))

		return original
	}

	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		c.logger.Warn("Image could not be decoded, storing original", slog.Any("error", err))

		return original
	}

	flat := flatten(src)
	for _, t := range tiers {
		encoded, err := encodeJPEG(resize(flat, t.MaxDimension), t.Quality)
		if err != nil {
			c.logger.Warn("Image compression tier failed",
				slog.Int("maxDimension", t.MaxDimension), slog.Any("error", err))

			continue
		}
		if len(encoded) <= c.maxBytes {
			c.logger.Debug("Image compressed",
				slog.String("sourceFormat", format),
				slog.Int("originalBytes", len(data)),
				slog.Int("compressedBytes", len(encoded)),
				slog.Int("maxDimension", t.MaxDimension))

			return &service.CompressedImage{
				Data:         encoded,
				ContentType:  "image/jpeg",
				Extension:    "jpg",
				Compressed:   true,
				MaxDimension: t.MaxDimension,
			}
		}
	}

	c.logger.Warn("Every compression tier exceeded the size ceiling, storing original",
		slog.Int("originalBytes", len(data)), slog.Int("maxBytes", c.maxBytes))

	return original
}

func (c *compressor) original(data []byte, contentType string) *service.CompressedImage {
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = mimetype.Detect(data).String()
	}

	return &service.CompressedImage{
		Data:        data,
		ContentType: contentType,
		Extension:   extensionFor(contentType),
	}
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return "jpg"
	case "image/png":
		return "png"
	case "image/gif":
		return "gif"
	case "image/webp":
		return "webp"
	default:
		return "bin"
	}
}

// flatten paints src over white so transparent PNG and WebP areas do not turn black in JPEG.
func flatten(src image.Image) image.Image {
	bounds := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), src, bounds.Min, draw.Over)

	return dst
}

// resize fits img into a maxDim square keeping the aspect ratio. Smaller images are not enlarged.
func resize(img image.Image, maxDim int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxDim && h <= maxDim {
		return img
	}

	var nw, nh int
	if w >= h {
		nw, nh = maxDim, max(1, h*maxDim/w)
	} else {
		nw, nh = max(1, w*maxDim/h), maxDim
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)

	return dst
}

func encodeJPEG(img image.Image, quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

package service

// CompressedImage is the result of preparing an upload for storage.
type CompressedImage struct {
	Data        []byte
	ContentType string
	Extension   string // without the leading dot
	// Compressed is false when the original bytes are returned untouched.
	Compressed bool
	// MaxDimension is the longest edge of the tier that succeeded, zero when not compressed.
	MaxDimension int
}

// ImageCompressor shrinks uploaded images below a byte ceiling.
// It never fails on undecodable input; the original bytes are returned instead.
type ImageCompressor interface {
	Compress(data []byte, contentType string) *CompressedImage
}

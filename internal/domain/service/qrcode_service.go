package service

// QRCodeService renders QR codes as PNG images.
type QRCodeService interface {
	// GenerateURLQR encodes a URL into a PNG QR code.
	GenerateURLQR(url string) ([]byte, error)
}

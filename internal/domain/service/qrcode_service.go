package service

import (
	"image"

	"qrstudio/internal/domain/entity"
)

// QRCodeService defines the interface for QR code generation and decoding
type QRCodeService interface {
	// Encode renders req.Text as a PNG QR code, with req.Logo composited at the centre when set
	Encode(req entity.EncodeRequest) (*entity.QRImage, error)

	// Decode reads the first QR symbol found in encoded image bytes
	Decode(data []byte) (*entity.DecodeResult, error)

	// DecodeImage reads the first QR symbol found in an already decoded picture
	DecodeImage(img image.Image) (*entity.DecodeResult, error)
}

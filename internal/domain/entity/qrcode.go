package entity

import (
	"image"
)

// EncodeRequest is the input of one QR generation.
type EncodeRequest struct {
	Text string
	// Logo is composited over the centre of the symbol when set.
	Logo *LogoOverlay
}

// QRImage is a rendered QR symbol.
type QRImage struct {
	Width   int
	Height  int
	Content string
	PNG     []byte
	Image   image.Image
}

// LogoOverlay is a square bitmap with a circular opaque area, rendered from a
// short label.
type LogoOverlay struct {
	Label string
	Image image.Image
}

// DecodeStatus is the outcome of looking for a symbol in a picture.
type DecodeStatus string

const (
	DecodeStatusDecoded   DecodeStatus = "decoded"
	DecodeStatusNotFound  DecodeStatus = "not_found"
	DecodeStatusMalformed DecodeStatus = "malformed"
)

// DecodeResult holds the decoded text when Status is DecodeStatusDecoded.
type DecodeResult struct {
	Status DecodeStatus `json:"status"`
	Text   string       `json:"text,omitempty"`
}

// Decoded builds a successful result.
func Decoded(text string) *DecodeResult {
	return &DecodeResult{Status: DecodeStatusDecoded, Text: text}
}

// NotFound builds a result for pictures without a symbol.
func NotFound() *DecodeResult {
	return &DecodeResult{Status: DecodeStatusNotFound}
}

// Malformed builds a result for symbols that were located but not read.
func Malformed() *DecodeResult {
	return &DecodeResult{Status: DecodeStatusMalformed}
}

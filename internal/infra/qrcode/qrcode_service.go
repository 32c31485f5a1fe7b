package qrcode

import (
	"bytes"
	"image"
	"image/draw"
	_ "image/gif"  // register GIF
	_ "image/jpeg" // register JPEG
	"image/png"
	"unicode/utf8"

	"qrstudio/internal/domain/entity"
	domainerrors "qrstudio/internal/domain/errors"
	"qrstudio/internal/domain/service"
	"qrstudio/internal/errors"
	"qrstudio/internal/util"

	"github.com/makiuchi-d/gozxing"
	zxqrcode "github.com/makiuchi-d/gozxing/qrcode"
	goqrcode "github.com/skip2/go-qrcode"
	_ "golang.org/x/image/bmp" // register BMP
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register WebP
)

const (
	defaultScale     = 10
	defaultLogoRatio = 0.2

	// DefaultMaxPixels caps the declared size of a picture before it is decoded
	DefaultMaxPixels = 40_000_000
)

type qrcodeService struct {
	scale                int
	logoRatio            float64
	errorCorrectionLevel goqrcode.RecoveryLevel
	maxPixels            int
}

// Option customises the QR code service
type Option func(*qrcodeService)

// WithMaxPixels sets the largest picture, in pixels, Decode accepts.
// Non-positive values keep DefaultMaxPixels.
func WithMaxPixels(maxPixels int) Option {
	return func(s *qrcodeService) {
		if maxPixels > 0 {
			s.maxPixels = maxPixels
		}
	}
}

// NewQRCodeService creates a new QR code service instance.
// scale is the number of pixels per module, logoRatio the share of the
// image width and height given to a logo.
func NewQRCodeService(scale int, errorCorrectionLevel string, logoRatio float64, opts ...Option) service.QRCodeService {
	if scale <= 0 {
		scale = defaultScale
	}
	if logoRatio <= 0 || logoRatio >= 1 {
		logoRatio = defaultLogoRatio
	}

	s := &qrcodeService{
		scale:                scale,
		logoRatio:            logoRatio,
		errorCorrectionLevel: ParseRecoveryLevel(errorCorrectionLevel),
		maxPixels:            DefaultMaxPixels,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// ParseRecoveryLevel maps L/M/Q/H onto the encoder's recovery levels.
func ParseRecoveryLevel(level string) goqrcode.RecoveryLevel {
	switch level {
	case "L":
		return goqrcode.Low
	case "M":
		return goqrcode.Medium
	case "Q":
		return goqrcode.High
	case "H":
		return goqrcode.Highest
	default:
		return goqrcode.Medium
	}
}

// Encode renders the request text as a PNG QR code
func (s *qrcodeService) Encode(req entity.EncodeRequest) (*entity.QRImage, error) {
	if req.Text == "" {
		return nil, errors.Wrap(domainerrors.ErrEncoding, "text is empty")
	}
	if !utf8.ValidString(req.Text) {
		return nil, errors.Wrap(domainerrors.ErrEncoding, "text is not valid UTF-8")
	}

	qrCode, err := goqrcode.New(req.Text, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrEncoding, err.Error())
	}

	canvas := s.render(qrCode.Bitmap())
	if req.Logo != nil && req.Logo.Image != nil {
		s.compositeLogo(canvas, req.Logo.Image)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, errors.Wrap(domainerrors.ErrEncoding, err.Error())
	}

	bounds := canvas.Bounds()

	return &entity.QRImage{
		Width:   bounds.Dx(),
		Height:  bounds.Dy(),
		Content: req.Text,
		PNG:     buf.Bytes(),
		Image:   canvas,
	}, nil
}

// render draws every module as a scale×scale block on white.
func (s *qrcodeService) render(bitmap [][]bool) *image.NRGBA {
	size := len(bitmap) * s.scale
	canvas := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)

	for y, row := range bitmap {
		for x, dark := range row {
			if !dark {
				continue
			}
			block := image.Rect(x*s.scale, y*s.scale, (x+1)*s.scale, (y+1)*s.scale)
			draw.Draw(canvas, block, image.Black, image.Point{}, draw.Src)
		}
	}

	return canvas
}

// LogoRect returns the centred rectangle a logo occupies on a size×size image.
func LogoRect(width, height int, ratio float64) image.Rectangle {
	w := int(float64(width) * ratio)
	h := int(float64(height) * ratio)
	x := (width - w) / 2
	y := (height - h) / 2

	return image.Rect(x, y, x+w, y+h)
}

// compositeLogo clears the ellipse inscribed in the logo rectangle and draws
// the scaled logo over it.
func (s *qrcodeService) compositeLogo(canvas *image.NRGBA, logo image.Image) {
	bounds := canvas.Bounds()
	rect := LogoRect(bounds.Dx(), bounds.Dy(), s.logoRatio)
	if rect.Empty() {
		return
	}

	draw.DrawMask(canvas, rect, image.Transparent, image.Point{}, &util.EllipseMask{Rect: rect}, rect.Min, draw.Src)
	xdraw.CatmullRom.Scale(canvas, rect, logo, logo.Bounds(), xdraw.Over, nil)
}

// Decode reads the first QR symbol from encoded image bytes
func (s *qrcodeService) Decode(data []byte) (*entity.DecodeResult, error) {
	img, err := DecodePicture(data, s.maxPixels)
	if err != nil {
		return nil, err
	}

	return s.DecodeImage(img)
}

// DecodePicture decodes encoded picture bytes. Pictures declaring more than
// maxPixels pixels are refused before any pixel data is read.
func DecodePicture(data []byte, maxPixels int) (image.Image, error) {
	if maxPixels <= 0 {
		maxPixels = DefaultMaxPixels
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrImageDecode, err.Error())
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, errors.Wrap(domainerrors.ErrImageDecode, "image has no pixels")
	}
	if int64(cfg.Width)*int64(cfg.Height) > int64(maxPixels) {
		return nil, errors.Wrapf(domainerrors.ErrImageDecode,
			"image is %dx%d, above the %d pixel limit", cfg.Width, cfg.Height, maxPixels)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrImageDecode, err.Error())
	}

	return img, nil
}

// DecodeImage reads the first QR symbol found in img
func (s *qrcodeService) DecodeImage(img image.Image) (*entity.DecodeResult, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, errors.Wrap(domainerrors.ErrImageDecode, "image is empty")
	}

	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrImageDecode, err.Error())
	}

	hints := map[gozxing.DecodeHintType]interface{}{
		gozxing.DecodeHintType_TRY_HARDER:    true,
		gozxing.DecodeHintType_CHARACTER_SET: "UTF-8",
	}

	reader := zxqrcode.NewQRCodeReader()
	result, err := reader.Decode(bmp, hints)
	if err != nil {
		// The detector misses the finder patterns of some clean rendered
		// symbols; reading the picture as a bare symbol recovers them.
		hints[gozxing.DecodeHintType_PURE_BARCODE] = true
		pure, pureErr := reader.Decode(bmp, hints)
		if pureErr != nil {
			return classifyReadError(err), nil
		}
		result = pure
	}

	return entity.Decoded(result.GetText()), nil
}

func classifyReadError(err error) *entity.DecodeResult {
	switch err.(type) {
	case gozxing.NotFoundException:
		return entity.NotFound()
	default:
		// Format and checksum failures mean a symbol was located but unreadable.
		return entity.Malformed()
	}
}

package qrcode

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"math/rand"
	"strings"
	"testing"

	"qrstudio/internal/domain/entity"
	domainerrors "qrstudio/internal/domain/errors"
	"qrstudio/internal/errors"
	"qrstudio/internal/infra/logo"

	goqrcode "github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogo(t *testing.T) *entity.LogoOverlay {
	t.Helper()

	composer, err := logo.NewLogoComposer(100, 2, 30)
	require.NoError(t, err)

	return composer.RenderLabel("TS")
}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		errorCorrectionLevel string
		want                 goqrcode.RecoveryLevel
	}{
		{"Low error correction", "L", goqrcode.Low},
		{"Medium error correction", "M", goqrcode.Medium},
		{"High error correction", "Q", goqrcode.High},
		{"Highest error correction", "H", goqrcode.Highest},
		{"Default error correction", "invalid", goqrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(10, tt.errorCorrectionLevel, 0.2)
			require.NotNil(t, service)
			assert.Equal(t, tt.want, service.(*qrcodeService).errorCorrectionLevel)
		})
	}
}

func TestNewQRCodeService_NormalisesOptions(t *testing.T) {
	service := NewQRCodeService(0, "H", 2).(*qrcodeService)

	assert.Equal(t, defaultScale, service.scale)
	assert.InDelta(t, defaultLogoRatio, service.logoRatio, 1e-9)
}

func TestQRCodeService_Encode_PNG(t *testing.T) {
	service := NewQRCodeService(10, "M", 0.2)

	qrImage, err := service.Encode(entity.EncodeRequest{Text: "hello world"})
	require.NoError(t, err)
	require.NotEmpty(t, qrImage.PNG)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrImage.PNG[0])
	assert.Equal(t, byte(0x50), qrImage.PNG[1])
	assert.Equal(t, byte(0x4E), qrImage.PNG[2])
	assert.Equal(t, byte(0x47), qrImage.PNG[3])

	assert.Equal(t, "hello world", qrImage.Content)
	assert.Equal(t, qrImage.Width, qrImage.Height)
	assert.Zero(t, qrImage.Width%10, "size must be a whole number of modules")

	cfg, err := png.DecodeConfig(bytes.NewReader(qrImage.PNG))
	require.NoError(t, err)
	assert.Equal(t, qrImage.Width, cfg.Width)
}

func TestQRCodeService_Encode_Scale(t *testing.T) {
	small, err := NewQRCodeService(4, "M", 0.2).Encode(entity.EncodeRequest{Text: "scale"})
	require.NoError(t, err)
	large, err := NewQRCodeService(10, "M", 0.2).Encode(entity.EncodeRequest{Text: "scale"})
	require.NoError(t, err)

	assert.Equal(t, small.Width/4, large.Width/10)
}

func TestQRCodeService_Encode_WhiteBackground(t *testing.T) {
	qrImage, err := NewQRCodeService(10, "M", 0.2).Encode(entity.EncodeRequest{Text: "bg"})
	require.NoError(t, err)

	// The quiet zone is white and opaque
	r, g, b, a := qrImage.Image.At(0, 0).RGBA()
	assert.Equal(t, []uint32{0xffff, 0xffff, 0xffff, 0xffff}, []uint32{r, g, b, a})
}

func TestQRCodeService_Encode_Errors(t *testing.T) {
	service := NewQRCodeService(10, "H", 0.2)

	tests := []struct {
		name string
		text string
	}{
		{"Empty text", ""},
		{"Invalid UTF-8", string([]byte{0xff, 0xfe, 0xfd})},
		{"Exceeds capacity", strings.Repeat("x", 4000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qrImage, err := service.Encode(entity.EncodeRequest{Text: tt.text})
			assert.Nil(t, qrImage)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrEncoding))
		})
	}
}

func TestQRCodeService_RoundTrip(t *testing.T) {
	texts := []string{
		"a",
		"hello world",
		"HELLO WORLD 123",
		"0123456789",
		"https://example.com/path?query=value&other=1",
		"The quick brown fox jumps over the lazy dog. 0123456789!@#$%^&*()",
		strings.Repeat("abc", 100),
	}

	for _, level := range []string{"L", "M", "Q", "H"} {
		service := NewQRCodeService(4, level, 0.2)
		for _, text := range texts {
			t.Run(level+"/"+text[:min(len(text), 16)], func(t *testing.T) {
				qrImage, err := service.Encode(entity.EncodeRequest{Text: text})
				require.NoError(t, err)

				result, err := service.Decode(qrImage.PNG)
				require.NoError(t, err)
				assert.Equal(t, entity.DecodeStatusDecoded, result.Status)
				assert.Equal(t, text, result.Text)
			})
		}
	}
}

// randomPrintable returns n printable ASCII characters
func randomPrintable(rng *rand.Rand, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(0x20 + rng.Intn(0x7f-0x20))
	}

	return string(b)
}

func TestQRCodeService_RoundTrip_RandomText(t *testing.T) {
	// Close to the byte mode capacity at level H
	const longest = 1200

	service := NewQRCodeService(10, "H", 0.2)
	overlay := newTestLogo(t)
	rng := rand.New(rand.NewSource(20240601))

	lengths := []int{1, 2, 7, 15, 16, 31, 58, 96, 116, 151, 203, 288, 371, 450, 539, 640, 757, 880, 1006, 1140, longest}
	for _, n := range lengths {
		text := randomPrintable(rng, n)

		for _, withLogo := range []bool{false, true} {
			t.Run(fmt.Sprintf("len=%d/logo=%t", n, withLogo), func(t *testing.T) {
				req := entity.EncodeRequest{Text: text}
				if withLogo {
					req.Logo = overlay
				}

				qrImage, err := service.Encode(req)
				require.NoError(t, err)

				result, err := service.Decode(qrImage.PNG)
				require.NoError(t, err)
				assert.Equal(t, entity.Decoded(text), result)
			})
		}
	}
}

func TestQRCodeService_RoundTrip_UTF8(t *testing.T) {
	service := NewQRCodeService(6, "M", 0.2)

	qrImage, err := service.Encode(entity.EncodeRequest{Text: "큐알 코드 ✓"})
	require.NoError(t, err)

	result, err := service.Decode(qrImage.PNG)
	require.NoError(t, err)
	assert.Equal(t, entity.Decoded("큐알 코드 ✓"), result)
}

func TestQRCodeService_RoundTrip_WithLogo(t *testing.T) {
	service := NewQRCodeService(10, "H", 0.2)
	overlay := newTestLogo(t)

	for _, text := range []string{"hello world", "TS", "https://example.com/qr", "QR Code content"} {
		t.Run(text, func(t *testing.T) {
			qrImage, err := service.Encode(entity.EncodeRequest{Text: text, Logo: overlay})
			require.NoError(t, err)

			result, err := service.Decode(qrImage.PNG)
			require.NoError(t, err)
			assert.Equal(t, entity.Decoded(text), result)
		})
	}
}

func TestQRCodeService_Logo_ChangesOnlyCentre(t *testing.T) {
	service := NewQRCodeService(10, "H", 0.2)
	overlay := newTestLogo(t)

	plain, err := service.Encode(entity.EncodeRequest{Text: "hello world"})
	require.NoError(t, err)
	withLogo, err := service.Encode(entity.EncodeRequest{Text: "hello world", Logo: overlay})
	require.NoError(t, err)

	require.Equal(t, plain.Image.Bounds(), withLogo.Image.Bounds())
	rect := LogoRect(plain.Width, plain.Height, 0.2)

	changedInside := 0
	bounds := plain.Image.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			same := plain.Image.At(x, y) == withLogo.Image.At(x, y)
			if image.Pt(x, y).In(rect) {
				if !same {
					changedInside++
				}

				continue
			}
			require.True(t, same, "pixel (%d,%d) outside the logo area changed", x, y)
		}
	}
	assert.Positive(t, changedInside)
}

func TestQRCodeService_Logo_KeepsFinderPatterns(t *testing.T) {
	const scale = 10
	service := NewQRCodeService(scale, "H", 0.2)
	overlay := newTestLogo(t)

	for _, text := range []string{"hi", "hello world", strings.Repeat("finder", 10)} {
		t.Run(text, func(t *testing.T) {
			plain, err := service.Encode(entity.EncodeRequest{Text: text})
			require.NoError(t, err)
			withLogo, err := service.Encode(entity.EncodeRequest{Text: text, Logo: overlay})
			require.NoError(t, err)

			modules := plain.Width / scale
			// Border of 4 modules, finder of 7 modules
			finders := []image.Rectangle{
				image.Rect(4, 4, 11, 11),
				image.Rect(modules-11, 4, modules-4, 11),
				image.Rect(4, modules-11, 11, modules-4),
			}

			logoRect := LogoRect(plain.Width, plain.Height, 0.2)
			for _, finder := range finders {
				px := image.Rect(finder.Min.X*scale, finder.Min.Y*scale, finder.Max.X*scale, finder.Max.Y*scale)
				assert.False(t, px.Overlaps(logoRect), "finder %v overlaps logo area %v", px, logoRect)

				for y := px.Min.Y; y < px.Max.Y; y++ {
					for x := px.Min.X; x < px.Max.X; x++ {
						require.Equal(t, plain.Image.At(x, y), withLogo.Image.At(x, y))
					}
				}
			}
		})
	}
}

func TestQRCodeService_Decode_NonImage(t *testing.T) {
	service := NewQRCodeService(10, "M", 0.2)

	result, err := service.Decode([]byte("definitely not an image"))
	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrImageDecode))
}

func TestQRCodeService_Decode_EmptyBytes(t *testing.T) {
	service := NewQRCodeService(10, "M", 0.2)

	_, err := service.Decode(nil)
	assert.True(t, errors.Is(err, domainerrors.ErrImageDecode))
}

func TestQRCodeService_Decode_NoSymbol(t *testing.T) {
	service := NewQRCodeService(10, "M", 0.2)

	img := image.NewNRGBA(image.Rect(0, 0, 320, 240))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	// A grey band so the picture is not a flat colour
	draw.Draw(img, image.Rect(40, 100, 280, 140), &image.Uniform{C: color.Gray{Y: 128}}, image.Point{}, draw.Src)

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	result, err := service.Decode(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, entity.DecodeStatusNotFound, result.Status)
	assert.Empty(t, result.Text)
}

func TestQRCodeService_Decode_JPEG(t *testing.T) {
	service := NewQRCodeService(10, "M", 0.2)

	qrImage, err := service.Encode(entity.EncodeRequest{Text: "jpeg frame"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, qrImage.Image, &jpeg.Options{Quality: 90}))

	result, err := service.Decode(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, entity.Decoded("jpeg frame"), result)
}

func TestQRCodeService_Decode_SymbolInsideLargerPicture(t *testing.T) {
	service := NewQRCodeService(6, "M", 0.2)

	qrImage, err := service.Encode(entity.EncodeRequest{Text: "embedded"})
	require.NoError(t, err)

	photo := image.NewNRGBA(image.Rect(0, 0, 640, 480))
	draw.Draw(photo, photo.Bounds(), &image.Uniform{C: color.NRGBA{R: 200, G: 210, B: 220, A: 255}}, image.Point{}, draw.Src)
	offset := image.Pt(120, 60)
	draw.Draw(photo, qrImage.Image.Bounds().Add(offset), qrImage.Image, image.Point{}, draw.Src)

	result, err := service.DecodeImage(photo)
	require.NoError(t, err)
	assert.Equal(t, entity.Decoded("embedded"), result)
}

func TestQRCodeService_DecodeImage_Empty(t *testing.T) {
	service := NewQRCodeService(10, "M", 0.2)

	_, err := service.DecodeImage(image.NewNRGBA(image.Rectangle{}))
	assert.True(t, errors.Is(err, domainerrors.ErrImageDecode))

	_, err = service.DecodeImage(nil)
	assert.True(t, errors.Is(err, domainerrors.ErrImageDecode))
}

// pngHeader builds a PNG whose header declares width x height but carries no
// pixel data.
func pngHeader(width, height uint32) []byte {
	var buf bytes.Buffer
	buf.WriteString("\x89PNG\r\n\x1a\n")

	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:4], width)
	binary.BigEndian.PutUint32(ihdr[4:8], height)
	ihdr[8] = 8 // bit depth, grayscale
	writeChunk(&buf, "IHDR", ihdr)
	writeChunk(&buf, "IEND", nil)

	return buf.Bytes()
}

func writeChunk(buf *bytes.Buffer, kind string, data []byte) {
	var length [4]byte
	binary.BigEndian.PutUint32(length[:], uint32(len(data)))
	buf.Write(length[:])

	body := append([]byte(kind), data...)
	buf.Write(body)

	var sum [4]byte
	binary.BigEndian.PutUint32(sum[:], crc32.ChecksumIEEE(body))
	buf.Write(sum[:])
}

func TestQRCodeService_Decode_OversizedPicture(t *testing.T) {
	service := NewQRCodeService(10, "M", 0.2)

	result, err := service.Decode(pngHeader(90000, 90000))
	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrImageDecode))
	assert.Contains(t, err.Error(), "pixel limit")
}

func TestQRCodeService_Decode_MaxPixels(t *testing.T) {
	qrImage, err := NewQRCodeService(4, "M", 0.2).Encode(entity.EncodeRequest{Text: "limit"})
	require.NoError(t, err)
	pixels := qrImage.Width * qrImage.Height

	tests := []struct {
		name      string
		maxPixels int
		wantErr   bool
	}{
		{"Below the limit", pixels, false},
		{"Above the limit", pixels - 1, true},
		{"Non-positive keeps the default", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(4, "M", 0.2, WithMaxPixels(tt.maxPixels))

			result, err := service.Decode(qrImage.PNG)
			if tt.wantErr {
				assert.True(t, errors.Is(err, domainerrors.ErrImageDecode))

				return
			}
			require.NoError(t, err)
			assert.Equal(t, entity.Decoded("limit"), result)
		})
	}
}

func TestDecodePicture(t *testing.T) {
	_, err := DecodePicture(pngHeader(7000, 7000), 0)
	assert.True(t, errors.Is(err, domainerrors.ErrImageDecode))

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 10, 10))))

	img, err := DecodePicture(buf.Bytes(), 100)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 10, 10), img.Bounds())

	_, err = DecodePicture(buf.Bytes(), 99)
	assert.True(t, errors.Is(err, domainerrors.ErrImageDecode))
}

func TestLogoRect(t *testing.T) {
	rect := LogoRect(330, 330, 0.2)

	assert.Equal(t, 66, rect.Dx())
	assert.Equal(t, 66, rect.Dy())
	assert.Equal(t, image.Pt(132, 132), rect.Min)
}

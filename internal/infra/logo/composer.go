// Package logo renders short labels into circular badges that sit in the
// middle of generated QR codes.
package logo

import (
	"image"
	"image/draw"
	"strings"

	"qrstudio/internal/domain/entity"
	"qrstudio/internal/domain/service"
	"qrstudio/internal/errors"
	"qrstudio/internal/util"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	defaultCanvasSize = 100
	defaultScale      = 2
	defaultFontSize   = 30
)

type composer struct {
	font       *opentype.Font
	canvasSize int
	scale      int
	fontSize   float64
}

// NewLogoComposer parses the bold Go font once. canvasSize is in logical
// units, scale converts units to pixels, fontSize is in logical points.
func NewLogoComposer(canvasSize, scale int, fontSize float64) (service.LogoComposer, error) {
	parsed, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse bold font")
	}

	if canvasSize <= 0 {
		canvasSize = defaultCanvasSize
	}
	if scale <= 0 {
		scale = defaultScale
	}
	if fontSize <= 0 {
		fontSize = defaultFontSize
	}

	return &composer{
		font:       parsed,
		canvasSize: canvasSize,
		scale:      scale,
		fontSize:   fontSize,
	}, nil
}

// RenderLabel draws text centred, bold, black on a white disc.
func (c *composer) RenderLabel(text string) *entity.LogoOverlay {
	size := c.canvasSize * c.scale
	bounds := image.Rect(0, 0, size, size)
	circle := &util.EllipseMask{Rect: bounds}

	canvas := image.NewNRGBA(bounds)
	draw.DrawMask(canvas, bounds, image.White, image.Point{}, circle, image.Point{}, draw.Src)

	face := c.face()
	defer face.Close()

	layer := image.NewNRGBA(bounds)
	drawLines(layer, face, wrapLines(face, text, fixed.I(size)), size)
	draw.DrawMask(canvas, bounds, layer, image.Point{}, circle, image.Point{}, draw.Over)

	return &entity.LogoOverlay{
		Label: text,
		Image: canvas,
	}
}

// face falls back to the fixed bitmap face; opentype only rejects invalid
// options, which the constructor already normalised.
func (c *composer) face() font.Face {
	face, err := opentype.NewFace(c.font, &opentype.FaceOptions{
		Size:    c.fontSize * float64(c.scale),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13
	}

	return face
}

// drawLines centres each line horizontally and the whole block vertically.
func drawLines(dst draw.Image, face font.Face, lines []string, size int) {
	if len(lines) == 0 {
		return
	}

	metrics := face.Metrics()
	lineHeight := metrics.Height
	blockHeight := lineHeight * fixed.Int26_6(len(lines))
	top := (fixed.I(size) - blockHeight) / 2

	for i, line := range lines {
		width := font.MeasureString(face, line)
		drawer := &font.Drawer{
			Dst:  dst,
			Src:  image.Black,
			Face: face,
			Dot: fixed.Point26_6{
				X: (fixed.I(size) - width) / 2,
				Y: top + lineHeight*fixed.Int26_6(i) + metrics.Ascent,
			},
		}
		drawer.DrawString(line)
	}
}

// wrapLines breaks text on whitespace so each line fits maxWidth. A single
// word wider than maxWidth keeps its own line.
func wrapLines(face font.Face, text string, maxWidth fixed.Int26_6) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	lines := make([]string, 0, len(words))
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if font.MeasureString(face, candidate) <= maxWidth {
			current = candidate

			continue
		}
		lines = append(lines, current)
		current = word
	}

	return append(lines, current)
}

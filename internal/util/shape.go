package util

import (
	"image"
	"image/color"
)

// EllipseMask is an alpha mask that is opaque inside the ellipse inscribed
// in Rect and transparent elsewhere.
type EllipseMask struct {
	Rect image.Rectangle
}

func (m *EllipseMask) ColorModel() color.Model { return color.AlphaModel }

func (m *EllipseMask) Bounds() image.Rectangle { return m.Rect }

func (m *EllipseMask) At(x, y int) color.Color {
	if InEllipse(m.Rect, x, y) {
		return color.Opaque
	}

	return color.Transparent
}

// InEllipse reports whether the centre of pixel (x, y) lies inside the
// ellipse inscribed in rect.
func InEllipse(rect image.Rectangle, x, y int) bool {
	rx := float64(rect.Dx()) / 2
	ry := float64(rect.Dy()) / 2
	if rx <= 0 || ry <= 0 {
		return false
	}
	cx := float64(rect.Min.X) + rx
	cy := float64(rect.Min.Y) + ry
	dx := (float64(x) + 0.5 - cx) / rx
	dy := (float64(y) + 0.5 - cy) / ry

	return dx*dx+dy*dy <= 1
}

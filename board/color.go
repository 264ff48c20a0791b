package board

import "image/color"

// NoBlockCode is the character used for an empty cell in text representations.
const NoBlockCode = '.'

// Color is one of the fixed block hues. Two colors are equal when their codes are equal.
type Color struct {
	Code    rune
	R, G, B float32
}

// RGBA converts the color to an 8-bit RGBA value for renderers.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(c.R*255 + 0.5),
		G: uint8(c.G*255 + 0.5),
		B: uint8(c.B*255 + 0.5),
		A: 255,
	}
}

func (c Color) String() string {
	return string(c.Code)
}

var (
	Red     = Color{Code: 'R', R: 1.0, G: 0.0, B: 0.1}
	Green   = Color{Code: 'G', R: 0.0, G: 0.72, B: 0.0}
	Blue    = Color{Code: 'B', R: 0.0, G: 0.15, B: 1.0}
	Cyan    = Color{Code: 'C', R: 1.0, G: 0.45, B: 0.0}
	Magenta = Color{Code: 'M', R: 0.7, G: 0.0, B: 0.65}
	Yellow  = Color{Code: 'Y', R: 0.85, G: 0.75, B: 0.0}
)

// Palette is the ordered set of colors a factory draws from.
type Palette []Color

// DefaultPalette returns the six block colors.
func DefaultPalette() Palette {
	return Palette{Red, Green, Blue, Cyan, Magenta, Yellow}
}

// ByCode looks up a color by its character code.
func (p Palette) ByCode(code rune) (Color, bool) {
	for _, c := range p {
		if c.Code == code {
			return c, true
		}
	}
	return Color{}, false
}

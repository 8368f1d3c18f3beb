package colorwords

import "github.com/gogpu/gg"

// NamedColor pairs a color name with its ink.
type NamedColor struct {
	Name string
	Ink  gg.RGBA
}

func rgb8(r, g, b uint8) gg.RGBA {
	return gg.RGB(float64(r)/255, float64(g)/255, float64(b)/255)
}

// DefaultPalette returns the built-in color set.
func DefaultPalette() []NamedColor {
	return []NamedColor{
		{"red", rgb8(255, 0, 0)},
		{"green", rgb8(0, 255, 0)},
		{"blue", rgb8(0, 0, 255)},
		{"yellow", rgb8(255, 255, 0)},
		{"purple", rgb8(128, 0, 128)},
		{"brown", rgb8(165, 42, 42)},
		{"black", rgb8(0, 0, 0)},
	}
}

package color

import "github.com/lucasb-eyer/go-colorful"

// Text colors chosen for tile labels.
const (
	TextLight = "#fff"
	TextDark  = "#000"
)

// darkThreshold is the relative luminance below which a color counts as dark.
const darkThreshold = 0.5

// Luminance returns the WCAG relative luminance of c in [0, 1].
func Luminance(c HSL) float64 {
	return luminance(c.RGB())
}

func luminance(rgb colorful.Color) float64 {
	r, g, b := rgb.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// IsDark reports whether c is a dark background.
func IsDark(c HSL) bool {
	return Luminance(c) < darkThreshold
}

// TextColor returns the label color that contrasts with background c.
func TextColor(c HSL) string {
	return textFor(c.RGB())
}

// TextColorIn is TextColor for c as it reads once encoded in f. HEX
// quantizes channels to 8 bits, which can move a color across the dark
// threshold; RGBA and HSLA keep full precision.
func TextColorIn(c HSL, f Format) string {
	return textFor(encoded(c, f))
}

// encoded returns the RGB value a consumer recovers from Encode(c, f).
func encoded(c HSL, f Format) colorful.Color {
	rgb := c.RGB()
	if f == FormatRGBA || f == FormatHSLA {
		return rgb
	}
	q, err := colorful.Hex(rgb.Hex())
	if err != nil {
		return rgb
	}
	return q
}

func textFor(rgb colorful.Color) string {
	if luminance(rgb) < darkThreshold {
		return TextLight
	}
	return TextDark
}

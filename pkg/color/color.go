package color

import (
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/huegrid/pkg/errors"
)

// Format is a textual color encoding.
type Format string

// Supported encodings.
const (
	FormatHex  Format = "HEX"
	FormatRGBA Format = "RGBA"
	FormatHSLA Format = "HSLA"
)

// Formats lists the encodings in the order the settings panel offers them.
var Formats = []Format{FormatHSLA, FormatRGBA, FormatHex}

// Valid reports whether f is one of the supported encodings.
func (f Format) Valid() bool {
	switch f {
	case FormatHex, FormatRGBA, FormatHSLA:
		return true
	}
	return false
}

func (f Format) String() string { return string(f) }

// ParseFormat parses an encoding name case-insensitively.
// The short aliases "rgb" and "hsl" are accepted.
func ParseFormat(s string) (Format, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "HEX":
		return FormatHex, nil
	case "RGBA", "RGB":
		return FormatRGBA, nil
	case "HSLA", "HSL":
		return FormatHSLA, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unknown color format %q (must be HEX, RGBA or HSLA)", s)
}

// HSL is a color in hue (degrees), saturation and lightness (percent) with
// an alpha channel in [0, 1]. Use [NewHSL] for opaque colors; the zero value
// is fully transparent black.
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
	A float64 `json:"a"`
}

// NewHSL returns an opaque color.
func NewHSL(h, s, l float64) HSL {
	return HSL{H: h, S: s, L: l, A: 1}
}

// Normalized wraps the hue into [0, 360) and clamps saturation, lightness
// and alpha into their ranges.
func (c HSL) Normalized() HSL {
	h := math.Mod(c.H, 360)
	if h < 0 {
		h += 360
	}
	return HSL{
		H: h,
		S: clamp(c.S, 0, 100),
		L: clamp(c.L, 0, 100),
		A: clamp(c.A, 0, 1),
	}
}

// Opaque reports whether the color has full alpha.
func (c HSL) Opaque() bool { return c.A >= 1 }

// RGB converts the color to go-colorful's RGB model with channels in [0, 1].
func (c HSL) RGB() colorful.Color {
	n := c.Normalized()
	return colorful.Hsl(n.H, n.S/100, n.L/100).Clamped()
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

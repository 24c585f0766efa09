package color

import (
	"fmt"
	"math"
	"strconv"
)

// Encode renders c in the requested format. Unknown formats fall back to hex.
func Encode(c HSL, f Format) string {
	switch f {
	case FormatRGBA:
		return encodeRGBA(c)
	case FormatHSLA:
		return encodeHSLA(c)
	default:
		return encodeHex(c)
	}
}

// Hex renders c as "#rrggbb", ignoring alpha. Raster surfaces that cannot
// parse rgb()/hsl() strings use this form.
func Hex(c HSL) string {
	return c.RGB().Hex()
}

func encodeHex(c HSL) string {
	n := c.Normalized()
	hex := n.RGB().Hex()
	if n.Opaque() {
		return hex
	}
	return fmt.Sprintf("%s%02x", hex, uint8(math.Round(n.A*255)))
}

func encodeRGBA(c HSL) string {
	n := c.Normalized()
	rgb := n.RGB()
	r, g, b := num(rgb.R*255), num(rgb.G*255), num(rgb.B*255)
	if n.Opaque() {
		return fmt.Sprintf("rgb(%s, %s, %s)", r, g, b)
	}
	return fmt.Sprintf("rgba(%s, %s, %s, %s)", r, g, b, num(n.A))
}

func encodeHSLA(c HSL) string {
	n := c.Normalized()
	if n.Opaque() {
		return fmt.Sprintf("hsl(%s, %s%%, %s%%)", num(n.H), num(n.S), num(n.L))
	}
	return fmt.Sprintf("hsla(%s, %s%%, %s%%, %s)", num(n.H), num(n.S), num(n.L), num(n.A))
}

// num rounds to ten decimal places and prints the shortest representation,
// so float noise from the HSL conversion never reaches the output.
func num(v float64) string {
	v = math.Round(v*1e10) / 1e10
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

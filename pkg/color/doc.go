// Package color derives and encodes the tile colors of a huegrid.
//
// Colors are modelled in HSL space ([HSL]) because the grid derives hue,
// saturation and lightness directly from a tile's position. Conversion to RGB
// goes through go-colorful; everything that leaves this package is a string in
// one of three textual encodings:
//
//	color.FormatHex   // "#fffafa"
//	color.FormatRGBA  // "rgb(254.9745, 249.9255, 249.9255)"
//	color.FormatHSLA  // "hsl(0, 99%, 99%)"
//
// Encoding is exact: the same [HSL] and [Format] always produce the same
// string. Opaque colors use the short rgb()/hsl() forms; translucent colors
// switch to rgba()/hsla() and an eight-digit hex.
//
// # Contrast
//
// [IsDark] classifies a color by its WCAG relative luminance (dark below 0.5)
// and [TextColor] picks "#fff" for dark backgrounds and "#000" otherwise.
// [TextColorIn] judges the color as encoded, so HEX rounding is respected.
//
// # Caching
//
// A [Converter] memoizes encodings in an LRU cache. A full-size grid holds
// 35,640 tiles and is re-encoded on every settings change, so the TUI and the
// HTTP viewer share one converter.
package color

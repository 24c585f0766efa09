package grid

import (
	"github.com/matzehuels/huegrid/pkg/color"
)

// Cell is the view model of one tile. Cells are rebuilt on every render.
type Cell struct {
	Row        int    `json:"row"`
	Col        int    `json:"col"`
	Hue        int    `json:"hue"`
	Saturation int    `json:"saturation"`
	Lightness  int    `json:"lightness"`
	Color      string `json:"color"`
	Hex        string `json:"hex"`
	Text       string `json:"text"`
	Label      string `json:"label,omitempty"`
}

// HSL returns the cell's base color.
func (c Cell) HSL() color.HSL {
	return color.NewHSL(float64(c.Hue), float64(c.Saturation), float64(c.Lightness))
}

// Derive computes the hue, saturation and lightness of the tile at
// (row, col), both 1-indexed, in a rows x cols grid. The hue is not wrapped,
// so the last column of a grid may report 360.
func Derive(row, col, rows, cols int) (hue, saturation, lightness int) {
	hue = col * (360 / cols)
	saturation = row * (99 / rows)
	lightness = saturation
	return hue, saturation, lightness
}

var defaultConverter = color.NewConverter(color.DefaultCacheSize)

// Build returns the cells of cfg in row-major order using a shared converter.
func Build(cfg Config) []Cell {
	return BuildWith(defaultConverter, cfg)
}

// BuildWith is Build with an explicit converter.
func BuildWith(cv *color.Converter, cfg Config) []Cell {
	if cfg.Size() == 0 {
		return nil
	}
	cells := make([]Cell, 0, cfg.Size())
	for row := 1; row <= cfg.Rows; row++ {
		for col := 1; col <= cfg.Cols; col++ {
			cells = append(cells, newCell(cv, row, col, cfg))
		}
	}
	return cells
}

func newCell(cv *color.Converter, row, col int, cfg Config) Cell {
	h, s, l := Derive(row, col, cfg.Rows, cfg.Cols)
	base := color.NewHSL(float64(h), float64(s), float64(l))

	c := Cell{
		Row:        row,
		Col:        col,
		Hue:        h,
		Saturation: s,
		Lightness:  l,
		Color:      cv.Convert(base, cfg.Format),
		Hex:        cv.Convert(base, color.FormatHex),
		Text:       color.TextColorIn(base, cfg.Format),
	}
	if cfg.ShowLabel {
		c.Label = c.Color
	}
	return c
}

package grid

import (
	"github.com/matzehuels/huegrid/pkg/color"
	"github.com/matzehuels/huegrid/pkg/errors"
)

// Dimension bounds enforced by the settings panel.
const (
	MinRows = 1
	MaxRows = 99
	MinCols = 1
	MaxCols = 360
)

// Config is the user-adjustable grid configuration.
type Config struct {
	Rows      int          `json:"rows" toml:"rows" yaml:"rows"`
	Cols      int          `json:"cols" toml:"cols" yaml:"cols"`
	ShowLabel bool         `json:"show_label" toml:"show_label" yaml:"show_label"`
	Format    color.Format `json:"format" toml:"format" yaml:"format"`
}

// DefaultConfig returns the configuration shown on first mount.
func DefaultConfig() Config {
	return Config{
		Rows:      10,
		Cols:      10,
		ShowLabel: true,
		Format:    color.FormatHex,
	}
}

// Validate checks the configuration against the panel bounds.
func (c Config) Validate() error {
	if err := errors.ValidateRange("rows", c.Rows, MinRows, MaxRows); err != nil {
		return err
	}
	if err := errors.ValidateRange("cols", c.Cols, MinCols, MaxCols); err != nil {
		return err
	}
	if !c.Format.Valid() {
		return errors.New(errors.ErrCodeInvalidFormat, "unknown color format %q (must be HEX, RGBA or HSLA)", c.Format)
	}
	return nil
}

// Clamped returns c with dimensions forced into bounds and an unknown
// format replaced by HEX.
func (c Config) Clamped() Config {
	c.Rows = clampInt(c.Rows, MinRows, MaxRows)
	c.Cols = clampInt(c.Cols, MinCols, MaxCols)
	if !c.Format.Valid() {
		c.Format = color.FormatHex
	}
	return c
}

// Size returns the number of cells the configuration produces.
func (c Config) Size() int {
	if c.Rows <= 0 || c.Cols <= 0 {
		return 0
	}
	return c.Rows * c.Cols
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

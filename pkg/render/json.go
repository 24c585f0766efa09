package render

import (
	"encoding/json"

	"github.com/matzehuels/huegrid/pkg/grid"
)

type jsonOutput struct {
	Rows      int         `json:"rows"`
	Cols      int         `json:"cols"`
	Format    string      `json:"format"`
	ShowLabel bool        `json:"show_label"`
	Cells     []grid.Cell `json:"cells"`
}

// RenderJSON encodes the configuration together with its cells.
func RenderJSON(cfg grid.Config, cells []grid.Cell) ([]byte, error) {
	if cells == nil {
		cells = []grid.Cell{}
	}
	return json.MarshalIndent(jsonOutput{
		Rows:      cfg.Rows,
		Cols:      cfg.Cols,
		Format:    cfg.Format.String(),
		ShowLabel: cfg.ShowLabel,
		Cells:     cells,
	}, "", "  ")
}

// Package render turns grid cells into exportable artifacts.
//
// # Overview
//
// Every sink consumes the same view model, [grid.Build], so an exported grid
// always matches what the terminal UI shows for the same configuration:
//
//   - [RenderSVG]: scalable vector grid with click-to-copy behavior
//   - [RenderHTML]: standalone page with a settings form and toasts
//   - [RenderJSON]: the cell list, for scripting
//   - [RenderText]: ANSI-colored blocks (lipgloss)
//   - [ToDOT] / [RenderPNG]: Graphviz HTML-table raster export
//
// [Export] dispatches on an output name and is what the CLI and the HTTP
// server call:
//
//	data, err := render.Export(ctx, grid.DefaultConfig(), render.OutputSVG)
//
// # Colors
//
// Fills always use the cell's 8-bit hex form ([grid.Cell].Hex), which every
// target understands. The configured encoding (HEX, RGBA or HSLA) appears in
// labels and in the value copied to the clipboard.
//
// [grid.Build]: github.com/matzehuels/huegrid/pkg/grid.Build
// [grid.Cell]: github.com/matzehuels/huegrid/pkg/grid.Cell
package render

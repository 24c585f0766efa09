// Package pkg provides the core libraries for huegrid color grids.
//
// # Overview
//
// huegrid draws a grid of colors derived from each tile's position: columns
// sweep the hue wheel, rows raise saturation and lightness together.
// Activating a tile copies its color, encoded as HEX, RGBA or HSLA, to the
// clipboard. The pkg directory is organized into three areas:
//
//  1. Domain - [color] and [grid]
//  2. Outputs - [render] and [clipboard]
//  3. Infrastructure - [cache], [config], [notify], [errors], [observability]
//
// # Architecture
//
// The data flow for every entry point (terminal view, export, HTTP):
//
//	grid.Config (settings file, flags, panel, query)
//	         ↓
//	    [grid.Controller] (clamps settings, counts renders)
//	         ↓
//	    [grid.Renderer] (derives cells, encodes colors)
//	         ↓
//	    [grid.Surface] / [render] (terminal, SVG, PNG, JSON, HTML)
//	         ↓
//	    [clipboard.Copier] → [notify.Stack]
//
// # Quick Start
//
// Build the cells of a grid and encode them:
//
//	cells := grid.Build(grid.Config{Rows: 4, Cols: 12, Format: color.FormatHSLA})
//	svg := render.RenderSVG(cells)
//
// Drive a grid interactively:
//
//	buf := grid.NewBuffer()
//	copier := clipboard.NewCopier(clipboard.NewMemory(), notify.NewStack())
//	ctrl := grid.NewController(grid.DefaultConfig(), grid.NewRenderer(buf, copier))
//	ctrl.Mount(ctx)
//	ctrl.SetCols(ctx, 36)
//	_ = buf.Activate(ctx, 1, 1) // copies the color of the first tile
//
// # Main Packages
//
// [color] - HSL colors, the three encodings, contrast and an LRU-backed
// converter.
//
// [grid] - Cell derivation, the Renderer, double-buffered surfaces and the
// settings Controller with its panel bindings.
//
// [render] - Export encoders: interactive SVG, HTML page, JSON, ANSI text and
// PNG through Graphviz.
//
// [clipboard] - Permission-checked clipboard writes over the system clipboard
// or OSC 52.
//
// [notify] - Toast stack with expiry.
//
// [cache] - Artifact cache with file, Redis and null backends.
//
// [config] - TOML, YAML and JSON settings files with live reload.
//
// # Testing
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/grid/...     # Specific package
//	go test -run Example       # Examples only
//
// [color]: https://pkg.go.dev/github.com/matzehuels/huegrid/pkg/color
// [grid]: https://pkg.go.dev/github.com/matzehuels/huegrid/pkg/grid
// [render]: https://pkg.go.dev/github.com/matzehuels/huegrid/pkg/render
// [clipboard]: https://pkg.go.dev/github.com/matzehuels/huegrid/pkg/clipboard
// [notify]: https://pkg.go.dev/github.com/matzehuels/huegrid/pkg/notify
// [cache]: https://pkg.go.dev/github.com/matzehuels/huegrid/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/huegrid/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/huegrid/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/huegrid/pkg/observability
//
// [grid.Controller]: https://pkg.go.dev/github.com/matzehuels/huegrid/pkg/grid#Controller
// [grid.Renderer]: https://pkg.go.dev/github.com/matzehuels/huegrid/pkg/grid#Renderer
// [grid.Surface]: https://pkg.go.dev/github.com/matzehuels/huegrid/pkg/grid#Surface
// [clipboard.Copier]: https://pkg.go.dev/github.com/matzehuels/huegrid/pkg/clipboard#Copier
// [notify.Stack]: https://pkg.go.dev/github.com/matzehuels/huegrid/pkg/notify#Stack
package pkg

// Package grid derives, lays out and renders the color grid.
//
// # Derivation
//
// Every tile's color is a pure function of its position and the grid size:
//
//	hue        = col * floor(360 / cols)
//	saturation = row * floor(99 / rows)
//	lightness  = row * floor(99 / rows)
//
// [Derive] computes the triple, [Build] turns a [Config] into the row-major
// list of [Cell] view models that every surface draws from.
//
// # Rendering
//
// A [Renderer] clears a [Surface] and repopulates it with one cell per grid
// position. Each placed cell carries an activation handler that copies the
// cell's color through a [Copier]. [Buffer] is the in-memory surface used by
// the terminal UI; export sinks in pkg/render consume [Build] directly.
//
// # Settings
//
// A [Controller] owns the mutable [Config], exposes it to a settings panel as
// [Binding] values and re-renders after every change. Changes are applied
// under a lock, so observers only ever see complete grids.
package grid

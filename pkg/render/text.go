package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/huegrid/pkg/grid"
)

// TextOption configures ANSI text rendering.
type TextOption func(*textRenderer)

type textRenderer struct {
	cellWidth  int
	cellHeight int
	cursorRow  int
	cursorCol  int
	renderer   *lipgloss.Renderer
}

// WithTextCellSize sets the tile size in terminal columns and lines.
func WithTextCellSize(w, h int) TextOption {
	return func(r *textRenderer) { r.cellWidth, r.cellHeight = max(w, 1), max(h, 1) }
}

// WithCursor highlights the tile at (row, col).
func WithCursor(row, col int) TextOption {
	return func(r *textRenderer) { r.cursorRow, r.cursorCol = row, col }
}

// WithLipglossRenderer sets the renderer used to detect the color profile.
func WithLipglossRenderer(lr *lipgloss.Renderer) TextOption {
	return func(r *textRenderer) { r.renderer = lr }
}

// RenderText draws cells as colored terminal blocks, one line of tiles per
// grid row (each tile cellHeight lines tall). Labels are centered and
// truncated to the tile width.
func RenderText(cells []grid.Cell, opts ...TextOption) string {
	r := textRenderer{cellWidth: 12, cellHeight: 1, renderer: lipgloss.DefaultRenderer()}
	for _, opt := range opts {
		opt(&r)
	}
	if len(cells) == 0 {
		return ""
	}

	base := r.renderer.NewStyle().
		Width(r.cellWidth).
		Height(r.cellHeight).
		Align(lipgloss.Center, lipgloss.Center)

	var lines []string
	var row []string
	current := cells[0].Row
	for _, c := range cells {
		if c.Row != current {
			lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, current = nil, c.Row
		}
		style := base.Background(lipgloss.Color(c.Hex)).Foreground(lipgloss.Color(c.Text))
		if c.Row == r.cursorRow && c.Col == r.cursorCol {
			style = style.Bold(true).Underline(true)
		}
		row = append(row, style.Render(Truncate(c.Label, r.cellWidth)))
	}
	lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, row...))

	return strings.Join(lines, "\n")
}

// Truncate shortens s to at most width runes, marking the cut with an
// ellipsis.
func Truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}

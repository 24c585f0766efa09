package render

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/matzehuels/huegrid/pkg/color"
	"github.com/matzehuels/huegrid/pkg/errors"
	"github.com/matzehuels/huegrid/pkg/grid"
)

func testCells(rows, cols int, labels bool) []grid.Cell {
	return grid.Build(grid.Config{Rows: rows, Cols: cols, Format: color.FormatHex, ShowLabel: labels})
}

func TestRenderSVG(t *testing.T) {
	svg := string(RenderSVG(testCells(3, 4, true)))

	if !strings.HasPrefix(svg, "<svg") {
		t.Fatalf("SVG does not start with <svg: %.40s", svg)
	}
	if got := strings.Count(svg, `class="cell"`); got != 12 {
		t.Errorf("cell groups = %d, want 12", got)
	}
	if got := strings.Count(svg, "<rect"); got != 12 {
		t.Errorf("rects = %d, want 12", got)
	}
	if got := strings.Count(svg, "<text"); got != 12 {
		t.Errorf("labels = %d, want 12", got)
	}
	if !strings.Contains(svg, `viewBox="0 0 480.0 144.0"`) {
		t.Error("viewBox does not match 4x3 tiles of 120x48")
	}
	if !strings.Contains(svg, "navigator.clipboard.writeText") {
		t.Error("interactive SVG should include the copy script")
	}
}

func TestRenderSVGOptions(t *testing.T) {
	svg := string(RenderSVG(testCells(1, 1, false), WithCellSize(10, 20), WithStatic()))

	if strings.Contains(svg, "<script") {
		t.Error("static SVG should not contain a script")
	}
	if strings.Contains(svg, "<text") {
		t.Error("unlabeled cells should not produce text")
	}
	if !strings.Contains(svg, `width="10.0" height="20.0" fill="#fffafa"`) {
		t.Errorf("tile rect not sized or filled as expected:\n%s", svg)
	}
	if !strings.Contains(svg, `data-color="#fffafa"`) {
		t.Error("data-color should carry the encoded color")
	}

	labeled := string(RenderSVG(testCells(1, 1, true), WithFontSize(14)))
	if !strings.Contains(labeled, `font-size="14.0"`) {
		t.Errorf("label font size not applied:\n%s", labeled)
	}
}

func TestRenderSVGEscapesLabels(t *testing.T) {
	cells := []grid.Cell{{Row: 1, Col: 1, Hex: "#000000", Text: "#fff", Color: `a<b&"c"`, Label: `a<b&"c"`}}
	svg := string(RenderSVG(cells))
	if strings.Contains(svg, `a<b`) {
		t.Error("label was not escaped")
	}
	if !strings.Contains(svg, "a&lt;b&amp;") {
		t.Error("escaped label missing")
	}
}

func TestRenderJSON(t *testing.T) {
	cfg := grid.Config{Rows: 2, Cols: 2, Format: color.FormatRGBA, ShowLabel: true}
	data, err := RenderJSON(cfg, grid.Build(cfg))
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}
	if out.Rows != 2 || out.Cols != 2 || out.Format != "RGBA" || !out.ShowLabel {
		t.Errorf("header = %+v", out)
	}
	if len(out.Cells) != 4 {
		t.Fatalf("Cells = %d, want 4", len(out.Cells))
	}
	if c := out.Cells[0]; c.Row != 1 || c.Col != 1 || c.Hue != 180 || !strings.HasPrefix(c.Color, "rgb(") {
		t.Errorf("first cell = %+v", c)
	}
}

func TestRenderJSONEmpty(t *testing.T) {
	data, err := RenderJSON(grid.Config{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte(`"cells": []`)) {
		t.Errorf("empty grid should encode an empty array:\n%s", data)
	}
}

func TestRenderText(t *testing.T) {
	out := RenderText(testCells(2, 3, true), WithTextCellSize(9, 1))

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2:\n%s", len(lines), out)
	}
	if !strings.Contains(out, "#fff5f5") {
		t.Errorf("labels missing from output:\n%s", out)
	}
}

func TestRenderTextTallCells(t *testing.T) {
	out := RenderText(testCells(2, 2, false), WithTextCellSize(4, 3))
	if lines := strings.Count(out, "\n") + 1; lines != 6 {
		t.Errorf("lines = %d, want 6 for two rows of height 3", lines)
	}
}

func TestRenderTextPlainProfile(t *testing.T) {
	// A renderer on a non-terminal writer detects the ASCII profile.
	lr := lipgloss.NewRenderer(io.Discard)
	out := RenderText(testCells(1, 2, true), WithLipglossRenderer(lr))
	if strings.Contains(out, "\x1b[") {
		t.Errorf("ASCII profile should not emit escape sequences: %q", out)
	}
	if !strings.Contains(out, "#fffafa") {
		t.Errorf("labels missing from plain output: %q", out)
	}
}

func TestRenderTextEmpty(t *testing.T) {
	if out := RenderText(nil); out != "" {
		t.Errorf("RenderText(nil) = %q, want empty", out)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"#ff0000", 10, "#ff0000"},
		{"#ff0000", 7, "#ff0000"},
		{"rgb(255, 0, 0)", 6, "rgb(2…"},
		{"abc", 1, "a"},
		{"abc", 0, ""},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(testCells(2, 3, true), DOTOptions{})

	if !strings.HasPrefix(dot, "digraph G {") {
		t.Fatalf("DOT header missing:\n%s", dot)
	}
	if got := strings.Count(dot, "<TR>"); got != 2 {
		t.Errorf("rows = %d, want 2", got)
	}
	if got := strings.Count(dot, "<TD "); got != 6 {
		t.Errorf("cells = %d, want 6", got)
	}
	if !strings.Contains(dot, `COLOR="#000000"`) || !strings.Contains(dot, `COLOR="#ffffff"`) {
		t.Error("text colors should be expanded to six digits")
	}
}

func TestToDOTEmpty(t *testing.T) {
	dot := ToDOT(nil, DOTOptions{})
	if !strings.Contains(dot, "<TR><TD></TD></TR>") {
		t.Errorf("empty grid should produce a placeholder row:\n%s", dot)
	}
}

func TestRenderPNG(t *testing.T) {
	png, err := RenderPNG(context.Background(), ToDOT(testCells(2, 2, true), DOTOptions{}))
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG\r\n\x1a\n")) {
		t.Errorf("output is not a PNG: % x", png[:min(8, len(png))])
	}
}

func TestRenderHTML(t *testing.T) {
	cfg := grid.Config{Rows: 2, Cols: 2, Format: color.FormatHSLA, ShowLabel: true}
	page, err := RenderHTML(cfg, grid.Build(cfg))
	if err != nil {
		t.Fatalf("RenderHTML() error: %v", err)
	}
	html := string(page)

	for _, want := range []string{
		"<!DOCTYPE html>",
		"<h2>Config</h2>",
		"Rows", "Columns", "Show Color", "Color type",
		`<option value="HSLA" selected>`,
		`class="cell"`,
		"window.huegridNotify",
		"checked",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q", want)
		}
	}
	// The SVG is embedded as markup, not escaped text.
	if strings.Contains(html, "&lt;svg") {
		t.Error("SVG was escaped")
	}
}

func TestParseOutput(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"svg", OutputSVG, false},
		{"PNG", OutputPNG, false},
		{" json ", OutputJSON, false},
		{"text", OutputText, false},
		{"htm", OutputHTML, false},
		{"pdf", "", true},
	}
	for _, tt := range tests {
		got, err := ParseOutput(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseOutput(%q) error = %v", tt.in, err)
			continue
		}
		if tt.wantErr && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ParseOutput(%q) code = %s", tt.in, errors.GetCode(err))
		}
		if got != tt.want {
			t.Errorf("ParseOutput(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExport(t *testing.T) {
	ctx := context.Background()
	cfg := grid.Config{Rows: 2, Cols: 2, Format: color.FormatHex, ShowLabel: true}

	for _, out := range []string{OutputSVG, OutputJSON, OutputText, OutputHTML} {
		t.Run(out, func(t *testing.T) {
			data, err := Export(ctx, cfg, out)
			if err != nil {
				t.Fatalf("Export(%s) error: %v", out, err)
			}
			if len(data) == 0 {
				t.Errorf("Export(%s) returned no data", out)
			}
			if ContentType(out) == "" {
				t.Errorf("ContentType(%s) empty", out)
			}
		})
	}

	if _, err := Export(ctx, cfg, "gif"); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Export(gif) error = %v, want INVALID_FORMAT", err)
	}
}

func TestExportTextIgnoresTerminal(t *testing.T) {
	ctx := context.Background()
	cfg := grid.Config{Rows: 1, Cols: 1, Format: color.FormatHex}

	old := lipgloss.ColorProfile()
	t.Cleanup(func() { lipgloss.SetColorProfile(old) })

	var outputs []string
	for _, p := range []termenv.Profile{termenv.TrueColor, termenv.Ascii} {
		lipgloss.SetColorProfile(p)
		data, err := Export(ctx, cfg, OutputText)
		if err != nil {
			t.Fatalf("Export(txt) error: %v", err)
		}
		outputs = append(outputs, string(data))
	}

	if outputs[0] != outputs[1] {
		t.Errorf("txt export depends on the process color profile:\n%q\n%q", outputs[0], outputs[1])
	}
	if !strings.Contains(outputs[1], "48;2;255;250;250") {
		t.Errorf("txt export should paint the #fffafa background in true color: %q", outputs[1])
	}
}

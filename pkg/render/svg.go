package render

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/matzehuels/huegrid/pkg/grid"
)

const fontFamily = `ui-monospace, SFMono-Regular, Menlo, Consolas, monospace`

const cellInteractionCSS = `
    .cell { cursor: pointer; }
    .cell rect { transition: opacity 0.15s ease; }
    .cell:hover rect { opacity: 0.85; }
    .cell text { pointer-events: none; user-select: none; }`

// The handler only touches the clipboard when the page may write to it.
// Pages embedding the SVG can define window.huegridNotify(kind, message)
// to display the result.
const cellInteractionJS = `
    (function () {
      const notify = (kind, msg) => (window.huegridNotify || function () {})(kind, msg);
      async function permission() {
        if (!navigator.permissions) return 'granted';
        try {
          return (await navigator.permissions.query({ name: 'clipboard-write' })).state;
        } catch (e) {
          return 'prompt';
        }
      }
      async function copyColor(color) {
        const state = await permission();
        if (state === 'denied') {
          notify('error', 'Could not copy ' + color + ': clipboard permission denied');
          return;
        }
        try {
          await navigator.clipboard.writeText(color);
          notify('success', 'Selected color is ' + color);
        } catch (e) {
          const reason = state === 'prompt' ? 'clipboard permission not granted' : e;
          notify('error', 'Could not copy ' + color + ': ' + reason);
        }
      }
      document.querySelectorAll('.cell').forEach(el => {
        el.addEventListener('click', () => copyColor(el.dataset.color));
      });
    })();`

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	cellWidth   float64
	cellHeight  float64
	fontSize    float64
	interactive bool
}

// WithCellSize sets the width and height of one tile in SVG units.
func WithCellSize(w, h float64) SVGOption {
	return func(r *svgRenderer) { r.cellWidth, r.cellHeight = w, h }
}

// WithFontSize sets the label font size.
func WithFontSize(s float64) SVGOption { return func(r *svgRenderer) { r.fontSize = s } }

// WithStatic omits the click-to-copy script and styles.
func WithStatic() SVGOption { return func(r *svgRenderer) { r.interactive = false } }

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{cellWidth: 120, cellHeight: 48, fontSize: 11, interactive: true}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// RenderSVG draws cells as a grid of rectangles. Each tile is a <g> with
// class "cell" whose data-color attribute holds the encoded color.
func RenderSVG(cells []grid.Cell, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)
	rows, cols := extent(cells)
	width, height := float64(cols)*r.cellWidth, float64(rows)*r.cellHeight

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)

	for _, c := range cells {
		r.renderCell(&buf, c)
	}
	if r.interactive {
		fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", cellInteractionCSS)
		fmt.Fprintf(&buf, "  <script type=\"text/javascript\"><![CDATA[%s\n  ]]></script>\n", cellInteractionJS)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r svgRenderer) renderCell(buf *bytes.Buffer, c grid.Cell) {
	x := float64(c.Col-1) * r.cellWidth
	y := float64(c.Row-1) * r.cellHeight

	fmt.Fprintf(buf, `  <g class="cell" id="cell-%d-%d" data-color="%s">`+"\n", c.Row, c.Col, escapeXML(c.Color))
	fmt.Fprintf(buf, `    <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
		x, y, r.cellWidth, r.cellHeight, c.Hex)
	if c.Label != "" {
		fmt.Fprintf(buf, `    <text x="%.1f" y="%.1f" fill="%s" font-family="%s" font-size="%.1f" text-anchor="middle" dominant-baseline="central">%s</text>`+"\n",
			x+r.cellWidth/2, y+r.cellHeight/2, c.Text, fontFamily, r.fontSize, escapeXML(c.Label))
	}
	buf.WriteString("  </g>\n")
}

// extent returns the largest row and column present in cells.
func extent(cells []grid.Cell) (rows, cols int) {
	for _, c := range cells {
		rows = max(rows, c.Row)
		cols = max(cols, c.Col)
	}
	return rows, cols
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

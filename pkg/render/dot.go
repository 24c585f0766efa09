package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/huegrid/pkg/grid"
)

// DOTOptions configures the Graphviz table.
type DOTOptions struct {
	// CellWidth and CellHeight are tile sizes in points.
	CellWidth  int
	CellHeight int

	// FontSize is the label size in points.
	FontSize int
}

func (o DOTOptions) withDefaults() DOTOptions {
	if o.CellWidth <= 0 {
		o.CellWidth = 96
	}
	if o.CellHeight <= 0 {
		o.CellHeight = 36
	}
	if o.FontSize <= 0 {
		o.FontSize = 9
	}
	return o
}

// ToDOT converts cells to a DOT graph holding one HTML-table node, one <TD>
// per tile. The result can be rasterized with [RenderPNG].
func ToDOT(cells []grid.Cell, opts DOTOptions) string {
	opts = opts.withDefaults()

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  pad=0;\n")
	buf.WriteString("  node [shape=plaintext, margin=0];\n")
	buf.WriteString("\n")
	buf.WriteString("  grid [label=<\n")
	buf.WriteString("    <TABLE BORDER=\"0\" CELLBORDER=\"0\" CELLSPACING=\"0\" CELLPADDING=\"0\">\n")

	current := 0
	for _, c := range cells {
		if c.Row != current {
			if current != 0 {
				buf.WriteString("      </TR>\n")
			}
			buf.WriteString("      <TR>\n")
			current = c.Row
		}
		fmt.Fprintf(&buf, `        <TD BGCOLOR="%s" WIDTH="%d" HEIGHT="%d" FIXEDSIZE="TRUE">`,
			c.Hex, opts.CellWidth, opts.CellHeight)
		if c.Label != "" {
			fmt.Fprintf(&buf, `<FONT COLOR="%s" POINT-SIZE="%d">%s</FONT>`,
				dotColor(c.Text), opts.FontSize, escapeXML(Truncate(c.Label, opts.CellWidth/(opts.FontSize/2+1))))
		}
		buf.WriteString("</TD>\n")
	}
	if current != 0 {
		buf.WriteString("      </TR>\n")
	} else {
		// Graphviz rejects tables without rows.
		buf.WriteString("      <TR><TD></TD></TR>\n")
	}

	buf.WriteString("    </TABLE>\n")
	buf.WriteString("  >];\n")
	buf.WriteString("}\n")
	return buf.String()
}

// dotColor expands the short text colors, which Graphviz does not parse.
func dotColor(c string) string {
	switch c {
	case "#fff":
		return "#ffffff"
	case "#000":
		return "#000000"
	}
	return c
}

// RenderPNG rasterizes a DOT graph with the embedded Graphviz runtime.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

package render

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/matzehuels/huegrid/pkg/errors"
	"github.com/matzehuels/huegrid/pkg/grid"
)

// Output names accepted by Export.
const (
	OutputSVG  = "svg"
	OutputPNG  = "png"
	OutputJSON = "json"
	OutputText = "txt"
	OutputHTML = "html"
)

// Outputs lists every output Export supports.
var Outputs = []string{OutputSVG, OutputPNG, OutputJSON, OutputText, OutputHTML}

// ParseOutput normalizes an output name ("SVG", "text" and "htm" are
// accepted).
func ParseOutput(s string) (string, error) {
	switch o := strings.ToLower(strings.TrimSpace(s)); o {
	case OutputSVG, OutputPNG, OutputJSON, OutputText, OutputHTML:
		return o, nil
	case "text":
		return OutputText, nil
	case "htm":
		return OutputHTML, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat, "unknown output %q (want one of %s)", s, strings.Join(Outputs, ", "))
	}
}

// ContentType returns the MIME type of an output.
func ContentType(output string) string {
	switch output {
	case OutputSVG:
		return "image/svg+xml"
	case OutputPNG:
		return "image/png"
	case OutputJSON:
		return "application/json"
	case OutputHTML:
		return "text/html; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}

// Export builds the grid for cfg and encodes it as output. The text output
// always carries true-color escapes, whatever terminal the process has, so
// cached artifacts are the same for every caller.
func Export(ctx context.Context, cfg grid.Config, output string) ([]byte, error) {
	cells := grid.Build(cfg)

	switch output {
	case OutputSVG:
		return RenderSVG(cells), nil
	case OutputPNG:
		return RenderPNG(ctx, ToDOT(cells, DOTOptions{}))
	case OutputJSON:
		return RenderJSON(cfg, cells)
	case OutputText:
		return []byte(RenderText(cells, WithLipglossRenderer(artifactRenderer())) + "\n"), nil
	case OutputHTML:
		return RenderHTML(cfg, cells)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown output %q", output)
	}
}

// artifactRenderer is a lipgloss renderer with a fixed true-color profile.
func artifactRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	return r
}

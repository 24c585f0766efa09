package grid

import (
	"context"
	"time"

	"github.com/matzehuels/huegrid/pkg/color"
	"github.com/matzehuels/huegrid/pkg/errors"
	"github.com/matzehuels/huegrid/pkg/observability"
)

// Copier copies text to the clipboard. *clipboard.Copier satisfies it.
type Copier interface {
	Copy(ctx context.Context, text string) error
}

// Renderer materializes grids onto a Surface.
type Renderer struct {
	surface   Surface
	copier    Copier
	converter *color.Converter
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithConverter sets the color converter. Renderers share a package-level
// converter by default.
func WithConverter(cv *color.Converter) RendererOption {
	return func(r *Renderer) { r.converter = cv }
}

// NewRenderer returns a renderer drawing onto s. Activated cells copy their
// color through c; a nil c makes activation fail with UNSUPPORTED.
func NewRenderer(s Surface, c Copier, opts ...RendererOption) *Renderer {
	r := &Renderer{surface: s, copier: c, converter: defaultConverter}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render replaces the surface contents with a rows x cols grid.
func (r *Renderer) Render(ctx context.Context, rows, cols int, format color.Format, showLabel bool) {
	r.RenderConfig(ctx, Config{Rows: rows, Cols: cols, Format: format, ShowLabel: showLabel})
}

// RenderConfig is Render with a Config.
func (r *Renderer) RenderConfig(ctx context.Context, cfg Config) {
	start := time.Now()
	hooks := observability.Render()
	hooks.OnRenderStart(ctx, cfg.Rows, cfg.Cols, cfg.Format.String())

	cells := BuildWith(r.converter, cfg)

	r.surface.Clear()
	for _, c := range cells {
		r.surface.Place(c, r.copyAction(c.Color))
	}
	r.surface.Flush()

	hooks.OnRenderComplete(ctx, len(cells), time.Since(start))
}

func (r *Renderer) copyAction(text string) Action {
	return func(ctx context.Context) error {
		if r.copier == nil {
			return errors.New(errors.ErrCodeUnsupported, "copying is not available on this surface")
		}
		return r.copier.Copy(ctx, text)
	}
}

package grid

import (
	"context"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/matzehuels/huegrid/pkg/color"
)

// State is the controller's render state.
type State int32

const (
	StateIdle State = iota
	StateUpdating
)

func (s State) String() string {
	if s == StateUpdating {
		return "updating"
	}
	return "idle"
}

// Controller owns the grid configuration and re-renders on every change.
//
// All mutations go through one lock and render synchronously, so the
// Idle -> Updating -> Idle cycle completes before the mutating call returns.
type Controller struct {
	mu       sync.Mutex
	cfg      Config
	renderer *Renderer
	state    atomic.Int32
	renders  int
}

// NewController returns a controller holding cfg (clamped into bounds).
// Nothing is rendered until Mount.
func NewController(cfg Config, r *Renderer) *Controller {
	return &Controller{cfg: cfg.Clamped(), renderer: r}
}

// Config returns a copy of the current configuration.
func (c *Controller) Config() Config {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cfg
}

// State reports whether a render is in progress.
func (c *Controller) State() State {
	return State(c.state.Load())
}

// Renders returns how many render passes the controller has triggered.
func (c *Controller) Renders() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.renders
}

// Mount performs the initial render.
func (c *Controller) Mount(ctx context.Context) {
	c.Changed(ctx)
}

// Changed re-reads the configuration and re-renders. Settings panels call it
// after editing a binding.
func (c *Controller) Changed(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.renderLocked(ctx)
}

// Apply replaces the whole configuration and re-renders.
func (c *Controller) Apply(ctx context.Context, cfg Config) {
	c.update(ctx, func(cur *Config) { *cur = cfg })
}

// SetRows sets the row count, clamped to [MinRows, MaxRows].
func (c *Controller) SetRows(ctx context.Context, rows int) {
	c.update(ctx, func(cur *Config) { cur.Rows = rows })
}

// SetCols sets the column count, clamped to [MinCols, MaxCols].
func (c *Controller) SetCols(ctx context.Context, cols int) {
	c.update(ctx, func(cur *Config) { cur.Cols = cols })
}

// SetShowLabel toggles the color labels.
func (c *Controller) SetShowLabel(ctx context.Context, show bool) {
	c.update(ctx, func(cur *Config) { cur.ShowLabel = show })
}

// SetFormat selects the color encoding. Unknown formats become HEX.
func (c *Controller) SetFormat(ctx context.Context, f color.Format) {
	c.update(ctx, func(cur *Config) { cur.Format = f })
}

func (c *Controller) update(ctx context.Context, fn func(*Config)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(&c.cfg)
	c.renderLocked(ctx)
}

func (c *Controller) renderLocked(ctx context.Context) {
	c.state.Store(int32(StateUpdating))
	defer c.state.Store(int32(StateIdle))

	c.cfg = c.cfg.Clamped()
	if c.renderer != nil {
		c.renderer.RenderConfig(ctx, c.cfg)
	}
	c.renders++
}

// =============================================================================
// Bindings
// =============================================================================

// BindingKind is the widget type a settings panel should use for a binding.
type BindingKind int

const (
	BindingInt BindingKind = iota
	BindingBool
	BindingChoice
)

// Binding exposes one configuration field to a settings panel. Nudge edits
// the field in place; the panel then calls Controller.Changed.
type Binding struct {
	Key     string
	Label   string
	Kind    BindingKind
	Min     int
	Max     int
	Step    int
	Options []string

	ctrl  *Controller
	get   func(Config) string
	nudge func(*Config, int)
}

// Value returns the current field value as text.
func (b Binding) Value() string {
	return b.get(b.ctrl.Config())
}

// Nudge moves the field by delta: steps for numbers, a toggle for booleans
// (any non-zero delta) and a cyclic move through the options for choices.
func (b Binding) Nudge(delta int) {
	b.ctrl.mu.Lock()
	defer b.ctrl.mu.Unlock()
	b.nudge(&b.ctrl.cfg, delta)
}

// Bindings describes the configuration fields in panel order.
func (c *Controller) Bindings() []Binding {
	formats := make([]string, len(color.Formats))
	for i, f := range color.Formats {
		formats[i] = f.String()
	}

	return []Binding{
		{
			Key: "rows", Label: "Rows", Kind: BindingInt,
			Min: MinRows, Max: MaxRows, Step: 1,
			ctrl: c,
			get:  func(cfg Config) string { return strconv.Itoa(cfg.Rows) },
			nudge: func(cfg *Config, d int) {
				cfg.Rows = clampInt(cfg.Rows+d, MinRows, MaxRows)
			},
		},
		{
			Key: "cols", Label: "Columns", Kind: BindingInt,
			Min: MinCols, Max: MaxCols, Step: 1,
			ctrl: c,
			get:  func(cfg Config) string { return strconv.Itoa(cfg.Cols) },
			nudge: func(cfg *Config, d int) {
				cfg.Cols = clampInt(cfg.Cols+d, MinCols, MaxCols)
			},
		},
		{
			Key: "show_label", Label: "Show Color", Kind: BindingBool,
			ctrl: c,
			get:  func(cfg Config) string { return strconv.FormatBool(cfg.ShowLabel) },
			nudge: func(cfg *Config, d int) {
				if d != 0 {
					cfg.ShowLabel = !cfg.ShowLabel
				}
			},
		},
		{
			Key: "format", Label: "Color type", Kind: BindingChoice,
			Options: formats,
			ctrl:    c,
			get:     func(cfg Config) string { return cfg.Format.String() },
			nudge: func(cfg *Config, d int) {
				i := 0
				for j, f := range color.Formats {
					if f == cfg.Format {
						i = j
						break
					}
				}
				n := len(color.Formats)
				cfg.Format = color.Formats[((i+d)%n+n)%n]
			},
		},
	}
}

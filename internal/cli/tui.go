package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/huegrid/pkg/errors"
	"github.com/matzehuels/huegrid/pkg/grid"
	"github.com/matzehuels/huegrid/pkg/notify"
	"github.com/matzehuels/huegrid/pkg/render"
)

// Panel and toast styles
var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)
	panelFocusStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	panelLabelStyle = lipgloss.NewStyle().Foreground(colorGray)

	toastStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Foreground(colorWhite)
)

const (
	panelWidth = 28 // settings panel and toast column width, borders included
	headerRows = 1  // title line above the grid
	footerRows = 1  // help line below the grid
)

// =============================================================================
// Messages
// =============================================================================

// copyDoneMsg reports the end of a tile activation.
type copyDoneMsg struct {
	row, col int
	err      error
}

// toastTickMsg prunes expired toasts.
type toastTickMsg time.Time

// reloadMsg carries a settings file change from the watcher.
type reloadMsg struct {
	cfg grid.Config
	err error
}

// watchFailedMsg reports that the settings watcher could not run.
type watchFailedMsg struct{ err error }

// =============================================================================
// Key Bindings
// =============================================================================

type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Copy  key.Binding
	Next  key.Binding
	Prev  key.Binding
	Inc   key.Binding
	Dec   key.Binding
	Panel key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Copy:  key.NewBinding(key.WithKeys("enter", " ", "space", "c"), key.WithHelp("⏎", "copy color")),
		Next:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next setting")),
		Prev:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("⇧tab", "prev setting")),
		Inc:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "increase")),
		Dec:   key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "decrease")),
		Panel: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "toggle panel")),
		Help:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:  key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Copy, k.Next, k.Inc, k.Dec, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Copy, k.Panel},
		{k.Next, k.Prev, k.Inc, k.Dec},
		{k.Help, k.Quit},
	}
}

// =============================================================================
// gridModel - Interactive color grid
// =============================================================================

// gridModel is the bubbletea model for the interactive view. The grid itself
// lives in the Buffer the Controller renders into; the model only tracks the
// cursor, the focused setting and the window size.
type gridModel struct {
	ctx      context.Context
	ctrl     *grid.Controller
	surface  *grid.Buffer
	toasts   *notify.Stack
	bindings []grid.Binding
	logger   *log.Logger

	keys keyMap
	help help.Model

	focus     int
	cursorRow int
	cursorCol int
	showPanel bool
	width     int
	height    int
}

func newGridModel(ctx context.Context, ctrl *grid.Controller, surface *grid.Buffer, toasts *notify.Stack) gridModel {
	return gridModel{
		ctx:       ctx,
		ctrl:      ctrl,
		surface:   surface,
		toasts:    toasts,
		bindings:  ctrl.Bindings(),
		logger:    loggerFromContext(ctx),
		keys:      defaultKeyMap(),
		help:      help.New(),
		cursorRow: 1,
		cursorCol: 1,
		showPanel: true,
		width:     80,
		height:    24,
	}
}

func (m gridModel) Init() tea.Cmd {
	return nil
}

func (m gridModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		row, col, ok := m.hitTest(msg.X, msg.Y)
		if !ok {
			return m, nil
		}
		m.cursorRow, m.cursorCol = row, col
		return m, m.copyCmd(row, col)

	case copyDoneMsg:
		if msg.err != nil {
			m.logger.Debug("activation failed", "row", msg.row, "col", msg.col, "err", errors.UserMessage(msg.err))
		}
		return m, m.pruneCmd()

	case toastTickMsg:
		m.toasts.Prune()
		return m, m.pruneCmd()

	case reloadMsg:
		if msg.err != nil {
			m.toasts.Notify(notify.KindError, "Settings not reloaded: "+errors.UserMessage(msg.err))
			return m, m.pruneCmd()
		}
		m.ctrl.Apply(m.ctx, msg.cfg)
		m.clampCursor()
		m.toasts.Notify(notify.KindInfo, "Settings reloaded")
		return m, m.pruneCmd()

	case watchFailedMsg:
		m.toasts.Notify(notify.KindError, "Not watching settings: "+errors.UserMessage(msg.err))
		return m, m.pruneCmd()
	}
	return m, nil
}

func (m gridModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows, cols := m.surface.Dimensions()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.cursorRow = max(m.cursorRow-1, 1)
	case key.Matches(msg, m.keys.Down):
		m.cursorRow = min(m.cursorRow+1, max(rows, 1))
	case key.Matches(msg, m.keys.Left):
		m.cursorCol = max(m.cursorCol-1, 1)
	case key.Matches(msg, m.keys.Right):
		m.cursorCol = min(m.cursorCol+1, max(cols, 1))
	case key.Matches(msg, m.keys.Copy):
		return m, m.copyCmd(m.cursorRow, m.cursorCol)
	case key.Matches(msg, m.keys.Next):
		m.focus = (m.focus + 1) % len(m.bindings)
	case key.Matches(msg, m.keys.Prev):
		m.focus = (m.focus - 1 + len(m.bindings)) % len(m.bindings)
	case key.Matches(msg, m.keys.Inc):
		m.nudge(+1)
	case key.Matches(msg, m.keys.Dec):
		m.nudge(-1)
	case key.Matches(msg, m.keys.Panel):
		m.showPanel = !m.showPanel
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// nudge edits the focused setting and lets the controller re-render.
func (m *gridModel) nudge(delta int) {
	m.bindings[m.focus].Nudge(delta)
	m.ctrl.Changed(m.ctx)
	m.clampCursor()
}

func (m *gridModel) clampCursor() {
	rows, cols := m.surface.Dimensions()
	m.cursorRow = min(max(m.cursorRow, 1), max(rows, 1))
	m.cursorCol = min(max(m.cursorCol, 1), max(cols, 1))
}

// copyCmd activates a tile off the event loop. The Copier reports the
// outcome to the toast stack; the message only triggers a redraw.
func (m gridModel) copyCmd(row, col int) tea.Cmd {
	ctx, surface := m.ctx, m.surface
	return func() tea.Msg {
		return copyDoneMsg{row: row, col: col, err: surface.Activate(ctx, row, col)}
	}
}

func (m gridModel) pruneCmd() tea.Cmd {
	d, ok := m.toasts.NextExpiry()
	if !ok {
		return nil
	}
	return tea.Tick(d, func(t time.Time) tea.Msg { return toastTickMsg(t) })
}

// =============================================================================
// Layout
// =============================================================================

// sideFits reports whether the toast and panel column fits right of the
// grid with at least one terminal column per tile. Before the first
// resize the width is unknown and the column is assumed to fit.
func (m gridModel) sideFits() bool {
	_, cols := m.surface.Dimensions()
	return m.width == 0 || cols <= m.width-panelWidth
}

// panelVisible is the panel toggle, overridden for grids too wide to share
// the terminal with it.
func (m gridModel) panelVisible() bool {
	return m.showPanel && m.sideFits()
}

// gridWidth is the number of terminal columns the tiles may use.
func (m gridModel) gridWidth() int {
	if m.panelVisible() {
		return m.width - panelWidth
	}
	return m.width
}

// cellSize fits the grid into the space left of the panel.
func (m gridModel) cellSize() (w, h int) {
	rows, cols := m.surface.Dimensions()
	if rows == 0 || cols == 0 {
		return 1, 1
	}
	w = max(m.gridWidth()/cols, 1)
	h = max((m.height-headerRows-footerRows)/rows, 1)
	return w, h
}

// hitTest maps a terminal position to a tile. Positions past the grid's
// share of the terminal never hit, even when the tiles overflow it.
func (m gridModel) hitTest(x, y int) (row, col int, ok bool) {
	rows, cols := m.surface.Dimensions()
	w, h := m.cellSize()
	y -= headerRows
	if x < 0 || y < 0 || (m.width > 0 && x >= m.gridWidth()) {
		return 0, 0, false
	}
	row, col = y/h+1, x/w+1
	if row > rows || col > cols {
		return 0, 0, false
	}
	return row, col, true
}

func (m gridModel) View() string {
	w, h := m.cellSize()
	cfg := m.ctrl.Config()

	title := StyleTitle.Render(appName) + StyleDim.Render(fmt.Sprintf("  %d×%d · %s", cfg.Rows, cfg.Cols, cfg.Format))
	if c, ok := m.surface.At(m.cursorRow, m.cursorCol); ok {
		title += StyleDim.Render(" · ") + StyleValue.Render(c.Color)
	}

	body := render.RenderText(m.surface.Cells(),
		render.WithTextCellSize(w, h),
		render.WithCursor(m.cursorRow, m.cursorCol))

	// Toasts go under a grid that leaves no room beside it, so they never
	// shift the tiles the mouse maps onto.
	if side := m.sideView(); side != "" {
		if m.sideFits() {
			body = lipgloss.JoinHorizontal(lipgloss.Top, body, side)
		} else {
			body = lipgloss.JoinVertical(lipgloss.Left, body, side)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, body, m.help.View(m.keys))
}

// sideView stacks the toasts above the settings panel on the right.
func (m gridModel) sideView() string {
	var parts []string
	for _, t := range m.toasts.Visible() {
		style := toastStyle.Width(panelWidth - 2).BorderForeground(kindColor(t.Kind))
		parts = append(parts, style.Render(t.Message))
	}
	if m.panelVisible() {
		parts = append(parts, m.panelView())
	}
	if len(parts) == 0 {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Right, parts...)
}

func (m gridModel) panelView() string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render("Config"))
	for i, bind := range m.bindings {
		b.WriteString("\n")
		label := panelLabelStyle.Render(fmt.Sprintf("%-11s", bind.Label))
		value := bind.Value()
		if i == m.focus {
			b.WriteString(panelFocusStyle.Render("› ") + label + panelFocusStyle.Render("◂ "+value+" ▸"))
		} else {
			b.WriteString("  " + label + "  " + StyleValue.Render(value))
		}
	}
	return panelStyle.Width(panelWidth - 2).Render(b.String())
}

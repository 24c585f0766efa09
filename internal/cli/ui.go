package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/huegrid/pkg/notify"
)

// Terminal palette (ANSI 256).
var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorRed   = lipgloss.Color("167")
	colorBlue  = lipgloss.Color("75")
	colorWhite = lipgloss.Color("255")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")
)

// Shared text styles for the CLI and the interactive viewer.
var (
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	StyleDim   = lipgloss.NewStyle().Foreground(colorDim)
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
	styleKey         = lipgloss.NewStyle().Foreground(colorGray).Width(12)
)

// statusMark is the icon and color used for one notification kind, both on
// status lines and on toast borders.
type statusMark struct {
	icon  string
	color lipgloss.Color
}

var statusMarks = map[notify.Kind]statusMark{
	notify.KindSuccess: {"✓", colorGreen},
	notify.KindError:   {"✗", colorRed},
	notify.KindInfo:    {"›", colorBlue},
}

// kindColor returns the accent color for kind, gray when unknown.
func kindColor(kind notify.Kind) lipgloss.Color {
	if m, ok := statusMarks[kind]; ok {
		return m.color
	}
	return colorGray
}

// stdout receives status lines. Tests swap it for a buffer.
var stdout io.Writer = os.Stdout

// printStatus writes one icon-prefixed status line.
func printStatus(kind notify.Kind, format string, args ...any) {
	m := statusMarks[kind]
	icon := lipgloss.NewStyle().Foreground(kindColor(kind)).Render(m.icon)
	fmt.Fprintln(stdout, icon+" "+fmt.Sprintf(format, args...))
}

func printSuccess(format string, args ...any) { printStatus(notify.KindSuccess, format, args...) }
func printError(format string, args ...any)   { printStatus(notify.KindError, format, args...) }
func printInfo(format string, args ...any)    { printStatus(notify.KindInfo, format, args...) }

// printDetail writes an indented, dimmed line under a status line.
func printDetail(format string, args ...any) {
	fmt.Fprintln(stdout, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile writes an output path and whether it came from the cache.
func printFile(path string, cached bool) {
	origin := lipgloss.NewStyle().Foreground(colorGray).Render("fresh")
	if cached {
		origin = lipgloss.NewStyle().Foreground(colorGreen).Render("cached")
	}
	fmt.Fprintln(stdout, "  "+StyleDim.Render("→")+" "+StyleValue.Render(path)+StyleDim.Render(" · ")+origin)
}

func printKeyValue(key, value string) {
	fmt.Fprintln(stdout, styleKey.Render(key)+" "+StyleValue.Render(value))
}

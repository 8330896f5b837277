package display

import (
	"github.com/charmbracelet/lipgloss"
)

// ANSI palette used by the monitor.
var (
	colorGreen   = lipgloss.Color("2")
	colorRed     = lipgloss.Color("1")
	colorYellow  = lipgloss.Color("3")
	colorBlue    = lipgloss.Color("4")
	colorMagenta = lipgloss.Color("5")
	colorCyan    = lipgloss.Color("6")
)

// styles holds the rendered styles for one renderer.
type styles struct {
	bright  lipgloss.Style
	success lipgloss.Style
	errored lipgloss.Style
	warn    lipgloss.Style
	info    lipgloss.Style
	event   lipgloss.Style
	accent  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		bright:  r.NewStyle().Bold(true),
		success: r.NewStyle().Foreground(colorGreen),
		errored: r.NewStyle().Foreground(colorRed),
		warn:    r.NewStyle().Foreground(colorYellow),
		info:    r.NewStyle().Foreground(colorBlue),
		event:   r.NewStyle().Foreground(colorMagenta),
		accent:  r.NewStyle().Foreground(colorCyan),
	}
}

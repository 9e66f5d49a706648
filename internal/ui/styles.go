// Package ui renders the human-facing terminal output. Structured
// diagnostics go through slog; this package carries what the user reads.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	ColorGreen  = lipgloss.Color("2")
	ColorYellow = lipgloss.Color("3")
	ColorRed    = lipgloss.Color("1")
	ColorGray   = lipgloss.Color("8")
	ColorCyan   = lipgloss.Color("6")
)

var (
	okStyle    = lipgloss.NewStyle().Foreground(ColorGreen)
	warnStyle  = lipgloss.NewStyle().Foreground(ColorYellow)
	errorStyle = lipgloss.NewStyle().Foreground(ColorRed)
	debugStyle = lipgloss.NewStyle().Foreground(ColorGray).Bold(true)
	fieldStyle = lipgloss.NewStyle().Foreground(ColorCyan)
)

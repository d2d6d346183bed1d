// Package style holds the terminal styles of the cargolock command.
package style

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	PathStyle = lipgloss.NewStyle().
			Foreground(PathColor).
			Italic(true)

	// Diff lines
	InsertStyle = lipgloss.NewStyle().Foreground(SuccessColor)
	DeleteStyle = lipgloss.NewStyle().Foreground(ErrorColor)
)

// Render applies s when color is true and returns text untouched otherwise.
func Render(s lipgloss.Style, text string, color bool) string {
	if !color {
		return text
	}
	return s.Render(text)
}

// Package tui hosts the location selection workflow in a terminal UI.
package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	colorAccent  = lipgloss.Color("#8BC34A")
	colorMuted   = lipgloss.Color("#6b7280")
	colorError   = lipgloss.Color("#e53935")
	colorWarning = lipgloss.Color("#FFC107")

	// The form border blends between these by the validity indicator's progress.
	validBorder   = mustHex("#4db6ac")
	invalidBorder = mustHex("#e53935")
)

// Styles holds the lipgloss styles of every view.
type Styles struct {
	Title    lipgloss.Style
	Subtle   lipgloss.Style
	Selected lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
	Label    lipgloss.Style
	Card     lipgloss.Style
	Form     lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(colorAccent).MarginBottom(1),
		Subtle:   lipgloss.NewStyle().Foreground(colorMuted),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		Error:    lipgloss.NewStyle().Foreground(colorError),
		Warning:  lipgloss.NewStyle().Foreground(colorWarning),
		Label:    lipgloss.NewStyle().Width(14).Foreground(colorMuted),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1),
		Form: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1),
	}
}

// borderColor blends the form border for an indicator progress in [0, 1].
func borderColor(progress float64) lipgloss.Color {
	progress = min(max(progress, 0), 1)

	return lipgloss.Color(validBorder.BlendLab(invalidBorder, progress).Clamped().Hex())
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}

	return c
}

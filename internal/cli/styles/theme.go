// Package styles provides reusable lipgloss-based TUI components.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme holds lipgloss colors and styles for the playground TUI.
type Theme struct {
	Background lipgloss.Color
	Surface    lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Border     lipgloss.Color

	Error   lipgloss.Color
	Success lipgloss.Color

	Title     lipgloss.Style
	Subtle    lipgloss.Style
	Highlight lipgloss.Style

	DockedRegion lipgloss.Style
	OtherRegion  lipgloss.Style
	Divider      lipgloss.Style
	StatusBar    lipgloss.Style
}

// NewTheme returns the default dark theme.
func NewTheme() *Theme {
	t := &Theme{
		Background: lipgloss.Color("#0a0a0b"),
		Surface:    lipgloss.Color("#1a1a1b"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#909090"),
		Accent:     lipgloss.Color("#4ade80"),
		Border:     lipgloss.Color("#333333"),
		Error:      lipgloss.Color("#f87171"),
		Success:    lipgloss.Color("#4ade80"),
	}

	t.Title = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	t.Subtle = lipgloss.NewStyle().Foreground(t.Muted)
	t.Highlight = lipgloss.NewStyle().Foreground(t.Text).Bold(true)

	t.DockedRegion = lipgloss.NewStyle().
		Background(lipgloss.Color("#14532d")).
		Foreground(t.Text).
		Align(lipgloss.Center, lipgloss.Center)
	t.OtherRegion = lipgloss.NewStyle().
		Background(lipgloss.Color("#1e3a5f")).
		Foreground(t.Text).
		Align(lipgloss.Center, lipgloss.Center)
	t.Divider = lipgloss.NewStyle().
		Background(t.Border).
		Foreground(t.Muted)
	t.StatusBar = lipgloss.NewStyle().
		Foreground(t.Muted).
		Padding(0, 1)

	return t
}

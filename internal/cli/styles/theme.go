// Package styles provides reusable lipgloss-based TUI components.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Dark palette.
const (
	colorBackground = "#0a0a0b"
	colorSurface    = "#1a1a1b"
	colorRaised     = "#2d2d2d"
	colorText       = "#ffffff"
	colorMuted      = "#909090"
	colorAccent     = "#38bdf8"
	colorBorder     = "#333333"
	colorError      = "#ef4444"
	colorWarning    = "#f59e0b"
	colorSuccess    = "#4ade80"
)

// Theme holds the colors and styles shared by every renderer and the preview.
type Theme struct {
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Border     lipgloss.Color
	Error      lipgloss.Color
	Success    lipgloss.Color

	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style

	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style
	Badge       lipgloss.Style
	BadgeMuted  lipgloss.Style
	HelpKey     lipgloss.Style
	HelpDesc    lipgloss.Style
	Box         lipgloss.Style

	// Preview canvas
	PanelFrame    lipgloss.Style
	FloatingFrame lipgloss.Style
	DropZone      lipgloss.Style
}

// NewTheme creates the dark theme.
func NewTheme() *Theme {
	t := &Theme{
		Background: lipgloss.Color(colorBackground),
		Text:       lipgloss.Color(colorText),
		Muted:      lipgloss.Color(colorMuted),
		Accent:     lipgloss.Color(colorAccent),
		Border:     lipgloss.Color(colorBorder),
		Error:      lipgloss.Color(colorError),
		Success:    lipgloss.Color(colorSuccess),
	}
	warning := lipgloss.Color(colorWarning)
	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }

	t.Title = fg(t.Text).Bold(true)
	t.Subtitle = fg(t.Muted).Bold(true)
	t.Normal = fg(t.Text)
	t.Subtle = fg(t.Muted)
	t.Highlight = fg(t.Accent).Bold(true)
	t.ErrorStyle = fg(t.Error)
	t.WarningStyle = fg(warning)
	t.SuccessStyle = fg(t.Success)

	t.ActiveTab = fg(t.Background).Background(t.Accent).Bold(true)
	t.InactiveTab = fg(t.Muted).Background(lipgloss.Color(colorSurface))
	t.Badge = fg(t.Background).Background(t.Accent).Padding(0, 1)
	t.BadgeMuted = fg(t.Text).Background(lipgloss.Color(colorRaised)).Padding(0, 1)
	t.HelpKey = fg(t.Accent)
	t.HelpDesc = fg(t.Muted)
	t.Box = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)

	t.PanelFrame = fg(t.Border)
	t.FloatingFrame = fg(warning)
	t.DropZone = fg(t.Background).Background(t.Accent)
	return t
}

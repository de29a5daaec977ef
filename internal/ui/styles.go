package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tiwariParth/go-task-manager/internal/models"
)

var (
	ColorRed    = lipgloss.Color("#E06C75")
	ColorYellow = lipgloss.Color("#E5C07B")
	ColorGreen  = lipgloss.Color("#98C379")
	ColorBlue   = lipgloss.Color("#61AFEF")
	ColorMuted  = lipgloss.Color("#636B78")
	ColorDark   = lipgloss.Color("#282C34")
	ColorBorder = lipgloss.Color("#3F4451")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorBlue).
			Bold(true).
			MarginBottom(1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Width(10)

	FocusedLabelStyle = LabelStyle.
				Foreground(ColorBlue).
				Bold(true)

	ListStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	FocusedListStyle = ListStyle.
				BorderForeground(ColorBlue)

	CompletedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// priorityStyle returns the row style for a pending item.
func priorityStyle(p models.Priority) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true).Foreground(ColorDark)
	switch p {
	case models.High:
		return base.Background(ColorRed)
	case models.Medium:
		return base.Background(ColorYellow)
	default:
		return base.Background(ColorGreen)
	}
}

package viz

import "github.com/charmbracelet/lipgloss"

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ccff"))

	LegendStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899")).
			Italic(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666688"))

	ValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ff88"))

	WarnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffaa00"))
)

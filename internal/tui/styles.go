package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	brandStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F5B700"))
	navStyle        = lipgloss.NewStyle().Faint(true)
	navActiveStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	eyebrowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F5B700"))
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E5484D"))
	successStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#30A46C"))
	buttonStyle     = lipgloss.NewStyle().Bold(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)

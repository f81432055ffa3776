package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#dc2626"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	focusStyle   = lipgloss.NewStyle().Reverse(true)
	validStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#16a34a"))
	invalidStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#dc2626"))
	fadingStyle  = lipgloss.NewStyle().Faint(true)
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#16a34a")).Padding(0, 1)

	notificationStyles = map[string]lipgloss.Style{
		"success": lipgloss.NewStyle().Foreground(lipgloss.Color("#16a34a")),
		"error":   lipgloss.NewStyle().Foreground(lipgloss.Color("#dc2626")),
		"info":    lipgloss.NewStyle().Foreground(lipgloss.Color("#2563EB")),
	}

	strengthStyles = map[string]lipgloss.Style{
		"weak":   lipgloss.NewStyle().Foreground(lipgloss.Color("#dc2626")),
		"fair":   lipgloss.NewStyle().Foreground(lipgloss.Color("#f59e0b")),
		"good":   lipgloss.NewStyle().Foreground(lipgloss.Color("#2563EB")),
		"strong": lipgloss.NewStyle().Foreground(lipgloss.Color("#16a34a")),
	}
)

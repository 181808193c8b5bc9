package preview

import (
	"scheduleSheet/internal/schedule"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#4472C4")).
			Padding(0, 1)
	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			Background(lipgloss.Color("235"))
	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#6366f1")).
			Width(18)
)

// statusColors follow the four standard statuses
var statusColors = map[string]lipgloss.Color{
	schedule.StatusNotStarted: lipgloss.Color("#9ca3af"),
	schedule.StatusPreparing:  lipgloss.Color("#3b82f6"),
	schedule.StatusVerifying:  lipgloss.Color("#ef4444"),
	schedule.StatusDone:       lipgloss.Color("#10b981"),
}

func statusBadge(status string) string {
	color, ok := statusColors[status]
	if !ok {
		color = statusColors[schedule.StatusNotStarted]
	}
	return lipgloss.NewStyle().Foreground(color).Bold(true).Render(status)
}

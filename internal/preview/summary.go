package preview

import (
	"fmt"
	"path/filepath"
	"strings"

	"scheduleSheet/internal/excel"
	"scheduleSheet/internal/schedule"

	"github.com/charmbracelet/lipgloss"
)

// RenderSummary describes a schedule read back from a workbook, one block per
// environment batch
func RenderSummary(result *excel.ReadResult) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("%s › %s", filepath.Base(result.File), result.Sheet)))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("header row %d · %d records · %d skipped",
		result.HeaderRow, len(result.Records), result.Skipped)))
	b.WriteString("\n")

	if len(result.Unmatched) > 0 {
		b.WriteString(helpStyle.Render("unmapped headers: " + strings.Join(result.Unmatched, ", ")))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for _, g := range schedule.GroupRecords(result.Records) {
		b.WriteString(renderGroup(g))
		b.WriteString("\n")
	}

	return b.String()
}

func renderGroup(g schedule.Group) string {
	heading := headerStyle.Render(fmt.Sprintf("%s · %s", g.Environment, g.Batch))

	var lines []string
	lines = append(lines, labelStyle.Render("環境目的")+g.Purpose)
	if g.Start.IsZero() {
		lines = append(lines, labelStyle.Render("期間")+"-")
	} else {
		lines = append(lines, labelStyle.Render("期間")+fmt.Sprintf("%s ~ %s (%d 天)",
			g.Start.Format(schedule.DateLayout), g.End.Format(schedule.DateLayout), g.Days()))
	}

	badges := make([]string, len(g.Statuses))
	for i, s := range g.Statuses {
		badges[i] = statusBadge(s)
	}
	lines = append(lines, labelStyle.Render("狀態")+strings.Join(badges, " "))

	for i, task := range g.Tasks {
		lines = append(lines, normalStyle.Render(fmt.Sprintf("  %d. %s", i+1, task)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, heading, strings.Join(lines, "\n"))
}

package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/taskora/internal/analytics"
	"github.com/alexanderramin/taskora/internal/domain"
)

// FormatSummary renders an analytics summary inside a titled box.
func FormatSummary(title string, s analytics.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d of %d\n", Bold("Completed"), s.CompletedTasks, s.TotalTasks)
	fmt.Fprintf(&b, "%s %s\n", Bold("Completion"), RenderProgress(s.CompletionRate, 20))
	fmt.Fprintf(&b, "%s %s\n\n", Bold("Productivity"), RenderProgress(s.ProductivityScore, 20))

	rows := make([][]string, 0, len(domain.AllPriorities()))
	for _, p := range domain.AllPriorities() {
		rows = append(rows, []string{PriorityBadge(p), fmt.Sprint(s.TasksByPriority[p])})
	}
	b.WriteString(RenderTable([]string{"PRIORITY", "TASKS"}, rows))
	b.WriteString("\n")

	rows = rows[:0]
	for _, st := range domain.AllStatuses() {
		rows = append(rows, []string{StatusPill(st), fmt.Sprint(s.TasksByStatus[st])})
	}
	b.WriteString(RenderTable([]string{"STATUS", "TASKS"}, rows))

	return RenderBox(title, strings.TrimRight(b.String(), "\n"))
}

package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/taskora/internal/analytics"
	"github.com/alexanderramin/taskora/internal/domain"
)

// FormatTaskList renders tasks as a table. now anchors the due column.
func FormatTaskList(tasks []domain.Task, now time.Time) string {
	if len(tasks) == 0 {
		return Dim("No tasks.")
	}
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		title := t.Title
		if t.Shared() {
			title += " " + StylePurple.Render("(tribe)")
		}
		rows = append(rows, []string{
			TruncID(t.ID),
			title,
			PriorityBadge(t.Priority),
			StatusPill(t.Status),
			DueLabel(t.DueDate, now),
		})
	}
	return RenderTable([]string{"ID", "TITLE", "PRIORITY", "STATUS", "DUE"}, rows)
}

// FormatBoard renders the board counters followed by each matrix quadrant.
func FormatBoard(stats analytics.BoardStats, quadrants []analytics.Quadrant) string {
	var b strings.Builder
	b.WriteString(Header("Board"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %d   %s %d   %s %d   %s %d\n\n",
		Dim("total"), stats.Total,
		Dim("completed"), stats.Completed,
		Dim("in progress"), stats.InProgress,
		Dim("shared"), stats.Shared,
	)

	for _, q := range quadrants {
		fmt.Fprintf(&b, "%s %s\n", PriorityBadge(q.Priority), Dim(fmt.Sprintf("(%d)", len(q.Tasks))))
		if len(q.Tasks) == 0 {
			b.WriteString("  " + Dim("empty") + "\n")
		}
		for _, t := range q.Tasks {
			fmt.Fprintf(&b, "  %s %s\n", StatusPill(t.Status), t.Title)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

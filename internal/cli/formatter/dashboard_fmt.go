package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/taskora/internal/contract"
)

// FormatDashboard renders the home view: plan, task summary and
// achievement progress.
func FormatDashboard(d *contract.DashboardResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", FormatPlan(d.Plan))
	fmt.Fprintf(&b, "%s %d\n\n", Bold("Tribes:"), d.TribeCount)
	fmt.Fprintf(&b, "%s %d/%d %s\n", Bold("Tasks done:"), d.Summary.CompletedTasks, d.Summary.TotalTasks,
		RenderProgress(d.Summary.CompletionRate, 20))
	fmt.Fprintf(&b, "%s %s\n", Bold("Productivity:"), RenderProgress(d.Summary.ProductivityScore, 20))
	fmt.Fprintf(&b, "%s %d/%d %s", Bold("Achievements:"), d.Achievements.EarnedCount, len(d.Achievements.Items),
		Dim(fmt.Sprintf("(%d pts)", d.Achievements.TotalPoints)))
	return RenderBox("Dashboard "+d.UserID, b.String())
}

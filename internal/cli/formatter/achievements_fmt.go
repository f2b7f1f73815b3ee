package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/taskora/internal/analytics"
)

func FormatAchievements(p analytics.AchievementProgress) string {
	if len(p.Items) == 0 {
		return Dim("No achievements defined. Run 'taskora achievements seed'.")
	}

	rows := make([][]string, 0, len(p.Items))
	for _, a := range p.Items {
		mark := Dim("○")
		earned := Dim("--")
		if a.Earned {
			mark = StyleGreen.Render("✔")
			earned = a.EarnedAt.Format("2006-01-02")
		}
		rows = append(rows, []string{mark, a.Title, fmt.Sprint(a.Points), a.Category, earned, TruncID(a.ID)})
	}

	var b strings.Builder
	b.WriteString(RenderTable([]string{"", "ACHIEVEMENT", "POINTS", "CATEGORY", "EARNED", "ID"}, rows))
	fmt.Fprintf(&b, "\n%s %d/%d  %s %d  %s",
		Bold("Unlocked"), p.EarnedCount, len(p.Items),
		Bold("Points"), p.TotalPoints,
		RenderProgress(p.Percent, 20),
	)
	return b.String()
}

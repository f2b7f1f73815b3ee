package analytics

import (
	"time"

	"github.com/alexanderramin/taskora/internal/domain"
)

// AchievementView is an achievement annotated with the user's progress on it.
type AchievementView struct {
	domain.Achievement
	Earned   bool       `json:"earned"`
	EarnedAt *time.Time `json:"earned_at,omitempty"`
}

// AchievementProgress summarizes how much of the achievement catalog a user
// has unlocked.
type AchievementProgress struct {
	Items       []AchievementView `json:"items"`
	EarnedCount int               `json:"earned_count"`
	TotalPoints int               `json:"total_points"`
	Percent     int               `json:"percent"`
}

// Achievements joins the catalog with the user's earned records. Catalog
// order is preserved. Earned records pointing at unknown achievements are
// ignored.
func Achievements(catalog []domain.Achievement, earned []domain.UserAchievement) AchievementProgress {
	earnedAt := make(map[string]time.Time, len(earned))
	for _, ua := range earned {
		if prev, ok := earnedAt[ua.AchievementID]; !ok || ua.EarnedAt.Before(prev) {
			earnedAt[ua.AchievementID] = ua.EarnedAt
		}
	}

	p := AchievementProgress{Items: make([]AchievementView, 0, len(catalog))}
	for _, a := range catalog {
		v := AchievementView{Achievement: a}
		if at, ok := earnedAt[a.ID]; ok {
			at := at
			v.Earned = true
			v.EarnedAt = &at
			p.EarnedCount++
			p.TotalPoints += a.Points
		}
		p.Items = append(p.Items, v)
	}
	if len(catalog) > 0 {
		p.Percent = domain.PercentHalfUp(int64(p.EarnedCount), int64(len(catalog)))
	}
	return p
}

package domain

import "time"

type Achievement struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon,omitempty"`
	Points      int       `json:"points"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}

// UserAchievement records that a user earned an achievement.
type UserAchievement struct {
	ID            string
	UserID        string
	AchievementID string
	EarnedAt      time.Time
}

package contract

import (
	"github.com/alexanderramin/taskora/internal/analytics"
	"github.com/alexanderramin/taskora/internal/pricing"
)

// AnalyticsRequest scopes an analytics computation. With TribeID set the
// tribe's shared tasks are aggregated instead of the user's own.
type AnalyticsRequest struct {
	UserID  string
	TribeID string
}

type AnalyticsResponse struct {
	UserID  string            `json:"user_id"`
	TribeID string            `json:"tribe_id,omitempty"`
	Summary analytics.Summary `json:"summary"`
}

type BoardResponse struct {
	Stats     analytics.BoardStats `json:"stats"`
	Quadrants []analytics.Quadrant `json:"quadrants"`
}

type PricingResponse struct {
	Tiers []pricing.DisplayTier `json:"tiers"`
}

// DashboardResponse is everything the home view shows in one round trip.
type DashboardResponse struct {
	UserID       string                        `json:"user_id"`
	Summary      analytics.Summary             `json:"summary"`
	Achievements analytics.AchievementProgress `json:"achievements"`
	Plan         pricing.Plan                  `json:"plan"`
	TribeCount   int                           `json:"tribe_count"`
}

package service

import (
	"context"

	"github.com/alexanderramin/taskora/internal/analytics"
	"github.com/alexanderramin/taskora/internal/contract"
	"github.com/alexanderramin/taskora/internal/domain"
	"github.com/alexanderramin/taskora/internal/pricing"
)

type TaskService interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Task, error)
	ListByTribe(ctx context.Context, tribeID string) ([]domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	SetStatus(ctx context.Context, id string, status domain.TaskStatus) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
}

type TribeService interface {
	Create(ctx context.Context, name, description, ownerID string) (*domain.Tribe, error)
	Join(ctx context.Context, tribeID, userID string) (*domain.TribeMember, error)
	ListForUser(ctx context.Context, userID string) ([]domain.Tribe, error)
	Members(ctx context.Context, tribeID string) ([]domain.TribeMember, error)
}

type AnalyticsService interface {
	GetAnalytics(ctx context.Context, req contract.AnalyticsRequest) (*contract.AnalyticsResponse, error)
	GetBoard(ctx context.Context, userID string) (*contract.BoardResponse, error)
}

type PricingService interface {
	Tiers(ctx context.Context) (*contract.PricingResponse, error)
	CurrentPlan(ctx context.Context, userID string) (pricing.Plan, error)
	SetPlan(ctx context.Context, userID, priceID string, status domain.SubscriptionStatus) (pricing.Plan, error)
}

type AchievementService interface {
	Seed(ctx context.Context) (int, error)
	Progress(ctx context.Context, userID string) (analytics.AchievementProgress, error)
	Award(ctx context.Context, userID, achievementID string) error
}

type DashboardService interface {
	Dashboard(ctx context.Context, userID string) (*contract.DashboardResponse, error)
}

package repository

import (
	"context"

	"github.com/alexanderramin/taskora/internal/domain"
)

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Task, error)
	ListByTribe(ctx context.Context, tribeID string) ([]domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id string) error
}

type TribeRepo interface {
	Create(ctx context.Context, t *domain.Tribe) error
	GetByID(ctx context.Context, id string) (*domain.Tribe, error)
	ListForUser(ctx context.Context, userID string) ([]domain.Tribe, error)
	AddMember(ctx context.Context, m *domain.TribeMember) error
	ListMembers(ctx context.Context, tribeID string) ([]domain.TribeMember, error)
	IsMember(ctx context.Context, tribeID, userID string) (bool, error)
}

type AchievementRepo interface {
	Upsert(ctx context.Context, a *domain.Achievement) error
	List(ctx context.Context) ([]domain.Achievement, error)
	GetByID(ctx context.Context, id string) (*domain.Achievement, error)
	Award(ctx context.Context, ua *domain.UserAchievement) error
	ListEarned(ctx context.Context, userID string) ([]domain.UserAchievement, error)
}

type SubscriptionRepo interface {
	// Get returns nil, nil when the user has no subscription record.
	Get(ctx context.Context, userID string) (*domain.Subscription, error)
	Upsert(ctx context.Context, s *domain.Subscription) error
}

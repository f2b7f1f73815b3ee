package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/taskora/internal/analytics"
	"github.com/alexanderramin/taskora/internal/domain"
	"github.com/alexanderramin/taskora/internal/repository"
	"github.com/google/uuid"
)

type achievementService struct {
	achievements repository.AchievementRepo
	observer     UseCaseObserver
}

func NewAchievementService(achievements repository.AchievementRepo, observers ...UseCaseObserver) AchievementService {
	return &achievementService{
		achievements: achievements,
		observer:     useCaseObserverOrNoop(observers),
	}
}

// DefaultAchievements is the catalog installed by Seed.
func DefaultAchievements() []domain.Achievement {
	return []domain.Achievement{
		{Title: "First Steps", Description: "Create your first task", Icon: "🌱", Points: 10, Category: "tasks"},
		{Title: "Finisher", Description: "Complete 10 tasks", Icon: "✅", Points: 25, Category: "tasks"},
		{Title: "Firefighter", Description: "Complete 5 urgent & important tasks", Icon: "🔥", Points: 40, Category: "focus"},
		{Title: "Tribe Founder", Description: "Create a tribe", Icon: "🏕", Points: 50, Category: "tribes"},
		{Title: "Team Player", Description: "Complete a task shared with your tribe", Icon: "🤝", Points: 30, Category: "tribes"},
		{Title: "Strategist", Description: "Keep 20 not urgent & important tasks on the board", Icon: "🧭", Points: 75, Category: "focus"},
	}
}

// Seed installs the default catalog, refreshing entries that already exist.
func (s *achievementService) Seed(ctx context.Context) (n int, err error) {
	done := observe(ctx, s.observer, "seed-achievements", nil)
	defer func() { done(err) }()

	now := time.Now().UTC()
	for _, a := range DefaultAchievements() {
		a.ID = uuid.New().String()
		a.CreatedAt = now
		if err = s.achievements.Upsert(ctx, &a); err != nil {
			return n, fmt.Errorf("seeding %q: %w", a.Title, err)
		}
		n++
	}
	return n, nil
}

func (s *achievementService) Progress(ctx context.Context, userID string) (analytics.AchievementProgress, error) {
	catalog, err := s.achievements.List(ctx)
	if err != nil {
		return analytics.AchievementProgress{}, err
	}
	earned, err := s.achievements.ListEarned(ctx, userID)
	if err != nil {
		return analytics.AchievementProgress{}, err
	}
	return analytics.Achievements(catalog, earned), nil
}

func (s *achievementService) Award(ctx context.Context, userID, achievementID string) (err error) {
	done := observe(ctx, s.observer, "award-achievement", map[string]any{"user": userID, "achievement": achievementID})
	defer func() { done(err) }()

	if _, err = s.achievements.GetByID(ctx, achievementID); err != nil {
		return err
	}
	return s.achievements.Award(ctx, &domain.UserAchievement{
		ID:            uuid.New().String(),
		UserID:        userID,
		AchievementID: achievementID,
		EarnedAt:      time.Now().UTC(),
	})
}

package service

import (
	"context"

	"github.com/alexanderramin/taskora/internal/contract"
	"golang.org/x/sync/errgroup"
)

type dashboardService struct {
	analytics    AnalyticsService
	achievements AchievementService
	pricing      PricingService
	tribes       TribeService
	observer     UseCaseObserver
}

func NewDashboardService(
	analytics AnalyticsService,
	achievements AchievementService,
	pricing PricingService,
	tribes TribeService,
	observers ...UseCaseObserver,
) DashboardService {
	return &dashboardService{
		analytics:    analytics,
		achievements: achievements,
		pricing:      pricing,
		tribes:       tribes,
		observer:     useCaseObserverOrNoop(observers),
	}
}

// Dashboard loads the home view's sections in parallel. The first failing
// section cancels the rest and its error is returned.
func (s *dashboardService) Dashboard(ctx context.Context, userID string) (resp *contract.DashboardResponse, err error) {
	done := observe(ctx, s.observer, "dashboard", map[string]any{"user": userID})
	defer func() { done(err) }()

	out := &contract.DashboardResponse{UserID: userID}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a, err := s.analytics.GetAnalytics(gctx, contract.AnalyticsRequest{UserID: userID})
		if err != nil {
			return err
		}
		out.Summary = a.Summary
		return nil
	})
	g.Go(func() error {
		p, err := s.achievements.Progress(gctx, userID)
		if err != nil {
			return err
		}
		out.Achievements = p
		return nil
	})
	g.Go(func() error {
		plan, err := s.pricing.CurrentPlan(gctx, userID)
		if err != nil {
			return err
		}
		out.Plan = plan
		return nil
	})
	g.Go(func() error {
		tribes, err := s.tribes.ListForUser(gctx, userID)
		if err != nil {
			return err
		}
		out.TribeCount = len(tribes)
		return nil
	})

	if err = g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

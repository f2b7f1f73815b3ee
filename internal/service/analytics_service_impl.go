package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/taskora/internal/analytics"
	"github.com/alexanderramin/taskora/internal/contract"
	"github.com/alexanderramin/taskora/internal/domain"
	"github.com/alexanderramin/taskora/internal/repository"
)

type analyticsService struct {
	tasks    repository.TaskRepo
	tribes   repository.TribeRepo
	observer UseCaseObserver
}

func NewAnalyticsService(tasks repository.TaskRepo, tribes repository.TribeRepo, observers ...UseCaseObserver) AnalyticsService {
	return &analyticsService{
		tasks:    tasks,
		tribes:   tribes,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *analyticsService) GetAnalytics(ctx context.Context, req contract.AnalyticsRequest) (resp *contract.AnalyticsResponse, err error) {
	fields := map[string]any{"user": req.UserID}
	done := observe(ctx, s.observer, "analytics", fields)
	defer func() { done(err) }()

	tasks, err := s.scopedTasks(ctx, req)
	if err != nil {
		return nil, err
	}
	fields["task_count"] = len(tasks)

	summary, err := analytics.Summarize(tasks)
	if err != nil {
		return nil, fmt.Errorf("computing analytics: %w", err)
	}
	return &contract.AnalyticsResponse{
		UserID:  req.UserID,
		TribeID: req.TribeID,
		Summary: summary,
	}, nil
}

func (s *analyticsService) GetBoard(ctx context.Context, userID string) (resp *contract.BoardResponse, err error) {
	done := observe(ctx, s.observer, "board", map[string]any{"user": userID})
	defer func() { done(err) }()

	if userID == "" {
		return nil, contract.Errorf(contract.ErrInvalidScope, "user id is required")
	}
	tasks, err := s.tasks.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}

	stats, err := analytics.Board(tasks)
	if err != nil {
		return nil, fmt.Errorf("computing board stats: %w", err)
	}
	quadrants, err := analytics.Quadrants(tasks)
	if err != nil {
		return nil, fmt.Errorf("grouping board: %w", err)
	}
	return &contract.BoardResponse{Stats: stats, Quadrants: quadrants}, nil
}

func (s *analyticsService) scopedTasks(ctx context.Context, req contract.AnalyticsRequest) ([]domain.Task, error) {
	if req.UserID == "" {
		return nil, contract.Errorf(contract.ErrInvalidScope, "user id is required")
	}
	if req.TribeID == "" {
		tasks, err := s.tasks.ListByUser(ctx, req.UserID)
		if err != nil {
			return nil, fmt.Errorf("loading tasks: %w", err)
		}
		return tasks, nil
	}

	member, err := s.tribes.IsMember(ctx, req.TribeID, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("checking tribe membership: %w", err)
	}
	if !member {
		return nil, contract.Errorf(contract.ErrForbidden,
			fmt.Sprintf("user %s is not a member of tribe %s", req.UserID, req.TribeID))
	}
	tasks, err := s.tasks.ListByTribe(ctx, req.TribeID)
	if err != nil {
		return nil, fmt.Errorf("loading tribe tasks: %w", err)
	}
	return tasks, nil
}

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/taskora/internal/contract"
	"github.com/alexanderramin/taskora/internal/domain"
	"github.com/alexanderramin/taskora/internal/repository"
	"github.com/google/uuid"
)

type taskService struct {
	tasks    repository.TaskRepo
	tribes   repository.TribeRepo
	observer UseCaseObserver
}

func NewTaskService(tasks repository.TaskRepo, tribes repository.TribeRepo, observers ...UseCaseObserver) TaskService {
	return &taskService{
		tasks:    tasks,
		tribes:   tribes,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *taskService) Create(ctx context.Context, t *domain.Task) (err error) {
	done := observe(ctx, s.observer, "create-task", map[string]any{"priority": string(t.Priority)})
	defer func() { done(err) }()

	t.Title = strings.TrimSpace(t.Title)
	if t.Status == "" {
		t.Status = domain.TaskTodo
	}
	if err = s.validate(ctx, t); err != nil {
		return err
	}

	now := time.Now().UTC()
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	t.CreatedAt = now
	t.UpdatedAt = now
	return s.tasks.Create(ctx, t)
}

func (s *taskService) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *taskService) ListByUser(ctx context.Context, userID string) ([]domain.Task, error) {
	return s.tasks.ListByUser(ctx, userID)
}

func (s *taskService) ListByTribe(ctx context.Context, tribeID string) ([]domain.Task, error) {
	return s.tasks.ListByTribe(ctx, tribeID)
}

func (s *taskService) Update(ctx context.Context, t *domain.Task) (err error) {
	done := observe(ctx, s.observer, "update-task", map[string]any{"task": t.ID})
	defer func() { done(err) }()

	t.Title = strings.TrimSpace(t.Title)
	if err = s.validate(ctx, t); err != nil {
		return err
	}
	t.UpdatedAt = time.Now().UTC()
	return s.tasks.Update(ctx, t)
}

func (s *taskService) SetStatus(ctx context.Context, id string, status domain.TaskStatus) (task *domain.Task, err error) {
	done := observe(ctx, s.observer, "set-task-status", map[string]any{"task": id, "status": string(status)})
	defer func() { done(err) }()

	if !status.Valid() {
		return nil, &domain.InvalidDataError{Entity: "task", ID: id, Field: "status", Value: string(status)}
	}
	task, err = s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	task.Status = status
	task.UpdatedAt = time.Now().UTC()
	if err = s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) Delete(ctx context.Context, id string) (err error) {
	done := observe(ctx, s.observer, "delete-task", map[string]any{"task": id})
	defer func() { done(err) }()
	return s.tasks.Delete(ctx, id)
}

func (s *taskService) validate(ctx context.Context, t *domain.Task) error {
	if t.Title == "" {
		return contract.Errorf(contract.ErrInvalidInput, "task title is required")
	}
	if t.UserID == "" {
		return contract.Errorf(contract.ErrInvalidInput, "task owner is required")
	}
	if err := t.Validate(); err != nil {
		return err
	}
	if !t.Shared() {
		return nil
	}
	member, err := s.tribes.IsMember(ctx, *t.TribeID, t.UserID)
	if err != nil {
		return fmt.Errorf("checking tribe membership: %w", err)
	}
	if !member {
		return contract.Errorf(contract.ErrForbidden,
			fmt.Sprintf("user %s is not a member of tribe %s", t.UserID, *t.TribeID))
	}
	return nil
}

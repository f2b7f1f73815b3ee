package testutil

import (
	"time"

	"github.com/alexanderramin/taskora/internal/domain"
	"github.com/google/uuid"
)

const TestUserID = "user-test"

type TaskOption func(*domain.Task)

func WithPriority(p domain.Priority) TaskOption {
	return func(t *domain.Task) { t.Priority = p }
}

func WithStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.Task) { t.Status = s }
}

func WithUser(userID string) TaskOption {
	return func(t *domain.Task) { t.UserID = userID }
}

func WithTribe(tribeID string) TaskOption {
	return func(t *domain.Task) { t.TribeID = &tribeID }
}

func WithDueDate(d time.Time) TaskOption {
	return func(t *domain.Task) { t.DueDate = &d }
}

func WithTags(tags ...string) TaskOption {
	return func(t *domain.Task) { t.Tags = tags }
}

// NewTestTask returns a todo, not-urgent-important task owned by TestUserID.
func NewTestTask(title string, opts ...TaskOption) *domain.Task {
	now := time.Now().UTC().Truncate(time.Second)
	t := &domain.Task{
		ID:        uuid.New().String(),
		Title:     title,
		Priority:  domain.PriorityNotUrgentImportant,
		Status:    domain.TaskTodo,
		UserID:    TestUserID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, o := range opts {
		o(t)
	}
	return t
}

func NewTestTribe(name, ownerID string) *domain.Tribe {
	now := time.Now().UTC().Truncate(time.Second)
	return &domain.Tribe{
		ID:        uuid.New().String(),
		Name:      name,
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func NewTestAchievement(title string, points int) *domain.Achievement {
	return &domain.Achievement{
		ID:        uuid.New().String(),
		Title:     title,
		Points:    points,
		Category:  "test",
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

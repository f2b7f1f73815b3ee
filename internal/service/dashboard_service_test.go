package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/taskora/internal/domain"
	"github.com/alexanderramin/taskora/internal/pricing"
	"github.com/alexanderramin/taskora/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_CombinesSections(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()

	s.addTask(t, "done", domain.PriorityUrgentImportant, domain.TaskCompleted)
	s.addTask(t, "open", domain.PriorityNotUrgentImportant, domain.TaskTodo)
	_, err := s.tribes.Create(ctx, "Crew", "", testutil.TestUserID)
	require.NoError(t, err)
	_, err = s.achievements.Seed(ctx)
	require.NoError(t, err)

	d, err := s.dashboard.Dashboard(ctx, testutil.TestUserID)
	require.NoError(t, err)
	assert.Equal(t, 2, d.Summary.TotalTasks)
	assert.Equal(t, 75, d.Summary.ProductivityScore)
	assert.Equal(t, 1, d.TribeCount)
	assert.Equal(t, pricing.FreePlanName, d.Plan.Name)
	assert.Len(t, d.Achievements.Items, len(DefaultAchievements()))
}

func TestDashboardService_PropagatesErrors(t *testing.T) {
	s := newTestServices(t)
	_, err := s.dashboard.Dashboard(context.Background(), "")
	assert.Error(t, err)
}

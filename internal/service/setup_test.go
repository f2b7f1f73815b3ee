package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/alexanderramin/taskora/internal/domain"
	"github.com/alexanderramin/taskora/internal/pricing"
	"github.com/alexanderramin/taskora/internal/repository"
	"github.com/alexanderramin/taskora/internal/testutil"
	"github.com/stretchr/testify/require"
)

type testServices struct {
	db           *sql.DB
	tasks        TaskService
	tribes       TribeService
	analytics    AnalyticsService
	pricing      PricingService
	achievements AchievementService
	dashboard    DashboardService
	taskRepo     *repository.SQLiteTaskRepo
}

func newTestServices(t *testing.T, observers ...UseCaseObserver) *testServices {
	t.Helper()
	database := testutil.NewTestDB(t)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	tribeRepo := repository.NewSQLiteTribeRepo(database)
	achRepo := repository.NewSQLiteAchievementRepo(database)
	subRepo := repository.NewSQLiteSubscriptionRepo(database)

	s := &testServices{
		db:           database,
		taskRepo:     taskRepo,
		tasks:        NewTaskService(taskRepo, tribeRepo, observers...),
		tribes:       NewTribeService(tribeRepo, testutil.NewTestUoW(database), observers...),
		analytics:    NewAnalyticsService(taskRepo, tribeRepo, observers...),
		pricing:      NewPricingService(pricing.DefaultCatalog(), pricing.DefaultPolicy(), subRepo, observers...),
		achievements: NewAchievementService(achRepo, observers...),
	}
	s.dashboard = NewDashboardService(s.analytics, s.achievements, s.pricing, s.tribes, observers...)
	return s
}

func (s *testServices) addTask(t *testing.T, title string, p domain.Priority, st domain.TaskStatus) *domain.Task {
	t.Helper()
	task := &domain.Task{Title: title, Priority: p, Status: st, UserID: testutil.TestUserID}
	require.NoError(t, s.tasks.Create(context.Background(), task))
	return task
}

type recordingObserver struct {
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.events = append(r.events, e)
}

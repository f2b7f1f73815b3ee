package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/taskora/internal/config"
	"github.com/alexanderramin/taskora/internal/domain"
	"github.com/alexanderramin/taskora/internal/pricing"
	"github.com/alexanderramin/taskora/internal/repository"
	"github.com/alexanderramin/taskora/internal/service"
	"github.com/alexanderramin/taskora/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)

	taskRepo := repository.NewSQLiteTaskRepo(database)
	tribeRepo := repository.NewSQLiteTribeRepo(database)

	app := &App{
		Config: config.DefaultConfig(),
		Logger: zap.NewNop(),
	}
	app.Config.UserID = testutil.TestUserID
	app.Tasks = service.NewTaskService(taskRepo, tribeRepo)
	app.Tribes = service.NewTribeService(tribeRepo, testutil.NewTestUoW(database))
	app.Analytics = service.NewAnalyticsService(taskRepo, tribeRepo)
	app.Pricing = service.NewPricingService(pricing.DefaultCatalog(), pricing.DefaultPolicy(), repository.NewSQLiteSubscriptionRepo(database))
	app.Achievements = service.NewAchievementService(repository.NewSQLiteAchievementRepo(database))
	app.Dashboard = service.NewDashboardService(app.Analytics, app.Achievements, app.Pricing, app.Tribes)
	return app
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func listTasks(t *testing.T, app *App) []domain.Task {
	t.Helper()
	out, err := executeCmd(t, app, "task", "list", "--json")
	require.NoError(t, err)
	var tasks []domain.Task
	require.NoError(t, json.Unmarshal([]byte(out), &tasks))
	return tasks
}

func TestRootCmd_NoArgs_ShowsHelp(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, output, "taskora")
}

// --- task ---

func TestTaskAdd_RequiresTitleWhenNotInteractive(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "task", "add")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title is required")
}

func TestTaskAdd_AndList(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "task", "add", "Write report",
		"--priority", "urgent-important", "--due", "2026-06-30", "--tags", "work, q2")
	require.NoError(t, err)
	assert.Contains(t, out, "Created task")

	tasks := listTasks(t, app)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Write report", tasks[0].Title)
	assert.Equal(t, domain.PriorityUrgentImportant, tasks[0].Priority)
	assert.Equal(t, domain.TaskTodo, tasks[0].Status)
	assert.Equal(t, []string{"work", "q2"}, tasks[0].Tags)
	require.NotNil(t, tasks[0].DueDate)
	assert.Equal(t, "2026-06-30", tasks[0].DueDate.Format(dateLayout))

	out, err = executeCmd(t, app, "task", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Write report")
}

func TestTaskAdd_RejectsBadInput(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "task", "add", "x", "--priority", "someday")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidData)

	_, err = executeCmd(t, app, "task", "add", "x", "--due", "30/06/2026")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "YYYY-MM-DD")
}

func TestTaskDone_ByPrefix(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "task", "add", "Ship it")
	require.NoError(t, err)
	id := listTasks(t, app)[0].ID

	out, err := executeCmd(t, app, "task", "done", id[:8])
	require.NoError(t, err)
	assert.Contains(t, out, "Completed")
	assert.Equal(t, domain.TaskCompleted, listTasks(t, app)[0].Status)

	out, err = executeCmd(t, app, "task", "list", "--status", "todo")
	require.NoError(t, err)
	assert.Contains(t, out, "No tasks")
}

func TestTaskStatus_Invalid(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "task", "add", "Ship it")
	require.NoError(t, err)
	id := listTasks(t, app)[0].ID

	_, err = executeCmd(t, app, "task", "status", id, "blocked")
	assert.ErrorIs(t, err, domain.ErrInvalidData)

	_, err = executeCmd(t, app, "task", "status", "nope", "todo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "task not found")
}

func TestTaskRemove(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "task", "add", "Temporary")
	require.NoError(t, err)
	id := listTasks(t, app)[0].ID

	_, err = executeCmd(t, app, "task", "rm", id)
	require.NoError(t, err)
	assert.Empty(t, listTasks(t, app))
}

// --- analytics and board ---

func TestAnalyticsCmd_JSON(t *testing.T) {
	app := testApp(t)
	for _, title := range []string{"a", "b", "c", "d"} {
		_, err := executeCmd(t, app, "task", "add", title, "--priority", "urgent-important")
		require.NoError(t, err)
	}
	tasks := listTasks(t, app)
	_, err := executeCmd(t, app, "task", "done", tasks[0].ID)
	require.NoError(t, err)

	out, err := executeCmd(t, app, "analytics", "--json")
	require.NoError(t, err)

	var resp struct {
		Summary struct {
			TotalTasks        int `json:"total_tasks"`
			CompletionRate    int `json:"completion_rate"`
			ProductivityScore int `json:"productivity_score"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 4, resp.Summary.TotalTasks)
	assert.Equal(t, 25, resp.Summary.CompletionRate)
	// (1*2 + 1) / (4*2) = 37.5, rounded half up
	assert.Equal(t, 38, resp.Summary.ProductivityScore)

	out, err = executeCmd(t, app, "analytics")
	require.NoError(t, err)
	assert.Contains(t, out, "ANALYTICS")
}

func TestBoardCmd(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "task", "add", "Fix outage", "-p", "urgent-important")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "board")
	require.NoError(t, err)
	assert.Contains(t, out, "Fix outage")
	assert.Contains(t, out, "Not Urgent & Not Important")
}

// --- tribes ---

func TestTribeLifecycle(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "--user", "alice", "tribe", "create", "Crew", "--desc", "core team")
	require.NoError(t, err)
	assert.Contains(t, out, "Created tribe Crew")

	out, err = executeCmd(t, app, "tribe", "list", "--json")
	require.NoError(t, err)
	var tribes []domain.Tribe
	require.NoError(t, json.Unmarshal([]byte(out), &tribes))
	require.Len(t, tribes, 1)
	tribeID := tribes[0].ID

	_, err = executeCmd(t, app, "--user", "mallory", "analytics", "--tribe", tribeID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FORBIDDEN")

	out, err = executeCmd(t, app, "--user", "bob", "tribe", "join", tribeID)
	require.NoError(t, err)
	assert.Contains(t, out, "as member")

	_, err = executeCmd(t, app, "--user", "bob", "task", "add", "Plan offsite", "--tribe", tribeID)
	require.NoError(t, err)

	out, err = executeCmd(t, app, "tribe", "members", tribeID)
	require.NoError(t, err)
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "bob")

	out, err = executeCmd(t, app, "task", "list", "--tribe", tribeID)
	require.NoError(t, err)
	assert.Contains(t, out, "Plan offsite")
}

// --- pricing and plan ---

func TestPricingCmd(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "pricing")
	require.NoError(t, err)
	assert.Contains(t, out, "Loner")
	assert.Contains(t, out, "Pro Tribe")
	assert.Contains(t, out, "Save 90%")

	out, err = executeCmd(t, app, "pricing", "--json")
	require.NoError(t, err)
	var resp struct {
		Tiers []pricing.DisplayTier `json:"tiers"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Len(t, resp.Tiers, 4)
}

func TestPlanCmd(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "plan", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Free")

	out, err = executeCmd(t, app, "plan", "set", "price_1S7MZaQ4VdcoVfX8cqz2dH8V", "--status", "trialing")
	require.NoError(t, err)
	assert.Contains(t, out, "Team Tribe")

	out, err = executeCmd(t, app, "plan", "show", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"status": "trialing"`)

	_, err = executeCmd(t, app, "plan", "set", "price_missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown price id")
}

// --- achievements and dashboard ---

func TestAchievementsCmd(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "achievements", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "seed")

	out, err = executeCmd(t, app, "achievements", "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "Seeded 6")

	out, err = executeCmd(t, app, "ach", "award", "first steps")
	require.NoError(t, err)
	assert.Contains(t, out, "First Steps")

	out, err = executeCmd(t, app, "achievements", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "1/6")

	_, err = executeCmd(t, app, "achievements", "award", "Moonwalker")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestDashboardCmd(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "task", "add", "One")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "dashboard")
	require.NoError(t, err)
	assert.Contains(t, out, "DASHBOARD")
	assert.Contains(t, out, "0/1")

	out, err = executeCmd(t, app, "dashboard", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"tribe_count": 0`)
}

// --- wiring ---

func TestConnect_OpensDatabaseFromConfig(t *testing.T) {
	app := &App{Config: config.DefaultConfig(), Logger: zap.NewNop()}
	dbPath := filepath.Join(t.TempDir(), "nested", "taskora.db")

	_, err := executeCmd(t, app, "--db", dbPath, "task", "add", "Persisted")
	require.NoError(t, err)
	assert.Nil(t, app.database, "database should be closed after the command")

	app.Tasks = nil
	out, err := executeCmd(t, app, "--db", dbPath, "task", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Persisted")
	require.NoError(t, app.Close())
}

func TestConnect_BadPricingFile(t *testing.T) {
	app := &App{Config: config.DefaultConfig(), Logger: zap.NewNop()}
	app.Config.DBPath = filepath.Join(t.TempDir(), "taskora.db")
	app.Config.PricingFile = filepath.Join(t.TempDir(), "missing.yaml")

	_, err := executeCmd(t, app, "pricing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading pricing")
}

func TestNewLogger(t *testing.T) {
	logger, err := newLogger("debug")
	require.NoError(t, err)
	assert.NotNil(t, logger)

	_, err = newLogger("chatty")
	assert.Error(t, err)
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	app := testApp(t)
	srv := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serve(ctx, srv, app.Logger) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after cancel")
	}
}

func TestSplitTags(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitTags(" a, ,b "))
	assert.Nil(t, splitTags(""))
	assert.True(t, strings.Contains(validateRequired("title")(" ").Error(), "title"))
	assert.NoError(t, validateOptionalDate(""))
	assert.Error(t, validateOptionalDate("tomorrow"))
}

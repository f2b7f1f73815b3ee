package analytics

import (
	"sync"
	"testing"

	"github.com/alexanderramin/taskora/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func task(id string, p domain.Priority, s domain.TaskStatus) domain.Task {
	return domain.Task{ID: id, Title: id, Priority: p, Status: s, UserID: "u-1"}
}

func TestSummarize_Empty(t *testing.T) {
	s, err := Summarize(nil)
	require.NoError(t, err)

	assert.Equal(t, 0, s.TotalTasks)
	assert.Equal(t, 0, s.CompletedTasks)
	assert.Equal(t, 0, s.CompletionRate)
	assert.Equal(t, 0, s.ProductivityScore)
	assert.Len(t, s.TasksByPriority, 4)
	assert.Len(t, s.TasksByStatus, 3)
	for _, p := range domain.AllPriorities() {
		assert.Equal(t, 0, s.TasksByPriority[p])
	}
}

func TestSummarize_MixedScenario(t *testing.T) {
	// 10 tasks, 4 completed; 1 urgent-important completed, 2 more urgent-important open.
	tasks := []domain.Task{
		task("1", domain.PriorityUrgentImportant, domain.TaskCompleted),
		task("2", domain.PriorityUrgentImportant, domain.TaskTodo),
		task("3", domain.PriorityUrgentImportant, domain.TaskInProgress),
		task("4", domain.PriorityNotUrgentImportant, domain.TaskCompleted),
		task("5", domain.PriorityNotUrgentImportant, domain.TaskCompleted),
		task("6", domain.PriorityUrgentNotImportant, domain.TaskCompleted),
		task("7", domain.PriorityUrgentNotImportant, domain.TaskTodo),
		task("8", domain.PriorityNotUrgentNotImportant, domain.TaskTodo),
		task("9", domain.PriorityNotUrgentNotImportant, domain.TaskInProgress),
		task("10", domain.PriorityNotUrgentImportant, domain.TaskTodo),
	}

	s, err := Summarize(tasks)
	require.NoError(t, err)

	assert.Equal(t, 10, s.TotalTasks)
	assert.Equal(t, 4, s.CompletedTasks)
	assert.Equal(t, 40, s.CompletionRate)
	assert.Equal(t, 30, s.ProductivityScore)
	assert.Equal(t, 3, s.TasksByPriority[domain.PriorityUrgentImportant])
	assert.Equal(t, 3, s.TasksByPriority[domain.PriorityNotUrgentImportant])
	assert.Equal(t, 2, s.TasksByPriority[domain.PriorityUrgentNotImportant])
	assert.Equal(t, 2, s.TasksByPriority[domain.PriorityNotUrgentNotImportant])
	assert.Equal(t, 4, s.TasksByStatus[domain.TaskTodo])
	assert.Equal(t, 2, s.TasksByStatus[domain.TaskInProgress])
	assert.Equal(t, 4, s.TasksByStatus[domain.TaskCompleted])
}

func TestSummarize_CompletionRateProperty(t *testing.T) {
	for total := 0; total <= 200; total++ {
		for done := 0; done <= total; done++ {
			tasks := make([]domain.Task, 0, total)
			for i := 0; i < total; i++ {
				st := domain.TaskTodo
				if i < done {
					st = domain.TaskCompleted
				}
				tasks = append(tasks, task("t", domain.PriorityNotUrgentImportant, st))
			}

			s, err := Summarize(tasks)
			require.NoError(t, err)

			want := 0
			if total > 0 {
				want = (200*done + total) / (2 * total)
			}
			assert.Equal(t, want, s.CompletionRate, "done=%d total=%d", done, total)
		}
	}
}

func TestSummarize_BucketsSumToTotal(t *testing.T) {
	var tasks []domain.Task
	for i, p := range domain.AllPriorities() {
		for j, st := range domain.AllStatuses() {
			for k := 0; k <= i+j; k++ {
				tasks = append(tasks, task("t", p, st))
			}
		}
	}

	s, err := Summarize(tasks)
	require.NoError(t, err)

	var byPriority, byStatus int
	for _, n := range s.TasksByPriority {
		byPriority += n
	}
	for _, n := range s.TasksByStatus {
		byStatus += n
	}
	assert.Equal(t, s.TotalTasks, byPriority)
	assert.Equal(t, s.TotalTasks, byStatus)
}

func TestProductivityScore_MonotonicInUrgentImportantCompletions(t *testing.T) {
	const total = 20
	prev := -1
	for ui := 0; ui <= 10; ui++ {
		// Every urgent-important completion is also a completion; hold the
		// other completed tasks fixed at 5.
		score := ProductivityScore(ui, ui+5, total)
		assert.GreaterOrEqual(t, score, prev, "ui=%d", ui)
		prev = score
	}
	assert.Equal(t, 0, ProductivityScore(3, 3, 0))
}

func TestSummarize_RoundsHalfUp(t *testing.T) {
	// 1 of 8 completed = 12.5% -> 13.
	tasks := []domain.Task{task("done", domain.PriorityNotUrgentImportant, domain.TaskCompleted)}
	for i := 0; i < 7; i++ {
		tasks = append(tasks, task("open", domain.PriorityNotUrgentImportant, domain.TaskTodo))
	}
	s, err := Summarize(tasks)
	require.NoError(t, err)
	assert.Equal(t, 13, s.CompletionRate)
}

func TestSummarize_ExactHalvesRoundUp(t *testing.T) {
	tests := []struct {
		done, total int
		want        int
	}{
		{29, 200, 15},
		{57, 200, 29},
		{3, 40, 8},
		{1, 200, 1},
	}
	for _, tt := range tests {
		tasks := make([]domain.Task, 0, tt.total)
		for i := 0; i < tt.total; i++ {
			st := domain.TaskTodo
			if i < tt.done {
				st = domain.TaskCompleted
			}
			tasks = append(tasks, task("t", domain.PriorityNotUrgentImportant, st))
		}
		s, err := Summarize(tasks)
		require.NoError(t, err)
		assert.Equal(t, tt.want, s.CompletionRate, "done=%d total=%d", tt.done, tt.total)
	}

	// (0*2 + 29) / (100*2) = 14.5% -> 15; (1*2 + 28) / 200 = 15% exactly.
	assert.Equal(t, 15, ProductivityScore(0, 29, 100))
	assert.Equal(t, 15, ProductivityScore(1, 28, 100))
	assert.Equal(t, 14, ProductivityScore(0, 28, 100))
}

func TestSummarize_InvalidPriorityFails(t *testing.T) {
	tasks := []domain.Task{
		task("ok", domain.PriorityUrgentImportant, domain.TaskTodo),
		task("bad", domain.Priority("someday"), domain.TaskTodo),
	}
	_, err := Summarize(tasks)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidData)
	assert.Contains(t, err.Error(), "bad")
}

func TestSummarize_InvalidStatusFails(t *testing.T) {
	_, err := Summarize([]domain.Task{task("x", domain.PriorityUrgentImportant, "done")})
	assert.ErrorIs(t, err, domain.ErrInvalidData)
}

func TestSummarize_Idempotent(t *testing.T) {
	tasks := []domain.Task{
		task("1", domain.PriorityUrgentImportant, domain.TaskCompleted),
		task("2", domain.PriorityUrgentNotImportant, domain.TaskInProgress),
		task("3", domain.PriorityNotUrgentNotImportant, domain.TaskTodo),
	}
	first, err := Summarize(tasks)
	require.NoError(t, err)
	second, err := Summarize(tasks)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Summarize not idempotent (-first +second):\n%s", diff)
	}
}

func TestSummarize_ConcurrentCallers(t *testing.T) {
	tasks := []domain.Task{
		task("1", domain.PriorityUrgentImportant, domain.TaskCompleted),
		task("2", domain.PriorityNotUrgentImportant, domain.TaskTodo),
	}
	want, err := Summarize(tasks)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]Summary, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = Summarize(tasks)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Empty(t, cmp.Diff(want, got))
	}
}

// Package analytics aggregates a user's task list into the numbers shown on
// the analytics and board views. Everything here is a pure function over its
// input; nothing is cached or shared between calls.
package analytics

import (
	"github.com/alexanderramin/taskora/internal/domain"
)

// Summary is the aggregate view of a task list.
type Summary struct {
	TotalTasks        int                       `json:"total_tasks"`
	CompletedTasks    int                       `json:"completed_tasks"`
	CompletionRate    int                       `json:"completion_rate"`
	TasksByPriority   map[domain.Priority]int   `json:"tasks_by_priority"`
	TasksByStatus     map[domain.TaskStatus]int `json:"tasks_by_status"`
	ProductivityScore int                       `json:"productivity_score"`
}

// Summarize walks tasks once and derives counts, completion rate and the
// productivity score. Any task with a priority or status outside the known
// sets fails the whole call with a *domain.InvalidDataError.
func Summarize(tasks []domain.Task) (Summary, error) {
	s := emptySummary()

	var urgentImportantCompleted int
	for _, t := range tasks {
		if err := t.Validate(); err != nil {
			return emptySummary(), err
		}
		s.TasksByPriority[t.Priority]++
		s.TasksByStatus[t.Status]++
		if t.Status == domain.TaskCompleted {
			s.CompletedTasks++
			if t.Priority == domain.PriorityUrgentImportant {
				urgentImportantCompleted++
			}
		}
	}
	s.TotalTasks = len(tasks)

	if s.TotalTasks > 0 {
		s.CompletionRate = domain.PercentHalfUp(int64(s.CompletedTasks), int64(s.TotalTasks))
		s.ProductivityScore = ProductivityScore(urgentImportantCompleted, s.CompletedTasks, s.TotalTasks)
	}
	return s, nil
}

// ProductivityScore weights completed urgent-important tasks twice as heavily
// as general completion. Returns 0 when total is 0.
func ProductivityScore(urgentImportantCompleted, completed, total int) int {
	if total <= 0 {
		return 0
	}
	return domain.PercentHalfUp(int64(urgentImportantCompleted*2+completed), int64(total*2))
}

func emptySummary() Summary {
	s := Summary{
		TasksByPriority: make(map[domain.Priority]int, 4),
		TasksByStatus:   make(map[domain.TaskStatus]int, 3),
	}
	for _, p := range domain.AllPriorities() {
		s.TasksByPriority[p] = 0
	}
	for _, st := range domain.AllStatuses() {
		s.TasksByStatus[st] = 0
	}
	return s
}

package analytics

import "github.com/alexanderramin/taskora/internal/domain"

// BoardStats are the header counters on the task board.
type BoardStats struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	InProgress int `json:"in_progress"`
	Shared     int `json:"shared"`
}

// Board counts tasks for the board header.
func Board(tasks []domain.Task) (BoardStats, error) {
	var b BoardStats
	for _, t := range tasks {
		if err := t.Validate(); err != nil {
			return BoardStats{}, err
		}
		switch t.Status {
		case domain.TaskCompleted:
			b.Completed++
		case domain.TaskInProgress:
			b.InProgress++
		}
		if t.Shared() {
			b.Shared++
		}
	}
	b.Total = len(tasks)
	return b, nil
}

// Quadrant is one cell of the Eisenhower matrix.
type Quadrant struct {
	Priority domain.Priority `json:"priority"`
	Tasks    []domain.Task   `json:"tasks"`
}

// Quadrants splits tasks into the four matrix cells, in board order. Tasks
// keep their input order within a cell; empty cells are still returned.
func Quadrants(tasks []domain.Task) ([]Quadrant, error) {
	order := domain.AllPriorities()
	index := make(map[domain.Priority]int, len(order))
	out := make([]Quadrant, len(order))
	for i, p := range order {
		index[p] = i
		out[i] = Quadrant{Priority: p, Tasks: []domain.Task{}}
	}
	for _, t := range tasks {
		if err := t.Validate(); err != nil {
			return nil, err
		}
		i := index[t.Priority]
		out[i].Tasks = append(out[i].Tasks, t)
	}
	return out, nil
}

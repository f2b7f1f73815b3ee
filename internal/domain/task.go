package domain

import "time"

type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Priority    Priority   `json:"priority"`
	Status      TaskStatus `json:"status"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	UserID      string     `json:"user_id"`
	TribeID     *string    `json:"tribe_id,omitempty"`
	AssignedTo  string     `json:"assigned_to,omitempty"`
	Tags        []string   `json:"tags,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Shared reports whether the task belongs to a tribe rather than being personal.
func (t Task) Shared() bool {
	return t.TribeID != nil && *t.TribeID != ""
}

// Validate checks the enumerated fields.
func (t Task) Validate() error {
	if !t.Priority.Valid() {
		return &InvalidDataError{Entity: "task", ID: t.ID, Field: "priority", Value: string(t.Priority)}
	}
	if !t.Status.Valid() {
		return &InvalidDataError{Entity: "task", ID: t.ID, Field: "status", Value: string(t.Status)}
	}
	return nil
}

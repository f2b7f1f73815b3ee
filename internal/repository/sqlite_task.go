package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/taskora/internal/db"
	"github.com/alexanderramin/taskora/internal/domain"
)

type SQLiteTaskRepo struct {
	db db.DBTX
}

func NewSQLiteTaskRepo(conn db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: conn}
}

const taskColumns = `id, title, description, priority, status, due_date, user_id, tribe_id, assigned_to, tags, created_at, updated_at`

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	tags, err := encodeTags(t.Tags)
	if err != nil {
		return fmt.Errorf("encoding task tags: %w", err)
	}
	query := `INSERT INTO tasks (` + taskColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		t.ID,
		t.Title,
		t.Description,
		string(t.Priority),
		string(t.Status),
		nullableTimeToString(t.DueDate, dateLayout),
		t.UserID,
		nullableString(t.TribeID),
		t.AssignedTo,
		tags,
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	t, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("task %s: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	return t, nil
}

// ListByUser returns the tasks a user owns, oldest first.
func (r *SQLiteTaskRepo) ListByUser(ctx context.Context, userID string) ([]domain.Task, error) {
	return r.list(ctx, `SELECT `+taskColumns+` FROM tasks WHERE user_id = ? ORDER BY created_at, id`, userID)
}

func (r *SQLiteTaskRepo) ListByTribe(ctx context.Context, tribeID string) ([]domain.Task, error) {
	return r.list(ctx, `SELECT `+taskColumns+` FROM tasks WHERE tribe_id = ? ORDER BY created_at, id`, tribeID)
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	tags, err := encodeTags(t.Tags)
	if err != nil {
		return fmt.Errorf("encoding task tags: %w", err)
	}
	query := `UPDATE tasks SET title = ?, description = ?, priority = ?, status = ?, due_date = ?,
		tribe_id = ?, assigned_to = ?, tags = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		t.Title,
		t.Description,
		string(t.Priority),
		string(t.Status),
		nullableTimeToString(t.DueDate, dateLayout),
		nullableString(t.TribeID),
		t.AssignedTo,
		tags,
		t.UpdatedAt.Format(time.RFC3339),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	return requireAffected(res, "task", t.ID)
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return requireAffected(res, "task", id)
}

func (r *SQLiteTaskRepo) list(ctx context.Context, query string, args ...any) ([]domain.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	tasks := []domain.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

// scanTask copies priority and status through unchecked; validation belongs
// to whoever consumes the records.
func scanTask(s scanner) (*domain.Task, error) {
	var t domain.Task
	var priority, status, tags, createdAt, updatedAt string
	var dueDate, tribeID sql.NullString

	err := s.Scan(
		&t.ID, &t.Title, &t.Description,
		&priority, &status, &dueDate,
		&t.UserID, &tribeID, &t.AssignedTo, &tags,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}

	t.Priority = domain.Priority(priority)
	t.Status = domain.TaskStatus(status)
	t.DueDate = parseNullableTime(dueDate, dateLayout)
	if tribeID.Valid && tribeID.String != "" {
		id := tribeID.String
		t.TribeID = &id
	}
	if t.Tags, err = decodeTags(tags); err != nil {
		return nil, fmt.Errorf("decoding tags of task %s: %w", t.ID, err)
	}
	if t.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if t.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &t, nil
}

func requireAffected(res sql.Result, entity, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

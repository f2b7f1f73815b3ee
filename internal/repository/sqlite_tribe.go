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

type SQLiteTribeRepo struct {
	db db.DBTX
}

func NewSQLiteTribeRepo(conn db.DBTX) *SQLiteTribeRepo {
	return &SQLiteTribeRepo{db: conn}
}

func (r *SQLiteTribeRepo) Create(ctx context.Context, t *domain.Tribe) error {
	query := `INSERT INTO tribes (id, name, description, owner_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID, t.Name, t.Description, t.OwnerID,
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting tribe: %w", err)
	}
	return nil
}

func (r *SQLiteTribeRepo) GetByID(ctx context.Context, id string) (*domain.Tribe, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, description, owner_id, created_at, updated_at
		FROM tribes WHERE id = ?`, id)
	t, err := scanTribe(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("tribe %s: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	return t, nil
}

// ListForUser returns every tribe the user belongs to, in any role.
func (r *SQLiteTribeRepo) ListForUser(ctx context.Context, userID string) ([]domain.Tribe, error) {
	query := `SELECT t.id, t.name, t.description, t.owner_id, t.created_at, t.updated_at
		FROM tribes t
		JOIN tribe_members m ON m.tribe_id = t.id
		WHERE m.user_id = ?
		ORDER BY t.created_at, t.id`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing tribes: %w", err)
	}
	defer rows.Close()

	tribes := []domain.Tribe{}
	for rows.Next() {
		t, err := scanTribe(rows)
		if err != nil {
			return nil, err
		}
		tribes = append(tribes, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tribes: %w", err)
	}
	return tribes, nil
}

func (r *SQLiteTribeRepo) AddMember(ctx context.Context, m *domain.TribeMember) error {
	query := `INSERT INTO tribe_members (id, tribe_id, user_id, role, joined_at) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		m.ID, m.TribeID, m.UserID, string(m.Role), m.JoinedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("adding tribe member: %w", err)
	}
	return nil
}

func (r *SQLiteTribeRepo) ListMembers(ctx context.Context, tribeID string) ([]domain.TribeMember, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, tribe_id, user_id, role, joined_at
		FROM tribe_members WHERE tribe_id = ? ORDER BY joined_at, id`, tribeID)
	if err != nil {
		return nil, fmt.Errorf("listing tribe members: %w", err)
	}
	defer rows.Close()

	members := []domain.TribeMember{}
	for rows.Next() {
		var m domain.TribeMember
		var role, joinedAt string
		if err := rows.Scan(&m.ID, &m.TribeID, &m.UserID, &role, &joinedAt); err != nil {
			return nil, fmt.Errorf("scanning tribe member: %w", err)
		}
		m.Role = domain.MemberRole(role)
		if m.JoinedAt, err = time.Parse(time.RFC3339, joinedAt); err != nil {
			return nil, fmt.Errorf("parsing joined_at: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tribe members: %w", err)
	}
	return members, nil
}

func (r *SQLiteTribeRepo) IsMember(ctx context.Context, tribeID, userID string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tribe_members WHERE tribe_id = ? AND user_id = ?`,
		tribeID, userID).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("checking tribe membership: %w", err)
	}
	return n > 0, nil
}

func scanTribe(s scanner) (*domain.Tribe, error) {
	var t domain.Tribe
	var createdAt, updatedAt string
	if err := s.Scan(&t.ID, &t.Name, &t.Description, &t.OwnerID, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning tribe: %w", err)
	}
	var err error
	if t.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if t.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &t, nil
}

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

type SQLiteAchievementRepo struct {
	db db.DBTX
}

func NewSQLiteAchievementRepo(conn db.DBTX) *SQLiteAchievementRepo {
	return &SQLiteAchievementRepo{db: conn}
}

// Upsert inserts an achievement or refreshes it when the title already exists.
// The stored ID is written back into a.
func (r *SQLiteAchievementRepo) Upsert(ctx context.Context, a *domain.Achievement) error {
	query := `INSERT INTO achievements (id, title, description, icon, points, category, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(title) DO UPDATE SET
			description = excluded.description,
			icon = excluded.icon,
			points = excluded.points,
			category = excluded.category
		RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		a.ID, a.Title, a.Description, a.Icon, a.Points, a.Category,
		a.CreatedAt.Format(time.RFC3339),
	).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("upserting achievement: %w", err)
	}
	return nil
}

// List returns the catalog ordered by points, cheapest first.
func (r *SQLiteAchievementRepo) List(ctx context.Context) ([]domain.Achievement, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, title, description, icon, points, category, created_at
		FROM achievements ORDER BY points, title`)
	if err != nil {
		return nil, fmt.Errorf("listing achievements: %w", err)
	}
	defer rows.Close()

	out := []domain.Achievement{}
	for rows.Next() {
		a, err := scanAchievement(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating achievements: %w", err)
	}
	return out, nil
}

func (r *SQLiteAchievementRepo) GetByID(ctx context.Context, id string) (*domain.Achievement, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, title, description, icon, points, category, created_at
		FROM achievements WHERE id = ?`, id)
	a, err := scanAchievement(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("achievement %s: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	return a, nil
}

// Award records an earned achievement. Awarding twice keeps the first record.
func (r *SQLiteAchievementRepo) Award(ctx context.Context, ua *domain.UserAchievement) error {
	query := `INSERT INTO user_achievements (id, user_id, achievement_id, earned_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id, achievement_id) DO NOTHING`
	_, err := r.db.ExecContext(ctx, query,
		ua.ID, ua.UserID, ua.AchievementID, ua.EarnedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("awarding achievement: %w", err)
	}
	return nil
}

func (r *SQLiteAchievementRepo) ListEarned(ctx context.Context, userID string) ([]domain.UserAchievement, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, user_id, achievement_id, earned_at
		FROM user_achievements WHERE user_id = ? ORDER BY earned_at, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("listing earned achievements: %w", err)
	}
	defer rows.Close()

	out := []domain.UserAchievement{}
	for rows.Next() {
		var ua domain.UserAchievement
		var earnedAt string
		if err := rows.Scan(&ua.ID, &ua.UserID, &ua.AchievementID, &earnedAt); err != nil {
			return nil, fmt.Errorf("scanning earned achievement: %w", err)
		}
		if ua.EarnedAt, err = time.Parse(time.RFC3339, earnedAt); err != nil {
			return nil, fmt.Errorf("parsing earned_at: %w", err)
		}
		out = append(out, ua)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating earned achievements: %w", err)
	}
	return out, nil
}

func scanAchievement(s scanner) (*domain.Achievement, error) {
	var a domain.Achievement
	var createdAt string
	if err := s.Scan(&a.ID, &a.Title, &a.Description, &a.Icon, &a.Points, &a.Category, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning achievement: %w", err)
	}
	var err error
	if a.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &a, nil
}

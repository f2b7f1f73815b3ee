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

type SQLiteSubscriptionRepo struct {
	db db.DBTX
}

func NewSQLiteSubscriptionRepo(conn db.DBTX) *SQLiteSubscriptionRepo {
	return &SQLiteSubscriptionRepo{db: conn}
}

func (r *SQLiteSubscriptionRepo) Get(ctx context.Context, userID string) (*domain.Subscription, error) {
	query := `SELECT user_id, subscription_id, price_id, status, current_period_start, current_period_end,
		cancel_at_period_end, updated_at FROM subscriptions WHERE user_id = ?`

	var s domain.Subscription
	var status, updatedAt string
	var start, end sql.NullString
	var cancel int
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&s.UserID, &s.SubscriptionID, &s.PriceID, &status, &start, &end, &cancel, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading subscription: %w", err)
	}

	s.Status = domain.SubscriptionStatus(status)
	s.CurrentPeriodStart = parseNullableTime(start, time.RFC3339)
	s.CurrentPeriodEnd = parseNullableTime(end, time.RFC3339)
	s.CancelAtPeriodEnd = cancel != 0
	if s.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &s, nil
}

func (r *SQLiteSubscriptionRepo) Upsert(ctx context.Context, s *domain.Subscription) error {
	query := `INSERT INTO subscriptions (user_id, subscription_id, price_id, status, current_period_start,
			current_period_end, cancel_at_period_end, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			subscription_id = excluded.subscription_id,
			price_id = excluded.price_id,
			status = excluded.status,
			current_period_start = excluded.current_period_start,
			current_period_end = excluded.current_period_end,
			cancel_at_period_end = excluded.cancel_at_period_end,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		s.UserID,
		s.SubscriptionID,
		s.PriceID,
		string(s.Status),
		nullableTimeToString(s.CurrentPeriodStart, time.RFC3339),
		nullableTimeToString(s.CurrentPeriodEnd, time.RFC3339),
		boolToInt(s.CancelAtPeriodEnd),
		s.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting subscription: %w", err)
	}
	return nil
}

package db

import (
	"database/sql"
	"fmt"
)

// Migrate applies the schema. Every statement is idempotent so it runs on
// each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS tribes (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		owner_id    TEXT NOT NULL,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS tribe_members (
		id        TEXT PRIMARY KEY,
		tribe_id  TEXT NOT NULL REFERENCES tribes(id) ON DELETE CASCADE,
		user_id   TEXT NOT NULL,
		role      TEXT NOT NULL CHECK(role IN ('owner','admin','member')),
		joined_at TEXT NOT NULL,
		UNIQUE(tribe_id, user_id)
	)`,
	`CREATE TABLE IF NOT EXISTS tasks (
		id          TEXT PRIMARY KEY,
		title       TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		priority    TEXT NOT NULL,
		status      TEXT NOT NULL DEFAULT 'todo',
		due_date    TEXT,
		user_id     TEXT NOT NULL,
		tribe_id    TEXT REFERENCES tribes(id) ON DELETE SET NULL,
		assigned_to TEXT NOT NULL DEFAULT '',
		tags        TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_user ON tasks(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_tribe ON tasks(tribe_id)`,
	`CREATE TABLE IF NOT EXISTS achievements (
		id          TEXT PRIMARY KEY,
		title       TEXT NOT NULL UNIQUE,
		description TEXT NOT NULL DEFAULT '',
		icon        TEXT NOT NULL DEFAULT '',
		points      INTEGER NOT NULL DEFAULT 0 CHECK(points >= 0),
		category    TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS user_achievements (
		id             TEXT PRIMARY KEY,
		user_id        TEXT NOT NULL,
		achievement_id TEXT NOT NULL REFERENCES achievements(id) ON DELETE CASCADE,
		earned_at      TEXT NOT NULL,
		UNIQUE(user_id, achievement_id)
	)`,
	`CREATE TABLE IF NOT EXISTS subscriptions (
		user_id              TEXT PRIMARY KEY,
		subscription_id      TEXT NOT NULL DEFAULT '',
		price_id             TEXT NOT NULL DEFAULT '',
		status               TEXT NOT NULL,
		current_period_start TEXT,
		current_period_end   TEXT,
		cancel_at_period_end INTEGER NOT NULL DEFAULT 0,
		updated_at           TEXT NOT NULL
	)`,
}

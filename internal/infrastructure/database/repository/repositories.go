package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories bundles all persistence repositories
type Repositories struct {
	History *HistoryRepository

	pool *pgxpool.Pool
}

// New creates the repository bundle
func New(pool *pgxpool.Pool) *Repositories {
	return &Repositories{
		History: NewHistoryRepository(pool),
		pool:    pool,
	}
}

// EnsureSchema creates the tables the service needs if they do not exist
func (r *Repositories) EnsureSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS analysis_history (
			id UUID PRIMARY KEY,
			device_id TEXT NOT NULL DEFAULT '',
			analysis_type TEXT NOT NULL,
			score INT NOT NULL,
			is_threat BOOLEAN NOT NULL,
			risk_level TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_analysis_history_device
			ON analysis_history (device_id, created_at DESC)`,
	}

	for _, stmt := range stmts {
		if _, err := r.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}

// Ping verifies the database connection is alive.
func (r *Repositories) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

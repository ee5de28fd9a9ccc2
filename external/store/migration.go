package store

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

var migrationStatements = []string{
	`CREATE TABLE IF NOT EXISTS review_runs (
		review_date DATE PRIMARY KEY,
		video_id TEXT NOT NULL DEFAULT '',
		item_count INTEGER NOT NULL DEFAULT 0,
		video_updated BOOLEAN NOT NULL DEFAULT FALSE,
		comments_updated BOOLEAN NOT NULL DEFAULT FALSE,
		notes_committed BOOLEAN NOT NULL DEFAULT FALSE,
		email_sent BOOLEAN NOT NULL DEFAULT FALSE,
		completed_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

func RunMigration(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range migrationStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

package store

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/reviewstream/reviewnotes/internal/store"
)

type PostgresLedger struct {
	pool *pgxpool.Pool
}

func NewPostgresLedger(pool *pgxpool.Pool) store.Ledger {
	return &PostgresLedger{pool: pool}
}

func (l *PostgresLedger) GetRun(ctx context.Context, date time.Time) (*store.Run, error) {
	row := l.pool.QueryRow(ctx,
		`SELECT review_date, video_id, item_count, video_updated, comments_updated, notes_committed, email_sent, completed_at
		 FROM review_runs WHERE review_date = $1`,
		date)
	var r store.Run
	err := row.Scan(&r.Date, &r.VideoID, &r.ItemCount, &r.VideoUpdated, &r.CommentsUpdated, &r.NotesCommitted, &r.EmailSent, &r.CompletedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &r, nil
}

func (l *PostgresLedger) RecordRun(ctx context.Context, input store.RecordRunInput) error {
	_, err := l.pool.Exec(ctx,
		`INSERT INTO review_runs (review_date, video_id, item_count, video_updated, comments_updated, notes_committed, email_sent, completed_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		 ON CONFLICT (review_date) DO UPDATE SET
			video_id = EXCLUDED.video_id,
			item_count = EXCLUDED.item_count,
			video_updated = review_runs.video_updated OR EXCLUDED.video_updated,
			comments_updated = review_runs.comments_updated OR EXCLUDED.comments_updated,
			notes_committed = review_runs.notes_committed OR EXCLUDED.notes_committed,
			email_sent = review_runs.email_sent OR EXCLUDED.email_sent,
			completed_at = NOW()`,
		input.Date, input.VideoID, input.ItemCount, input.VideoUpdated, input.CommentsUpdated, input.NotesCommitted, input.EmailSent)
	return err
}

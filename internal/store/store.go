// Package store records publish runs so backfills can skip dates whose
// notes already went out.
package store

import (
	"context"
	"time"
)

// Run is the recorded outcome of publishing one review date.
type Run struct {
	Date            time.Time
	VideoID         string
	ItemCount       int
	VideoUpdated    bool
	CommentsUpdated bool
	NotesCommitted  bool
	EmailSent       bool
	CompletedAt     time.Time
}

type RecordRunInput struct {
	Date            time.Time
	VideoID         string
	ItemCount       int
	VideoUpdated    bool
	CommentsUpdated bool
	NotesCommitted  bool
	EmailSent       bool
}

// Ledger persists runs. GetRun returns (nil, nil) for an unknown date.
type Ledger interface {
	GetRun(ctx context.Context, date time.Time) (*Run, error)
	RecordRun(ctx context.Context, input RecordRunInput) error
}

// NoopLedger is used when no database is configured: every date looks
// unpublished and nothing is recorded.
type NoopLedger struct{}

func (NoopLedger) GetRun(context.Context, time.Time) (*Run, error) { return nil, nil }
func (NoopLedger) RecordRun(context.Context, RecordRunInput) error { return nil }

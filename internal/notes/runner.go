// Package notes orchestrates one run of the pipeline: gather review
// activity, locate the recording, assemble the summary, publish.
package notes

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/reviewstream/reviewnotes/internal/githost"
	"github.com/reviewstream/reviewnotes/internal/review"
	"github.com/reviewstream/reviewnotes/internal/store"
	"github.com/reviewstream/reviewnotes/internal/summary"
	"github.com/reviewstream/reviewnotes/internal/videohost"
)

// VideoSource is the slice of the locator the runner needs.
type VideoSource interface {
	ForDate(ctx context.Context, playlistID string, date time.Time) (*videohost.Video, error)
	ForRange(ctx context.Context, playlistID string, from, to time.Time) (map[time.Time]videohost.Video, error)
}

// Runner drives the pipeline. Per-issue work is self-contained; records
// are sorted once after all fetching, so fetch order never matters.
type Runner struct {
	issues     githost.IssueReader
	classifier *review.Classifier
	correlator *review.Correlator
	videos     VideoSource
	publisher  *summary.Publisher
	ledger     store.Ledger

	repos      []githost.OrgRepo
	playlistID string
	loc        *time.Location
}

func NewRunner(issues githost.IssueReader, classifier *review.Classifier, correlator *review.Correlator, videos VideoSource, publisher *summary.Publisher, ledger store.Ledger, repos []githost.OrgRepo, playlistID string, loc *time.Location) *Runner {
	if loc == nil {
		loc = time.UTC
	}
	return &Runner{
		issues:     issues,
		classifier: classifier,
		correlator: correlator,
		videos:     videos,
		publisher:  publisher,
		ledger:     ledger,
		repos:      repos,
		playlistID: playlistID,
		loc:        loc,
	}
}

// RunDate builds and publishes the summary for a single review date.
// The summary and per-action report are returned even when some publish
// actions failed.
func (r *Runner) RunDate(ctx context.Context, date time.Time, opts summary.Options) (*summary.Summary, summary.Report, error) {
	day := review.Day(date, r.loc)
	slog.Info("running review notes", "date", day.Format(time.DateOnly))

	video, err := r.videos.ForDate(ctx, r.playlistID, day)
	if err != nil {
		return nil, summary.Report{}, fmt.Errorf("locate video for %s: %w", day.Format(time.DateOnly), err)
	}
	if video == nil {
		slog.Info("no recorded livestream for date", "date", day.Format(time.DateOnly))
	}

	records, err := r.collectFeedback(ctx, review.NewDateSet(r.loc, day))
	if err != nil {
		return nil, summary.Report{}, err
	}

	s := summary.Build(day, video, records)
	report := r.publishAndRecord(ctx, s, opts)
	return s, report, nil
}

// Backfill publishes summaries for every recorded review date from the
// given date on, skipping dates whose notes already went out. All
// feedback is gathered in one sweep so issue and comment listings are
// shared across dates.
func (r *Runner) Backfill(ctx context.Context, from time.Time, opts summary.Options) error {
	now := time.Now().In(r.loc)
	byDate, err := r.videos.ForRange(ctx, r.playlistID, from, now.AddDate(0, 0, 1))
	if err != nil {
		return fmt.Errorf("list recorded livestreams: %w", err)
	}

	var pending []time.Time
	for day := range byDate {
		run, err := r.ledger.GetRun(ctx, day)
		if err != nil {
			return fmt.Errorf("read ledger for %s: %w", day.Format(time.DateOnly), err)
		}
		if run != nil && run.NotesCommitted {
			slog.Debug("date already published; skipping", "date", day.Format(time.DateOnly))
			continue
		}
		pending = append(pending, day)
	}
	sort.Slice(pending, func(i, j int) bool { return pending[i].Before(pending[j]) })
	if len(pending) == 0 {
		slog.Info("backfill: nothing to do")
		return nil
	}
	slog.Info("backfill: gathering feedback", "dates", len(pending))

	records, err := r.collectFeedback(ctx, review.NewDateSet(r.loc, pending...))
	if err != nil {
		return err
	}
	recordsByDay := make(map[time.Time][]review.FeedbackRecord)
	for _, record := range records {
		day := review.Day(record.FeedbackAt, r.loc)
		recordsByDay[day] = append(recordsByDay[day], record)
	}

	for _, day := range pending {
		dayRecords := recordsByDay[day]
		if len(dayRecords) == 0 {
			slog.Info("no review activity for date", "date", day.Format(time.DateOnly))
			continue
		}
		video := byDate[day]
		s := summary.Build(day, &video, dayRecords)
		report := r.publishAndRecord(ctx, s, opts)
		if err := report.Err(); err != nil {
			slog.Error("backfill: publish incomplete", "date", day.Format(time.DateOnly), "error", err)
		}
	}
	return nil
}

func (r *Runner) collectFeedback(ctx context.Context, dates review.DateSet) ([]review.FeedbackRecord, error) {
	var records []review.FeedbackRecord

	for _, repo := range r.repos {
		issues, err := r.issues.ListIssues(ctx, repo, review.ReviewLabels(), dates.Min())
		if err != nil {
			return nil, err
		}
		slog.Debug("scanning issues", "repo", repo.String(), "count", len(issues))

		for _, issue := range issues {
			events, err := r.issues.ListEvents(ctx, repo, issue.Number)
			if err != nil {
				return nil, err
			}
			for _, decision := range r.classifier.Classify(issue, events, dates) {
				record, err := r.correlator.Correlate(ctx, issue, decision)
				if err != nil {
					return nil, err
				}
				records = append(records, record)
			}
		}
	}

	sort.Slice(records, func(i, j int) bool { return records[i].FeedbackAt.Before(records[j].FeedbackAt) })
	return records, nil
}

func (r *Runner) publishAndRecord(ctx context.Context, s *summary.Summary, opts summary.Options) summary.Report {
	report := r.publisher.Publish(ctx, s, opts)

	input := store.RecordRunInput{
		Date:            s.Date,
		ItemCount:       len(s.Entries),
		VideoUpdated:    opts.UpdateVideo && report.VideoErr == nil,
		CommentsUpdated: opts.UpdateComments && report.CommentsErr == nil,
		NotesCommitted:  opts.CommitNotes && report.CommitErr == nil,
		EmailSent:       report.EmailSent,
	}
	if s.Video != nil {
		input.VideoID = s.Video.ID
	}
	if err := r.ledger.RecordRun(ctx, input); err != nil {
		slog.Error("failed to record run", "error", err, "date", s.Date.Format(time.DateOnly))
	}
	return report
}

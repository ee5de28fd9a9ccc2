package summary

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/reviewstream/reviewnotes/internal/githost"
	"github.com/reviewstream/reviewnotes/internal/mail"
	"github.com/reviewstream/reviewnotes/internal/review"
	"github.com/yuin/goldmark"
)

// Options selects which publish actions run. Each action is idempotent,
// so re-running a partially failed publish is safe.
type Options struct {
	UpdateVideo    bool
	UpdateComments bool
	CommitNotes    bool
	SendEmail      bool
}

func AllActions() Options {
	return Options{UpdateVideo: true, UpdateComments: true, CommitNotes: true, SendEmail: true}
}

// Report carries the per-action outcome of one publish run. Actions are
// isolated: one failure never stops the others.
type Report struct {
	VideoErr    error
	CommentsErr error
	CommitErr   error
	EmailErr    error

	CommentsUpdated int
	CommitCreated   bool
	EmailSent       bool
}

func (r Report) Err() error {
	for _, err := range []error{r.VideoErr, r.CommentsErr, r.CommitErr, r.EmailErr} {
		if err != nil {
			return err
		}
	}
	return nil
}

type Publisher struct {
	editor    githost.CommentEditor
	committer githost.NotesCommitter
	videos    VideoDescriptionUpdater
	mailer    mail.Sender

	notesRepo   githost.OrgRepo
	notesBranch string
	mailTo      string
}

// VideoDescriptionUpdater mirrors videohost.DescriptionUpdater without
// importing it, keeping this package's collaborators narrow.
type VideoDescriptionUpdater interface {
	UpdateDescription(ctx context.Context, videoID, description string) error
}

func NewPublisher(editor githost.CommentEditor, committer githost.NotesCommitter, videos VideoDescriptionUpdater, mailer mail.Sender, notesRepo githost.OrgRepo, notesBranch, mailTo string) *Publisher {
	return &Publisher{
		editor:      editor,
		committer:   committer,
		videos:      videos,
		mailer:      mailer,
		notesRepo:   notesRepo,
		notesBranch: notesBranch,
		mailTo:      mailTo,
	}
}

// Publish runs the selected actions against the summary, isolating
// failures per action.
func (p *Publisher) Publish(ctx context.Context, s *Summary, opts Options) Report {
	var report Report

	if opts.UpdateVideo {
		report.VideoErr = p.UpdateVideoDescription(ctx, s)
		if report.VideoErr != nil {
			slog.Error("video description update failed", "error", report.VideoErr, "date", s.Date)
		}
	}
	if opts.UpdateComments {
		report.CommentsUpdated, report.CommentsErr = p.UpdateComments(ctx, s)
		if report.CommentsErr != nil {
			slog.Error("comment annotation failed", "error", report.CommentsErr, "date", s.Date)
		}
	}
	if opts.CommitNotes {
		report.CommitCreated, report.CommitErr = p.CommitNotes(ctx, s)
		if report.CommitErr != nil {
			slog.Error("notes commit failed", "error", report.CommitErr, "date", s.Date)
		}
	}
	if opts.SendEmail {
		report.EmailSent, report.EmailErr = p.SendEmail(ctx, s)
		if report.EmailErr != nil {
			slog.Error("notes email failed", "error", report.EmailErr, "date", s.Date)
		}
	}

	return report
}

// UpdateVideoDescription pushes the timestamped agenda to the video.
// No-op without a video.
func (p *Publisher) UpdateVideoDescription(ctx context.Context, s *Summary) error {
	if s.Video == nil {
		return nil
	}
	return p.videos.UpdateDescription(ctx, s.Video.ID, s.VideoDescription())
}

// UpdateComments prepends the video marker to every feedback comment
// that has one to receive it. Records already annotated in a prior run,
// or without a matched comment, are skipped, so re-running never
// double-prepends.
func (p *Publisher) UpdateComments(ctx context.Context, s *Summary) (int, error) {
	updated := 0
	for _, entry := range s.Entries {
		record := entry.Record
		if record.VideoURL != "" || record.CommentID == nil {
			continue
		}
		url := entry.TimecodeURL()
		if url == "" {
			continue
		}
		body := review.AnnotateFeedbackBody(url, record.Body)
		repo := githost.OrgRepo{Org: record.Owner, Repo: record.Repo}
		if err := p.editor.UpdateComment(ctx, repo, *record.CommentID, body); err != nil {
			return updated, fmt.Errorf("update comment %d on %s#%d: %w", *record.CommentID, repo, record.IssueNumber, err)
		}
		updated++
	}
	return updated, nil
}

// CommitNotes adds the notes file to the notes repository. The
// committer refuses to overwrite, which makes re-runs no-ops.
func (p *Publisher) CommitNotes(ctx context.Context, s *Summary) (bool, error) {
	return p.committer.CommitFile(ctx, p.notesRepo, p.notesBranch,
		NotesPath(s.Date), s.NotesDocument(), CommitMessage(s.Date))
}

// SendEmail renders the notes to HTML and hands them to the mail
// collaborator. Reports sent=false without error when no distribution
// alias is configured.
func (p *Publisher) SendEmail(ctx context.Context, s *Summary) (bool, error) {
	if p.mailTo == "" {
		return false, nil
	}
	var html bytes.Buffer
	if err := goldmark.Convert([]byte(s.Markdown()), &html); err != nil {
		return false, fmt.Errorf("render notes html: %w", err)
	}
	err := p.mailer.Send(ctx, mail.Message{
		To:       p.mailTo,
		Subject:  EmailSubject(s.Date),
		HTMLBody: html.String(),
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

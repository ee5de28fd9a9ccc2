// Package githost defines the issue-tracking types and ports the review
// pipeline consumes. Adapters under external/githost implement them.
package githost

import (
	"context"
	"time"
)

type IssueState string

const (
	IssueOpen   IssueState = "open"
	IssueClosed IssueState = "closed"
)

type Issue struct {
	OrgRepo
	Number  int
	Title   string
	State   IssueState
	Labels  []string
	HTMLURL string
}

func (i Issue) HasLabel(name string) bool {
	for _, l := range i.Labels {
		if l == name {
			return true
		}
	}
	return false
}

// EventKind is a closed enumeration over the upstream event types the
// pipeline cares about. Anything else maps to EventKindUnknown so that
// new event types on the API never break classification.
type EventKind int

const (
	EventKindUnknown EventKind = iota
	EventKindLabeled
	EventKindUnlabeled
	EventKindClosed
	EventKindReopened
)

func EventKindOf(raw string) EventKind {
	switch raw {
	case "labeled":
		return EventKindLabeled
	case "unlabeled":
		return EventKindUnlabeled
	case "closed":
		return EventKindClosed
	case "reopened":
		return EventKindReopened
	default:
		return EventKindUnknown
	}
}

type IssueEvent struct {
	Kind      EventKind
	Raw       string
	Label     string
	Actor     string
	CreatedAt time.Time
}

type IssueComment struct {
	ID        int64
	Author    string
	Body      string
	CreatedAt time.Time
	HTMLURL   string
}

type IssueReader interface {
	// ListIssues returns the issues of repo carrying any of the given
	// labels, in any state, updated at or after since. Duplicates across
	// labels are collapsed.
	ListIssues(ctx context.Context, repo OrgRepo, labels []string, since time.Time) ([]Issue, error)
	ListEvents(ctx context.Context, repo OrgRepo, number int) ([]IssueEvent, error)
	ListComments(ctx context.Context, repo OrgRepo, number int) ([]IssueComment, error)
}

type CommentEditor interface {
	UpdateComment(ctx context.Context, repo OrgRepo, commentID int64, body string) error
}

// NotesCommitter adds a single file to a branch through the git data API.
// Implementations must not overwrite: when a file already exists at path
// they return created=false without touching the repository.
type NotesCommitter interface {
	CommitFile(ctx context.Context, repo OrgRepo, branch, path, content, message string) (created bool, err error)
}

package review

import (
	"sort"
	"time"

	"github.com/reviewstream/reviewnotes/internal/githost"
)

// Decision is one review outcome for an issue: the decisive event's
// timestamp, the actor who triggered it, and the resolved status.
type Decision struct {
	At     time.Time
	Actor  string
	Status Status
}

// Classifier scans an issue's label snapshot and event history for
// review outcomes. It is pure; all data is fetched by the caller.
type Classifier struct {
	loc *time.Location
}

func NewClassifier(loc *time.Location) *Classifier {
	if loc == nil {
		loc = time.UTC
	}
	return &Classifier{loc: loc}
}

// Classify returns zero or more decisions for the issue, at most one per
// calendar date in dates. An issue that never entered the review queue
// (no ready-for-review label, live or historical) yields none.
func (c *Classifier) Classify(issue githost.Issue, events []githost.IssueEvent, dates DateSet) []Decision {
	if !wasEverReadyForReview(issue, events) {
		return nil
	}
	status, ok := resolveStatus(issue)
	if !ok {
		return nil
	}

	// Latest matching event per calendar date wins; label churn within a
	// day produces duplicate events with the same meaning.
	latestPerDay := make(map[string]githost.IssueEvent)
	for _, e := range events {
		if !dates.Contains(e.CreatedAt) {
			continue
		}
		if !isDecisiveFor(e, status) {
			continue
		}
		key := e.CreatedAt.In(c.loc).Format(dayKeyLayout)
		if prev, ok := latestPerDay[key]; !ok || e.CreatedAt.After(prev.CreatedAt) {
			latestPerDay[key] = e
		}
	}

	decisions := make([]Decision, 0, len(latestPerDay))
	for _, e := range latestPerDay {
		decisions = append(decisions, Decision{At: e.CreatedAt, Actor: e.Actor, Status: status})
	}
	sort.Slice(decisions, func(i, j int) bool { return decisions[i].At.Before(decisions[j].At) })
	return decisions
}

// resolveStatus assumes the issue already passed the ready-for-review
// gate, so a closed issue counts as rejected.
func resolveStatus(issue githost.Issue) (Status, bool) {
	approved := issue.HasLabel(LabelApproved)
	needsWork := issue.HasLabel(LabelNeedsWork)
	rejected := issue.State == githost.IssueClosed
	return ResolveStatus(approved, rejected, needsWork)
}

func wasEverReadyForReview(issue githost.Issue, events []githost.IssueEvent) bool {
	if issue.HasLabel(LabelReadyForReview) {
		return true
	}
	for _, e := range events {
		if e.Kind == githost.EventKindLabeled && e.Label == LabelReadyForReview {
			return true
		}
	}
	return false
}

// isDecisiveFor matches an event against the trigger of the resolved
// status. Unknown event kinds never match.
func isDecisiveFor(e githost.IssueEvent, status Status) bool {
	switch status {
	case StatusApproved:
		return e.Kind == githost.EventKindLabeled && e.Label == LabelApproved
	case StatusNeedsWork:
		return e.Kind == githost.EventKindLabeled && e.Label == LabelNeedsWork
	case StatusRejected:
		return e.Kind == githost.EventKindClosed
	default:
		return false
	}
}

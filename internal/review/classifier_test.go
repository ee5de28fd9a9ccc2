package review

import (
	"testing"
	"time"

	"github.com/reviewstream/reviewnotes/internal/githost"
)

var reviewDay = time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC)

func at(hour, min int) time.Time {
	return time.Date(2023, 1, 5, hour, min, 0, 0, time.UTC)
}

func labeled(label string, when time.Time) githost.IssueEvent {
	return githost.IssueEvent{Kind: githost.EventKindLabeled, Raw: "labeled", Label: label, Actor: "terrajobst", CreatedAt: when}
}

func closed(when time.Time) githost.IssueEvent {
	return githost.IssueEvent{Kind: githost.EventKindClosed, Raw: "closed", Actor: "terrajobst", CreatedAt: when}
}

func TestClassify_NoReviewLabels(t *testing.T) {
	c := NewClassifier(time.UTC)
	issue := githost.Issue{State: githost.IssueOpen, Labels: []string{"area-System.Net"}}
	events := []githost.IssueEvent{labeled("area-System.Net", at(9, 0))}
	if got := c.Classify(issue, events, NewDateSet(time.UTC, reviewDay)); len(got) != 0 {
		t.Fatalf("expected no decisions, got %v", got)
	}
}

func TestClassify_ReadyForReviewGate(t *testing.T) {
	c := NewClassifier(time.UTC)
	// api-approved is on the issue, but it never carried
	// api-ready-for-review in label set or history.
	issue := githost.Issue{State: githost.IssueOpen, Labels: []string{LabelApproved}}
	events := []githost.IssueEvent{labeled(LabelApproved, at(9, 30))}
	if got := c.Classify(issue, events, NewDateSet(time.UTC, reviewDay)); len(got) != 0 {
		t.Fatalf("expected exclusion without ready-for-review, got %v", got)
	}

	// Historical labeling event is enough even when the label was removed.
	events = append([]githost.IssueEvent{labeled(LabelReadyForReview, at(8, 0))}, events...)
	got := c.Classify(issue, events, NewDateSet(time.UTC, reviewDay))
	if len(got) != 1 || got[0].Status != StatusApproved {
		t.Fatalf("expected one approved decision, got %v", got)
	}
}

func TestClassify_PrecedenceApprovedOverNeedsWork(t *testing.T) {
	c := NewClassifier(time.UTC)
	issue := githost.Issue{
		State:  githost.IssueClosed,
		Labels: []string{LabelReadyForReview, LabelNeedsWork, LabelApproved},
	}
	events := []githost.IssueEvent{
		labeled(LabelNeedsWork, at(9, 10)),
		labeled(LabelApproved, at(9, 50)),
		closed(at(10, 0)),
	}
	got := c.Classify(issue, events, NewDateSet(time.UTC, reviewDay))
	if len(got) != 1 {
		t.Fatalf("expected one decision, got %v", got)
	}
	if got[0].Status != StatusApproved {
		t.Fatalf("expected Approved to win, got %v", got[0].Status)
	}
	if !got[0].At.Equal(at(9, 50)) {
		t.Fatalf("expected the api-approved labeling to be decisive, got %v", got[0].At)
	}
}

func TestClassify_LatestEventOnSameDateWins(t *testing.T) {
	c := NewClassifier(time.UTC)
	issue := githost.Issue{State: githost.IssueOpen, Labels: []string{LabelReadyForReview, LabelNeedsWork}}
	events := []githost.IssueEvent{
		labeled(LabelNeedsWork, at(9, 5)),
		labeled(LabelNeedsWork, at(9, 40)),
	}
	got := c.Classify(issue, events, NewDateSet(time.UTC, reviewDay))
	if len(got) != 1 {
		t.Fatalf("expected one decision, got %v", got)
	}
	if !got[0].At.Equal(at(9, 40)) {
		t.Fatalf("expected the later labeling to win, got %v", got[0].At)
	}
}

func TestClassify_MultipleDates(t *testing.T) {
	c := NewClassifier(time.UTC)
	otherDay := reviewDay.AddDate(0, 0, 7)
	issue := githost.Issue{State: githost.IssueOpen, Labels: []string{LabelReadyForReview, LabelNeedsWork}}
	events := []githost.IssueEvent{
		labeled(LabelNeedsWork, at(9, 5)),
		labeled(LabelNeedsWork, otherDay.Add(10*time.Hour)),
	}
	got := c.Classify(issue, events, NewDateSet(time.UTC, reviewDay, otherDay))
	if len(got) != 2 {
		t.Fatalf("expected two decisions across dates, got %v", got)
	}
	if !got[0].At.Before(got[1].At) {
		t.Fatal("expected decisions ordered by time")
	}
}

func TestClassify_DateFilter(t *testing.T) {
	c := NewClassifier(time.UTC)
	issue := githost.Issue{State: githost.IssueOpen, Labels: []string{LabelReadyForReview, LabelApproved}}
	events := []githost.IssueEvent{labeled(LabelApproved, at(9, 30))}
	off := NewDateSet(time.UTC, reviewDay.AddDate(0, 0, 1))
	if got := c.Classify(issue, events, off); len(got) != 0 {
		t.Fatalf("expected no decisions outside the date filter, got %v", got)
	}
}

func TestClassify_RejectedViaClose(t *testing.T) {
	c := NewClassifier(time.UTC)
	issue := githost.Issue{State: githost.IssueClosed, Labels: []string{}}
	events := []githost.IssueEvent{
		labeled(LabelReadyForReview, at(8, 0)),
		closed(at(9, 45)),
	}
	got := c.Classify(issue, events, NewDateSet(time.UTC, reviewDay))
	if len(got) != 1 || got[0].Status != StatusRejected {
		t.Fatalf("expected one rejected decision, got %v", got)
	}
}

func TestClassify_ClosedWithoutReadyIsNotRejected(t *testing.T) {
	c := NewClassifier(time.UTC)
	// Closed issues only count as rejected when they passed through the
	// review queue.
	issue := githost.Issue{State: githost.IssueClosed, Labels: []string{"area-System.Net"}}
	events := []githost.IssueEvent{
		labeled("area-System.Net", at(9, 0)),
		closed(at(9, 45)),
	}
	if got := c.Classify(issue, events, NewDateSet(time.UTC, reviewDay)); len(got) != 0 {
		t.Fatalf("expected no decisions, got %v", got)
	}
}

func TestClassify_UnknownEventsSkipped(t *testing.T) {
	c := NewClassifier(time.UTC)
	issue := githost.Issue{State: githost.IssueOpen, Labels: []string{LabelReadyForReview, LabelApproved}}
	events := []githost.IssueEvent{
		{Kind: githost.EventKindUnknown, Raw: "transferred", CreatedAt: at(9, 0)},
		labeled(LabelApproved, at(9, 30)),
		{Kind: githost.EventKindUnknown, Raw: "automatic_base_change_succeeded", CreatedAt: at(9, 55)},
	}
	got := c.Classify(issue, events, NewDateSet(time.UTC, reviewDay))
	if len(got) != 1 || !got[0].At.Equal(at(9, 30)) {
		t.Fatalf("expected unknown events skipped, got %v", got)
	}
}

func TestResolveStatus(t *testing.T) {
	if s, ok := ResolveStatus(true, true, true); !ok || s != StatusApproved {
		t.Fatalf("expected Approved, got %v %v", s, ok)
	}
	if s, ok := ResolveStatus(false, true, true); !ok || s != StatusRejected {
		t.Fatalf("expected Rejected, got %v %v", s, ok)
	}
	if s, ok := ResolveStatus(false, false, true); !ok || s != StatusNeedsWork {
		t.Fatalf("expected Needs Work, got %v %v", s, ok)
	}
	if _, ok := ResolveStatus(false, false, false); ok {
		t.Fatal("expected no status")
	}
}

func TestStatusString(t *testing.T) {
	if StatusNeedsWork.String() != "Needs Work" {
		t.Fatalf("unexpected %q", StatusNeedsWork.String())
	}
	if StatusApproved.String() != "Approved" || StatusRejected.String() != "Rejected" {
		t.Fatal("unexpected status strings")
	}
}

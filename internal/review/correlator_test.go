package review

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/reviewstream/reviewnotes/internal/githost"
)

type mockCommentSource struct {
	comments  []githost.IssueComment
	listCalls int
	err       error
}

func (m *mockCommentSource) ListComments(_ context.Context, _ githost.OrgRepo, _ int) ([]githost.IssueComment, error) {
	m.listCalls++
	if m.err != nil {
		return nil, m.err
	}
	return m.comments, nil
}

func testIssue() githost.Issue {
	return githost.Issue{
		OrgRepo: githost.OrgRepo{Org: "dotnet", Repo: "runtime"},
		Number:  4242,
		Title:   "API Proposal: Add Span overloads",
		State:   githost.IssueOpen,
		Labels:  []string{LabelReadyForReview, LabelApproved},
		HTMLURL: "https://github.com/dotnet/runtime/issues/4242",
	}
}

func TestCorrelate_ClosestCommentWins(t *testing.T) {
	eventAt := at(9, 30)
	src := &mockCommentSource{comments: []githost.IssueComment{
		{ID: 1, Author: "someone-else", Body: "drive-by", CreatedAt: eventAt.Add(2 * time.Minute), HTMLURL: "https://example.invalid/1"},
		{ID: 2, Author: "terrajobst", Body: "too late", CreatedAt: eventAt.Add(20 * time.Minute), HTMLURL: "https://example.invalid/2"},
		{ID: 3, Author: "terrajobst", Body: "the feedback", CreatedAt: eventAt.Add(10 * time.Minute), HTMLURL: "https://example.invalid/3"},
	}}
	c := NewCorrelator(src)

	record, err := c.Correlate(context.Background(), testIssue(), Decision{At: eventAt, Actor: "terrajobst", Status: StatusApproved})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if record.CommentID == nil || *record.CommentID != 3 {
		t.Fatalf("expected comment 3 selected, got %+v", record.CommentID)
	}
	if record.Body != "the feedback" {
		t.Fatalf("unexpected body %q", record.Body)
	}
	if record.URL != "https://example.invalid/3" {
		t.Fatalf("unexpected url %q", record.URL)
	}
	if record.Title != "Add Span overloads" {
		t.Fatalf("expected normalized title, got %q", record.Title)
	}
}

func TestCorrelate_NoMatchFallsBackToIssue(t *testing.T) {
	eventAt := at(9, 30)
	src := &mockCommentSource{comments: []githost.IssueComment{
		{ID: 1, Author: "terrajobst", Body: "way earlier", CreatedAt: eventAt.Add(-16 * time.Minute)},
	}}
	c := NewCorrelator(src)

	record, err := c.Correlate(context.Background(), testIssue(), Decision{At: eventAt, Actor: "terrajobst", Status: StatusApproved})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if record.CommentID != nil {
		t.Fatalf("expected no comment, got %v", *record.CommentID)
	}
	if record.URL != "https://github.com/dotnet/runtime/issues/4242" {
		t.Fatalf("expected issue url fallback, got %q", record.URL)
	}
	if record.Body != "" {
		t.Fatalf("expected empty body, got %q", record.Body)
	}
}

func TestCorrelate_ParsesVideoMarker(t *testing.T) {
	eventAt := at(9, 30)
	src := &mockCommentSource{comments: []githost.IssueComment{
		{ID: 7, Author: "terrajobst", Body: "[Video](https://www.youtube.com/watch?v=abc&t=610s)\n\nLooks good.", CreatedAt: eventAt.Add(time.Minute)},
	}}
	c := NewCorrelator(src)

	record, err := c.Correlate(context.Background(), testIssue(), Decision{At: eventAt, Actor: "terrajobst", Status: StatusApproved})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if record.VideoURL != "https://www.youtube.com/watch?v=abc&t=610s" {
		t.Fatalf("unexpected video url %q", record.VideoURL)
	}
	if record.Body != "Looks good." {
		t.Fatalf("expected marker stripped, got %q", record.Body)
	}
}

func TestCorrelate_CommentsFetchedOncePerIssue(t *testing.T) {
	eventAt := at(9, 30)
	src := &mockCommentSource{}
	c := NewCorrelator(src)
	issue := testIssue()

	for _, d := range []Decision{
		{At: eventAt, Actor: "terrajobst", Status: StatusNeedsWork},
		{At: eventAt.AddDate(0, 0, 7), Actor: "terrajobst", Status: StatusApproved},
	} {
		if _, err := c.Correlate(context.Background(), issue, d); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	}
	if src.listCalls != 1 {
		t.Fatalf("expected one comment listing, got %d", src.listCalls)
	}
}

func TestCorrelate_FetchError(t *testing.T) {
	src := &mockCommentSource{err: errors.New("rate limited")}
	c := NewCorrelator(src)
	if _, err := c.Correlate(context.Background(), testIssue(), Decision{At: at(9, 30), Actor: "terrajobst"}); err == nil {
		t.Fatal("expected error surfaced")
	}
}

func TestParseFeedbackBody(t *testing.T) {
	url, md := ParseFeedbackBody("[Video](https://youtu.be/x)\n\nBody text")
	if url != "https://youtu.be/x" || md != "Body text" {
		t.Fatalf("unexpected parse: %q %q", url, md)
	}

	url, md = ParseFeedbackBody("Plain body")
	if url != "" || md != "Plain body" {
		t.Fatalf("unexpected parse: %q %q", url, md)
	}

	// Malformed marker stays untouched.
	url, md = ParseFeedbackBody("[Video](no closing paren")
	if url != "" || md != "[Video](no closing paren" {
		t.Fatalf("unexpected parse: %q %q", url, md)
	}
}

func TestAnnotateFeedbackBody_RoundTrip(t *testing.T) {
	body := AnnotateFeedbackBody("https://youtu.be/x", "Body text")
	url, md := ParseFeedbackBody(body)
	if url != "https://youtu.be/x" || md != "Body text" {
		t.Fatalf("round trip failed: %q %q", url, md)
	}
}

package githost

import (
	"testing"

	"github.com/google/go-github/v69/github"
	"github.com/reviewstream/reviewnotes/internal/githost"
)

func TestMapIssue(t *testing.T) {
	repo := githost.OrgRepo{Org: "dotnet", Repo: "runtime"}
	issue := &github.Issue{
		Number:  github.Int(80316),
		Title:   github.String("[API Proposal]: Frozen collections"),
		State:   github.String("closed"),
		HTMLURL: github.String("https://github.com/dotnet/runtime/issues/80316"),
		Labels: []*github.Label{
			{Name: github.String("api-ready-for-review")},
			{Name: github.String("api-approved")},
		},
	}

	got := mapIssue(repo, issue)
	if got.OrgRepo != repo {
		t.Fatalf("unexpected repo %v", got.OrgRepo)
	}
	if got.Number != 80316 {
		t.Fatalf("unexpected number %d", got.Number)
	}
	if got.Title != "[API Proposal]: Frozen collections" {
		t.Fatalf("unexpected title %q", got.Title)
	}
	if got.State != githost.IssueClosed {
		t.Fatalf("expected closed, got %q", got.State)
	}
	if got.HTMLURL != "https://github.com/dotnet/runtime/issues/80316" {
		t.Fatalf("unexpected url %q", got.HTMLURL)
	}
	if len(got.Labels) != 2 || !got.HasLabel("api-ready-for-review") || !got.HasLabel("api-approved") {
		t.Fatalf("unexpected labels %v", got.Labels)
	}
}

func TestMapIssue_OpenWithoutLabels(t *testing.T) {
	got := mapIssue(githost.OrgRepo{Org: "dotnet", Repo: "runtime"}, &github.Issue{
		Number: github.Int(1),
		State:  github.String("open"),
	})
	if got.State != githost.IssueOpen {
		t.Fatalf("expected open, got %q", got.State)
	}
	if len(got.Labels) != 0 {
		t.Fatalf("expected no labels, got %v", got.Labels)
	}
}

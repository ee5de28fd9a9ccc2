package githost

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/go-github/v69/github"
	"github.com/reviewstream/reviewnotes/internal/githost"
	"golang.org/x/oauth2"
)

const pageSize = 100

// Client implements the githost ports over the GitHub REST API.
type Client struct {
	gh *github.Client
}

func NewClient(token string) *Client {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := oauth2.NewClient(context.Background(), ts)
	return &Client{gh: github.NewClient(httpClient)}
}

func (c *Client) ListIssues(ctx context.Context, repo githost.OrgRepo, labels []string, since time.Time) ([]githost.Issue, error) {
	// One query per label: the API treats a multi-label filter as an AND,
	// and we want issues carrying any of them. Duplicates collapse by
	// issue number.
	byNumber := make(map[int]githost.Issue)
	for _, label := range labels {
		opts := &github.IssueListByRepoOptions{
			State:       "all",
			Labels:      []string{label},
			Since:       since,
			ListOptions: github.ListOptions{PerPage: pageSize},
		}
		for {
			issues, resp, err := c.gh.Issues.ListByRepo(ctx, repo.Org, repo.Repo, opts)
			if err != nil {
				return nil, fmt.Errorf("list issues for %s with label %s: %w", repo, label, err)
			}
			for _, issue := range issues {
				if issue.IsPullRequest() {
					continue
				}
				byNumber[issue.GetNumber()] = mapIssue(repo, issue)
			}
			if resp.NextPage == 0 {
				break
			}
			opts.Page = resp.NextPage
		}
		slog.Debug("listed issues", "repo", repo.String(), "label", label, "total", len(byNumber))
	}

	result := make([]githost.Issue, 0, len(byNumber))
	for _, issue := range byNumber {
		result = append(result, issue)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Number < result[j].Number })
	return result, nil
}

func mapIssue(repo githost.OrgRepo, issue *github.Issue) githost.Issue {
	state := githost.IssueOpen
	if issue.GetState() == "closed" {
		state = githost.IssueClosed
	}
	labels := make([]string, 0, len(issue.Labels))
	for _, l := range issue.Labels {
		labels = append(labels, l.GetName())
	}
	return githost.Issue{
		OrgRepo: repo,
		Number:  issue.GetNumber(),
		Title:   issue.GetTitle(),
		State:   state,
		Labels:  labels,
		HTMLURL: issue.GetHTMLURL(),
	}
}

func (c *Client) ListEvents(ctx context.Context, repo githost.OrgRepo, number int) ([]githost.IssueEvent, error) {
	opts := &github.ListOptions{PerPage: pageSize}
	var events []githost.IssueEvent
	for {
		page, resp, err := c.gh.Issues.ListIssueEvents(ctx, repo.Org, repo.Repo, number, opts)
		if err != nil {
			return nil, fmt.Errorf("list events for %s#%d: %w", repo, number, err)
		}
		for _, e := range page {
			raw := e.GetEvent()
			events = append(events, githost.IssueEvent{
				Kind:      githost.EventKindOf(raw),
				Raw:       raw,
				Label:     e.GetLabel().GetName(),
				Actor:     e.GetActor().GetLogin(),
				CreatedAt: e.GetCreatedAt().Time,
			})
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return events, nil
}

func (c *Client) ListComments(ctx context.Context, repo githost.OrgRepo, number int) ([]githost.IssueComment, error) {
	opts := &github.IssueListCommentsOptions{ListOptions: github.ListOptions{PerPage: pageSize}}
	var comments []githost.IssueComment
	for {
		page, resp, err := c.gh.Issues.ListComments(ctx, repo.Org, repo.Repo, number, opts)
		if err != nil {
			return nil, fmt.Errorf("list comments for %s#%d: %w", repo, number, err)
		}
		for _, cm := range page {
			comments = append(comments, githost.IssueComment{
				ID:        cm.GetID(),
				Author:    cm.GetUser().GetLogin(),
				Body:      cm.GetBody(),
				CreatedAt: cm.GetCreatedAt().Time,
				HTMLURL:   cm.GetHTMLURL(),
			})
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return comments, nil
}

func (c *Client) UpdateComment(ctx context.Context, repo githost.OrgRepo, commentID int64, body string) error {
	_, _, err := c.gh.Issues.EditComment(ctx, repo.Org, repo.Repo, commentID, &github.IssueComment{Body: github.String(body)})
	if err != nil {
		return fmt.Errorf("edit comment %d on %s: %w", commentID, repo, err)
	}
	return nil
}

// CommitFile adds a file to branch through the git data API: read the
// base tree, create a tree with the new blob, create a commit on top of
// the branch head, fast-forward the ref. Returns created=false without
// writing anything when a file already exists at path.
func (c *Client) CommitFile(ctx context.Context, repo githost.OrgRepo, branch, path, content, message string) (bool, error) {
	refName := "refs/heads/" + branch

	ref, _, err := c.gh.Git.GetRef(ctx, repo.Org, repo.Repo, refName)
	if err != nil {
		return false, fmt.Errorf("get ref %s on %s: %w", refName, repo, err)
	}
	headSHA := ref.GetObject().GetSHA()

	headCommit, _, err := c.gh.Git.GetCommit(ctx, repo.Org, repo.Repo, headSHA)
	if err != nil {
		return false, fmt.Errorf("get commit %s on %s: %w", headSHA, repo, err)
	}
	baseTreeSHA := headCommit.GetTree().GetSHA()

	baseTree, _, err := c.gh.Git.GetTree(ctx, repo.Org, repo.Repo, baseTreeSHA, true)
	if err != nil {
		return false, fmt.Errorf("get tree %s on %s: %w", baseTreeSHA, repo, err)
	}
	for _, entry := range baseTree.Entries {
		if entry.GetPath() == path {
			slog.Info("notes file already committed; skipping", "repo", repo.String(), "path", path)
			return false, nil
		}
	}

	newTree, _, err := c.gh.Git.CreateTree(ctx, repo.Org, repo.Repo, baseTreeSHA, []*github.TreeEntry{{
		Path:    github.String(path),
		Mode:    github.String("100644"),
		Type:    github.String("blob"),
		Content: github.String(content),
	}})
	if err != nil {
		return false, fmt.Errorf("create tree on %s: %w", repo, err)
	}

	newCommit, _, err := c.gh.Git.CreateCommit(ctx, repo.Org, repo.Repo, &github.Commit{
		Message: github.String(message),
		Tree:    newTree,
		Parents: []*github.Commit{{SHA: github.String(headSHA)}},
	}, nil)
	if err != nil {
		return false, fmt.Errorf("create commit on %s: %w", repo, err)
	}

	ref.Object.SHA = newCommit.SHA
	if _, _, err := c.gh.Git.UpdateRef(ctx, repo.Org, repo.Repo, ref, false); err != nil {
		return false, fmt.Errorf("update ref %s on %s: %w", refName, repo, err)
	}
	slog.Info("committed notes file", "repo", repo.String(), "path", path, "sha", newCommit.GetSHA())
	return true, nil
}

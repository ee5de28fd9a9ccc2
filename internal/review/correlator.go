package review

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/reviewstream/reviewnotes/internal/githost"
)

// commentProximityWindow bounds how far a feedback comment may sit from
// its decisive event and still be attributed to it.
const commentProximityWindow = 15 * time.Minute

// CommentSource is the one fetch the correlator performs. Satisfied by
// githost.IssueReader.
type CommentSource interface {
	ListComments(ctx context.Context, repo githost.OrgRepo, number int) ([]githost.IssueComment, error)
}

// Correlator turns a decisive (issue, timestamp, status) tuple into a
// FeedbackRecord. Comment lists are fetched once per issue and cached
// for the rest of the run, so an issue reviewed on several dates costs
// one listing.
type Correlator struct {
	source   CommentSource
	comments *gocache.Cache
}

func NewCorrelator(source CommentSource) *Correlator {
	return &Correlator{
		source:   source,
		comments: gocache.New(gocache.NoExpiration, 0),
	}
}

func (c *Correlator) Correlate(ctx context.Context, issue githost.Issue, d Decision) (FeedbackRecord, error) {
	comments, err := c.commentsFor(ctx, issue)
	if err != nil {
		return FeedbackRecord{}, fmt.Errorf("list comments for %s#%d: %w", issue.OrgRepo, issue.Number, err)
	}

	record := FeedbackRecord{
		Owner:       issue.Org,
		Repo:        issue.Repo,
		IssueNumber: issue.Number,
		Title:       NormalizeTitle(issue.Title),
		Status:      d.Status,
		FeedbackAt:  d.At,
		URL:         issue.HTMLURL,
	}

	comment, ok := closestComment(comments, d)
	if !ok {
		return record, nil
	}

	id := comment.ID
	record.CommentID = &id
	record.URL = comment.HTMLURL
	record.VideoURL, record.Body = ParseFeedbackBody(comment.Body)
	return record, nil
}

func (c *Correlator) commentsFor(ctx context.Context, issue githost.Issue) ([]githost.IssueComment, error) {
	key := fmt.Sprintf("%s#%d", issue.OrgRepo, issue.Number)
	if cached, ok := c.comments.Get(key); ok {
		return cached.([]githost.IssueComment), nil
	}
	comments, err := c.source.ListComments(ctx, issue.OrgRepo, issue.Number)
	if err != nil {
		return nil, err
	}
	c.comments.Set(key, comments, gocache.DefaultExpiration)
	return comments, nil
}

// closestComment picks the comment by the decisive actor nearest in time
// to the decisive event, within the proximity window.
func closestComment(comments []githost.IssueComment, d Decision) (githost.IssueComment, bool) {
	var (
		best     githost.IssueComment
		bestDist time.Duration
		found    bool
	)
	for _, comment := range comments {
		if comment.Author == "" || comment.Author != d.Actor {
			continue
		}
		dist := comment.CreatedAt.Sub(d.At)
		if dist < 0 {
			dist = -dist
		}
		if dist > commentProximityWindow {
			continue
		}
		if !found || dist < bestDist {
			best, bestDist, found = comment, dist, true
		}
	}
	return best, found
}

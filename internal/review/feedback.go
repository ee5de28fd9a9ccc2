package review

import (
	"fmt"
	"strings"
	"time"
)

// FeedbackRecord is one reviewed issue on one review date: the outcome,
// the decisive timestamp, and the comment that carries the feedback.
type FeedbackRecord struct {
	Owner       string
	Repo        string
	IssueNumber int
	Title       string
	Status      Status
	FeedbackAt  time.Time

	// CommentID is nil when no comment matched the decisive event; URL
	// then points at the issue itself and Body is empty.
	CommentID *int64
	URL       string
	Body      string

	// VideoURL is the clip link a prior run already prepended to the
	// comment. Non-empty means the record must not be annotated again.
	VideoURL string
}

func (r FeedbackRecord) IssueRef() string {
	return fmt.Sprintf("%s/%d", r.Repo, r.IssueNumber)
}

func (r FeedbackRecord) MarkdownLink() string {
	return fmt.Sprintf("[%s/%s#%d: %s](%s)", r.Owner, r.Repo, r.IssueNumber, r.Title, r.URL)
}

// videoMarkerPrefix is the comment-body protocol: an annotated feedback
// comment starts with "[Video](<url>)" followed by the human text.
const videoMarkerPrefix = "[Video]("

// ParseFeedbackBody splits an already-annotated comment body into its
// video URL and the remaining feedback text. Bodies without the marker
// come back unchanged with an empty URL.
func ParseFeedbackBody(body string) (videoURL, markdown string) {
	if !strings.HasPrefix(body, videoMarkerPrefix) {
		return "", body
	}
	end := strings.Index(body, ")")
	if end <= len(videoMarkerPrefix) {
		return "", body
	}
	videoURL = body[len(videoMarkerPrefix):end]
	markdown = strings.TrimLeft(body[end+1:], " \t\r\n")
	return videoURL, markdown
}

// AnnotateFeedbackBody produces the comment body for a record that is
// being linked to its review clip for the first time.
func AnnotateFeedbackBody(videoURL, markdown string) string {
	return fmt.Sprintf("[Video](%s)\n\n%s", videoURL, markdown)
}

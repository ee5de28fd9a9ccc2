// Package summary assembles per-date review notes and publishes them to
// the issue tracker, the video platform, and a mail alias.
package summary

import (
	"fmt"
	"strings"
	"time"

	"github.com/reviewstream/reviewnotes/internal/review"
	"github.com/reviewstream/reviewnotes/internal/timeline"
	"github.com/reviewstream/reviewnotes/internal/videohost"
)

// dateLayout renders dates the way the committed notes have always
// spelled them (month/day/year, no leading zeros).
const dateLayout = "1/2/2006"

// Summary is the consolidated review activity of one date. It is built
// once and never mutated; Select derives filtered copies for publishing.
type Summary struct {
	Date    time.Time
	Video   *videohost.Video
	Entries []timeline.Entry
}

func Build(date time.Time, video *videohost.Video, records []review.FeedbackRecord) *Summary {
	return &Summary{
		Date:    date,
		Video:   video,
		Entries: timeline.Build(records, video),
	}
}

// Select returns a copy carrying only the entries keep accepts. The
// receiver is left untouched.
func (s *Summary) Select(keep func(timeline.Entry) bool) *Summary {
	selected := &Summary{Date: s.Date, Video: s.Video}
	for _, e := range s.Entries {
		if keep(e) {
			selected.Entries = append(selected.Entries, e)
		}
	}
	return selected
}

// Markdown renders the notes: one section per entry with the normalized
// title as heading, a status/link metadata line, and the feedback body.
func (s *Summary) Markdown() string {
	var w strings.Builder

	for _, entry := range s.Entries {
		record := entry.Record

		fmt.Fprintf(&w, "## %s\n\n", record.Title)
		fmt.Fprintf(&w, "**%s** | [#%s](%s)", record.Status, record.IssueRef(), record.URL)
		if url := entry.TimecodeURL(); url != "" {
			fmt.Fprintf(&w, " | [Video](%s)", url)
		}
		w.WriteString("\n\n")

		if record.Body != "" {
			w.WriteString(record.Body)
			w.WriteString("\n")
		}
	}

	return w.String()
}

// NotesDocument is the full committed file: header plus the markdown.
func (s *Summary) NotesDocument() string {
	return fmt.Sprintf("# Quick Reviews %s\n\n%s", s.Date.Format(dateLayout), s.Markdown())
}

// NotesPath is the file's location inside the notes repository.
func NotesPath(date time.Time) string {
	return fmt.Sprintf("%d/%02d-%02d-quick-reviews/README.md", date.Year(), int(date.Month()), date.Day())
}

// CommitMessage for the notes commit.
func CommitMessage(date time.Time) string {
	return fmt.Sprintf("Add quick review notes for %s", date.Format(dateLayout))
}

// EmailSubject for the notes email.
func EmailSubject(date time.Time) string {
	return fmt.Sprintf("API Review Notes %s", date.Format(dateLayout))
}

// VideoDescription renders the plain-text timestamped agenda pushed to
// the video platform. Angle brackets are replaced because the platform
// rejects descriptions that look like markup.
func (s *Summary) VideoDescription() string {
	var w strings.Builder
	for _, entry := range s.Entries {
		fmt.Fprintf(&w, "%s - %s: %s %s\n",
			formatTimecode(entry.Offset), entry.Record.Status, entry.Record.Title, entry.Record.URL)
	}
	description := w.String()
	description = strings.ReplaceAll(description, "<", "(")
	description = strings.ReplaceAll(description, ">", ")")
	return description
}

func formatTimecode(d time.Duration) string {
	total := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}

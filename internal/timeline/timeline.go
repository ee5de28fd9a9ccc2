// Package timeline orders feedback records against a recorded stream
// and assigns each a playable offset into the video.
package timeline

import (
	"time"

	"github.com/reviewstream/reviewnotes/internal/review"
	"github.com/reviewstream/reviewnotes/internal/videohost"
)

const (
	// Feedback is often logged a few minutes after the stream stops
	// recording; the grace window keeps those records on the timeline.
	endGrace = 15 * time.Minute

	// Lead-in added past the previous item so the deep link lands just
	// after its discussion wrapped up.
	leadIn = 10 * time.Second
)

// Entry is one feedback record placed on a video's timeline. Offset is
// zero and TimecodeURL empty when there is no video.
type Entry struct {
	Record review.FeedbackRecord
	Video  *videohost.Video
	Offset time.Duration
}

func (e Entry) TimecodeURL() string {
	if e.Video == nil {
		return ""
	}
	return e.Video.TimecodeURL(e.Offset)
}

// Build filters records to the video's window and assigns offsets.
// Records must already be ordered by feedback timestamp. Offsets are
// non-decreasing: an offset that would run past the recording's end is
// clamped to the previous entry's.
func Build(records []review.FeedbackRecord, video *videohost.Video) []Entry {
	entries := make([]Entry, 0, len(records))

	var windowStart, windowEnd time.Time
	if video != nil {
		windowStart = video.Start
		windowEnd = video.End.Add(endGrace)
	}

	for _, record := range records {
		if video != nil {
			during := !record.FeedbackAt.Before(windowStart) && !record.FeedbackAt.After(windowEnd)
			if !during {
				continue
			}
		}

		entry := Entry{Record: record, Video: video}
		if video != nil && len(entries) > 0 {
			previous := entries[len(entries)-1]
			offset := previous.Record.FeedbackAt.Sub(video.Start) + leadIn
			if offset >= video.Duration() {
				offset = previous.Offset
			}
			entry.Offset = offset
		}
		entries = append(entries, entry)
	}
	return entries
}

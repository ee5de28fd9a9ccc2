// Package videohost models recorded review livestreams and the ports to
// the video platform.
package videohost

import (
	"context"
	"fmt"
	"time"
)

// Video is a completed livestream: both actual start and actual end are
// always set.
type Video struct {
	ID           string
	Title        string
	ThumbnailURL string
	Start        time.Time
	End          time.Time
}

func (v Video) Duration() time.Duration {
	return v.End.Sub(v.Start)
}

func (v Video) URL() string {
	return "https://www.youtube.com/watch?v=" + v.ID
}

// TimecodeURL deep-links to offset seconds into the recording.
func (v Video) TimecodeURL(offset time.Duration) string {
	return fmt.Sprintf("%s&t=%ds", v.URL(), int(offset/time.Second))
}

// Lister enumerates a playlist's completed livestreams, walking all
// pagination on the platform side. Still-scheduled or in-progress
// streams (missing actual start or end) are excluded by the adapter.
type Lister interface {
	ListCompletedLiveStreams(ctx context.Context, playlistID string) ([]Video, error)
}

type DescriptionUpdater interface {
	UpdateDescription(ctx context.Context, videoID, description string) error
}

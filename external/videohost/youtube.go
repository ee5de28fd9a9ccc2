package videohost

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/reviewstream/reviewnotes/internal/videohost"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

const playlistPageSize = 50

// YouTubeClient implements the videohost ports over the YouTube Data
// API v3.
type YouTubeClient struct {
	service *youtube.Service
}

func NewYouTubeClient(ctx context.Context, credentialsJSON string) (*YouTubeClient, error) {
	service, err := youtube.NewService(ctx, option.WithCredentialsJSON([]byte(credentialsJSON)))
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}
	return &YouTubeClient{service: service}, nil
}

// ListCompletedLiveStreams walks the playlist's pages and resolves each
// item's live-streaming details. Videos without both an actual start and
// actual end (still scheduled, or still live) are dropped.
func (c *YouTubeClient) ListCompletedLiveStreams(ctx context.Context, playlistID string) ([]videohost.Video, error) {
	var videoIDs []string
	pageToken := ""
	for {
		call := c.service.PlaylistItems.List([]string{"contentDetails"}).
			PlaylistId(playlistID).
			MaxResults(playlistPageSize)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}
		resp, err := call.Context(ctx).Do()
		if err != nil {
			return nil, fmt.Errorf("list playlist %s: %w", playlistID, err)
		}
		for _, item := range resp.Items {
			videoIDs = append(videoIDs, item.ContentDetails.VideoId)
		}
		pageToken = resp.NextPageToken
		if pageToken == "" {
			break
		}
	}
	slog.Debug("listed playlist items", "playlist_id", playlistID, "count", len(videoIDs))

	var videos []videohost.Video
	for start := 0; start < len(videoIDs); start += playlistPageSize {
		end := start + playlistPageSize
		if end > len(videoIDs) {
			end = len(videoIDs)
		}
		resp, err := c.service.Videos.List([]string{"snippet", "liveStreamingDetails"}).
			Id(videoIDs[start:end]...).
			Context(ctx).Do()
		if err != nil {
			return nil, fmt.Errorf("list videos: %w", err)
		}
		for _, item := range resp.Items {
			v, ok := mapCompletedLiveStream(item)
			if !ok {
				continue
			}
			videos = append(videos, v)
		}
	}
	return videos, nil
}

func mapCompletedLiveStream(item *youtube.Video) (videohost.Video, bool) {
	details := item.LiveStreamingDetails
	if details == nil || details.ActualStartTime == "" || details.ActualEndTime == "" {
		return videohost.Video{}, false
	}
	start, err := time.Parse(time.RFC3339, details.ActualStartTime)
	if err != nil {
		return videohost.Video{}, false
	}
	end, err := time.Parse(time.RFC3339, details.ActualEndTime)
	if err != nil {
		return videohost.Video{}, false
	}

	v := videohost.Video{ID: item.Id, Start: start, End: end}
	if item.Snippet != nil {
		v.Title = item.Snippet.Title
		if item.Snippet.Thumbnails != nil && item.Snippet.Thumbnails.High != nil {
			v.ThumbnailURL = item.Snippet.Thumbnails.High.Url
		}
	}
	return v, true
}

// UpdateDescription rewrites the video's snippet description, keeping
// the rest of the snippet intact per the API's replace semantics.
func (c *YouTubeClient) UpdateDescription(ctx context.Context, videoID, description string) error {
	resp, err := c.service.Videos.List([]string{"snippet"}).Id(videoID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("get video %s: %w", videoID, err)
	}
	if len(resp.Items) == 0 {
		return fmt.Errorf("video %s not found", videoID)
	}

	video := resp.Items[0]
	video.Snippet.Description = description
	if _, err := c.service.Videos.Update([]string{"snippet"}, video).Context(ctx).Do(); err != nil {
		return fmt.Errorf("update video %s: %w", videoID, err)
	}
	slog.Info("updated video description", "video_id", videoID)
	return nil
}

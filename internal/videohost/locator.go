package videohost

import (
	"context"
	"sort"
	"time"
)

// Locator resolves which recorded livestream belongs to a review date.
// Absence is a nil video, not an error.
type Locator struct {
	lister Lister
	loc    *time.Location
}

func NewLocator(lister Lister, loc *time.Location) *Locator {
	if loc == nil {
		loc = time.UTC
	}
	return &Locator{lister: lister, loc: loc}
}

// ForDate returns the livestream whose actual end falls on date, or nil
// when no stream ended that day. Among several candidates the one with
// the most recent start wins.
func (l *Locator) ForDate(ctx context.Context, playlistID string, date time.Time) (*Video, error) {
	videos, err := l.lister.ListCompletedLiveStreams(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	return pickForDate(videos, date, l.loc, mostRecentStart), nil
}

// ForRange maps every calendar date in [from, to) to its livestream,
// picking the longest-duration stream when a date has several.
func (l *Locator) ForRange(ctx context.Context, playlistID string, from, to time.Time) (map[time.Time]Video, error) {
	videos, err := l.lister.ListCompletedLiveStreams(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	byDate := make(map[time.Time]Video)
	for _, v := range videos {
		day := dayOf(v.End, l.loc)
		if day.Before(dayOf(from, l.loc)) || !day.Before(dayOf(to, l.loc)) {
			continue
		}
		if held, ok := byDate[day]; !ok || v.Duration() > held.Duration() {
			byDate[day] = v
		}
	}
	return byDate, nil
}

// Dates lists, oldest first, every calendar date on or after from that
// has a recorded livestream. Used by backfills.
func (l *Locator) Dates(ctx context.Context, playlistID string, from time.Time) ([]time.Time, error) {
	videos, err := l.lister.ListCompletedLiveStreams(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	seen := make(map[time.Time]struct{})
	var dates []time.Time
	for _, v := range videos {
		day := dayOf(v.End, l.loc)
		if day.Before(dayOf(from, l.loc)) {
			continue
		}
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		dates = append(dates, day)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates, nil
}

func pickForDate(videos []Video, date time.Time, loc *time.Location, better func(a, b Video) bool) *Video {
	day := dayOf(date, loc)
	var best *Video
	for i := range videos {
		v := videos[i]
		if !dayOf(v.End, loc).Equal(day) {
			continue
		}
		if best == nil || better(v, *best) {
			best = &v
		}
	}
	return best
}

func mostRecentStart(a, b Video) bool {
	return a.Start.After(b.Start)
}

func dayOf(t time.Time, loc *time.Location) time.Time {
	tl := t.In(loc)
	return time.Date(tl.Year(), tl.Month(), tl.Day(), 0, 0, 0, 0, loc)
}

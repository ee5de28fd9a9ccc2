package review

import "time"

const dayKeyLayout = "2006-01-02"

// DateSet is a set of calendar dates, evaluated in a fixed location so
// that event timestamps from the API (UTC) bucket into the same review
// day the stream ran on.
type DateSet struct {
	loc  *time.Location
	days map[string]struct{}
	min  time.Time
}

func NewDateSet(loc *time.Location, dates ...time.Time) DateSet {
	if loc == nil {
		loc = time.UTC
	}
	s := DateSet{loc: loc, days: make(map[string]struct{}, len(dates))}
	for _, d := range dates {
		day := Day(d, loc)
		s.days[day.Format(dayKeyLayout)] = struct{}{}
		if s.min.IsZero() || day.Before(s.min) {
			s.min = day
		}
	}
	return s
}

func (s DateSet) Contains(t time.Time) bool {
	_, ok := s.days[t.In(s.loc).Format(dayKeyLayout)]
	return ok
}

// Min is the earliest date in the set, used as the since-filter for
// issue listing.
func (s DateSet) Min() time.Time {
	return s.min
}

func (s DateSet) Len() int {
	return len(s.days)
}

// Day truncates t to midnight of its calendar day in loc.
func Day(t time.Time, loc *time.Location) time.Time {
	tl := t.In(loc)
	return time.Date(tl.Year(), tl.Month(), tl.Day(), 0, 0, 0, 0, loc)
}

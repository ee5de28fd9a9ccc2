package review

import (
	"testing"
	"time"
)

func TestDateSet_BucketsInLocation(t *testing.T) {
	pacific, err := time.LoadLocation("America/Los_Angeles")
	if err != nil {
		t.Fatalf("failed to load location: %v", err)
	}
	day := time.Date(2023, 1, 5, 0, 0, 0, 0, pacific)
	s := NewDateSet(pacific, day)

	// 01:30 UTC on Jan 6 is still Jan 5 in Pacific time.
	lateEvening := time.Date(2023, 1, 6, 1, 30, 0, 0, time.UTC)
	if !s.Contains(lateEvening) {
		t.Fatal("expected UTC timestamp to bucket into the local review day")
	}
	if s.Contains(time.Date(2023, 1, 6, 18, 0, 0, 0, time.UTC)) {
		t.Fatal("expected next day excluded")
	}
}

func TestDateSet_Min(t *testing.T) {
	first := time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC)
	s := NewDateSet(time.UTC, first.AddDate(0, 0, 7), first)
	if !s.Min().Equal(first) {
		t.Fatalf("expected min %v, got %v", first, s.Min())
	}
	if s.Len() != 2 {
		t.Fatalf("expected 2 days, got %d", s.Len())
	}
}

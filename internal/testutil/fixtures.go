package testutil

import (
	"time"

	"github.com/alexanderramin/activitylog/internal/domain"
	"github.com/alexanderramin/activitylog/internal/duration"
)

// FixedNow is the reference instant used by fixed clocks in tests.
var FixedNow = time.Date(2026, time.October, 16, 14, 30, 0, 0, time.UTC)

// FixedClock returns a clock that always reports t.
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// SessionLog options
type SessionLogOption func(*domain.SessionLog)

func WithCategory(c domain.GameType) SessionLogOption {
	return func(s *domain.SessionLog) {
		s.Category = c
	}
}

// NewTestSessionLog builds a session of the given length starting at 10:00 AM
// on FixedNow's day.
func NewTestSessionLog(game string, minutes int, opts ...SessionLogOption) domain.SessionLog {
	start := time.Date(FixedNow.Year(), FixedNow.Month(), FixedNow.Day(), 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Duration(minutes) * time.Minute)
	s := domain.SessionLog{
		Date:     domain.FormatSessionDate(FixedNow),
		Duration: duration.Label(start, end),
		Game:     game,
		Category: domain.GameIndoor,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

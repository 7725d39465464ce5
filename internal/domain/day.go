package domain

import (
	"fmt"
	"strings"
	"time"
)

// Day is a calendar-day key, independent of time of day and zone.
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

// DayLayout is the canonical text form of a Day.
const DayLayout = "2006-01-02"

// sessionDayLayouts are tried in order when reading SessionLog.Date.
var sessionDayLayouts = []string{
	SessionDateLayout,
	DayLayout,
	"January 2, 2006",
	"Jan 2, 2006",
	"Mon, Jan 2, 2006",
}

func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	return Day{Year: y, Month: m, Day: d}
}

// ParseDay parses a YYYY-MM-DD string.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(DayLayout, strings.TrimSpace(s))
	if err != nil {
		return Day{}, fmt.Errorf("parsing day %q: %w", s, err)
	}
	return DayOf(t), nil
}

// ParseSessionDay extracts the calendar day from a stored session date.
// Timestamps keep the date as written; no zone conversion is applied.
func ParseSessionDay(s string) (Day, error) {
	s = strings.TrimSpace(s)
	for _, layout := range sessionDayLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DayOf(t), nil
		}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return DayOf(t), nil
	}
	return Day{}, fmt.Errorf("unrecognised session date %q", s)
}

func (d Day) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d Day) IsZero() bool {
	return d == Day{}
}

func (d Day) Before(o Day) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

// Time returns midnight of the day in loc.
func (d Day) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// Package duration reads and writes the human-readable duration labels
// stored on session logs, e.g. "10:00 AM – 11:30 AM (1.50 hrs)".
package duration

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// ErrNoHours is returned by ParseHoursStrict when a label carries no number.
var ErrNoHours = errors.New("no hour value in duration label")

// ClockLayout renders times as H:MM AM/PM.
const ClockLayout = "3:04 PM"

// RangeSeparator joins the start and end clock times in a label.
const RangeSeparator = " – "

var (
	hoursSuffixPattern = regexp.MustCompile(`(?i)\((-?\d+\.?\d*)\s*hrs?\)`)
	firstNumberPattern = regexp.MustCompile(`(\d+\.?\d*)`)
)

// ParseHours extracts the hour count from a label. The parenthesized
// "(N hrs)" form wins; otherwise the first number in the string is used.
// Labels without any number, and negative hour counts, yield 0.
func ParseHours(label string) float64 {
	h, _ := ParseHoursStrict(label)
	if h < 0 {
		return 0
	}
	return h
}

// ParseHoursStrict is ParseHours but reports labels that carry no number.
func ParseHoursStrict(label string) (float64, error) {
	if m := hoursSuffixPattern.FindStringSubmatch(label); m != nil {
		return parseNumber(m[1])
	}
	if m := firstNumberPattern.FindStringSubmatch(label); m != nil {
		return parseNumber(m[1])
	}
	return 0, ErrNoHours
}

func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing hours %q: %w", s, err)
	}
	return v, nil
}

// Elapsed returns end minus start in fractional hours. Negative when end
// precedes start.
func Elapsed(start, end time.Time) float64 {
	return float64(end.Sub(start).Milliseconds()) / float64(time.Hour.Milliseconds())
}

// FormatClock renders t as H:MM AM/PM.
func FormatClock(t time.Time) string {
	return t.Format(ClockLayout)
}

// FormatHours renders an hour count with exactly two decimals.
func FormatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', 2, 64)
}

// Label composes "<start> – <end> (<hours> hrs)".
func Label(start, end time.Time) string {
	return fmt.Sprintf("%s%s%s (%s hrs)",
		FormatClock(start), RangeSeparator, FormatClock(end), FormatHours(Elapsed(start, end)))
}

package form

import (
	"fmt"
	"strings"
	"time"
)

var clockLayouts = []string{"3:04 PM", "3:04PM", "03:04 PM", "15:04"}

// ParseClock reads a wall-clock time such as "10:00 AM" or "14:30" and
// places it on date's calendar day in date's location. A time skipped by a
// daylight-saving change on that day is rejected rather than shifted.
func ParseClock(date time.Time, s string) (time.Time, error) {
	norm := strings.ToUpper(strings.TrimSpace(s))
	for _, layout := range clockLayouts {
		t, err := time.Parse(layout, norm)
		if err != nil {
			continue
		}
		y, m, d := date.Date()
		res := time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, date.Location())
		if res.Hour() != t.Hour() || res.Minute() != t.Minute() {
			return time.Time{}, fmt.Errorf("%s does not exist on %s (clock change)", t.Format("3:04 PM"), res.Format("2006-01-02"))
		}
		return res, nil
	}
	return time.Time{}, fmt.Errorf("unrecognised time %q (use e.g. 10:00 AM or 14:30)", s)
}

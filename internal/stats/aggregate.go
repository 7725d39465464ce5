// Package stats turns session logs into per-game chart data.
package stats

import (
	"sort"

	"github.com/alexanderramin/activitylog/internal/domain"
	"github.com/alexanderramin/activitylog/internal/duration"
)

// TopN caps the all-time ranking.
const TopN = 10

// Option configures an aggregation run.
type Option func(*options)

type options struct {
	onBadDuration func(log domain.SessionLog, err error)
	onBadDate     func(log domain.SessionLog, err error)
}

// WithDiagnostics registers a callback for sessions whose duration label
// carries no hour value. Such sessions still count, with zero hours.
func WithDiagnostics(fn func(log domain.SessionLog, err error)) Option {
	return func(o *options) { o.onBadDuration = fn }
}

// WithDateDiagnostics registers a callback for sessions whose date could not
// be read. Such sessions are left out of any date-scoped result.
func WithDateDiagnostics(fn func(log domain.SessionLog, err error)) Option {
	return func(o *options) { o.onBadDate = fn }
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// AggregateAll groups every session by game name and returns the TopN games
// ranked by total hours. Ties keep first-seen order.
func AggregateAll(logs []domain.SessionLog, opts ...Option) []domain.ChartDataItem {
	items := group(logs, buildOptions(opts))
	rank(items)
	if len(items) > TopN {
		items = items[:TopN]
	}
	return items
}

// AggregateForDate groups only the sessions logged on day. No truncation.
func AggregateForDate(logs []domain.SessionLog, day domain.Day, opts ...Option) []domain.ChartDataItem {
	o := buildOptions(opts)
	var scoped []domain.SessionLog
	for _, log := range logs {
		d, err := domain.ParseSessionDay(log.Date)
		if err != nil {
			if o.onBadDate != nil {
				o.onBadDate(log, err)
			}
			continue
		}
		if d == day {
			scoped = append(scoped, log)
		}
	}
	items := group(scoped, o)
	rank(items)
	return items
}

// DistinctDates returns each calendar day that has at least one session,
// earliest first.
func DistinctDates(logs []domain.SessionLog, opts ...Option) []domain.Day {
	o := buildOptions(opts)
	seen := make(map[domain.Day]bool)
	var days []domain.Day
	for _, log := range logs {
		d, err := domain.ParseSessionDay(log.Date)
		if err != nil {
			if o.onBadDate != nil {
				o.onBadDate(log, err)
			}
			continue
		}
		if seen[d] {
			continue
		}
		seen[d] = true
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Before(days[j])
	})
	return days
}

// group sums hours and sessions per exact game name, in first-seen order.
func group(logs []domain.SessionLog, o options) []domain.ChartDataItem {
	index := make(map[string]int)
	items := make([]domain.ChartDataItem, 0)
	for _, log := range logs {
		hours, err := duration.ParseHoursStrict(log.Duration)
		if err != nil {
			if o.onBadDuration != nil {
				o.onBadDuration(log, err)
			}
			hours = 0
		}
		if hours < 0 {
			hours = 0
		}

		i, ok := index[log.Game]
		if !ok {
			i = len(items)
			index[log.Game] = i
			items = append(items, domain.ChartDataItem{
				Name:     log.Game,
				Category: log.Category,
			})
		}
		item := &items[i]
		item.Hours += hours
		item.Sessions++
		if !containsCategory(item.Categories, log.Category) {
			item.Categories = append(item.Categories, log.Category)
		}
	}
	return items
}

func rank(items []domain.ChartDataItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Hours > items[j].Hours
	})
}

func containsCategory(list []domain.GameType, g domain.GameType) bool {
	for _, c := range list {
		if c == g {
			return true
		}
	}
	return false
}

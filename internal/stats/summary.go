package stats

import "github.com/alexanderramin/activitylog/internal/domain"

// Summary holds the totals shown under the chart.
type Summary struct {
	TotalHours         float64
	TotalSessions      int
	DistinctGames      int
	AvgHoursPerSession float64
}

// Summarize totals a set of chart items.
func Summarize(items []domain.ChartDataItem) Summary {
	var s Summary
	for _, item := range items {
		s.TotalHours += item.Hours
		s.TotalSessions += item.Sessions
	}
	s.DistinctGames = len(items)
	if s.TotalSessions > 0 {
		s.AvgHoursPerSession = s.TotalHours / float64(s.TotalSessions)
	}
	return s
}

// Overview is the quick-stats strip for the whole log.
type Overview struct {
	Sessions      int
	DistinctGames int
	ByCategory    map[domain.GameType]int
}

// Physical counts outdoor and indoor sessions together.
func (o Overview) Physical() int {
	return o.ByCategory[domain.GameOutdoor] + o.ByCategory[domain.GameIndoor]
}

// OverviewOf counts sessions, distinct game names and sessions per category.
func OverviewOf(logs []domain.SessionLog) Overview {
	games := make(map[string]bool)
	o := Overview{ByCategory: CountByCategory(logs)}
	for _, log := range logs {
		games[log.Game] = true
	}
	o.Sessions = len(logs)
	o.DistinctGames = len(games)
	return o
}

// CountByCategory counts sessions per category.
func CountByCategory(logs []domain.SessionLog) map[domain.GameType]int {
	counts := make(map[domain.GameType]int, 3)
	for _, log := range logs {
		counts[log.Category]++
	}
	return counts
}

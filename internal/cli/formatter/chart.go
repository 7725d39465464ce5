package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/activitylog/internal/domain"
	"github.com/alexanderramin/activitylog/internal/duration"
	"github.com/alexanderramin/activitylog/internal/stats"
	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
	legendBlock = "■"

	// DefaultBarWidth is the bar length given to the game with the most hours.
	DefaultBarWidth = 30
)

// RenderBar renders a bar of width cells, filled to pct and colored by
// category. Any positive pct shows at least one filled cell.
func RenderBar(pct float64, width int, category domain.GameType) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	if width < 2 {
		width = 2
	}

	filled := int(pct * float64(width))
	if filled == 0 && pct > 0 {
		filled = 1
	}
	if filled > width {
		filled = width
	}

	return CategoryStyle(category).Render(strings.Repeat(filledBlock, filled)) +
		StyleDim.Render(strings.Repeat(emptyBlock, width-filled))
}

// RenderBarChart renders one horizontal bar per item, scaled against the
// largest hour total. Items are drawn in the order given.
func RenderBarChart(items []domain.ChartDataItem, width int) string {
	if len(items) == 0 {
		return Dim("No gaming sessions logged yet.")
	}
	if width <= 0 {
		width = DefaultBarWidth
	}

	maxHours := 0.0
	nameWidth := 0
	for _, it := range items {
		if it.Hours > maxHours {
			maxHours = it.Hours
		}
		if w := lipgloss.Width(it.Name); w > nameWidth {
			nameWidth = w
		}
	}

	var b strings.Builder
	for _, it := range items {
		pct := 0.0
		if maxHours > 0 {
			pct = it.Hours / maxHours
		}
		name := it.Name + strings.Repeat(" ", nameWidth-lipgloss.Width(it.Name))
		fmt.Fprintf(&b, "%s  %s  %s hrs %s",
			StyleFg.Render(name),
			RenderBar(pct, width, it.Category),
			duration.FormatHours(it.Hours),
			Dim(sessionCount(it.Sessions)),
		)
		if it.MixedCategories() {
			b.WriteString(" " + StyleYellow.Render("(mixed)"))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func sessionCount(n int) string {
	if n == 1 {
		return "(1 session)"
	}
	return fmt.Sprintf("(%d sessions)", n)
}

// RenderLegend lists every category with its bar color.
func RenderLegend() string {
	parts := make([]string, 0, len(domain.AllGameTypes()))
	for _, g := range domain.AllGameTypes() {
		parts = append(parts, CategoryStyle(g).Render(legendBlock)+" "+string(g))
	}
	return strings.Join(parts, "   ")
}

// RenderSummary renders the totals line under the chart.
func RenderSummary(s stats.Summary) string {
	return strings.Join([]string{
		Bold(duration.FormatHours(s.TotalHours)) + Dim(" hrs total"),
		Bold(fmt.Sprint(s.TotalSessions)) + Dim(" sessions"),
		Bold(fmt.Sprint(s.DistinctGames)) + Dim(" games"),
		Bold(duration.FormatHours(s.AvgHoursPerSession)) + Dim(" hrs/session avg"),
	}, Dim("  ·  "))
}

// RenderOverview renders the quick-stats strip shown with the session list.
func RenderOverview(o stats.Overview) string {
	return strings.Join([]string{
		Bold(fmt.Sprint(o.Sessions)) + Dim(" sessions"),
		Bold(fmt.Sprint(o.DistinctGames)) + Dim(" games"),
		CategoryStyle(domain.GameMobile).Render(fmt.Sprintf("%d mobile", o.ByCategory[domain.GameMobile])),
		StyleGreen.Render(fmt.Sprintf("%d physical", o.Physical())),
	}, Dim("  ·  "))
}

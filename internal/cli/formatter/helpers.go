package formatter

import (
	"strings"
	"time"

	"github.com/alexanderramin/activitylog/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// HumanDay renders a day as "Today", "Yesterday", or "Mon, Jan 2, 2006"
// relative to now.
func HumanDay(d domain.Day, now time.Time) string {
	today := domain.DayOf(now)
	switch d {
	case today:
		return "Today"
	case domain.DayOf(now.AddDate(0, 0, -1)):
		return "Yesterday"
	}
	return d.Time(time.UTC).Format("Mon, Jan 2, 2006")
}

// ActivityLabel renders an activity as "🎮 Gaming".
func ActivityLabel(a domain.ActivityKind) string {
	return a.Icon + " " + a.Title
}

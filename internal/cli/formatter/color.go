package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/activitylog/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Category colors used by chart bars and badges.
var (
	ColorMobile  = lipgloss.Color("#D29DAC")
	ColorOutdoor = lipgloss.Color("#7FB3D5")
	ColorIndoor  = lipgloss.Color("#BFA5F5")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// CategoryColor returns the chart color for a game category. Unknown
// categories fall back to the dim color.
func CategoryColor(g domain.GameType) lipgloss.Color {
	switch g {
	case domain.GameMobile:
		return ColorMobile
	case domain.GameOutdoor:
		return ColorOutdoor
	case domain.GameIndoor:
		return ColorIndoor
	default:
		return ColorDim
	}
}

// CategoryStyle returns a foreground style in the category's color.
func CategoryStyle(g domain.GameType) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CategoryColor(g))
}

// CategoryBadge returns a colored indicator such as "● Indoor".
func CategoryBadge(g domain.GameType) string {
	if g == "" {
		return StyleDim.Render("● --")
	}
	return CategoryStyle(g).Render("● " + string(g))
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}

// Success renders a confirmation line.
func Success(text string) string {
	return StyleGreen.Render("✔ ") + text
}

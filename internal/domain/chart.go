package domain

// ChartDataItem is the per-game aggregate behind one chart bar.
type ChartDataItem struct {
	Name  string
	Hours float64
	// Category comes from the first contributing session.
	Category GameType
	// Categories lists every distinct category seen for the game, first-seen order.
	Categories []GameType
	Sessions   int
}

// MixedCategories reports whether sessions of this game disagree on category.
func (c ChartDataItem) MixedCategories() bool {
	return len(c.Categories) > 1
}

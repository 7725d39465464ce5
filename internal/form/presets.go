package form

import "github.com/alexanderramin/activitylog/internal/domain"

// CustomChoice is the game selection that switches the form to a free-text name.
const CustomChoice = "custom"

var presetGames = map[domain.GameType][]string{
	domain.GameMobile:  {"PUBG", "Clash of Clans", "Free Fire", "Call of Duty Mobile"},
	domain.GameOutdoor: {"Cricket", "Shuttle", "Basketball", "Football", "Tennis"},
	domain.GameIndoor:  {"Chess", "Carrom", "Table Tennis", "Pool"},
}

// PresetGames returns the suggested games for a category.
func PresetGames(category domain.GameType) []string {
	games := presetGames[category]
	out := make([]string, len(games))
	copy(out, games)
	return out
}

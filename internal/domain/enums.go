package domain

import (
	"fmt"
	"strings"
)

// GameType classifies a gaming session.
type GameType string

const (
	GameMobile  GameType = "Mobile"
	GameOutdoor GameType = "Outdoor"
	GameIndoor  GameType = "Indoor"
)

// DefaultGameType is the category a fresh form starts with.
const DefaultGameType = GameMobile

// AllGameTypes returns the categories in display order.
func AllGameTypes() []GameType {
	return []GameType{GameMobile, GameOutdoor, GameIndoor}
}

func (g GameType) Valid() bool {
	switch g {
	case GameMobile, GameOutdoor, GameIndoor:
		return true
	}
	return false
}

func (g GameType) String() string { return string(g) }

// ParseGameType resolves a category name case-insensitively.
func ParseGameType(s string) (GameType, error) {
	for _, g := range AllGameTypes() {
		if strings.EqualFold(strings.TrimSpace(s), string(g)) {
			return g, nil
		}
	}
	return "", fmt.Errorf("%q: %w", s, ErrInvalidCategory)
}

package domain

import "strings"

// FallbackIcon is used when an activity is created without an icon.
const FallbackIcon = "❓"

type ActivityKind struct {
	Title string `json:"title"`
	Icon  string `json:"icon"`
}

// Key is the case-insensitive lookup key for the activity.
func (a ActivityKind) Key() string {
	return strings.ToLower(strings.TrimSpace(a.Title))
}

// BuiltinActivities returns the activities every registry starts with.
func BuiltinActivities() []ActivityKind {
	return []ActivityKind{
		{Title: "Gaming", Icon: "🎮"},
		{Title: "Work", Icon: "💼"},
	}
}

// GamingKey is the activity key that has a full dashboard.
const GamingKey = "gaming"

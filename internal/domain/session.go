package domain

import "time"

// SessionLog is one persisted gaming session. The JSON layout is the
// on-disk format and must stay field-for-field stable.
type SessionLog struct {
	Date     string   `json:"date"`
	Duration string   `json:"duration"`
	Game     string   `json:"game"`
	Category GameType `json:"category"`
}

// GameFormData is the transient state of the log form.
type GameFormData struct {
	Game      string
	Category  GameType
	Date      time.Time
	StartTime *time.Time
	EndTime   *time.Time
	Duration  string
}

// SessionDateLayout is the layout session dates are written with.
const SessionDateLayout = "1/2/2006"

// FormatSessionDate renders a date the way SessionLog.Date stores it.
func FormatSessionDate(t time.Time) string {
	return t.Format(SessionDateLayout)
}

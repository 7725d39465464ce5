// Package form turns user selections into a validated gaming session.
package form

import (
	"strings"
	"time"

	"github.com/alexanderramin/activitylog/internal/domain"
	"github.com/alexanderramin/activitylog/internal/duration"
)

// Option configures a GameForm.
type Option func(*GameForm)

// WithAllowNegativeDuration lets an end time before the start time through,
// producing a negative hour count in the label.
func WithAllowNegativeDuration(allow bool) Option {
	return func(f *GameForm) { f.allowNegative = allow }
}

// GameForm holds the state of one session being composed. Category and date
// survive a successful Submit; game and times are reset.
type GameForm struct {
	clock         func() time.Time
	allowNegative bool

	category   domain.GameType
	selection  string
	customName string
	date       time.Time
	start      *time.Time
	end        *time.Time
}

// New creates a form defaulting to Mobile, today, and start = end = now.
func New(clock func() time.Time, opts ...Option) *GameForm {
	if clock == nil {
		clock = time.Now
	}
	now := clock()
	f := &GameForm{
		clock:    clock,
		category: domain.DefaultGameType,
		date:     now,
	}
	f.resetTimes(now)
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *GameForm) resetTimes(now time.Time) {
	start, end := now, now
	f.start, f.end = &start, &end
}

func (f *GameForm) Category() domain.GameType { return f.category }

func (f *GameForm) SetCategory(c domain.GameType) error {
	if !c.Valid() {
		return domain.ErrInvalidCategory
	}
	f.category = c
	return nil
}

// Presets returns the suggested games for the current category.
func (f *GameForm) Presets() []string {
	return PresetGames(f.category)
}

// SelectGame picks a preset game, or CustomChoice to switch to a free-text
// name. Either way any previous custom name is cleared.
func (f *GameForm) SelectGame(name string) {
	f.selection = strings.TrimSpace(name)
	f.customName = ""
}

// SetCustomName sets the free-text game name and switches to custom mode.
func (f *GameForm) SetCustomName(name string) {
	f.selection = CustomChoice
	f.customName = name
}

// IsCustom reports whether the game comes from the free-text name.
func (f *GameForm) IsCustom() bool { return f.selection == CustomChoice }

// Game returns the effective game name, "" when none is chosen.
func (f *GameForm) Game() string {
	if f.IsCustom() {
		return strings.TrimSpace(f.customName)
	}
	return f.selection
}

func (f *GameForm) Date() time.Time { return f.date }

// SetDate moves the session to d's calendar day. Any start and end already
// set keep their wall-clock times and move with it.
func (f *GameForm) SetDate(d time.Time) {
	f.date = d
	if d.IsZero() {
		return
	}
	if f.start != nil {
		s := onDay(*f.start, d)
		f.start = &s
	}
	if f.end != nil {
		e := onDay(*f.end, d)
		f.end = &e
	}
}

// SetStartTime sets the start; the zero time clears it.
func (f *GameForm) SetStartTime(t time.Time) { f.start = timePtr(t) }

// SetEndTime sets the end; the zero time clears it.
func (f *GameForm) SetEndTime(t time.Time) { f.end = timePtr(t) }

// onDay returns t's wall-clock hour and minute on day's calendar date, in
// day's location.
func onDay(t, day time.Time) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, day.Location())
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// Data snapshots the form. Duration is the label Submit would write, or ""
// while either time is missing.
func (f *GameForm) Data() domain.GameFormData {
	data := domain.GameFormData{
		Game:     f.Game(),
		Category: f.category,
		Date:     f.date,
	}
	if f.start != nil {
		s := *f.start
		data.StartTime = &s
	}
	if f.end != nil {
		e := *f.end
		data.EndTime = &e
	}
	if f.start != nil && f.end != nil {
		data.Duration = duration.Label(*f.start, *f.end)
	}
	return data
}

// Validate reports every field that would block Submit.
func (f *GameForm) Validate() error {
	verr := &ValidationError{}
	switch {
	case f.IsCustom() && f.Game() == "":
		verr.add(FieldGame, "enter a custom game name")
	case f.Game() == "":
		verr.add(FieldGame, "choose a game")
	}
	if !f.category.Valid() {
		verr.add(FieldCategory, domain.ErrInvalidCategory.Error())
	}
	if f.date.IsZero() {
		verr.add(FieldDate, "choose a date")
	}
	if f.start == nil {
		verr.add(FieldStartTime, "choose a start time")
	}
	if f.end == nil {
		verr.add(FieldEndTime, "choose an end time")
	}
	if f.start != nil && f.end != nil && f.end.Before(*f.start) && !f.allowNegative {
		verr.add(FieldEndTime, "end time is before start time")
	}
	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}

// Compose validates the form and returns the session it describes without
// touching form state.
func (f *GameForm) Compose() (domain.SessionLog, error) {
	if err := f.Validate(); err != nil {
		return domain.SessionLog{}, err
	}
	return domain.SessionLog{
		Date:     domain.FormatSessionDate(f.date),
		Duration: duration.Label(*f.start, *f.end),
		Game:     f.Game(),
		Category: f.category,
	}, nil
}

// Reset clears game and times for the next entry. Category and date stay,
// and both times go back to the current wall clock on the chosen date.
func (f *GameForm) Reset() {
	f.selection = ""
	f.customName = ""
	now := f.clock()
	if !f.date.IsZero() {
		now = onDay(now, f.date)
	}
	f.resetTimes(now)
}

// Submit composes the session and resets the form for the next entry.
// A form that fails validation is left as it was.
func (f *GameForm) Submit() (domain.SessionLog, error) {
	log, err := f.Compose()
	if err != nil {
		return domain.SessionLog{}, err
	}
	f.Reset()
	return log, nil
}

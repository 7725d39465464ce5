package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/activitylog/internal/domain"
	"github.com/alexanderramin/activitylog/internal/form"
	"github.com/charmbracelet/huh"
)

// logInput is the raw text of a session entry, from flags or the huh form.
type logInput struct {
	Category domain.GameType
	Game     string
	Custom   string
	Date     string
	Start    string
	End      string
}

// apply copies the input onto f. Empty fields leave the form defaults.
func (in logInput) apply(f *form.GameForm) error {
	if in.Category != "" {
		if err := f.SetCategory(in.Category); err != nil {
			return err
		}
	}

	custom := strings.TrimSpace(in.Custom) != ""
	if in.Game == form.CustomChoice || (in.Game == "" && custom) {
		f.SetCustomName(in.Custom)
	} else {
		f.SelectGame(in.Game)
	}

	if strings.TrimSpace(in.Date) != "" {
		day, err := domain.ParseDay(in.Date)
		if err != nil {
			return fmt.Errorf("--date: %w", err)
		}
		f.SetDate(day.Time(time.Local))
	}

	if strings.TrimSpace(in.Start) != "" {
		t, err := form.ParseClock(f.Date(), in.Start)
		if err != nil {
			return fmt.Errorf("--start: %w", err)
		}
		f.SetStartTime(t)
	}
	if strings.TrimSpace(in.End) != "" {
		t, err := form.ParseClock(f.Date(), in.End)
		if err != nil {
			return fmt.Errorf("--end: %w", err)
		}
		f.SetEndTime(t)
	}
	return nil
}

// seedFromForm fills blank input fields with the form's current values so
// the interactive prompts open on sensible defaults.
func (in *logInput) seedFromForm(f *form.GameForm) {
	data := f.Data()
	if in.Category == "" {
		in.Category = data.Category
	}
	if in.Date == "" {
		in.Date = domain.DayOf(data.Date).String()
	}
	if in.Start == "" && data.StartTime != nil {
		in.Start = data.StartTime.Format("3:04 PM")
	}
	if in.End == "" && data.EndTime != nil {
		in.End = data.EndTime.Format("3:04 PM")
	}
}

func validateClock(s string) error {
	_, err := form.ParseClock(time.Now(), s)
	return err
}

func validateDay(s string) error {
	_, err := domain.ParseDay(s)
	return err
}

// newLogForm builds the interactive session form. The game list follows the
// selected category, and the custom name prompt only shows for "Custom".
func newLogForm(in *logInput) *huh.Form {
	categories := make([]huh.Option[domain.GameType], 0, len(domain.AllGameTypes()))
	for _, g := range domain.AllGameTypes() {
		categories = append(categories, huh.NewOption(string(g), g))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.GameType]().
				Title("Category").
				Options(categories...).
				Value(&in.Category),
			huh.NewSelect[string]().
				Title("Game").
				OptionsFunc(func() []huh.Option[string] {
					return gameOptions(in.Category)
				}, &in.Category).
				Value(&in.Game),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Custom game name").
				Value(&in.Custom).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("enter a custom game name")
					}
					return nil
				}),
		).WithHideFunc(func() bool { return in.Game != form.CustomChoice }),
		huh.NewGroup(
			huh.NewInput().
				Title("Date (YYYY-MM-DD)").
				Value(&in.Date).
				Validate(validateDay),
			huh.NewInput().
				Title("Start time").
				Placeholder("10:00 AM").
				Value(&in.Start).
				Validate(validateClock),
			huh.NewInput().
				Title("End time").
				Placeholder("11:30 AM").
				Value(&in.End).
				Validate(validateClock),
		),
	).WithTheme(huhTheme()).WithShowHelp(false)
}

func gameOptions(category domain.GameType) []huh.Option[string] {
	presets := form.PresetGames(category)
	opts := make([]huh.Option[string], 0, len(presets)+1)
	for _, g := range presets {
		opts = append(opts, huh.NewOption(g, g))
	}
	return append(opts, huh.NewOption("Custom…", form.CustomChoice))
}

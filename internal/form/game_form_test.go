package form

import (
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/activitylog/internal/domain"
	"github.com/alexanderramin/activitylog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, minute int) time.Time {
	n := testutil.FixedNow
	return time.Date(n.Year(), n.Month(), n.Day(), hour, minute, 0, 0, n.Location())
}

func newForm(opts ...Option) *GameForm {
	return New(testutil.FixedClock(testutil.FixedNow), opts...)
}

func validationFields(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected *ValidationError, got %v", err)
	return verr.Fields
}

func TestNew_Defaults(t *testing.T) {
	f := newForm()
	data := f.Data()

	assert.Equal(t, domain.GameMobile, data.Category)
	assert.Equal(t, testutil.FixedNow, data.Date)
	require.NotNil(t, data.StartTime)
	require.NotNil(t, data.EndTime)
	assert.Equal(t, testutil.FixedNow, *data.StartTime)
	assert.Equal(t, testutil.FixedNow, *data.EndTime)
	assert.Empty(t, data.Game)
	assert.Equal(t, "2:30 PM – 2:30 PM (0.00 hrs)", data.Duration)
}

func TestSubmit_ComposesDurationLabel(t *testing.T) {
	f := newForm()
	require.NoError(t, f.SetCategory(domain.GameIndoor))
	f.SelectGame("Chess")
	f.SetStartTime(at(10, 0))
	f.SetEndTime(at(11, 30))

	log, err := f.Submit()
	require.NoError(t, err)
	assert.Equal(t, domain.SessionLog{
		Date:     "10/16/2026",
		Duration: "10:00 AM – 11:30 AM (1.50 hrs)",
		Game:     "Chess",
		Category: domain.GameIndoor,
	}, log)
}

func TestSubmit_ResetsGameAndTimesKeepsCategoryAndDate(t *testing.T) {
	now := testutil.FixedNow
	clock := now
	f := New(func() time.Time { return clock })
	require.NoError(t, f.SetCategory(domain.GameOutdoor))
	day := time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)
	f.SetDate(day)
	f.SelectGame("Cricket")
	f.SetStartTime(at(9, 0))
	f.SetEndTime(at(10, 0))

	clock = now.Add(2 * time.Hour)
	_, err := f.Submit()
	require.NoError(t, err)

	data := f.Data()
	assert.Empty(t, data.Game)
	assert.False(t, f.IsCustom())
	assert.Equal(t, domain.GameOutdoor, data.Category)
	assert.Equal(t, day, data.Date)
	want := time.Date(2026, 10, 12, clock.Hour(), clock.Minute(), 0, 0, time.UTC)
	assert.Equal(t, want, *data.StartTime)
	assert.Equal(t, want, *data.EndTime)
}

func TestSetDate_MovesDefaultTimesOntoDay(t *testing.T) {
	f := newForm()
	f.SelectGame("PUBG")
	f.SetDate(time.Date(2026, 10, 10, 0, 0, 0, 0, time.UTC))
	start, err := ParseClock(f.Date(), "10:00 AM")
	require.NoError(t, err)
	f.SetStartTime(start)

	data := f.Data()
	assert.Equal(t, time.Date(2026, 10, 10, 14, 30, 0, 0, time.UTC), *data.EndTime)
	assert.Equal(t, "10:00 AM – 2:30 PM (4.50 hrs)", data.Duration)
}

func TestSetDate_KeepsWallClockOfSetTimes(t *testing.T) {
	f := newForm()
	f.SetStartTime(at(9, 15))
	f.SetEndTime(time.Time{})
	f.SetDate(time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC))

	data := f.Data()
	assert.Equal(t, time.Date(2026, 10, 20, 9, 15, 0, 0, time.UTC), *data.StartTime)
	assert.Nil(t, data.EndTime)
}

func TestSubmit_CustomGameRequiresName(t *testing.T) {
	f := newForm()
	f.SelectGame(CustomChoice)

	_, err := f.Submit()
	fields := validationFields(t, err)
	assert.Equal(t, "enter a custom game name", fields[FieldGame])

	f.SetCustomName("   ")
	_, err = f.Submit()
	assert.Contains(t, validationFields(t, err), FieldGame)
}

func TestSubmit_CustomGameName(t *testing.T) {
	f := newForm()
	f.SelectGame("PUBG")
	f.SelectGame(CustomChoice)
	assert.Empty(t, f.Game(), "custom selection clears the preset")

	f.SetCustomName("  Among Us ")
	f.SetStartTime(at(20, 0))
	f.SetEndTime(at(20, 45))

	log, err := f.Submit()
	require.NoError(t, err)
	assert.Equal(t, "Among Us", log.Game)
	assert.Equal(t, "8:00 PM – 8:45 PM (0.75 hrs)", log.Duration)
}

func TestSubmit_NoGameBlocked(t *testing.T) {
	f := newForm()

	_, err := f.Submit()
	assert.Equal(t, "choose a game", validationFields(t, err)[FieldGame])
}

func TestSubmit_FailedSubmitKeepsState(t *testing.T) {
	f := newForm()
	f.SelectGame(CustomChoice)
	f.SetStartTime(at(10, 0))

	_, err := f.Submit()
	require.Error(t, err)
	assert.True(t, f.IsCustom())
	assert.Equal(t, at(10, 0), *f.Data().StartTime)
}

func TestSubmit_EndBeforeStartRejectedByDefault(t *testing.T) {
	f := newForm()
	f.SelectGame("PUBG")
	f.SetStartTime(at(11, 0))
	f.SetEndTime(at(10, 30))

	_, err := f.Submit()
	assert.Equal(t, "end time is before start time", validationFields(t, err)[FieldEndTime])
}

func TestSubmit_EndBeforeStartAllowedWhenConfigured(t *testing.T) {
	f := newForm(WithAllowNegativeDuration(true))
	f.SelectGame("PUBG")
	f.SetStartTime(at(11, 0))
	f.SetEndTime(at(10, 30))

	log, err := f.Submit()
	require.NoError(t, err)
	assert.Equal(t, "11:00 AM – 10:30 AM (-0.50 hrs)", log.Duration)
}

func TestSubmit_MissingTimes(t *testing.T) {
	f := newForm()
	f.SelectGame("Pool")
	f.SetStartTime(time.Time{})
	f.SetEndTime(time.Time{})

	fields := validationFields(t, func() error { _, err := f.Submit(); return err }())
	assert.Contains(t, fields, FieldStartTime)
	assert.Contains(t, fields, FieldEndTime)
	assert.Empty(t, f.Data().Duration)
}

func TestSetCategory_RejectsUnknown(t *testing.T) {
	f := newForm()

	err := f.SetCategory(domain.GameType("Arcade"))
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)
	assert.Equal(t, domain.GameMobile, f.Category())
}

func TestPresets_FollowCategory(t *testing.T) {
	f := newForm()
	assert.Contains(t, f.Presets(), "PUBG")

	require.NoError(t, f.SetCategory(domain.GameIndoor))
	assert.Equal(t, []string{"Chess", "Carrom", "Table Tennis", "Pool"}, f.Presets())
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{FieldStartTime: "b", FieldGame: "a"}}
	assert.Equal(t, "invalid session: game: a; startTime: b", err.Error())
	assert.Equal(t, "a", err.Field(FieldGame))
}

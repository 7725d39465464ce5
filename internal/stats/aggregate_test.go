package stats

import (
	"fmt"
	"testing"

	"github.com/alexanderramin/activitylog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionLog(game string, category domain.GameType, date string, hours string) domain.SessionLog {
	return domain.SessionLog{
		Date:     date,
		Duration: "10:00 AM – 11:00 AM (" + hours + " hrs)",
		Game:     game,
		Category: category,
	}
}

func TestAggregateAll_GroupsAndRanks(t *testing.T) {
	logs := []domain.SessionLog{
		sessionLog("Chess", domain.GameIndoor, "10/16/2026", "1.00"),
		sessionLog("Chess", domain.GameIndoor, "10/16/2026", "2.00"),
		sessionLog("Carrom", domain.GameIndoor, "10/16/2026", "0.50"),
	}

	items := AggregateAll(logs)
	require.Len(t, items, 2)

	assert.Equal(t, "Chess", items[0].Name)
	assert.InDelta(t, 3.0, items[0].Hours, 1e-9)
	assert.Equal(t, 2, items[0].Sessions)
	assert.Equal(t, domain.GameIndoor, items[0].Category)

	assert.Equal(t, "Carrom", items[1].Name)
	assert.InDelta(t, 0.5, items[1].Hours, 1e-9)
	assert.Equal(t, 1, items[1].Sessions)
}

func TestAggregateAll_CapsAtTopN(t *testing.T) {
	var logs []domain.SessionLog
	for i := 0; i < 25; i++ {
		logs = append(logs, sessionLog(fmt.Sprintf("Game %02d", i), domain.GameMobile, "10/16/2026", fmt.Sprintf("%d.00", i+1)))
	}

	items := AggregateAll(logs)
	require.Len(t, items, TopN)
	assert.Equal(t, "Game 24", items[0].Name)
	assert.Equal(t, "Game 15", items[TopN-1].Name)
}

func TestAggregateAll_TiesKeepInputOrder(t *testing.T) {
	logs := []domain.SessionLog{
		sessionLog("Pool", domain.GameIndoor, "10/16/2026", "1.00"),
		sessionLog("Tennis", domain.GameOutdoor, "10/16/2026", "2.00"),
		sessionLog("Chess", domain.GameIndoor, "10/16/2026", "1.00"),
		sessionLog("PUBG", domain.GameMobile, "10/16/2026", "1.00"),
	}

	items := AggregateAll(logs)
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}
	assert.Equal(t, []string{"Tennis", "Pool", "Chess", "PUBG"}, names)
}

func TestAggregateAll_GameNamesAreCaseSensitive(t *testing.T) {
	logs := []domain.SessionLog{
		sessionLog("chess", domain.GameIndoor, "10/16/2026", "1.00"),
		sessionLog("Chess", domain.GameIndoor, "10/16/2026", "1.00"),
	}

	assert.Len(t, AggregateAll(logs), 2)
}

func TestAggregateAll_Empty(t *testing.T) {
	assert.Empty(t, AggregateAll(nil))
}

func TestAggregateAll_UnparsableDurationCountsAsZero(t *testing.T) {
	logs := []domain.SessionLog{
		{Date: "10/16/2026", Duration: "forgot", Game: "Chess", Category: domain.GameIndoor},
		sessionLog("Chess", domain.GameIndoor, "10/16/2026", "1.25"),
	}

	var noted []domain.SessionLog
	items := AggregateAll(logs, WithDiagnostics(func(log domain.SessionLog, err error) {
		noted = append(noted, log)
	}))

	require.Len(t, items, 1)
	assert.InDelta(t, 1.25, items[0].Hours, 1e-9)
	assert.Equal(t, 2, items[0].Sessions)
	require.Len(t, noted, 1)
	assert.Equal(t, "forgot", noted[0].Duration)
}

func TestAggregateAll_TracksMixedCategories(t *testing.T) {
	logs := []domain.SessionLog{
		sessionLog("Table Tennis", domain.GameIndoor, "10/16/2026", "1.00"),
		sessionLog("Table Tennis", domain.GameOutdoor, "10/16/2026", "1.00"),
		sessionLog("Table Tennis", domain.GameIndoor, "10/16/2026", "1.00"),
	}

	items := AggregateAll(logs)
	require.Len(t, items, 1)
	assert.Equal(t, domain.GameIndoor, items[0].Category)
	assert.Equal(t, []domain.GameType{domain.GameIndoor, domain.GameOutdoor}, items[0].Categories)
	assert.True(t, items[0].MixedCategories())
}

func TestAggregateAll_DoesNotRoundWhileSumming(t *testing.T) {
	logs := []domain.SessionLog{
		{Date: "10/16/2026", Duration: "(0.333 hrs)", Game: "Chess", Category: domain.GameIndoor},
		{Date: "10/16/2026", Duration: "(0.333 hrs)", Game: "Chess", Category: domain.GameIndoor},
		{Date: "10/16/2026", Duration: "(0.333 hrs)", Game: "Chess", Category: domain.GameIndoor},
	}

	items := AggregateAll(logs)
	require.Len(t, items, 1)
	assert.InDelta(t, 0.999, items[0].Hours, 1e-9)
}

func TestAggregateForDate_ScopesToCalendarDay(t *testing.T) {
	logs := []domain.SessionLog{
		sessionLog("Chess", domain.GameIndoor, "10/15/2026", "1.00"),
		sessionLog("Chess", domain.GameIndoor, "10/16/2026", "2.00"),
		sessionLog("Cricket", domain.GameOutdoor, "2026-10-16", "3.00"),
		sessionLog("PUBG", domain.GameMobile, "10/17/2026", "4.00"),
	}
	day := domain.Day{Year: 2026, Month: 10, Day: 16}

	items := AggregateForDate(logs, day)
	require.Len(t, items, 2)
	assert.Equal(t, "Cricket", items[0].Name)
	assert.InDelta(t, 3.0, items[0].Hours, 1e-9)
	assert.Equal(t, "Chess", items[1].Name)
	assert.InDelta(t, 2.0, items[1].Hours, 1e-9)
	assert.Equal(t, 1, items[1].Sessions)
}

func TestAggregateForDate_ExcludesNeighbouringTimestamps(t *testing.T) {
	logs := []domain.SessionLog{
		sessionLog("Chess", domain.GameIndoor, "2026-10-15T23:59:00Z", "1.00"),
		sessionLog("Chess", domain.GameIndoor, "2026-10-17T00:01:00Z", "1.00"),
		sessionLog("Chess", domain.GameIndoor, "2026-10-16T00:00:00Z", "0.50"),
	}

	items := AggregateForDate(logs, domain.Day{Year: 2026, Month: 10, Day: 16})
	require.Len(t, items, 1)
	assert.InDelta(t, 0.5, items[0].Hours, 1e-9)
	assert.Equal(t, 1, items[0].Sessions)
}

func TestAggregateForDate_NoTruncation(t *testing.T) {
	var logs []domain.SessionLog
	for i := 0; i < 15; i++ {
		logs = append(logs, sessionLog(fmt.Sprintf("Game %02d", i), domain.GameMobile, "10/16/2026", "1.00"))
	}

	items := AggregateForDate(logs, domain.Day{Year: 2026, Month: 10, Day: 16})
	assert.Len(t, items, 15)
}

func TestAggregateForDate_SkipsUnreadableDates(t *testing.T) {
	logs := []domain.SessionLog{
		sessionLog("Chess", domain.GameIndoor, "someday", "1.00"),
		sessionLog("Chess", domain.GameIndoor, "10/16/2026", "1.00"),
	}

	var skipped int
	items := AggregateForDate(logs, domain.Day{Year: 2026, Month: 10, Day: 16},
		WithDateDiagnostics(func(domain.SessionLog, error) { skipped++ }))

	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Sessions)
	assert.Equal(t, 1, skipped)
}

func TestDistinctDates(t *testing.T) {
	logs := []domain.SessionLog{
		sessionLog("Chess", domain.GameIndoor, "10/16/2026", "1.00"),
		sessionLog("Chess", domain.GameIndoor, "1/3/2026", "1.00"),
		sessionLog("Pool", domain.GameIndoor, "2026-10-16", "1.00"),
		sessionLog("Pool", domain.GameIndoor, "12/31/2025", "1.00"),
		sessionLog("Pool", domain.GameIndoor, "garbage", "1.00"),
	}

	days := DistinctDates(logs)
	assert.Equal(t, []domain.Day{
		{Year: 2025, Month: 12, Day: 31},
		{Year: 2026, Month: 1, Day: 3},
		{Year: 2026, Month: 10, Day: 16},
	}, days)
}

func TestDistinctDates_Empty(t *testing.T) {
	assert.Empty(t, DistinctDates(nil))
}

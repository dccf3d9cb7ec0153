package tracker

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/fernhill-labs/dayline/internal/insight"
	"github.com/fernhill-labs/dayline/internal/models"
	"github.com/fernhill-labs/dayline/internal/store"
)

func testTracker(t *testing.T) (*Tracker, *store.DB) {
	t.Helper()
	db, err := store.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	tr := New(db, insight.DefaultThresholds())
	tr.now = func() time.Time {
		return time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	}
	return tr, db
}

func seedHabit(t *testing.T, db *store.DB) *models.Habit {
	t.Helper()
	habit := &models.Habit{
		ID:            uuid.NewString(),
		Name:          "morning run",
		Difficulty:    models.DifficultyMedium,
		TargetPerWeek: 3,
		CreatedAt:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.CreateHabit(habit))
	return habit
}

func TestToggle_OnThenOffRoundTrips(t *testing.T) {
	tr, db := testTracker(t)
	habit := seedHabit(t, db)

	on, err := tr.Toggle(habit.ID, "2024-01-10", Details{})
	require.NoError(t, err)
	require.True(t, on.Added)
	require.Equal(t, 1, on.Stats.TotalCompletions)

	off, err := tr.Toggle(habit.ID, "2024-01-10", Details{})
	require.NoError(t, err)
	require.False(t, off.Added)
	require.Equal(t, 0, off.Stats.TotalCompletions)

	completions, err := db.ListCompletions(habit.ID)
	require.NoError(t, err)
	require.Empty(t, completions, "toggle on then off returns to the original set")
}

func TestToggle_AppliesNeutralDefaults(t *testing.T) {
	tr, db := testTracker(t)
	habit := seedHabit(t, db)

	_, err := tr.Toggle(habit.ID, "2024-01-10", Details{})
	require.NoError(t, err)

	c, err := db.GetCompletion(habit.ID, "2024-01-10")
	require.NoError(t, err)
	require.NotNil(t, c)
	require.Equal(t, 1, c.Quantity)
	require.Equal(t, "home", c.Location)
	require.NotNil(t, c.Satisfaction)
	require.Equal(t, 4, *c.Satisfaction)
	require.Nil(t, c.MoodBefore, "unset mood stays unrecorded")
}

func TestToggle_KeepsExplicitDetails(t *testing.T) {
	tr, db := testTracker(t)
	habit := seedHabit(t, db)

	sat := 2
	_, err := tr.Toggle(habit.ID, "2024-01-10", Details{
		Satisfaction: &sat,
		Location:     "gym",
		Weather:      "rainy",
	})
	require.NoError(t, err)

	c, err := db.GetCompletion(habit.ID, "2024-01-10")
	require.NoError(t, err)
	require.Equal(t, 2, *c.Satisfaction)
	require.Equal(t, "gym", c.Location)
	require.Equal(t, "rainy", c.Weather)
}

func TestToggle_ReconcilesCounters(t *testing.T) {
	tr, db := testTracker(t)
	habit := seedHabit(t, db)

	for _, day := range []string{"2024-01-08", "2024-01-09", "2024-01-10"} {
		_, err := tr.Toggle(habit.ID, day, Details{})
		require.NoError(t, err)
	}

	got, err := db.GetHabit(habit.ID)
	require.NoError(t, err)
	require.Equal(t, 3, got.CurrentStreak)
	require.Equal(t, 3, got.BestStreak)
	require.Equal(t, 3, got.TotalCompletions)
	require.LessOrEqual(t, got.CurrentStreak, got.BestStreak)
}

func TestToggle_BestStreakNeverShrinks(t *testing.T) {
	tr, db := testTracker(t)
	habit := seedHabit(t, db)

	for _, day := range []string{"2024-01-08", "2024-01-09", "2024-01-10"} {
		_, err := tr.Toggle(habit.ID, day, Details{})
		require.NoError(t, err)
	}

	// Removing today's completion shortens the current streak but the best
	// streak keeps its high-water mark.
	_, err := tr.Toggle(habit.ID, "2024-01-10", Details{})
	require.NoError(t, err)

	got, err := db.GetHabit(habit.ID)
	require.NoError(t, err)
	require.Equal(t, 2, got.CurrentStreak)
	require.Equal(t, 3, got.BestStreak)
	require.Equal(t, 2, got.TotalCompletions)
}

func TestToggle_UnknownHabit(t *testing.T) {
	tr, _ := testTracker(t)
	_, err := tr.Toggle("missing", "2024-01-10", Details{})
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestStatsFor_AnnotatesInsights(t *testing.T) {
	tr, db := testTracker(t)
	habit := seedHabit(t, db)

	// A dense recent history crosses the congratulation threshold.
	for d := 1; d <= 10; d++ {
		day := time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC).Format(models.DayFormat)
		_, err := tr.Toggle(habit.ID, day, Details{})
		require.NoError(t, err)
	}

	stats, err := tr.StatsFor(habit.ID)
	require.NoError(t, err)
	require.Equal(t, 10, stats.TotalCompletions)
	require.NotEmpty(t, stats.Insights)
}

func TestAllStats(t *testing.T) {
	tr, db := testTracker(t)
	first := seedHabit(t, db)

	second := &models.Habit{
		ID:            uuid.NewString(),
		Name:          "journal",
		Difficulty:    models.DifficultyEasy,
		TargetPerWeek: 5,
		CreatedAt:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.CreateHabit(second))

	archived := &models.Habit{
		ID:            uuid.NewString(),
		Name:          "old habit",
		Difficulty:    models.DifficultyEasy,
		TargetPerWeek: 1,
		Archived:      true,
		CreatedAt:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.CreateHabit(archived))

	_, err := tr.Toggle(first.ID, "2024-01-10", Details{})
	require.NoError(t, err)

	all, err := tr.AllStats(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2, "archived habits are excluded")
	require.Equal(t, 1, all[first.ID].TotalCompletions)
	require.Equal(t, 0, all[second.ID].TotalCompletions)
}

package analytics

import (
	"testing"
	"time"

	"github.com/fernhill-labs/dayline/internal/models"
)

func testHabit(target int) models.Habit {
	return models.Habit{
		ID:            "h1",
		Name:          "morning run",
		Difficulty:    models.DifficultyMedium,
		TargetPerWeek: target,
		CreatedAt:     day("2024-01-01"),
	}
}

func TestBuild_NoCompletions(t *testing.T) {
	stats := Build(testHabit(3), nil, day("2024-01-10"))

	if stats.TotalCompletions != 0 {
		t.Errorf("expected 0 completions, got %d", stats.TotalCompletions)
	}
	if stats.CompletionRate != 0 {
		t.Errorf("expected completion rate 0, got %v", stats.CompletionRate)
	}
	if stats.ConsistencyScore != 0 {
		t.Errorf("expected consistency 0, got %v", stats.ConsistencyScore)
	}
	if stats.BestWeekday != "" || stats.BestTimeOfDay != "" {
		t.Errorf("expected no best buckets, got %q / %q", stats.BestWeekday, stats.BestTimeOfDay)
	}
	if len(stats.WeeklyProgress) != 7 || len(stats.MonthlyProgress) != 30 {
		t.Errorf("expected 7/30 progress bits, got %d/%d",
			len(stats.WeeklyProgress), len(stats.MonthlyProgress))
	}
	for i, done := range stats.WeeklyProgress {
		if done {
			t.Errorf("expected weekly bit %d to be false", i)
		}
	}
}

func TestBuild_CompletionRateCapped(t *testing.T) {
	habit := testHabit(7)
	habit.CreatedAt = day("2024-01-05")

	// Completions predating the creation day still cannot push the rate
	// past 100.
	completions := consecutiveDays(day("2024-01-05"), 10)
	stats := Build(habit, completions, day("2024-01-05"))
	if stats.CompletionRate != 100 {
		t.Errorf("expected capped rate 100, got %v", stats.CompletionRate)
	}
}

func TestBuild_ProgressBits(t *testing.T) {
	completions := []models.Completion{
		at("2024-01-10", 9),
		at("2024-01-08", 9),
	}
	stats := Build(testHabit(3), completions, day("2024-01-10"))

	// Weekly bits run 2024-01-04 .. 2024-01-10, oldest first.
	want := []bool{false, false, false, false, true, false, true}
	for i, bit := range want {
		if stats.WeeklyProgress[i] != bit {
			t.Errorf("weekly bit %d: expected %v, got %v", i, bit, stats.WeeklyProgress[i])
		}
	}
}

func TestBuild_FullPipeline(t *testing.T) {
	habit := testHabit(3)
	completions := []models.Completion{
		at("2024-01-01", 7), // Monday, early morning
		at("2024-01-02", 7),
		at("2024-01-03", 19),
		at("2024-01-08", 7), // Monday again
	}
	completions[0].Weather = "sunny"
	completions[1].Weather = "sunny"
	completions[2].Weather = "rainy"
	completions[3].Location = "park"

	stats := Build(habit, completions, day("2024-01-08"))

	if stats.TotalCompletions != 4 {
		t.Errorf("expected 4 completions, got %d", stats.TotalCompletions)
	}
	if stats.Streaks.Longest != 3 {
		t.Errorf("expected longest=3, got %d", stats.Streaks.Longest)
	}
	if stats.Streaks.Current != 1 {
		t.Errorf("expected current=1, got %d", stats.Streaks.Current)
	}
	if stats.BestWeekday != "Monday" {
		t.Errorf("expected best weekday Monday, got %q", stats.BestWeekday)
	}
	if stats.BestTimeOfDay != BucketEarlyMorning {
		t.Errorf("expected best time %q, got %q", BucketEarlyMorning, stats.BestTimeOfDay)
	}
	if stats.ByWeather["sunny"] != 2 {
		t.Errorf("expected sunny=2, got %d", stats.ByWeather["sunny"])
	}
	if stats.ByLocation["park"] != 1 {
		t.Errorf("expected park=1, got %d", stats.ByLocation["park"])
	}
	if stats.BySeason["winter"] != 4 {
		t.Errorf("expected winter=4, got %d", stats.BySeason["winter"])
	}
	if stats.SuccessPrediction < 0 || stats.SuccessPrediction > 1 {
		t.Errorf("prediction %v out of [0,1]", stats.SuccessPrediction)
	}
}

func TestBuild_DoesNotMutateInput(t *testing.T) {
	completions := []models.Completion{
		at("2024-01-03", 9),
		at("2024-01-01", 9),
	}
	Build(testHabit(3), completions, day("2024-01-03"))

	if completions[0].Day != "2024-01-03" || completions[1].Day != "2024-01-01" {
		t.Errorf("input slice was reordered: %v, %v", completions[0].Day, completions[1].Day)
	}
}

func TestCache_ReusesUnchangedStats(t *testing.T) {
	cache := NewCache()
	habit := testHabit(3)
	completions := consecutiveDays(day("2024-01-05"), 3)
	today := day("2024-01-05")

	first := cache.Build(habit, completions, today)
	second := cache.Build(habit, completions, today)
	if first.Streaks.Current != second.Streaks.Current {
		t.Errorf("cached stats diverged: %d vs %d", first.Streaks.Current, second.Streaks.Current)
	}
}

func TestCache_RecomputesOnNewCompletion(t *testing.T) {
	cache := NewCache()
	habit := testHabit(3)
	today := day("2024-01-05")

	before := cache.Build(habit, consecutiveDays(today, 2), today)
	after := cache.Build(habit, consecutiveDays(today, 3), today)
	if after.Streaks.Current != before.Streaks.Current+1 {
		t.Errorf("expected streak to grow from %d to %d, got %d",
			before.Streaks.Current, before.Streaks.Current+1, after.Streaks.Current)
	}
}

func TestCache_RecomputesOnNewDay(t *testing.T) {
	cache := NewCache()
	habit := testHabit(3)
	completions := consecutiveDays(day("2024-01-05"), 3)

	onDay := cache.Build(habit, completions, day("2024-01-05"))
	if onDay.Streaks.Current != 3 {
		t.Fatalf("expected current=3, got %d", onDay.Streaks.Current)
	}

	// Two days later the same completion list no longer carries a streak.
	later := cache.Build(habit, completions, day("2024-01-08"))
	if later.Streaks.Current != 0 {
		t.Errorf("expected current=0 after gap, got %d", later.Streaks.Current)
	}
}

func TestCache_Invalidate(t *testing.T) {
	cache := NewCache()
	habit := testHabit(3)
	today := time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC)

	cache.Build(habit, nil, today)
	cache.Invalidate(habit.ID)

	stats := cache.Build(habit, consecutiveDays(day("2024-01-05"), 1), today)
	if stats.TotalCompletions != 1 {
		t.Errorf("expected recompute after invalidate, got %d completions", stats.TotalCompletions)
	}
}

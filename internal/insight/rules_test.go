package insight

import (
	"strings"
	"testing"

	"github.com/fernhill-labs/dayline/internal/analytics"
	"github.com/fernhill-labs/dayline/internal/models"
)

func ruleCtx(stats analytics.HabitStats) *Context {
	return &Context{
		Habit:      models.Habit{Name: "morning run", TargetPerWeek: 3},
		Stats:      stats,
		Thresholds: DefaultThresholds(),
	}
}

func TestHighCompletion(t *testing.T) {
	got := HighCompletion(ruleCtx(analytics.HabitStats{
		TotalCompletions: 20,
		CompletionRate:   85,
	}))
	if len(got) != 1 {
		t.Fatalf("expected 1 insight, got %d", len(got))
	}
	if !strings.Contains(got[0], "85%") {
		t.Errorf("expected rate in message, got %q", got[0])
	}

	if got := HighCompletion(ruleCtx(analytics.HabitStats{TotalCompletions: 20, CompletionRate: 80})); got != nil {
		t.Errorf("expected no insight at the threshold, got %v", got)
	}
}

func TestLowCompletion_SkipsEmptyHabits(t *testing.T) {
	// A habit with zero completions has rate 0 but gets no streak or rate
	// commentary; there is nothing to adjust yet.
	if got := LowCompletion(ruleCtx(analytics.HabitStats{})); got != nil {
		t.Errorf("expected no insight for empty habit, got %v", got)
	}

	got := LowCompletion(ruleCtx(analytics.HabitStats{TotalCompletions: 4, CompletionRate: 30}))
	if len(got) != 1 {
		t.Errorf("expected 1 insight for low rate, got %v", got)
	}
}

func TestEstablishedStreaks(t *testing.T) {
	got := EstablishedStreaks(ruleCtx(analytics.HabitStats{
		Streaks: analytics.StreakSummary{Average: 8.5},
	}))
	if len(got) != 1 {
		t.Fatalf("expected 1 insight, got %d", len(got))
	}

	if got := EstablishedStreaks(ruleCtx(analytics.HabitStats{
		Streaks: analytics.StreakSummary{Average: 7},
	})); got != nil {
		t.Errorf("expected no insight at threshold, got %v", got)
	}
}

func TestBestTime_RequiresSampleSize(t *testing.T) {
	stats := analytics.HabitStats{TotalCompletions: 4, BestTimeOfDay: "morning"}
	if got := BestTime(ruleCtx(stats)); got != nil {
		t.Errorf("expected no insight under 5 completions, got %v", got)
	}

	stats.TotalCompletions = 5
	if got := BestTime(ruleCtx(stats)); len(got) != 1 {
		t.Errorf("expected 1 insight, got %v", got)
	}
}

func TestWeatherSensitivity(t *testing.T) {
	stats := analytics.HabitStats{
		ByWeather: map[string]int{"sunny": 8, "rainy": 2},
	}
	got := WeatherSensitivity(ruleCtx(stats))
	if len(got) != 1 {
		t.Fatalf("expected 1 insight, got %d", len(got))
	}
	if !strings.Contains(got[0], "sunny") {
		t.Errorf("expected dominant weather in message, got %q", got[0])
	}

	// 70/30 is exactly the threshold and must not fire.
	stats.ByWeather = map[string]int{"sunny": 7, "rainy": 3}
	if got := WeatherSensitivity(ruleCtx(stats)); got != nil {
		t.Errorf("expected no insight at threshold, got %v", got)
	}
}

func TestRestartNudge(t *testing.T) {
	stats := analytics.HabitStats{
		TotalCompletions: 12,
		WeeklyProgress:   make([]bool, 7),
	}
	if got := RestartNudge(ruleCtx(stats)); len(got) != 1 {
		t.Errorf("expected nudge for quiet week, got %v", got)
	}

	stats.WeeklyProgress[3] = true
	if got := RestartNudge(ruleCtx(stats)); got != nil {
		t.Errorf("expected no nudge with recent activity, got %v", got)
	}
}

func TestEngine_RulesFireIndependently(t *testing.T) {
	engine := NewEngine(DefaultThresholds())
	habit := models.Habit{Name: "meditate", TargetPerWeek: 3}
	stats := analytics.HabitStats{
		TotalCompletions: 30,
		CompletionRate:   90,
		Streaks:          analytics.StreakSummary{Current: 10, Longest: 12, Average: 9},
		BestTimeOfDay:    "morning",
		BestWeekday:      "Sunday",
		WeeklyProgress:   []bool{true, true, true, true, true, true, true},
	}

	annotated := engine.Annotate(habit, stats, nil)

	// High completion, established streaks, best time, and best day all
	// hold at once; none suppresses another.
	if len(annotated.Insights) != 4 {
		t.Errorf("expected 4 insights, got %d: %v", len(annotated.Insights), annotated.Insights)
	}

	// Emission order is fixed: completion-rate commentary comes first.
	if !strings.Contains(annotated.Insights[0], "90%") {
		t.Errorf("expected completion insight first, got %q", annotated.Insights[0])
	}
}

func TestEngine_EmptyHabitGetsNoStreakInsights(t *testing.T) {
	engine := NewEngine(DefaultThresholds())
	habit := models.Habit{Name: "stretch", TargetPerWeek: 3}

	annotated := engine.Annotate(habit, analytics.HabitStats{WeeklyProgress: make([]bool, 7)}, nil)
	if len(annotated.Insights) != 0 {
		t.Errorf("expected no insights for empty habit, got %v", annotated.Insights)
	}
}

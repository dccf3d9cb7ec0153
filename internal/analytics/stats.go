package analytics

import (
	"math"
	"time"

	"github.com/fernhill-labs/dayline/internal/models"
)

// Build runs the full analyzer pipeline for one habit and returns its
// derived stats. The completion slice is treated as an immutable snapshot.
//
// Insights and Suggestions are left empty; the insight engine fills them in
// from the returned stats.
func Build(habit models.Habit, completions []models.Completion, today time.Time) HabitStats {
	days := make([]string, len(completions))
	for i, c := range completions {
		days[i] = c.Day
	}

	streaks := ComputeStreaks(days, today)
	byWeekday := AnalyzeWeekdays(completions)
	byTime := AnalyzeTimeOfDay(completions)

	stats := HabitStats{
		HabitID:           habit.ID,
		TotalCompletions:  len(distinctOrdinals(days)),
		Streaks:           streaks,
		WeeklyProgress:    progressBits(days, today, 7),
		MonthlyProgress:   progressBits(days, today, 30),
		ByWeekday:         byWeekday,
		ByTimeOfDay:       byTime,
		BySeason:          AnalyzeSeasons(completions),
		ByWeather:         AnalyzeWeather(completions),
		ByLocation:        AnalyzeLocations(completions),
		BestWeekday:       bestKey(byWeekday),
		WorstWeekday:      worstKey(byWeekday),
		BestTimeOfDay:     bestKey(byTime),
		AvgMoodDelta:      AverageMoodDelta(completions),
		ConsistencyScore:  ConsistencyScore(completions, habit.TargetPerWeek, today),
		ImprovementRate:   ImprovementRate(completions),
		SuccessPrediction: SuccessPrediction(completions, habit, streaks, today),
	}
	stats.CompletionRate = completionRate(stats.TotalCompletions, habit.CreatedAt, today)
	return stats
}

// completionRate is the percentage of days since the habit was created
// (inclusive of both endpoints) that have a completion, capped at 100.
func completionRate(total int, createdAt, today time.Time) float64 {
	if total == 0 {
		return 0
	}
	createdOrd := dayOrdinal(createdAt.Format(models.DayFormat))
	todayOrd := dayOrdinal(today.Format(models.DayFormat))
	span := todayOrd - createdOrd + 1
	if span < 1 {
		span = 1
	}
	return math.Min(float64(total)/float64(span)*100, 100)
}

// progressBits marks which of the trailing `window` days have a completion,
// oldest first, ending today.
func progressBits(days []string, today time.Time, window int) []bool {
	todayOrd := dayOrdinal(today.Format(models.DayFormat))
	done := make(map[int]bool, len(days))
	for _, d := range days {
		if ord := dayOrdinal(d); ord >= 0 {
			done[ord] = true
		}
	}
	bits := make([]bool, window)
	for i := 0; i < window; i++ {
		bits[i] = done[todayOrd-window+1+i]
	}
	return bits
}

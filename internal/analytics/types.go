// Package analytics derives habit statistics from completion records.
//
// Every function here is a pure, synchronous pass over an in-memory slice:
// callers hand in a snapshot of one habit's completions and get values back.
// Nothing in this package touches the store or mutates its input.
package analytics

// StreakSummary describes the consecutive-day runs in a completion set.
type StreakSummary struct {
	// Current is the length of the run ending today or yesterday. A streak
	// is not broken until a full calendar day has been skipped.
	Current int `json:"current"`

	// Longest is the length of the longest run ever recorded.
	Longest int `json:"longest"`

	// Average is the mean run length across all runs.
	Average float64 `json:"average"`

	// Distribution lists every run length in chronological order.
	Distribution []int `json:"distribution"`
}

// HabitStats is the full derived view of one habit. It is recomputed from
// the completion list on demand and never persisted.
type HabitStats struct {
	HabitID string `json:"habit_id"`

	// TotalCompletions counts distinct completed days.
	TotalCompletions int `json:"total_completions"`

	// CompletionRate is the percentage of days since creation with a
	// completion, capped at 100.
	CompletionRate float64 `json:"completion_rate"`

	Streaks StreakSummary `json:"streaks"`

	// WeeklyProgress and MonthlyProgress mark which of the trailing 7 and
	// 30 days (oldest first, ending today) have a completion.
	WeeklyProgress  []bool `json:"weekly_progress"`
	MonthlyProgress []bool `json:"monthly_progress"`

	// Bucket tallies. Keys with no completions are absent, not zero.
	ByWeekday   map[string]int `json:"by_weekday"`
	ByTimeOfDay map[string]int `json:"by_time_of_day"`
	BySeason    map[string]int `json:"by_season"`
	ByWeather   map[string]int `json:"by_weather"`
	ByLocation  map[string]int `json:"by_location"`

	// BestWeekday and WorstWeekday are the most and least frequent weekday
	// buckets; BestTimeOfDay the most frequent time bucket. Ties break
	// alphabetically. Empty when there are no completions.
	BestWeekday   string `json:"best_weekday"`
	WorstWeekday  string `json:"worst_weekday"`
	BestTimeOfDay string `json:"best_time_of_day"`

	// AvgMoodDelta is the mean of (mood after - mood before) across
	// completions that recorded both.
	AvgMoodDelta float64 `json:"avg_mood_delta"`

	// ConsistencyScore is 0-100; see ConsistencyScore.
	ConsistencyScore float64 `json:"consistency_score"`

	// ImprovementRate is the signed percent change in mean satisfaction
	// between the first and second half of the completion history.
	ImprovementRate float64 `json:"improvement_rate"`

	// SuccessPrediction is a 0-1 heuristic adherence estimate.
	SuccessPrediction float64 `json:"success_prediction"`

	// Insights and Suggestions are filled in by the insight engine; the
	// analyzers themselves never generate text.
	Insights    []string `json:"insights,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

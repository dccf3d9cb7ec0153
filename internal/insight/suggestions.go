package insight

import (
	"fmt"

	"github.com/fernhill-labs/dayline/internal/analytics"
)

func dominantWeather(ctx *Context) (string, float64) {
	return analytics.DominantShare(ctx.Stats.ByWeather)
}

// LowerTarget suggests an easier weekly target when consistency is poor.
func LowerTarget(ctx *Context) []string {
	if ctx.Stats.TotalCompletions == 0 || ctx.Stats.ConsistencyScore >= 40 || ctx.Habit.TargetPerWeek <= 1 {
		return nil
	}
	return []string{fmt.Sprintf(
		"Try dropping the target for %q from %d to %d days a week until the rhythm sticks.",
		ctx.Habit.Name, ctx.Habit.TargetPerWeek, ctx.Habit.TargetPerWeek-1,
	)}
}

// RaiseChallenge suggests a harder version once the habit is near-automatic.
func RaiseChallenge(ctx *Context) []string {
	if ctx.Stats.CompletionRate < 90 || ctx.Stats.Streaks.Current < ctx.Habit.TargetPerWeek {
		return nil
	}
	return []string{fmt.Sprintf(
		"%q is near-automatic at %.0f%%. Consider raising the bar or adding a harder variant.",
		ctx.Habit.Name, ctx.Stats.CompletionRate,
	)}
}

// RestartNudge fires when a previously active habit has gone quiet.
func RestartNudge(ctx *Context) []string {
	if ctx.Stats.TotalCompletions == 0 || ctx.Stats.Streaks.Current > 0 {
		return nil
	}
	for _, done := range ctx.Stats.WeeklyProgress {
		if done {
			return nil
		}
	}
	return []string{fmt.Sprintf(
		"No %q completions in the last week. A single small session restarts the streak.",
		ctx.Habit.Name,
	)}
}

// ScheduleAtBestTime suggests anchoring the habit to its dominant time bucket.
func ScheduleAtBestTime(ctx *Context) []string {
	if ctx.Stats.BestTimeOfDay == "" || ctx.Stats.TotalCompletions < 5 {
		return nil
	}
	if ctx.Stats.ConsistencyScore >= 70 {
		return nil
	}
	return []string{fmt.Sprintf(
		"Scheduling %q for the %s, when you already succeed most, may steady it.",
		ctx.Habit.Name, ctx.Stats.BestTimeOfDay,
	)}
}

// PairWithLocation suggests leaning on the location where the habit works.
func PairWithLocation(ctx *Context) []string {
	location, share := analytics.DominantShare(ctx.Stats.ByLocation)
	if location == "" || share < 0.6 || ctx.Stats.TotalCompletions < 5 {
		return nil
	}
	return []string{fmt.Sprintf(
		"%q works best at %s; defaulting to that spot removes a decision.",
		ctx.Habit.Name, location,
	)}
}

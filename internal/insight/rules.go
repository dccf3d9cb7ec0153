package insight

import "fmt"

// HighCompletion congratulates a habit tracking above the high-rate threshold.
func HighCompletion(ctx *Context) []string {
	if ctx.Stats.TotalCompletions == 0 || ctx.Stats.CompletionRate <= ctx.Thresholds.HighCompletionRate {
		return nil
	}
	return []string{fmt.Sprintf(
		"You complete %q %.0f%% of the time. Excellent consistency!",
		ctx.Habit.Name, ctx.Stats.CompletionRate,
	)}
}

// LowCompletion flags a habit tracking below the low-rate threshold.
func LowCompletion(ctx *Context) []string {
	if ctx.Stats.TotalCompletions == 0 || ctx.Stats.CompletionRate >= ctx.Thresholds.LowCompletionRate {
		return nil
	}
	return []string{fmt.Sprintf(
		"%q lands at %.0f%% completion. A smaller daily version might be easier to keep.",
		ctx.Habit.Name, ctx.Stats.CompletionRate,
	)}
}

// EstablishedStreaks notes when the average streak shows the habit has taken hold.
func EstablishedStreaks(ctx *Context) []string {
	if ctx.Stats.Streaks.Average <= ctx.Thresholds.StreakConfidence {
		return nil
	}
	return []string{fmt.Sprintf(
		"Your streaks average %.1f days; %q looks firmly established.",
		ctx.Stats.Streaks.Average, ctx.Habit.Name,
	)}
}

// BestTime surfaces the dominant time-of-day bucket.
func BestTime(ctx *Context) []string {
	if ctx.Stats.BestTimeOfDay == "" || ctx.Stats.TotalCompletions < 5 {
		return nil
	}
	return []string{fmt.Sprintf(
		"You most often complete %q in the %s.",
		ctx.Habit.Name, ctx.Stats.BestTimeOfDay,
	)}
}

// BestDay surfaces the strongest weekday.
func BestDay(ctx *Context) []string {
	if ctx.Stats.BestWeekday == "" || ctx.Stats.TotalCompletions < 5 {
		return nil
	}
	return []string{fmt.Sprintf(
		"%s is your strongest day for %q.",
		ctx.Stats.BestWeekday, ctx.Habit.Name,
	)}
}

// WeatherSensitivity fires when one weather condition dominates the record.
func WeatherSensitivity(ctx *Context) []string {
	weather, share := dominantWeather(ctx)
	if weather == "" || share <= ctx.Thresholds.WeatherDominance {
		return nil
	}
	return []string{fmt.Sprintf(
		"%.0f%% of your %q completions happen in %s weather.",
		share*100, ctx.Habit.Name, weather,
	)}
}

// MoodLift notes a consistently positive mood change around the habit.
func MoodLift(ctx *Context) []string {
	if ctx.Stats.AvgMoodDelta < 1 {
		return nil
	}
	return []string{fmt.Sprintf(
		"%q lifts your mood by %.1f points on average.",
		ctx.Habit.Name, ctx.Stats.AvgMoodDelta,
	)}
}

package insight

import (
	"github.com/fernhill-labs/dayline/internal/analytics"
	"github.com/fernhill-labs/dayline/internal/models"
)

// Engine runs the insight and suggestion rule sets over one habit's stats.
type Engine struct {
	thresholds      Thresholds
	insightRules    []Rule
	suggestionRules []Rule
}

// NewEngine creates an engine with all built-in rules registered in their
// fixed emission order.
func NewEngine(thresholds Thresholds) *Engine {
	return &Engine{
		thresholds: thresholds,
		insightRules: []Rule{
			HighCompletion,
			LowCompletion,
			EstablishedStreaks,
			BestTime,
			BestDay,
			WeatherSensitivity,
			MoodLift,
		},
		suggestionRules: []Rule{
			LowerTarget,
			RaiseChallenge,
			RestartNudge,
			ScheduleAtBestTime,
			PairWithLocation,
		},
	}
}

// Annotate fills stats.Insights and stats.Suggestions and returns the
// annotated copy. The incoming stats value is not modified.
func (e *Engine) Annotate(habit models.Habit, stats analytics.HabitStats, completions []models.Completion) analytics.HabitStats {
	ctx := &Context{
		Habit:       habit,
		Stats:       stats,
		Completions: completions,
		Thresholds:  e.thresholds,
	}

	stats.Insights = runRules(e.insightRules, ctx)
	stats.Suggestions = runRules(e.suggestionRules, ctx)
	return stats
}

func runRules(rules []Rule, ctx *Context) []string {
	var out []string
	for _, rule := range rules {
		out = append(out, rule(ctx)...)
	}
	return out
}

// Package insight generates human-readable observations and suggestions
// from a habit's computed stats.
package insight

import (
	"github.com/fernhill-labs/dayline/internal/analytics"
	"github.com/fernhill-labs/dayline/internal/models"
)

// Thresholds are the trigger points for insight rules. Each is settable
// from config; rules read them rather than hard-coding constants.
type Thresholds struct {
	// HighCompletionRate (percent) triggers the congratulatory insight.
	HighCompletionRate float64

	// LowCompletionRate (percent) triggers the adjustment suggestion.
	LowCompletionRate float64

	// StreakConfidence is the average streak length above which the habit
	// is considered firmly established.
	StreakConfidence float64

	// WeatherDominance is the share of completions a single weather
	// condition must hold to flag weather sensitivity.
	WeatherDominance float64
}

// DefaultThresholds returns the standard rule trigger points.
func DefaultThresholds() Thresholds {
	return Thresholds{
		HighCompletionRate: 80,
		LowCompletionRate:  50,
		StreakConfidence:   7,
		WeatherDominance:   0.7,
	}
}

// Context carries everything a rule may inspect for one habit.
type Context struct {
	Habit       models.Habit
	Stats       analytics.HabitStats
	Completions []models.Completion
	Thresholds  Thresholds
}

// Rule examines the context and produces zero or more sentences. Rules are
// evaluated unconditionally and independently; no rule suppresses another,
// and emission order follows registration order.
type Rule func(ctx *Context) []string

package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/fernhill-labs/dayline/internal/models"
)

// defaultSatisfaction substitutes for completions that did not record a
// satisfaction rating.
const defaultSatisfaction = 3

// difficultyFactors scale the success prediction by how demanding a habit is.
var difficultyFactors = map[models.Difficulty]float64{
	models.DifficultyEasy:   1.2,
	models.DifficultyMedium: 1.0,
	models.DifficultyHard:   0.8,
	models.DifficultyExpert: 0.6,
}

// completionsWithin counts completions whose day falls in (cutoff, today],
// where cutoff is `days` calendar days before today.
func completionsWithin(completions []models.Completion, today time.Time, days int) int {
	todayOrd := dayOrdinal(today.Format(models.DayFormat))
	n := 0
	for _, c := range completions {
		ord := dayOrdinal(c.Day)
		if ord < 0 {
			continue
		}
		if diff := todayOrd - ord; diff >= 0 && diff < days {
			n++
		}
	}
	return n
}

// ConsistencyScore measures how closely completions track the weekly target,
// weighted toward recent activity. The result is always within [0, 100].
//
// The base term compares actual completions to ceil(n/7)*target expected;
// the bonus adds up to 10 points for completions in the trailing 14 days
// relative to min(14, target*2). The expected-count formula is deliberately
// kept bug-for-bug with the behavior this replaces.
func ConsistencyScore(completions []models.Completion, targetPerWeek int, today time.Time) float64 {
	n := len(completions)
	if n == 0 || targetPerWeek <= 0 {
		return 0
	}

	expected := int(math.Ceil(float64(n)/7)) * targetPerWeek
	if expected == 0 {
		return 0
	}
	base := math.Min(float64(n)/float64(expected), 1) * 100

	recent := completionsWithin(completions, today, 14)
	denom := 14
	if targetPerWeek*2 < denom {
		denom = targetPerWeek * 2
	}
	bonus := math.Min(float64(recent)/float64(denom), 1) * 10

	return math.Min(base+bonus, 100)
}

// satisfactionOf returns the recorded satisfaction or the neutral default.
func satisfactionOf(c models.Completion) float64 {
	if c.Satisfaction == nil {
		return defaultSatisfaction
	}
	return float64(*c.Satisfaction)
}

// ImprovementRate compares mean satisfaction in the second half of the
// chronologically sorted history against the first half, as a signed percent
// change. Fewer than 4 completions yield 0.
func ImprovementRate(completions []models.Completion) float64 {
	if len(completions) < 4 {
		return 0
	}

	sorted := make([]models.Completion, len(completions))
	copy(sorted, completions)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Day < sorted[j].Day })

	mid := len(sorted) / 2
	mean := func(part []models.Completion) float64 {
		sum := 0.0
		for _, c := range part {
			sum += satisfactionOf(c)
		}
		return sum / float64(len(part))
	}

	first := mean(sorted[:mid])
	second := mean(sorted[mid:])
	if first == 0 {
		return 0
	}
	return (second - first) / first * 100
}

// SuccessPrediction estimates the likelihood of continued adherence as a
// value in [0, 1]. It starts from the consistency score, scales by habit
// difficulty, rewards long average streaks, and rewards or penalizes recent
// activity against the weekly target. The thresholds and multipliers are
// fixed heuristics; changing them changes user-visible scores.
func SuccessPrediction(completions []models.Completion, habit models.Habit, streaks StreakSummary, today time.Time) float64 {
	score := ConsistencyScore(completions, habit.TargetPerWeek, today) / 100

	factor, ok := difficultyFactors[habit.Difficulty]
	if !ok {
		factor = 1.0
	}
	score *= factor

	if streaks.Average > 3 {
		score *= 1.1
	}

	recent := completionsWithin(completions, today, 7)
	switch {
	case habit.TargetPerWeek > 0 && recent >= habit.TargetPerWeek:
		score *= 1.15
	case recent == 0:
		score *= 0.7
	}

	return math.Max(0, math.Min(score, 1))
}

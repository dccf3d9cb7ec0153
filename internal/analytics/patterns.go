package analytics

import (
	"sort"
	"time"

	"github.com/fernhill-labs/dayline/internal/models"
)

// Time-of-day bucket names, by hour boundary.
const (
	BucketLateNight    = "late night"    // 00-05
	BucketEarlyMorning = "early morning" // 05-08
	BucketMorning      = "morning"       // 08-12
	BucketAfternoon    = "afternoon"     // 12-17
	BucketEvening      = "evening"       // 17-21
	BucketNight        = "night"         // 21-24
)

// TimeOfDayBucket maps an hour (0-23) to its named bucket.
func TimeOfDayBucket(hour int) string {
	switch {
	case hour < 5:
		return BucketLateNight
	case hour < 8:
		return BucketEarlyMorning
	case hour < 12:
		return BucketMorning
	case hour < 17:
		return BucketAfternoon
	case hour < 21:
		return BucketEvening
	default:
		return BucketNight
	}
}

// Season maps a month to its season name.
func Season(m time.Month) string {
	switch m {
	case time.December, time.January, time.February:
		return "winter"
	case time.March, time.April, time.May:
		return "spring"
	case time.June, time.July, time.August:
		return "summer"
	default:
		return "autumn"
	}
}

// AnalyzeTimeOfDay tallies completions by time-of-day bucket.
func AnalyzeTimeOfDay(completions []models.Completion) map[string]int {
	tally := make(map[string]int)
	for _, c := range completions {
		if c.CompletedAt.IsZero() {
			continue
		}
		tally[TimeOfDayBucket(c.CompletedAt.Hour())]++
	}
	return tally
}

// AnalyzeWeekdays tallies completions by weekday name of the completed day.
func AnalyzeWeekdays(completions []models.Completion) map[string]int {
	tally := make(map[string]int)
	for _, c := range completions {
		day := c.DayTime()
		if day.IsZero() {
			continue
		}
		tally[day.Weekday().String()]++
	}
	return tally
}

// AnalyzeSeasons tallies completions by season of the completed day.
func AnalyzeSeasons(completions []models.Completion) map[string]int {
	tally := make(map[string]int)
	for _, c := range completions {
		day := c.DayTime()
		if day.IsZero() {
			continue
		}
		tally[Season(day.Month())]++
	}
	return tally
}

// AnalyzeWeather tallies completions by recorded weather. Completions with
// no weather value are excluded, not counted as a zero bucket.
func AnalyzeWeather(completions []models.Completion) map[string]int {
	tally := make(map[string]int)
	for _, c := range completions {
		if c.Weather == "" {
			continue
		}
		tally[c.Weather]++
	}
	return tally
}

// AnalyzeLocations tallies completions by recorded location.
func AnalyzeLocations(completions []models.Completion) map[string]int {
	tally := make(map[string]int)
	for _, c := range completions {
		if c.Location == "" {
			continue
		}
		tally[c.Location]++
	}
	return tally
}

// AverageMoodDelta returns the mean of (mood after - mood before) across
// completions that recorded both, or 0 when none did.
func AverageMoodDelta(completions []models.Completion) float64 {
	sum, n := 0, 0
	for _, c := range completions {
		if c.MoodBefore == nil || c.MoodAfter == nil {
			continue
		}
		sum += *c.MoodAfter - *c.MoodBefore
		n++
	}
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

// bestKey returns the key with the highest count; ties break alphabetically.
// Returns "" for an empty tally.
func bestKey(tally map[string]int) string {
	return extremeKey(tally, func(count, best int) bool { return count > best })
}

// worstKey returns the key with the lowest count among keys present in the
// tally; ties break alphabetically. Returns "" for an empty tally.
func worstKey(tally map[string]int) string {
	return extremeKey(tally, func(count, best int) bool { return count < best })
}

func extremeKey(tally map[string]int, better func(count, best int) bool) string {
	keys := make([]string, 0, len(tally))
	for k := range tally {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pick := ""
	for _, k := range keys {
		if pick == "" || better(tally[k], tally[pick]) {
			pick = k
		}
	}
	return pick
}

// DominantShare returns the best bucket key and its fraction of the total
// tally. Used by insight rules to detect strong correlations such as a
// dominant weather condition.
func DominantShare(tally map[string]int) (string, float64) {
	best := bestKey(tally)
	if best == "" {
		return "", 0
	}
	total := 0
	for _, n := range tally {
		total += n
	}
	return best, float64(tally[best]) / float64(total)
}

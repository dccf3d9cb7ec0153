package analytics

import (
	"sort"
	"time"

	"github.com/fernhill-labs/dayline/internal/models"
)

// dayOrdinal converts a YYYY-MM-DD string to a count of days since the Unix
// epoch. Malformed strings map to a negative sentinel and are dropped by the
// callers; day strings are validated at the CLI boundary.
func dayOrdinal(day string) int {
	t, err := time.Parse(models.DayFormat, day)
	if err != nil {
		return -1
	}
	return int(t.Unix() / 86400)
}

// distinctOrdinals returns the sorted, de-duplicated day ordinals for the
// given day strings. Duplicate same-day entries collapse to a single date, so
// streak math is idempotent to duplicated input.
func distinctOrdinals(days []string) []int {
	seen := make(map[int]bool, len(days))
	for _, d := range days {
		if ord := dayOrdinal(d); ord >= 0 {
			seen[ord] = true
		}
	}
	ords := make([]int, 0, len(seen))
	for ord := range seen {
		ords = append(ords, ord)
	}
	sort.Ints(ords)
	return ords
}

// ComputeStreaks derives the streak summary for a set of completed days.
//
// The current streak is anchored at the most recent completion and only
// counts if that anchor is today or yesterday: missing today does not break
// a streak until the full day has passed. Runs elsewhere break whenever two
// consecutive dates differ by more than one calendar day.
func ComputeStreaks(days []string, today time.Time) StreakSummary {
	ords := distinctOrdinals(days)
	if len(ords) == 0 {
		return StreakSummary{}
	}

	todayOrd := dayOrdinal(today.Format(models.DayFormat))

	// Current streak: walk backward from the anchor.
	current := 0
	anchor := ords[len(ords)-1]
	if anchor == todayOrd || anchor == todayOrd-1 {
		current = 1
		for i := len(ords) - 2; i >= 0; i-- {
			if ords[i] != ords[i+1]-1 {
				break
			}
			current++
		}
	}

	// Runs: one ascending pass.
	var distribution []int
	run := 1
	for i := 1; i < len(ords); i++ {
		if ords[i] == ords[i-1]+1 {
			run++
			continue
		}
		distribution = append(distribution, run)
		run = 1
	}
	distribution = append(distribution, run)

	longest := 0
	sum := 0
	for _, r := range distribution {
		sum += r
		if r > longest {
			longest = r
		}
	}

	return StreakSummary{
		Current:      current,
		Longest:      longest,
		Average:      float64(sum) / float64(len(distribution)),
		Distribution: distribution,
	}
}

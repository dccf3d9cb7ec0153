package analytics

import (
	"testing"
	"time"

	"github.com/fernhill-labs/dayline/internal/models"
)

func intp(n int) *int { return &n }

func at(day string, hour int) models.Completion {
	d, err := time.Parse(models.DayFormat, day)
	if err != nil {
		panic(err)
	}
	return models.Completion{
		Day:         day,
		CompletedAt: d.Add(time.Duration(hour) * time.Hour),
	}
}

func TestTimeOfDayBucket_Boundaries(t *testing.T) {
	cases := map[int]string{
		0:  BucketLateNight,
		4:  BucketLateNight,
		5:  BucketEarlyMorning,
		7:  BucketEarlyMorning,
		8:  BucketMorning,
		11: BucketMorning,
		12: BucketAfternoon,
		16: BucketAfternoon,
		17: BucketEvening,
		20: BucketEvening,
		21: BucketNight,
		23: BucketNight,
	}
	for hour, want := range cases {
		if got := TimeOfDayBucket(hour); got != want {
			t.Errorf("hour %d: expected %q, got %q", hour, want, got)
		}
	}
}

func TestAnalyzeTimeOfDay(t *testing.T) {
	completions := []models.Completion{
		at("2024-01-01", 6),
		at("2024-01-02", 7),
		at("2024-01-03", 19),
	}
	tally := AnalyzeTimeOfDay(completions)
	if tally[BucketEarlyMorning] != 2 {
		t.Errorf("expected early morning=2, got %d", tally[BucketEarlyMorning])
	}
	if tally[BucketEvening] != 1 {
		t.Errorf("expected evening=1, got %d", tally[BucketEvening])
	}
}

func TestAnalyzeWeekdays(t *testing.T) {
	// 2024-01-01 was a Monday.
	completions := []models.Completion{
		at("2024-01-01", 9),
		at("2024-01-08", 9),
		at("2024-01-09", 9),
	}
	tally := AnalyzeWeekdays(completions)
	if tally["Monday"] != 2 {
		t.Errorf("expected Monday=2, got %d", tally["Monday"])
	}
	if tally["Tuesday"] != 1 {
		t.Errorf("expected Tuesday=1, got %d", tally["Tuesday"])
	}
}

func TestSeason(t *testing.T) {
	cases := map[time.Month]string{
		time.January:  "winter",
		time.April:    "spring",
		time.July:     "summer",
		time.October:  "autumn",
		time.December: "winter",
	}
	for month, want := range cases {
		if got := Season(month); got != want {
			t.Errorf("%s: expected %q, got %q", month, want, got)
		}
	}
}

func TestAnalyzeWeather_SkipsMissing(t *testing.T) {
	completions := []models.Completion{
		{Day: "2024-01-01", Weather: "sunny"},
		{Day: "2024-01-02", Weather: ""},
		{Day: "2024-01-03", Weather: "sunny"},
		{Day: "2024-01-04", Weather: "rainy"},
	}
	tally := AnalyzeWeather(completions)
	if len(tally) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(tally))
	}
	if tally["sunny"] != 2 || tally["rainy"] != 1 {
		t.Errorf("unexpected tally: %v", tally)
	}
}

func TestAverageMoodDelta(t *testing.T) {
	completions := []models.Completion{
		{Day: "2024-01-01", MoodBefore: intp(2), MoodAfter: intp(4)},
		{Day: "2024-01-02", MoodBefore: intp(3), MoodAfter: intp(4)},
		{Day: "2024-01-03", MoodBefore: intp(3)}, // after missing: excluded
	}
	if got := AverageMoodDelta(completions); got != 1.5 {
		t.Errorf("expected 1.5, got %v", got)
	}
	if got := AverageMoodDelta(nil); got != 0 {
		t.Errorf("expected 0 for empty input, got %v", got)
	}
}

func TestBestKey_TieBreaksAlphabetically(t *testing.T) {
	tally := map[string]int{"sunny": 3, "cloudy": 3, "rainy": 1}
	if got := bestKey(tally); got != "cloudy" {
		t.Errorf("expected tie to break alphabetically to cloudy, got %q", got)
	}
	if got := worstKey(tally); got != "rainy" {
		t.Errorf("expected worst=rainy, got %q", got)
	}
	if got := bestKey(nil); got != "" {
		t.Errorf("expected empty best key for nil tally, got %q", got)
	}
}

func TestDominantShare(t *testing.T) {
	tally := map[string]int{"sunny": 8, "rainy": 2}
	key, share := DominantShare(tally)
	if key != "sunny" {
		t.Errorf("expected sunny, got %q", key)
	}
	if share != 0.8 {
		t.Errorf("expected share=0.8, got %v", share)
	}
}

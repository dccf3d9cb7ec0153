// Package models defines the domain types shared by the store, the analytics
// engine, and the CLI.
package models

import "time"

// DayFormat is the calendar-day layout used everywhere a completion or log
// entry is keyed by date.
const DayFormat = "2006-01-02"

// Difficulty rates how demanding a habit is to keep up.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyExpert Difficulty = "expert"
)

// Valid reports whether d is one of the known difficulty levels.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyExpert:
		return true
	}
	return false
}

// Habit is a recurring intention to perform an activity.
//
// CurrentStreak, BestStreak, and TotalCompletions are denormalized caches of
// values the analytics engine recomputes; the tracker reconciles them after
// every mutation so the stored row never drifts from the derived stats.
type Habit struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Category         string     `json:"category"`
	Difficulty       Difficulty `json:"difficulty"`
	TargetPerWeek    int        `json:"target_per_week"`
	CurrentStreak    int        `json:"current_streak"`
	BestStreak       int        `json:"best_streak"`
	TotalCompletions int        `json:"total_completions"`
	Archived         bool       `json:"archived"`
	CreatedAt        time.Time  `json:"created_at"`
}

// Completion records one instance of a habit performed on a calendar day.
// At most one completion exists per (habit, day) pair.
//
// The contextual fields are optional; nil pointers and empty strings mean the
// user did not record that dimension, and the analyzers skip them.
type Completion struct {
	ID            string    `json:"id"`
	HabitID       string    `json:"habit_id"`
	Day           string    `json:"day"` // YYYY-MM-DD
	CompletedAt   time.Time `json:"completed_at"`
	Quantity      int       `json:"quantity"`
	MoodBefore    *int      `json:"mood_before,omitempty"`   // 1-5
	MoodAfter     *int      `json:"mood_after,omitempty"`    // 1-5
	EnergyBefore  *int      `json:"energy_before,omitempty"` // 1-5
	EnergyAfter   *int      `json:"energy_after,omitempty"`  // 1-5
	Satisfaction  *int      `json:"satisfaction,omitempty"`  // 1-5
	Interruptions int       `json:"interruptions"`
	Location      string    `json:"location,omitempty"`
	Weather       string    `json:"weather,omitempty"`
	Note          string    `json:"note,omitempty"`
}

// DayTime returns the completion's calendar day as a time value, or the zero
// time if the day string is malformed. Day strings are validated at the CLI
// boundary, so a zero here indicates a programming error upstream.
func (c Completion) DayTime() time.Time {
	t, _ := time.Parse(DayFormat, c.Day)
	return t
}

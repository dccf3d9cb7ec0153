// Package assistant answers free-form questions about the user's own data
// with a fixed keyword-matched response table. There is no model behind it;
// each rule inspects the current summary and fills a canned sentence.
package assistant

import (
	"fmt"
	"strings"
)

// Summary is the snapshot of user data the responder can draw on.
type Summary struct {
	// HabitCount is the number of active habits.
	HabitCount int

	// BestHabit and BestStreak describe the longest current streak.
	BestHabit  string
	BestStreak int

	// OpenTodos and OverdueTodos count the task backlog.
	OpenTodos    int
	OverdueTodos int

	// AvgMood is the trailing-week mood average (0 when unlogged).
	AvgMood float64

	// MonthlyBurn is the total monthly subscription cost.
	MonthlyBurn float64
}

// responder fills a canned response from the summary.
type responder func(s Summary) string

// rule pairs trigger keywords with a responder. The first rule with any
// matching keyword wins; order is fixed.
type rule struct {
	keywords []string
	respond  responder
}

var rules = []rule{
	{
		keywords: []string{"streak", "habit"},
		respond: func(s Summary) string {
			if s.HabitCount == 0 {
				return "You aren't tracking any habits yet. Add one with `dayline habit add`."
			}
			if s.BestStreak == 0 {
				return fmt.Sprintf("You track %d habits but no streak is alive right now. Today is a good day to restart one.", s.HabitCount)
			}
			return fmt.Sprintf("Your longest active streak is %q at %d days. Keep it going!", s.BestHabit, s.BestStreak)
		},
	},
	{
		keywords: []string{"todo", "task"},
		respond: func(s Summary) string {
			if s.OpenTodos == 0 {
				return "Your task list is clear. Nothing is waiting on you."
			}
			if s.OverdueTodos > 0 {
				return fmt.Sprintf("You have %d open tasks, %d of them overdue. The overdue ones are the place to start.", s.OpenTodos, s.OverdueTodos)
			}
			return fmt.Sprintf("You have %d open tasks and nothing overdue.", s.OpenTodos)
		},
	},
	{
		keywords: []string{"mood", "feel"},
		respond: func(s Summary) string {
			if s.AvgMood == 0 {
				return "No mood entries this week. Log one with `dayline mood log`."
			}
			return fmt.Sprintf("Your average mood over the last week is %.1f out of 5.", s.AvgMood)
		},
	},
	{
		keywords: []string{"spend", "subscription", "money", "cost"},
		respond: func(s Summary) string {
			if s.MonthlyBurn == 0 {
				return "No subscriptions on record, so your tracked monthly burn is zero."
			}
			return fmt.Sprintf("Your subscriptions total %.2f per month.", s.MonthlyBurn)
		},
	},
}

// fallback is returned when no keyword matches.
const fallback = "I can answer questions about your habits, streaks, tasks, mood, and subscriptions."

// Answer returns the canned response for the question.
func Answer(question string, s Summary) string {
	q := strings.ToLower(question)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(q, kw) {
				return r.respond(s)
			}
		}
	}
	return fallback
}

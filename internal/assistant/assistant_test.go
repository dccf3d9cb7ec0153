package assistant

import (
	"strings"
	"testing"
)

func TestAnswer_StreakQuestion(t *testing.T) {
	s := Summary{HabitCount: 3, BestHabit: "morning run", BestStreak: 12}
	got := Answer("how is my streak doing?", s)
	if !strings.Contains(got, "morning run") || !strings.Contains(got, "12") {
		t.Errorf("expected streak answer, got %q", got)
	}
}

func TestAnswer_FirstMatchWins(t *testing.T) {
	// "habit" and "mood" both appear; the habit rule is registered first.
	s := Summary{HabitCount: 1, BestHabit: "journal", BestStreak: 2, AvgMood: 4}
	got := Answer("does my habit affect my mood?", s)
	if !strings.Contains(got, "journal") {
		t.Errorf("expected habit rule to win, got %q", got)
	}
}

func TestAnswer_OverdueTasks(t *testing.T) {
	s := Summary{OpenTodos: 5, OverdueTodos: 2}
	got := Answer("what tasks do I have?", s)
	if !strings.Contains(got, "2") || !strings.Contains(got, "overdue") {
		t.Errorf("expected overdue mention, got %q", got)
	}
}

func TestAnswer_SubscriptionBurn(t *testing.T) {
	got := Answer("how much do I spend on subscriptions?", Summary{MonthlyBurn: 42.5})
	if !strings.Contains(got, "42.50") {
		t.Errorf("expected monthly burn, got %q", got)
	}
}

func TestAnswer_Fallback(t *testing.T) {
	if got := Answer("what's the weather like?", Summary{}); got != fallback {
		t.Errorf("expected fallback, got %q", got)
	}
}

func TestAnswer_CaseInsensitive(t *testing.T) {
	s := Summary{HabitCount: 2, BestHabit: "read", BestStreak: 4}
	if got := Answer("STREAK?", s); !strings.Contains(got, "read") {
		t.Errorf("expected case-insensitive match, got %q", got)
	}
}

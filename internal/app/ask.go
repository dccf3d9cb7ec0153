package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/fernhill-labs/dayline/internal/assistant"
	"github.com/fernhill-labs/dayline/internal/models"
)

// summaryStore is the slice of the store the assistant summary needs,
// narrowed so tests can stub it.
type summaryStore interface {
	ListHabits(includeArchived bool) ([]models.Habit, error)
	ListTodos(includeDone bool) ([]models.Todo, error)
	ListMoodsSince(cutoff time.Time) ([]models.MoodEntry, error)
	ListSubscriptions() ([]models.Subscription, error)
}

var askCmd = &cobra.Command{
	Use:   "ask <question...>",
	Short: "Ask a question about your own data",
	Long: `Answer a free-form question from your tracked data. Responses come from
a fixed rule table over your habits, tasks, mood, and subscriptions; nothing
leaves your machine.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	_, db, err := setup()
	if err != nil {
		return err
	}
	defer db.Close()

	summary, err := buildSummary(db)
	if err != nil {
		return err
	}

	question := strings.Join(args, " ")
	fmt.Println(assistant.Answer(question, summary))
	return nil
}

// buildSummary snapshots the data the assistant rules draw on.
func buildSummary(db summaryStore) (assistant.Summary, error) {
	var s assistant.Summary

	habits, err := db.ListHabits(false)
	if err != nil {
		return s, fmt.Errorf("listing habits: %w", err)
	}
	s.HabitCount = len(habits)
	for _, h := range habits {
		if h.CurrentStreak > s.BestStreak {
			s.BestStreak = h.CurrentStreak
			s.BestHabit = h.Name
		}
	}

	now := time.Now()
	todos, err := db.ListTodos(false)
	if err != nil {
		return s, fmt.Errorf("listing todos: %w", err)
	}
	s.OpenTodos = len(todos)
	for _, t := range todos {
		if t.Overdue(now) {
			s.OverdueTodos++
		}
	}

	moods, err := db.ListMoodsSince(now.AddDate(0, 0, -7))
	if err != nil {
		return s, fmt.Errorf("listing moods: %w", err)
	}
	s.AvgMood = averageMood(moods)

	subs, err := db.ListSubscriptions()
	if err != nil {
		return s, fmt.Errorf("listing subscriptions: %w", err)
	}
	s.MonthlyBurn = monthlyBurn(subs)

	return s, nil
}

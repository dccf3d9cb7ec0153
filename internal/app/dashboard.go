package app

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fernhill-labs/dayline/internal/models"
	"github.com/fernhill-labs/dayline/internal/output"
)

// runDashboard renders the default no-argument summary: today's habits,
// the task backlog, this week's mood, and the subscription burn.
func runDashboard(cmd *cobra.Command, args []string) error {
	cfg, db, err := setup()
	if err != nil {
		return err
	}
	defer db.Close()

	now := time.Now()
	today := now.Format(models.DayFormat)

	habits, err := db.ListHabits(false)
	if err != nil {
		return fmt.Errorf("listing habits: %w", err)
	}

	tr := newTracker(cfg, db)
	allStats, err := tr.AllStats(context.Background())
	if err != nil {
		return fmt.Errorf("computing stats: %w", err)
	}

	fmt.Println(output.StyleHeader.Render("Today — " + today))
	fmt.Println()

	if len(habits) == 0 {
		fmt.Println(" No habits yet. Start one with 'dayline habit add'.")
	} else {
		table := output.NewTable("Habit", "Streak", "Week", "Consistency")
		for _, h := range habits {
			stats := allStats[h.ID]
			table.AddRow(
				h.Name,
				output.Streak(stats.Streaks.Current),
				output.WeekBits(stats.WeeklyProgress),
				output.ScoreBar(stats.ConsistencyScore, 10),
			)
		}
		table.Print()
	}
	fmt.Println()

	todos, err := db.ListTodos(false)
	if err != nil {
		return fmt.Errorf("listing todos: %w", err)
	}
	overdue := 0
	for _, td := range todos {
		if td.Overdue(now) {
			overdue++
		}
	}
	line := fmt.Sprintf(" Tasks: %d open", len(todos))
	if overdue > 0 {
		line += output.StyleError.Render(fmt.Sprintf(", %d overdue", overdue))
	}
	fmt.Println(line)

	moods, err := db.ListMoodsSince(now.AddDate(0, 0, -7))
	if err != nil {
		return fmt.Errorf("listing moods: %w", err)
	}
	if avg := averageMood(moods); avg > 0 {
		fmt.Printf(" Mood (7d): %.1f/5\n", avg)
	}

	subs, err := db.ListSubscriptions()
	if err != nil {
		return fmt.Errorf("listing subscriptions: %w", err)
	}
	if burn := monthlyBurn(subs); burn > 0 {
		fmt.Printf(" Subscriptions: %.2f/month\n", burn)
	}

	return nil
}

func averageMood(moods []models.MoodEntry) float64 {
	if len(moods) == 0 {
		return 0
	}
	sum := 0
	for _, m := range moods {
		sum += m.Rating
	}
	return float64(sum) / float64(len(moods))
}

func monthlyBurn(subs []models.Subscription) float64 {
	total := 0.0
	for _, s := range subs {
		total += s.MonthlyCost()
	}
	return total
}

package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fernhill-labs/dayline/internal/output"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Show insights and suggestions across all habits",
	Long: `Recompute analytics for every active habit and print the insight and
suggestion sentences whose thresholds are crossed. Habits are listed most
consistent first.`,
	RunE: runInsights,
}

func init() {
	rootCmd.AddCommand(insightsCmd)
}

func runInsights(cmd *cobra.Command, args []string) error {
	cfg, db, err := setup()
	if err != nil {
		return err
	}
	defer db.Close()

	habits, err := db.ListHabits(false)
	if err != nil {
		return fmt.Errorf("listing habits: %w", err)
	}
	names := make(map[string]string, len(habits))
	for _, h := range habits {
		names[h.ID] = h.Name
	}

	tr := newTracker(cfg, db)
	all, err := tr.AllStats(context.Background())
	if err != nil {
		return fmt.Errorf("computing stats: %w", err)
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(all)
	}

	fmt.Println(output.StyleHeader.Render("Insights"))
	fmt.Println()

	printed := false
	for _, stats := range statsByConsistency(all) {
		if len(stats.Insights) == 0 && len(stats.Suggestions) == 0 {
			continue
		}
		printed = true

		fmt.Println(output.StyleBold.Render(" " + names[stats.HabitID]))
		for _, line := range stats.Insights {
			fmt.Println("   · " + line)
		}
		for _, line := range stats.Suggestions {
			fmt.Println(output.StyleMuted.Render("   → " + line))
		}
		fmt.Println()
	}

	if !printed {
		fmt.Println(" Nothing to report yet. Insights appear as completion history builds up.")
	}
	return nil
}

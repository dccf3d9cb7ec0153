package app

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fernhill-labs/dayline/internal/analytics"
	"github.com/fernhill-labs/dayline/internal/output"
)

var statsCmd = &cobra.Command{
	Use:   "stats <habit>",
	Short: "Show full analytics for one habit",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, db, err := setup()
	if err != nil {
		return err
	}
	defer db.Close()

	habit, err := findHabit(db, args[0])
	if err != nil {
		return err
	}

	tr := newTracker(cfg, db)
	stats, err := tr.StatsFor(habit.ID)
	if err != nil {
		return err
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(stats)
	}

	fmt.Println(output.StyleHeader.Render(habit.Name))
	fmt.Println()
	fmt.Printf(" Completions:  %d (%.0f%% of days since creation)\n",
		stats.TotalCompletions, stats.CompletionRate)
	fmt.Printf(" Streak:       %s  best %d  avg %.1f\n",
		output.Streak(stats.Streaks.Current), stats.Streaks.Longest, stats.Streaks.Average)
	fmt.Printf(" Week:         %s\n", output.WeekBits(stats.WeeklyProgress))
	fmt.Printf(" Consistency:  %s\n", output.ScoreBar(stats.ConsistencyScore, 20))
	fmt.Printf(" Prediction:   %s\n", output.ScoreBar(stats.SuccessPrediction*100, 20))
	if stats.ImprovementRate != 0 {
		fmt.Printf(" Satisfaction: %+.0f%% vs first half\n", stats.ImprovementRate)
	}
	if stats.AvgMoodDelta != 0 {
		fmt.Printf(" Mood delta:   %+.1f\n", stats.AvgMoodDelta)
	}
	fmt.Println()

	if stats.BestWeekday != "" {
		fmt.Printf(" Best day:     %s (worst: %s)\n", stats.BestWeekday, stats.WorstWeekday)
	}
	if stats.BestTimeOfDay != "" {
		fmt.Printf(" Best time:    %s\n", stats.BestTimeOfDay)
	}

	printTally(" By weekday", stats.ByWeekday)
	printTally(" By time", stats.ByTimeOfDay)
	printTally(" By season", stats.BySeason)
	printTally(" By weather", stats.ByWeather)
	printTally(" By location", stats.ByLocation)

	return nil
}

// printTally renders a bucket tally sorted by count descending, key
// ascending on ties.
func printTally(label string, tally map[string]int) {
	if len(tally) == 0 {
		return
	}

	keys := make([]string, 0, len(tally))
	for k := range tally {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if tally[keys[i]] != tally[keys[j]] {
			return tally[keys[i]] > tally[keys[j]]
		}
		return keys[i] < keys[j]
	})

	fmt.Println()
	fmt.Println(output.StyleBold.Render(label))
	table := output.NewTable("", "Count")
	for _, k := range keys {
		table.AddRow("  "+k, strconv.Itoa(tally[k]))
	}
	table.Print()
}

// statsByConsistency orders habit stats for the insights overview, most
// consistent first.
func statsByConsistency(all map[string]analytics.HabitStats) []analytics.HabitStats {
	list := make([]analytics.HabitStats, 0, len(all))
	for _, s := range all {
		list = append(list, s)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].ConsistencyScore != list[j].ConsistencyScore {
			return list[i].ConsistencyScore > list[j].ConsistencyScore
		}
		return list[i].HabitID < list[j].HabitID
	})
	return list
}

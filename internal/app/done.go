package app

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fernhill-labs/dayline/internal/models"
	"github.com/fernhill-labs/dayline/internal/output"
	"github.com/fernhill-labs/dayline/internal/tracker"
)

var (
	doneDay           string
	doneQuantity      int
	doneMoodBefore    int
	doneMoodAfter     int
	doneEnergyBefore  int
	doneEnergyAfter   int
	doneSatisfaction  int
	doneInterruptions int
	doneLocation      string
	doneWeather       string
	doneNote          string
)

var doneCmd = &cobra.Command{
	Use:   "done <habit>",
	Short: "Toggle a habit completion for today (or a chosen day)",
	Long: `Toggle the completion state of a habit. If the habit is not completed
for the day, a completion is recorded; if it already is, the completion is
removed. Contextual details (mood, energy, location, weather) are optional
and only apply when recording.`,
	Args: cobra.ExactArgs(1),
	RunE: runDone,
}

func init() {
	doneCmd.Flags().StringVar(&doneDay, "day", "", "Day to toggle (YYYY-MM-DD, default today)")
	doneCmd.Flags().IntVar(&doneQuantity, "quantity", 0, "How many times/units")
	doneCmd.Flags().IntVar(&doneMoodBefore, "mood-before", 0, "Mood before, 1-5")
	doneCmd.Flags().IntVar(&doneMoodAfter, "mood-after", 0, "Mood after, 1-5")
	doneCmd.Flags().IntVar(&doneEnergyBefore, "energy-before", 0, "Energy before, 1-5")
	doneCmd.Flags().IntVar(&doneEnergyAfter, "energy-after", 0, "Energy after, 1-5")
	doneCmd.Flags().IntVar(&doneSatisfaction, "satisfaction", 0, "Satisfaction, 1-5")
	doneCmd.Flags().IntVar(&doneInterruptions, "interruptions", 0, "Interruption count")
	doneCmd.Flags().StringVar(&doneLocation, "location", "", "Where it happened")
	doneCmd.Flags().StringVar(&doneWeather, "weather", "", "Weather at the time")
	doneCmd.Flags().StringVar(&doneNote, "note", "", "Free-form note")
	rootCmd.AddCommand(doneCmd)
}

// optionalRating validates a 1-5 flag, returning nil when the flag was not set.
func optionalRating(name string, value int) (*int, error) {
	if value == 0 {
		return nil, nil
	}
	if value < 1 || value > 5 {
		return nil, fmt.Errorf("--%s must be between 1 and 5", name)
	}
	return &value, nil
}

func runDone(cmd *cobra.Command, args []string) error {
	cfg, db, err := setup()
	if err != nil {
		return err
	}
	defer db.Close()

	habit, err := findHabit(db, args[0])
	if err != nil {
		return err
	}

	day := doneDay
	if day == "" {
		day = time.Now().Format(models.DayFormat)
	} else if _, err := time.Parse(models.DayFormat, day); err != nil {
		return fmt.Errorf("invalid --day %q (want YYYY-MM-DD)", day)
	}

	details := tracker.Details{
		Quantity:      doneQuantity,
		Interruptions: doneInterruptions,
		Location:      doneLocation,
		Weather:       doneWeather,
		Note:          doneNote,
	}
	ratings := []struct {
		name  string
		value int
		dest  **int
	}{
		{"mood-before", doneMoodBefore, &details.MoodBefore},
		{"mood-after", doneMoodAfter, &details.MoodAfter},
		{"energy-before", doneEnergyBefore, &details.EnergyBefore},
		{"energy-after", doneEnergyAfter, &details.EnergyAfter},
		{"satisfaction", doneSatisfaction, &details.Satisfaction},
	}
	for _, r := range ratings {
		p, err := optionalRating(r.name, r.value)
		if err != nil {
			return err
		}
		*r.dest = p
	}

	tr := newTracker(cfg, db)
	result, err := tr.Toggle(habit.ID, day, details)
	if err != nil {
		return err
	}

	if result.Added {
		fmt.Printf("Completed %q for %s. Streak: %s\n",
			habit.Name, day, output.Streak(result.Stats.Streaks.Current))
	} else {
		fmt.Printf("Removed completion of %q for %s. Streak: %s\n",
			habit.Name, day, output.Streak(result.Stats.Streaks.Current))
	}

	for _, insight := range result.Stats.Insights {
		fmt.Println(output.StyleMuted.Render("  · " + insight))
	}
	return nil
}

package app

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/fernhill-labs/dayline/internal/models"
	"github.com/fernhill-labs/dayline/internal/output"
)

var (
	moodNote string
	moodDays int
)

var moodCmd = &cobra.Command{
	Use:   "mood",
	Short: "Log and review mood ratings",
}

var moodLogCmd = &cobra.Command{
	Use:   "log <rating>",
	Short: "Log a mood rating from 1 (low) to 5 (high)",
	Args:  cobra.ExactArgs(1),
	RunE:  runMoodLog,
}

var moodListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show recent mood entries",
	RunE:  runMoodList,
}

func init() {
	moodLogCmd.Flags().StringVar(&moodNote, "note", "", "What shaped the mood")
	moodListCmd.Flags().IntVar(&moodDays, "days", 7, "How many days back to show")

	moodCmd.AddCommand(moodLogCmd, moodListCmd)
	rootCmd.AddCommand(moodCmd)
}

func runMoodLog(cmd *cobra.Command, args []string) error {
	rating, err := strconv.Atoi(args[0])
	if err != nil || rating < 1 || rating > 5 {
		return fmt.Errorf("rating must be a number between 1 and 5")
	}

	_, db, err := setup()
	if err != nil {
		return err
	}
	defer db.Close()

	entry := &models.MoodEntry{
		ID:       uuid.NewString(),
		LoggedAt: time.Now().UTC(),
		Rating:   rating,
		Note:     moodNote,
	}
	if err := db.CreateMood(entry); err != nil {
		return fmt.Errorf("logging mood: %w", err)
	}
	fmt.Printf("Logged mood %d/5\n", rating)
	return nil
}

func runMoodList(cmd *cobra.Command, args []string) error {
	_, db, err := setup()
	if err != nil {
		return err
	}
	defer db.Close()

	cutoff := time.Now().AddDate(0, 0, -moodDays)
	moods, err := db.ListMoodsSince(cutoff)
	if err != nil {
		return fmt.Errorf("listing moods: %w", err)
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(moods)
	}

	if len(moods) == 0 {
		fmt.Printf("No mood entries in the last %d days.\n", moodDays)
		return nil
	}

	table := output.NewTable("When", "Mood", "Note")
	for _, m := range moods {
		table.AddRow(output.RelTime(m.LoggedAt), fmt.Sprintf("%d/5", m.Rating), m.Note)
	}
	table.Print()
	fmt.Printf("\n Average: %.1f/5 over %d entries\n", averageMood(moods), len(moods))
	return nil
}

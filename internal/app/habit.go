package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/fernhill-labs/dayline/internal/models"
	"github.com/fernhill-labs/dayline/internal/output"
	"github.com/fernhill-labs/dayline/internal/store"
)

var (
	habitCategory   string
	habitDifficulty string
	habitTarget     int
	habitAll        bool
)

var habitCmd = &cobra.Command{
	Use:   "habit",
	Short: "Manage habits",
}

var habitAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a new habit",
	Args:  cobra.ExactArgs(1),
	RunE:  runHabitAdd,
}

var habitListCmd = &cobra.Command{
	Use:   "list",
	Short: "List habits with their streak counters",
	RunE:  runHabitList,
}

var habitArchiveCmd = &cobra.Command{
	Use:   "archive <name>",
	Short: "Archive a habit, keeping its history",
	Args:  cobra.ExactArgs(1),
	RunE:  runHabitArchive,
}

var habitRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Delete a habit and all of its completions",
	Args:  cobra.ExactArgs(1),
	RunE:  runHabitRm,
}

func init() {
	habitAddCmd.Flags().StringVar(&habitCategory, "category", "", "Habit category (e.g. fitness, mind)")
	habitAddCmd.Flags().StringVar(&habitDifficulty, "difficulty", "medium", "Difficulty: easy, medium, hard, expert")
	habitAddCmd.Flags().IntVar(&habitTarget, "target", 0, "Target days per week (default from config)")
	habitListCmd.Flags().BoolVar(&habitAll, "all", false, "Include archived habits")

	habitCmd.AddCommand(habitAddCmd, habitListCmd, habitArchiveCmd, habitRmCmd)
	rootCmd.AddCommand(habitCmd)
}

func runHabitAdd(cmd *cobra.Command, args []string) error {
	cfg, db, err := setup()
	if err != nil {
		return err
	}
	defer db.Close()

	difficulty := models.Difficulty(habitDifficulty)
	if !difficulty.Valid() {
		return fmt.Errorf("unknown difficulty %q (want easy, medium, hard, or expert)", habitDifficulty)
	}

	target := habitTarget
	if target <= 0 {
		target = cfg.DefaultTarget
	}
	if target > 7 {
		return fmt.Errorf("target %d exceeds 7 days per week", target)
	}

	habit := &models.Habit{
		ID:            uuid.NewString(),
		Name:          args[0],
		Category:      habitCategory,
		Difficulty:    difficulty,
		TargetPerWeek: target,
		CreatedAt:     time.Now().UTC(),
	}
	if err := db.CreateHabit(habit); err != nil {
		return fmt.Errorf("creating habit: %w", err)
	}

	fmt.Printf("Added %q (%s, %d days/week)\n", habit.Name, habit.Difficulty, habit.TargetPerWeek)
	return nil
}

func runHabitList(cmd *cobra.Command, args []string) error {
	_, db, err := setup()
	if err != nil {
		return err
	}
	defer db.Close()

	habits, err := db.ListHabits(habitAll)
	if err != nil {
		return fmt.Errorf("listing habits: %w", err)
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(habits)
	}

	if len(habits) == 0 {
		fmt.Println("No habits yet.")
		return nil
	}

	table := output.NewTable("Habit", "Category", "Difficulty", "Target", "Streak", "Best", "Total")
	for _, h := range habits {
		name := h.Name
		if h.Archived {
			name = output.StyleMuted.Render(name + " (archived)")
		}
		table.AddRow(
			name,
			h.Category,
			string(h.Difficulty),
			fmt.Sprintf("%d/wk", h.TargetPerWeek),
			output.Streak(h.CurrentStreak),
			strconv.Itoa(h.BestStreak),
			strconv.Itoa(h.TotalCompletions),
		)
	}
	table.Print()
	return nil
}

func runHabitArchive(cmd *cobra.Command, args []string) error {
	_, db, err := setup()
	if err != nil {
		return err
	}
	defer db.Close()

	habit, err := findHabit(db, args[0])
	if err != nil {
		return err
	}
	if err := db.SetHabitArchived(habit.ID, true); err != nil {
		return fmt.Errorf("archiving habit: %w", err)
	}
	fmt.Printf("Archived %q\n", habit.Name)
	return nil
}

func runHabitRm(cmd *cobra.Command, args []string) error {
	_, db, err := setup()
	if err != nil {
		return err
	}
	defer db.Close()

	habit, err := findHabit(db, args[0])
	if err != nil {
		return err
	}
	if err := db.DeleteHabit(habit.ID); err != nil {
		return fmt.Errorf("deleting habit: %w", err)
	}
	fmt.Printf("Deleted %q and its completions\n", habit.Name)
	return nil
}

// findHabit resolves a CLI habit argument by exact name.
func findHabit(db *store.DB, name string) (*models.Habit, error) {
	habit, err := db.FindHabitByName(name)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("no habit named %q", name)
	}
	if err != nil {
		return nil, fmt.Errorf("looking up habit: %w", err)
	}
	return habit, nil
}

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
	mealCalories int
	mealProtein  int
	mealDay      string
)

var mealCmd = &cobra.Command{
	Use:   "meal",
	Short: "Log meals and daily nutrition",
}

var mealLogCmd = &cobra.Command{
	Use:   "log <name>",
	Short: "Log a meal",
	Args:  cobra.ExactArgs(1),
	RunE:  runMealLog,
}

var mealListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show meals and totals for a day",
	RunE:  runMealList,
}

func init() {
	mealLogCmd.Flags().IntVar(&mealCalories, "calories", 0, "Calories")
	mealLogCmd.Flags().IntVar(&mealProtein, "protein", 0, "Protein in grams")
	mealLogCmd.Flags().StringVar(&mealDay, "day", "", "Day (YYYY-MM-DD, default today)")
	mealListCmd.Flags().StringVar(&mealDay, "day", "", "Day (YYYY-MM-DD, default today)")

	mealCmd.AddCommand(mealLogCmd, mealListCmd)
	rootCmd.AddCommand(mealCmd)
}

func resolveDay(flag string) (string, error) {
	if flag == "" {
		return time.Now().Format(models.DayFormat), nil
	}
	if _, err := time.Parse(models.DayFormat, flag); err != nil {
		return "", fmt.Errorf("invalid --day %q (want YYYY-MM-DD)", flag)
	}
	return flag, nil
}

func runMealLog(cmd *cobra.Command, args []string) error {
	day, err := resolveDay(mealDay)
	if err != nil {
		return err
	}
	if mealCalories < 0 || mealProtein < 0 {
		return fmt.Errorf("calories and protein must not be negative")
	}

	_, db, err := setup()
	if err != nil {
		return err
	}
	defer db.Close()

	meal := &models.Meal{
		ID:       uuid.NewString(),
		Day:      day,
		Name:     args[0],
		Calories: mealCalories,
		Protein:  mealProtein,
		LoggedAt: time.Now().UTC(),
	}
	if err := db.CreateMeal(meal); err != nil {
		return fmt.Errorf("logging meal: %w", err)
	}
	fmt.Printf("Logged %q for %s\n", meal.Name, day)
	return nil
}

func runMealList(cmd *cobra.Command, args []string) error {
	day, err := resolveDay(mealDay)
	if err != nil {
		return err
	}

	_, db, err := setup()
	if err != nil {
		return err
	}
	defer db.Close()

	meals, err := db.ListMealsForDay(day)
	if err != nil {
		return fmt.Errorf("listing meals: %w", err)
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(meals)
	}

	if len(meals) == 0 {
		fmt.Printf("No meals logged for %s.\n", day)
		return nil
	}

	calories, protein := 0, 0
	table := output.NewTable("Meal", "Calories", "Protein")
	for _, m := range meals {
		calories += m.Calories
		protein += m.Protein
		table.AddRow(m.Name, strconv.Itoa(m.Calories), fmt.Sprintf("%dg", m.Protein))
	}
	table.Print()
	fmt.Printf("\n Total: %d kcal, %dg protein\n", calories, protein)
	return nil
}

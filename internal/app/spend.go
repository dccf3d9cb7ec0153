package app

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/fernhill-labs/dayline/internal/models"
	"github.com/fernhill-labs/dayline/internal/output"
)

var (
	spendCategory string
	spendMerchant string
	spendNote     string
	spendDays     int
)

var spendCmd = &cobra.Command{
	Use:   "spend",
	Short: "Record and review spending",
}

var spendAddCmd = &cobra.Command{
	Use:   "add <amount>",
	Short: "Record a purchase",
	Args:  cobra.ExactArgs(1),
	RunE:  runSpendAdd,
}

var spendListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show recent spending with per-category totals",
	RunE:  runSpendList,
}

func init() {
	spendAddCmd.Flags().StringVar(&spendCategory, "category", "other", "Spending category")
	spendAddCmd.Flags().StringVar(&spendMerchant, "merchant", "", "Where the money went")
	spendAddCmd.Flags().StringVar(&spendNote, "note", "", "Free-form note")
	spendListCmd.Flags().IntVar(&spendDays, "days", 30, "How many days back to include")

	spendCmd.AddCommand(spendAddCmd, spendListCmd)
	rootCmd.AddCommand(spendCmd)
}

func runSpendAdd(cmd *cobra.Command, args []string) error {
	amount, err := strconv.ParseFloat(args[0], 64)
	if err != nil || amount <= 0 {
		return fmt.Errorf("amount %q must be a positive number", args[0])
	}

	_, db, err := setup()
	if err != nil {
		return err
	}
	defer db.Close()

	txn := &models.Transaction{
		ID:         uuid.NewString(),
		OccurredAt: time.Now().UTC(),
		Amount:     amount,
		Category:   spendCategory,
		Merchant:   spendMerchant,
		Note:       spendNote,
	}
	if err := db.CreateTransaction(txn); err != nil {
		return fmt.Errorf("recording transaction: %w", err)
	}
	fmt.Printf("Recorded %.2f (%s)\n", txn.Amount, txn.Category)
	return nil
}

func runSpendList(cmd *cobra.Command, args []string) error {
	_, db, err := setup()
	if err != nil {
		return err
	}
	defer db.Close()

	now := time.Now()
	txns, err := db.ListTransactionsBetween(now.AddDate(0, 0, -spendDays), now.Add(time.Minute))
	if err != nil {
		return fmt.Errorf("listing transactions: %w", err)
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(txns)
	}

	if len(txns) == 0 {
		fmt.Printf("No spending recorded in the last %d days.\n", spendDays)
		return nil
	}

	total := 0.0
	byCategory := make(map[string]float64)
	table := output.NewTable("When", "Amount", "Category", "Merchant")
	for _, t := range txns {
		total += t.Amount
		byCategory[t.Category] += t.Amount
		table.AddRow(output.RelTime(t.OccurredAt), fmt.Sprintf("%.2f", t.Amount), t.Category, t.Merchant)
	}
	table.Print()

	categories := make([]string, 0, len(byCategory))
	for c := range byCategory {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool {
		if byCategory[categories[i]] != byCategory[categories[j]] {
			return byCategory[categories[i]] > byCategory[categories[j]]
		}
		return categories[i] < categories[j]
	})

	fmt.Println()
	fmt.Println(output.StyleBold.Render(" By category"))
	for _, c := range categories {
		fmt.Printf("  %-12s %.2f\n", c, byCategory[c])
	}
	fmt.Printf("\n Total: %.2f over %d days\n", total, spendDays)
	return nil
}

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

var subsCadence string

var subsCmd = &cobra.Command{
	Use:   "subs",
	Short: "Track recurring subscriptions",
}

var subsAddCmd = &cobra.Command{
	Use:   "add <name> <amount>",
	Short: "Add a subscription",
	Args:  cobra.ExactArgs(2),
	RunE:  runSubsAdd,
}

var subsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List subscriptions with the monthly total",
	RunE:  runSubsList,
}

var subsRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Remove a subscription",
	Args:  cobra.ExactArgs(1),
	RunE:  runSubsRm,
}

func init() {
	subsAddCmd.Flags().StringVar(&subsCadence, "cadence", "monthly", "Billing cadence: weekly, monthly, yearly")

	subsCmd.AddCommand(subsAddCmd, subsListCmd, subsRmCmd)
	rootCmd.AddCommand(subsCmd)
}

func runSubsAdd(cmd *cobra.Command, args []string) error {
	amount, err := strconv.ParseFloat(args[1], 64)
	if err != nil || amount <= 0 {
		return fmt.Errorf("amount %q must be a positive number", args[1])
	}
	cadence := models.Cadence(subsCadence)
	if !cadence.Valid() {
		return fmt.Errorf("unknown cadence %q (want weekly, monthly, or yearly)", subsCadence)
	}

	_, db, err := setup()
	if err != nil {
		return err
	}
	defer db.Close()

	sub := &models.Subscription{
		ID:        uuid.NewString(),
		Name:      args[0],
		Amount:    amount,
		Cadence:   cadence,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.CreateSubscription(sub); err != nil {
		return fmt.Errorf("creating subscription: %w", err)
	}
	fmt.Printf("Added %q at %.2f %s (%.2f/month)\n", sub.Name, sub.Amount, sub.Cadence, sub.MonthlyCost())
	return nil
}

func runSubsList(cmd *cobra.Command, args []string) error {
	_, db, err := setup()
	if err != nil {
		return err
	}
	defer db.Close()

	subs, err := db.ListSubscriptions()
	if err != nil {
		return fmt.Errorf("listing subscriptions: %w", err)
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(subs)
	}

	if len(subs) == 0 {
		fmt.Println("No subscriptions on record.")
		return nil
	}

	table := output.NewTable("Name", "Amount", "Cadence", "Monthly")
	for _, s := range subs {
		table.AddRow(
			s.Name,
			fmt.Sprintf("%.2f", s.Amount),
			string(s.Cadence),
			fmt.Sprintf("%.2f", s.MonthlyCost()),
		)
	}
	table.Print()
	fmt.Printf("\n Total: %.2f/month\n", monthlyBurn(subs))
	return nil
}

func runSubsRm(cmd *cobra.Command, args []string) error {
	_, db, err := setup()
	if err != nil {
		return err
	}
	defer db.Close()

	subs, err := db.ListSubscriptions()
	if err != nil {
		return fmt.Errorf("listing subscriptions: %w", err)
	}
	for _, s := range subs {
		if s.Name == args[0] {
			if err := db.DeleteSubscription(s.ID); err != nil {
				return fmt.Errorf("deleting subscription: %w", err)
			}
			fmt.Printf("Removed %q\n", s.Name)
			return nil
		}
	}
	return fmt.Errorf("no subscription named %q", args[0])
}

// Package app contains the Cobra command tree for dayline.
package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fernhill-labs/dayline/internal/config"
	"github.com/fernhill-labs/dayline/internal/insight"
	"github.com/fernhill-labs/dayline/internal/output"
	"github.com/fernhill-labs/dayline/internal/store"
	"github.com/fernhill-labs/dayline/internal/tracker"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagConfig  string
	flagNoColor bool
	flagJSON    bool
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "dayline",
	Short: "A personal productivity tracker for habits, tasks, mood, and money",
	Long: `dayline keeps your daily life in one local database: habits with streak
analytics and insights, to-dos, mood logs, notes, subscriptions, spending,
and meals.

Run 'dayline' with no arguments for a dashboard summary of today.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runDashboard,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/dayline/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose output")
}

// setup loads config, applies output flags, and opens the database. The
// caller owns closing the returned DB.
func setup() (*config.Config, *store.DB, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	if flagNoColor || !cfg.Output.Color {
		output.SetNoColor(true)
	} else {
		output.AutoDetect()
	}

	db, err := store.Open(cfg.DBPath())
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}
	return cfg, db, nil
}

// newTracker builds a tracker wired with the configured insight thresholds.
func newTracker(cfg *config.Config, db *store.DB) *tracker.Tracker {
	return tracker.New(db, insight.Thresholds{
		HighCompletionRate: cfg.Insights.HighCompletionRate,
		LowCompletionRate:  cfg.Insights.LowCompletionRate,
		StreakConfidence:   cfg.Insights.StreakConfidence,
		WeatherDominance:   cfg.Insights.WeatherDominance,
	})
}

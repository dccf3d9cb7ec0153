package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fernhill-labs/dayline/internal/config"
	"github.com/fernhill-labs/dayline/internal/output"
	"github.com/fernhill-labs/dayline/internal/store"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check whether the dayline setup is healthy",
	Long: `Run a series of health checks against your dayline configuration and
database. Prints a pass/fail line for each check and a summary of how many
checks passed.`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

// doctorCheck holds the result of a single health check.
type doctorCheck struct {
	Name    string `json:"name"`
	Passed  bool   `json:"passed"`
	Message string `json:"message"`
}

// doctorOutput is the JSON-serializable result of the doctor command.
type doctorOutput struct {
	Checks      []doctorCheck `json:"checks"`
	PassedCount int           `json:"passed"`
	TotalCount  int           `json:"total"`
}

func runDoctor(cmd *cobra.Command, args []string) error {
	if flagNoColor {
		output.SetNoColor(true)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	var checks []doctorCheck
	checks = append(checks, checkDataDir(cfg.DataDir))
	checks = append(checks, checkDatabase(cfg)...)

	passed := 0
	for _, c := range checks {
		if c.Passed {
			passed++
		}
	}

	if flagJSON {
		out := doctorOutput{
			Checks:      checks,
			PassedCount: passed,
			TotalCount:  len(checks),
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Println(output.StyleHeader.Render("Doctor"))
	fmt.Println()

	for _, c := range checks {
		renderDoctorCheck(c)
	}

	fmt.Println()
	summary := fmt.Sprintf("%d/%d checks passed", passed, len(checks))
	if passed == len(checks) {
		fmt.Printf(" %s\n\n", output.StyleSuccess.Render(summary))
	} else {
		fmt.Printf(" %s\n\n", output.StyleWarning.Render(summary))
	}

	return nil
}

// renderDoctorCheck prints a single check result line.
func renderDoctorCheck(c doctorCheck) {
	var indicator string
	if c.Passed {
		indicator = output.StyleSuccess.Render("✓")
	} else {
		indicator = output.StyleWarning.Render("✗")
	}
	label := output.StyleBold.Render(c.Name)
	detail := output.StyleMuted.Render(c.Message)
	fmt.Printf("  %s  %-24s %s\n", indicator, label, detail)
}

// checkDataDir verifies the data directory exists and is a directory.
func checkDataDir(dataDir string) doctorCheck {
	info, err := os.Stat(dataDir)
	if err != nil {
		return doctorCheck{
			Name:    "Data directory",
			Passed:  false,
			Message: fmt.Sprintf("not found: %s (created on first write)", dataDir),
		}
	}
	if !info.IsDir() {
		return doctorCheck{
			Name:    "Data directory",
			Passed:  false,
			Message: fmt.Sprintf("path exists but is not a directory: %s", dataDir),
		}
	}
	return doctorCheck{Name: "Data directory", Passed: true, Message: dataDir}
}

// checkDatabase opens the database and runs schema, integrity, and record
// count checks against it.
func checkDatabase(cfg *config.Config) []doctorCheck {
	dbPath := cfg.DBPath()
	if _, err := os.Stat(dbPath); err != nil {
		return []doctorCheck{{
			Name:    "Database",
			Passed:  false,
			Message: fmt.Sprintf("not found at %s (run 'dayline habit add' to create)", dbPath),
		}}
	}

	db, err := store.Open(dbPath)
	if err != nil {
		return []doctorCheck{{
			Name:    "Database",
			Passed:  false,
			Message: fmt.Sprintf("failed to open: %v", err),
		}}
	}
	defer db.Close()

	checks := []doctorCheck{{Name: "Database", Passed: true, Message: dbPath}}

	version, err := db.SchemaVersion()
	if err != nil {
		checks = append(checks, doctorCheck{
			Name:    "Schema",
			Passed:  false,
			Message: fmt.Sprintf("version query failed: %v", err),
		})
	} else {
		checks = append(checks, doctorCheck{
			Name:    "Schema",
			Passed:  true,
			Message: fmt.Sprintf("version %d", version),
		})
	}

	verdict, err := db.IntegrityCheck()
	if err != nil || verdict != "ok" {
		checks = append(checks, doctorCheck{
			Name:    "Integrity",
			Passed:  false,
			Message: fmt.Sprintf("integrity check: %s (%v)", verdict, err),
		})
	} else {
		checks = append(checks, doctorCheck{Name: "Integrity", Passed: true, Message: "ok"})
	}

	habits, err1 := db.CountRows("habits")
	completions, err2 := db.CountRows("completions")
	if err1 != nil || err2 != nil {
		checks = append(checks, doctorCheck{
			Name:    "Records",
			Passed:  false,
			Message: "count query failed",
		})
	} else {
		checks = append(checks, doctorCheck{
			Name:    "Records",
			Passed:  true,
			Message: fmt.Sprintf("%d habits, %d completions", habits, completions),
		})
	}

	return checks
}

package app

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/fernhill-labs/dayline/internal/models"
	"github.com/fernhill-labs/dayline/internal/output"
)

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Capture and search notes",
}

var noteAddCmd = &cobra.Command{
	Use:   "add <title> [body...]",
	Short: "Add a note",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runNoteAdd,
}

var noteSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search notes by title or body",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runNoteSearch,
}

func init() {
	noteCmd.AddCommand(noteAddCmd, noteSearchCmd)
	rootCmd.AddCommand(noteCmd)
}

func runNoteAdd(cmd *cobra.Command, args []string) error {
	_, db, err := setup()
	if err != nil {
		return err
	}
	defer db.Close()

	note := &models.Note{
		ID:        uuid.NewString(),
		Title:     args[0],
		Body:      strings.Join(args[1:], " "),
		CreatedAt: time.Now().UTC(),
	}
	if err := db.CreateNote(note); err != nil {
		return fmt.Errorf("creating note: %w", err)
	}
	fmt.Printf("Noted %q\n", note.Title)
	return nil
}

func runNoteSearch(cmd *cobra.Command, args []string) error {
	_, db, err := setup()
	if err != nil {
		return err
	}
	defer db.Close()

	query := ""
	if len(args) == 1 {
		query = args[0]
	}
	notes, err := db.SearchNotes(query)
	if err != nil {
		return fmt.Errorf("searching notes: %w", err)
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(notes)
	}

	if len(notes) == 0 {
		fmt.Println("No matching notes.")
		return nil
	}

	for _, n := range notes {
		fmt.Println(output.StyleBold.Render(n.Title) +
			output.StyleMuted.Render("  ("+output.RelTime(n.CreatedAt)+")"))
		if n.Body != "" {
			fmt.Println("  " + n.Body)
		}
	}
	return nil
}

package app

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/fernhill-labs/dayline/internal/models"
	"github.com/fernhill-labs/dayline/internal/output"
)

var (
	todoPriority int
	todoDue      string
	todoAll      bool
)

var todoCmd = &cobra.Command{
	Use:   "todo",
	Short: "Manage to-dos",
}

var todoAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a to-do",
	Args:  cobra.ExactArgs(1),
	RunE:  runTodoAdd,
}

var todoListCmd = &cobra.Command{
	Use:   "list",
	Short: "List open to-dos",
	RunE:  runTodoList,
}

var todoDoneCmd = &cobra.Command{
	Use:   "done <id-prefix>",
	Short: "Mark a to-do complete",
	Args:  cobra.ExactArgs(1),
	RunE:  runTodoDone,
}

var todoRmCmd = &cobra.Command{
	Use:   "rm <id-prefix>",
	Short: "Delete a to-do",
	Args:  cobra.ExactArgs(1),
	RunE:  runTodoRm,
}

func init() {
	todoAddCmd.Flags().IntVar(&todoPriority, "priority", 3, "Priority, 1 (highest) to 5")
	todoAddCmd.Flags().StringVar(&todoDue, "due", "", "Due day (YYYY-MM-DD)")
	todoListCmd.Flags().BoolVar(&todoAll, "all", false, "Include completed to-dos")

	todoCmd.AddCommand(todoAddCmd, todoListCmd, todoDoneCmd, todoRmCmd)
	rootCmd.AddCommand(todoCmd)
}

func runTodoAdd(cmd *cobra.Command, args []string) error {
	_, db, err := setup()
	if err != nil {
		return err
	}
	defer db.Close()

	if todoPriority < 1 || todoPriority > 5 {
		return fmt.Errorf("--priority must be between 1 and 5")
	}
	if todoDue != "" {
		if _, err := time.Parse(models.DayFormat, todoDue); err != nil {
			return fmt.Errorf("invalid --due %q (want YYYY-MM-DD)", todoDue)
		}
	}

	todo := &models.Todo{
		ID:        uuid.NewString(),
		Title:     args[0],
		Priority:  todoPriority,
		Due:       todoDue,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.CreateTodo(todo); err != nil {
		return fmt.Errorf("creating todo: %w", err)
	}
	fmt.Printf("Added %q [%s]\n", todo.Title, shortID(todo.ID))
	return nil
}

func runTodoList(cmd *cobra.Command, args []string) error {
	_, db, err := setup()
	if err != nil {
		return err
	}
	defer db.Close()

	todos, err := db.ListTodos(todoAll)
	if err != nil {
		return fmt.Errorf("listing todos: %w", err)
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(todos)
	}

	if len(todos) == 0 {
		fmt.Println("Nothing to do.")
		return nil
	}

	now := time.Now()
	table := output.NewTable("ID", "P", "Title", "Due")
	for _, t := range todos {
		due := t.Due
		if t.Overdue(now) {
			due = output.StyleError.Render(due + " (overdue)")
		}
		title := t.Title
		if t.Done {
			title = output.StyleMuted.Render(title + " ✓")
		}
		table.AddRow(shortID(t.ID), fmt.Sprintf("%d", t.Priority), title, due)
	}
	table.Print()
	return nil
}

func runTodoDone(cmd *cobra.Command, args []string) error {
	_, db, err := setup()
	if err != nil {
		return err
	}
	defer db.Close()

	todo, err := findTodo(db, args[0])
	if err != nil {
		return err
	}
	if err := db.SetTodoDone(todo.ID, true); err != nil {
		return fmt.Errorf("completing todo: %w", err)
	}
	fmt.Printf("Done: %q\n", todo.Title)
	return nil
}

func runTodoRm(cmd *cobra.Command, args []string) error {
	_, db, err := setup()
	if err != nil {
		return err
	}
	defer db.Close()

	todo, err := findTodo(db, args[0])
	if err != nil {
		return err
	}
	if err := db.DeleteTodo(todo.ID); err != nil {
		return fmt.Errorf("deleting todo: %w", err)
	}
	fmt.Printf("Deleted %q\n", todo.Title)
	return nil
}

// findTodo resolves an ID prefix against open and completed to-dos,
// requiring a unique match.
func findTodo(db interface {
	ListTodos(bool) ([]models.Todo, error)
}, prefix string) (*models.Todo, error) {
	todos, err := db.ListTodos(true)
	if err != nil {
		return nil, fmt.Errorf("listing todos: %w", err)
	}

	var match *models.Todo
	for i := range todos {
		if len(prefix) <= len(todos[i].ID) && todos[i].ID[:len(prefix)] == prefix {
			if match != nil {
				return nil, fmt.Errorf("id prefix %q is ambiguous", prefix)
			}
			match = &todos[i]
		}
	}
	if match == nil {
		return nil, fmt.Errorf("no todo with id %q", prefix)
	}
	return match, nil
}

// shortID returns the first uuid segment, enough to identify entries in a
// personal-sized list.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

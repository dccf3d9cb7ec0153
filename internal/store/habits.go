package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/fernhill-labs/dayline/internal/models"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = sql.ErrNoRows

// CreateHabit inserts a new habit.
func (db *DB) CreateHabit(h *models.Habit) error {
	_, err := db.conn.Exec(
		`INSERT INTO habits
		(id, name, category, difficulty, target_per_week, current_streak,
		 best_streak, total_completions, archived, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		h.ID, h.Name, h.Category, string(h.Difficulty), h.TargetPerWeek,
		h.CurrentStreak, h.BestStreak, h.TotalCompletions, h.Archived,
		h.CreatedAt.UTC().Format(time.RFC3339),
	)
	return err
}

// GetHabit returns a habit by ID, or ErrNotFound.
func (db *DB) GetHabit(id string) (*models.Habit, error) {
	row := db.conn.QueryRow(
		`SELECT id, name, category, difficulty, target_per_week, current_streak,
		        best_streak, total_completions, archived, created_at
		 FROM habits WHERE id = ?`, id)
	return scanHabit(row)
}

// FindHabitByName returns the first non-archived habit whose name matches
// exactly, or ErrNotFound. Names are the CLI's habit handle.
func (db *DB) FindHabitByName(name string) (*models.Habit, error) {
	row := db.conn.QueryRow(
		`SELECT id, name, category, difficulty, target_per_week, current_streak,
		        best_streak, total_completions, archived, created_at
		 FROM habits WHERE name = ? AND archived = false
		 ORDER BY created_at LIMIT 1`, name)
	return scanHabit(row)
}

// ListHabits returns all habits ordered by creation time. Archived habits
// are included only when requested.
func (db *DB) ListHabits(includeArchived bool) ([]models.Habit, error) {
	query := `SELECT id, name, category, difficulty, target_per_week, current_streak,
	                 best_streak, total_completions, archived, created_at
	          FROM habits`
	if !includeArchived {
		query += " WHERE archived = false"
	}
	query += " ORDER BY created_at"

	rows, err := db.conn.Query(query)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var habits []models.Habit
	for rows.Next() {
		h, err := scanHabitRow(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, *h)
	}
	return habits, rows.Err()
}

// SetHabitArchived flips the archived flag.
func (db *DB) SetHabitArchived(id string, archived bool) error {
	res, err := db.conn.Exec("UPDATE habits SET archived = ? WHERE id = ?", archived, id)
	if err != nil {
		return err
	}
	return requireRow(res, id)
}

// DeleteHabit removes a habit and, via the foreign key cascade, all of its
// completions.
func (db *DB) DeleteHabit(id string) error {
	res, err := db.conn.Exec("DELETE FROM habits WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireRow(res, id)
}

// UpdateHabitCounters writes the recomputed streak and completion counters
// back to the habit row, keeping the stored cache reconciled with the
// analytics engine's output.
func (db *DB) UpdateHabitCounters(id string, current, best, total int) error {
	res, err := db.conn.Exec(
		`UPDATE habits
		 SET current_streak = ?, best_streak = ?, total_completions = ?
		 WHERE id = ?`,
		current, best, total, id,
	)
	if err != nil {
		return err
	}
	return requireRow(res, id)
}

func requireRow(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("habit %s: %w", id, ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHabit(row *sql.Row) (*models.Habit, error) {
	return scanHabitRow(row)
}

func scanHabitRow(row rowScanner) (*models.Habit, error) {
	var h models.Habit
	var difficulty, createdAt string
	err := row.Scan(&h.ID, &h.Name, &h.Category, &difficulty, &h.TargetPerWeek,
		&h.CurrentStreak, &h.BestStreak, &h.TotalCompletions, &h.Archived, &createdAt)
	if err != nil {
		return nil, err
	}
	h.Difficulty = models.Difficulty(difficulty)
	h.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &h, nil
}

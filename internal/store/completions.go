package store

import (
	"database/sql"
	"time"

	"github.com/fernhill-labs/dayline/internal/models"
)

// UpsertCompletion inserts a completion or, if one already exists for the
// same (habit, day), replaces its contextual fields. Keyed on the UNIQUE
// index, so a racing double-insert cannot produce duplicate rows.
func (db *DB) UpsertCompletion(c *models.Completion) error {
	_, err := db.conn.Exec(
		`INSERT INTO completions
		(id, habit_id, day, completed_at, quantity, mood_before, mood_after,
		 energy_before, energy_after, satisfaction, interruptions, location, weather, note)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(habit_id, day) DO UPDATE SET
			completed_at  = excluded.completed_at,
			quantity      = excluded.quantity,
			mood_before   = excluded.mood_before,
			mood_after    = excluded.mood_after,
			energy_before = excluded.energy_before,
			energy_after  = excluded.energy_after,
			satisfaction  = excluded.satisfaction,
			interruptions = excluded.interruptions,
			location      = excluded.location,
			weather       = excluded.weather,
			note          = excluded.note`,
		c.ID, c.HabitID, c.Day, c.CompletedAt.UTC().Format(time.RFC3339),
		c.Quantity, c.MoodBefore, c.MoodAfter, c.EnergyBefore, c.EnergyAfter,
		c.Satisfaction, c.Interruptions, nullString(c.Location),
		nullString(c.Weather), nullString(c.Note),
	)
	return err
}

// DeleteCompletion removes the completion for (habit, day) if one exists,
// reporting whether a row was deleted. Deleting an absent completion is not
// an error; the operation is idempotent.
func (db *DB) DeleteCompletion(habitID, day string) (bool, error) {
	res, err := db.conn.Exec(
		"DELETE FROM completions WHERE habit_id = ? AND day = ?", habitID, day)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// GetCompletion returns the completion for (habit, day), or nil if none.
func (db *DB) GetCompletion(habitID, day string) (*models.Completion, error) {
	row := db.conn.QueryRow(completionSelect+" WHERE habit_id = ? AND day = ?", habitID, day)
	c, err := scanCompletion(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ListCompletions returns all completions for a habit ordered by day.
func (db *DB) ListCompletions(habitID string) ([]models.Completion, error) {
	rows, err := db.conn.Query(completionSelect+" WHERE habit_id = ? ORDER BY day", habitID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var completions []models.Completion
	for rows.Next() {
		c, err := scanCompletion(rows)
		if err != nil {
			return nil, err
		}
		completions = append(completions, *c)
	}
	return completions, rows.Err()
}

const completionSelect = `SELECT id, habit_id, day, completed_at, quantity,
	mood_before, mood_after, energy_before, energy_after, satisfaction,
	interruptions, location, weather, note
	FROM completions`

func scanCompletion(row rowScanner) (*models.Completion, error) {
	var c models.Completion
	var completedAt string
	var location, weather, note sql.NullString
	err := row.Scan(&c.ID, &c.HabitID, &c.Day, &completedAt, &c.Quantity,
		&c.MoodBefore, &c.MoodAfter, &c.EnergyBefore, &c.EnergyAfter,
		&c.Satisfaction, &c.Interruptions, &location, &weather, &note)
	if err != nil {
		return nil, err
	}
	c.CompletedAt, _ = time.Parse(time.RFC3339, completedAt)
	c.Location = location.String
	c.Weather = weather.String
	c.Note = note.String
	return &c, nil
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

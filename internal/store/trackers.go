package store

import (
	"database/sql"
	"strings"
	"time"

	"github.com/fernhill-labs/dayline/internal/models"
)

// CreateTodo inserts a new todo.
func (db *DB) CreateTodo(t *models.Todo) error {
	_, err := db.conn.Exec(
		"INSERT INTO todos (id, title, priority, due, done, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		t.ID, t.Title, t.Priority, nullString(t.Due), t.Done,
		t.CreatedAt.UTC().Format(time.RFC3339),
	)
	return err
}

// ListTodos returns todos ordered by priority then creation time. Completed
// todos are included only when requested.
func (db *DB) ListTodos(includeDone bool) ([]models.Todo, error) {
	query := "SELECT id, title, priority, due, done, created_at FROM todos"
	if !includeDone {
		query += " WHERE done = false"
	}
	query += " ORDER BY priority, created_at"

	rows, err := db.conn.Query(query)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var todos []models.Todo
	for rows.Next() {
		var t models.Todo
		var due sql.NullString
		var createdAt string
		if err := rows.Scan(&t.ID, &t.Title, &t.Priority, &due, &t.Done, &createdAt); err != nil {
			return nil, err
		}
		t.Due = due.String
		t.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		todos = append(todos, t)
	}
	return todos, rows.Err()
}

// SetTodoDone marks a todo complete or reopens it.
func (db *DB) SetTodoDone(id string, done bool) error {
	res, err := db.conn.Exec("UPDATE todos SET done = ? WHERE id = ?", done, id)
	if err != nil {
		return err
	}
	return requireRow(res, id)
}

// DeleteTodo removes a todo.
func (db *DB) DeleteTodo(id string) error {
	res, err := db.conn.Exec("DELETE FROM todos WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireRow(res, id)
}

// CreateMood inserts a mood entry.
func (db *DB) CreateMood(m *models.MoodEntry) error {
	_, err := db.conn.Exec(
		"INSERT INTO moods (id, logged_at, rating, note) VALUES (?, ?, ?, ?)",
		m.ID, m.LoggedAt.UTC().Format(time.RFC3339), m.Rating, nullString(m.Note),
	)
	return err
}

// ListMoodsSince returns mood entries logged at or after the cutoff, oldest
// first.
func (db *DB) ListMoodsSince(cutoff time.Time) ([]models.MoodEntry, error) {
	rows, err := db.conn.Query(
		"SELECT id, logged_at, rating, note FROM moods WHERE logged_at >= ? ORDER BY logged_at",
		cutoff.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var moods []models.MoodEntry
	for rows.Next() {
		var m models.MoodEntry
		var loggedAt string
		var note sql.NullString
		if err := rows.Scan(&m.ID, &loggedAt, &m.Rating, &note); err != nil {
			return nil, err
		}
		m.LoggedAt, _ = time.Parse(time.RFC3339, loggedAt)
		m.Note = note.String
		moods = append(moods, m)
	}
	return moods, rows.Err()
}

// CreateNote inserts a note.
func (db *DB) CreateNote(n *models.Note) error {
	_, err := db.conn.Exec(
		"INSERT INTO notes (id, title, body, created_at) VALUES (?, ?, ?, ?)",
		n.ID, n.Title, n.Body, n.CreatedAt.UTC().Format(time.RFC3339),
	)
	return err
}

// SearchNotes returns notes whose title or body contains the query,
// case-insensitively, newest first. An empty query returns all notes.
func (db *DB) SearchNotes(query string) ([]models.Note, error) {
	rows, err := db.conn.Query(
		`SELECT id, title, body, created_at FROM notes
		 WHERE title LIKE ? OR body LIKE ?
		 ORDER BY created_at DESC`,
		"%"+strings.ToLower(query)+"%", "%"+strings.ToLower(query)+"%",
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var notes []models.Note
	for rows.Next() {
		var n models.Note
		var createdAt string
		if err := rows.Scan(&n.ID, &n.Title, &n.Body, &createdAt); err != nil {
			return nil, err
		}
		n.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

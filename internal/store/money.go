package store

import (
	"database/sql"
	"time"

	"github.com/fernhill-labs/dayline/internal/models"
)

// CreateSubscription inserts a subscription.
func (db *DB) CreateSubscription(s *models.Subscription) error {
	_, err := db.conn.Exec(
		"INSERT INTO subscriptions (id, name, amount, cadence, created_at) VALUES (?, ?, ?, ?, ?)",
		s.ID, s.Name, s.Amount, string(s.Cadence), s.CreatedAt.UTC().Format(time.RFC3339),
	)
	return err
}

// ListSubscriptions returns all subscriptions ordered by name.
func (db *DB) ListSubscriptions() ([]models.Subscription, error) {
	rows, err := db.conn.Query(
		"SELECT id, name, amount, cadence, created_at FROM subscriptions ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var subs []models.Subscription
	for rows.Next() {
		var s models.Subscription
		var cadence, createdAt string
		if err := rows.Scan(&s.ID, &s.Name, &s.Amount, &cadence, &createdAt); err != nil {
			return nil, err
		}
		s.Cadence = models.Cadence(cadence)
		s.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		subs = append(subs, s)
	}
	return subs, rows.Err()
}

// DeleteSubscription removes a subscription.
func (db *DB) DeleteSubscription(id string) error {
	res, err := db.conn.Exec("DELETE FROM subscriptions WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireRow(res, id)
}

// CreateTransaction inserts a spending record.
func (db *DB) CreateTransaction(t *models.Transaction) error {
	_, err := db.conn.Exec(
		`INSERT INTO transactions (id, occurred_at, amount, category, merchant, note)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		t.ID, t.OccurredAt.UTC().Format(time.RFC3339), t.Amount, t.Category,
		nullString(t.Merchant), nullString(t.Note),
	)
	return err
}

// ListTransactionsBetween returns transactions in [from, to), oldest first.
func (db *DB) ListTransactionsBetween(from, to time.Time) ([]models.Transaction, error) {
	rows, err := db.conn.Query(
		`SELECT id, occurred_at, amount, category, merchant, note
		 FROM transactions WHERE occurred_at >= ? AND occurred_at < ?
		 ORDER BY occurred_at`,
		from.UTC().Format(time.RFC3339), to.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var txns []models.Transaction
	for rows.Next() {
		var t models.Transaction
		var occurredAt string
		var merchant, note sql.NullString
		if err := rows.Scan(&t.ID, &occurredAt, &t.Amount, &t.Category, &merchant, &note); err != nil {
			return nil, err
		}
		t.OccurredAt, _ = time.Parse(time.RFC3339, occurredAt)
		t.Merchant = merchant.String
		t.Note = note.String
		txns = append(txns, t)
	}
	return txns, rows.Err()
}

// CreateMeal inserts a meal log entry.
func (db *DB) CreateMeal(m *models.Meal) error {
	_, err := db.conn.Exec(
		"INSERT INTO meals (id, day, name, calories, protein, logged_at) VALUES (?, ?, ?, ?, ?, ?)",
		m.ID, m.Day, m.Name, m.Calories, m.Protein, m.LoggedAt.UTC().Format(time.RFC3339),
	)
	return err
}

// ListMealsForDay returns the meals logged for one calendar day.
func (db *DB) ListMealsForDay(day string) ([]models.Meal, error) {
	rows, err := db.conn.Query(
		"SELECT id, day, name, calories, protein, logged_at FROM meals WHERE day = ? ORDER BY logged_at",
		day,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var meals []models.Meal
	for rows.Next() {
		var m models.Meal
		var loggedAt string
		if err := rows.Scan(&m.ID, &m.Day, &m.Name, &m.Calories, &m.Protein, &loggedAt); err != nil {
			return nil, err
		}
		m.LoggedAt, _ = time.Parse(time.RFC3339, loggedAt)
		meals = append(meals, m)
	}
	return meals, rows.Err()
}

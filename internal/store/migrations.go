package store

import "fmt"

// currentSchemaVersion is the latest schema version.
const currentSchemaVersion = 1

// Migrate runs forward migrations to bring the database schema up to date.
func (db *DB) Migrate() error {
	if _, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	version := 0
	row := db.conn.QueryRow("SELECT version FROM schema_version LIMIT 1")
	if err := row.Scan(&version); err != nil {
		// No rows means a fresh database.
		version = 0
	}

	if version < 1 {
		if err := db.migrateV1(); err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
	}

	return nil
}

// migrateV1 creates all initial tables and indexes.
func (db *DB) migrateV1() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS habits (
			id                TEXT PRIMARY KEY,
			name              TEXT NOT NULL,
			category          TEXT NOT NULL DEFAULT '',
			difficulty        TEXT NOT NULL,
			target_per_week   INTEGER NOT NULL,
			current_streak    INTEGER NOT NULL DEFAULT 0,
			best_streak       INTEGER NOT NULL DEFAULT 0,
			total_completions INTEGER NOT NULL DEFAULT 0,
			archived          BOOLEAN NOT NULL DEFAULT false,
			created_at        TEXT NOT NULL
		)`,

		// The UNIQUE constraint makes one-completion-per-day a storage
		// guarantee rather than a find-before-insert convention.
		`CREATE TABLE IF NOT EXISTS completions (
			id            TEXT PRIMARY KEY,
			habit_id      TEXT NOT NULL REFERENCES habits(id) ON DELETE CASCADE,
			day           TEXT NOT NULL,
			completed_at  TEXT NOT NULL,
			quantity      INTEGER NOT NULL DEFAULT 1,
			mood_before   INTEGER,
			mood_after    INTEGER,
			energy_before INTEGER,
			energy_after  INTEGER,
			satisfaction  INTEGER,
			interruptions INTEGER NOT NULL DEFAULT 0,
			location      TEXT,
			weather       TEXT,
			note          TEXT,
			UNIQUE(habit_id, day)
		)`,

		`CREATE TABLE IF NOT EXISTS todos (
			id         TEXT PRIMARY KEY,
			title      TEXT NOT NULL,
			priority   INTEGER NOT NULL DEFAULT 3,
			due        TEXT,
			done       BOOLEAN NOT NULL DEFAULT false,
			created_at TEXT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS moods (
			id        TEXT PRIMARY KEY,
			logged_at TEXT NOT NULL,
			rating    INTEGER NOT NULL,
			note      TEXT
		)`,

		`CREATE TABLE IF NOT EXISTS notes (
			id         TEXT PRIMARY KEY,
			title      TEXT NOT NULL,
			body       TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS subscriptions (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL,
			amount     REAL NOT NULL,
			cadence    TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS transactions (
			id          TEXT PRIMARY KEY,
			occurred_at TEXT NOT NULL,
			amount      REAL NOT NULL,
			category    TEXT NOT NULL,
			merchant    TEXT,
			note        TEXT
		)`,

		`CREATE TABLE IF NOT EXISTS meals (
			id        TEXT PRIMARY KEY,
			day       TEXT NOT NULL,
			name      TEXT NOT NULL,
			calories  INTEGER NOT NULL DEFAULT 0,
			protein   INTEGER NOT NULL DEFAULT 0,
			logged_at TEXT NOT NULL
		)`,

		// Indexes.
		`CREATE INDEX IF NOT EXISTS idx_completions_habit ON completions(habit_id)`,
		`CREATE INDEX IF NOT EXISTS idx_completions_day ON completions(day)`,
		`CREATE INDEX IF NOT EXISTS idx_todos_done ON todos(done)`,
		`CREATE INDEX IF NOT EXISTS idx_moods_logged ON moods(logged_at)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_occurred ON transactions(occurred_at)`,
		`CREATE INDEX IF NOT EXISTS idx_meals_day ON meals(day)`,
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("executing %q: %w", stmt[:40], err)
		}
	}

	if _, err := tx.Exec("DELETE FROM schema_version"); err != nil {
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", currentSchemaVersion); err != nil {
		return err
	}

	return tx.Commit()
}

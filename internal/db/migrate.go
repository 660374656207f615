package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. The statement list is idempotent and
// re-run in full on every startup; a failure here is surfaced as a blocking
// error before any repository is wired.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	// Timestamps are stored as epoch seconds, matching the original
	// on-device schema. AUTOINCREMENT keeps rowids monotonic so a
	// deleted id is never handed out again.
	`CREATE TABLE IF NOT EXISTS todos (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		title       TEXT NOT NULL CHECK(length(title) > 0),
		description TEXT NOT NULL CHECK(length(description) > 0),
		created_at  INTEGER NOT NULL,
		updated_at  INTEGER NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_todos_created ON todos(created_at)`,
}

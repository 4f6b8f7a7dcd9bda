package sqlite

import (
	"context"
	"database/sql"
)

// runMigrations creates the schema if it does not exist yet.
func runMigrations(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS todos (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			content TEXT NOT NULL DEFAULT '',
			done INTEGER NOT NULL DEFAULT 0,
			created_at INTEGER NOT NULL,
			updated_at INTEGER NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	// Search results are ordered by recency.
	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_todos_updated_at
		ON todos(updated_at DESC)
	`)
	return err
}

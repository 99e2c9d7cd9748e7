package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema. All application state lives in a single
// key/value table: each collection is stored as one JSON document under its
// own key, rewritten as a whole on every mutation.
const schema = `
CREATE TABLE IF NOT EXISTS kv (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// EnsureSchema creates all tables if they don't already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

package db

import (
	"database/sql"
	"fmt"
)

const Schema = `
CREATE TABLE IF NOT EXISTS client_storage (
    key VARCHAR(64) PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// InitSchema creates the key/value table used for persisted console state
func InitSchema(db *sql.DB) error {
	if _, err := db.Exec(Schema); err != nil {
		return fmt.Errorf("error creating schema: %w", err)
	}
	return nil
}

package database

import (
	"context"
	"fmt"
)

// Tables are created on startup; there is no migration tooling. Every
// statement is idempotent so repeated boots are safe.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS contributors (
		id              SERIAL PRIMARY KEY,
		name            TEXT NOT NULL,
		country         TEXT NOT NULL,
		series_id       TEXT,
		mosaic_url      TEXT,
		screenshot_url  TEXT,
		created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_contributors_series_id ON contributors (series_id)`,
	`CREATE TABLE IF NOT EXISTS stories (
		id          TEXT PRIMARY KEY,
		title       TEXT NOT NULL,
		name        TEXT NOT NULL,
		occupation  TEXT NOT NULL,
		story       TEXT NOT NULL,
		image_url   TEXT NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS tile_gradients (
		id          SERIAL PRIMARY KEY,
		from_color  TEXT NOT NULL,
		to_color    TEXT NOT NULL,
		border      TEXT NOT NULL,
		glow        TEXT NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// EnsureSchema creates the entity tables if they do not exist yet.
func (db *PostgresDB) EnsureSchema(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	for _, stmt := range schemaStatements {
		if _, err := db.Pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}

	return nil
}

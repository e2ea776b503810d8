package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent; ALTER TABLE
// duplicate-column errors from re-runs are tolerated.
func Migrate(database *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := database.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	// The single in-progress assessment. One row at most; the snapshot column
	// is the JSON-encoded aggregate, written on every mutation.
	`CREATE TABLE IF NOT EXISTS in_progress (
		id         INTEGER PRIMARY KEY CHECK(id = 1),
		snapshot   TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	// Completed assessments. Scores, ratings, comments and statement counts
	// are stored as JSON blobs; records are immutable after insert.
	`CREATE TABLE IF NOT EXISTS assessments (
		id               TEXT PRIMARY KEY,
		type             TEXT NOT NULL CHECK(type IN ('profile','culture')),
		profile_id       TEXT NOT NULL DEFAULT '',
		level_id         TEXT NOT NULL DEFAULT '',
		scheme           TEXT NOT NULL CHECK(scheme IN ('numeric','categorical')),
		date             TEXT NOT NULL,
		total_score      REAL,
		dimensions       TEXT NOT NULL,
		scores           TEXT NOT NULL,
		statement_counts TEXT NOT NULL,
		ratings          TEXT NOT NULL,
		comments         TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_assessments_date ON assessments(date)`,

	// Evidence journal entries, keyed by the statement they belong to.
	// Independent lifecycle from assessments.
	`CREATE TABLE IF NOT EXISTS evidence (
		id              TEXT PRIMARY KEY,
		profile_id      TEXT NOT NULL,
		level_id        TEXT NOT NULL,
		dimension_id    TEXT NOT NULL,
		statement_index INTEGER NOT NULL,
		date            TEXT NOT NULL,
		text            TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_evidence_statement
		ON evidence(profile_id, level_id, dimension_id, statement_index)`,

	// Small key/value settings store (last selected profile and level).
	`CREATE TABLE IF NOT EXISTS settings (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,
}

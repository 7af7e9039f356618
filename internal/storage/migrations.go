package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/mhollis/sift/internal/common"
)

// expectedSchemaVersion is the latest schema version the application
// expects. Failing to reach it is fatal for the store.
const expectedSchemaVersion = 1

// migration represents a database schema migration.
type migration struct {
	up          func(*sql.Tx) error
	description string
	version     int
}

var migrations = []migration{
	{
		version:     1,
		description: "Initial snapshot schema",
		up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS transactions (
					position INTEGER PRIMARY KEY,
					id TEXT UNIQUE NOT NULL,
					hash TEXT NOT NULL,
					account_number TEXT,
					effective_date TEXT,
					transaction_date TEXT NOT NULL,
					description TEXT,
					transaction_code TEXT,
					particulars TEXT,
					code TEXT,
					reference TEXT,
					other_party_name TEXT,
					other_party_account_number TEXT,
					other_party_particulars TEXT,
					other_party_code TEXT,
					other_party_reference TEXT,
					amount REAL NOT NULL,
					balance REAL
				)`,
				`CREATE INDEX idx_transactions_date ON transactions(transaction_date)`,
				`CREATE INDEX idx_transactions_hash ON transactions(hash)`,

				`CREATE TABLE IF NOT EXISTS assignments (
					transaction_id TEXT PRIMARY KEY,
					category TEXT NOT NULL,
					FOREIGN KEY (transaction_id) REFERENCES transactions(id)
				)`,

				`CREATE TABLE IF NOT EXISTS excluded (
					transaction_id TEXT PRIMARY KEY,
					FOREIGN KEY (transaction_id) REFERENCES transactions(id)
				)`,

				`CREATE TABLE IF NOT EXISTS excluded_batch (
					position INTEGER PRIMARY KEY,
					transaction_id TEXT NOT NULL
				)`,

				`CREATE TABLE IF NOT EXISTS custom_categories (
					position INTEGER PRIMARY KEY,
					id TEXT UNIQUE NOT NULL,
					label TEXT NOT NULL,
					kind TEXT NOT NULL,
					color TEXT NOT NULL
				)`,

				`CREATE TABLE IF NOT EXISTS meta (
					key TEXT PRIMARY KEY,
					value TEXT NOT NULL
				)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
}

func (s *Store) migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_versions (
			version INTEGER PRIMARY KEY,
			description TEXT,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`); err != nil {
		return fmt.Errorf("failed to create schema_versions table: %w", err)
	}

	var current int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(version), 0) FROM schema_versions`).Scan(&current); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}

		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin migration %d: %w", m.version, err)
		}

		if err := m.up(tx); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d (%s) failed: %w", m.version, m.description, err)
		}

		if _, err := tx.Exec(
			`INSERT INTO schema_versions (version, description) VALUES (?, ?)`,
			m.version, m.description); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", m.version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", m.version, err)
		}

		slog.Debug("applied migration", "version", m.version, "description", m.description)
	}

	var final int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(version), 0) FROM schema_versions`).Scan(&final); err != nil {
		return fmt.Errorf("failed to verify schema version: %w", err)
	}
	if final != expectedSchemaVersion {
		return fmt.Errorf("%w: schema version %d, want %d",
			common.ErrDatabaseCorrupted, final, expectedSchemaVersion)
	}

	return nil
}

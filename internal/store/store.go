// Package store handles SQLite persistence of the generation history.
package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/verte-zerg/passgen/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// HistoryLimit is the number of entries kept after each insert.
const HistoryLimit = 3

// timeLayout is fixed width so timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store wraps SQLite access for history entries.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS history (
			id INTEGER PRIMARY KEY,
			masked TEXT NOT NULL,
			score INTEGER NOT NULL,
			label TEXT NOT NULL,
			entropy_bits INTEGER NOT NULL,
			mode TEXT NOT NULL,
			length INTEGER NOT NULL,
			generated_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_history_generated_at ON history(generated_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// AddEntry stores an entry and drops everything beyond HistoryLimit.
func (s *Store) AddEntry(ctx context.Context, entry model.HistoryEntry) (id int64, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO history (masked, score, label, entropy_bits, mode, length, generated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.Masked,
		entry.Score,
		entry.Label.Key(),
		entry.EntropyBits,
		entry.Mode.String(),
		entry.Length,
		entry.GeneratedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, err
	}
	id, err = res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if _, err = tx.ExecContext(ctx,
		`DELETE FROM history WHERE id NOT IN (
			SELECT id FROM history ORDER BY generated_at DESC, id DESC LIMIT ?
		)`, HistoryLimit); err != nil {
		return 0, err
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// ListEntries returns the stored entries, newest first.
func (s *Store) ListEntries(ctx context.Context) ([]model.HistoryEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, masked, score, label, entropy_bits, mode, length, generated_at
		 FROM history
		 ORDER BY generated_at DESC, id DESC
		 LIMIT ?`, HistoryLimit)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var entries []model.HistoryEntry
	for rows.Next() {
		var (
			entry       model.HistoryEntry
			label       string
			mode        string
			generatedAt string
		)
		if err := rows.Scan(&entry.ID, &entry.Masked, &entry.Score, &label, &entry.EntropyBits, &mode, &entry.Length, &generatedAt); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(timeLayout, generatedAt)
		if err != nil {
			return nil, err
		}
		entry.GeneratedAt = parsed
		entry.Label = model.ParseLabelKey(label)
		if entry.Mode, err = model.ParseMode(mode); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// Clear removes every history entry.
func (s *Store) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM history`)
	return err
}

// Copyright © 2026 Neoview contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: project/store.go
// Summary: SQLite-backed store of recently opened files and directories.
// Usage: Touch on open, Recent for the picker, Prune to cap the table.
// Notes: The store is best effort; a broken database must never keep the
//        editor from starting.

package project

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS recent (
    path        TEXT PRIMARY KEY,
    last_opened INTEGER NOT NULL,
    open_count  INTEGER NOT NULL DEFAULT 1
);

CREATE INDEX IF NOT EXISTS recent_last_opened ON recent(last_opened DESC);
`

// Entry is one remembered path.
type Entry struct {
	Path       string
	LastOpened time.Time
	OpenCount  int
}

// Store keeps the recent-session history.
type Store struct {
	db *sql.DB
}

// DefaultPath returns the database location under the user config directory.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "neoview", "sessions.db"), nil
}

// Open opens or creates the store at dbPath.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	dsn := dbPath +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Touch records an open of path, creating or bumping its entry. Relative
// paths are stored absolute so the same file always maps to one row.
func (s *Store) Touch(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	_, err = s.db.Exec(`
INSERT INTO recent (path, last_opened, open_count) VALUES (?, ?, 1)
ON CONFLICT(path) DO UPDATE SET
    last_opened = excluded.last_opened,
    open_count  = open_count + 1`,
		abs, time.Now().Unix())
	return err
}

// Recent returns up to limit entries, most recently opened first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := s.db.Query(`
SELECT path, last_opened, open_count FROM recent
ORDER BY last_opened DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var ts int64
		if err := rows.Scan(&e.Path, &ts, &e.OpenCount); err != nil {
			return nil, err
		}
		e.LastOpened = time.Unix(ts, 0)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Prune drops everything beyond the keep most recent entries.
func (s *Store) Prune(keep int) error {
	if keep < 0 {
		keep = 0
	}
	_, err := s.db.Exec(`
DELETE FROM recent WHERE path NOT IN (
    SELECT path FROM recent ORDER BY last_opened DESC LIMIT ?)`, keep)
	return err
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Copyright 2025 Draftforge Users
// SPDX-License-Identifier: Apache-2.0

// Package history persists completed matches in a local SQLite database.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// timeLayout is fixed-width so created_at sorts chronologically as text.
const timeLayout = "2006-01-02 15:04:05.000000000"

// Match is one persisted game record.
type Match struct {
	ID           string    `json:"id"`
	Deck         string    `json:"deck"`
	Opponent     string    `json:"opponent"`
	Winner       int       `json:"winner"`
	DurationMS   int64     `json:"duration_ms"`
	ForgeVersion string    `json:"forge_version,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Query filters a history listing. Empty fields match everything; Deck and
// Opponent match as substrings.
type Query struct {
	Deck     string
	Opponent string
	Limit    int
}

// DefaultLimit caps listings when the caller doesn't ask for a count.
const DefaultLimit = 20

// Store wraps the SQLite database holding match history.
type Store struct {
	db *sql.DB
}

// Open creates or opens the history database at path, creating parent
// directories and running migrations as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create history dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	// WAL keeps concurrent CLI invocations from tripping over each other.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS matches (
			id TEXT PRIMARY KEY,
			deck TEXT NOT NULL,
			opponent TEXT NOT NULL,
			winner INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL,
			forge_version TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_matches_created_at ON matches(created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_matches_deck ON matches(deck)`,
	}
	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

// SaveMatch inserts a match record, assigning an ID and timestamp when the
// caller left them empty.
func (s *Store) SaveMatch(m *Match) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.Exec(
		`INSERT INTO matches (id, deck, opponent, winner, duration_ms, forge_version, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.Deck, m.Opponent, m.Winner, m.DurationMS, m.ForgeVersion,
		m.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("save match: %w", err)
	}
	return nil
}

// Recent returns the newest matches, most recent first.
func (s *Store) Recent(limit int) ([]Match, error) {
	return s.List(Query{Limit: limit})
}

// List returns matches satisfying the query, most recent first.
func (s *Store) List(q Query) ([]Match, error) {
	where := ""
	args := []any{}
	if q.Deck != "" {
		where += " AND deck LIKE '%' || ? || '%'"
		args = append(args, q.Deck)
	}
	if q.Opponent != "" {
		where += " AND opponent LIKE '%' || ? || '%'"
		args = append(args, q.Opponent)
	}

	limit := q.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	args = append(args, limit)

	rows, err := s.db.Query(
		`SELECT id, deck, opponent, winner, duration_ms, forge_version, created_at
		 FROM matches WHERE 1=1`+where+`
		 ORDER BY created_at DESC
		 LIMIT ?`, args...)
	if err != nil {
		return nil, fmt.Errorf("query matches: %w", err)
	}
	defer rows.Close()

	var matches []Match
	for rows.Next() {
		var m Match
		var createdAt string
		if err := rows.Scan(&m.ID, &m.Deck, &m.Opponent, &m.Winner, &m.DurationMS, &m.ForgeVersion, &createdAt); err != nil {
			return nil, fmt.Errorf("scan match: %w", err)
		}
		if t, err := time.Parse(timeLayout, createdAt); err == nil {
			m.CreatedAt = t
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate matches: %w", err)
	}
	return matches, nil
}

// Count reports how many matches are stored in total.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM matches").Scan(&n); err != nil {
		return 0, fmt.Errorf("count matches: %w", err)
	}
	return n, nil
}

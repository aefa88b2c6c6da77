// Package history keeps a local journal of acquisition requests and their
// outcomes. It is write-once observability: the core never reads it back to
// influence resolution.
package history

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS requests (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	requested_at TEXT NOT NULL,
	operation    TEXT NOT NULL,
	catalog      TEXT NOT NULL,
	query        TEXT NOT NULL,
	outcome      TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_requests_requested_at ON requests(requested_at);
`

// Entry is one journaled request.
type Entry struct {
	ID          int64     `json:"id"`
	RequestedAt time.Time `json:"requestedAt"`
	Operation   string    `json:"operation"` // "add", "status", "search"
	Catalog     string    `json:"catalog"`
	Query       string    `json:"query"`   // external id or title as supplied
	Outcome     string    `json:"outcome"` // "created", "already_present", "not_found", "error: ..."
}

// Store provides access to the request journal.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the journal database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create history schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record appends one entry. RequestedAt defaults to now when zero.
func (s *Store) Record(e Entry) error {
	at := e.RequestedAt
	if at.IsZero() {
		at = time.Now().UTC()
	}
	_, err := s.db.Exec(
		`INSERT INTO requests (requested_at, operation, catalog, query, outcome) VALUES (?, ?, ?, ?, ?)`,
		at.Format(time.RFC3339), e.Operation, e.Catalog, e.Query, e.Outcome,
	)
	if err != nil {
		return fmt.Errorf("record request: %w", err)
	}
	return nil
}

// List returns the most recent entries, newest first.
func (s *Store) List(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(
		`SELECT id, requested_at, operation, catalog, query, outcome
		 FROM requests ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var at string
		if err := rows.Scan(&e.ID, &at, &e.Operation, &e.Catalog, &e.Query, &e.Outcome); err != nil {
			return nil, fmt.Errorf("scan request: %w", err)
		}
		if t, perr := time.Parse(time.RFC3339, at); perr == nil {
			e.RequestedAt = t
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

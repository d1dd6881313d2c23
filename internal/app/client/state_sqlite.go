package client

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// StateStore keeps client session state on disk so a login survives across
// CLI invocations. Only the bearer token and account email are stored; item
// secrets never touch the local database.
type StateStore struct {
	db *sql.DB
}

func NewStateStore(path string) (*StateStore, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open state database: %w", err)
	}

	store := &StateStore{db: db}
	if err := store.initTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init state tables: %w", err)
	}

	return store, nil
}

func (s *StateStore) initTables() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS session (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			email TEXT NOT NULL,
			token TEXT NOT NULL,
			saved_at DATETIME NOT NULL
		);
	`)
	return err
}

// SaveSession replaces the stored session with a fresh one.
func (s *StateStore) SaveSession(email, token string) error {
	_, err := s.db.Exec(`
		INSERT INTO session (id, email, token, saved_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET email = excluded.email,
			token = excluded.token, saved_at = excluded.saved_at
	`, email, token, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Session returns the stored email and token, or empty strings when no
// session has been saved.
func (s *StateStore) Session() (email, token string, err error) {
	err = s.db.QueryRow("SELECT email, token FROM session WHERE id = 1").
		Scan(&email, &token)
	if err == sql.ErrNoRows {
		return "", "", nil
	}
	if err != nil {
		return "", "", fmt.Errorf("load session: %w", err)
	}
	return email, token, nil
}

// ClearSession drops the stored session.
func (s *StateStore) ClearSession() error {
	if _, err := s.db.Exec("DELETE FROM session WHERE id = 1"); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (s *StateStore) Close() error {
	return s.db.Close()
}

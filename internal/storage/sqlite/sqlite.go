package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"ramblinrecs/internal/lib/logger/sl"

	_ "github.com/mattn/go-sqlite3"
)

// Storage is the client-side state store. It plays the role browser local
// storage played for the web client: a handful of keys (user id, user email,
// saved-event id list) in a single key-value table.
type Storage struct {
	DB  *sql.DB
	log *slog.Logger
}

const (
	KeyUserID      = "user_id"
	KeyUserEmail   = "user_email"
	KeySavedEvents = "saved_events"
)

const schema = `
CREATE TABLE IF NOT EXISTS local_state (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

func InitDB(path string, log *slog.Logger) (*Storage, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create storage dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	if _, err = db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to init schema: %w", err)
	}

	return &Storage{DB: db, log: log}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

// Get returns the stored value for key, or "" when the key is absent.
func (s *Storage) Get(key string) (string, error) {
	var value string

	err := s.DB.QueryRow(`SELECT value FROM local_state WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get %s: %w", key, err)
	}

	return value, nil
}

func (s *Storage) Set(key, value string) error {
	query := `
		INSERT INTO local_state (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = CURRENT_TIMESTAMP`

	if _, err := s.DB.Exec(query, key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	return nil
}

func (s *Storage) Remove(key string) error {
	if _, err := s.DB.Exec(`DELETE FROM local_state WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to remove %s: %w", key, err)
	}

	return nil
}

func (s *Storage) UserID() (string, error) {
	return s.Get(KeyUserID)
}

func (s *Storage) SetUserID(id string) error {
	return s.Set(KeyUserID, id)
}

func (s *Storage) UserEmail() (string, error) {
	return s.Get(KeyUserEmail)
}

func (s *Storage) SetUserEmail(email string) error {
	return s.Set(KeyUserEmail, email)
}

// SavedEventIDs returns the saved-event id set. A missing or malformed value
// degrades to the empty set, a corrupt list should never take the views down.
func (s *Storage) SavedEventIDs() ([]string, error) {
	value, err := s.Get(KeySavedEvents)
	if err != nil {
		return nil, err
	}
	if value == "" {
		return []string{}, nil
	}

	return s.decodeIDs(value), nil
}

func (s *Storage) decodeIDs(value string) []string {
	var ids []string
	if err := json.Unmarshal([]byte(value), &ids); err != nil {
		s.log.Warn("malformed saved_events value, resetting to empty", sl.Err(err))
		return []string{}
	}

	return ids
}

// SaveEvent adds id to the saved set. Saving an already-saved id is a no-op.
func (s *Storage) SaveEvent(id string) error {
	return s.updateSaved(func(ids []string) []string {
		for _, existing := range ids {
			if existing == id {
				return ids
			}
		}
		return append(ids, id)
	})
}

// UnsaveEvent removes id from the saved set. Removing an absent id is a no-op.
func (s *Storage) UnsaveEvent(id string) error {
	return s.updateSaved(func(ids []string) []string {
		out := ids[:0]
		for _, existing := range ids {
			if existing != id {
				out = append(out, existing)
			}
		}
		return out
	})
}

func (s *Storage) IsSaved(id string) (bool, error) {
	ids, err := s.SavedEventIDs()
	if err != nil {
		return false, err
	}

	for _, existing := range ids {
		if existing == id {
			return true, nil
		}
	}

	return false, nil
}

func (s *Storage) updateSaved(apply func([]string) []string) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var value string
	err = tx.QueryRow(`SELECT value FROM local_state WHERE key = ?`, KeySavedEvents).Scan(&value)
	if err != nil && err != sql.ErrNoRows {
		return fmt.Errorf("failed to get %s: %w", KeySavedEvents, err)
	}

	ids := []string{}
	if value != "" {
		ids = s.decodeIDs(value)
	}

	ids = apply(ids)

	encoded, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", KeySavedEvents, err)
	}

	query := `
		INSERT INTO local_state (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = CURRENT_TIMESTAMP`

	if _, err = tx.Exec(query, KeySavedEvents, string(encoded)); err != nil {
		return fmt.Errorf("failed to set %s: %w", KeySavedEvents, err)
	}

	return tx.Commit()
}

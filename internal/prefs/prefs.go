// Package prefs persists the color-vision-deficiency display preference.
// A single key lives in a small sqlite database under the XDG state dir.
package prefs

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite"
)

// Mode is the active CVD display mode. The zero value means no preference.
type Mode string

const (
	ModeUnset        Mode = ""
	ModeProtanopia   Mode = "protanopia"
	ModeDeuteranopia Mode = "deuteranopia"
)

// ParseMode maps a string onto a known mode. Anything unrecognized is
// treated as unset, never an error.
func ParseMode(s string) Mode {
	switch Mode(s) {
	case ModeProtanopia:
		return ModeProtanopia
	case ModeDeuteranopia:
		return ModeDeuteranopia
	default:
		return ModeUnset
	}
}

// String returns a user-facing label.
func (m Mode) String() string {
	if m == ModeUnset {
		return "default"
	}
	return string(m)
}

const prefKey = "cvd-preference"

// Store is the durable preference slot.
type Store struct {
	db *sql.DB
}

// DefaultPath returns the preference database location.
func DefaultPath() string {
	return filepath.Join(xdg.StateHome, "calmhn", "prefs.db")
}

func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating state dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening preference store: %w", err)
	}
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS prefs (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing preference store: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Load returns the stored mode. A missing row or an unrecognized stored
// value reads as unset.
func (s *Store) Load() (Mode, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM prefs WHERE key = ?", prefKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return ModeUnset, nil
	}
	if err != nil {
		return ModeUnset, fmt.Errorf("reading preference: %w", err)
	}
	return ParseMode(value), nil
}

// Set is the single mutation entry point: a known mode is persisted,
// unset clears the slot.
func (s *Store) Set(m Mode) error {
	if m == ModeUnset {
		return s.Clear()
	}
	_, err := s.db.Exec(`
		INSERT INTO prefs (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, prefKey, string(m))
	if err != nil {
		return fmt.Errorf("saving preference: %w", err)
	}
	return nil
}

func (s *Store) Clear() error {
	_, err := s.db.Exec("DELETE FROM prefs WHERE key = ?", prefKey)
	if err != nil {
		return fmt.Errorf("clearing preference: %w", err)
	}
	return nil
}

// Resolve applies startup precedence: a valid override (the --cvd flag)
// wins and is persisted; otherwise the stored value applies. Invalid
// overrides are ignored.
func Resolve(s *Store, override string) (Mode, error) {
	if m := ParseMode(override); m != ModeUnset {
		if err := s.Set(m); err != nil {
			return ModeUnset, err
		}
		return m, nil
	}
	return s.Load()
}

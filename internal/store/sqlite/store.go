// Package sqlite persists dictionary overrides in a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/f3rmion/readafter/internal/dict"
)

// FileName is the database file created inside the data directory.
const FileName = "readafter.db"

const schema = `
CREATE TABLE IF NOT EXISTS dict_overrides (
	category   TEXT PRIMARY KEY,
	words      TEXT NOT NULL,
	updated_at INTEGER NOT NULL
)`

// Store keeps one JSON word array per category.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (creating if needed) the store inside dataDir.
func Open(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	path := filepath.Join(dataDir, FileName)
	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Get returns the override for c.
func (s *Store) Get(ctx context.Context, c dict.Category) ([]string, bool, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		"SELECT words FROM dict_overrides WHERE category = ?", string(c)).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("querying %s override: %w", c, err)
	}

	var words []string
	if err := json.Unmarshal([]byte(raw), &words); err != nil {
		return nil, false, fmt.Errorf("decoding %s override: %w", c, err)
	}
	if words == nil {
		words = []string{}
	}
	return words, true, nil
}

// Put replaces the override for c.
func (s *Store) Put(ctx context.Context, c dict.Category, words []string) error {
	if words == nil {
		words = []string{}
	}
	data, err := json.Marshal(words)
	if err != nil {
		return fmt.Errorf("encoding %s override: %w", c, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO dict_overrides (category, words, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(category) DO UPDATE SET words = excluded.words, updated_at = excluded.updated_at
	`, string(c), string(data), time.Now().Unix())
	if err != nil {
		return fmt.Errorf("writing %s override: %w", c, err)
	}
	return nil
}

// Delete removes the override for c.
func (s *Store) Delete(ctx context.Context, c dict.Category) error {
	if _, err := s.db.ExecContext(ctx,
		"DELETE FROM dict_overrides WHERE category = ?", string(c)); err != nil {
		return fmt.Errorf("deleting %s override: %w", c, err)
	}
	return nil
}

// Categories returns the categories that currently have overrides.
func (s *Store) Categories(ctx context.Context) ([]dict.Category, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT category FROM dict_overrides ORDER BY category")
	if err != nil {
		return nil, fmt.Errorf("listing overrides: %w", err)
	}
	defer rows.Close()

	var out []dict.Category
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scanning override: %w", err)
		}
		out = append(out, dict.Category(c))
	}
	return out, rows.Err()
}

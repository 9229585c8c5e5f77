package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// SQLite persists collections in a single-file database, one row per
// collection holding the JSON snapshot. It is the local-storage backend for
// deployments without a document database.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database file and ensures the snapshot
// table exists.
func OpenSQLite(path string) (*SQLite, error) {
	if path == "" {
		path = "meridian.db"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS collections (
		name TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		return nil, fmt.Errorf("create collections table: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Read(ctx context.Context, collection string) ([]byte, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM collections WHERE name = ?`, collection).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", collection, err)
	}
	return payload, nil
}

func (s *SQLite) Write(ctx context.Context, collection string, payload []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO collections(name, payload) VALUES(?, ?)
		 ON CONFLICT(name) DO UPDATE SET payload = excluded.payload`,
		collection, payload)
	if err != nil {
		return fmt.Errorf("upsert %s: %w", collection, err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *SQLite) Close() error {
	return s.db.Close()
}

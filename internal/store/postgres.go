package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver
)

// Postgres mirrors the SQLite layout on a shared Postgres instance: one row
// per collection holding the JSON snapshot. It is the document-database
// variant of the persistence boundary.
type Postgres struct {
	db *sql.DB
}

// OpenPostgres connects with the given DSN and ensures the snapshot table
// exists.
func OpenPostgres(ctx context.Context, dsn string) (*Postgres, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS collections (
		name TEXT PRIMARY KEY,
		payload BYTEA NOT NULL
	)`); err != nil {
		return nil, fmt.Errorf("create collections table: %w", err)
	}
	return &Postgres{db: db}, nil
}

func (p *Postgres) Read(ctx context.Context, collection string) ([]byte, error) {
	var payload []byte
	err := p.db.QueryRowContext(ctx, `SELECT payload FROM collections WHERE name = $1`, collection).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", collection, err)
	}
	return payload, nil
}

func (p *Postgres) Write(ctx context.Context, collection string, payload []byte) error {
	_, err := p.db.ExecContext(ctx,
		`INSERT INTO collections(name, payload) VALUES($1, $2)
		 ON CONFLICT(name) DO UPDATE SET payload = excluded.payload`,
		collection, payload)
	if err != nil {
		return fmt.Errorf("upsert %s: %w", collection, err)
	}
	return nil
}

// Close releases the underlying database handle.
func (p *Postgres) Close() error {
	return p.db.Close()
}

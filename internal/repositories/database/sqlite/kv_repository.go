// Package sqlite provides a SQLite-backed key/value repository. It is the
// default durable store for a single shop computer.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	portsrepo "github.com/SscSPs/printshop_pos/internal/core/ports/repositories"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv_blobs (
    key TEXT PRIMARY KEY,
    value BLOB NOT NULL,
    updated_at INTEGER NOT NULL
);
`

// Ensure KeyValueRepository implements the key/value facade
var _ portsrepo.KeyValueRepositoryFacade = (*KeyValueRepository)(nil)

// KeyValueRepository stores blobs in a single SQLite table.
type KeyValueRepository struct {
	db *sql.DB
}

// New opens (or creates) the database at dbPath and ensures the schema exists.
func New(dbPath string) (*KeyValueRepository, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One writer at a time; SQLite serialises writes anyway.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &KeyValueRepository{db: db}, nil
}

// Close closes the database connection.
func (r *KeyValueRepository) Close() error {
	return r.db.Close()
}

// Load returns the blob stored under key.
func (r *KeyValueRepository) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var blob []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM kv_blobs WHERE key = ?`, key).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to load %s: %w", key, err)
	}
	return blob, true, nil
}

// Save upserts the blob stored under key.
func (r *KeyValueRepository) Save(ctx context.Context, key string, blob []byte) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO kv_blobs (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, blob, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

// Delete removes key.
func (r *KeyValueRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM kv_blobs WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

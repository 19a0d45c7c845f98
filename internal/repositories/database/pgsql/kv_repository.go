package pgsql

import (
	"context"
	"errors"
	"fmt"

	portsrepo "github.com/SscSPs/printshop_pos/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// PgxKeyValueRepository stores blobs in the kv_blobs table.
type PgxKeyValueRepository struct {
	BaseRepository
}

// NewKeyValueRepository creates a key/value repository on top of the pool.
// The kv_blobs table is created by the migrations in pkg/database.
func NewKeyValueRepository(pool *pgxpool.Pool) *PgxKeyValueRepository {
	return &PgxKeyValueRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.KeyValueRepositoryFacade = (*PgxKeyValueRepository)(nil)

// Load returns the blob stored under key.
func (r *PgxKeyValueRepository) Load(ctx context.Context, key string) ([]byte, bool, error) {
	query := `SELECT value FROM kv_blobs WHERE key = $1;`
	var blob []byte
	err := r.Pool.QueryRow(ctx, query, key).Scan(&blob)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to load %s: %w", key, err)
	}
	return blob, true, nil
}

// Save upserts the blob stored under key.
func (r *PgxKeyValueRepository) Save(ctx context.Context, key string, blob []byte) error {
	query := `
		INSERT INTO kv_blobs (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = EXCLUDED.updated_at;
	`
	if _, err := r.Pool.Exec(ctx, query, key, blob); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

// Delete removes key.
func (r *PgxKeyValueRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.Pool.Exec(ctx, `DELETE FROM kv_blobs WHERE key = $1;`, key); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

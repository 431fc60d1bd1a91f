package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

type SQLiteKVRepository struct {
	db *sql.DB
}

func NewSQLiteKVRepository(db *sql.DB) *SQLiteKVRepository {
	return &SQLiteKVRepository{db: db}
}

// Get retrieves the value stored under key
func (r *SQLiteKVRepository) Get(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT value FROM kv_store WHERE key = ?`

	var value []byte
	err := r.db.QueryRowContext(ctx, query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}

	return value, nil
}

// Set inserts or replaces the value stored under key
func (r *SQLiteKVRepository) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`

	_, err := r.db.ExecContext(ctx, query, key, value, time.Now().UTC())
	return err
}

// Close is a no-op; the database handle is owned by pkg/database
func (r *SQLiteKVRepository) Close() error {
	return nil
}

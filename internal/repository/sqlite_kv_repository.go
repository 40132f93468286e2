package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type SQLiteKVStore struct {
	DB *sql.DB
}

func NewSQLiteKVStore(db *sql.DB) *SQLiteKVStore {
	return &SQLiteKVStore{DB: db}
}

func (r *SQLiteKVStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.DB.QueryRowContext(ctx, `SELECT value FROM kv_entries WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		return "", fmt.Errorf("sqlite get %q: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteKVStore) Put(ctx context.Context, key, value string) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO kv_entries (key, value, updated_at) VALUES (?, ?, datetime('now'))
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value)
	if err != nil {
		return fmt.Errorf("sqlite put %q: %w", key, err)
	}
	return nil
}

func (r *SQLiteKVStore) Ping(ctx context.Context) error {
	return r.DB.PingContext(ctx)
}

func (r *SQLiteKVStore) Close() error {
	return r.DB.Close()
}

package repository

import (
	"context"
	"errors"
)

var ErrKeyNotFound = errors.New("key not found")

// KVStore holds opaque text values under string keys.
type KVStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string) error
	Ping(ctx context.Context) error
	Close() error
}

package repositories

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when the key has never been set
var ErrKeyNotFound = errors.New("key not found")

// KeyValueStore is the persistence handle behind the snapshot cache
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

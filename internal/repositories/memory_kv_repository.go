package repositories

import (
	"context"

	"github.com/patrickmn/go-cache"
)

// MemoryKVRepository keeps values in process memory. Nothing expires here;
// the snapshot cache applies its own freshness window.
type MemoryKVRepository struct {
	entries *cache.Cache
}

func NewMemoryKVRepository() *MemoryKVRepository {
	return &MemoryKVRepository{
		entries: cache.New(cache.NoExpiration, 0),
	}
}

func (r *MemoryKVRepository) Get(_ context.Context, key string) ([]byte, error) {
	val, found := r.entries.Get(key)
	if !found {
		return nil, ErrKeyNotFound
	}
	stored := val.([]byte)
	return append([]byte(nil), stored...), nil
}

func (r *MemoryKVRepository) Set(_ context.Context, key string, value []byte) error {
	r.entries.Set(key, append([]byte(nil), value...), cache.NoExpiration)
	return nil
}

func (r *MemoryKVRepository) Close() error {
	r.entries.Flush()
	return nil
}

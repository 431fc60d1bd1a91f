package repositories

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// RedisKVRepository stores values without a TTL; freshness is decided by
// the reader.
type RedisKVRepository struct {
	client *redis.Client
}

func NewRedisKVRepository(cfg RedisConfig) *RedisKVRepository {
	return NewRedisKVRepositoryFromClient(redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}))
}

func NewRedisKVRepositoryFromClient(client *redis.Client) *RedisKVRepository {
	return &RedisKVRepository{client: client}
}

// Ping checks that the server is reachable
func (r *RedisKVRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisKVRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

func (r *RedisKVRepository) Set(ctx context.Context, key string, value []byte) error {
	return r.client.Set(ctx, key, value, 0).Err()
}

func (r *RedisKVRepository) Close() error {
	return r.client.Close()
}

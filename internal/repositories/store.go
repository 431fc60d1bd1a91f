package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alimgiray/gfolio/pkg/config"
	"github.com/alimgiray/gfolio/pkg/database"
)

// sqliteStore owns its database handle, unlike a bare SQLiteKVRepository
type sqliteStore struct {
	*SQLiteKVRepository
	db *sql.DB
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// OpenStore opens the backend named by cfg.Driver
func OpenStore(ctx context.Context, cfg config.StoreConfig) (KeyValueStore, error) {
	switch cfg.Driver {
	case config.StoreDriverSQLite, "":
		db, err := database.Open(cfg.Path)
		if err != nil {
			return nil, err
		}
		return &sqliteStore{SQLiteKVRepository: NewSQLiteKVRepository(db), db: db}, nil

	case config.StoreDriverRedis:
		repo := NewRedisKVRepository(RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := repo.Ping(ctx); err != nil {
			repo.Close()
			return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
		}
		return repo, nil

	case config.StoreDriverMemory:
		return NewMemoryKVRepository(), nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}

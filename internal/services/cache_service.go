package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/alimgiray/gfolio/internal/models"
	"github.com/alimgiray/gfolio/internal/repositories"
	"github.com/alimgiray/gfolio/pkg/logger"
)

const (
	CacheKey = "cs_portfolio_cache_v3"
	CacheTTL = 30 * time.Minute
)

// CacheService persists the most recent snapshot. Its failures never reach
// callers: a broken read is a miss and a broken write is dropped.
type CacheService struct {
	store repositories.KeyValueStore
	now   func() time.Time
	log   *logrus.Entry
}

func NewCacheService(store repositories.KeyValueStore) *CacheService {
	return &CacheService{
		store: store,
		now:   time.Now,
		log:   logger.WithComponent("cache"),
	}
}

// SetClock replaces the time source
func (s *CacheService) SetClock(now func() time.Time) {
	s.now = now
}

// Save overwrites the stored snapshot, stamped with the current time
func (s *CacheService) Save(ctx context.Context, snapshot *models.Snapshot) {
	payload, err := json.Marshal(models.NewCachedSnapshot(snapshot, s.now()))
	if err != nil {
		s.log.WithError(err).Warn("Failed to encode snapshot")
		return
	}

	if err := s.store.Set(ctx, CacheKey, payload); err != nil {
		s.log.WithError(err).Warn("Failed to persist snapshot")
		return
	}

	s.log.WithField("bytes", len(payload)).Debug("Snapshot persisted")
}

// Load returns the stored snapshot if it is at most CacheTTL old
func (s *CacheService) Load(ctx context.Context) (*models.Snapshot, bool) {
	raw, err := s.store.Get(ctx, CacheKey)
	if err != nil {
		if !errors.Is(err, repositories.ErrKeyNotFound) {
			s.log.WithError(err).Debug("Failed to read snapshot")
		}
		return nil, false
	}

	var cached models.CachedSnapshot
	if err := json.Unmarshal(raw, &cached); err != nil {
		s.log.WithError(err).Debug("Discarding unreadable snapshot")
		return nil, false
	}
	if !complete(cached.Data) {
		s.log.Debug("Discarding incomplete snapshot")
		return nil, false
	}

	age := cached.Age(s.now())
	if age > CacheTTL {
		s.log.WithField("age", age.String()).Debug("Snapshot expired")
		return nil, false
	}

	return cached.Data, true
}

// complete reports whether every part of snapshot can be rendered
func complete(snapshot *models.Snapshot) bool {
	if snapshot == nil || snapshot.Profile == nil {
		return false
	}
	for _, repo := range snapshot.Repos {
		if repo == nil {
			return false
		}
	}
	return true
}

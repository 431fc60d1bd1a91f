package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alimgiray/gfolio/internal/models"
	"github.com/alimgiray/gfolio/internal/repositories"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

func sampleSnapshot() *models.Snapshot {
	return &models.Snapshot{
		Profile: &models.Profile{Login: "octo", Name: "Octo Cat", Followers: 42, PublicRepos: 2},
		Repos: []*models.Repository{
			{Name: "alpha", Language: "Go", StargazersCount: 3, UpdatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
			{Name: "beta", Language: "Rust", StargazersCount: 1, Topics: []string{"cli"}},
		},
	}
}

func TestCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	clock := &fixedClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	cache := NewCacheService(repositories.NewMemoryKVRepository())
	cache.SetClock(clock.Now)

	cache.Save(ctx, sampleSnapshot())

	got, ok := cache.Load(ctx)
	require.True(t, ok)
	assert.Equal(t, "octo", got.Profile.Login)
	assert.Len(t, got.Repos, 2)
	assert.Equal(t, []string{"cli"}, got.Repos[1].Topics)
}

func TestCacheFreshnessWindow(t *testing.T) {
	testCases := []struct {
		name  string
		age   time.Duration
		fresh bool
	}{
		{"just written", 0, true},
		{"ten minutes", 10 * time.Minute, true},
		{"exactly thirty minutes", 30 * time.Minute, true},
		{"just past thirty minutes", 30*time.Minute + time.Millisecond, false},
		{"one day", 24 * time.Hour, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
			clock := &fixedClock{now: start}
			cache := NewCacheService(repositories.NewMemoryKVRepository())
			cache.SetClock(clock.Now)

			cache.Save(ctx, sampleSnapshot())
			clock.now = start.Add(tc.age)

			_, ok := cache.Load(ctx)
			assert.Equal(t, tc.fresh, ok)
		})
	}
}

func TestCacheStoresEnvelope(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewMemoryKVRepository()
	captured := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	cache := NewCacheService(store)
	cache.SetClock(func() time.Time { return captured })

	cache.Save(ctx, sampleSnapshot())

	raw, err := store.Get(ctx, CacheKey)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"capturedAt":1714564800000`)
	assert.Contains(t, string(raw), `"data":{"profile":{"login":"octo"`)
}

func TestCacheTreatsBadEntriesAsMiss(t *testing.T) {
	testCases := []struct {
		name  string
		value string
	}{
		{"not json", "{oops"},
		{"no data", `{"capturedAt": 1}`},
		{"no profile", `{"capturedAt": 1, "data": {"repos": []}}`},
		{"null profile", `{"capturedAt": 1, "data": {"profile": null, "repos": []}}`},
		{"null repository", `{"capturedAt": 1, "data": {"profile": {"login": "x", "name": "Real Name"}, "repos": [null]}}`},
		{"null among repositories", `{"capturedAt": 1, "data": {"profile": {"login": "x"}, "repos": [{"name": "a"}, null]}}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			store := repositories.NewMemoryKVRepository()
			require.NoError(t, store.Set(ctx, CacheKey, []byte(tc.value)))
			cache := NewCacheService(store)
			cache.SetClock(func() time.Time { return time.UnixMilli(2) })

			got, ok := cache.Load(ctx)
			assert.False(t, ok)
			assert.Nil(t, got)
		})
	}
}

type brokenStore struct{}

func (brokenStore) Get(context.Context, string) ([]byte, error) { return nil, errors.New("disk on fire") }
func (brokenStore) Set(context.Context, string, []byte) error   { return errors.New("disk on fire") }
func (brokenStore) Close() error                                { return nil }

func TestCacheSwallowsStoreErrors(t *testing.T) {
	ctx := context.Background()
	cache := NewCacheService(brokenStore{})

	assert.NotPanics(t, func() { cache.Save(ctx, sampleSnapshot()) })

	got, ok := cache.Load(ctx)
	assert.False(t, ok)
	assert.Nil(t, got)
}

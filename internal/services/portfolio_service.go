package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/alimgiray/gfolio/internal/models"
	"github.com/alimgiray/gfolio/internal/render"
	"github.com/alimgiray/gfolio/pkg/logger"
)

// LoadState is one step of a page load
type LoadState string

const (
	StateInit        LoadState = "init"
	StateCacheCheck  LoadState = "cache_check"
	StateCacheHit    LoadState = "cache_hit"
	StateCacheMiss   LoadState = "cache_miss"
	StateFetching    LoadState = "fetching"
	StateFetchOK     LoadState = "fetch_ok"
	StateFetchFailed LoadState = "fetch_failed"
	StatePersist     LoadState = "persist"
	StateRender      LoadState = "render"
	StateFallback    LoadState = "fallback"
)

// RemoteClient is the read side of the GitHub API
type RemoteClient interface {
	FetchProfile(ctx context.Context, username string) (*models.Profile, error)
	FetchRepositories(ctx context.Context, username string) ([]*models.Repository, error)
}

// LoadResult records how a page load went. Err is the fetch failure that
// led to the fallback, if any.
type LoadResult struct {
	Trace    []LoadState
	Final    LoadState
	Snapshot *models.Snapshot
	Err      error
}

func (r *LoadResult) enter(state LoadState) {
	r.Trace = append(r.Trace, state)
	r.Final = state
}

// FromCache reports whether the load was served without touching the API
func (r *LoadResult) FromCache() bool {
	for _, state := range r.Trace {
		if state == StateCacheHit {
			return true
		}
	}
	return false
}

type PortfolioService struct {
	username string
	remote   RemoteClient
	cache    *CacheService
	log      *logrus.Entry
}

func NewPortfolioService(username string, remote RemoteClient, cache *CacheService) *PortfolioService {
	return &PortfolioService{
		username: username,
		remote:   remote,
		cache:    cache,
		log:      logger.WithComponent("portfolio").WithField("username", username),
	}
}

// Username returns the portfolio owner's GitHub login
func (s *PortfolioService) Username() string {
	return s.username
}

// Load resolves a snapshot and renders it onto target. A fetch failure
// renders the fallback content instead; Load itself never fails.
func (s *PortfolioService) Load(ctx context.Context, target render.Target, anim render.Animator) (result *LoadResult) {
	result = &LoadResult{}
	result.enter(StateInit)

	defer func() {
		if rec := recover(); rec != nil {
			result.Err = fmt.Errorf("page load panicked: %v", rec)
			s.log.WithError(result.Err).Error("Rendering fallback content")
			result.enter(StateFallback)
			render.RenderFallback(target)
		}
	}()

	snapshot, err := s.resolve(ctx, result)
	if err != nil {
		result.Err = err
		s.log.WithError(err).Warn("Failed to load portfolio data, rendering fallback content")
		result.enter(StateFallback)
		render.RenderFallback(target)
		return result
	}

	result.Snapshot = snapshot
	result.enter(StateRender)
	render.RenderAll(target, snapshot, s.username, anim)
	return result
}

// Resolve returns the cached snapshot when fresh, otherwise fetches and
// persists a new one.
func (s *PortfolioService) Resolve(ctx context.Context) (*models.Snapshot, error) {
	return s.resolve(ctx, &LoadResult{})
}

// Refresh fetches and persists a new snapshot regardless of the cache
func (s *PortfolioService) Refresh(ctx context.Context) (*models.Snapshot, error) {
	snapshot, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Save(ctx, snapshot)
	return snapshot, nil
}

func (s *PortfolioService) resolve(ctx context.Context, result *LoadResult) (*models.Snapshot, error) {
	result.enter(StateCacheCheck)
	if snapshot, ok := s.cache.Load(ctx); ok {
		result.enter(StateCacheHit)
		s.log.Debug("Serving portfolio from cache")
		return snapshot, nil
	}
	result.enter(StateCacheMiss)

	result.enter(StateFetching)
	snapshot, err := s.fetch(ctx)
	if err != nil {
		result.enter(StateFetchFailed)
		return nil, err
	}
	result.enter(StateFetchOK)

	result.enter(StatePersist)
	s.cache.Save(ctx, snapshot)
	return snapshot, nil
}

type profileResult struct {
	profile *models.Profile
	err     error
}

type reposResult struct {
	repos []*models.Repository
	err   error
}

// fetch issues both API calls at once and returns on the first failure.
// The abandoned call finishes into its buffered channel.
func (s *PortfolioService) fetch(ctx context.Context) (*models.Snapshot, error) {
	profileCh := make(chan profileResult, 1)
	reposCh := make(chan reposResult, 1)

	go func() {
		profile, err := s.remote.FetchProfile(ctx, s.username)
		profileCh <- profileResult{profile: profile, err: err}
	}()
	go func() {
		repos, err := s.remote.FetchRepositories(ctx, s.username)
		reposCh <- reposResult{repos: repos, err: err}
	}()

	snapshot := &models.Snapshot{}
	for pending := 2; pending > 0; pending-- {
		select {
		case res := <-profileCh:
			if res.err != nil {
				return nil, fmt.Errorf("failed to fetch profile: %w", res.err)
			}
			snapshot.Profile = res.profile
		case res := <-reposCh:
			if res.err != nil {
				return nil, fmt.Errorf("failed to fetch repositories: %w", res.err)
			}
			snapshot.Repos = res.repos
		}
	}

	if snapshot.Repos == nil {
		snapshot.Repos = []*models.Repository{}
	}

	s.log.WithFields(logrus.Fields{
		"repos":       len(snapshot.Repos),
		"total_stars": snapshot.TotalStars(),
	}).Info("Fetched portfolio data")
	return snapshot, nil
}

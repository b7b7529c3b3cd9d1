package github

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/subculture-collective/subcvlt/internal/domain/catalog"
	"github.com/subculture-collective/subcvlt/internal/repository"
)

// Lister fetches a fresh repository listing.
type Lister interface {
	ListRepos(ctx context.Context) ([]catalog.RepoRecord, error)
}

// cachedListing is the persisted cache entry shape.
type cachedListing struct {
	Timestamp int64                `json:"timestamp"` // unix milliseconds
	Repos     []catalog.RepoRecord `json:"repos"`
}

// CachedLister wraps a Lister with a persisted, time-boxed cache and a
// fail-soft contract: Listing never fails, it degrades to an empty slice.
// Callers treat an empty listing as "show fallback data", not as an error.
type CachedLister struct {
	lister  Lister
	store   repository.StateStore
	ttl     time.Duration
	exclude map[string]struct{}
	now     func() time.Time
	logger  *slog.Logger
}

// NewCachedLister decorates lister. Repositories named in exclude, and all
// forks, are dropped from fresh fetches before caching.
func NewCachedLister(lister Lister, store repository.StateStore, ttl time.Duration, exclude []string, logger *slog.Logger) *CachedLister {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	excluded := make(map[string]struct{}, len(exclude))
	for _, name := range exclude {
		excluded[name] = struct{}{}
	}
	return &CachedLister{
		lister:  lister,
		store:   store,
		ttl:     ttl,
		exclude: excluded,
		now:     time.Now,
		logger:  logger,
	}
}

// Listing returns the repository listing, serving the persisted copy while it
// is younger than the TTL. A cache entry that is expired, missing, or
// unparsable reads as a miss. A failed fetch logs a warning and yields an
// empty listing.
func (c *CachedLister) Listing(ctx context.Context) []catalog.RepoRecord {
	if repos, ok := c.readCache(ctx); ok {
		return repos
	}

	repos, err := c.lister.ListRepos(ctx)
	if err != nil {
		c.logger.Warn("github listing fetch failed, serving empty listing", "error", err)
		return []catalog.RepoRecord{}
	}

	filtered := make([]catalog.RepoRecord, 0, len(repos))
	for _, r := range repos {
		if r.Fork {
			continue
		}
		if _, skip := c.exclude[r.Name]; skip {
			continue
		}
		filtered = append(filtered, r)
	}

	c.writeCache(ctx, filtered)
	return filtered
}

func (c *CachedLister) readCache(ctx context.Context) ([]catalog.RepoRecord, bool) {
	raw, err := c.store.Get(ctx, repository.KeyRepoCache)
	if err != nil {
		return nil, false
	}

	var cached cachedListing
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		// Corrupt cache entries read as a miss.
		return nil, false
	}

	age := c.now().Sub(time.UnixMilli(cached.Timestamp))
	if age < 0 || age >= c.ttl {
		return nil, false
	}
	return cached.Repos, true
}

// writeCache is best-effort: a storage failure costs a refetch next call,
// nothing more.
func (c *CachedLister) writeCache(ctx context.Context, repos []catalog.RepoRecord) {
	data, err := json.Marshal(cachedListing{
		Timestamp: c.now().UnixMilli(),
		Repos:     repos,
	})
	if err != nil {
		return
	}
	if err := c.store.Set(ctx, repository.KeyRepoCache, string(data)); err != nil {
		c.logger.Debug("github listing cache write failed", "error", err)
	}
}

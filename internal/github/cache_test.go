package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/subculture-collective/subcvlt/internal/domain/catalog"
	"github.com/subculture-collective/subcvlt/internal/repository"
)

type memStore struct {
	values  map[string]string
	failSet bool
}

func newMemStore() *memStore {
	return &memStore{values: make(map[string]string)}
}

func (s *memStore) Get(_ context.Context, key string) (string, error) {
	v, ok := s.values[key]
	if !ok {
		return "", repository.ErrNotFound
	}
	return v, nil
}

func (s *memStore) Set(_ context.Context, key, value string) error {
	if s.failSet {
		return errors.New("storage full")
	}
	s.values[key] = value
	return nil
}

func (s *memStore) Delete(_ context.Context, key string) error {
	delete(s.values, key)
	return nil
}

type fakeLister struct {
	repos []catalog.RepoRecord
	err   error
	calls int
}

func (f *fakeLister) ListRepos(context.Context) ([]catalog.RepoRecord, error) {
	f.calls++
	return f.repos, f.err
}

func repos(names ...string) []catalog.RepoRecord {
	out := make([]catalog.RepoRecord, len(names))
	for i, n := range names {
		out[i] = catalog.RepoRecord{Name: n}
	}
	return out
}

func TestListingFetchesAndCaches(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	lister := &fakeLister{repos: repos("subcult-tv", "zine-press")}

	cl := NewCachedLister(lister, store, time.Hour, nil, nil)

	got := cl.Listing(ctx)
	require.Len(t, got, 2)
	require.Equal(t, 1, lister.calls)

	// Second call within the TTL is served from the persisted cache.
	got = cl.Listing(ctx)
	require.Len(t, got, 2)
	require.Equal(t, 1, lister.calls)
}

func TestListingTTLBoundary(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	lister := &fakeLister{repos: repos("subcult-tv")}

	cl := NewCachedLister(lister, store, time.Hour, nil, nil)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	cl.now = func() time.Time { return base }

	cl.Listing(ctx)
	require.Equal(t, 1, lister.calls)

	cl.now = func() time.Time { return base.Add(time.Hour - time.Millisecond) }
	cl.Listing(ctx)
	require.Equal(t, 1, lister.calls, "entry just under the TTL still serves")

	cl.now = func() time.Time { return base.Add(time.Hour + time.Millisecond) }
	cl.Listing(ctx)
	require.Equal(t, 2, lister.calls, "entry past the TTL triggers a fetch")
}

func TestListingFailSoft(t *testing.T) {
	ctx := context.Background()
	lister := &fakeLister{err: errors.New("network down")}

	cl := NewCachedLister(lister, newMemStore(), time.Hour, nil, nil)

	got := cl.Listing(ctx)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestListingFailSoftOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	cl := NewCachedLister(NewClient(srv.URL, "subculture-collective"), newMemStore(), time.Hour, nil, nil)

	got := cl.Listing(context.Background())
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestListingFiltersForksAndExcluded(t *testing.T) {
	ctx := context.Background()
	lister := &fakeLister{repos: []catalog.RepoRecord{
		{Name: "subcult-tv"},
		{Name: "somebody-elses-thing", Fork: true},
		{Name: ".github"},
	}}

	cl := NewCachedLister(lister, newMemStore(), time.Hour, []string{".github"}, nil)

	got := cl.Listing(ctx)
	require.Len(t, got, 1)
	require.Equal(t, "subcult-tv", got[0].Name)
}

func TestListingCorruptCacheIsMiss(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	store.values[repository.KeyRepoCache] = "{not json"
	lister := &fakeLister{repos: repos("subcult-tv")}

	cl := NewCachedLister(lister, store, time.Hour, nil, nil)

	got := cl.Listing(ctx)
	require.Len(t, got, 1)
	require.Equal(t, 1, lister.calls)

	// The corrupt entry was overwritten with a good one.
	var cached cachedListing
	require.NoError(t, json.Unmarshal([]byte(store.values[repository.KeyRepoCache]), &cached))
	require.Len(t, cached.Repos, 1)
}

func TestListingStorageWriteFailureSwallowed(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	store.failSet = true
	lister := &fakeLister{repos: repos("subcult-tv")}

	cl := NewCachedLister(lister, store, time.Hour, nil, nil)

	got := cl.Listing(ctx)
	require.Len(t, got, 1)

	// No cache was written, so the next call fetches again.
	cl.Listing(ctx)
	require.Equal(t, 2, lister.calls)
}

func TestClientListRepos(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/orgs/subculture-collective/repos", r.URL.Path)
		require.Equal(t, "100", r.URL.Query().Get("per_page"))
		require.Equal(t, "updated", r.URL.Query().Get("sort"))
		require.Equal(t, "application/vnd.github.v3+json", r.Header.Get("Accept"))

		fmt.Fprint(w, `[{"name":"subcult-tv","stargazers_count":12,"topics":["website"],"updated_at":"2026-02-20T10:00:00Z"}]`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "subculture-collective")
	repos, err := client.ListRepos(context.Background())
	require.NoError(t, err)
	require.Len(t, repos, 1)
	require.Equal(t, "subcult-tv", repos[0].Name)
	require.Equal(t, 12, repos[0].Stars)
}

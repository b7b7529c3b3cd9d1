package integration_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/subculture-collective/subcvlt/internal/api"
	"github.com/subculture-collective/subcvlt/internal/domain/catalog"
	"github.com/subculture-collective/subcvlt/internal/github"
	"github.com/subculture-collective/subcvlt/internal/sqlite"
	"github.com/subculture-collective/subcvlt/internal/testserver"
)

type testEnv struct {
	db     *sqlite.DB
	store  *sqlite.StateRepository
	server *testserver.Server
	client *api.Client
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())
	t.Cleanup(func() { _ = db.Close() })

	store := sqlite.NewStateRepository(db)
	server := testserver.New(t)

	return &testEnv{
		db:     db,
		store:  store,
		server: server,
		client: api.NewClient(server.URL(), store, nil),
	}
}

func (env *testEnv) login(t *testing.T) {
	t.Helper()
	_, err := env.client.Login(context.Background(), testserver.Username, testserver.Password)
	require.NoError(t, err)
}

func TestSessionSurvivesRestart(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	result, err := env.client.Login(ctx, testserver.Username, testserver.Password)
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)
	require.Equal(t, testserver.Username, result.User.Username)

	// A fresh client over the same store picks up the persisted token.
	restarted := api.NewClient(env.server.URL(), env.store, nil)
	user, err := restarted.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, testserver.Username, user.Username)

	restarted.Logout(ctx)

	// Logout cleared the store, so the original client is signed out too.
	again := api.NewClient(env.server.URL(), env.store, nil)
	require.Empty(t, again.Token(ctx))
	_, err = again.Me(ctx)
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.Status)
}

func TestProjectAdminFlow(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)
	ctx := context.Background()

	created, err := env.client.CreateProject(ctx, api.ProjectInput{
		Slug:        "phosphor-grid",
		Name:        "Phosphor Grid",
		Description: "CRT shader playground",
		Type:        "software",
		Status:      "active",
	})
	require.NoError(t, err)

	fetched, err := env.client.GetProject(ctx, "phosphor-grid")
	require.NoError(t, err)
	require.Equal(t, created.ID, fetched.ID)

	updated, err := env.client.UpdateProject(ctx, created.ID.String(), api.ProjectInput{
		Slug:        "phosphor-grid",
		Name:        "Phosphor Grid",
		Description: "CRT shader playground",
		Type:        "software",
		Status:      "archived",
	})
	require.NoError(t, err)
	require.Equal(t, "archived", updated.Status)

	archived, err := env.client.ListProjects(ctx, api.ProjectFilter{Status: "archived"})
	require.NoError(t, err)
	require.Len(t, archived, 1)

	require.NoError(t, env.client.DeleteProject(ctx, created.ID.String()))

	_, err = env.client.GetProject(ctx, "phosphor-grid")
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusNotFound, apiErr.Status)
}

func TestPostPagination(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)
	ctx := context.Background()

	env.server.SeedPosts(25)

	page, err := env.client.ListPosts(ctx, api.PostListOptions{All: true, Page: 2, PerPage: 10})
	require.NoError(t, err)
	require.Len(t, page.Data, 10)
	require.EqualValues(t, 25, page.Total)
	require.Equal(t, 3, page.TotalPages)
}

func TestContactPipeline(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// Submission is public; no session needed.
	receipt, err := env.client.SubmitContact(ctx, api.ContactInput{
		Name:    "riff",
		Email:   "riff@example.net",
		Message: "the stream is down again",
	})
	require.NoError(t, err)
	require.NotEmpty(t, receipt.ID)

	env.login(t)

	page, err := env.client.ListContacts(ctx, api.PageOptions{})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	require.False(t, page.Data[0].Read)

	toggled, err := env.client.ToggleContactRead(ctx, receipt.ID)
	require.NoError(t, err)
	require.True(t, toggled.Read)

	require.NoError(t, env.client.DeleteContact(ctx, receipt.ID))

	page, err = env.client.ListContacts(ctx, api.PageOptions{})
	require.NoError(t, err)
	require.Empty(t, page.Data)
}

func TestNewsletterPipeline(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.client.Subscribe(ctx, "fan@example.net")
	require.NoError(t, err)

	// Duplicate signups conflict.
	_, err = env.client.Subscribe(ctx, "fan@example.net")
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusConflict, apiErr.Status)

	env.login(t)
	page, err := env.client.ListSubscribers(ctx, api.PageOptions{})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)

	_, err = env.client.Unsubscribe(ctx, page.Data[0].ID.String())
	require.NoError(t, err)
}

// TestCatalogPipeline runs the whole public read path: a fake GitHub org
// listing through the persisted cache and the override merger.
func TestCatalogPipeline(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	var fetches atomic.Int32
	gh := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetches.Add(1)
		require.Equal(t, "/orgs/subculture-collective/repos", r.URL.Path)
		json.NewEncoder(w).Encode([]catalog.RepoRecord{
			{Name: "zine-press", Description: "riso layout tool", Topics: []string{"cli"}, Stars: 12, UpdatedAt: now},
			{Name: "blackout-radio", Description: "pirate stream", Stars: 44, UpdatedAt: now},
			{Name: "forked-thing", Fork: true},
			{Name: ".github"},
		})
	}))
	t.Cleanup(gh.Close)

	lister := github.NewCachedLister(
		github.NewClient(gh.URL, "subculture-collective"),
		env.store,
		time.Hour,
		[]string{".github"},
		nil,
	)

	records := lister.Listing(ctx)
	require.Len(t, records, 2)

	// Second read is served from the persisted cache.
	records = lister.Listing(ctx)
	require.Len(t, records, 2)
	require.EqualValues(t, 1, fetches.Load())

	order := 0
	merger := catalog.NewMerger(map[string]catalog.Override{
		"blackout-radio": {Order: &order, Type: catalog.TypeMedia},
	}, nil)
	projects := merger.Merge(records, now)
	require.Len(t, projects, 2)
	require.Equal(t, "blackout-radio", projects[0].Slug)
	require.Equal(t, catalog.TypeMedia, projects[0].Type)
	require.Equal(t, catalog.TypeTools, projects[1].Type)

	// The cache outlives the process: a fresh decorator over the same store
	// still answers without touching the network.
	rebuilt := github.NewCachedLister(
		github.NewClient(gh.URL, "subculture-collective"),
		env.store,
		time.Hour,
		[]string{".github"},
		nil,
	)
	require.Len(t, rebuilt.Listing(ctx), 2)
	require.EqualValues(t, 1, fetches.Load())
}

package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/subculture-collective/subcvlt/internal/repository"
)

// NewTestDB creates a new in-memory SQLite database for testing
func NewTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(":memory:")
	require.NoError(t, err, "failed to create test database")

	err = db.RunMigrations()
	require.NoError(t, err, "failed to run migrations")

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// TestMigrations verifies that migrations run successfully
func TestMigrations(t *testing.T) {
	db := NewTestDB(t)

	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", "state").Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 1, count, "state table not found")
}

func TestStateRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewStateRepository(NewTestDB(t))

	_, err := repo.Get(ctx, repository.KeyAuthToken)
	require.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, repo.Set(ctx, repository.KeyAuthToken, "abc"))

	got, err := repo.Get(ctx, repository.KeyAuthToken)
	require.NoError(t, err)
	require.Equal(t, "abc", got)
}

func TestStateRepository_SetReplaces(t *testing.T) {
	ctx := context.Background()
	repo := NewStateRepository(NewTestDB(t))

	require.NoError(t, repo.Set(ctx, "k", "one"))
	require.NoError(t, repo.Set(ctx, "k", "two"))

	got, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, "two", got)
}

func TestStateRepository_DeleteAbsentKey(t *testing.T) {
	ctx := context.Background()
	repo := NewStateRepository(NewTestDB(t))

	require.NoError(t, repo.Set(ctx, "k", "v"))
	require.NoError(t, repo.Delete(ctx, "k"))
	require.NoError(t, repo.Delete(ctx, "k"))

	_, err := repo.Get(ctx, "k")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

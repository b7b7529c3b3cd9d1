package prefs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/subculture-collective/subcvlt/internal/prefs"
	"github.com/subculture-collective/subcvlt/internal/sqlite"
)

func newPrefs(t *testing.T) *prefs.Prefs {
	t.Helper()

	db, err := sqlite.New(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())
	t.Cleanup(func() { db.Close() })

	return prefs.New(sqlite.NewStateRepository(db))
}

func TestEffectsDefaultsToFull(t *testing.T) {
	p := newPrefs(t)
	require.Equal(t, prefs.EffectsFull, p.Effects(context.Background()))
}

func TestEffectsRoundTrip(t *testing.T) {
	ctx := context.Background()
	p := newPrefs(t)

	p.SetEffects(ctx, prefs.EffectsClean)
	require.Equal(t, prefs.EffectsClean, p.Effects(ctx))
}

func TestHighContrastRoundTrip(t *testing.T) {
	ctx := context.Background()
	p := newPrefs(t)

	require.False(t, p.HighContrast(ctx))
	p.SetHighContrast(ctx, true)
	require.True(t, p.HighContrast(ctx))
	p.SetHighContrast(ctx, false)
	require.False(t, p.HighContrast(ctx))
}

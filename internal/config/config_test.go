package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "http://localhost:8080", cfg.API.BaseURL)
	require.Equal(t, "subculture-collective", cfg.GitHub.Org)
	require.Equal(t, time.Hour, cfg.GitHub.CacheTTL)
	require.Equal(t, []string{".github"}, cfg.GitHub.Exclude)
	require.Equal(t, "subcvlt.db", cfg.DB.Path)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SUBCVLT_API_URL", "https://api.subcult.tv")
	t.Setenv("SUBCVLT_CACHE_TTL", "30m")
	t.Setenv("SUBCVLT_DB_PATH", "/tmp/subcvlt-test.db")
	t.Setenv("SUBCVLT_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "https://api.subcult.tv", cfg.API.BaseURL)
	require.Equal(t, 30*time.Minute, cfg.GitHub.CacheTTL)
	require.Equal(t, "/tmp/subcvlt-test.db", cfg.DB.Path)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadBadTTL(t *testing.T) {
	t.Setenv("SUBCVLT_CACHE_TTL", "soon")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("api:\n  base_url: https://api.subcult.tv\ngithub:\n  org: someone-else\n  exclude: [\".github\", \"private-notes\"]\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	t.Setenv("SUBCVLT_CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "https://api.subcult.tv", cfg.API.BaseURL)
	require.Equal(t, "someone-else", cfg.GitHub.Org)
	require.Equal(t, []string{".github", "private-notes"}, cfg.GitHub.Exclude)

	// Env still wins over file.
	t.Setenv("SUBCVLT_GITHUB_ORG", "subculture-collective")
	cfg, err = Load()
	require.NoError(t, err)
	require.Equal(t, "subculture-collective", cfg.GitHub.Org)
}
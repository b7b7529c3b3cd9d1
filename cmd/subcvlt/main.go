package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/subculture-collective/subcvlt/internal/api"
	"github.com/subculture-collective/subcvlt/internal/config"
	"github.com/subculture-collective/subcvlt/internal/domain/catalog"
	"github.com/subculture-collective/subcvlt/internal/github"
	"github.com/subculture-collective/subcvlt/internal/prefs"
	"github.com/subculture-collective/subcvlt/internal/sqlite"
	"github.com/subculture-collective/subcvlt/internal/tui"
)

func main() {
	// Optional .env for local development; a missing file is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	// Logs go to stderr so they do not tear the terminal UI on stdout.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	if err := ensureDBDir(cfg.DB.Path); err != nil {
		logger.Error("failed to prepare database path", "error", err)
		os.Exit(1)
	}

	db, err := sqlite.New(cfg.DB.Path)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	store := sqlite.NewStateRepository(db)
	client := api.NewClient(cfg.API.BaseURL, store, logger)
	preferences := prefs.New(store)

	overrides, err := catalog.LoadOverrides(cfg.GitHub.OverridesPath)
	if err != nil {
		logger.Error("failed to load project overrides", "error", err, "path", cfg.GitHub.OverridesPath)
		os.Exit(1)
	}
	merger := catalog.NewMerger(overrides, logger)
	lister := github.NewCachedLister(
		github.NewClient("", cfg.GitHub.Org),
		store,
		cfg.GitHub.CacheTTL,
		cfg.GitHub.Exclude,
		logger,
	)

	program := tea.NewProgram(tui.New(client, preferences, lister, merger))
	if _, err := program.Run(); err != nil {
		logger.Error("console error", "error", err)
		os.Exit(1)
	}
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

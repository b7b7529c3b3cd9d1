// Package tui is the terminal admin console: a thin interactive client over
// the backend API, plus a read view of the merged project catalog.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/subculture-collective/subcvlt/internal/api"
	"github.com/subculture-collective/subcvlt/internal/domain/catalog"
	"github.com/subculture-collective/subcvlt/internal/github"
	"github.com/subculture-collective/subcvlt/internal/prefs"
)

// Screen identifies which admin view is active.
type Screen string

const (
	ScreenLogin       Screen = "login"
	ScreenDashboard   Screen = "dashboard"
	ScreenContacts    Screen = "contacts"
	ScreenSubscribers Screen = "subscribers"
	ScreenProjects    Screen = "projects"
	ScreenPosts       Screen = "posts"
	ScreenCatalog     Screen = "catalog"
)

// Model is the console state.
type Model struct {
	client *api.Client
	prefs  *prefs.Prefs
	lister *github.CachedLister
	merger *catalog.Merger

	screen Screen
	styles Styles
	busy   bool
	err    error
	status string
	cursor int

	// login form
	username      string
	password      string
	passwordFocus bool

	user        *api.User
	stats       *api.DashboardStats
	contacts    []api.Contact
	subscribers []api.Subscriber
	projects    []api.Project
	posts       []api.Post
	catalog     []catalog.Project

	highContrast bool
}

// New builds the console. The catalog pair (lister, merger) may be nil, which
// hides the catalog screen.
func New(client *api.Client, pf *prefs.Prefs, lister *github.CachedLister, merger *catalog.Merger) Model {
	highContrast := pf.HighContrast(context.Background())
	return Model{
		client:       client,
		prefs:        pf,
		lister:       lister,
		merger:       merger,
		screen:       ScreenLogin,
		styles:       NewStyles(highContrast),
		highContrast: highContrast,
	}
}

// Init implements tea.Model. A stored token from a previous session skips
// the login form when the backend still accepts it.
func (m Model) Init() tea.Cmd {
	if m.client.Token(context.Background()) != "" {
		return resumeSession(m.client)
	}
	return nil
}

// mergedCatalog builds the read model the public site renders: cached
// listing through the merger, falling back to the static catalog when the
// listing comes back empty.
func (m Model) mergedCatalog(ctx context.Context) []catalog.Project {
	records := m.lister.Listing(ctx)
	if len(records) == 0 {
		return catalog.FallbackCatalog()
	}
	return m.merger.Merge(records, time.Now())
}

package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/subculture-collective/subcvlt/internal/api"
)

const requestTimeout = 15 * time.Second

func withTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}

// doLogin exchanges the form credentials for a session.
func doLogin(client *api.Client, username, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()

		result, err := client.Login(ctx, username, password)
		if err != nil {
			return loginDoneMsg{Err: err}
		}
		return loginDoneMsg{User: &result.User}
	}
}

// resumeSession validates a persisted token by fetching the profile.
func resumeSession(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()

		user, err := client.Me(ctx)
		if err != nil {
			// Stale token; drop it and fall back to the login form.
			client.ClearToken(context.Background())
			return loginDoneMsg{Err: err}
		}
		return loginDoneMsg{User: user}
	}
}

func fetchStats(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()

		stats, err := client.Stats(ctx)
		return statsMsg{Stats: stats, Err: err}
	}
}

func fetchContacts(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()

		page, err := client.ListContacts(ctx, api.PageOptions{PerPage: 50})
		if err != nil {
			return contactsMsg{Err: err}
		}
		return contactsMsg{Contacts: page.Data}
	}
}

func toggleContactRead(client *api.Client, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()

		contact, err := client.ToggleContactRead(ctx, id)
		return contactToggledMsg{Contact: contact, Err: err}
	}
}

func deleteContact(client *api.Client, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()

		err := client.DeleteContact(ctx, id)
		return contactDeletedMsg{ID: id, Err: err}
	}
}

func fetchSubscribers(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()

		page, err := client.ListSubscribers(ctx, api.PageOptions{PerPage: 50})
		if err != nil {
			return subscribersMsg{Err: err}
		}
		return subscribersMsg{Subscribers: page.Data}
	}
}

func fetchProjects(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()

		projects, err := client.ListProjects(ctx, api.ProjectFilter{})
		return projectsMsg{Projects: projects, Err: err}
	}
}

func fetchPosts(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()

		page, err := client.ListPosts(ctx, api.PostListOptions{All: true, PerPage: 50})
		if err != nil {
			return postsMsg{Err: err}
		}
		return postsMsg{Posts: page.Data}
	}
}

// fetchCatalog builds the public catalog view. Fail-soft end to end: an
// unreachable listing provider just means the fallback catalog shows.
func fetchCatalog(m Model) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()

		return catalogMsg{Projects: m.mergedCatalog(ctx)}
	}
}

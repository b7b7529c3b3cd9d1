package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case loginDoneMsg:
		return m.handleLoginDone(msg)
	case statsMsg:
		m.busy = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.stats = msg.Stats
		return m, nil
	case contactsMsg:
		m.busy = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.contacts = msg.Contacts
		m.screen = ScreenContacts
		m.clampCursor(len(m.contacts))
		return m, nil
	case contactToggledMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		for i, c := range m.contacts {
			if c.ID == msg.Contact.ID {
				m.contacts[i] = *msg.Contact
			}
		}
		return m, nil
	case contactDeletedMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		for i, c := range m.contacts {
			if c.ID.String() == msg.ID {
				m.contacts = append(m.contacts[:i], m.contacts[i+1:]...)
				break
			}
		}
		m.clampCursor(len(m.contacts))
		m.status = "contact deleted"
		return m, nil
	case subscribersMsg:
		m.busy = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.subscribers = msg.Subscribers
		m.screen = ScreenSubscribers
		m.clampCursor(len(m.subscribers))
		return m, nil
	case projectsMsg:
		m.busy = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.projects = msg.Projects
		m.screen = ScreenProjects
		m.clampCursor(len(m.projects))
		return m, nil
	case postsMsg:
		m.busy = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.posts = msg.Posts
		m.screen = ScreenPosts
		m.clampCursor(len(m.posts))
		return m, nil
	case catalogMsg:
		m.busy = false
		m.catalog = msg.Projects
		m.screen = ScreenCatalog
		m.clampCursor(len(m.catalog))
		return m, nil
	}
	return m, nil
}

func (m Model) handleLoginDone(msg loginDoneMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	if msg.Err != nil {
		m.err = msg.Err
		m.screen = ScreenLogin
		m.password = ""
		return m, nil
	}
	m.err = nil
	m.user = msg.User
	m.screen = ScreenDashboard
	m.status = fmt.Sprintf("signed in as %s", msg.User.Username)
	m.busy = true
	return m, fetchStats(m.client)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.screen == ScreenLogin {
		return m.handleLoginKey(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "h":
		m.highContrast = !m.highContrast
		m.styles = NewStyles(m.highContrast)
		m.prefs.SetHighContrast(context.Background(), m.highContrast)
		return m, nil
	case "esc":
		m.screen = ScreenDashboard
		m.err = nil
		m.cursor = 0
		return m, nil
	case "L":
		m.client.Logout(context.Background())
		m.user = nil
		m.stats = nil
		m.screen = ScreenLogin
		m.status = "signed out"
		return m, nil
	}

	switch m.screen {
	case ScreenDashboard:
		return m.handleDashboardKey(msg)
	case ScreenContacts:
		return m.handleContactsKey(msg)
	case ScreenSubscribers, ScreenProjects, ScreenPosts, ScreenCatalog:
		return m.handleListKey(msg)
	}
	return m, nil
}

func (m Model) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if m.username == "" || m.password == "" {
			return m, nil
		}
		m.busy = true
		m.err = nil
		return m, doLogin(m.client, m.username, m.password)
	case "tab", "shift+tab":
		m.passwordFocus = !m.passwordFocus
		return m, nil
	case "backspace":
		if m.passwordFocus {
			m.password = trimLast(m.password)
		} else {
			m.username = trimLast(m.username)
		}
		return m, nil
	}

	if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
		if m.passwordFocus {
			m.password += string(msg.Runes)
		} else {
			m.username += string(msg.Runes)
		}
	}
	return m, nil
}

func (m Model) handleDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "r":
		m.busy = true
		return m, fetchStats(m.client)
	case "c":
		m.busy = true
		return m, fetchContacts(m.client)
	case "s":
		m.busy = true
		return m, fetchSubscribers(m.client)
	case "p":
		m.busy = true
		return m, fetchProjects(m.client)
	case "o":
		m.busy = true
		return m, fetchPosts(m.client)
	case "g":
		if m.lister == nil {
			return m, nil
		}
		m.busy = true
		return m, fetchCatalog(m)
	}
	return m, nil
}

func (m Model) handleContactsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		m.cursor++
		m.clampCursor(len(m.contacts))
		return m, nil
	case "k", "up":
		m.cursor--
		m.clampCursor(len(m.contacts))
		return m, nil
	case "enter":
		if m.cursor < len(m.contacts) {
			return m, toggleContactRead(m.client, m.contacts[m.cursor].ID.String())
		}
	case "x":
		if m.cursor < len(m.contacts) {
			return m, deleteContact(m.client, m.contacts[m.cursor].ID.String())
		}
	}
	return m, nil
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		m.cursor++
	case "k", "up":
		m.cursor--
	}
	m.clampCursor(m.listLen())
	return m, nil
}

func (m *Model) listLen() int {
	switch m.screen {
	case ScreenContacts:
		return len(m.contacts)
	case ScreenSubscribers:
		return len(m.subscribers)
	case ScreenProjects:
		return len(m.projects)
	case ScreenPosts:
		return len(m.posts)
	case ScreenCatalog:
		return len(m.catalog)
	}
	return 0
}

func (m *Model) clampCursor(length int) {
	if m.cursor >= length {
		m.cursor = length - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func trimLast(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	return string(runes[:len(runes)-1])
}

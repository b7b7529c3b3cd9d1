package tui

import (
	"fmt"
	"strings"
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("subcvlt admin"))
	b.WriteString("\n")

	switch m.screen {
	case ScreenLogin:
		m.renderLogin(&b)
	case ScreenDashboard:
		m.renderDashboard(&b)
	case ScreenContacts:
		m.renderContacts(&b)
	case ScreenSubscribers:
		m.renderSubscribers(&b)
	case ScreenProjects:
		m.renderProjects(&b)
	case ScreenPosts:
		m.renderPosts(&b)
	case ScreenCatalog:
		m.renderCatalog(&b)
	}

	if m.busy {
		b.WriteString("\n")
		b.WriteString(m.styles.Info.Render("working..."))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render("error: " + m.err.Error()))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Status.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Info.Render(m.helpText()))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderLogin(b *strings.Builder) {
	userField := m.username
	passField := strings.Repeat("*", len(m.password))
	if m.passwordFocus {
		passField += "_"
	} else {
		userField += "_"
	}

	form := fmt.Sprintf("username: %s\npassword: %s", userField, passField)
	b.WriteString(m.styles.Box.Render(form))
	b.WriteString("\n")
}

func (m Model) renderDashboard(b *strings.Builder) {
	if m.user != nil {
		b.WriteString(m.styles.Highlight.Render(m.user.Username))
		b.WriteString("\n\n")
	}
	if m.stats == nil {
		b.WriteString(m.styles.Info.Render("no stats loaded"))
		b.WriteString("\n")
		return
	}
	stats := fmt.Sprintf(
		"projects     %d\nposts        %d\ncontacts     %d (%d unread)\nsubscribers  %d",
		m.stats.TotalProjects,
		m.stats.TotalPosts,
		m.stats.TotalContacts,
		m.stats.UnreadContacts,
		m.stats.TotalSubscribers,
	)
	b.WriteString(m.styles.Box.Render(stats))
	b.WriteString("\n")
}

func (m Model) renderContacts(b *strings.Builder) {
	b.WriteString(m.styles.Info.Render(fmt.Sprintf("contacts (%d)", len(m.contacts))))
	b.WriteString("\n\n")
	for i, c := range m.contacts {
		marker := "  "
		if !c.Read {
			marker = "* "
		}
		line := fmt.Sprintf("%s%s <%s>  %s", marker, c.Name, c.Email, truncate(c.Message, 50))
		b.WriteString(m.renderRow(i, line))
		b.WriteString("\n")
	}
}

func (m Model) renderSubscribers(b *strings.Builder) {
	b.WriteString(m.styles.Info.Render(fmt.Sprintf("subscribers (%d)", len(m.subscribers))))
	b.WriteString("\n\n")
	for i, s := range m.subscribers {
		state := "confirmed"
		if !s.Confirmed {
			state = "pending"
		}
		if s.UnsubscribedAt != nil {
			state = "unsubscribed"
		}
		line := fmt.Sprintf("%s  %s  %s", s.Email, state, s.SubscribedAt.Format("2006-01-02"))
		b.WriteString(m.renderRow(i, line))
		b.WriteString("\n")
	}
}

func (m Model) renderProjects(b *strings.Builder) {
	b.WriteString(m.styles.Info.Render(fmt.Sprintf("projects (%d)", len(m.projects))))
	b.WriteString("\n\n")
	for i, p := range m.projects {
		line := fmt.Sprintf("%-24s %-10s %-10s %s", p.Slug, p.Status, p.Type, truncate(p.Description, 40))
		b.WriteString(m.renderRow(i, line))
		b.WriteString("\n")
	}
}

func (m Model) renderPosts(b *strings.Builder) {
	b.WriteString(m.styles.Info.Render(fmt.Sprintf("posts (%d)", len(m.posts))))
	b.WriteString("\n\n")
	for i, p := range m.posts {
		state := "draft"
		if p.Published {
			state = "live"
		}
		line := fmt.Sprintf("%s  %-5s  %s", p.Date, state, p.Title)
		b.WriteString(m.renderRow(i, line))
		b.WriteString("\n")
	}
}

func (m Model) renderCatalog(b *strings.Builder) {
	b.WriteString(m.styles.Info.Render(fmt.Sprintf("public catalog (%d)", len(m.catalog))))
	b.WriteString("\n\n")
	for i, p := range m.catalog {
		line := fmt.Sprintf("%-24s %-10s %-8s %4d★  %s", p.Slug, p.Status, p.Type, p.Stars, truncate(p.Description, 36))
		b.WriteString(m.renderRow(i, line))
		b.WriteString("\n")
	}
}

func (m Model) renderRow(i int, line string) string {
	if i == m.cursor {
		return m.styles.Highlight.Render(line)
	}
	return m.styles.Info.Render("  " + line)
}

func (m Model) helpText() string {
	switch m.screen {
	case ScreenLogin:
		return "tab: switch field • enter: sign in • ctrl+c: quit"
	case ScreenDashboard:
		help := "c: contacts • s: subscribers • p: projects • o: posts"
		if m.lister != nil {
			help += " • g: catalog"
		}
		return help + " • r: refresh • h: contrast • L: sign out • q: quit"
	case ScreenContacts:
		return "j/k: move • enter: toggle read • x: delete • esc: back • q: quit"
	default:
		return "j/k: move • esc: back • h: contrast • q: quit"
	}
}

func truncate(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}

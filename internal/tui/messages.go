package tui

import (
	"github.com/subculture-collective/subcvlt/internal/api"
	"github.com/subculture-collective/subcvlt/internal/domain/catalog"
)

// Messages carry command results back into Update.

type loginDoneMsg struct {
	User *api.User
	Err  error
}

type statsMsg struct {
	Stats *api.DashboardStats
	Err   error
}

type contactsMsg struct {
	Contacts []api.Contact
	Err      error
}

type contactToggledMsg struct {
	Contact *api.Contact
	Err     error
}

type contactDeletedMsg struct {
	ID  string
	Err error
}

type subscribersMsg struct {
	Subscribers []api.Subscriber
	Err         error
}

type projectsMsg struct {
	Projects []api.Project
	Err      error
}

type postsMsg struct {
	Posts []api.Post
	Err   error
}

type catalogMsg struct {
	Projects []catalog.Project
}

// Package testserver runs an in-memory double of the backend REST API so the
// client can be exercised without a real deployment.
package testserver

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/subculture-collective/subcvlt/internal/api"
)

// Pagination defaults, matching the production API.
const (
	defaultPerPage = 20
	maxPerPage     = 100
)

// Credentials seeded into every test server.
const (
	Username = "admin"
	Password = "hexes-and-zeroes"
)

// Server is an httptest-backed stand-in for the backend. All state lives in
// memory and dies with the test.
type Server struct {
	Server *httptest.Server

	mu          sync.Mutex
	tokens      map[string]api.User
	projects    []api.Project
	posts       []api.Post
	contacts    []api.Contact
	subscribers []api.Subscriber
	campaign    *api.CampaignData
}

// New starts a server seeded with one admin account. It is closed with the
// test.
func New(t *testing.T) *Server {
	t.Helper()

	s := &Server{
		tokens: make(map[string]api.User),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/auth/login", s.login)
	mux.HandleFunc("GET /api/v1/auth/me", s.authed(s.me))

	mux.HandleFunc("GET /api/v1/projects", s.listProjects)
	mux.HandleFunc("GET /api/v1/projects/{slug}", s.getProject)
	mux.HandleFunc("POST /api/v1/projects", s.authed(s.createProject))
	mux.HandleFunc("PUT /api/v1/projects/{id}", s.authed(s.updateProject))
	mux.HandleFunc("DELETE /api/v1/projects/{id}", s.authed(s.deleteProject))

	mux.HandleFunc("GET /api/v1/posts", s.listPosts)
	mux.HandleFunc("GET /api/v1/posts/{slug}", s.getPost)
	mux.HandleFunc("POST /api/v1/posts", s.authed(s.createPost))
	mux.HandleFunc("PUT /api/v1/posts/{id}", s.authed(s.updatePost))
	mux.HandleFunc("DELETE /api/v1/posts/{id}", s.authed(s.deletePost))

	mux.HandleFunc("POST /api/v1/contacts", s.submitContact)
	mux.HandleFunc("GET /api/v1/contacts", s.authed(s.listContacts))
	mux.HandleFunc("PATCH /api/v1/contacts/{id}/read", s.authed(s.toggleContactRead))
	mux.HandleFunc("DELETE /api/v1/contacts/{id}", s.authed(s.deleteContact))

	mux.HandleFunc("POST /api/v1/newsletter/subscribe", s.subscribe)
	mux.HandleFunc("POST /api/v1/newsletter/unsubscribe", s.unsubscribe)
	mux.HandleFunc("GET /api/v1/newsletter/subscribers", s.authed(s.listSubscribers))

	mux.HandleFunc("GET /api/v1/admin/stats", s.authed(s.stats))
	mux.HandleFunc("GET /api/v1/patreon/campaign", s.patreonCampaign)

	s.Server = httptest.NewServer(mux)
	t.Cleanup(s.Server.Close)

	return s
}

// URL returns the server's base URL.
func (s *Server) URL() string {
	return s.Server.URL
}

// ── Seed helpers ─────────────────────────────────────────────

// SeedContacts inserts n unread contact messages.
func (s *Server) SeedContacts(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := 0; i < n; i++ {
		s.contacts = append(s.contacts, api.Contact{
			ID:        uuid.New(),
			Name:      fmt.Sprintf("Visitor %d", i+1),
			Email:     fmt.Sprintf("visitor%d@example.net", i+1),
			Message:   "hello from the void",
			CreatedAt: time.Now(),
		})
	}
}

// SeedSubscribers inserts n confirmed subscribers.
func (s *Server) SeedSubscribers(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := 0; i < n; i++ {
		s.subscribers = append(s.subscribers, api.Subscriber{
			ID:           uuid.New(),
			Email:        fmt.Sprintf("reader%d@example.net", i+1),
			Confirmed:    true,
			SubscribedAt: time.Now(),
		})
	}
}

// SeedPosts inserts n published posts with ascending dates.
func (s *Server) SeedPosts(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		s.posts = append(s.posts, api.Post{
			ID:        uuid.New(),
			Slug:      fmt.Sprintf("post-%d", i+1),
			Title:     fmt.Sprintf("Post %d", i+1),
			Tags:      []string{},
			Published: true,
			Date:      base.AddDate(0, 0, i).Format("2006-01-02"),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		})
	}
}

// SetCampaign installs the tiered-campaign payload.
func (s *Server) SetCampaign(data *api.CampaignData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.campaign = data
}

// ── Auth ─────────────────────────────────────────────────────

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username != Username || req.Password != Password {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	user := api.User{
		ID:        uuid.New(),
		Username:  Username,
		Email:     "admin@subcult.tv",
		Role:      "admin",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	token := uuid.NewString()

	s.mu.Lock()
	s.tokens[token] = user
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{"token": token, "user": user})
}

func (s *Server) me(w http.ResponseWriter, r *http.Request) {
	user, _ := s.userFor(r)
	writeJSON(w, http.StatusOK, user)
}

func (s *Server) authed(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := s.userFor(r); !ok {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next(w, r)
	}
}

func (s *Server) userFor(r *http.Request) (api.User, bool) {
	token := strings.TrimSpace(strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer "))
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.tokens[token]
	return user, ok
}

// ── Projects ─────────────────────────────────────────────────

func (s *Server) listProjects(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	typ := r.URL.Query().Get("type")

	s.mu.Lock()
	defer s.mu.Unlock()

	out := []api.Project{}
	for _, p := range s.projects {
		if status != "" && p.Status != status {
			continue
		}
		if typ != "" && p.Type != typ {
			continue
		}
		out = append(out, p)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) getProject(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.projects {
		if p.Slug == slug {
			writeJSON(w, http.StatusOK, p)
			return
		}
	}
	writeError(w, http.StatusNotFound, "project not found")
}

func (s *Server) createProject(w http.ResponseWriter, r *http.Request) {
	var in api.ProjectInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if in.Slug == "" || in.Name == "" {
		writeError(w, http.StatusBadRequest, "slug and name are required")
		return
	}

	now := time.Now()
	p := projectFromInput(uuid.New(), in, now)

	s.mu.Lock()
	s.projects = append(s.projects, p)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) updateProject(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var in api.ProjectInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.projects {
		if p.ID.String() == id {
			updated := projectFromInput(p.ID, in, time.Now())
			updated.CreatedAt = p.CreatedAt
			s.projects[i] = updated
			writeJSON(w, http.StatusOK, updated)
			return
		}
	}
	writeError(w, http.StatusNotFound, "project not found")
}

func (s *Server) deleteProject(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.projects {
		if p.ID.String() == id {
			s.projects = append(s.projects[:i], s.projects[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeError(w, http.StatusNotFound, "project not found")
}

func projectFromInput(id uuid.UUID, in api.ProjectInput, now time.Time) api.Project {
	if in.Stack == nil {
		in.Stack = []string{}
	}
	if in.Topics == nil {
		in.Topics = []string{}
	}
	return api.Project{
		ID:              id,
		Slug:            in.Slug,
		Name:            in.Name,
		Description:     in.Description,
		LongDescription: in.LongDescription,
		WhyItExists:     in.WhyItExists,
		Type:            in.Type,
		Status:          in.Status,
		Stack:           in.Stack,
		Topics:          in.Topics,
		RepoURL:         in.RepoURL,
		Homepage:        in.Homepage,
		CoverPattern:    in.CoverPattern,
		CoverColor:      in.CoverColor,
		Featured:        in.Featured,
		SortOrder:       in.SortOrder,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// ── Posts ────────────────────────────────────────────────────

func (s *Server) listPosts(w http.ResponseWriter, r *http.Request) {
	page, perPage, offset := pagination(r)
	onlyPublished := r.URL.Query().Get("all") != "true"
	if !onlyPublished {
		if _, ok := s.userFor(r); !ok {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	matching := []api.Post{}
	for _, p := range s.posts {
		if onlyPublished && !p.Published {
			continue
		}
		matching = append(matching, p)
	}

	writeJSON(w, http.StatusOK, paginate(matching, page, perPage, offset))
}

func (s *Server) getPost(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.posts {
		if p.Slug == slug {
			writeJSON(w, http.StatusOK, p)
			return
		}
	}
	writeError(w, http.StatusNotFound, "post not found")
}

func (s *Server) createPost(w http.ResponseWriter, r *http.Request) {
	var in api.PostInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if in.Slug == "" || in.Title == "" {
		writeError(w, http.StatusBadRequest, "slug and title are required")
		return
	}
	if in.Tags == nil {
		in.Tags = []string{}
	}

	now := time.Now()
	p := api.Post{
		ID:        uuid.New(),
		Slug:      in.Slug,
		Title:     in.Title,
		Excerpt:   in.Excerpt,
		Content:   in.Content,
		Tags:      in.Tags,
		Author:    in.Author,
		Published: in.Published,
		Date:      in.Date,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	s.posts = append(s.posts, p)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) updatePost(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var in api.PostInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if in.Tags == nil {
		in.Tags = []string{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.posts {
		if p.ID.String() == id {
			p.Slug = in.Slug
			p.Title = in.Title
			p.Excerpt = in.Excerpt
			p.Content = in.Content
			p.Tags = in.Tags
			p.Author = in.Author
			p.Published = in.Published
			p.Date = in.Date
			p.UpdatedAt = time.Now()
			s.posts[i] = p
			writeJSON(w, http.StatusOK, p)
			return
		}
	}
	writeError(w, http.StatusNotFound, "post not found")
}

func (s *Server) deletePost(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.posts {
		if p.ID.String() == id {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeError(w, http.StatusNotFound, "post not found")
}

// ── Contacts ─────────────────────────────────────────────────

func (s *Server) submitContact(w http.ResponseWriter, r *http.Request) {
	var in api.ContactInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if in.Name == "" || in.Email == "" || in.Message == "" {
		writeError(w, http.StatusBadRequest, "name, email, and message are required")
		return
	}

	contact := api.Contact{
		ID:        uuid.New(),
		Name:      in.Name,
		Email:     in.Email,
		Subject:   in.Subject,
		Message:   in.Message,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.contacts = append(s.contacts, contact)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, map[string]string{
		"message": "message received",
		"id":      contact.ID.String(),
	})
}

func (s *Server) listContacts(w http.ResponseWriter, r *http.Request) {
	page, perPage, offset := pagination(r)

	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, paginate(s.contacts, page, perPage, offset))
}

func (s *Server) toggleContactRead(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.contacts {
		if c.ID.String() == id {
			s.contacts[i].Read = !c.Read
			writeJSON(w, http.StatusOK, s.contacts[i])
			return
		}
	}
	writeError(w, http.StatusNotFound, "contact not found")
}

func (s *Server) deleteContact(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.contacts {
		if c.ID.String() == id {
			s.contacts = append(s.contacts[:i], s.contacts[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeError(w, http.StatusNotFound, "contact not found")
}

// ── Newsletter ───────────────────────────────────────────────

func (s *Server) subscribe(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		writeError(w, http.StatusBadRequest, "email is required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sub := range s.subscribers {
		if sub.Email == req.Email {
			writeError(w, http.StatusConflict, "already subscribed")
			return
		}
	}
	s.subscribers = append(s.subscribers, api.Subscriber{
		ID:           uuid.New(),
		Email:        req.Email,
		Confirmed:    true,
		SubscribedAt: time.Now(),
	})

	writeJSON(w, http.StatusCreated, map[string]string{"message": "subscribed"})
}

func (s *Server) unsubscribe(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Token == "" {
		writeError(w, http.StatusBadRequest, "token is required")
		return
	}

	// Unsubscribe tokens are subscriber IDs here; the double has no mailer.
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sub := range s.subscribers {
		if sub.ID.String() == req.Token {
			now := time.Now()
			s.subscribers[i].UnsubscribedAt = &now
			writeJSON(w, http.StatusOK, map[string]string{"message": "unsubscribed"})
			return
		}
	}
	writeError(w, http.StatusNotFound, "unknown token")
}

func (s *Server) listSubscribers(w http.ResponseWriter, r *http.Request) {
	page, perPage, offset := pagination(r)

	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, paginate(s.subscribers, page, perPage, offset))
}

// ── Admin ────────────────────────────────────────────────────

func (s *Server) stats(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	unread := int64(0)
	for _, c := range s.contacts {
		if !c.Read {
			unread++
		}
	}

	writeJSON(w, http.StatusOK, api.DashboardStats{
		TotalProjects:    int64(len(s.projects)),
		TotalPosts:       int64(len(s.posts)),
		TotalContacts:    int64(len(s.contacts)),
		UnreadContacts:   unread,
		TotalSubscribers: int64(len(s.subscribers)),
	})
}

func (s *Server) patreonCampaign(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.campaign == nil {
		writeJSON(w, http.StatusOK, api.CampaignData{Tiers: []api.TierInfo{}})
		return
	}
	writeJSON(w, http.StatusOK, s.campaign)
}

// ── Helpers ──────────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{
		"error": msg,
		"code":  status,
	})
}

func pagination(r *http.Request) (page, perPage, offset int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	perPage, _ = strconv.Atoi(r.URL.Query().Get("per_page"))
	if perPage < 1 || perPage > maxPerPage {
		perPage = defaultPerPage
	}
	offset = (page - 1) * perPage
	return
}

func paginate[T any](items []T, page, perPage, offset int) api.Paginated[T] {
	total := int64(len(items))

	data := []T{}
	if offset < len(items) {
		end := offset + perPage
		if end > len(items) {
			end = len(items)
		}
		data = append(data, items[offset:end]...)
	}

	return api.Paginated[T]{
		Data:       data,
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: int(math.Ceil(float64(total) / float64(perPage))),
	}
}

package api

import (
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// User is an admin account.
type User struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Project is the backend's authored project entity. Distinct from the merged
// catalog entry: this is what the admin panel edits.
type Project struct {
	ID              uuid.UUID  `json:"id"`
	Slug            string     `json:"slug"`
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	LongDescription *string    `json:"long_description,omitempty"`
	WhyItExists     *string    `json:"why_it_exists,omitempty"`
	Type            string     `json:"type"`
	Status          string     `json:"status"`
	Stack           []string   `json:"stack"`
	Topics          []string   `json:"topics"`
	RepoURL         *string    `json:"repo_url,omitempty"`
	Homepage        *string    `json:"homepage,omitempty"`
	CoverPattern    string     `json:"cover_pattern"`
	CoverColor      *string    `json:"cover_color,omitempty"`
	Featured        bool       `json:"featured"`
	SortOrder       int        `json:"sort_order"`
	Stars           int        `json:"stars"`
	LastUpdated     *time.Time `json:"last_updated,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// ProjectInput carries the writable project fields for create and update.
type ProjectInput struct {
	Slug            string   `json:"slug"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	LongDescription *string  `json:"long_description,omitempty"`
	WhyItExists     *string  `json:"why_it_exists,omitempty"`
	Type            string   `json:"type"`
	Status          string   `json:"status"`
	Stack           []string `json:"stack"`
	Topics          []string `json:"topics"`
	RepoURL         *string  `json:"repo_url,omitempty"`
	Homepage        *string  `json:"homepage,omitempty"`
	CoverPattern    string   `json:"cover_pattern"`
	CoverColor      *string  `json:"cover_color,omitempty"`
	Featured        bool     `json:"featured"`
	SortOrder       int      `json:"sort_order"`
}

// Post is a backend blog post.
type Post struct {
	ID        uuid.UUID `json:"id"`
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Excerpt   string    `json:"excerpt"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	Author    *string   `json:"author,omitempty"`
	Published bool      `json:"published"`
	Date      string    `json:"date"` // YYYY-MM-DD
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PostInput carries the writable post fields for create and update.
type PostInput struct {
	Slug      string   `json:"slug"`
	Title     string   `json:"title"`
	Excerpt   string   `json:"excerpt"`
	Content   string   `json:"content"`
	Tags      []string `json:"tags"`
	Author    *string  `json:"author,omitempty"`
	Published bool     `json:"published"`
	Date      string   `json:"date"`
}

// Contact is a submitted contact-form message.
type Contact struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   *string   `json:"subject,omitempty"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// ContactInput is a contact-form submission.
type ContactInput struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Subject *string `json:"subject,omitempty"`
	Message string  `json:"message"`
}

// Subscriber is a newsletter signup.
type Subscriber struct {
	ID             uuid.UUID  `json:"id"`
	Email          string     `json:"email"`
	Confirmed      bool       `json:"confirmed"`
	SubscribedAt   time.Time  `json:"subscribed_at"`
	UnsubscribedAt *time.Time `json:"unsubscribed_at,omitempty"`
}

// DashboardStats are the aggregate counts on the admin dashboard.
type DashboardStats struct {
	TotalProjects    int64 `json:"total_projects"`
	TotalPosts       int64 `json:"total_posts"`
	TotalContacts    int64 `json:"total_contacts"`
	UnreadContacts   int64 `json:"unread_contacts"`
	TotalSubscribers int64 `json:"total_subscribers"`
}

// Paginated is the uniform envelope every list endpoint returns.
type Paginated[T any] struct {
	Data       []T   `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalPages int   `json:"total_pages"`
}

// PageOptions selects a page of a list endpoint. Zero values take the
// server's defaults.
type PageOptions struct {
	Page    int
	PerPage int
}

func pageQuery(opts PageOptions) string {
	params := url.Values{}
	if opts.Page > 0 {
		params.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.PerPage > 0 {
		params.Set("per_page", strconv.Itoa(opts.PerPage))
	}
	if qs := params.Encode(); qs != "" {
		return "?" + qs
	}
	return ""
}

// StatusMessage is the generic acknowledgement some endpoints return.
type StatusMessage struct {
	Message string `json:"message"`
}

// CampaignData is the tiered-campaign read model (Patreon).
type CampaignData struct {
	Campaign *CampaignInfo `json:"campaign"`
	Tiers    []TierInfo    `json:"tiers"`
	CachedAt *time.Time    `json:"cached_at"`
}

type CampaignInfo struct {
	PatronCount  int    `json:"patron_count"`
	CreationName string `json:"creation_name"`
	URL          string `json:"url"`
}

type TierInfo struct {
	Title       string `json:"title"`
	AmountCents int    `json:"amount_cents"`
	PatronCount int    `json:"patron_count"`
	Description string `json:"description"`
	Published   bool   `json:"published"`
}

package catalog

import "time"

// Status describes where a project sits in its lifecycle.
type Status string

const (
	StatusActive     Status = "active"
	StatusIncubating Status = "incubating"
	StatusArchived   Status = "archived"
)

// Type buckets projects for filtering on the site.
type Type string

const (
	TypeSoftware Type = "software"
	TypeMedia    Type = "media"
	TypeTools    Type = "tools"
)

// CoverPattern names one of the generated cover art patterns.
type CoverPattern string

// CoverPatterns is the fixed rotation used when no override picks a pattern.
var CoverPatterns = []CoverPattern{"circuit", "grid", "waves", "dots", "sigil"}

// coverColors is the fixed rotation used when no override picks a color.
var coverColors = []string{
	"#ff3333",
	"#6633ff",
	"#00ff88",
	"#ffcc00",
	"#00ccff",
	"#e040fb",
	"#ff6600",
	"#00cc99",
}

// RepoRecord is the slice of the GitHub repository payload the catalog reads.
type RepoRecord struct {
	Name        string    `json:"name"`
	FullName    string    `json:"full_name"`
	Description string    `json:"description"`
	HTMLURL     string    `json:"html_url"`
	Homepage    string    `json:"homepage"`
	Topics      []string  `json:"topics"`
	Language    string    `json:"language"`
	Stars       int       `json:"stargazers_count"`
	UpdatedAt   time.Time `json:"updated_at"`
	Archived    bool      `json:"archived"`
	Fork        bool      `json:"fork"`
}

// Override is authored, partial project data keyed by slug. Any field left
// at its zero value falls back to inference from the repository record.
type Override struct {
	Slug            string       `json:"slug,omitempty"`
	Name            string       `json:"name,omitempty"`
	Description     string       `json:"description,omitempty"`
	LongDescription string       `json:"long_description,omitempty"`
	WhyItExists     string       `json:"why_it_exists,omitempty"`
	Status          Status       `json:"status,omitempty"`
	Type            Type         `json:"type,omitempty"`
	Stack           []string     `json:"stack,omitempty"`
	CoverColor      string       `json:"cover_color,omitempty"`
	CoverPattern    CoverPattern `json:"cover_pattern,omitempty"`
	Screenshot      string       `json:"screenshot,omitempty"`
	Featured        bool         `json:"featured,omitempty"`
	Order           *int         `json:"order,omitempty"`
}

// Project is a fully resolved catalog entry, rebuilt on every merge.
type Project struct {
	Slug            string       `json:"slug"`
	Name            string       `json:"name"`
	Description     string       `json:"description"`
	LongDescription string       `json:"long_description,omitempty"`
	WhyItExists     string       `json:"why_it_exists,omitempty"`
	Status          Status       `json:"status"`
	Type            Type         `json:"type"`
	Stack           []string     `json:"stack"`
	Topics          []string     `json:"topics"`
	RepoURL         string       `json:"repo_url"`
	Homepage        string       `json:"homepage,omitempty"`
	LastUpdated     time.Time    `json:"last_updated"`
	Stars           int          `json:"stars"`
	CoverColor      string       `json:"cover_color"`
	CoverPattern    CoverPattern `json:"cover_pattern"`
	Screenshot      string       `json:"screenshot,omitempty"`
	Featured        bool         `json:"featured"`
	Order           int          `json:"order"`
}

package post

import "context"

// ContentLoader lazily loads a post body. An entry with a loader attached is
// published; an entry without one is listed in indexes but not navigable.
type ContentLoader func(ctx context.Context) (string, error)

// Series places an entry in a named, numbered run of posts.
type Series struct {
	Name  string `json:"name"`
	Week  int    `json:"week"` // 1-based
	Total int    `json:"total"`
}

// Entry is one post in the registry.
type Entry struct {
	Slug    string   `json:"slug"`
	Title   string   `json:"title"`
	Date    string   `json:"date"` // YYYY-MM-DD
	Excerpt string   `json:"excerpt"`
	Tags    []string `json:"tags"`
	Author  string   `json:"author,omitempty"`
	Series  *Series  `json:"series,omitempty"`
	Content ContentLoader
}

// Published reports whether the entry has a content loader attached. This is
// the single source of truth for publish state; there is no stored flag.
func (e Entry) Published() bool {
	return e.Content != nil
}

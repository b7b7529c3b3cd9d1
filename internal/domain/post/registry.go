package post

import (
	"errors"
	"fmt"
	"sort"
)

// ErrDuplicateSlug is returned when a registry is defined with two entries
// sharing a slug.
var ErrDuplicateSlug = errors.New("duplicate post slug")

// Registry is an immutable, ordered collection of post entries. Registry
// order is authorial: insertion order is canonical series order, oldest
// first. Entries in the same series must be contiguous for NextInSeries to
// link them; that is the author's responsibility, not enforced here.
type Registry struct {
	entries []Entry
	bySlug  map[string]int
}

// NewRegistry builds a registry from entries in authorial order. Slugs must
// be unique.
func NewRegistry(entries ...Entry) (*Registry, error) {
	bySlug := make(map[string]int, len(entries))
	for i, e := range entries {
		if _, dup := bySlug[e.Slug]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSlug, e.Slug)
		}
		bySlug[e.Slug] = i
	}
	return &Registry{entries: entries, bySlug: bySlug}, nil
}

// All returns every entry in registry order, published or not. Index pages
// use this; navigation uses the published-only views.
func (r *Registry) All() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// ListPublished returns entries with content attached, in registry order.
func (r *Registry) ListPublished() []Entry {
	var out []Entry
	for _, e := range r.entries {
		if e.Published() {
			out = append(out, e)
		}
	}
	return out
}

// FindBySlug returns the published entry with the given slug. An entry that
// exists but has no content reads as not found, so routing treats drafts and
// unknown slugs the same way.
func (r *Registry) FindBySlug(slug string) (Entry, bool) {
	i, ok := r.bySlug[slug]
	if !ok || !r.entries[i].Published() {
		return Entry{}, false
	}
	return r.entries[i], true
}

// Latest returns up to n published entries, newest first.
func (r *Registry) Latest(n int) []Entry {
	published := r.ListPublished()
	// Dates are ISO (YYYY-MM-DD), so lexical order is chronological.
	sort.SliceStable(published, func(i, j int) bool {
		return published[i].Date > published[j].Date
	})
	if n < len(published) {
		published = published[:n]
	}
	return published
}

// NextInSeries returns the entry immediately after slug in registry order,
// provided both belong to the same series. The lookup works on any entry,
// published or not: series linkage is independent of publish state.
func (r *Registry) NextInSeries(slug string) (Entry, bool) {
	i, ok := r.bySlug[slug]
	if !ok {
		return Entry{}, false
	}
	cur := r.entries[i]
	if cur.Series == nil || i+1 >= len(r.entries) {
		return Entry{}, false
	}
	next := r.entries[i+1]
	if next.Series == nil || next.Series.Name != cur.Series.Name {
		return Entry{}, false
	}
	return next, true
}

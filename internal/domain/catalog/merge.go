package catalog

import (
	"log/slog"
	"sort"
	"strings"
	"time"
)

// unorderedRank sorts projects without an explicit order after every project
// that has one.
const unorderedRank = 999

// stalenessWindow is how long a repository can go without a push before it is
// considered incubating rather than active.
const stalenessWindow = 6 // months

var mediaTopics = []string{"media", "video", "audio", "art", "music", "zine"}
var toolTopics = []string{"tool", "cli", "utility", "devtool", "infra"}

// Merger builds the displayable project catalog from repository records and
// the authored override map. Merging is pure: the same records, overrides,
// and clock always produce the same catalog.
type Merger struct {
	overrides map[string]Override
	logger    *slog.Logger
}

// NewMerger creates a Merger over the given override map. A nil map is valid.
func NewMerger(overrides map[string]Override, logger *slog.Logger) *Merger {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Merger{overrides: overrides, logger: logger}
}

// Slugify derives a catalog slug from a repository name: lowercased, runs of
// non-alphanumeric characters collapsed to single hyphens, edges trimmed.
// Slugifying a slug returns it unchanged.
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true // trims leading separators
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// Merge resolves every record against its override and returns the ordered
// catalog. Projects with status "active" sort before all others; within a
// status group explicit order ascends, and input order breaks ties.
func (m *Merger) Merge(records []RepoRecord, now time.Time) []Project {
	seen := make(map[string]struct{}, len(records))
	projects := make([]Project, 0, len(records))

	for idx, rec := range records {
		slug := Slugify(rec.Name)
		if _, dup := seen[slug]; dup {
			// Both entries stay in the catalog; slug-based routing will
			// resolve to whichever the consumer indexes last.
			m.logger.Warn("duplicate project slug", "slug", slug, "repo", rec.FullName)
		}
		seen[slug] = struct{}{}

		o := m.overrides[slug]
		projects = append(projects, m.resolve(slug, rec, o, idx, now))
	}

	sort.SliceStable(projects, func(i, j int) bool {
		iActive := projects[i].Status == StatusActive
		jActive := projects[j].Status == StatusActive
		if iActive != jActive {
			return iActive
		}
		return projects[i].Order < projects[j].Order
	})

	return projects
}

// resolve applies the per-field precedence: override value, then a value
// inferred from the record, then the documented default.
func (m *Merger) resolve(slug string, rec RepoRecord, o Override, idx int, now time.Time) Project {
	order := unorderedRank
	if o.Order != nil {
		order = *o.Order
	}

	return Project{
		Slug:            slug,
		Name:            pick(o.Name, displayName(rec.Name)),
		Description:     pick(o.Description, pick(rec.Description, "No description available.")),
		LongDescription: o.LongDescription,
		WhyItExists:     o.WhyItExists,
		Status:          pick(o.Status, inferStatus(rec, now)),
		Type:            pick(o.Type, inferType(rec.Topics)),
		Stack:           pickSlice(o.Stack, stackFromLanguage(rec.Language)),
		Topics:          rec.Topics,
		RepoURL:         rec.HTMLURL,
		Homepage:        rec.Homepage,
		LastUpdated:     rec.UpdatedAt,
		Stars:           rec.Stars,
		CoverColor:      pick(o.CoverColor, coverColors[idx%len(coverColors)]),
		CoverPattern:    pick(o.CoverPattern, CoverPatterns[idx%len(CoverPatterns)]),
		Screenshot:      o.Screenshot,
		Featured:        o.Featured,
		Order:           order,
	}
}

func pick[T comparable](override, fallback T) T {
	var zero T
	if override != zero {
		return override
	}
	return fallback
}

func pickSlice(override, fallback []string) []string {
	if len(override) > 0 {
		return override
	}
	return fallback
}

func displayName(repoName string) string {
	return strings.NewReplacer("-", " ", "_", " ").Replace(repoName)
}

func stackFromLanguage(language string) []string {
	if language == "" {
		return nil
	}
	return []string{language}
}

func inferType(topics []string) Type {
	for _, t := range topics {
		if contains(mediaTopics, t) {
			return TypeMedia
		}
	}
	for _, t := range topics {
		if contains(toolTopics, t) {
			return TypeTools
		}
	}
	return TypeSoftware
}

func inferStatus(rec RepoRecord, now time.Time) Status {
	if rec.Archived {
		return StatusArchived
	}
	if rec.UpdatedAt.Before(now.AddDate(0, -stalenessWindow, 0)) {
		return StatusIncubating
	}
	return StatusActive
}

func contains(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

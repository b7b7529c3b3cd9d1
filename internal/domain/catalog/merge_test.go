package catalog_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/subculture-collective/subcvlt/internal/domain/catalog"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func record(name string) catalog.RepoRecord {
	return catalog.RepoRecord{
		Name:      name,
		FullName:  "subculture-collective/" + name,
		HTMLURL:   "https://github.com/subculture-collective/" + name,
		UpdatedAt: now.AddDate(0, 0, -7),
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"My Cool Repo!":   "my-cool-repo",
		"subcult-tv":      "subcult-tv",
		"Signal__Noise":   "signal-noise",
		"--weird--name--": "weird-name",
		"UPPER":           "upper",
	}
	for in, want := range cases {
		require.Equal(t, want, catalog.Slugify(in))
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	slug := catalog.Slugify("Dead Letter Drop (v2)")
	require.Equal(t, slug, catalog.Slugify(slug))
}

func TestMergeStatusInference(t *testing.T) {
	m := catalog.NewMerger(nil, nil)

	archived := record("old-thing")
	archived.Archived = true

	stale := record("dusty")
	stale.UpdatedAt = now.AddDate(0, -7, 0)

	fresh := record("fresh")

	projects := m.Merge([]catalog.RepoRecord{archived, stale, fresh}, now)
	byStatus := map[string]catalog.Status{}
	for _, p := range projects {
		byStatus[p.Slug] = p.Status
	}

	require.Equal(t, catalog.StatusArchived, byStatus["old-thing"])
	require.Equal(t, catalog.StatusIncubating, byStatus["dusty"])
	require.Equal(t, catalog.StatusActive, byStatus["fresh"])
}

func TestMergeOverridePrecedence(t *testing.T) {
	rec := record("fresh") // would infer active
	overrides := map[string]catalog.Override{
		"fresh": {Status: catalog.StatusArchived, Name: "Fresh Cuts", Stack: []string{"Zig"}},
	}

	projects := catalog.NewMerger(overrides, nil).Merge([]catalog.RepoRecord{rec}, now)
	require.Len(t, projects, 1)
	require.Equal(t, catalog.StatusArchived, projects[0].Status)
	require.Equal(t, "Fresh Cuts", projects[0].Name)
	require.Equal(t, []string{"Zig"}, projects[0].Stack)
}

func TestMergeTypeInference(t *testing.T) {
	media := record("tape-deck")
	media.Topics = []string{"audio", "retro"}

	tool := record("knife")
	tool.Topics = []string{"cli"}

	plain := record("plain")

	projects := catalog.NewMerger(nil, nil).Merge([]catalog.RepoRecord{media, tool, plain}, now)
	byType := map[string]catalog.Type{}
	for _, p := range projects {
		byType[p.Slug] = p.Type
	}

	require.Equal(t, catalog.TypeMedia, byType["tape-deck"])
	require.Equal(t, catalog.TypeTools, byType["knife"])
	require.Equal(t, catalog.TypeSoftware, byType["plain"])
}

func TestMergeDefaults(t *testing.T) {
	rec := record("bare-repo")
	rec.Language = "Go"

	projects := catalog.NewMerger(nil, nil).Merge([]catalog.RepoRecord{rec}, now)
	p := projects[0]

	require.Equal(t, "bare repo", p.Name)
	require.Equal(t, "No description available.", p.Description)
	require.Equal(t, []string{"Go"}, p.Stack)
	require.Equal(t, "#ff3333", p.CoverColor)
	require.Equal(t, catalog.CoverPatterns[0], p.CoverPattern)
	require.False(t, p.Featured)
}

func TestMergeCoverRotation(t *testing.T) {
	records := make([]catalog.RepoRecord, 7)
	for i := range records {
		records[i] = record(string(rune('a' + i)))
	}

	projects := catalog.NewMerger(nil, nil).Merge(records, now)
	require.Equal(t, catalog.CoverPatterns[1], projects[1].CoverPattern)
	// Pattern rotation wraps after five entries.
	require.Equal(t, catalog.CoverPatterns[0], projects[5].CoverPattern)
	require.Equal(t, catalog.CoverPatterns[1], projects[6].CoverPattern)
}

func TestMergeSortInvariant(t *testing.T) {
	stale := func(name string) catalog.RepoRecord {
		r := record(name)
		r.UpdatedAt = now.AddDate(-1, 0, 0)
		return r
	}
	orderOf := func(n int) *int { return &n }

	records := []catalog.RepoRecord{
		stale("sleepy"),      // incubating, no explicit order
		record("unordered"),  // active, no explicit order
		record("second"),     // active, order 2
		record("first"),      // active, order 1
		stale("sleepy-lead"), // incubating, order 0
	}
	overrides := map[string]catalog.Override{
		"second":      {Order: orderOf(2)},
		"first":       {Order: orderOf(1)},
		"sleepy-lead": {Order: orderOf(0)},
	}

	projects := catalog.NewMerger(overrides, nil).Merge(records, now)

	slugs := make([]string, len(projects))
	for i, p := range projects {
		slugs[i] = p.Slug
	}

	// Active entries lead regardless of explicit order; within each group
	// explicit order ascends and unordered entries sink to the bottom.
	require.Equal(t, []string{"first", "second", "unordered", "sleepy-lead", "sleepy"}, slugs)

	sawInactive := false
	for _, p := range projects {
		if p.Status != catalog.StatusActive {
			sawInactive = true
			continue
		}
		require.False(t, sawInactive, "active project %s after inactive ones", p.Slug)
	}
}

func TestMergeDeterministic(t *testing.T) {
	records := []catalog.RepoRecord{record("a"), record("b"), record("c")}
	m := catalog.NewMerger(nil, nil)

	first := m.Merge(records, now)
	second := m.Merge(records, now)
	require.Equal(t, first, second)
}

func TestMergeDuplicateSlugsRetained(t *testing.T) {
	records := []catalog.RepoRecord{record("Tape Deck"), record("tape-deck")}

	projects := catalog.NewMerger(nil, nil).Merge(records, now)
	require.Len(t, projects, 2)
	require.Equal(t, projects[0].Slug, projects[1].Slug)
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.json")
	data, err := json.Marshal(map[string]catalog.Override{
		"subcult-tv": {Featured: true, Description: "The hub."},
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	overrides, err := catalog.LoadOverrides(path)
	require.NoError(t, err)
	require.True(t, overrides["subcult-tv"].Featured)

	empty, err := catalog.LoadOverrides("")
	require.NoError(t, err)
	require.Empty(t, empty)

	_, err = catalog.LoadOverrides(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

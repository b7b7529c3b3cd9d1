package post

import (
	"context"
	"fmt"

	"github.com/subculture-collective/subcvlt/content"
)

// Default returns the site's post registry. Entries are defined in authorial
// order; content bodies are lazy-loaded from the embedded markdown.
func Default() (*Registry, error) {
	return NewRegistry(
		Entry{
			Slug:  "subcvlt-manifesto",
			Title: "SUBCULT Manifesto",
			Date:  "2026-01-15",
			Excerpt: "We are the signal in the noise. A declaration of intent, " +
				"operational parameters, and the refusal to be optimized.",
			Tags:    []string{"manifesto", "mission", "founding"},
			Author:  "SUBCULT",
			Content: embeddedContent("subcvlt-manifesto"),
		},
		Entry{
			Slug:  "release-log-field-notes",
			Title: "Release Log // Field Notes",
			Date:  "2026-02-01",
			Excerpt: "Changelog fragments from the workshop. What shipped, what " +
				"broke, what we learned in the static.",
			Tags:    []string{"releases", "changelog", "dev"},
			Author:  "SUBCULT",
			Content: embeddedContent("release-log-field-notes"),
		},
		Entry{
			Slug:  "how-we-build",
			Title: "How We Build: Tools, Servers, Rituals",
			Date:  "2026-02-08",
			Excerpt: "Our stack is a séance. Linux boxes, terminal multiplexers, " +
				"self-hosted everything. This is how we work.",
			Tags:    []string{"process", "tools", "infrastructure"},
			Author:  "SUBCULT",
			Content: embeddedContent("how-we-build"),
		},
	)
}

func embeddedContent(slug string) ContentLoader {
	return func(_ context.Context) (string, error) {
		data, err := content.FS.ReadFile("posts/" + slug + ".md")
		if err != nil {
			return "", fmt.Errorf("load post %s: %w", slug, err)
		}
		return string(data), nil
	}
}

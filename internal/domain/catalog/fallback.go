package catalog

import "time"

// FallbackCatalog returns the static project list shown when the GitHub
// listing is unavailable and no cached copy exists.
func FallbackCatalog() []Project {
	now := time.Now()
	return []Project{
		{
			Slug:         "subcult-tv",
			Name:         "subcult.tv",
			Description:  "The hub. This very site.",
			Status:       StatusActive,
			Type:         TypeSoftware,
			Stack:        []string{"TypeScript", "React", "Go"},
			Topics:       []string{"website", "portfolio"},
			RepoURL:      "https://github.com/subculture-collective/subcult-tv",
			LastUpdated:  now,
			CoverColor:   "#ff3333",
			CoverPattern: "circuit",
			Featured:     true,
			Order:        0,
		},
		{
			Slug:         "signal-noise",
			Name:         "Signal // Noise",
			Description:  "Audio processing toolkit for lo-fi and glitch aesthetics. Feed it clean audio, get back static.",
			Status:       StatusIncubating,
			Type:         TypeTools,
			Stack:        []string{"Rust", "WASM"},
			Topics:       []string{"audio", "glitch", "tool"},
			RepoURL:      "https://github.com/subculture-collective",
			LastUpdated:  now,
			CoverColor:   "#00ff88",
			CoverPattern: "waves",
			Featured:     true,
			Order:        1,
		},
		{
			Slug:         "dead-letter-drop",
			Name:         "Dead Letter Drop",
			Description:  "Ephemeral encrypted messaging. Messages self-destruct. No accounts. No logs. No masters.",
			Status:       StatusActive,
			Type:         TypeSoftware,
			Stack:        []string{"Go", "TypeScript"},
			Topics:       []string{"privacy", "encryption", "messaging"},
			RepoURL:      "https://github.com/subculture-collective",
			LastUpdated:  now,
			CoverColor:   "#6633ff",
			CoverPattern: "sigil",
			Featured:     true,
			Order:        2,
		},
		{
			Slug:         "phosphor-grid",
			Name:         "Phosphor Grid",
			Description:  "Retro terminal UI component library. CRT phosphor glow, scanlines, amber/green themes.",
			Status:       StatusActive,
			Type:         TypeTools,
			Stack:        []string{"TypeScript", "CSS"},
			Topics:       []string{"ui", "retro", "terminal", "components"},
			RepoURL:      "https://github.com/subculture-collective",
			LastUpdated:  now,
			CoverColor:   "#ffcc00",
			CoverPattern: "grid",
			Featured:     true,
			Order:        3,
		},
		{
			Slug:         "zine-press",
			Name:         "Zine Press",
			Description:  "Markdown-to-zine generator. Outputs print-ready PDFs with punk layouts, torn edges, and halftone.",
			Status:       StatusIncubating,
			Type:         TypeMedia,
			Stack:        []string{"Node.js", "Puppeteer"},
			Topics:       []string{"zine", "publishing", "pdf"},
			RepoURL:      "https://github.com/subculture-collective",
			LastUpdated:  now,
			CoverColor:   "#e040fb",
			CoverPattern: "dots",
			Featured:     true,
			Order:        4,
		},
		{
			Slug:         "blackout-radio",
			Name:         "Blackout Radio",
			Description:  "Self-hosted internet radio with auto-DJ. Streams from your library. No algorithms. No ads.",
			Status:       StatusIncubating,
			Type:         TypeMedia,
			Stack:        []string{"Go", "Icecast"},
			Topics:       []string{"radio", "streaming", "self-hosted"},
			RepoURL:      "https://github.com/subculture-collective",
			LastUpdated:  now,
			CoverColor:   "#00ccff",
			CoverPattern: "circuit",
			Order:        5,
		},
	}
}

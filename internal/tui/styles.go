package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
const (
	colorPrimary   = "#FF3333"
	colorSuccess   = "#04B575"
	colorError     = "#FF5555"
	colorInfo      = "#626262"
	colorHighlight = "#FAFAFA"
	colorBorder    = "#8A0303"
)

// High-contrast variants keep everything near full white/black so the
// console stays readable on washed-out terminals.
const (
	contrastPrimary = "#FFFFFF"
	contrastInfo    = "#CCCCCC"
	contrastBorder  = "#FFFFFF"
)

// Styles for the console, built once per contrast setting.
type Styles struct {
	Title     lipgloss.Style
	Status    lipgloss.Style
	Error     lipgloss.Style
	Info      lipgloss.Style
	Box       lipgloss.Style
	Highlight lipgloss.Style
}

func NewStyles(highContrast bool) Styles {
	primary, info, border := colorPrimary, colorInfo, colorBorder
	if highContrast {
		primary, info, border = contrastPrimary, contrastInfo, contrastBorder
	}

	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(primary)).
			MarginTop(1).
			MarginBottom(1),

		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorSuccess)),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorError)),

		Info: lipgloss.NewStyle().
			Foreground(lipgloss.Color(info)),

		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(border)).
			Padding(1, 2),

		Highlight: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorHighlight)).
			Background(lipgloss.Color(primary)).
			Padding(0, 1),
	}
}

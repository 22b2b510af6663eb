package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is a named color palette.
type Theme struct {
	Name string

	Surface string // header and footer background

	SelectionBg   string
	SelectionText string

	Border      string
	BorderFocus string

	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
	Info    string
}

// Styles holds the Lip Gloss styles derived from a theme. Rendering code asks
// for a fresh set per frame; building them is cheap.
type Styles struct {
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	DangerText  lipgloss.Style
	InfoText    lipgloss.Style

	Header   lipgloss.Style
	Footer   lipgloss.Style
	Logo     lipgloss.Style
	Selected lipgloss.Style

	Card      lipgloss.Style
	CardFocus lipgloss.Style
}

// Styles derives the style set for this theme.
func (t Theme) Styles() Styles {
	fg := func(c string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}
	bar := func() lipgloss.Style {
		return lipgloss.NewStyle().Background(lipgloss.Color(t.Surface)).Padding(0, 1)
	}
	card := func(border string) lipgloss.Style {
		return lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(border)).
			Padding(0, 1)
	}

	return Styles{
		Text:        fg(t.Text),
		MutedText:   fg(t.Muted),
		FaintText:   fg(t.Faint),
		AccentText:  fg(t.Accent),
		SuccessText: fg(t.Success).Bold(true),
		DangerText:  fg(t.Danger).Bold(true),
		InfoText:    fg(t.Info),

		Header: bar().Foreground(lipgloss.Color(t.Text)),
		Footer: bar().Foreground(lipgloss.Color(t.Muted)),
		Logo:   fg(t.Warning).Bold(true),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),

		Card:      card(t.Border),
		CardFocus: card(t.BorderFocus),
	}
}

// themes lists the available palettes in cycle order.
var themes = []Theme{
	{
		// Nightfox: https://github.com/EdenEast/nightfox.nvim
		Name:          "Nightfox",
		Surface:       "#192330",
		SelectionBg:   "#2b3b51",
		SelectionText: "#cdcecf",
		Border:        "#39506d",
		BorderFocus:   "#719cd6",
		Text:          "#cdcecf",
		Muted:         "#738091",
		Faint:         "#71839b",
		Accent:        "#719cd6",
		Success:       "#81b29a",
		Warning:       "#dbc074",
		Danger:        "#c94f6d",
		Info:          "#63cdcf",
	},
	{
		// Kanagawa: https://github.com/rebelot/kanagawa.nvim
		Name:          "Kanagawa",
		Surface:       "#1F1F28",
		SelectionBg:   "#2D4F67",
		SelectionText: "#DCD7BA",
		Border:        "#54546D",
		BorderFocus:   "#7E9CD8",
		Text:          "#DCD7BA",
		Muted:         "#C8C093",
		Faint:         "#727169",
		Accent:        "#7E9CD8",
		Success:       "#98BB6C",
		Warning:       "#E6C384",
		Danger:        "#E46876",
		Info:          "#7FB4CA",
	},
	{
		// Tailwind slate/sky: https://tailwindcss.com/docs/colors
		Name:          "Slate",
		Surface:       "#0f172a",
		SelectionBg:   "#0284c7",
		SelectionText: "#f8fafc",
		Border:        "#334155",
		BorderFocus:   "#38bdf8",
		Text:          "#f1f5f9",
		Muted:         "#94a3b8",
		Faint:         "#64748b",
		Accent:        "#38bdf8",
		Success:       "#22c55e",
		Warning:       "#f59e0b",
		Danger:        "#ef4444",
		Info:          "#06b6d4",
	},
}

// GetTheme returns the named theme, or the first one when unknown.
func GetTheme(name string) Theme {
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}
	return themes[0]
}

// NextTheme returns the name that follows current in the cycle.
func NextTheme(current string) string {
	for i, t := range themes {
		if t.Name == current {
			return themes[(i+1)%len(themes)].Name
		}
	}
	return themes[0].Name
}

package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type helpItem struct {
	key  string
	desc string
}

type helpSection struct {
	title string
	items []helpItem
}

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	sections := []helpSection{
		{
			title: "Navigation",
			items: []helpItem{
				{"j/k", "Move selection"},
				{"h/l", "Previous/next page"},
				{"g/G", "First/last product"},
				{"enter", "Product details"},
				{"esc", "Back / clear search"},
			},
		},
		{
			title: "Filters",
			items: []helpItem{
				{"/", "Search titles"},
				{"c", "Cycle category"},
				{"p", "Cycle minimum price"},
				{"F", "Favorites only"},
				{"v", "Grid/list view"},
				{"x", "Clear filters"},
			},
		},
		{
			title: "Products",
			items: []helpItem{
				{"f/space", "Toggle favorite"},
				{"n", "New product"},
				{"e", "Edit product"},
				{"d", "Delete product"},
				{"u", "Undo last change"},
				{"r", "Reload catalog"},
			},
		},
		{
			title: "General",
			items: []helpItem{
				{"T", "Cycle theme"},
				{"?", "Toggle help"},
				{"q/ctrl+c", "Quit"},
			},
		},
	}

	var b strings.Builder

	title := styles.Text.Bold(true).Render("Keyboard Shortcuts")
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	for i, section := range sections {
		b.WriteString(styles.AccentText.Bold(true).Render(section.title))
		b.WriteString("\n")

		for _, item := range section.items {
			keyStyle := lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.theme.Warning)).
				Width(12)
			b.WriteString(keyStyle.Render(item.key))
			b.WriteString(styles.Text.Render(item.desc))
			b.WriteString("\n")
		}

		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("Press any key to close"))
	return b.String()
}

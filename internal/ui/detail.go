package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleDetailKey processes keyboard input for the detail view.
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.currentView = ViewCatalog
		return m, nil

	case key.Matches(msg, m.keys.Favorite):
		m.store.ToggleFavorite(m.detailID)
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		if p, ok := m.store.Get(m.detailID); ok {
			m.openEditForm(p)
			return m, nil
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		m.deleteProduct(m.detailID)
		m.currentView = ViewCatalog
		return m, nil
	}
	return m, nil
}

// renderDetail renders the full product view.
func (m Model) renderDetail() string {
	styles := m.theme.Styles()

	p, ok := m.store.Get(m.detailID)
	if !ok {
		var b strings.Builder
		b.WriteString(m.renderHeader())
		b.WriteString("\n")
		b.WriteString(styles.DangerText.Render("Product not found"))
		b.WriteString("\n\n")
		b.WriteString(styles.MutedText.Render("It may have been deleted. Press esc to go back."))
		return b.String()
	}

	width := min(m.width-6, 72)

	heart := ""
	if m.snapshot.IsFavorite(p.ID) {
		heart = "  " + styles.DangerText.Bold(false).Render("♥ favorite")
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	b.WriteString(styles.Text.Bold(true).Render(truncate(p.Title, width)))
	b.WriteString("  ")
	b.WriteString(styles.AccentText.Render(formatPrice(p.Price)))
	b.WriteString(heart)
	b.WriteString("\n\n")

	b.WriteString(styles.MutedText.Render(fmt.Sprintf("%s · %s · id %d", p.Category, ratingLabel(p.Rating), p.ID)))
	b.WriteString("\n")
	if p.Image != "" {
		b.WriteString(styles.FaintText.Render(truncate(p.Image, width)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.Text.Render(wrap(p.Description, width)))
	b.WriteString("\n\n")

	b.WriteString(m.renderNotice())
	b.WriteString("\n")
	hints := []string{"f like", "e edit", "d delete", "u undo", "esc back"}
	b.WriteString(styles.Footer.Width(m.width).Render(strings.Join(hints, "  ")))
	return b.String()
}

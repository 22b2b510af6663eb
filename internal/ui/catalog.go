package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ytraddan/storefront/internal/catalog"
	"github.com/ytraddan/storefront/internal/fakestore"
)

// renderCatalog renders the main catalog page.
func (m Model) renderCatalog() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	switch m.snapshot.Phase {
	case catalog.PhaseFailed:
		b.WriteString(m.renderFetchError())
	case catalog.PhaseIdle, catalog.PhaseLoading:
		b.WriteString(m.renderSkeleton())
	default:
		b.WriteString(m.renderFilterBar())
		b.WriteString("\n")
		if len(m.view.Page) == 0 {
			b.WriteString(m.renderEmpty())
		} else if m.filters.ViewMode == catalog.ViewGrid {
			b.WriteString(m.renderGrid())
		} else {
			b.WriteString(m.renderList())
		}
		b.WriteString("\n")
		b.WriteString(m.renderPagination())
	}

	b.WriteString("\n")
	b.WriteString(m.renderNotice())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())

	return b.String()
}

// renderHeader renders the title bar.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	parts := []string{
		styles.Logo.Render("storefront"),
		styles.MutedText.Render(fmt.Sprintf("%d products", len(m.snapshot.Products))),
	}
	if n := len(m.snapshot.Favorites); n > 0 {
		parts = append(parts, styles.DangerText.Bold(false).Render(fmt.Sprintf("♥ %d", n)))
	}
	if m.snapshot.Phase == catalog.PhaseLoading {
		parts = append(parts, styles.InfoText.Render("refreshing..."))
	}
	parts = append(parts, styles.FaintText.Render(m.theme.Name))

	return styles.Header.Width(m.width).Render(strings.Join(parts, "  "))
}

// renderFilterBar renders the search box and the active filter summary.
func (m Model) renderFilterBar() string {
	styles := m.theme.Styles()

	categoryLabel := m.filters.Category
	count := m.view.CategoryCounts[m.filters.Category]
	category := fmt.Sprintf("category:%s (%d)", categoryLabel, count)

	segments := []string{
		m.search.View(),
		styles.AccentText.Render(category),
	}
	if m.filters.MinPrice > 0 {
		segments = append(segments, styles.AccentText.Render(fmt.Sprintf("min %s", formatPrice(m.filters.MinPrice))))
	}
	if m.filters.FavoritesOnly {
		segments = append(segments, styles.DangerText.Bold(false).Render("♥ only"))
	}
	segments = append(segments, styles.FaintText.Render("view:"+string(m.filters.ViewMode)))
	if m.filters.Active() {
		segments = append(segments, styles.FaintText.Render("x clears"))
	}

	return strings.Join(segments, "  ")
}

// renderGrid lays the page out as bordered cards, several per row.
func (m Model) renderGrid() string {
	cols := m.gridColumns()
	cardWidth := m.width/cols - 4
	if cardWidth < 16 {
		cardWidth = 16
	}

	var rows []string
	for start := 0; start < len(m.view.Page); start += cols {
		end := start + cols
		if end > len(m.view.Page) {
			end = len(m.view.Page)
		}
		var cards []string
		for i := start; i < end; i++ {
			cards = append(cards, m.renderCard(m.view.Page[i], i == m.selected, cardWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderCard renders one grid cell.
func (m Model) renderCard(p fakestore.Product, selected bool, width int) string {
	styles := m.theme.Styles()

	title := truncate(p.Title, width)
	titleLine := styles.Text.Bold(true).Render(title)
	if selected {
		titleLine = styles.Selected.Bold(true).Render(title)
	}

	price := styles.AccentText.Render(formatPrice(p.Price))
	heart := " "
	if m.snapshot.IsFavorite(p.ID) {
		heart = styles.DangerText.Bold(false).Render("♥")
	}

	lines := []string{
		titleLine,
		price + " " + heart,
		styles.MutedText.Render(truncate(p.Category, width)),
		styles.FaintText.Render(ratingLabel(p.Rating)),
	}

	card := styles.Card
	if selected {
		card = styles.CardFocus
	}
	return card.Width(width).Render(strings.Join(lines, "\n"))
}

// renderList lays the page out as two-line rows.
func (m Model) renderList() string {
	styles := m.theme.Styles()

	var b strings.Builder
	for i, p := range m.view.Page {
		gutter := "  "
		titleStyle := styles.Text.Bold(true)
		if i == m.selected {
			gutter = styles.AccentText.Render("▌ ")
			titleStyle = styles.Selected.Bold(true)
		}

		heart := ""
		if m.snapshot.IsFavorite(p.ID) {
			heart = " " + styles.DangerText.Bold(false).Render("♥")
		}

		b.WriteString(gutter)
		b.WriteString(titleStyle.Render(truncate(p.Title, m.width-24)))
		b.WriteString("  ")
		b.WriteString(styles.AccentText.Render(formatPrice(p.Price)))
		b.WriteString(heart)
		b.WriteString("\n")

		b.WriteString("  ")
		detail := fmt.Sprintf("%s · %s", p.Category, ratingLabel(p.Rating))
		if p.Description != "" {
			detail = truncate(p.Description, m.width-len(detail)-8) + " · " + detail
		}
		b.WriteString(styles.FaintText.Render(detail))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderPagination renders the page indicator.
func (m Model) renderPagination() string {
	styles := m.theme.Styles()

	label := fmt.Sprintf("Page %d/%d · %d matching", m.view.CurrentPage, m.view.TotalPages, m.view.Total)
	if m.view.TotalPages > 1 {
		label += " · h/l to flip"
	}
	return styles.MutedText.Render(label)
}

// renderEmpty renders the no-results placeholder.
func (m Model) renderEmpty() string {
	styles := m.theme.Styles()
	if m.filters.Active() {
		return styles.MutedText.Render("No products match the current filters. Press x to clear them.")
	}
	return styles.MutedText.Render("The catalog is empty. Press n to create a product.")
}

// renderSkeleton renders the loading placeholder, one ghost row per slot on
// the eventual page.
func (m Model) renderSkeleton() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.MutedText.Render("Loading products..."))
	b.WriteString("\n")
	ghost := strings.Repeat("░", min(m.width-4, 48))
	for i := 0; i < m.itemsPerPage(); i++ {
		b.WriteString(styles.FaintText.Render(ghost))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderFetchError renders the blocking failure view.
func (m Model) renderFetchError() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.DangerText.Render("Failed to load products"))
	b.WriteString("\n")
	b.WriteString(styles.Text.Render(m.snapshot.FetchErr))
	b.WriteString("\n\n")
	b.WriteString(styles.MutedText.Render("Press r to retry."))
	return b.String()
}

// renderNotice renders the transient status line.
func (m Model) renderNotice() string {
	if !m.notice.active() {
		return ""
	}
	styles := m.theme.Styles()
	if m.notice.isErr {
		return styles.DangerText.Render(m.notice.text)
	}
	return styles.SuccessText.Render(m.notice.text)
}

// renderCommandBar renders the footer hints.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles()

	hints := []string{
		"/ search", "c category", "p price", "F favorites", "v view",
		"f like", "n new", "e edit", "d delete", "r reload", "? help", "q quit",
	}
	return styles.Footer.Width(m.width).Render(strings.Join(hints, "  "))
}

// gridColumns picks the grid column count from the terminal width:
// 2 narrow, 3 medium, 4 wide.
func (m Model) gridColumns() int {
	switch {
	case m.width >= 120:
		return 4
	case m.width >= 80:
		return 3
	default:
		return 2
	}
}

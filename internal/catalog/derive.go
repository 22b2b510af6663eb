package catalog

import (
	"strings"

	"github.com/ytraddan/storefront/internal/fakestore"
)

// View is the derived, render-ready slice of the catalog.
type View struct {
	// Page is the visible window of the filtered set, in store order.
	Page []fakestore.Product
	// CurrentPage is the effective page after clamping against TotalPages.
	// Callers feed it back into Filters when the visible set shrank.
	CurrentPage int
	// TotalPages is at least 1; an empty result is still "page 1 of nothing".
	TotalPages int
	// Total is the size of the filtered set.
	Total int
	// Categories lists every distinct category of the full collection, in
	// first-seen order.
	Categories []string
	// CategoryCounts maps each category to the number of matching products
	// under all filters except the category itself. CategoryAll maps to the
	// size of that pre-category set.
	CategoryCounts map[string]int
}

// Derive computes the visible product page and its aggregates from raw state.
// It is pure: identical inputs always produce identical output, and the
// snapshot is not modified.
//
// Stage order matters. Category counts are taken after the favorites, search
// and price stages but before the category stage, so the dropdown shows how
// many products each category would yield under the other active filters.
func Derive(snap Snapshot, filters Filters, perPage int) View {
	if perPage < 1 {
		perPage = 1
	}

	pre := make([]fakestore.Product, 0, len(snap.Products))
	term := strings.ToLower(filters.SearchTerm)
	for _, p := range snap.Products {
		if filters.FavoritesOnly && !snap.Favorites[p.ID] {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(p.Title), term) {
			continue
		}
		if p.Price < filters.MinPrice {
			continue
		}
		pre = append(pre, p)
	}

	categories := distinctCategories(snap.Products)
	counts := make(map[string]int, len(categories)+1)
	for _, c := range categories {
		counts[c] = 0
	}
	for _, p := range pre {
		counts[p.Category]++
	}
	counts[CategoryAll] = len(pre)

	filtered := pre
	if filters.Category != CategoryAll {
		filtered = filtered[:0:0]
		for _, p := range pre {
			if p.Category == filters.Category {
				filtered = append(filtered, p)
			}
		}
	}

	totalPages := (len(filtered) + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}

	page := filters.CurrentPage
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * perPage
	end := start + perPage
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	return View{
		Page:           filtered[start:end],
		CurrentPage:    page,
		TotalPages:     totalPages,
		Total:          len(filtered),
		Categories:     categories,
		CategoryCounts: counts,
	}
}

func distinctCategories(products []fakestore.Product) []string {
	seen := make(map[string]struct{}, len(products))
	var categories []string
	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	return categories
}

package catalog

// ViewMode selects how the catalog lays out the visible page.
type ViewMode string

const (
	ViewGrid ViewMode = "grid"
	ViewList ViewMode = "list"
)

// CategoryAll is the synthetic category matching every product.
const CategoryAll = "all"

// Filters holds the user-chosen view parameters. It is a value type; every
// transition returns a new value. Changing any dimension other than the page
// or the view mode resets CurrentPage to 1 so the user is never stranded past
// the freshly narrowed result set.
type Filters struct {
	SearchTerm    string
	Category      string
	MinPrice      float64
	FavoritesOnly bool
	ViewMode      ViewMode
	CurrentPage   int
}

// DefaultFilters returns the initial filter state.
func DefaultFilters() Filters {
	return Filters{
		Category:    CategoryAll,
		ViewMode:    ViewGrid,
		CurrentPage: 1,
	}
}

// WithSearchTerm sets the title search text and resets the page.
func (f Filters) WithSearchTerm(term string) Filters {
	f.SearchTerm = term
	f.CurrentPage = 1
	return f
}

// WithCategory sets the category (or CategoryAll) and resets the page.
func (f Filters) WithCategory(category string) Filters {
	if category == "" {
		category = CategoryAll
	}
	f.Category = category
	f.CurrentPage = 1
	return f
}

// WithMinPrice sets the minimum price and resets the page. Negative values
// clamp to zero.
func (f Filters) WithMinPrice(min float64) Filters {
	if min < 0 {
		min = 0
	}
	f.MinPrice = min
	f.CurrentPage = 1
	return f
}

// WithFavoritesOnly sets the favorites-only flag and resets the page.
func (f Filters) WithFavoritesOnly(on bool) Filters {
	f.FavoritesOnly = on
	f.CurrentPage = 1
	return f
}

// WithViewMode switches the layout. The page is kept: the visible set does
// not change, only its presentation.
func (f Filters) WithViewMode(mode ViewMode) Filters {
	f.ViewMode = mode
	return f
}

// WithPage moves to the given page. Values below 1 clamp to 1; clamping
// against the page count happens in Derive, where the count is known.
func (f Filters) WithPage(page int) Filters {
	if page < 1 {
		page = 1
	}
	f.CurrentPage = page
	return f
}

// Clear resets every dimension to its default except the view mode.
func (f Filters) Clear() Filters {
	cleared := DefaultFilters()
	cleared.ViewMode = f.ViewMode
	return cleared
}

// Active reports whether any narrowing dimension differs from its default.
func (f Filters) Active() bool {
	return f.SearchTerm != "" || f.Category != CategoryAll || f.MinPrice > 0 || f.FavoritesOnly
}

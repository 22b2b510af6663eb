package catalog

import "testing"

func TestFilters_TransitionsResetPage(t *testing.T) {
	base := DefaultFilters().WithPage(4)

	cases := []struct {
		name string
		next Filters
	}{
		{"search", base.WithSearchTerm("shoe")},
		{"category", base.WithCategory("electronics")},
		{"minPrice", base.WithMinPrice(25)},
		{"favoritesOnly", base.WithFavoritesOnly(true)},
	}
	for _, tc := range cases {
		if tc.next.CurrentPage != 1 {
			t.Fatalf("%s: CurrentPage = %d, want reset to 1", tc.name, tc.next.CurrentPage)
		}
	}
}

func TestFilters_PageAndViewModeKeepPage(t *testing.T) {
	f := DefaultFilters().WithPage(3)

	if got := f.WithViewMode(ViewList); got.CurrentPage != 3 {
		t.Fatalf("WithViewMode reset the page to %d", got.CurrentPage)
	}
	if got := f.WithPage(0); got.CurrentPage != 1 {
		t.Fatalf("WithPage(0) = %d, want clamp to 1", got.CurrentPage)
	}
}

func TestFilters_ClearKeepsViewMode(t *testing.T) {
	f := DefaultFilters().
		WithSearchTerm("hat").
		WithCategory("clothing").
		WithMinPrice(50).
		WithFavoritesOnly(true).
		WithViewMode(ViewList).
		WithPage(2)

	cleared := f.Clear()
	want := DefaultFilters()
	want.ViewMode = ViewList
	if cleared != want {
		t.Fatalf("Clear() = %#v, want %#v", cleared, want)
	}
}

func TestFilters_Defaults(t *testing.T) {
	f := DefaultFilters()
	if f.SearchTerm != "" || f.Category != CategoryAll || f.MinPrice != 0 ||
		f.FavoritesOnly || f.ViewMode != ViewGrid || f.CurrentPage != 1 {
		t.Fatalf("DefaultFilters() = %#v", f)
	}
	if f.Active() {
		t.Fatal("default filters should not count as active")
	}
	if !f.WithMinPrice(10).Active() {
		t.Fatal("min price should count as active")
	}

	if got := f.WithMinPrice(-3); got.MinPrice != 0 {
		t.Fatalf("WithMinPrice(-3) = %v, want clamp to 0", got.MinPrice)
	}
	if got := f.WithCategory(""); got.Category != CategoryAll {
		t.Fatalf("WithCategory(\"\") = %q, want %q", got.Category, CategoryAll)
	}
}

package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ytraddan/storefront/internal/catalog"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	if p := Load(filepath.Join(t.TempDir(), "prefs.toml")); p != Default() {
		t.Fatalf("Load = %+v, want defaults", p)
	}
}

func TestLoad_CorruptFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte("theme = ["), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if p := Load(path); p != Default() {
		t.Fatalf("Load = %+v, want defaults", p)
	}
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.toml")
	want := Prefs{
		Theme:         "Kanagawa",
		SearchTerm:    "shoe",
		Category:      "clothing",
		MinPrice:      25,
		FavoritesOnly: true,
		ViewMode:      "list",
	}

	if err := Save(path, want); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	got := Load(path)
	if got != want {
		t.Fatalf("round trip = %+v, want %+v", got, want)
	}
}

func TestLoad_NormalizesBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte(`
theme = "  "
category = ""
min_price = -3.5
view_mode = "mosaic"
`), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p := Load(path)
	if p.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", p.Theme, defaultTheme)
	}
	if p.Category != catalog.CategoryAll {
		t.Fatalf("Category = %q, want %q", p.Category, catalog.CategoryAll)
	}
	if p.MinPrice != 0 {
		t.Fatalf("MinPrice = %v, want 0", p.MinPrice)
	}
	if p.ViewMode != string(catalog.ViewGrid) {
		t.Fatalf("ViewMode = %q, want grid", p.ViewMode)
	}
}

func TestFiltersRoundTrip(t *testing.T) {
	f := catalog.DefaultFilters().
		WithSearchTerm("lamp").
		WithCategory("decor").
		WithMinPrice(10).
		WithFavoritesOnly(true).
		WithViewMode(catalog.ViewList)

	p := FromFilters(f, "Slate")
	if p.Theme != "Slate" || p.SearchTerm != "lamp" || !p.FavoritesOnly {
		t.Fatalf("FromFilters = %+v", p)
	}

	back := p.Filters()
	if back.SearchTerm != f.SearchTerm || back.Category != f.Category ||
		back.MinPrice != f.MinPrice || back.FavoritesOnly != f.FavoritesOnly ||
		back.ViewMode != f.ViewMode {
		t.Fatalf("Filters() = %+v, want %+v", back, f)
	}
	// Pagination is session state, never persisted.
	if back.CurrentPage != 1 {
		t.Fatalf("CurrentPage = %d, want 1", back.CurrentPage)
	}
}

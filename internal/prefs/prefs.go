// Package prefs handles storefront user preferences persistence.
// Preferences are stored in ~/.config/storefront/prefs.toml.
package prefs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/ytraddan/storefront/internal/catalog"
)

// Prefs holds the persisted filter and view preferences. They survive across
// sessions and seed the initial filter state on startup.
type Prefs struct {
	Theme         string  `toml:"theme"`
	SearchTerm    string  `toml:"search_term"`
	Category      string  `toml:"category"`
	MinPrice      float64 `toml:"min_price"`
	FavoritesOnly bool    `toml:"favorites_only"`
	ViewMode      string  `toml:"view_mode"`
}

const (
	defaultPrefsPath = "~/.config/storefront/prefs.toml"
	defaultTheme     = "Nightfox"
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Default returns the preferences used when nothing is persisted yet.
func Default() Prefs {
	return Prefs{
		Theme:    defaultTheme,
		Category: catalog.CategoryAll,
		ViewMode: string(catalog.ViewGrid),
	}
}

// Load reads preferences from the given path. Preferences are a convenience,
// so Load never fails: a missing, unreadable or corrupt file degrades to
// defaults.
func Load(path string) Prefs {
	resolved, err := resolvePath(path)
	if err != nil {
		return Default()
	}

	file, err := os.Open(resolved)
	if err != nil {
		return Default()
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Default()
	}

	prefs := Default()
	if err := toml.Unmarshal(bytes, &prefs); err != nil {
		return Default()
	}

	return prefs.normalized()
}

// Save writes preferences to the given path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p.normalized())
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}

	return nil
}

// Filters converts the persisted values into an initial filter state.
func (p Prefs) Filters() catalog.Filters {
	f := catalog.DefaultFilters()
	f.SearchTerm = p.SearchTerm
	f.Category = p.Category
	f.MinPrice = p.MinPrice
	f.FavoritesOnly = p.FavoritesOnly
	if p.ViewMode == string(catalog.ViewList) {
		f.ViewMode = catalog.ViewList
	}
	return f
}

// FromFilters captures the persistable dimensions of a filter state.
func FromFilters(f catalog.Filters, theme string) Prefs {
	return Prefs{
		Theme:         theme,
		SearchTerm:    f.SearchTerm,
		Category:      f.Category,
		MinPrice:      f.MinPrice,
		FavoritesOnly: f.FavoritesOnly,
		ViewMode:      string(f.ViewMode),
	}
}

func (p Prefs) normalized() Prefs {
	if strings.TrimSpace(p.Theme) == "" {
		p.Theme = defaultTheme
	}
	if strings.TrimSpace(p.Category) == "" {
		p.Category = catalog.CategoryAll
	}
	if p.MinPrice < 0 {
		p.MinPrice = 0
	}
	if p.ViewMode != string(catalog.ViewList) {
		p.ViewMode = string(catalog.ViewGrid)
	}
	return p
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultPrefsPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}

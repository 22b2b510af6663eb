package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Escape     key.Binding

	// Navigation
	Up       key.Binding
	Down     key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Open     key.Binding

	// Filters
	Search        key.Binding
	Category      key.Binding
	Price         key.Binding
	FavoritesOnly key.Binding
	ClearFilters  key.Binding
	ViewMode      key.Binding

	// Catalog actions
	Favorite key.Binding
	New      key.Binding
	Edit     key.Binding
	Delete   key.Binding
	Undo     key.Binding
	Reload   key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Back / dismiss"),
		),

		// Navigation
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "Previous product"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "Next product"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "Previous page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "Next page"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "First product"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Last product"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Product details"),
		),

		// Filters
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search titles"),
		),
		Category: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Cycle category"),
		),
		Price: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "Cycle min price"),
		),
		FavoritesOnly: key.NewBinding(
			key.WithKeys("F"),
			key.WithHelp("F", "Favorites only"),
		),
		ClearFilters: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Clear filters"),
		),
		ViewMode: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "Grid/list view"),
		),

		// Catalog actions
		Favorite: key.NewBinding(
			key.WithKeys("f", " "),
			key.WithHelp("f", "Toggle favorite"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "New product"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "Edit product"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "Delete product"),
		),
		Undo: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "Undo last change"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Reload catalog"),
		),
	}
}

// Package ui provides the terminal user interface for storefront.
//
// # Architecture Overview
//
// The UI is built on Bubble Tea's Model/Update/View loop with Lip Gloss
// styling and Bubbles text inputs. All catalog state lives in the catalog
// package; the UI keeps a Snapshot plus the current Filters and re-derives
// the visible page whenever either changes.
//
// # Package Structure
//
// The package is organized into focused modules:
//
//   - app.go: Model definition, Update loop, key dispatch, and the Run function
//   - catalog.go: Catalog screen rendering (grid, list, filter bar, pagination)
//   - detail.go: Single-product detail screen
//   - form.go: Create/edit form with focus cycling and validation
//   - notice.go: Transient status line, including the undo window
//   - help.go: Key binding overlay
//   - theme.go: Color themes and derived Lip Gloss styles
//   - keys.go: Key binding definitions
//   - helpers.go: Text truncation, wrapping, and price/rating formatting
//
// # Views
//
// Three screens share the Model:
//
//   - Catalog: Paginated product grid or list with the filter bar
//   - Detail: Full product with wrapped description
//   - Form: Create or edit a product field by field
//
// # Event Flow
//
//  1. Run() starts the Bubble Tea program in the alternate screen
//  2. A watch command blocks on the store's change channel and delivers
//     storeChangedMsg; the handler re-snapshots, re-derives, and re-arms
//  3. An events command does the same for coordinator mutation outcomes
//  4. Key messages mutate Filters or dispatch coordinator calls
//  5. A once-a-second tick expires stale notices
//
// Mutations are optimistic: the store change arrives immediately after a
// keypress, and a later mutationEventMsg only shows up when the API call
// failed and the change was rolled back.
//
// # Key Bindings
//
//   - /: Search by title (Enter/ESC to leave the input)
//   - c: Cycle category, p: Cycle minimum price, F: Favorites only
//   - v: Toggle grid/list, x: Clear filters
//   - h/l: Previous/next page, j/k: Move cursor, g/G: First/last item
//   - Enter: Open detail, f or Space: Toggle favorite
//   - n: New product, e: Edit, d: Delete, u: Undo last change
//   - r: Reload from the API, T: Cycle theme
//   - ?: Help overlay, q or Ctrl+C: Quit
//
// # Persistence
//
// Filter dimensions and the theme are saved to the preferences file on quit
// and restored on the next start. The current page is session state and is
// never persisted.
package ui

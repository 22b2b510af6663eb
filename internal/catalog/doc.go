// Package catalog provides thread-safe catalog state and the derivation and
// mutation machinery built on top of it.
//
// # Overview
//
// This package is the heart of storefront. It holds the product collection,
// the favorites set, and the fetch lifecycle in a thread-safe Store; it
// derives the visible product page from that state with a pure function; and
// it coordinates optimistic create, update and delete mutations against the
// remote API with rollback on failure.
//
// # Architecture
//
// State flows one way:
//
//	Coordinator (writes):           UI (reads):
//	┌──────────────────┐           ┌──────────────────┐
//	│ FetchAll/Create/ │           │ store.Snapshot() │
//	│ Update/Delete    │──────────→│       ↓          │
//	│       ↓          │  (mutex)  │ Derive(snapshot, │
//	│ store mutations  │           │   filters, n)    │
//	└──────────────────┘           └──────────────────┘
//	         │                              ↑
//	         └──── Watch() signal ──────────┘
//
// The Store mediates between the coordinator's goroutines and the UI loop,
// ensuring atomic updates, no data races, and immutable snapshots. The UI
// never reads live state; it derives everything it renders from a Snapshot.
//
// # Core Types
//
// Store:
//   - Thread-safe container for products, favorites, and the fetch phase
//   - Uses sync.RWMutex for concurrent access
//   - Watch() hands out coalesced change-notification channels
//
// Snapshot:
//   - Immutable view of state at a point in time, with defensive copies
//   - Carries a Version counter that increments on every change
//
// Filters:
//   - Value type holding search term, category, minimum price, favorites
//     toggle, view mode and current page
//   - WithX methods return a modified copy; every change to a narrowing
//     dimension resets the page to 1
//
// Coordinator:
//   - Applies mutations to the Store synchronously, then settles them
//     against the remote API in the background
//   - Emits an Event when a settlement fails, after rolling back
//
// Command:
//   - A reversible mutation: Apply performs the optimistic write,
//     Compensate restores the captured prior state exactly
//   - Undo is Compensate; it never touches the API
//
// # Fetch Lifecycle
//
// The collection moves through four phases:
//
//	Idle ──BeginFetch──> Loading ──Hydrate──> Loaded
//	                        │
//	                        └───────Fail────> Failed ──BeginFetch──> Loading
//
// A failed fetch keeps its error message until the next BeginFetch clears
// it. There is no automatic retry; calling FetchAll again is the only
// recovery path.
//
// # Derivation
//
// Derive applies the filter stages in a fixed order: favorites, search
// (case-insensitive substring on the title), minimum price, then category,
// then pagination. Category counts are taken between the price and category
// stages, so the category selector can show how many products each category
// would yield under the other active filters. Store order is preserved
// throughout; locally created products sit at the front.
//
// Derive is pure. Identical inputs produce identical output and the snapshot
// is never modified, which makes the whole render path trivially testable.
//
// # Optimistic Mutations
//
// Create, Update and Delete all follow the same shape:
//
//  1. Validate and capture whatever prior state compensation needs
//  2. Apply the local write (the UI sees it immediately)
//  3. Issue the API call on a background goroutine
//  4. On API failure, run Compensate and emit an Event
//
// Compensation restores captured state exactly: a rolled-back update brings
// back the prior attributes with the rating untouched, a rolled-back delete
// re-inserts the full prior product, id and rating included.
//
// # Identifier Allocation
//
// Locally created products get a client-assigned id derived from the current
// millisecond timestamp, bumped past the previous allocation so rapid
// creates never collide. The id is kept even after the API acknowledges the
// create, since the backing API does not persist writes.
//
// # Testing Considerations
//
// NewStore() returns a ready-to-use store. Derive needs no store at all,
// just a Snapshot value. The Coordinator takes the API as an interface, so
// tests drive it with an in-memory fake and a zerolog.Nop() logger.
package catalog

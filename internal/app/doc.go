// Package app provides the orchestration layer for the storefront application.
//
// # Overview
//
// This package wires together configuration, the product API client, the
// catalog store, the mutation coordinator, and the UI to create the complete
// storefront TUI experience. It serves as the composition root where all
// dependencies are initialized and connected.
//
// # Architecture
//
// The app package follows a simple initialization pattern:
//
//  1. Load configuration from ~/.config/storefront/config.toml
//  2. Open the diagnostic log file and build the zerolog logger
//  3. Load persisted user preferences (theme, filters, view mode)
//  4. Initialize the HTTP client for the product API
//  5. Create the catalog.Store and catalog.Coordinator
//  6. Kick off the initial product fetch in the background
//  7. Start the TUI and block until the user exits or the context cancels
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()            Read storefront config
//	       ├─────> prefs.Load()             Restore saved filters and theme
//	       ├─────> fakestore.NewClient()    Create HTTP client
//	       ├─────> catalog.NewStore()       Shared catalog state
//	       ├─────> catalog.NewCoordinator() Optimistic mutation pipeline
//	       ├─────> go coordinator.FetchAll() Initial load, off the UI thread
//	       └─────> ui.Run()                 Start TUI (blocks)
//
// The UI never waits for the network at startup: the fetch runs in a
// background goroutine and the store's watch channel tells the UI when data
// arrives, so the skeleton screen appears immediately.
//
// # Error Handling
//
// The app package distinguishes between fatal and recoverable errors:
//
// Fatal errors (returned from Run):
//   - Configuration file present but invalid
//   - API client initialization failure (malformed base URL)
//   - UI startup failure
//
// Recoverable errors (logged and surfaced in the UI, never fatal):
//   - The initial product fetch failing (the catalog shows a retry screen)
//   - Mutation API calls failing (the optimistic write is rolled back)
//   - The preferences file being missing or corrupt (defaults are used)
//
// # Logging
//
// Diagnostics go to the configured log file through zerolog; the terminal
// itself belongs to the TUI. When the log file cannot be opened the logger
// writes to io.Discard and the application carries on without diagnostics.
package app

// Package fakestore provides an HTTP client for a fakestoreapi.com-compatible
// product API.
//
// # Overview
//
// This package defines the API client for the remote product catalog. It
// handles HTTP communication, JSON serialization, and the type-safe
// representation of products and their editable attributes.
//
// # Architecture
//
// The package is split into two files:
//
//   - client.go: HTTP client implementation and request/response handling
//   - types.go: Product, Rating and Draft structures mirroring the API schema
//
// # API Endpoints
//
// The client covers the five product operations:
//
//   - GET    /products       Full product collection
//   - GET    /products/{id}  Single product
//   - POST   /products       Create from a Draft
//   - PUT    /products/{id}  Replace editable attributes
//   - DELETE /products/{id}  Remove a product
//
// # Request Handling
//
// All requests:
//   - Use context for cancellation and timeout control
//   - Set Accept: application/json and a storefront User-Agent header
//   - Have a 10-second timeout via the http.Client
//   - Return wrapped errors with context about what failed
//
// Example error messages:
//   - "execute request: dial tcp: connection refused"
//   - "api GET /products: HTTP 500"
//   - "decode response: unexpected end of JSON input"
//
// # Write Semantics
//
// The public fakestoreapi.com endpoint acknowledges writes without
// persisting them: a POST echoes a product back with a server-chosen id, a
// PUT or DELETE answers 200 regardless. The client reports whatever the
// server returned and leaves reconciliation to the caller; the catalog
// coordinator keeps its client-assigned ids and treats an acknowledgement as
// success.
//
// # Drafts
//
// Draft carries the editable attributes of a product, everything except ID
// and Rating. Create and update calls take a Draft, validate it locally
// (non-blank title, non-negative price) and reject it before any network
// traffic when invalid.
//
// # Thread Safety
//
// The Client struct is safe for concurrent use. The underlying http.Client
// handles connection pooling and concurrent requests internally.
//
// # Testing Considerations
//
// The API interface abstracts the five operations, so packages consuming
// this client substitute an in-memory fake in tests. The client itself is
// tested against httptest.Server.
package fakestore

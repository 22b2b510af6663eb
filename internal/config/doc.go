// Package config handles loading and parsing storefront configuration files.
//
// # Overview
//
// This package reads storefront's TOML configuration to discover the product
// API endpoint, an optional fixed page size, and the diagnostic log file
// location. Everything is optional; a missing config file yields a fully
// usable default configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/storefront/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//  5. Apply environment overrides last
//
// # Default Values
//
//   - Config file: ~/.config/storefront/config.toml
//   - API endpoint: https://fakestoreapi.com
//   - Items per page: 0 (the UI picks from the terminal width)
//   - Log file: ~/.local/state/storefront/storefront.log
//
// # TOML Format
//
// Example config.toml:
//
//	api_base_url = "https://fakestoreapi.com"
//	items_per_page = 6
//	log_file = "~/.local/state/storefront/storefront.log"
//
// All fields are optional. Tilde expansion is performed automatically.
//
// # Environment Overrides
//
// STOREFRONT_API_URL overrides api_base_url when set. The main package loads
// a .env file before Load runs, so the override works from either the process
// environment or a local .env.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - Unreadable config files (permissions, I/O errors)
//   - Malformed TOML syntax
//
// Load does NOT error for:
//   - Missing config file (uses defaults)
//   - Empty or missing fields (uses defaults)
package config

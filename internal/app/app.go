package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/ytraddan/storefront/internal/catalog"
	"github.com/ytraddan/storefront/internal/config"
	"github.com/ytraddan/storefront/internal/fakestore"
	"github.com/ytraddan/storefront/internal/prefs"
	"github.com/ytraddan/storefront/internal/ui"
)

// Options configure the storefront application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/storefront/prefs.toml
}

// Run boots the storefront TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, closeLog := newLogger(cfg.LogFile)
	defer closeLog()

	userPrefs := prefs.Load(opts.PrefsPath)

	client, err := fakestore.NewClient(cfg.APIBaseURL)
	if err != nil {
		return fmt.Errorf("init api client: %w", err)
	}

	store := catalog.NewStore()
	coordinator := catalog.NewCoordinator(store, client, log)

	// Kick off the initial load; the UI renders the loading state until the
	// store transitions.
	go func() {
		_ = coordinator.FetchAll(ctx)
	}()

	uiOpts := ui.Options{
		Context:     ctx,
		Store:       store,
		Coordinator: coordinator,
		Config:      &cfg,
		Filters:     userPrefs.Filters(),
		ThemeName:   userPrefs.Theme,
		PrefsPath:   opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}

// newLogger opens the diagnostics log file. The terminal belongs to the UI,
// so on any failure logging is discarded rather than written to stderr.
func newLogger(path string) (zerolog.Logger, func()) {
	if path == "" {
		return zerolog.New(io.Discard), func() {}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.New(io.Discard), func() {}
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.New(io.Discard), func() {}
	}
	log := zerolog.New(file).With().Timestamp().Logger()
	return log, func() { _ = file.Close() }
}

package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the fields storefront reads at startup.
type Config struct {
	// APIBaseURL is the product API endpoint.
	APIBaseURL string
	// ItemsPerPage pins the page size. Zero lets the UI pick one from the
	// terminal width.
	ItemsPerPage int
	// LogFile receives diagnostics; the terminal itself belongs to the UI.
	LogFile string
}

const (
	defaultConfigPath = "~/.config/storefront/config.toml"
	defaultBaseURL    = "https://fakestoreapi.com"
	defaultLogFile    = "~/.local/state/storefront/storefront.log"

	// envBaseURL overrides api_base_url when set, e.g. from a .env file.
	envBaseURL = "STOREFRONT_API_URL"
)

// Load locates and parses the storefront config, falling back to defaults
// when missing. A missing config file is not an error.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{APIBaseURL: defaultBaseURL, LogFile: mustExpand(defaultLogFile)}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			applyEnv(&cfg)
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIBaseURL   string `toml:"api_base_url"`
		ItemsPerPage int    `toml:"items_per_page"`
		LogFile      string `toml:"log_file"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if base := strings.TrimSpace(raw.APIBaseURL); base != "" {
		cfg.APIBaseURL = base
	}
	if raw.ItemsPerPage > 0 {
		cfg.ItemsPerPage = raw.ItemsPerPage
	}
	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if base := strings.TrimSpace(os.Getenv(envBaseURL)); base != "" {
		cfg.APIBaseURL = base
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
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

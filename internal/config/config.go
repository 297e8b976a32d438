package config

import (
	"embed"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

// Config controls what the reader fetches. The display preference is not
// configured here; it lives in the preference store.
type Config struct {
	Window    string `yaml:"window"` // how far back to search, e.g. "90d"
	Limit     int    `yaml:"limit"`  // max stories per fetch
	Source    string `yaml:"source"` // "algolia" or "rss"
	SearchURL string `yaml:"search_url,omitempty"`
	FeedURL   string `yaml:"feed_url,omitempty"`
}

// WindowDuration parses the window, supporting "Nd" day syntax. Falls back
// to 90 days on anything unparseable.
func (c *Config) WindowDuration() time.Duration {
	const fallback = 90 * 24 * time.Hour
	if c.Window == "" {
		return fallback
	}
	if len(c.Window) > 1 && c.Window[len(c.Window)-1] == 'd' {
		var days int
		if _, err := fmt.Sscanf(c.Window, "%dd", &days); err == nil {
			return time.Duration(days) * 24 * time.Hour
		}
	}
	d, err := time.ParseDuration(c.Window)
	if err != nil {
		return fallback
	}
	return d
}

// GetLimit returns the story cap, defaulting to 30.
func (c *Config) GetLimit() int {
	if c.Limit <= 0 {
		return 30
	}
	return c.Limit
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "calmhn", "config.yaml")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

func Load(path string) (*Config, error) {
	defaults, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Write defaults to config path on first run
			if err := writeDefaults(path); err != nil {
				// Non-fatal: just use embedded defaults
				return defaults, nil
			}
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Source == "" {
		cfg.Source = defaults.Source
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

func validate(cfg *Config) error {
	if cfg.Source != "algolia" && cfg.Source != "rss" {
		return fmt.Errorf("unknown source %q (valid: algolia, rss)", cfg.Source)
	}
	if cfg.Limit < 0 {
		return fmt.Errorf("limit must not be negative, got %d", cfg.Limit)
	}
	for _, endpoint := range []struct{ name, raw string }{
		{"search_url", cfg.SearchURL},
		{"feed_url", cfg.FeedURL},
	} {
		if endpoint.raw == "" {
			continue
		}
		u, err := url.Parse(endpoint.raw)
		if err != nil {
			return fmt.Errorf("%s: invalid url: %w", endpoint.name, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("%s: url scheme must be http or https, got %q", endpoint.name, u.Scheme)
		}
	}
	return nil
}

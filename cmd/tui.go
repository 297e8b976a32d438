package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/githubnext/calmhn/internal/config"
	"github.com/githubnext/calmhn/internal/hn"
	"github.com/githubnext/calmhn/internal/prefs"
	"github.com/githubnext/calmhn/internal/tui"
)

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	store, err := prefs.Open(prefs.DefaultPath())
	if err != nil {
		return fmt.Errorf("opening preference store: %w", err)
	}
	defer store.Close()

	mode, err := prefs.Resolve(store, flagCVD)
	if err != nil {
		return fmt.Errorf("resolving display mode: %w", err)
	}

	fetcher, err := buildFetcher(cfg)
	if err != nil {
		return err
	}

	return tui.Run(tui.RunOpts{
		Fetcher: fetcher,
		Store:   store,
		Mode:    mode,
	})
}

// buildFetcher picks the configured backend, applying --window/--limit
// overrides.
func buildFetcher(cfg *config.Config) (hn.Fetcher, error) {
	window := cfg.WindowDuration()
	if flagWindow != "" {
		d, err := parseWindow(flagWindow)
		if err != nil {
			return nil, fmt.Errorf("invalid --window value: %w", err)
		}
		window = d
	}

	limit := cfg.GetLimit()
	if flagLimit > 0 {
		limit = flagLimit
	}

	switch cfg.Source {
	case "rss":
		return hn.NewRSSFetcher(cfg.FeedURL, window, limit), nil
	default:
		return hn.NewClient(cfg.SearchURL, window, limit), nil
	}
}

func parseWindow(s string) (time.Duration, error) {
	if len(s) > 1 && s[len(s)-1] == 'd' {
		var days int
		if _, err := fmt.Sscanf(s, "%dd", &days); err == nil {
			return time.Duration(days) * 24 * time.Hour, nil
		}
	}
	return time.ParseDuration(s)
}

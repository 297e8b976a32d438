package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/githubnext/calmhn/internal/config"
	"github.com/githubnext/calmhn/internal/story"
)

var topCmd = &cobra.Command{
	Use:   "top",
	Short: "Print the current top stories and exit",
	Long:  "Fetch the ranked story list once and print it to stdout — the calm view without the TUI.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		fetcher, err := buildFetcher(cfg)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		hits, err := fetcher.TopStories(ctx)
		if err != nil {
			return fmt.Errorf("fetching stories: %w", err)
		}

		printStories(cmd.OutOrStdout(), story.FromRemote(hits), time.Now())
		return nil
	},
}

func printStories(w io.Writer, stories []story.Story, now time.Time) {
	if len(stories) == 0 {
		fmt.Fprintln(w, "No stories found.")
		return
	}
	for i, s := range stories {
		fmt.Fprintf(w, "%2d. %s\n", i+1, s.Title)

		meta := []string{fmt.Sprintf("%d points", s.Points)}
		if s.Comments != nil {
			meta = append(meta, fmt.Sprintf("%d comments", *s.Comments))
		}
		meta = append(meta, story.RelativeTime(s.Time, now))
		if d := story.Domain(s.URL); d != "" {
			meta = append(meta, d)
		}
		fmt.Fprintf(w, "    %s\n", strings.Join(meta, " · "))
		fmt.Fprintf(w, "    %s\n", s.Link())
	}
}

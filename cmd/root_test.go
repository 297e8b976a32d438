package cmd

import (
	"strings"
	"testing"
	"time"

	"github.com/githubnext/calmhn/internal/story"
)

func TestParseWindow(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
		err   bool
	}{
		{"90d", 90 * 24 * time.Hour, false},
		{"1d", 24 * time.Hour, false},
		{"24h", 24 * time.Hour, false},
		{"30m", 30 * time.Minute, false},
		{"invalid", 0, true},
		{"", 0, true},
		{"d", 0, true},
	}

	for _, tt := range tests {
		got, err := parseWindow(tt.input)
		if tt.err {
			if err == nil {
				t.Errorf("parseWindow(%q): expected error, got %v", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseWindow(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseWindow(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestCVDFlagOnlyOnRoot(t *testing.T) {
	if rootCmd.Flags().Lookup("cvd") == nil {
		t.Error("expected --cvd on the root command")
	}
	if rootCmd.PersistentFlags().Lookup("cvd") != nil {
		t.Error("--cvd should not be persistent")
	}
	if topCmd.InheritedFlags().Lookup("cvd") != nil {
		t.Error("top should not inherit --cvd; only the reader resolves it")
	}
}

func TestPrintStories(t *testing.T) {
	now := time.Now()
	comments := 4
	stories := []story.Story{
		{ID: 2, Title: "Winner", URL: "https://www.example.com/a", Points: 50, Time: now.Unix() - 3600, Comments: &comments},
		{ID: 3, Title: "Runner-up", Points: 20, Time: now.Unix()},
	}

	var b strings.Builder
	printStories(&b, stories, now)
	out := b.String()

	iWinner := strings.Index(out, " 1. Winner")
	iRunner := strings.Index(out, " 2. Runner-up")
	if iWinner == -1 || iRunner == -1 || iWinner > iRunner {
		t.Fatalf("expected ranked output, got:\n%s", out)
	}
	for _, want := range []string{"50 points", "4 comments", "1 hour ago", "example.com", "https://news.ycombinator.com/item?id=3"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintStoriesEmpty(t *testing.T) {
	var b strings.Builder
	printStories(&b, nil, time.Now())
	if !strings.Contains(b.String(), "No stories found.") {
		t.Errorf("expected empty message, got:\n%s", b.String())
	}
}

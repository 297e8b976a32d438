package tui

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/githubnext/calmhn/internal/prefs"
	"github.com/githubnext/calmhn/internal/story"
)

func intPtr(n int) *int { return &n }

func TestTruncateStr(t *testing.T) {
	tests := []struct {
		input string
		n     int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello world", 8, "hello..."},
		{"abc", 3, "abc"},
		{"abcd", 3, "abc"},
		{"", 5, ""},
		{"test", 0, ""},
	}
	for _, tt := range tests {
		got := truncateStr(tt.input, tt.n)
		if got != tt.want {
			t.Errorf("truncateStr(%q, %d) = %q, want %q", tt.input, tt.n, got, tt.want)
		}
	}
}

func TestRenderItemShowsRankAndMeta(t *testing.T) {
	now := time.Now()
	s := story.Story{
		ID:       1,
		Title:    "A story",
		URL:      "https://www.example.com/post",
		Points:   42,
		Author:   "dan",
		Time:     now.Unix() - 7200,
		Comments: intPtr(9),
	}

	out := renderItem(s, 3, false, 80, now, newTheme(prefs.ModeUnset))

	for _, want := range []string{" 3.", "A story", "↗", "42 points", "9 comments", "2 hours ago", "example.com", "by dan"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered item missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "www.example.com") {
		t.Errorf("domain should strip www.:\n%s", out)
	}
}

func TestRenderItemSelfPost(t *testing.T) {
	now := time.Now()
	s := story.Story{ID: 2, Title: "Ask HN: Things", Points: 5, Time: now.Unix()}

	out := renderItem(s, 1, false, 80, now, newTheme(prefs.ModeUnset))

	if strings.Contains(out, "↗") {
		t.Errorf("self post should not carry the external-link glyph:\n%s", out)
	}
	if strings.Contains(out, "comments") {
		t.Errorf("undefined comment count should not render:\n%s", out)
	}
}

func TestRenderStoriesEmpty(t *testing.T) {
	out := renderStories(nil, 0, 20, 80, time.Now(), newTheme(prefs.ModeUnset))
	if !strings.Contains(out, "No stories found") {
		t.Errorf("expected empty message, got:\n%s", out)
	}
}

func TestRenderStoriesWindowsAroundCursor(t *testing.T) {
	now := time.Now()
	var stories []story.Story
	for i := 0; i < 30; i++ {
		stories = append(stories, story.Story{
			ID:     i + 1,
			Title:  "Story " + strconv.Itoa(i+1),
			Points: 30 - i,
			Time:   now.Unix(),
		})
	}

	// Height for 3 visible items; cursor at the end should scroll there.
	out := renderStories(stories, 29, 9, 80, now, newTheme(prefs.ModeUnset))
	if !strings.Contains(out, "30.") {
		t.Errorf("expected last item visible when cursor is at the end:\n%s", out)
	}
	if strings.Contains(out, " 1. ") {
		t.Errorf("expected first item scrolled out of view:\n%s", out)
	}
}

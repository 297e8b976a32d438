package story

import (
	"testing"
	"time"

	"github.com/githubnext/calmhn/internal/hn"
)

func intPtr(n int) *int { return &n }

func TestFromRemoteFiltersAndMaps(t *testing.T) {
	hits := []hn.Story{
		{ObjectID: "1", Title: "Kept", URL: "https://example.com/a", Points: 12, Author: "alice", CreatedAtI: 1700000000, NumComments: intPtr(3)},
		{ObjectID: "2", Title: "", Points: 50},          // no title
		{ObjectID: "3", Title: "Zero score", Points: 0}, // zero score
		{ObjectID: "nope", Title: "Bad ID", Points: 7},  // unparseable ID
		{ObjectID: "5", Title: "Self post", Points: 4},  // no URL, no comments
	}

	got := FromRemote(hits)
	if len(got) != 2 {
		t.Fatalf("expected 2 stories, got %d", len(got))
	}

	s := got[0]
	if s.ID != 1 {
		t.Errorf("ID = %d, want 1", s.ID)
	}
	if s.Title != "Kept" || s.URL != "https://example.com/a" || s.Points != 12 {
		t.Errorf("fields did not round-trip: %+v", s)
	}
	if s.Author != "alice" || s.Time != 1700000000 {
		t.Errorf("author/time did not round-trip: %+v", s)
	}
	if s.Comments == nil || *s.Comments != 3 {
		t.Errorf("comments did not round-trip: %+v", s.Comments)
	}
	if got[1].Comments != nil {
		t.Errorf("expected nil comments for story without them")
	}
}

func TestFromRemoteSortsByScoreDescending(t *testing.T) {
	hits := []hn.Story{
		{ObjectID: "1", Title: "five", Points: 5},
		{ObjectID: "2", Title: "fifty", Points: 50},
		{ObjectID: "3", Title: "twenty", Points: 20},
	}
	got := FromRemote(hits)
	want := []int{50, 20, 5}
	for i, p := range want {
		if got[i].Points != p {
			t.Errorf("position %d: points = %d, want %d", i, got[i].Points, p)
		}
	}
}

func TestFromRemoteStableOnTies(t *testing.T) {
	hits := []hn.Story{
		{ObjectID: "10", Title: "first", Points: 8},
		{ObjectID: "11", Title: "second", Points: 8},
		{ObjectID: "12", Title: "third", Points: 8},
	}
	got := FromRemote(hits)
	if got[0].ID != 10 || got[1].ID != 11 || got[2].ID != 12 {
		t.Errorf("tie order not preserved: %v, %v, %v", got[0].ID, got[1].ID, got[2].ID)
	}
}

func TestFromRemoteKeepsNegativeScores(t *testing.T) {
	// The zero-score drop is a truthiness quirk, not a positivity check.
	hits := []hn.Story{{ObjectID: "1", Title: "odd", Points: -1}}
	if got := FromRemote(hits); len(got) != 1 {
		t.Errorf("expected negative score to pass the filter, got %d stories", len(got))
	}
}

func TestDomain(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"https://www.example.com/x", "example.com"},
		{"https://blog.example.org/post", "blog.example.org"},
		{"http://example.com", "example.com"},
		{"not a url", ""},
		{"", ""},
		{"://bad", ""},
	}
	for _, tt := range tests {
		if got := Domain(tt.input); got != tt.want {
			t.Errorf("Domain(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestRelativeTime(t *testing.T) {
	now := time.Now()
	tests := []struct {
		unix int64
		want string
	}{
		{now.Unix(), "just now"},
		{now.Unix() - 3600, "1 hour ago"},
		{now.Unix() - 7200, "2 hours ago"},
		{now.Unix() - 23*3600, "23 hours ago"},
		{now.Unix() - 86400, "1 day ago"},
		{now.Unix() - 172800, "2 days ago"},
	}
	for _, tt := range tests {
		if got := RelativeTime(tt.unix, now); got != tt.want {
			t.Errorf("RelativeTime(now-%ds) = %q, want %q", now.Unix()-tt.unix, got, tt.want)
		}
	}
}

func TestLinkFallsBackToPermalink(t *testing.T) {
	withURL := Story{ID: 42, URL: "https://example.com/story"}
	if withURL.Link() != "https://example.com/story" {
		t.Errorf("Link() = %q, want story URL", withURL.Link())
	}

	selfPost := Story{ID: 42}
	want := "https://news.ycombinator.com/item?id=42"
	if selfPost.Link() != want {
		t.Errorf("Link() = %q, want %q", selfPost.Link(), want)
	}
	if selfPost.Permalink() != want {
		t.Errorf("Permalink() = %q, want %q", selfPost.Permalink(), want)
	}
}

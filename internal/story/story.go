// Package story shapes raw API records into the ranked list the reader
// displays.
package story

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/githubnext/calmhn/internal/hn"
)

// Story is a display-ready record: non-empty title, nonzero score,
// numeric ID.
type Story struct {
	ID       int
	Title    string
	URL      string
	Points   int
	Author   string
	Time     int64
	Comments *int
}

// FromRemote filters and re-sorts raw hits. Records with an empty title or
// a zero score are dropped (zero, not negative: upstream treats the score
// as a truthiness check, and we keep that behavior). Records whose object
// ID is not an integer are dropped as well since every discussion link
// needs one. The result is ordered by points descending; ties keep the
// API's order.
func FromRemote(hits []hn.Story) []Story {
	out := make([]Story, 0, len(hits))
	for _, h := range hits {
		if h.Title == "" || h.Points == 0 {
			continue
		}
		id, err := strconv.Atoi(h.ObjectID)
		if err != nil {
			continue
		}
		out = append(out, Story{
			ID:       id,
			Title:    h.Title,
			URL:      h.URL,
			Points:   h.Points,
			Author:   h.Author,
			Time:     h.CreatedAtI,
			Comments: h.NumComments,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Points > out[j].Points
	})
	return out
}

// CommentsURL returns the discussion page for an item ID.
func CommentsURL(id int) string {
	return fmt.Sprintf("https://news.ycombinator.com/item?id=%d", id)
}

// Permalink is the story's discussion page.
func (s Story) Permalink() string {
	return CommentsURL(s.ID)
}

// Link is the story's own URL, falling back to the discussion page for
// self posts.
func (s Story) Link() string {
	if s.URL != "" {
		return s.URL
	}
	return s.Permalink()
}

// RelativeTime renders a story timestamp at hour/day granularity: anything
// under an hour is "just now", then whole hours, then whole days (floor).
func RelativeTime(unix int64, now time.Time) string {
	hours := int(now.Sub(time.Unix(unix, 0)).Hours())
	switch {
	case hours < 1:
		return "just now"
	case hours == 1:
		return "1 hour ago"
	case hours < 24:
		return fmt.Sprintf("%d hours ago", hours)
	}
	days := hours / 24
	if days == 1 {
		return "1 day ago"
	}
	return fmt.Sprintf("%d days ago", days)
}

// Domain extracts a display hostname from a story URL, stripping a leading
// "www.". Returns "" for absent or unparseable URLs.
func Domain(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return ""
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}

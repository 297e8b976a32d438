package hn

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

// DefaultFeedURL is the hnrss.org front-page feed.
const DefaultFeedURL = "https://hnrss.org/frontpage"

// RSSFetcher reads the front page from hnrss.org and reshapes items into
// the same Story records the search API yields. hnrss embeds points,
// comment counts and the discussion link in each item's description.
type RSSFetcher struct {
	feedURL string
	window  time.Duration
	limit   int
	parser  *gofeed.Parser
}

func NewRSSFetcher(feedURL string, window time.Duration, limit int) *RSSFetcher {
	if feedURL == "" {
		feedURL = DefaultFeedURL
	}
	return &RSSFetcher{
		feedURL: feedURL,
		window:  window,
		limit:   limit,
		parser:  gofeed.NewParser(),
	}
}

var (
	pointsRe   = regexp.MustCompile(`Points:\s*(\d+)`)
	commentsRe = regexp.MustCompile(`#\s*Comments:\s*(\d+)`)
	itemIDRe   = regexp.MustCompile(`item\?id=(\d+)`)
)

func (f *RSSFetcher) TopStories(ctx context.Context) ([]Story, error) {
	feed, err := f.parser.ParseURLWithContext(f.feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching front page feed: %w", err)
	}

	cutoff := time.Now().Add(-f.window)
	stories := make([]Story, 0, len(feed.Items))
	for _, item := range feed.Items {
		if f.limit > 0 && len(stories) >= f.limit {
			break
		}
		if item.PublishedParsed != nil && item.PublishedParsed.Before(cutoff) {
			continue
		}
		s, ok := storyFromItem(item)
		if !ok {
			continue
		}
		stories = append(stories, s)
	}
	return stories, nil
}

// storyFromItem maps one hnrss entry onto the API record shape. Items
// without a recognizable discussion link are skipped.
func storyFromItem(item *gofeed.Item) (Story, bool) {
	id := firstMatch(itemIDRe, item.GUID)
	if id == "" {
		id = firstMatch(itemIDRe, item.Description)
	}
	if id == "" {
		return Story{}, false
	}

	s := Story{
		ObjectID: id,
		Title:    strings.TrimSpace(item.Title),
	}

	// Self posts link back to the discussion page; leave those with no
	// external URL, matching the search API.
	if item.Link != "" && !strings.Contains(item.Link, "news.ycombinator.com/item") {
		s.URL = item.Link
	}

	if p := firstMatch(pointsRe, item.Description); p != "" {
		s.Points, _ = strconv.Atoi(p)
	}
	if c := firstMatch(commentsRe, item.Description); c != "" {
		n, err := strconv.Atoi(c)
		if err == nil {
			s.NumComments = &n
		}
	}

	if item.DublinCoreExt != nil && len(item.DublinCoreExt.Creator) > 0 {
		s.Author = item.DublinCoreExt.Creator[0]
	} else if item.Author != nil {
		s.Author = item.Author.Name
	}

	if item.PublishedParsed != nil {
		s.CreatedAtI = item.PublishedParsed.Unix()
	}
	return s, true
}

func firstMatch(re *regexp.Regexp, s string) string {
	m := re.FindStringSubmatch(s)
	if len(m) < 2 {
		return ""
	}
	return m[1]
}

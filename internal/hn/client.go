// Package hn fetches recent Hacker News stories, either from the Algolia
// search API or from the hnrss.org front-page feed.
package hn

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// DefaultSearchURL is the Algolia HN search endpoint.
const DefaultSearchURL = "https://hn.algolia.com/api/v1/search"

// Story is a story record as the upstream API returns it. The object ID is
// a string on the wire; num_comments may be null.
type Story struct {
	ObjectID    string `json:"objectID"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Points      int    `json:"points"`
	Author      string `json:"author"`
	CreatedAtI  int64  `json:"created_at_i"`
	NumComments *int   `json:"num_comments"`
}

// Fetcher produces recent stories from some HN-shaped backend.
type Fetcher interface {
	TopStories(ctx context.Context) ([]Story, error)
}

// Client fetches stories from the Algolia search API. One GET per call,
// no retries: a failed fetch surfaces as a single error.
type Client struct {
	baseURL string
	window  time.Duration
	limit   int
	client  *http.Client
}

// NewClient returns a Client querying baseURL (DefaultSearchURL if empty)
// for stories newer than window, capped at limit results.
func NewClient(baseURL string, window time.Duration, limit int) *Client {
	if baseURL == "" {
		baseURL = DefaultSearchURL
	}
	return &Client{
		baseURL: baseURL,
		window:  window,
		limit:   limit,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) TopStories(ctx context.Context) ([]Story, error) {
	cutoff := time.Now().Add(-c.window).Unix()
	params := url.Values{
		"tags":           {"story"},
		"numericFilters": {fmt.Sprintf("created_at_i>%d", cutoff)},
		"hitsPerPage":    {strconv.Itoa(c.limit)},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching stories: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching stories: HTTP %d from %s", resp.StatusCode, req.URL.Host)
	}

	var payload struct {
		Hits []Story `json:"hits"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding stories: %w", err)
	}
	return payload.Hits, nil
}

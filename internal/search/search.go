// Package search fetches short news snippets for player names. The Google
// Programmable Search client is the real implementation; CachedSearcher wraps
// any Searcher with a Redis-backed snippet cache.
package search

import "context"

// Snippet is a single search result trimmed down to what the prompt needs.
type Snippet struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

// Searcher is anything that can look up news snippets for a query. Enabled
// reports whether lookups can succeed at all, so callers can skip the search
// phase without issuing doomed requests.
type Searcher interface {
	Enabled() bool
	Search(ctx context.Context, query string, num int) ([]Snippet, error)
}

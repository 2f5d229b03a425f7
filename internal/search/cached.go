package search

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/noahcwanger/fantasy-assistant/internal/cache"
)

const snippetTTL = 15 * time.Minute

// CachedSearcher serves repeat queries from Redis so a week's worth of
// analyses for the same roster hits the search API once per player.
type CachedSearcher struct {
	inner Searcher
	store *cache.Cache
}

func NewCached(inner Searcher, store *cache.Cache) *CachedSearcher {
	return &CachedSearcher{inner: inner, store: store}
}

func (c *CachedSearcher) Enabled() bool {
	return c.inner.Enabled()
}

// Search checks the cache before delegating to the wrapped Searcher. Cache
// failures on either side degrade to an uncached lookup.
func (c *CachedSearcher) Search(ctx context.Context, query string, num int) ([]Snippet, error) {
	key := fmt.Sprintf("snippets:%d:%s", num, query)

	var cached []Snippet
	if err := c.store.Get(ctx, key, &cached); err == nil {
		return cached, nil
	}

	snippets, err := c.inner.Search(ctx, query, num)
	if err != nil {
		return nil, err
	}

	if err := c.store.Set(ctx, key, snippets, snippetTTL); err != nil {
		slog.Warn("Failed to cache snippets", "query", query, "error", err)
	}

	return snippets, nil
}

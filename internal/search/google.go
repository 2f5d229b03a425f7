package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/noahcwanger/fantasy-assistant/internal/config"
)

// GoogleCSE queries the Google Programmable Search JSON API. It is disabled
// (a no-op) until both the API key and the engine ID are configured.
type GoogleCSE struct {
	apiKey   string
	cseID    string
	endpoint string
	client   *http.Client
}

func NewGoogleCSE(cfg *config.SearchConfig) *GoogleCSE {
	return &GoogleCSE{
		apiKey:   cfg.GoogleAPIKey,
		cseID:    cfg.GoogleCSEID,
		endpoint: cfg.Endpoint,
		client:   &http.Client{Timeout: cfg.Timeout},
	}
}

func (g *GoogleCSE) Enabled() bool {
	return g.apiKey != "" && g.cseID != ""
}

type cseResponse struct {
	Items []struct {
		Title   string `json:"title"`
		Link    string `json:"link"`
		Snippet string `json:"snippet"`
	} `json:"items"`
}

// Search returns up to num snippets for the query. A disabled client returns
// an empty result without touching the network.
func (g *GoogleCSE) Search(ctx context.Context, query string, num int) ([]Snippet, error) {
	if !g.Enabled() {
		return []Snippet{}, nil
	}

	params := url.Values{}
	params.Set("key", g.apiKey)
	params.Set("cx", g.cseID)
	params.Set("q", query)
	params.Set("num", strconv.Itoa(num))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating search request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("searching %q: %w", query, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("search API returned %d: %s", resp.StatusCode, body)
	}

	var decoded cseResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}

	snippets := make([]Snippet, 0, len(decoded.Items))
	for _, item := range decoded.Items {
		if len(snippets) == num {
			break
		}
		snippets = append(snippets, Snippet{
			Title:   item.Title,
			Link:    item.Link,
			Snippet: item.Snippet,
		})
	}

	return snippets, nil
}

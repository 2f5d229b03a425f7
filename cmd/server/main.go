// cmd/server/main.go
package main

import (
	"log"
	"log/slog"

	"golang.org/x/time/rate"

	"github.com/noahcwanger/fantasy-assistant/apimodels"
	"github.com/noahcwanger/fantasy-assistant/internal/analyzer"
	"github.com/noahcwanger/fantasy-assistant/internal/cache"
	"github.com/noahcwanger/fantasy-assistant/internal/config"
	"github.com/noahcwanger/fantasy-assistant/internal/llm"
	"github.com/noahcwanger/fantasy-assistant/internal/search"
	"github.com/noahcwanger/fantasy-assistant/internal/server"
	"github.com/noahcwanger/fantasy-assistant/internal/sleeper"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// The cache is optional; a missing or unreachable Redis only turns
	// caching off.
	var store *cache.Cache
	if cfg.Redis.URL != "" {
		store, err = cache.New(cfg.Redis.URL)
		if err != nil {
			slog.Warn("Redis unavailable, caching disabled", "error", err)
			store = nil
		} else {
			defer store.Close()
		}
	}

	var searcher search.Searcher = search.NewGoogleCSE(&cfg.Search)
	if store.Enabled() {
		searcher = search.NewCached(searcher, store)
	}

	llmProvider := llm.NewOpenAI(&cfg.OpenAI)

	sleeperClient := sleeper.NewClient(&cfg.Sleeper, store)

	limiter := rate.NewLimiter(rate.Limit(cfg.Search.QPS), 1)
	analyzer := analyzer.New(searcher, llmProvider, limiter)

	features := apimodels.Features{
		AI:      llmProvider.Enabled(),
		Search:  searcher.Enabled(),
		Sleeper: true,
	}

	srv := server.New(*cfg, analyzer, sleeperClient, features)
	slog.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port)
	if err := srv.Run(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

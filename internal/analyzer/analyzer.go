// Package analyzer runs one roster analysis end to end: parse the pasted
// lists, gather news snippets for the names that matter, build the prompt,
// and get the analysis text from the completion provider (or the manual
// template when AI is off).
package analyzer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/noahcwanger/fantasy-assistant/apimodels"
	"github.com/noahcwanger/fantasy-assistant/internal/llm"
	"github.com/noahcwanger/fantasy-assistant/internal/prompt"
	"github.com/noahcwanger/fantasy-assistant/internal/report"
	"github.com/noahcwanger/fantasy-assistant/internal/roster"
	"github.com/noahcwanger/fantasy-assistant/internal/search"
)

const (
	// MaxNewsNames caps news lookups per run.
	MaxNewsNames = 25

	// maxFreeAgentNews limits how many free agents join the lookup list;
	// starters, bench, and trade targets go in full.
	maxFreeAgentNews = 10

	snippetsPerName = 2
	newsQuerySuffix = " NFL news injury status"
)

// ErrNoStarters means the request had nothing to analyze.
var ErrNoStarters = errors.New("add at least a few starters to analyze")

type Analyzer struct {
	searcher search.Searcher
	provider llm.Provider
	limiter  *rate.Limiter
}

func New(searcher search.Searcher, provider llm.Provider, limiter *rate.Limiter) *Analyzer {
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 1)
	}
	return &Analyzer{
		searcher: searcher,
		provider: provider,
		limiter:  limiter,
	}
}

func (a *Analyzer) Analyze(ctx context.Context, req apimodels.AnalysisRequest) (*apimodels.AnalysisResponse, error) {
	startTime := time.Now()

	starters := roster.ParseList(req.Starters)
	if len(starters) == 0 {
		return nil, ErrNoStarters
	}
	bench := roster.ParseList(req.Bench)
	freeAgents := roster.ParseList(req.FreeAgents)
	tradeTargets := roster.ParseList(req.TradeTargets)

	settings := roster.NewSettings(req.Scoring, req.RiskTolerance, req.Week)

	slog.Info("Starting analysis",
		"starters", len(starters),
		"bench", len(bench),
		"week", settings.Week,
		"ai", req.UseAI,
		"search", req.UseSearch,
	)

	snippets := map[string][]search.Snippet{}
	var queries []string
	if req.UseSearch && a.searcher.Enabled() {
		for _, name := range newsNames(starters, bench, tradeTargets, freeAgents) {
			query := name + newsQuerySuffix
			queries = append(queries, query)
			snippets[name] = a.fetchSnippets(ctx, query)
		}
	}

	payload := prompt.Payload{
		Settings:     settings,
		Starters:     starters,
		Bench:        bench,
		FreeAgents:   freeAgents,
		TradeTargets: tradeTargets,
		Notes:        req.Notes,
		Snippets:     snippets,
	}

	userPrompt, err := prompt.Build(payload)
	if err != nil {
		return nil, err
	}

	analysis := prompt.ManualTemplate
	var usage llm.Usage
	var model string
	if req.UseAI {
		resp, err := a.complete(ctx, userPrompt, req.Options)
		if err != nil {
			slog.Error("Completion failed", "error", err)
			analysis = fmt.Sprintf("(AI error: %v)", err)
		} else {
			analysis = resp.Content
			model = resp.Model
			usage = resp.Usage
		}
	}

	response := &apimodels.AnalysisResponse{
		Result: analysis,
		Report: report.New(payload, analysis),
		Metadata: apimodels.AnalysisMetadata{
			Duration:    time.Since(startTime).String(),
			Model:       model,
			TokensUsed:  usage.TotalTokens,
			SearchCalls: len(queries),
		},
	}
	if len(queries) > 0 {
		response.SupportingData = &apimodels.SupportingData{
			Queries:  queries,
			Snippets: snippets,
		}
	}

	slog.Info("Analysis complete",
		"duration", response.Metadata.Duration,
		"searchCalls", len(queries),
		"tokensUsed", usage.TotalTokens,
	)
	return response, nil
}

// newsNames picks which players get a news lookup: starters, bench, and
// trade targets in full, then up to maxFreeAgentNews free agents, capped at
// MaxNewsNames distinct names with first occurrence winning.
func newsNames(starters, bench, tradeTargets, freeAgents []string) []string {
	if len(freeAgents) > maxFreeAgentNews {
		freeAgents = freeAgents[:maxFreeAgentNews]
	}

	pool := make([]string, 0, len(starters)+len(bench)+len(tradeTargets)+len(freeAgents))
	pool = append(pool, starters...)
	pool = append(pool, bench...)
	pool = append(pool, tradeTargets...)
	pool = append(pool, freeAgents...)

	seen := make(map[string]bool, len(pool))
	names := make([]string, 0, MaxNewsNames)
	for _, name := range pool {
		if seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
		if len(names) == MaxNewsNames {
			break
		}
	}
	return names
}

// fetchSnippets paces and runs one news lookup. Failures degrade to an empty
// list so one flaky query never sinks the analysis.
func (a *Analyzer) fetchSnippets(ctx context.Context, query string) []search.Snippet {
	if err := a.limiter.Wait(ctx); err != nil {
		return []search.Snippet{}
	}

	snippets, err := a.searcher.Search(ctx, query, snippetsPerName)
	if err != nil {
		slog.Warn("News lookup failed", "query", query, "error", err)
		return []search.Snippet{}
	}
	return snippets
}

func (a *Analyzer) complete(ctx context.Context, userPrompt string, opts apimodels.AnalysisOptions) (*llm.Response, error) {
	var options []llm.Option
	if opts.Model != "" {
		options = append(options, llm.WithModel(opts.Model))
	}
	if opts.MaxTokens != 0 {
		options = append(options, llm.WithMaxTokens(opts.MaxTokens))
	}
	if opts.Temperature != 0 {
		options = append(options, llm.WithTemperature(opts.Temperature))
	}
	return a.provider.Complete(ctx, prompt.SystemPrompt, userPrompt, options...)
}

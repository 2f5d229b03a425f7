package apimodels

import (
	"github.com/noahcwanger/fantasy-assistant/internal/report"
	"github.com/noahcwanger/fantasy-assistant/internal/search"
)

type AnalysisResponse struct {
	// The analysis text shown to the user
	Result string `json:"result"`

	// Report is the exportable document for this run
	Report report.Document `json:"report"`

	// Any supporting data used in analysis
	SupportingData *SupportingData `json:"supportingData,omitempty"`

	// Metadata about the analysis
	Metadata AnalysisMetadata `json:"metadata"`
}

type SupportingData struct {
	// Search queries issued for news context
	Queries []string `json:"queries,omitempty"`

	// Snippets fetched per player name
	Snippets map[string][]search.Snippet `json:"snippets,omitempty"`
}

type AnalysisMetadata struct {
	// Time taken for analysis
	Duration string `json:"duration"`

	// Model used for analysis
	Model string `json:"model"`

	// Tokens used in analysis
	TokensUsed int64 `json:"tokensUsed"`

	// Number of snippet lookups performed
	SearchCalls int `json:"searchCalls"`
}

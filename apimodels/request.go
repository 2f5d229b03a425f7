package apimodels

type AnalysisRequest struct {
	// Starters is the pasted starters list (one per line or comma-separated)
	Starters string `json:"starters"`

	// Bench is the pasted bench list
	Bench string `json:"bench"`

	// FreeAgents is the waiver/free-agent pool (top ~30 names)
	FreeAgents string `json:"freeAgents"`

	// TradeTargets are players on other teams under consideration
	TradeTargets string `json:"tradeTargets"`

	// Notes carries extra league context (injuries, byes, roster rules)
	Notes string `json:"notes"`

	// Scoring is one of "Half-PPR", "PPR", "Standard"
	Scoring string `json:"scoring"`

	// RiskTolerance is 0 (safe) to 10 (boom); null means the default
	RiskTolerance *int `json:"riskTolerance"`

	// Week gives matchup context (1-18)
	Week int `json:"week"`

	// UseAI toggles the completion step
	UseAI bool `json:"useAI"`

	// UseSearch toggles the news-snippet step
	UseSearch bool `json:"useSearch"`

	// Optional parameters to control analysis behavior
	Options AnalysisOptions `json:"options,omitempty"`
}

type AnalysisOptions struct {
	// Model specifies which LLM model to use (e.g. "gpt-4o")
	Model string `json:"model,omitempty"`

	// MaxTokens limits the LLM response length
	MaxTokens int64 `json:"maxTokens,omitempty"`

	// Temperature controls randomness (0.0-1.0)
	Temperature float64 `json:"temperature,omitempty"`
}

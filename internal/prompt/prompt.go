// Package prompt assembles the analyst prompt pair sent to the completion
// provider. The user prompt is a fixed task list followed by the full roster
// payload as indented JSON, so the model sees exactly what the report stores.
package prompt

import (
	"encoding/json"
	"fmt"

	"github.com/noahcwanger/fantasy-assistant/internal/roster"
	"github.com/noahcwanger/fantasy-assistant/internal/search"
)

// SystemPrompt frames every completion request.
const SystemPrompt = "You are a sharp fantasy football analyst. Give clear, concise bullets. " +
	"Weigh recent usage, health, floor/ceiling, matchup, and roster construction. " +
	"Tailor advice to the scoring format and risk tolerance."

// ManualTemplate is the analysis text used when the AI step is off. It keeps
// the same section structure the model is asked to produce.
const ManualTemplate = "(AI disabled) Use the sections below as a template for manual notes.\n\n" +
	"• START/SIT: …\n• WAIVERS: …\n• TRADES: …\n• WATCHLIST: …"

const taskHeader = "Analyze my roster for this week.\n" +
	"Tasks:\n" +
	"1) START/SIT: Suggest swaps to maximize expected points and balance risk.\n" +
	"2) WAIVERS: Rank top 5-10 adds from my FA list with quick reasoning and suggested FAAB/priority.\n" +
	"3) TRADES: Offer 2-4 realistic trade ideas (give + get) with reasoning.\n" +
	"4) WATCHLIST: 5 stash names from FA for upside.\n" +
	"Keep it under ~300 words per section.\n\n"

// Payload is the structured roster context embedded in the user prompt and
// echoed verbatim into the exported report. Settings is inlined so scoring,
// risk_tolerance, and week sit at the top level of the JSON.
type Payload struct {
	roster.Settings `yaml:",inline"`

	Starters     []string                    `json:"starters" yaml:"starters"`
	Bench        []string                    `json:"bench" yaml:"bench"`
	FreeAgents   []string                    `json:"free_agents" yaml:"free_agents"`
	TradeTargets []string                    `json:"trade_targets" yaml:"trade_targets"`
	Notes        string                      `json:"notes" yaml:"notes"`
	Snippets     map[string][]search.Snippet `json:"google_snippets" yaml:"google_snippets"`
}

// Build renders the user prompt for a payload.
func Build(p Payload) (string, error) {
	encoded, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding prompt payload: %w", err)
	}
	return taskHeader + "INPUT JSON:\n" + string(encoded) + "\n", nil
}

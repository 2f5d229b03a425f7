package prompt

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noahcwanger/fantasy-assistant/internal/roster"
	"github.com/noahcwanger/fantasy-assistant/internal/search"
)

func samplePayload() Payload {
	return Payload{
		Settings:     roster.Settings{Scoring: roster.ScoringPPR, RiskTolerance: 7, Week: 4},
		Starters:     []string{"Josh Allen", "Bijan Robinson"},
		Bench:        []string{"Rashid Shaheed"},
		FreeAgents:   []string{"Tyjae Spears"},
		TradeTargets: []string{},
		Notes:        "Opponent is weak against RBs.",
		Snippets: map[string][]search.Snippet{
			"Josh Allen": {{Title: "Allen full go", Link: "https://example.com", Snippet: "No injury designation."}},
		},
	}
}

// payloadJSON pulls the JSON block back out of a built prompt.
func payloadJSON(t *testing.T, built string) string {
	t.Helper()
	parts := strings.SplitN(built, "INPUT JSON:\n", 2)
	require.Len(t, parts, 2)
	return strings.TrimSuffix(parts[1], "\n")
}

func TestBuildContainsTaskSections(t *testing.T) {
	out, err := Build(samplePayload())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "Analyze my roster for this week.\n"))
	for _, section := range []string{"START/SIT", "WAIVERS", "TRADES", "WATCHLIST"} {
		assert.Contains(t, out, section)
	}
	assert.Contains(t, out, "INPUT JSON:\n")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestBuildPayloadRoundTrips(t *testing.T) {
	out, err := Build(samplePayload())
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(payloadJSON(t, out)), &decoded))

	wantKeys := []string{
		"scoring", "risk_tolerance", "week",
		"starters", "bench", "free_agents", "trade_targets",
		"notes", "google_snippets",
	}
	assert.Len(t, decoded, len(wantKeys))
	for _, k := range wantKeys {
		assert.Contains(t, decoded, k)
	}

	assert.Equal(t, "PPR", decoded["scoring"])
	assert.Equal(t, float64(7), decoded["risk_tolerance"])
	assert.Equal(t, float64(4), decoded["week"])
}

func TestBuildFlattensSettings(t *testing.T) {
	out, err := Build(samplePayload())
	require.NoError(t, err)

	raw := payloadJSON(t, out)
	assert.NotContains(t, raw, `"settings"`)
	assert.Contains(t, raw, `"scoring": "PPR"`)
}

func TestBuildFieldOrder(t *testing.T) {
	out, err := Build(samplePayload())
	require.NoError(t, err)

	raw := payloadJSON(t, out)
	order := []string{
		`"scoring"`, `"risk_tolerance"`, `"week"`,
		`"starters"`, `"bench"`, `"free_agents"`, `"trade_targets"`,
		`"notes"`, `"google_snippets"`,
	}
	last := -1
	for _, key := range order {
		idx := strings.Index(raw, key)
		require.GreaterOrEqual(t, idx, 0, "missing %s", key)
		assert.Greater(t, idx, last, "%s out of order", key)
		last = idx
	}
}

func TestBuildEmptyListsStayArrays(t *testing.T) {
	p := Payload{
		Settings:     roster.Settings{Scoring: roster.ScoringHalfPPR, RiskTolerance: 5, Week: 1},
		Starters:     []string{},
		Bench:        []string{},
		FreeAgents:   []string{},
		TradeTargets: []string{},
		Snippets:     map[string][]search.Snippet{},
	}

	out, err := Build(p)
	require.NoError(t, err)

	raw := payloadJSON(t, out)
	assert.Contains(t, raw, `"starters": []`)
	assert.NotContains(t, raw, "null")
}

func TestManualTemplateKeepsSectionStructure(t *testing.T) {
	for _, section := range []string{"START/SIT", "WAIVERS", "TRADES", "WATCHLIST"} {
		assert.Contains(t, ManualTemplate, section)
	}
	assert.True(t, strings.HasPrefix(ManualTemplate, "(AI disabled)"))
}

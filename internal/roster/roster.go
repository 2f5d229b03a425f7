// Package roster holds the pure input model for an analysis request: pasted
// player lists and the league settings that frame the advice.
package roster

import "strings"

// Scoring formats the assistant understands. Anything else normalizes to the
// default.
const (
	ScoringHalfPPR  = "Half-PPR"
	ScoringPPR      = "PPR"
	ScoringStandard = "Standard"
)

const (
	DefaultRiskTolerance = 5
	MaxRiskTolerance     = 10
	MinWeek              = 1
	MaxWeek              = 18
)

// Settings captures the league context for one analysis run.
type Settings struct {
	Scoring       string `json:"scoring" yaml:"scoring"`
	RiskTolerance int    `json:"risk_tolerance" yaml:"risk_tolerance"`
	Week          int    `json:"week" yaml:"week"`
}

// NewSettings normalizes raw form values into valid settings. A nil risk
// tolerance means the field was omitted, not zero. Unknown scoring strings
// fall back to the default; numerics are clamped to their ranges.
func NewSettings(scoring string, riskTolerance *int, week int) Settings {
	s := Settings{
		Scoring:       ScoringHalfPPR,
		RiskTolerance: DefaultRiskTolerance,
		Week:          MinWeek,
	}

	switch scoring {
	case ScoringHalfPPR, ScoringPPR, ScoringStandard:
		s.Scoring = scoring
	}

	if riskTolerance != nil {
		s.RiskTolerance = *riskTolerance
		if s.RiskTolerance < 0 {
			s.RiskTolerance = 0
		}
		if s.RiskTolerance > MaxRiskTolerance {
			s.RiskTolerance = MaxRiskTolerance
		}
	}

	if week >= MinWeek {
		s.Week = week
	}
	if s.Week > MaxWeek {
		s.Week = MaxWeek
	}

	return s
}

// ParseList splits pasted free text into player names. Lines are split on
// commas and semicolons, entries trimmed, empties dropped. Malformed input
// yields an empty list, never an error.
func ParseList(raw string) []string {
	names := []string{}
	for _, line := range strings.Split(raw, "\n") {
		line = strings.ReplaceAll(line, ";", ",")
		for _, part := range strings.Split(line, ",") {
			if name := strings.TrimSpace(part); name != "" {
				names = append(names, name)
			}
		}
	}
	return names
}

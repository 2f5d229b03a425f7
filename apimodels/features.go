package apimodels

// Features tells the form which integrations are configured so its toggles
// can default to match.
type Features struct {
	// AI is true when an OpenAI API key is configured
	AI bool `json:"ai"`

	// Search is true when Google search credentials are configured
	Search bool `json:"search"`

	// Sleeper is true when league import is available
	Sleeper bool `json:"sleeper"`
}

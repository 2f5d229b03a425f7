// Package report builds the downloadable analysis report. The document keeps
// the shape users already script against: timestamp, settings, the full input
// payload, and the analysis text, with a generated id on top.
package report

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/noahcwanger/fantasy-assistant/internal/prompt"
	"github.com/noahcwanger/fantasy-assistant/internal/roster"
)

const (
	FileNameJSON = "fantasy_assistant_report.json"
	FileNameYAML = "fantasy_assistant_report.yaml"
)

// Format selects the export encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat maps a query-string value to a Format. Empty means JSON.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported report format %q", s)
	}
}

func (f Format) FileName() string {
	if f == FormatYAML {
		return FileNameYAML
	}
	return FileNameJSON
}

func (f Format) ContentType() string {
	if f == FormatYAML {
		return "application/yaml"
	}
	return "application/json"
}

// Document is one exported analysis run.
type Document struct {
	ID        string          `json:"id" yaml:"id"`
	Timestamp int64           `json:"timestamp" yaml:"timestamp"`
	Settings  roster.Settings `json:"settings" yaml:"settings"`
	Inputs    prompt.Payload  `json:"inputs" yaml:"inputs"`
	Analysis  string          `json:"analysis" yaml:"analysis"`
}

// New stamps a fresh document for the given inputs and analysis text.
func New(inputs prompt.Payload, analysis string) Document {
	return Document{
		ID:        uuid.NewString(),
		Timestamp: time.Now().Unix(),
		Settings:  inputs.Settings,
		Inputs:    inputs,
		Analysis:  analysis,
	}
}

// Encode renders the document in the requested format.
func (d Document) Encode(f Format) ([]byte, error) {
	if f == FormatYAML {
		return yaml.Marshal(d)
	}
	return json.MarshalIndent(d, "", "  ")
}

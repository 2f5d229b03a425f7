package config

import (
	"log/slog"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server  ServerConfig
	OpenAI  OpenAIConfig
	Search  SearchConfig
	Sleeper SleeperConfig
	Redis   RedisConfig
}

type ServerConfig struct {
	Port         string        `envconfig:"SERVER_PORT" default:"8000"`
	Host         string        `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	ReadTimeout  time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"60s"`
}

// OpenAIConfig gates the completion step: with no API key the assistant
// still runs and emits the manual template instead of AI analysis.
type OpenAIConfig struct {
	Provider    string  `envconfig:"OPENAI_PROVIDER" default:"openai"`
	APIKey      string  `envconfig:"OPENAI_API_KEY"`
	APIEndpoint string  `envconfig:"OPENAI_ENDPOINT" default:"https://api.openai.com/v1"`
	APIVersion  string  `envconfig:"OPENAI_API_VERSION" default:"2023-05-15"`
	Model       string  `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`
	Temperature float64 `envconfig:"OPENAI_TEMPERATURE" default:"0.2"`
	MaxTokens   int64   `envconfig:"OPENAI_MAX_TOKENS" default:"2000"`
}

// SearchConfig gates the news-snippet step; both Google credentials must be
// present for searches to run.
type SearchConfig struct {
	GoogleAPIKey string        `envconfig:"GOOGLE_API_KEY"`
	GoogleCSEID  string        `envconfig:"GOOGLE_CSE_ID"`
	Endpoint     string        `envconfig:"SEARCH_ENDPOINT" default:"https://www.googleapis.com/customsearch/v1"`
	QPS          float64       `envconfig:"SEARCH_QPS" default:"5"`
	Timeout      time.Duration `envconfig:"SEARCH_TIMEOUT" default:"15s"`
}

type SleeperConfig struct {
	Endpoint string        `envconfig:"SLEEPER_ENDPOINT" default:"https://api.sleeper.app"`
	Timeout  time.Duration `envconfig:"SLEEPER_TIMEOUT" default:"15s"`
}

// RedisConfig points at the optional snippet/player cache. An empty URL
// leaves caching off.
type RedisConfig struct {
	URL string `envconfig:"REDIS_URL"`
}

func LoadConfig() (*Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return nil, err
	}
	slog.Info("configuration loaded",
		"ai", cfg.OpenAI.APIKey != "",
		"search", cfg.Search.GoogleAPIKey != "" && cfg.Search.GoogleCSEID != "",
		"cache", cfg.Redis.URL != "",
	)
	return &cfg, nil
}

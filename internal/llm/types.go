package llm

import "context"

type Provider interface {
	// Enabled reports whether completions can run; without an API key the
	// assistant substitutes a fixed placeholder instead of calling out.
	Enabled() bool
	// Complete sends a system+user message pair and returns the response
	Complete(ctx context.Context, system, user string, opts ...Option) (*Response, error)
}

type Usage struct {
	PromptTokens     int64
	CompletionTokens int64
	TotalTokens      int64
}

type Option func(*Options)

type Options struct {
	Model       string
	MaxTokens   int64
	Temperature float64
}

func WithModel(model string) Option {
	return func(o *Options) {
		if model != "" {
			o.Model = model
		}
	}
}

func WithMaxTokens(n int64) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxTokens = n
		}
	}
}

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

type Response struct {
	Content string
	Model   string
	Usage   Usage
}

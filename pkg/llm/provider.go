package llm

import (
	"context"
)

// Logical model identifiers accepted by the API. Providers map these to
// their own backend model names.
const (
	ModelLlama38B    = "llama3-8b"
	ModelLlama370B   = "llama3-70b"
	ModelMistral7B   = "mistral-7b"
	ModelMistral8x7B = "mistral-8x7b"
	ModelQwen272B    = "qwen2-72b"
	ModelPhi3Mini    = "phi3-mini"
	ModelOpenChat35  = "openchat-3.5"
)

// Option allows for optional parameters like Temperature, MaxTokens, etc.
type Option func(*Options)

type Options struct {
	Model       string // Logical model identifier
	MaxTokens   int
	Temperature float64
	TopP        float64
}

// DefaultOptions carries the fixed sampling parameters used on every call.
func DefaultOptions() *Options {
	return &Options{
		MaxTokens:   2048,
		Temperature: 0.7,
		TopP:        0.9,
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

// Provider defines the contract for any LLM backend.
// Each call is fire-once: no retry, no backoff, no timeout override.
type Provider interface {
	// Generate sends a single prompt to the model and returns the raw
	// generated text.
	Generate(ctx context.Context, prompt string, options ...Option) (string, error)
}

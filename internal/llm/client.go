package llm

import (
	"context"
	"time"
)

// Client defines the interface for LLM providers.
type Client interface {
	// Generate sends prompt and returns the raw text of the first completion.
	Generate(ctx context.Context, prompt string) (string, error)
}

// Config holds configuration for the LLM fallback.
type Config struct {
	Provider    string
	APIKey      string
	Model       string
	BaseURL     string // OpenAI-compatible endpoint override
	MaxRetries  int
	RetryDelay  time.Duration
	CacheTTL    time.Duration
	RateLimit   int // requests per minute
	Temperature float64
	MaxTokens   int
}

// Provider names accepted by NewClient.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

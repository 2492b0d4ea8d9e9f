package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"google.golang.org/api/googleapi"

	"github.com/Veraticus/kharcha/internal/common"
	"github.com/Veraticus/kharcha/internal/model"
	"github.com/Veraticus/kharcha/internal/service"
)

// Fallback implements service.Fallback on top of an LLM client.
type Fallback struct {
	client      Client
	cache       *responseCache
	logger      *slog.Logger
	rateLimiter *rateLimiter
	retryOpts   service.RetryOptions
}

var _ service.Fallback = (*Fallback)(nil)

// NewFallback creates a fallback using the provider named in cfg.
func NewFallback(ctx context.Context, cfg Config, logger *slog.Logger) (*Fallback, error) {
	client, err := NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	return NewFallbackWithClient(client, cfg, logger), nil
}

// NewFallbackWithClient wraps an existing client. Rate-limit failures are
// retried with exponential backoff: three retries at 2s, 4s and 8s by
// default. Every other error ends the attempt immediately.
func NewFallbackWithClient(client Client, cfg Config, logger *slog.Logger) *Fallback {
	if logger == nil {
		logger = slog.Default()
	}

	retries := cfg.MaxRetries
	if retries <= 0 {
		retries = 3
	}
	delay := cfg.RetryDelay
	if delay <= 0 {
		delay = 2 * time.Second
	}

	return &Fallback{
		client:      client,
		cache:       newResponseCache(cfg.CacheTTL),
		logger:      logger,
		rateLimiter: newRateLimiter(cfg.RateLimit),
		retryOpts: service.RetryOptions{
			MaxAttempts:  retries + 1,
			InitialDelay: delay,
			MaxDelay:     delay * 8,
			Multiplier:   2.0,
			Retryable:    isRateLimitError,
		},
	}
}

// ParseExpenses asks the model to parse text. Results are cached per input.
func (f *Fallback) ParseExpenses(ctx context.Context, text string) ([]model.Candidate, error) {
	if cached, found := f.cache.get(text); found {
		f.logger.Debug("cache hit for fallback input", "candidates", len(cached))
		return cached, nil
	}

	if !f.rateLimiter.tryAcquire() {
		f.logger.Debug("fallback request rate reached, waiting")
		if err := f.rateLimiter.wait(ctx); err != nil {
			return nil, err
		}
	}

	var content string
	err := common.WithRetry(ctx, func() error {
		var genErr error
		content, genErr = f.client.Generate(ctx, buildPrompt(text))
		return genErr
	}, f.retryOpts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrFallbackUnavailable, err)
	}

	candidates, err := parseExpenses(content)
	if err != nil {
		return nil, err
	}

	f.cache.set(text, candidates)
	f.logger.Info("fallback parsed input",
		"candidates", len(candidates),
		"cached_inputs", f.cache.size())
	return candidates, nil
}

// Close releases the client if it holds resources.
func (f *Fallback) Close() error {
	f.cache.clear()
	if c, ok := f.client.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// isRateLimitError reports whether err is a provider rate-limit or quota
// failure. A client that already classified the error with
// common.RetryableError is taken at its word.
func isRateLimitError(err error) bool {
	if err == nil {
		return false
	}
	var classified *common.RetryableError
	if errors.As(err, &classified) {
		return classified.Retryable
	}
	if errors.Is(err, common.ErrRateLimit) {
		return true
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusTooManyRequests {
		return true
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "quota") ||
		strings.Contains(msg, "resource exhausted") ||
		strings.Contains(msg, "resourceexhausted")
}

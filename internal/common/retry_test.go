package common

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/kharcha/internal/service"
)

func fastRetry(maxAttempts int, retryable func(error) bool) service.RetryOptions {
	return service.RetryOptions{
		MaxAttempts:  maxAttempts,
		InitialDelay: time.Millisecond,
		MaxDelay:     2 * time.Millisecond,
		Multiplier:   2,
		Retryable:    retryable,
	}
}

func TestWithRetry(t *testing.T) {
	errBoom := errors.New("boom")
	onlyRateLimit := func(err error) bool { return errors.Is(err, ErrRateLimit) }

	tests := []struct {
		wantErr   error
		retryable func(error) bool
		failures  []error
		name      string
		wantCalls int
	}{
		{
			name:      "succeeds first time",
			wantCalls: 1,
		},
		{
			name:      "succeeds after rate limits",
			failures:  []error{ErrRateLimit, ErrRateLimit},
			retryable: onlyRateLimit,
			wantCalls: 3,
		},
		{
			name:      "stops on non retryable error",
			failures:  []error{errBoom, errBoom},
			retryable: onlyRateLimit,
			wantCalls: 1,
			wantErr:   errBoom,
		},
		{
			name:      "gives up after max attempts",
			failures:  []error{ErrRateLimit, ErrRateLimit, ErrRateLimit, ErrRateLimit},
			retryable: onlyRateLimit,
			wantCalls: 3,
			wantErr:   ErrMaxRetries,
		},
		{
			name:      "nil predicate retries everything",
			failures:  []error{errBoom},
			wantCalls: 2,
		},
		{
			name:      "explicitly non retryable",
			failures:  []error{&RetryableError{Err: errBoom, Retryable: false}},
			wantCalls: 1,
			wantErr:   errBoom,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			err := WithRetry(context.Background(), func() error {
				calls++
				if calls <= len(tt.failures) {
					return tt.failures[calls-1]
				}
				return nil
			}, fastRetry(3, tt.retryable))

			assert.Equal(t, tt.wantCalls, calls)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestWithRetry_MaxRetriesWrapsLastError(t *testing.T) {
	err := WithRetry(context.Background(), func() error {
		return ErrRateLimit
	}, fastRetry(2, nil))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMaxRetries)
	assert.ErrorIs(t, err, ErrRateLimit)
}

func TestWithRetry_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := WithRetry(ctx, func() error {
		calls++
		return ErrRateLimit
	}, service.RetryOptions{MaxAttempts: 3, InitialDelay: time.Hour})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestUserError(t *testing.T) {
	err := NewUserError("could not open database", ErrNotFound)
	assert.Equal(t, "could not open database: not found", err.Error())
	assert.ErrorIs(t, err, ErrNotFound)

	var userErr *UserError
	require.ErrorAs(t, err, &userErr)
	assert.Equal(t, "could not open database", userErr.UserMessage)

	assert.Equal(t, "plain", NewUserError("plain", nil).Error())
}

func TestParseLevel(t *testing.T) {
	for name, want := range map[string]string{"debug": "DEBUG", "": "INFO", "WARN": "WARN", "error": "ERROR"} {
		level, err := ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, level.String())
	}

	_, err := ParseLevel("loud")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

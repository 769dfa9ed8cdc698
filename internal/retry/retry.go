// Package retry provides bounded exponential backoff for transient API
// errors, with a caller-supplied retryability classifier.
package retry

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/chainguard-dev/clog"
)

// Config controls retry behaviour for API calls.
type Config struct {
	// MaxRetries is the number of retry attempts after the first try.
	// 0 disables retries entirely.
	MaxRetries int
	// BaseBackoff is the initial backoff duration.
	BaseBackoff time.Duration
	// MaxBackoff caps the exponential backoff.
	MaxBackoff time.Duration
	// MaxJitter is the upper bound of the random jitter added per attempt.
	MaxJitter time.Duration
}

// Validate checks that the configuration has usable values.
func (c Config) Validate() error {
	if c.MaxRetries < 0 {
		return errors.New("max retries cannot be negative")
	}
	if c.BaseBackoff < 0 || c.MaxBackoff < 0 || c.MaxJitter < 0 {
		return errors.New("backoff durations cannot be negative")
	}
	return nil
}

// DefaultConfig mirrors the fixed retry count the agent is configured with.
func DefaultConfig() Config {
	return Config{
		MaxRetries:  2,
		BaseBackoff: time.Second,
		MaxBackoff:  30 * time.Second,
		MaxJitter:   500 * time.Millisecond,
	}
}

// Do executes fn with exponential backoff, retrying only errors that
// isRetryable classifies as transient. Context cancellation is honoured
// between attempts.
func Do[T any](ctx context.Context, cfg Config, operation string, isRetryable func(error) bool, fn func() (T, error)) (T, error) {
	var result T
	var lastErr error

	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		result, lastErr = fn()
		if lastErr == nil {
			return result, nil
		}
		if !isRetryable(lastErr) {
			return result, lastErr
		}
		if attempt >= cfg.MaxRetries {
			break
		}

		backoff := min(cfg.BaseBackoff<<attempt, cfg.MaxBackoff)
		if cfg.MaxJitter > 0 {
			backoff += rand.N(cfg.MaxJitter)
		}

		clog.FromContext(ctx).With("operation", operation).
			With("attempt", attempt+1).
			With("max_retries", cfg.MaxRetries).
			With("backoff", backoff).
			With("error", lastErr.Error()).
			Warn("Transient API error, retrying")

		select {
		case <-ctx.Done():
			return result, ctx.Err()
		case <-time.After(backoff):
		}
	}

	return result, fmt.Errorf("%s failed after %d retries: %w", operation, cfg.MaxRetries, lastErr)
}

package provider

import (
	"errors"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// NewClient returns a client using the API key from the env.
func NewClient() *anthropic.Client {
	c := anthropic.NewClient()
	return &c
}

// NewClientWithKey returns a client for an explicitly supplied key. The web
// path uses this because each request carries its own token.
func NewClientWithKey(apiKey string, opts ...option.RequestOption) *anthropic.Client {
	c := anthropic.NewClient(append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)...)
	return &c
}

const DefaultModel = anthropic.ModelClaude3_7SonnetLatest

// IsRetryable reports whether err is a transient Anthropic API error:
// rate limit, overloaded, or gateway errors.
func IsRetryable(err error) bool {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case 429, 503, 504, 529:
			return true
		}
	}
	return false
}

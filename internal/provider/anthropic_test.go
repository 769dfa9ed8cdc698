package provider_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/quayhold/repochat/internal/provider"
)

func TestIsRetryable(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"rate limited", &anthropic.Error{StatusCode: 429}, true},
		{"service unavailable", &anthropic.Error{StatusCode: 503}, true},
		{"gateway timeout", &anthropic.Error{StatusCode: 504}, true},
		{"overloaded", &anthropic.Error{StatusCode: 529}, true},
		{"bad request", &anthropic.Error{StatusCode: 400}, false},
		{"unauthorized", &anthropic.Error{StatusCode: 401}, false},
		{"server error", &anthropic.Error{StatusCode: 500}, false},
		{"wrapped transient", fmt.Errorf("calling model: %w", &anthropic.Error{StatusCode: 529}), true},
		{"plain error", errors.New("connection reset"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := provider.IsRetryable(tc.err); got != tc.want {
				t.Errorf("IsRetryable(%v) = %t, want %t", tc.err, got, tc.want)
			}
		})
	}
}

// Package retry defines the bounded retry policy applied to outbound
// API calls. Callers describe the policy once and pass it to the client
// instead of hand-rolling retry loops.
package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Policy describes a bounded exponential-backoff retry.
type Policy struct {
	MaxAttempts     uint64
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// DefaultPolicy returns the standard outbound-call policy: up to 3
// attempts with exponential backoff starting at one second.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts:     3,
		InitialInterval: 1 * time.Second,
		MaxInterval:     30 * time.Second,
	}
}

// Do runs op under the policy, stopping early if ctx is canceled.
// Errors wrapped with Permanent are returned without further attempts.
func (p Policy) Do(ctx context.Context, op func() error) error {
	attempts := p.MaxAttempts
	if attempts == 0 {
		attempts = 1
	}

	bo := backoff.NewExponentialBackOff()
	if p.InitialInterval > 0 {
		bo.InitialInterval = p.InitialInterval
	}
	if p.MaxInterval > 0 {
		bo.MaxInterval = p.MaxInterval
	}

	return backoff.Retry(op, backoff.WithContext(
		backoff.WithMaxRetries(bo, attempts-1), ctx,
	))
}

// Permanent marks err as non-retryable: Do returns it immediately.
func Permanent(err error) error {
	return backoff.Permanent(err)
}

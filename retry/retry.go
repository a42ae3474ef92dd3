// Package retry implements the backoff policy for the rest execution
// engine: attempt eligibility, delay growth via pluggable strategies, and
// cancellation-aware waiting between attempts.
package retry

import (
	"context"
	"errors"
	"time"
)

// MinDelay is the smallest initial retry delay accepted when retries are
// enabled. Shorter delays are a caller configuration error.
const MinDelay = time.Second

// ErrCancelled is returned by Wait when the caller abandons the call
// before the backoff delay elapses.
var ErrCancelled = errors.New("retry: cancelled")

// DelayStrategy computes the next backoff delay from the current delay and
// the caller-configured initial delay. Strategies must be pure: the same
// inputs always produce the same output.
type DelayStrategy func(current, initial time.Duration) time.Duration

// Linear grows the delay by the initial delay on every retry.
// It is the default strategy.
func Linear(current, initial time.Duration) time.Duration {
	return current + initial
}

// Fixed keeps the delay constant at the initial delay.
func Fixed(_, initial time.Duration) time.Duration {
	return initial
}

// Exponential doubles the current delay on every retry.
func Exponential(current, initial time.Duration) time.Duration {
	if current <= 0 {
		return initial
	}
	return current * 2
}

// Policy owns attempt counting and backoff delay computation for one call.
type Policy struct {
	// Count is the number of retries after the first attempt.
	Count int
	// Delay is the initial backoff delay.
	Delay time.Duration
	// Strategy computes delay growth. Nil means Linear.
	Strategy DelayStrategy
}

// Validate checks the policy invariants.
func (p Policy) Validate() error {
	if p.Count > 0 && p.Delay < MinDelay {
		return errors.New("retry: delay must be at least 1s when retries are enabled")
	}
	return nil
}

// ShouldContinue reports whether the zero-based attempt index is within
// the retry budget. The first attempt is always allowed.
func (p Policy) ShouldContinue(attempt int) bool {
	return attempt == 0 || attempt <= p.Count
}

// NextDelay computes the delay to wait before the attempt after next.
func (p Policy) NextDelay(current time.Duration) time.Duration {
	strategy := p.Strategy
	if strategy == nil {
		strategy = Linear
	}
	return strategy(current, p.Delay)
}

// Cancelled reports whether the caller has abandoned the call, either by
// cancelling the context or by closing the emitter channel.
func Cancelled(ctx context.Context, emitter <-chan struct{}) bool {
	select {
	case <-ctx.Done():
		return true
	case <-emitter:
		return true
	default:
		return false
	}
}

// Wait blocks for the given delay. It returns early with ctx.Err when the
// context is cancelled, or ErrCancelled when the emitter channel closes.
// A nil emitter never cancels.
func Wait(ctx context.Context, emitter <-chan struct{}, delay time.Duration) error {
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-emitter:
		return ErrCancelled
	case <-timer.C:
		return nil
	}
}

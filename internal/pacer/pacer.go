// Package pacer provides the pacing policy applied between remote calls.
//
// The remote service is rate limited; the run inserts a pause after each
// section rather than retrying on 429s. The policy is pluggable so tests
// run without real-time delay.
package pacer

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Pacer blocks until the next remote call may proceed.
type Pacer interface {
	Wait(ctx context.Context) error
}

// Fixed pauses for a constant duration on every Wait. This is the crude
// throttle the batch run uses by default: not adaptive, just a breather
// between requests.
type Fixed struct {
	Delay time.Duration
}

// Wait sleeps for the configured delay, or returns early with the
// context's error if it is cancelled first.
func (f Fixed) Wait(ctx context.Context) error {
	if f.Delay <= 0 {
		return nil
	}
	t := time.NewTimer(f.Delay)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Limiter paces calls with a token bucket, allowing short bursts while
// holding a sustained rate.
type Limiter struct {
	limiter *rate.Limiter
}

// NewLimiter creates a token-bucket pacer with the given sustained
// requests-per-second rate and burst size.
func NewLimiter(perSecond float64, burst int) *Limiter {
	return &Limiter{limiter: rate.NewLimiter(rate.Limit(perSecond), burst)}
}

// Wait blocks until the bucket grants a token.
func (l *Limiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}

// Nop never waits. Used in tests.
type Nop struct{}

func (Nop) Wait(context.Context) error { return nil }

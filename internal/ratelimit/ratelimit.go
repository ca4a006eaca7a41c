// Package ratelimit enforces a minimum spacing between external API calls.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Clock abstracts time for the limiter so spacing can be tested without
// real sleeps.
type Clock interface {
	Now() time.Time
	Sleep(ctx context.Context, d time.Duration) error
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Limiter blocks callers so that consecutive calls are spaced at least
// MinInterval apart. It is not a token bucket: there is no burst allowance,
// each Wait simply sleeps out the remainder of the interval started by the
// previous one.
type Limiter struct {
	mu    sync.Mutex
	min   time.Duration
	last  time.Time
	clock Clock
}

// New creates a limiter with the given minimum interval between calls.
// A non-positive interval disables waiting.
func New(minInterval time.Duration) *Limiter {
	return &Limiter{min: minInterval, clock: realClock{}}
}

// SetClock replaces the limiter's clock. Intended for tests.
func (l *Limiter) SetClock(c Clock) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.clock = c
}

// Wait blocks until at least MinInterval has elapsed since the previous
// Wait returned, or until ctx is done.
func (l *Limiter) Wait(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()
	if !l.last.IsZero() {
		if remaining := l.min - now.Sub(l.last); remaining > 0 {
			if err := l.clock.Sleep(ctx, remaining); err != nil {
				return err
			}
			now = l.clock.Now()
		}
	}
	l.last = now
	return nil
}

package backoff

import (
	"context"
	"time"
)

// Strategy computes the n-th wait (n starts at 0)
type Strategy interface {
	Duration(n int, start time.Duration) time.Duration
}

// Backoff sleeps with growing durations capped at limit
type Backoff struct {
	strategy Strategy
	start    time.Duration
	limit    time.Duration
	count    int
}

func New(strategy Strategy, start, limit time.Duration) *Backoff {
	return &Backoff{strategy: strategy, start: start, limit: limit}
}

func (b *Backoff) Reset() {
	b.count = 0
}

// Next returns the upcoming wait without sleeping
func (b *Backoff) Next() time.Duration {
	d := b.strategy.Duration(b.count, b.start)
	if b.limit > 0 && (d > b.limit || d <= 0) {
		d = b.limit
	}
	return d
}

// Wait sleeps for Next(), it returns ctx.Err() if ctx finishes first
func (b *Backoff) Wait(ctx context.Context) error {
	timer := time.NewTimer(b.Next())
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		b.count++
		return nil
	}
}

type exponential struct{}

func (exponential) Duration(n int, start time.Duration) time.Duration {
	if n > 32 {
		n = 32
	}
	return start << uint(n)
}

func NewExponential(start, limit time.Duration) *Backoff {
	return New(exponential{}, start, limit)
}

type linear struct{}

func (linear) Duration(n int, start time.Duration) time.Duration {
	return time.Duration(n+1) * start
}

func NewLinear(start, limit time.Duration) *Backoff {
	return New(linear{}, start, limit)
}

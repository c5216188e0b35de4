package backend

import (
	"context"
	"time"
)

// Throttle spaces out backend calls by a fixed delay.
type Throttle struct {
	delay time.Duration
}

// NewThrottle creates a Throttle. A non-positive delay disables waiting.
func NewThrottle(delay time.Duration) *Throttle {
	return &Throttle{delay: delay}
}

// Wait blocks for the configured delay or until ctx is done.
func (t *Throttle) Wait(ctx context.Context) error {
	if t == nil || t.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(t.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

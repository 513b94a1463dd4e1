package poller

import (
	"context"
	"time"
)

type clock interface {
	Now() time.Time
	// Sleep blocks for d and reports whether the wait completed
	// before ctx was cancelled.
	Sleep(ctx context.Context, d time.Duration) bool
}

type stdClock struct{}

func (stdClock) Now() time.Time {
	return time.Now()
}

func (stdClock) Sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

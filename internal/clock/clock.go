// Package clock holds the time primitives that retry loops are written against.
package clock

import (
	"context"
	"time"
)

// SleepFunc pauses for d or until ctx ends. Tests swap it for a recorder.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Sleep waits for d. A context that is already done wins over an elapsed timer,
// so a canceled caller never starts another attempt.
func Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return ctx.Err()
	}
}

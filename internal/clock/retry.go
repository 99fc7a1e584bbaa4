// Package clock provides helpers for time-related operations.
package clock

import (
	"context"
	"fmt"
	"time"
)

// Retry calls fn up to attempts times, waiting backoff between failures and
// doubling it each time. It returns the last error wrapped with the attempt count.
func Retry(ctx context.Context, attempts int, backoff time.Duration, fn func(context.Context) error) error {
	if attempts <= 0 {
		attempts = 1
	}

	var err error
	for i := 1; i <= attempts; i++ {
		if err = fn(ctx); err == nil {
			return nil
		}
		if i == attempts {
			break
		}
		if waitErr := wait(ctx, backoff); waitErr != nil {
			return fmt.Errorf("retry interrupted after %d attempts: %w", i, err)
		}
		backoff *= 2
	}
	return fmt.Errorf("giving up after %d attempts: %w", attempts, err)
}

func wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// retry calls fn up to attempts times, waiting base, 2*base, 3*base... between
// failures. It gives up early when ctx is done.
func retry[T any](ctx context.Context, logger *slog.Logger, what string, attempts int, base time.Duration, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error

	for i := 0; i < attempts; i++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err
		if i == attempts-1 {
			break
		}

		wait := base * time.Duration(i+1)
		logger.Warn("retrying after error", "op", what, "attempt", i+1, "max_attempts", attempts, "delay", wait, "error", err)
		select {
		case <-ctx.Done():
			return zero, fmt.Errorf("%s cancelled: %w", what, ctx.Err())
		case <-time.After(wait):
		}
	}
	return zero, fmt.Errorf("%s after %d attempts: %w", what, attempts, lastErr)
}

// Package retry provides a small bounded-attempt helper for transient
// network and quota failures.
package retry

import (
	"context"
	"fmt"
	"time"
)

// Do runs fn up to attempts times, sleeping between failures. The
// sleep grows linearly: delay after the first failure, twice that
// after the second, and so on. It stops early when fn succeeds or ctx
// is cancelled and returns the last error otherwise.
func Do(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	if attempts < 1 {
		attempts = 1
	}
	var lastErr error
	for i := 0; i < attempts; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if lastErr = fn(); lastErr == nil {
			return nil
		}
		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay * time.Duration(i+1)):
		}
	}
	return fmt.Errorf("after %d attempts: %w", attempts, lastErr)
}

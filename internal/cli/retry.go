package cli

import (
	"context"
	"errors"
	"time"
)

// retryableError marks a failure worth another attempt, such as a Redis
// server that is still starting.
type retryableError struct{ err error }

func (e *retryableError) Error() string { return e.err.Error() }
func (e *retryableError) Unwrap() error { return e.err }

// retry runs fn up to attempts times, doubling delay after each failure.
// Only errors wrapped in retryableError are retried.
func retry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	attempts = max(attempts, 1)
	var lastErr error

	for i := range attempts {
		if err := fn(); err == nil {
			return nil
		} else if lastErr = err; !errors.As(err, new(*retryableError)) {
			return err
		}

		if i < attempts-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
				delay *= 2
			}
		}
	}
	return lastErr
}

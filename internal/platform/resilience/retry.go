package resilience

import (
	"context"
	"time"

	crerr "github.com/cockroachdb/errors"
)

var errTransient = crerr.New("transient failure")

// MarkTransient tags err as worth retrying. The message is unchanged.
func MarkTransient(err error) error {
	if err == nil {
		return nil
	}
	return crerr.Mark(err, errTransient)
}

func IsTransient(err error) bool {
	return err != nil && crerr.Is(err, errTransient)
}

// Retry calls fn until it succeeds, returns a non-transient error, or the policy is exhausted.
// It returns the last error; a cancelled ctx during backoff returns ctx.Err().
func Retry(ctx context.Context, policy RetryPolicy, fn func(ctx context.Context, attempt int) error) error {
	maxRetries := max(policy.MaxRetries, 0)

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		lastErr = fn(ctx, attempt)
		if lastErr == nil || !IsTransient(lastErr) {
			return lastErr
		}
		if attempt == maxRetries {
			break
		}

		timer := time.NewTimer(time.Duration(attempt+1) * policy.Backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
	return lastErr
}

package resilience

import (
	"context"
	"time"
)

// Retry calls fn until it succeeds, returns an error retryable rejects, or
// the policy runs out of attempts. Delays double from BaseDelay up to
// MaxDelay. The last error is returned.
func Retry(ctx context.Context, policy RetryPolicy, retryable func(error) bool, fn func(ctx context.Context, attempt int) error) error {
	if policy.MaxRetries < 0 {
		policy.MaxRetries = 0
	}

	delay := policy.BaseDelay
	var err error
	for attempt := 0; attempt <= policy.MaxRetries; attempt++ {
		err = fn(ctx, attempt)
		if err == nil {
			return nil
		}
		if attempt == policy.MaxRetries || retryable == nil || !retryable(err) {
			return err
		}

		if delay > 0 {
			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
			delay *= 2
			if policy.MaxDelay > 0 && delay > policy.MaxDelay {
				delay = policy.MaxDelay
			}
		}
	}

	return err
}

package utils

import (
	"fmt"
	"log"
	"time"
)

// RetryConfig holds the parameters for an exponential back-off retry loop.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
}

// Do executes fn until it succeeds or attempts run out, doubling the delay
// between tries.
func (r *RetryConfig) Do(operation string, fn func() error) error {
	var lastErr error
	delay := r.BaseDelay

	for attempt := 1; attempt <= r.MaxAttempts; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}

		if attempt < r.MaxAttempts {
			log.Printf("⚠️ %s failed (attempt %d/%d): %v, retrying in %v",
				operation, attempt, r.MaxAttempts, lastErr, delay)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operation, r.MaxAttempts, lastErr)
}

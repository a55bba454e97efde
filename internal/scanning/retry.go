package scanning

import (
	"time"
)

const (
	// DefaultMaxAttempts is the first run plus three retries.
	DefaultMaxAttempts = 4
	// DefaultRetryBackoff is the fixed delay between runner attempts.
	DefaultRetryBackoff = 2 * time.Minute
)

// BackoffFunc returns the delay before the given attempt is retried.
// Attempts start at 1.
type BackoffFunc func(attempt int) time.Duration

// FixedBackoff waits d before every retry.
func FixedBackoff(d time.Duration) BackoffFunc {
	return func(int) time.Duration { return d }
}

// RetryPolicy bounds how often a runner is re-run after a transient error.
type RetryPolicy struct {
	MaxAttempts int
	Backoff     BackoffFunc
}

// DefaultRetryPolicy retries up to three times, two minutes apart.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: DefaultMaxAttempts, Backoff: FixedBackoff(DefaultRetryBackoff)}
}

// NewRetryPolicy returns a fixed-backoff policy. Non-positive values fall
// back to the defaults.
func NewRetryPolicy(maxAttempts int, backoff time.Duration) RetryPolicy {
	p := DefaultRetryPolicy()
	if maxAttempts > 0 {
		p.MaxAttempts = maxAttempts
	}
	if backoff > 0 {
		p.Backoff = FixedBackoff(backoff)
	}

	return p
}

// NextRetry returns when the failed attempt should be retried.
func (p RetryPolicy) NextRetry(attempt int, now time.Time) time.Time {
	backoff := p.Backoff
	if backoff == nil {
		backoff = FixedBackoff(DefaultRetryBackoff)
	}

	return now.Add(backoff(attempt))
}

// Exhausted reports whether no attempt is left after the given one.
func (p RetryPolicy) Exhausted(attempt, maxAttempts int) bool {
	if maxAttempts <= 0 {
		maxAttempts = p.MaxAttempts
	}

	return attempt >= maxAttempts
}

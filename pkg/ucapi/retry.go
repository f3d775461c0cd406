package ucapi

import (
	"time"

	"github.com/unifiedcatalog-io/ucapi/internal/constants"
)

// RetryPolicy controls how the client retries transient failures.
type RetryPolicy struct {
	// MaxAttempts is the total attempt budget, including the first try.
	MaxAttempts int
	// BaseDelay is the delay before the first retry.
	BaseDelay time.Duration
	// MaxDelay caps the backoff delay between retries.
	MaxDelay time.Duration
	// Jitter scales each delay by a random factor in [0,1) when true.
	Jitter bool
	// RetryableStatuses lists HTTP status codes that trigger a retry.
	// Network errors and timeouts are always retryable.
	RetryableStatuses []int
}

// DefaultRetryPolicy returns the default retry policy.
func DefaultRetryPolicy() *RetryPolicy {
	return &RetryPolicy{
		MaxAttempts:       constants.DefaultRetryAttempts,
		BaseDelay:         constants.DefaultRetryBaseDelay,
		MaxDelay:          constants.DefaultRetryMaxDelay,
		Jitter:            true,
		RetryableStatuses: []int{429, 500, 502, 503, 504},
	}
}

// Delay returns the pre-jitter backoff before the given retry, computed as
// min(BaseDelay * 2^(attempt-1), MaxDelay). Attempt numbering starts at 1
// for the first retry; attempts below 1 return zero.
func (p *RetryPolicy) Delay(attempt int) time.Duration {
	if attempt < 1 {
		return 0
	}

	delay := p.BaseDelay
	for i := 1; i < attempt; i++ {
		if p.MaxDelay > 0 && delay >= p.MaxDelay {
			return p.MaxDelay
		}

		delay *= 2
	}

	if p.MaxDelay > 0 && delay > p.MaxDelay {
		return p.MaxDelay
	}

	return delay
}

// Retryable reports whether the status code is a retryable outcome class.
func (p *RetryPolicy) Retryable(statusCode int) bool {
	for _, code := range p.RetryableStatuses {
		if code == statusCode {
			return true
		}
	}

	return false
}

// CircuitBreakerConfig controls the admission-control circuit breaker.
// One breaker instance is kept per target host so unrelated targets never
// interfere with each other.
type CircuitBreakerConfig struct {
	// Disabled bypasses the breaker entirely.
	Disabled bool
	// FailureThreshold is the consecutive-failure count that opens the circuit.
	FailureThreshold uint32
	// OpenDuration is how long an open circuit rejects requests before
	// admitting a single half-open trial.
	OpenDuration time.Duration
}

// DefaultCircuitBreakerConfig returns the default breaker configuration.
func DefaultCircuitBreakerConfig() *CircuitBreakerConfig {
	return &CircuitBreakerConfig{
		FailureThreshold: constants.DefaultFailureThreshold,
		OpenDuration:     constants.DefaultOpenDuration,
	}
}

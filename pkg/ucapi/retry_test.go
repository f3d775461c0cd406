package ucapi_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/unifiedcatalog-io/ucapi/pkg/ucapi"
)

func TestRetryPolicy_Delay(t *testing.T) {
	t.Parallel()

	policy := &ucapi.RetryPolicy{
		BaseDelay: 1 * time.Second,
		MaxDelay:  8 * time.Second,
	}

	tests := []struct {
		name    string
		attempt int
		want    time.Duration
	}{
		{"zeroth attempt", 0, 0},
		{"negative attempt", -1, 0},
		{"first retry", 1, 1 * time.Second},
		{"second retry", 2, 2 * time.Second},
		{"third retry", 3, 4 * time.Second},
		{"fourth retry", 4, 8 * time.Second},
		{"capped at max", 5, 8 * time.Second},
		{"far past max", 20, 8 * time.Second},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, policy.Delay(tt.attempt))
		})
	}
}

func TestRetryPolicy_DelayNoMax(t *testing.T) {
	t.Parallel()

	policy := &ucapi.RetryPolicy{
		BaseDelay: 100 * time.Millisecond,
	}

	// Zero MaxDelay means uncapped growth, never a zero sleep.
	assert.Equal(t, 100*time.Millisecond, policy.Delay(1))
	assert.Equal(t, 200*time.Millisecond, policy.Delay(2))
	assert.Equal(t, 400*time.Millisecond, policy.Delay(3))
	assert.Equal(t, 100*time.Millisecond*1024, policy.Delay(11))
}

func TestRetryPolicy_Retryable(t *testing.T) {
	t.Parallel()

	policy := ucapi.DefaultRetryPolicy()

	assert.True(t, policy.Retryable(429))
	assert.True(t, policy.Retryable(500))
	assert.True(t, policy.Retryable(503))
	assert.False(t, policy.Retryable(200))
	assert.False(t, policy.Retryable(400))
	assert.False(t, policy.Retryable(404))
}

func TestDefaultRetryPolicy(t *testing.T) {
	t.Parallel()

	policy := ucapi.DefaultRetryPolicy()

	assert.Equal(t, 3, policy.MaxAttempts)
	assert.Equal(t, 1*time.Second, policy.BaseDelay)
	assert.Equal(t, 60*time.Second, policy.MaxDelay)
	assert.True(t, policy.Jitter)
}

func TestDefaultCircuitBreakerConfig(t *testing.T) {
	t.Parallel()

	config := ucapi.DefaultCircuitBreakerConfig()

	assert.False(t, config.Disabled)
	assert.Equal(t, uint32(5), config.FailureThreshold)
	assert.Equal(t, 60*time.Second, config.OpenDuration)
}

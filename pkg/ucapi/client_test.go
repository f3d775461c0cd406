package ucapi_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unifiedcatalog-io/ucapi/pkg/ucapi"
)

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		config  ucapi.Config
		wantErr error
	}{
		{
			name:   "account ID only",
			config: ucapi.Config{AccountID: "acct-1"},
		},
		{
			name:   "base URL only",
			config: ucapi.Config{BaseURL: "https://example.com"},
		},
		{
			name:    "no account or base URL",
			config:  ucapi.Config{},
			wantErr: ucapi.ErrAccountIDRequired,
		},
		{
			name:    "negative page size",
			config:  ucapi.Config{AccountID: "acct-1", DefaultPageSize: -1},
			wantErr: ucapi.ErrInvalidPageSize,
		},
		{
			name:    "page size above max",
			config:  ucapi.Config{AccountID: "acct-1", DefaultPageSize: 500, MaxPageSize: 100},
			wantErr: ucapi.ErrPageSizeExceedsMax,
		},
		{
			name:    "negative retry attempts",
			config:  ucapi.Config{AccountID: "acct-1", RetryMaxAttempts: -1},
			wantErr: ucapi.ErrNegativeRetrySetting,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.config.Validate()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestConfig_Endpoint(t *testing.T) {
	t.Parallel()

	derived := ucapi.Config{AccountID: "my-account"}
	assert.Equal(t,
		"https://my-account-api.purview-service.microsoft.com/datagovernance/catalog",
		derived.Endpoint())

	overridden := ucapi.Config{AccountID: "my-account", BaseURL: "https://localhost:8443/catalog"}
	assert.Equal(t, "https://localhost:8443/catalog", overridden.Endpoint())
}

func TestConfig_RetryPolicy(t *testing.T) {
	t.Parallel()

	defaults := (&ucapi.Config{AccountID: "acct"}).RetryPolicy()
	assert.Equal(t, 3, defaults.MaxAttempts)
	assert.True(t, defaults.Jitter)

	custom := (&ucapi.Config{
		AccountID:           "acct",
		RetryMaxAttempts:    7,
		RetryBaseDelay:      250 * time.Millisecond,
		RetryMaxDelay:       5 * time.Second,
		RetryJitterDisabled: true,
	}).RetryPolicy()

	assert.Equal(t, 7, custom.MaxAttempts)
	assert.Equal(t, 250*time.Millisecond, custom.BaseDelay)
	assert.Equal(t, 5*time.Second, custom.MaxDelay)
	assert.False(t, custom.Jitter)
}

func TestConfig_BreakerConfig(t *testing.T) {
	t.Parallel()

	defaults := (&ucapi.Config{AccountID: "acct"}).BreakerConfig()
	assert.False(t, defaults.Disabled)
	assert.Equal(t, uint32(5), defaults.FailureThreshold)

	custom := (&ucapi.Config{
		AccountID:              "acct",
		CircuitBreakerDisabled: true,
		FailureThreshold:       2,
		OpenDuration:           10 * time.Second,
	}).BreakerConfig()

	assert.True(t, custom.Disabled)
	assert.Equal(t, uint32(2), custom.FailureThreshold)
	assert.Equal(t, 10*time.Second, custom.OpenDuration)
}

func TestConfig_PageSize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 100, (&ucapi.Config{AccountID: "acct"}).PageSize())
	assert.Equal(t, 25, (&ucapi.Config{AccountID: "acct", DefaultPageSize: 25}).PageSize())
}

package auth_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/unifiedcatalog-io/ucapi/internal/auth"
)

func TestToken_Valid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		token    *auth.Token
		expected bool
	}{
		{
			name:     "nil token",
			token:    nil,
			expected: false,
		},
		{
			name:     "empty access token",
			token:    &auth.Token{},
			expected: false,
		},
		{
			name: "no expiry",
			token: &auth.Token{
				AccessToken: "token",
			},
			expected: true,
		},
		{
			name: "well before expiry",
			token: &auth.Token{
				AccessToken: "token",
				ExpiresAt:   time.Now().Add(1 * time.Hour),
			},
			expected: true,
		},
		{
			name: "inside expiration buffer",
			token: &auth.Token{
				AccessToken: "token",
				ExpiresAt:   time.Now().Add(1 * time.Minute),
			},
			expected: false,
		},
		{
			name: "already expired",
			token: &auth.Token{
				AccessToken: "token",
				ExpiresAt:   time.Now().Add(-1 * time.Minute),
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.token.Valid())
		})
	}
}

func TestTokenStore(t *testing.T) {
	t.Parallel()

	store := auth.NewTokenStore()

	assert.Nil(t, store.Get())

	token := &auth.Token{AccessToken: "token", ExpiresAt: time.Now().Add(time.Hour)}
	store.Set(token)
	assert.Equal(t, token, store.Get())

	store.Clear()
	assert.Nil(t, store.Get())
}

func TestTokenStore_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	store := auth.NewTokenStore()

	var wg sync.WaitGroup

	for n := 0; n < 10; n++ {
		wg.Add(2)

		go func() {
			defer wg.Done()
			store.Set(&auth.Token{AccessToken: "token"})
		}()

		go func() {
			defer wg.Done()
			_ = store.Get()
		}()
	}

	wg.Wait()

	assert.NotNil(t, store.Get())
}

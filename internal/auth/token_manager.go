package auth

import (
	"context"
	"errors"
)

// Static errors for err113 compliance.
var (
	ErrNoToken        = errors.New("no access token configured")
	ErrStaticToken    = errors.New("static tokens cannot be refreshed")
	ErrNoCredentials  = errors.New("no valid credentials available")
	ErrTokenExchange  = errors.New("token exchange failed")
	ErrEmptyToken     = errors.New("token endpoint returned an empty access token")
	ErrTenantRequired = errors.New("tenant ID is required for client credentials authentication")
)

// TokenManager provides access tokens for API requests.
type TokenManager interface {
	// GetToken returns a valid access token, refreshing if necessary.
	GetToken(ctx context.Context) (string, error)
	// RefreshToken forces a token refresh.
	RefreshToken(ctx context.Context) error
}

// StaticTokenManager returns a fixed token and never refreshes it. It is used
// when the caller supplies a pre-acquired access token.
type StaticTokenManager struct {
	token string
}

// NewStaticTokenManager creates a token manager around a fixed token.
func NewStaticTokenManager(token string) *StaticTokenManager {
	return &StaticTokenManager{token: token}
}

// GetToken returns the configured token.
func (m *StaticTokenManager) GetToken(ctx context.Context) (string, error) {
	if m.token == "" {
		return "", ErrNoToken
	}

	return m.token, nil
}

// RefreshToken is not supported for static tokens.
func (m *StaticTokenManager) RefreshToken(ctx context.Context) error {
	return ErrStaticToken
}

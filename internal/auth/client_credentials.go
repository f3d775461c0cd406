package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/unifiedcatalog-io/ucapi/internal/constants"
)

// ClientCredentialsConfig holds the settings for the Microsoft Entra ID
// client credentials grant.
type ClientCredentialsConfig struct {
	// TenantID is the directory tenant the service principal lives in.
	TenantID string
	// ClientID is the application (client) ID of the service principal.
	ClientID string
	// ClientSecret is the client secret of the service principal.
	ClientSecret string
	// Scope is the resource scope requested for the token.
	Scope string
	// AuthorityHost overrides the login authority, mainly for tests and
	// sovereign clouds. Defaults to the public Azure authority.
	AuthorityHost string
	// HTTPClient is the client used for token requests.
	HTTPClient *http.Client
}

// ClientCredentialsTokenManager acquires tokens via the client credentials
// grant and caches them until shortly before expiry. Transient token endpoint
// failures are retried with exponential backoff; credential rejections are
// not.
type ClientCredentialsTokenManager struct {
	config     *ClientCredentialsConfig
	store      *TokenStore
	httpClient *http.Client
	mutex      sync.Mutex
}

// NewClientCredentialsTokenManager creates a token manager for the client
// credentials grant.
func NewClientCredentialsTokenManager(config *ClientCredentialsConfig) *ClientCredentialsTokenManager {
	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: constants.TokenHTTPTimeout}
	}

	return &ClientCredentialsTokenManager{
		config:     config,
		store:      NewTokenStore(),
		httpClient: httpClient,
	}
}

// GetToken returns the cached token if still valid, otherwise acquires a new
// one.
func (m *ClientCredentialsTokenManager) GetToken(ctx context.Context) (string, error) {
	token := m.store.Get()
	if token.Valid() {
		return token.AccessToken, nil
	}

	err := m.RefreshToken(ctx)
	if err != nil {
		return "", err
	}

	return m.store.Get().AccessToken, nil
}

// RefreshToken acquires a new token regardless of the cached one.
func (m *ClientCredentialsTokenManager) RefreshToken(ctx context.Context) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	// Another caller may have refreshed while we waited for the lock.
	if m.store.Get().Valid() {
		return nil
	}

	if m.config.TenantID == "" {
		return ErrTenantRequired
	}

	if m.config.ClientID == "" || m.config.ClientSecret == "" {
		return ErrNoCredentials
	}

	var token *Token

	backoff := retry.WithMaxRetries(
		constants.TokenRetryAttempts-1,
		retry.NewExponential(constants.TokenRetryBaseDelay),
	)

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		fetched, fetchErr := m.requestToken(ctx)
		if fetchErr != nil {
			if isTransientTokenError(fetchErr) {
				return retry.RetryableError(fetchErr)
			}

			return fetchErr
		}

		token = fetched

		return nil
	})
	if err != nil {
		return err
	}

	m.store.Set(token)

	return nil
}

// SetToken manually sets the cached token.
func (m *ClientCredentialsTokenManager) SetToken(accessToken string, expiresAt time.Time) {
	m.store.Set(&Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	})
}

func (m *ClientCredentialsTokenManager) requestToken(ctx context.Context) (*Token, error) {
	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {m.config.ClientID},
		"client_secret": {m.config.ClientSecret},
		"scope":         {m.scope()},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.tokenURL(), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create token request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, &transientTokenError{err: fmt.Errorf("token request failed: %w", err)}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &transientTokenError{err: fmt.Errorf("failed to read token response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		tokenErr := parseTokenError(resp.StatusCode, body)
		if resp.StatusCode >= http.StatusInternalServerError {
			return nil, &transientTokenError{err: tokenErr}
		}

		return nil, tokenErr
	}

	var token Token

	err = json.Unmarshal(body, &token)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token response: %w", err)
	}

	if token.AccessToken == "" {
		return nil, ErrEmptyToken
	}

	if token.ExpiresIn > 0 {
		token.ExpiresAt = time.Now().Add(time.Duration(token.ExpiresIn) * time.Second)
	}

	return &token, nil
}

func (m *ClientCredentialsTokenManager) tokenURL() string {
	authority := m.config.AuthorityHost
	if authority == "" {
		authority = constants.DefaultAuthorityHost
	}

	return fmt.Sprintf("%s/%s/oauth2/v2.0/token", strings.TrimSuffix(authority, "/"), m.config.TenantID)
}

func (m *ClientCredentialsTokenManager) scope() string {
	if m.config.Scope != "" {
		return m.config.Scope
	}

	return constants.DefaultResourceScope
}

type tokenErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func parseTokenError(statusCode int, body []byte) error {
	var response tokenErrorResponse

	err := json.Unmarshal(body, &response)
	if err == nil && response.Error != "" {
		return fmt.Errorf("%w (status %d): %s: %s", ErrTokenExchange, statusCode, response.Error, response.ErrorDescription)
	}

	return fmt.Errorf("%w (status %d): %s", ErrTokenExchange, statusCode, strings.TrimSpace(string(body)))
}

type transientTokenError struct {
	err error
}

func (e *transientTokenError) Error() string { return e.err.Error() }

func (e *transientTokenError) Unwrap() error { return e.err }

func isTransientTokenError(err error) bool {
	var transient *transientTokenError

	return errors.As(err, &transient)
}

package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unifiedcatalog-io/ucapi/internal/auth"
)

func TestStaticTokenManager(t *testing.T) {
	t.Parallel()

	manager := auth.NewStaticTokenManager("static-token")

	token, err := manager.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "static-token", token)

	err = manager.RefreshToken(context.Background())
	require.ErrorIs(t, err, auth.ErrStaticToken)
}

func TestStaticTokenManager_Empty(t *testing.T) {
	t.Parallel()

	manager := auth.NewStaticTokenManager("")

	_, err := manager.GetToken(context.Background())
	require.ErrorIs(t, err, auth.ErrNoToken)
}

func TestClientCredentialsTokenManager_GetToken(t *testing.T) {
	t.Parallel()

	var requests atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)

		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/test-tenant/oauth2/v2.0/token", r.URL.Path)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
		assert.Equal(t, "test-client", r.PostForm.Get("client_id"))
		assert.Equal(t, "test-secret", r.PostForm.Get("client_secret"))
		assert.NotEmpty(t, r.PostForm.Get("scope"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"issued-token","token_type":"Bearer","expires_in":3600}`))
	}))
	defer server.Close()

	manager := auth.NewClientCredentialsTokenManager(&auth.ClientCredentialsConfig{
		TenantID:      "test-tenant",
		ClientID:      "test-client",
		ClientSecret:  "test-secret",
		AuthorityHost: server.URL,
	})

	token, err := manager.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "issued-token", token)

	// A second call must come from the cache
	token, err = manager.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "issued-token", token)
	assert.Equal(t, int32(1), requests.Load())
}

func TestClientCredentialsTokenManager_CustomScope(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "custom-scope/.default", r.PostForm.Get("scope"))

		_, _ = w.Write([]byte(`{"access_token":"issued-token","token_type":"Bearer","expires_in":3600}`))
	}))
	defer server.Close()

	manager := auth.NewClientCredentialsTokenManager(&auth.ClientCredentialsConfig{
		TenantID:      "test-tenant",
		ClientID:      "test-client",
		ClientSecret:  "test-secret",
		Scope:         "custom-scope/.default",
		AuthorityHost: server.URL,
	})

	_, err := manager.GetToken(context.Background())
	require.NoError(t, err)
}

func TestClientCredentialsTokenManager_RetriesServerErrors(t *testing.T) {
	t.Parallel()

	var requests atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requests.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)

			return
		}

		_, _ = w.Write([]byte(`{"access_token":"issued-token","token_type":"Bearer","expires_in":3600}`))
	}))
	defer server.Close()

	manager := auth.NewClientCredentialsTokenManager(&auth.ClientCredentialsConfig{
		TenantID:      "test-tenant",
		ClientID:      "test-client",
		ClientSecret:  "test-secret",
		AuthorityHost: server.URL,
	})

	token, err := manager.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "issued-token", token)
	assert.Equal(t, int32(2), requests.Load())
}

func TestClientCredentialsTokenManager_CredentialRejection(t *testing.T) {
	t.Parallel()

	var requests atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid_client","error_description":"client secret is invalid"}`))
	}))
	defer server.Close()

	manager := auth.NewClientCredentialsTokenManager(&auth.ClientCredentialsConfig{
		TenantID:      "test-tenant",
		ClientID:      "test-client",
		ClientSecret:  "wrong-secret",
		AuthorityHost: server.URL,
	})

	_, err := manager.GetToken(context.Background())
	require.ErrorIs(t, err, auth.ErrTokenExchange)
	assert.Contains(t, err.Error(), "invalid_client")

	// Credential rejections must not be retried
	assert.Equal(t, int32(1), requests.Load())
}

func TestClientCredentialsTokenManager_MissingSettings(t *testing.T) {
	t.Parallel()

	noTenant := auth.NewClientCredentialsTokenManager(&auth.ClientCredentialsConfig{
		ClientID:     "test-client",
		ClientSecret: "test-secret",
	})

	_, err := noTenant.GetToken(context.Background())
	require.ErrorIs(t, err, auth.ErrTenantRequired)

	noSecret := auth.NewClientCredentialsTokenManager(&auth.ClientCredentialsConfig{
		TenantID: "test-tenant",
		ClientID: "test-client",
	})

	_, err = noSecret.GetToken(context.Background())
	require.ErrorIs(t, err, auth.ErrNoCredentials)
}

func TestClientCredentialsTokenManager_EmptyTokenResponse(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"access_token":"","token_type":"Bearer"}`))
	}))
	defer server.Close()

	manager := auth.NewClientCredentialsTokenManager(&auth.ClientCredentialsConfig{
		TenantID:      "test-tenant",
		ClientID:      "test-client",
		ClientSecret:  "test-secret",
		AuthorityHost: server.URL,
	})

	_, err := manager.GetToken(context.Background())
	require.ErrorIs(t, err, auth.ErrEmptyToken)
}

func TestClientCredentialsTokenManager_SetToken(t *testing.T) {
	t.Parallel()

	manager := auth.NewClientCredentialsTokenManager(&auth.ClientCredentialsConfig{
		TenantID:     "test-tenant",
		ClientID:     "test-client",
		ClientSecret: "test-secret",
	})

	manager.SetToken("preloaded", time.Now().Add(time.Hour))

	token, err := manager.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "preloaded", token)
}

func TestClientCredentialsTokenManager_RefreshReplacesExpired(t *testing.T) {
	t.Parallel()

	var requests atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		_, _ = w.Write([]byte(`{"access_token":"fresh-token","token_type":"Bearer","expires_in":3600}`))
	}))
	defer server.Close()

	manager := auth.NewClientCredentialsTokenManager(&auth.ClientCredentialsConfig{
		TenantID:      "test-tenant",
		ClientID:      "test-client",
		ClientSecret:  "test-secret",
		AuthorityHost: server.URL,
	})

	manager.SetToken("stale", time.Now().Add(-time.Minute))

	token, err := manager.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fresh-token", token)
	assert.Equal(t, int32(1), requests.Load())
}

package ucclient

import (
	"fmt"
	"strings"

	"github.com/unifiedcatalog-io/ucapi/internal/client"
	"github.com/unifiedcatalog-io/ucapi/pkg/ucapi"
)

// New creates a Unified Catalog API client for the given configuration.
func New(config *ucapi.Config) (ucapi.Client, error) {
	if config == nil {
		return nil, ucapi.ErrConfigRequired
	}

	if config.BaseURL != "" {
		config.BaseURL = normalizeEndpoint(config.BaseURL)
	}

	apiClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// NewWithConnectionString creates a client from a semicolon-delimited
// connection string of the form
// "AccountId=...;TenantId=...;ClientId=...;ClientSecret=...".
func NewWithConnectionString(connectionString string) (ucapi.Client, error) {
	config, err := ucapi.ParseConnectionString(connectionString)
	if err != nil {
		return nil, err
	}

	return New(config)
}

// NewFromEnv creates a client from the conventional configuration sources
// (connection string, config file, environment variables).
func NewFromEnv() (ucapi.Client, error) {
	config, err := ucapi.LoadDefaultConfig()
	if err != nil {
		return nil, err
	}

	return New(config)
}

// NewWithToken creates a client that authenticates with a pre-acquired
// access token.
func NewWithToken(accountID, accessToken string) (ucapi.Client, error) {
	return New(&ucapi.Config{
		AccountID:   accountID,
		AccessToken: accessToken,
	})
}

// NewWithClientCredentials creates a client that authenticates with the
// client credentials grant.
func NewWithClientCredentials(accountID, tenantID, clientID, clientSecret string) (ucapi.Client, error) {
	return New(&ucapi.Config{
		AccountID:    accountID,
		TenantID:     tenantID,
		ClientID:     clientID,
		ClientSecret: clientSecret,
	})
}

// normalizeEndpoint trims trailing slashes and defaults the scheme to https.
func normalizeEndpoint(endpoint string) string {
	endpoint = strings.TrimSuffix(endpoint, "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	return endpoint
}

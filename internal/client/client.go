// Package client implements the ucapi.Client interface on top of the
// resilient HTTP layer.
package client

import (
	"fmt"

	"github.com/unifiedcatalog-io/ucapi/internal/auth"
	"github.com/unifiedcatalog-io/ucapi/internal/http"
	"github.com/unifiedcatalog-io/ucapi/pkg/ucapi"
)

// Client implements the ucapi.Client interface.
type Client struct {
	httpClient   *http.Client
	tokenManager auth.TokenManager
	baseURL      string
	logger       ucapi.Logger

	// Resource clients
	governanceDomains    ucapi.GovernanceDomainsClient
	terms                ucapi.TermsClient
	dataProducts         ucapi.DataProductsClient
	objectives           ucapi.ObjectivesClient
	keyResults           ucapi.KeyResultsClient
	criticalDataElements ucapi.CriticalDataElementsClient
	relationships        ucapi.RelationshipsClient
}

// New creates a Unified Catalog API client from the configuration.
func New(config *ucapi.Config) (*Client, error) {
	err := config.Validate()
	if err != nil {
		return nil, err
	}

	httpOpts, err := createHTTPClientOptions(config)
	if err != nil {
		return nil, err
	}

	tokenManager := createTokenManager(config)
	httpClient := http.NewClient(config.Endpoint(), tokenManager, httpOpts...)

	client := &Client{
		httpClient:   httpClient,
		tokenManager: tokenManager,
		baseURL:      config.Endpoint(),
		logger:       config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// NewWithTokenManager creates a client with a caller-supplied token manager.
func NewWithTokenManager(config *ucapi.Config, tokenManager auth.TokenManager) (*Client, error) {
	err := config.Validate()
	if err != nil {
		return nil, err
	}

	httpOpts, err := createHTTPClientOptions(config)
	if err != nil {
		return nil, err
	}

	httpClient := http.NewClient(config.Endpoint(), tokenManager, httpOpts...)

	client := &Client{
		httpClient:   httpClient,
		tokenManager: tokenManager,
		baseURL:      config.Endpoint(),
		logger:       config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// createTokenManager picks a token manager based on available credentials.
func createTokenManager(config *ucapi.Config) auth.TokenManager {
	if config.AccessToken != "" {
		return auth.NewStaticTokenManager(config.AccessToken)
	}

	if config.ClientID != "" && config.ClientSecret != "" {
		return auth.NewClientCredentialsTokenManager(&auth.ClientCredentialsConfig{
			TenantID:      config.TenantID,
			ClientID:      config.ClientID,
			ClientSecret:  config.ClientSecret,
			Scope:         config.ResourceScope,
			AuthorityHost: config.AuthorityHost,
		})
	}

	return nil // No authentication
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *ucapi.Config) ([]http.Option, error) {
	httpOpts := []http.Option{
		http.WithRetryPolicy(config.RetryPolicy()),
		http.WithCircuitBreaker(config.BreakerConfig()),
	}

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.Cache != nil {
		cache, err := ucapi.NewCacheFromConfig(config.Cache)
		if err != nil {
			return nil, fmt.Errorf("failed to create cache: %w", err)
		}

		manager := ucapi.NewCacheManager(cache, config.Logger)
		requestInterceptor, responseInterceptor := ucapi.CacheInterceptor(manager, ucapi.DefaultCachingPolicy())

		chain := ucapi.NewInterceptorChain()
		chain.AddRequestInterceptor(requestInterceptor)
		chain.AddResponseInterceptor(responseInterceptor)

		httpOpts = append(httpOpts, http.WithInterceptors(chain))
	}

	return httpOpts, nil
}

func (c *Client) initializeResourceClients() {
	c.governanceDomains = NewGovernanceDomainsClient(c.httpClient)
	c.terms = NewTermsClient(c.httpClient)
	c.dataProducts = NewDataProductsClient(c.httpClient)
	c.objectives = NewObjectivesClient(c.httpClient)
	c.keyResults = NewKeyResultsClient(c.httpClient)
	c.criticalDataElements = NewCriticalDataElementsClient(c.httpClient)
	c.relationships = NewRelationshipsClient(c.httpClient)
}

// GovernanceDomains returns the governance domains client.
func (c *Client) GovernanceDomains() ucapi.GovernanceDomainsClient {
	return c.governanceDomains
}

// Terms returns the glossary terms client.
func (c *Client) Terms() ucapi.TermsClient {
	return c.terms
}

// DataProducts returns the data products client.
func (c *Client) DataProducts() ucapi.DataProductsClient {
	return c.dataProducts
}

// Objectives returns the objectives client.
func (c *Client) Objectives() ucapi.ObjectivesClient {
	return c.objectives
}

// KeyResults returns the key results client.
func (c *Client) KeyResults() ucapi.KeyResultsClient {
	return c.keyResults
}

// CriticalDataElements returns the critical data elements client.
func (c *Client) CriticalDataElements() ucapi.CriticalDataElementsClient {
	return c.criticalDataElements
}

// Relationships returns the relationships client.
func (c *Client) Relationships() ucapi.RelationshipsClient {
	return c.relationships
}

// HTTPClient exposes the underlying HTTP client for advanced use.
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

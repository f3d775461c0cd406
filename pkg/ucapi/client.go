package ucapi

import (
	"context"
	"fmt"
	"time"

	"github.com/unifiedcatalog-io/ucapi/internal/constants"
)

// GovernanceDomainsClient manages governance domains.
type GovernanceDomainsClient interface {
	Create(ctx context.Context, request *GovernanceDomainCreateRequest) (*GovernanceDomain, error)
	Get(ctx context.Context, id string) (*GovernanceDomain, error)
	Update(ctx context.Context, id string, request *GovernanceDomainUpdateRequest) (*GovernanceDomain, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, params *QueryParams) (*ListResponse[GovernanceDomain], error)
	ListWithPath(ctx context.Context, path string, params *QueryParams) (*ListResponse[GovernanceDomain], error)
	ListAll(ctx context.Context) ([]GovernanceDomain, error)
}

// TermsClient manages glossary terms.
type TermsClient interface {
	Create(ctx context.Context, request *TermCreateRequest) (*Term, error)
	Get(ctx context.Context, id string) (*Term, error)
	Update(ctx context.Context, id string, request *TermUpdateRequest) (*Term, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, params *QueryParams) (*ListResponse[Term], error)
	ListWithPath(ctx context.Context, path string, params *QueryParams) (*ListResponse[Term], error)
	ListAll(ctx context.Context, domainID string) ([]Term, error)
}

// DataProductsClient manages data products.
type DataProductsClient interface {
	Create(ctx context.Context, request *DataProductCreateRequest) (*DataProduct, error)
	Get(ctx context.Context, id string) (*DataProduct, error)
	Update(ctx context.Context, id string, request *DataProductUpdateRequest) (*DataProduct, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, params *QueryParams) (*ListResponse[DataProduct], error)
	ListWithPath(ctx context.Context, path string, params *QueryParams) (*ListResponse[DataProduct], error)
	ListAll(ctx context.Context, domainID string) ([]DataProduct, error)
}

// ObjectivesClient manages objectives.
type ObjectivesClient interface {
	Create(ctx context.Context, request *ObjectiveCreateRequest) (*Objective, error)
	Get(ctx context.Context, id string) (*Objective, error)
	Update(ctx context.Context, id string, request *ObjectiveUpdateRequest) (*Objective, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, params *QueryParams) (*ListResponse[Objective], error)
	ListWithPath(ctx context.Context, path string, params *QueryParams) (*ListResponse[Objective], error)
	ListAll(ctx context.Context, domainID string) ([]Objective, error)
}

// KeyResultsClient manages key results scoped to an objective.
type KeyResultsClient interface {
	Create(ctx context.Context, objectiveID string, request *KeyResultCreateRequest) (*KeyResult, error)
	Get(ctx context.Context, objectiveID, id string) (*KeyResult, error)
	Update(ctx context.Context, objectiveID, id string, request *KeyResultUpdateRequest) (*KeyResult, error)
	Delete(ctx context.Context, objectiveID, id string) error
	List(ctx context.Context, objectiveID string, params *QueryParams) (*ListResponse[KeyResult], error)
}

// CriticalDataElementsClient manages critical data elements.
type CriticalDataElementsClient interface {
	Create(ctx context.Context, request *CriticalDataElementCreateRequest) (*CriticalDataElement, error)
	Get(ctx context.Context, id string) (*CriticalDataElement, error)
	Update(ctx context.Context, id string, request *CriticalDataElementUpdateRequest) (*CriticalDataElement, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, params *QueryParams) (*ListResponse[CriticalDataElement], error)
	ListWithPath(ctx context.Context, path string, params *QueryParams) (*ListResponse[CriticalDataElement], error)
	ListAll(ctx context.Context, domainID string) ([]CriticalDataElement, error)
}

// RelationshipsClient manages relationships between catalog entities.
// Collection is the path segment of the owning entity (CollectionTerms,
// CollectionDataProducts, CollectionCriticalDataElements).
type RelationshipsClient interface {
	Add(ctx context.Context, collection, entityID string, request *RelationshipCreateRequest) (*Relationship, error)
	List(ctx context.Context, collection, entityID string, entityType EntityType) (*ListResponse[Relationship], error)
	Delete(ctx context.Context, collection, entityID string, entityType EntityType, targetID string) error
}

// Client is the full Unified Catalog API surface.
type Client interface {
	GovernanceDomains() GovernanceDomainsClient
	Terms() TermsClient
	DataProducts() DataProductsClient
	Objectives() ObjectivesClient
	KeyResults() KeyResultsClient
	CriticalDataElements() CriticalDataElementsClient
	Relationships() RelationshipsClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a ucapi.Client.
//
// # Authentication precedence
//
//  1. AccessToken: used directly as a static Bearer token.
//  2. TenantID/ClientID/ClientSecret: client-credentials grant against Azure
//     AD, with the token cached and refreshed before expiry.
//  3. No credentials: requests are sent without authentication (only useful
//     against test doubles).
//
// # Endpoint
//
// BaseURL wins when set; otherwise the endpoint is derived from AccountID as
// https://{accountID}-api.purview-service.microsoft.com/datagovernance/catalog.
type Config struct {
	// AccountID is the Purview account ID used to derive the endpoint.
	AccountID string
	// BaseURL overrides the derived endpoint when set.
	BaseURL string

	// Authentication options (provide one)
	TenantID     string
	ClientID     string
	ClientSecret string
	AccessToken  string
	// ResourceScope is the OAuth2 scope requested for tokens. Defaults to the
	// Purview data-plane scope.
	ResourceScope string
	// AuthorityHost overrides the Azure AD authority, mainly for tests.
	AuthorityHost string

	// Retry settings. Zero values fall back to the defaults in DefaultRetryPolicy.
	RetryMaxAttempts int
	RetryBaseDelay   time.Duration
	RetryMaxDelay    time.Duration
	// RetryJitterDisabled turns off the random jitter applied to backoff delays.
	RetryJitterDisabled bool

	// Circuit breaker settings.
	CircuitBreakerDisabled bool
	FailureThreshold       uint32
	OpenDuration           time.Duration

	// Pagination settings.
	DefaultPageSize int
	MaxPageSize     int

	// Cache configures response caching. Nil disables it.
	Cache *CacheConfig

	// Optional configurations
	HTTPTimeout time.Duration
	UserAgent   string
	Debug       bool
	Logger      Logger
}

// Validate checks the configuration for local precondition failures.
func (c *Config) Validate() error {
	if c.AccountID == "" && c.BaseURL == "" {
		return ErrAccountIDRequired
	}

	if c.DefaultPageSize < 0 {
		return fmt.Errorf("%w: default page size %d", ErrInvalidPageSize, c.DefaultPageSize)
	}

	maxPage := c.MaxPageSize
	if maxPage <= 0 {
		maxPage = constants.MaxPageSize
	}

	if c.DefaultPageSize > maxPage {
		return fmt.Errorf("%w: %d > %d", ErrPageSizeExceedsMax, c.DefaultPageSize, maxPage)
	}

	if c.RetryMaxAttempts < 0 || c.RetryBaseDelay < 0 || c.RetryMaxDelay < 0 {
		return ErrNegativeRetrySetting
	}

	return nil
}

// Endpoint returns the effective API endpoint for this configuration.
func (c *Config) Endpoint() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}

	return fmt.Sprintf(constants.EndpointFormat, c.AccountID)
}

// RetryPolicy derives the retry policy from this configuration, applying
// defaults for unset fields.
func (c *Config) RetryPolicy() *RetryPolicy {
	policy := DefaultRetryPolicy()

	if c.RetryMaxAttempts > 0 {
		policy.MaxAttempts = c.RetryMaxAttempts
	}

	if c.RetryBaseDelay > 0 {
		policy.BaseDelay = c.RetryBaseDelay
	}

	if c.RetryMaxDelay > 0 {
		policy.MaxDelay = c.RetryMaxDelay
	}

	policy.Jitter = !c.RetryJitterDisabled

	return policy
}

// BreakerConfig derives the circuit breaker configuration, applying defaults
// for unset fields.
func (c *Config) BreakerConfig() *CircuitBreakerConfig {
	cfg := DefaultCircuitBreakerConfig()
	cfg.Disabled = c.CircuitBreakerDisabled

	if c.FailureThreshold > 0 {
		cfg.FailureThreshold = c.FailureThreshold
	}

	if c.OpenDuration > 0 {
		cfg.OpenDuration = c.OpenDuration
	}

	return cfg
}

// PageSize returns the configured default page size or the package default.
func (c *Config) PageSize() int {
	if c.DefaultPageSize > 0 {
		return c.DefaultPageSize
	}

	return constants.DefaultPageSize
}

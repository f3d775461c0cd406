package constants

import "time"

// Endpoint construction.
const (
	// EndpointFormat builds the data-plane endpoint from a Purview account ID.
	EndpointFormat = "https://%s-api.purview-service.microsoft.com/datagovernance/catalog"

	// DefaultResourceScope is the OAuth2 scope for Purview data-plane tokens.
	DefaultResourceScope = "73c2949e-da2d-457a-9607-fcc665198967/.default"

	// DefaultAuthorityHost is the Azure AD authority used for token requests.
	DefaultAuthorityHost = "https://login.microsoftonline.com"
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the per-attempt ceiling for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// TokenHTTPTimeout is the timeout for token endpoint requests.
	TokenHTTPTimeout = 15 * time.Second
)

// Retry defaults.
const (
	// DefaultRetryAttempts is the default total number of attempts.
	DefaultRetryAttempts = 3

	// DefaultRetryBaseDelay is the delay before the first retry.
	DefaultRetryBaseDelay = 1 * time.Second

	// DefaultRetryMaxDelay caps the backoff delay between retries.
	DefaultRetryMaxDelay = 60 * time.Second

	// TokenRetryAttempts is the attempt budget for token requests.
	TokenRetryAttempts = 3

	// TokenRetryBaseDelay is the backoff base for token requests.
	TokenRetryBaseDelay = 500 * time.Millisecond
)

// Circuit breaker defaults.
const (
	// DefaultFailureThreshold is the consecutive-failure count that opens the circuit.
	DefaultFailureThreshold = 5

	// DefaultOpenDuration is how long an open circuit rejects before a trial.
	DefaultOpenDuration = 60 * time.Second
)

// Pagination defaults.
const (
	// DefaultPageSize is the default number of items per page.
	DefaultPageSize = 100

	// MaxPageSize is the largest page size the service accepts.
	MaxPageSize = 1000

	// StandardPageSize is the common page size for CLI listings.
	StandardPageSize = 50
)

// Cache defaults.
const (
	// DefaultCacheSize is the maximum number of cached entries.
	DefaultCacheSize = 1000

	// DefaultCacheTTL is the default time-to-live for cached responses.
	DefaultCacheTTL = 5 * time.Minute
)

// Token handling.
const (
	// TokenExpirationBuffer is the buffer time before token expiration.
	TokenExpirationBuffer = 2 * time.Minute
)

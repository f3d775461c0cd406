package ucapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError represents an error response from the Unified Catalog service.
// The service reports errors in the usual Azure envelope:
//
//	{"error": {"code": "...", "message": "...", "details": [...]}}
type APIError struct {
	StatusCode int              `json:"-"                 yaml:"-"`
	Code       string           `json:"code"              yaml:"code"`
	Message    string           `json:"message"           yaml:"message"`
	Target     string           `json:"target,omitempty"  yaml:"target,omitempty"`
	Details    []APIErrorDetail `json:"details,omitempty" yaml:"details,omitempty"`
}

// APIErrorDetail carries a nested error detail entry.
type APIErrorDetail struct {
	Code    string `json:"code"             yaml:"code"`
	Message string `json:"message"          yaml:"message"`
	Target  string `json:"target,omitempty" yaml:"target,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s (status: %d)", e.Code, e.Message, e.StatusCode)
	}

	return fmt.Sprintf("%s (status: %d)", e.Message, e.StatusCode)
}

// ErrorResponse is the wire envelope for service errors.
type ErrorResponse struct {
	Error *APIError `json:"error"`
}

// ParseErrorResponse builds an APIError from a non-2xx response body.
// Bodies that are not the expected envelope still produce a usable error
// carrying the status code and the raw text.
func ParseErrorResponse(statusCode int, body []byte) *APIError {
	var envelope ErrorResponse

	err := json.Unmarshal(body, &envelope)
	if err == nil && envelope.Error != nil {
		envelope.Error.StatusCode = statusCode

		return envelope.Error
	}

	return &APIError{
		StatusCode: statusCode,
		Message:    strings.TrimSpace(string(body)),
	}
}

// RetryExhaustedError wraps the last underlying error after the retry
// budget has been spent.
type RetryExhaustedError struct {
	Attempts int
	Method   string
	URL      string
	Err      error
}

// Error implements the error interface.
func (e *RetryExhaustedError) Error() string {
	return fmt.Sprintf("%s %s: giving up after %d attempt(s): %v", e.Method, e.URL, e.Attempts, e.Err)
}

// Unwrap implements error unwrapping for errors.Is and errors.As.
func (e *RetryExhaustedError) Unwrap() error {
	return e.Err
}

// Static errors for err113 compliance.
var (
	ErrCircuitOpen             = errors.New("circuit breaker is open")
	ErrRequestTimeout          = errors.New("request timed out")
	ErrAuthenticationFailed    = errors.New("authentication failed")
	ErrInvalidPageSize         = errors.New("page size must be positive")
	ErrConfigRequired          = errors.New("config is required")
	ErrAccountIDRequired       = errors.New("account ID or base URL is required")
	ErrPageSizeExceedsMax      = errors.New("default page size cannot exceed max page size")
	ErrNegativeRetrySetting    = errors.New("retry settings cannot be negative")
	ErrNoMoreItems             = errors.New("no more items")
	ErrEmptyConnectionString   = errors.New("connection string cannot be empty")
	ErrUnsupportedConfigFormat = errors.New("unsupported configuration file format")
	ErrEntityIDRequired        = errors.New("entity ID is required")
	ErrObjectiveIDRequired     = errors.New("objective ID is required")
	ErrCollectionRequired      = errors.New("relationship collection is required")
)

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsUnauthorized checks if the error is an authentication error from the service.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

// IsForbidden checks if the error is a permission error.
func IsForbidden(err error) bool {
	return hasStatus(err, http.StatusForbidden)
}

// IsConflict checks if the error is a conflict error.
func IsConflict(err error) bool {
	return hasStatus(err, http.StatusConflict)
}

// IsCircuitOpen checks if the error is a circuit breaker rejection.
func IsCircuitOpen(err error) bool {
	return errors.Is(err, ErrCircuitOpen)
}

// IsRetryExhausted checks if the error wraps a spent retry budget.
func IsRetryExhausted(err error) bool {
	exhausted := &RetryExhaustedError{}

	return errors.As(err, &exhausted)
}

// IsTimeout checks if the error is a request timeout.
func IsTimeout(err error) bool {
	return errors.Is(err, ErrRequestTimeout)
}

func hasStatus(err error, statusCode int) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == statusCode
	}

	return false
}

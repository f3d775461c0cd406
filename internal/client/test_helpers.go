package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/unifiedcatalog-io/ucapi/internal/http"
	"github.com/unifiedcatalog-io/ucapi/pkg/ucapi"
)

// NewTestClient creates a client against a test server, without
// authentication.
func NewTestClient(baseURL string) *Client {
	httpClient := internalhttp.NewClient(baseURL, nil,
		internalhttp.WithCircuitBreaker(&ucapi.CircuitBreakerConfig{Disabled: true}))

	client := &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
	}

	client.initializeResourceClients()

	return client
}

// TestGetOperation represents a generic get operation test case.
type TestGetOperation[TResponse any] struct {
	Name         string
	ID           string
	ExpectedPath string
	StatusCode   int
	Response     interface{}
	WantErr      bool
	ErrMessage   string
}

// RunGetTests runs table-driven get operation tests against a test server.
func RunGetTests[TResponse any](
	t *testing.T,
	tests []TestGetOperation[TResponse],
	getFunc func(client *Client, ctx context.Context, id string) (*TResponse, error),
	validateFunc func(t *testing.T, expected interface{}, actual *TResponse),
) {
	t.Helper()

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.ExpectedPath, r.URL.Path)
				assert.Equal(t, http.MethodGet, r.Method)

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.StatusCode)
				_ = json.NewEncoder(w).Encode(tt.Response)
			}))
			defer server.Close()

			client := NewTestClient(server.URL)

			result, err := getFunc(client, context.Background(), tt.ID)
			if tt.WantErr {
				require.Error(t, err)

				if tt.ErrMessage != "" {
					assert.Contains(t, err.Error(), tt.ErrMessage)
				}

				return
			}

			require.NoError(t, err)

			if validateFunc != nil {
				validateFunc(t, tt.Response, result)
			}
		})
	}
}

// TestDeleteOperation represents a generic delete operation test case.
type TestDeleteOperation struct {
	Name         string
	ID           string
	ExpectedPath string
	StatusCode   int
	WantErr      bool
	ErrMessage   string
}

// RunDeleteTests runs table-driven delete operation tests against a test
// server.
func RunDeleteTests(
	t *testing.T,
	tests []TestDeleteOperation,
	deleteFunc func(client *Client, ctx context.Context, id string) error,
) {
	t.Helper()

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.ExpectedPath, r.URL.Path)
				assert.Equal(t, http.MethodDelete, r.Method)
				w.WriteHeader(tt.StatusCode)
			}))
			defer server.Close()

			client := NewTestClient(server.URL)

			err := deleteFunc(client, context.Background(), tt.ID)
			if tt.WantErr {
				require.Error(t, err)

				if tt.ErrMessage != "" {
					assert.Contains(t, err.Error(), tt.ErrMessage)
				}

				return
			}

			require.NoError(t, err)
		})
	}
}

// RunListAllTest verifies that a ListAll-style call follows continuation
// tokens across pages.
func RunListAllTest[T any](
	t *testing.T,
	expectedPath string,
	pages []ucapi.ListResponse[T],
	listAllFunc func(client *Client, ctx context.Context) ([]T, error),
) {
	t.Helper()

	var requests int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, expectedPath, r.URL.Path)

		pageIndex := 0
		if token := r.URL.Query().Get("continuationToken"); token != "" {
			for i, page := range pages[:len(pages)-1] {
				if page.ContinuationToken == token {
					pageIndex = i + 1
				}
			}
		}

		requests++

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(pages[pageIndex])
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	items, err := listAllFunc(client, context.Background())
	require.NoError(t, err)

	var total int
	for _, page := range pages {
		total += len(page.Value)
	}

	assert.Len(t, items, total)
	assert.Equal(t, len(pages), requests)
}

// StringPtr returns a pointer to the given string.
func StringPtr(s string) *string {
	return &s
}

// BoolPtr returns a pointer to the given bool.
func BoolPtr(b bool) *bool {
	return &b
}

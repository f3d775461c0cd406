package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unifiedcatalog-io/ucapi/pkg/ucapi"
)

func TestGovernanceDomainsClient_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/businessdomains", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var req ucapi.GovernanceDomainCreateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Finance", req.Name)
		assert.Equal(t, ucapi.DomainTypeFunctionalUnit, req.Type)

		domain := ucapi.GovernanceDomain{
			ID:     "domain-1",
			Name:   req.Name,
			Type:   req.Type,
			Status: ucapi.StatusDraft,
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(domain)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	domain, err := client.GovernanceDomains().Create(context.Background(), &ucapi.GovernanceDomainCreateRequest{
		Name: "Finance",
		Type: ucapi.DomainTypeFunctionalUnit,
	})
	require.NoError(t, err)
	assert.Equal(t, "domain-1", domain.ID)
	assert.Equal(t, "Finance", domain.Name)
	assert.Equal(t, ucapi.StatusDraft, domain.Status)
}

func TestGovernanceDomainsClient_Get(t *testing.T) {
	tests := []TestGetOperation[ucapi.GovernanceDomain]{
		{
			Name:         "existing domain",
			ID:           "domain-1",
			ExpectedPath: "/businessdomains/domain-1",
			StatusCode:   http.StatusOK,
			Response: ucapi.GovernanceDomain{
				ID:     "domain-1",
				Name:   "Finance",
				Status: ucapi.StatusPublished,
			},
		},
		{
			Name:         "missing domain",
			ID:           "missing",
			ExpectedPath: "/businessdomains/missing",
			StatusCode:   http.StatusNotFound,
			Response:     map[string]interface{}{"error": map[string]string{"code": "EntityNotFound", "message": "no such domain"}},
			WantErr:      true,
			ErrMessage:   "EntityNotFound",
		},
	}

	RunGetTests(t, tests,
		func(client *Client, ctx context.Context, id string) (*ucapi.GovernanceDomain, error) {
			return client.GovernanceDomains().Get(ctx, id)
		},
		func(t *testing.T, expected interface{}, actual *ucapi.GovernanceDomain) {
			t.Helper()

			want, ok := expected.(ucapi.GovernanceDomain)
			require.True(t, ok)
			assert.Equal(t, want.ID, actual.ID)
			assert.Equal(t, want.Name, actual.Name)
		})
}

func TestGovernanceDomainsClient_GetEmptyID(t *testing.T) {
	client := NewTestClient("http://localhost:0")

	_, err := client.GovernanceDomains().Get(context.Background(), "")
	require.ErrorIs(t, err, ucapi.ErrEntityIDRequired)
}

func TestGovernanceDomainsClient_Update(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/businessdomains/domain-1", r.URL.Path)
		assert.Equal(t, http.MethodPut, r.Method)

		var req ucapi.GovernanceDomainUpdateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, ucapi.StatusPublished, req.Status)

		domain := ucapi.GovernanceDomain{
			ID:     "domain-1",
			Name:   req.Name,
			Type:   req.Type,
			Status: req.Status,
		}

		_ = json.NewEncoder(w).Encode(domain)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	domain, err := client.GovernanceDomains().Update(context.Background(), "domain-1", &ucapi.GovernanceDomainUpdateRequest{
		Name:   "Finance",
		Type:   ucapi.DomainTypeFunctionalUnit,
		Status: ucapi.StatusPublished,
	})
	require.NoError(t, err)
	assert.Equal(t, ucapi.StatusPublished, domain.Status)
}

func TestGovernanceDomainsClient_Delete(t *testing.T) {
	tests := []TestDeleteOperation{
		{
			Name:         "existing domain",
			ID:           "domain-1",
			ExpectedPath: "/businessdomains/domain-1",
			StatusCode:   http.StatusNoContent,
		},
		{
			Name:         "missing domain",
			ID:           "missing",
			ExpectedPath: "/businessdomains/missing",
			StatusCode:   http.StatusNotFound,
			WantErr:      true,
		},
	}

	RunDeleteTests(t, tests, func(client *Client, ctx context.Context, id string) error {
		return client.GovernanceDomains().Delete(ctx, id)
	})
}

func TestGovernanceDomainsClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/businessdomains", r.URL.Path)
		assert.Equal(t, "25", r.URL.Query().Get("pageSize"))

		response := ucapi.ListResponse[ucapi.GovernanceDomain]{
			Value: []ucapi.GovernanceDomain{
				{ID: "domain-1", Name: "Finance"},
				{ID: "domain-2", Name: "Marketing"},
			},
			ContinuationToken: "next-page",
		}

		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	page, err := client.GovernanceDomains().List(context.Background(), ucapi.NewQueryParams().WithPageSize(25))
	require.NoError(t, err)
	require.Len(t, page.Value, 2)
	assert.Equal(t, "Finance", page.Value[0].Name)
	assert.Equal(t, "next-page", page.ContinuationToken)
}

func TestGovernanceDomainsClient_ListAll(t *testing.T) {
	pages := []ucapi.ListResponse[ucapi.GovernanceDomain]{
		{
			Value: []ucapi.GovernanceDomain{
				{ID: "domain-1", Name: "Finance"},
				{ID: "domain-2", Name: "Marketing"},
			},
			ContinuationToken: "token-2",
		},
		{
			Value: []ucapi.GovernanceDomain{
				{ID: "domain-3", Name: "Sales"},
			},
		},
	}

	RunListAllTest(t, "/businessdomains", pages, func(client *Client, ctx context.Context) ([]ucapi.GovernanceDomain, error) {
		return client.GovernanceDomains().ListAll(ctx)
	})
}

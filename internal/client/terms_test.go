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

func TestTermsClient_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/terms", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var req ucapi.TermCreateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Annual Recurring Revenue", req.Name)
		assert.Equal(t, "domain-1", req.DomainID)
		assert.Equal(t, []string{"ARR"}, req.Acronyms)

		term := ucapi.Term{
			ID:       "term-1",
			Name:     req.Name,
			DomainID: req.DomainID,
			Acronyms: req.Acronyms,
			Status:   ucapi.StatusDraft,
		}

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(term)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	term, err := client.Terms().Create(context.Background(), &ucapi.TermCreateRequest{
		Name:     "Annual Recurring Revenue",
		DomainID: "domain-1",
		Acronyms: []string{"ARR"},
	})
	require.NoError(t, err)
	assert.Equal(t, "term-1", term.ID)
	assert.Equal(t, []string{"ARR"}, term.Acronyms)
}

func TestTermsClient_Get(t *testing.T) {
	tests := []TestGetOperation[ucapi.Term]{
		{
			Name:         "existing term",
			ID:           "term-1",
			ExpectedPath: "/terms/term-1",
			StatusCode:   http.StatusOK,
			Response: ucapi.Term{
				ID:       "term-1",
				Name:     "Annual Recurring Revenue",
				DomainID: "domain-1",
			},
		},
		{
			Name:         "missing term",
			ID:           "missing",
			ExpectedPath: "/terms/missing",
			StatusCode:   http.StatusNotFound,
			Response:     map[string]interface{}{"error": map[string]string{"code": "EntityNotFound", "message": "no such term"}},
			WantErr:      true,
		},
	}

	RunGetTests(t, tests,
		func(client *Client, ctx context.Context, id string) (*ucapi.Term, error) {
			return client.Terms().Get(ctx, id)
		},
		func(t *testing.T, expected interface{}, actual *ucapi.Term) {
			t.Helper()

			want, ok := expected.(ucapi.Term)
			require.True(t, ok)
			assert.Equal(t, want.ID, actual.ID)
			assert.Equal(t, want.Name, actual.Name)
		})
}

func TestTermsClient_Update(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/terms/term-1", r.URL.Path)
		assert.Equal(t, http.MethodPut, r.Method)

		var req ucapi.TermUpdateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		term := ucapi.Term{
			ID:       "term-1",
			Name:     req.Name,
			DomainID: req.DomainID,
			Status:   req.Status,
		}

		_ = json.NewEncoder(w).Encode(term)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	term, err := client.Terms().Update(context.Background(), "term-1", &ucapi.TermUpdateRequest{
		Name:     "Annual Recurring Revenue",
		DomainID: "domain-1",
		Status:   ucapi.StatusPublished,
	})
	require.NoError(t, err)
	assert.Equal(t, ucapi.StatusPublished, term.Status)
}

func TestTermsClient_Delete(t *testing.T) {
	tests := []TestDeleteOperation{
		{
			Name:         "existing term",
			ID:           "term-1",
			ExpectedPath: "/terms/term-1",
			StatusCode:   http.StatusNoContent,
		},
	}

	RunDeleteTests(t, tests, func(client *Client, ctx context.Context, id string) error {
		return client.Terms().Delete(ctx, id)
	})
}

func TestTermsClient_EmptyID(t *testing.T) {
	client := NewTestClient("http://localhost:0")

	_, err := client.Terms().Get(context.Background(), "")
	require.ErrorIs(t, err, ucapi.ErrEntityIDRequired)

	_, err = client.Terms().Update(context.Background(), "", &ucapi.TermUpdateRequest{})
	require.ErrorIs(t, err, ucapi.ErrEntityIDRequired)

	err = client.Terms().Delete(context.Background(), "")
	require.ErrorIs(t, err, ucapi.ErrEntityIDRequired)
}

func TestTermsClient_ListWithFilters(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/terms", r.URL.Path)
		assert.Equal(t, "domain-1", r.URL.Query().Get("domainId"))
		assert.Equal(t, "revenue", r.URL.Query().Get("keyword"))

		response := ucapi.ListResponse[ucapi.Term]{
			Value: []ucapi.Term{
				{ID: "term-1", Name: "Annual Recurring Revenue"},
			},
		}

		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	params := ucapi.NewQueryParams().WithDomainID("domain-1").WithKeyword("revenue")

	page, err := client.Terms().List(context.Background(), params)
	require.NoError(t, err)
	require.Len(t, page.Value, 1)
	assert.Equal(t, "term-1", page.Value[0].ID)
}

func TestTermsClient_ListAllScopedToDomain(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "domain-1", r.URL.Query().Get("domainId"))

		response := ucapi.ListResponse[ucapi.Term]{
			Value: []ucapi.Term{{ID: "term-1"}, {ID: "term-2"}},
		}

		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	terms, err := client.Terms().ListAll(context.Background(), "domain-1")
	require.NoError(t, err)
	assert.Len(t, terms, 2)
}

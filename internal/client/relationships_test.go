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

func TestRelationshipsClient_Add(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/terms/term-1/relationships", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "DataProduct", r.URL.Query().Get("entityType"))

		var req ucapi.RelationshipCreateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "dp-1", req.EntityID)

		relationship := ucapi.Relationship{
			EntityID:         req.EntityID,
			EntityType:       ucapi.EntityTypeDataProduct,
			RelationshipType: req.RelationshipType,
		}

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(relationship)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	relationship, err := client.Relationships().Add(context.Background(), ucapi.CollectionTerms, "term-1", &ucapi.RelationshipCreateRequest{
		EntityType:       ucapi.EntityTypeDataProduct,
		EntityID:         "dp-1",
		RelationshipType: "Related",
	})
	require.NoError(t, err)
	assert.Equal(t, "dp-1", relationship.EntityID)
	assert.Equal(t, ucapi.EntityTypeDataProduct, relationship.EntityType)
}

func TestRelationshipsClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/dataproducts/dp-1/relationships", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "Term", r.URL.Query().Get("entityType"))

		response := ucapi.ListResponse[ucapi.Relationship]{
			Value: []ucapi.Relationship{
				{EntityID: "term-1", EntityType: ucapi.EntityTypeTerm},
				{EntityID: "term-2", EntityType: ucapi.EntityTypeTerm},
			},
		}

		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	page, err := client.Relationships().List(context.Background(), ucapi.CollectionDataProducts, "dp-1", ucapi.EntityTypeTerm)
	require.NoError(t, err)
	require.Len(t, page.Value, 2)
	assert.Equal(t, "term-1", page.Value[0].EntityID)
}

func TestRelationshipsClient_Delete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/terms/term-1/relationships", r.URL.Path)
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "DataProduct", r.URL.Query().Get("entityType"))
		assert.Equal(t, "dp-1", r.URL.Query().Get("entityId"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	err := client.Relationships().Delete(context.Background(), ucapi.CollectionTerms, "term-1", ucapi.EntityTypeDataProduct, "dp-1")
	require.NoError(t, err)
}

func TestRelationshipsClient_Validation(t *testing.T) {
	client := NewTestClient("http://localhost:0")
	ctx := context.Background()

	_, err := client.Relationships().Add(ctx, "", "term-1", &ucapi.RelationshipCreateRequest{})
	require.ErrorIs(t, err, ucapi.ErrCollectionRequired)

	_, err = client.Relationships().Add(ctx, ucapi.CollectionTerms, "", &ucapi.RelationshipCreateRequest{})
	require.ErrorIs(t, err, ucapi.ErrEntityIDRequired)

	_, err = client.Relationships().List(ctx, "", "term-1", ucapi.EntityTypeDataProduct)
	require.ErrorIs(t, err, ucapi.ErrCollectionRequired)

	err = client.Relationships().Delete(ctx, ucapi.CollectionTerms, "term-1", ucapi.EntityTypeDataProduct, "")
	require.ErrorIs(t, err, ucapi.ErrEntityIDRequired)
}

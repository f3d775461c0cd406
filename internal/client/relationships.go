package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/unifiedcatalog-io/ucapi/internal/http"
	"github.com/unifiedcatalog-io/ucapi/pkg/ucapi"
)

// RelationshipsClient implements ucapi.RelationshipsClient. Relationships
// hang off an owning entity in one of the entity collections; the related
// entity's type is passed as a query parameter.
type RelationshipsClient struct {
	httpClient *http.Client
}

// NewRelationshipsClient creates a new relationships client
func NewRelationshipsClient(httpClient *http.Client) *RelationshipsClient {
	return &RelationshipsClient{
		httpClient: httpClient,
	}
}

func relationshipsPath(collection, entityID string) string {
	return fmt.Sprintf("/%s/%s/relationships", collection, entityID)
}

// Add implements ucapi.RelationshipsClient.Add
func (c *RelationshipsClient) Add(ctx context.Context, collection, entityID string, request *ucapi.RelationshipCreateRequest) (*ucapi.Relationship, error) {
	if collection == "" {
		return nil, ucapi.ErrCollectionRequired
	}

	if entityID == "" {
		return nil, ucapi.ErrEntityIDRequired
	}

	query := url.Values{"entityType": []string{string(request.EntityType)}}

	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method: "POST",
		Path:   relationshipsPath(collection, entityID),
		Query:  query,
		Body:   request,
	})
	if err != nil {
		return nil, fmt.Errorf("adding relationship: %w", err)
	}

	var relationship ucapi.Relationship
	if err := json.Unmarshal(resp.Body, &relationship); err != nil {
		return nil, fmt.Errorf("parsing relationship response: %w", err)
	}

	return &relationship, nil
}

// List implements ucapi.RelationshipsClient.List
func (c *RelationshipsClient) List(ctx context.Context, collection, entityID string, entityType ucapi.EntityType) (*ucapi.ListResponse[ucapi.Relationship], error) {
	if collection == "" {
		return nil, ucapi.ErrCollectionRequired
	}

	if entityID == "" {
		return nil, ucapi.ErrEntityIDRequired
	}

	query := url.Values{"entityType": []string{string(entityType)}}

	resp, err := c.httpClient.Get(ctx, relationshipsPath(collection, entityID), query)
	if err != nil {
		return nil, fmt.Errorf("listing relationships: %w", err)
	}

	var result ucapi.ListResponse[ucapi.Relationship]
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing relationships response: %w", err)
	}

	return &result, nil
}

// Delete implements ucapi.RelationshipsClient.Delete
func (c *RelationshipsClient) Delete(ctx context.Context, collection, entityID string, entityType ucapi.EntityType, targetID string) error {
	if collection == "" {
		return ucapi.ErrCollectionRequired
	}

	if entityID == "" || targetID == "" {
		return ucapi.ErrEntityIDRequired
	}

	query := url.Values{
		"entityType": []string{string(entityType)},
		"entityId":   []string{targetID},
	}

	_, err := c.httpClient.DeleteWithQuery(ctx, relationshipsPath(collection, entityID), query)
	if err != nil {
		return fmt.Errorf("deleting relationship: %w", err)
	}

	return nil
}

package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/unifiedcatalog-io/ucapi/internal/http"
	"github.com/unifiedcatalog-io/ucapi/pkg/ucapi"
)

// KeyResultsClient implements ucapi.KeyResultsClient. Key results live under
// their owning objective.
type KeyResultsClient struct {
	httpClient *http.Client
}

// NewKeyResultsClient creates a new key results client
func NewKeyResultsClient(httpClient *http.Client) *KeyResultsClient {
	return &KeyResultsClient{
		httpClient: httpClient,
	}
}

func keyResultsPath(objectiveID string) string {
	return fmt.Sprintf("%s/%s/keyResults", objectivesPath, objectiveID)
}

// Create implements ucapi.KeyResultsClient.Create
func (c *KeyResultsClient) Create(ctx context.Context, objectiveID string, request *ucapi.KeyResultCreateRequest) (*ucapi.KeyResult, error) {
	if objectiveID == "" {
		return nil, ucapi.ErrObjectiveIDRequired
	}

	resp, err := c.httpClient.Post(ctx, keyResultsPath(objectiveID), request)
	if err != nil {
		return nil, fmt.Errorf("creating key result: %w", err)
	}

	var keyResult ucapi.KeyResult
	if err := json.Unmarshal(resp.Body, &keyResult); err != nil {
		return nil, fmt.Errorf("parsing key result response: %w", err)
	}

	return &keyResult, nil
}

// Get implements ucapi.KeyResultsClient.Get
func (c *KeyResultsClient) Get(ctx context.Context, objectiveID, id string) (*ucapi.KeyResult, error) {
	if objectiveID == "" {
		return nil, ucapi.ErrObjectiveIDRequired
	}

	if id == "" {
		return nil, ucapi.ErrEntityIDRequired
	}

	path := fmt.Sprintf("%s/%s", keyResultsPath(objectiveID), id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting key result: %w", err)
	}

	var keyResult ucapi.KeyResult
	if err := json.Unmarshal(resp.Body, &keyResult); err != nil {
		return nil, fmt.Errorf("parsing key result response: %w", err)
	}

	return &keyResult, nil
}

// Update implements ucapi.KeyResultsClient.Update
func (c *KeyResultsClient) Update(ctx context.Context, objectiveID, id string, request *ucapi.KeyResultUpdateRequest) (*ucapi.KeyResult, error) {
	if objectiveID == "" {
		return nil, ucapi.ErrObjectiveIDRequired
	}

	if id == "" {
		return nil, ucapi.ErrEntityIDRequired
	}

	path := fmt.Sprintf("%s/%s", keyResultsPath(objectiveID), id)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating key result: %w", err)
	}

	var keyResult ucapi.KeyResult
	if err := json.Unmarshal(resp.Body, &keyResult); err != nil {
		return nil, fmt.Errorf("parsing key result response: %w", err)
	}

	return &keyResult, nil
}

// Delete implements ucapi.KeyResultsClient.Delete
func (c *KeyResultsClient) Delete(ctx context.Context, objectiveID, id string) error {
	if objectiveID == "" {
		return ucapi.ErrObjectiveIDRequired
	}

	if id == "" {
		return ucapi.ErrEntityIDRequired
	}

	path := fmt.Sprintf("%s/%s", keyResultsPath(objectiveID), id)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting key result: %w", err)
	}

	return nil
}

// List implements ucapi.KeyResultsClient.List
func (c *KeyResultsClient) List(ctx context.Context, objectiveID string, params *ucapi.QueryParams) (*ucapi.ListResponse[ucapi.KeyResult], error) {
	if objectiveID == "" {
		return nil, ucapi.ErrObjectiveIDRequired
	}

	result, err := listPage[ucapi.KeyResult](ctx, c.httpClient, keyResultsPath(objectiveID), params)
	if err != nil {
		return nil, fmt.Errorf("listing key results: %w", err)
	}

	return result, nil
}

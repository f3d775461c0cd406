package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/unifiedcatalog-io/ucapi/internal/http"
	"github.com/unifiedcatalog-io/ucapi/pkg/ucapi"
)

const objectivesPath = "/objectives"

// ObjectivesClient implements ucapi.ObjectivesClient
type ObjectivesClient struct {
	httpClient *http.Client
}

// NewObjectivesClient creates a new objectives client
func NewObjectivesClient(httpClient *http.Client) *ObjectivesClient {
	return &ObjectivesClient{
		httpClient: httpClient,
	}
}

// Create implements ucapi.ObjectivesClient.Create
func (c *ObjectivesClient) Create(ctx context.Context, request *ucapi.ObjectiveCreateRequest) (*ucapi.Objective, error) {
	resp, err := c.httpClient.Post(ctx, objectivesPath, request)
	if err != nil {
		return nil, fmt.Errorf("creating objective: %w", err)
	}

	var objective ucapi.Objective
	if err := json.Unmarshal(resp.Body, &objective); err != nil {
		return nil, fmt.Errorf("parsing objective response: %w", err)
	}

	return &objective, nil
}

// Get implements ucapi.ObjectivesClient.Get
func (c *ObjectivesClient) Get(ctx context.Context, id string) (*ucapi.Objective, error) {
	if id == "" {
		return nil, ucapi.ErrEntityIDRequired
	}

	path := fmt.Sprintf("%s/%s", objectivesPath, id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting objective: %w", err)
	}

	var objective ucapi.Objective
	if err := json.Unmarshal(resp.Body, &objective); err != nil {
		return nil, fmt.Errorf("parsing objective response: %w", err)
	}

	return &objective, nil
}

// Update implements ucapi.ObjectivesClient.Update
func (c *ObjectivesClient) Update(ctx context.Context, id string, request *ucapi.ObjectiveUpdateRequest) (*ucapi.Objective, error) {
	if id == "" {
		return nil, ucapi.ErrEntityIDRequired
	}

	path := fmt.Sprintf("%s/%s", objectivesPath, id)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating objective: %w", err)
	}

	var objective ucapi.Objective
	if err := json.Unmarshal(resp.Body, &objective); err != nil {
		return nil, fmt.Errorf("parsing objective response: %w", err)
	}

	return &objective, nil
}

// Delete implements ucapi.ObjectivesClient.Delete
func (c *ObjectivesClient) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ucapi.ErrEntityIDRequired
	}

	path := fmt.Sprintf("%s/%s", objectivesPath, id)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting objective: %w", err)
	}

	return nil
}

// List implements ucapi.ObjectivesClient.List
func (c *ObjectivesClient) List(ctx context.Context, params *ucapi.QueryParams) (*ucapi.ListResponse[ucapi.Objective], error) {
	result, err := listPage[ucapi.Objective](ctx, c.httpClient, objectivesPath, params)
	if err != nil {
		return nil, fmt.Errorf("listing objectives: %w", err)
	}

	return result, nil
}

// ListWithPath implements ucapi.ObjectivesClient.ListWithPath
func (c *ObjectivesClient) ListWithPath(ctx context.Context, path string, params *ucapi.QueryParams) (*ucapi.ListResponse[ucapi.Objective], error) {
	result, err := listPage[ucapi.Objective](ctx, c.httpClient, path, params)
	if err != nil {
		return nil, fmt.Errorf("listing objectives: %w", err)
	}

	return result, nil
}

// ListAll implements ucapi.ObjectivesClient.ListAll
func (c *ObjectivesClient) ListAll(ctx context.Context, domainID string) ([]ucapi.Objective, error) {
	params := ucapi.NewQueryParams()
	if domainID != "" {
		params.WithDomainID(domainID)
	}

	return ucapi.FetchAllPages[ucapi.Objective](ctx, c, objectivesPath, params, nil)
}

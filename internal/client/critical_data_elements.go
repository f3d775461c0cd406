package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/unifiedcatalog-io/ucapi/internal/http"
	"github.com/unifiedcatalog-io/ucapi/pkg/ucapi"
)

const criticalDataElementsPath = "/criticalDataElements"

// CriticalDataElementsClient implements ucapi.CriticalDataElementsClient
type CriticalDataElementsClient struct {
	httpClient *http.Client
}

// NewCriticalDataElementsClient creates a new critical data elements client
func NewCriticalDataElementsClient(httpClient *http.Client) *CriticalDataElementsClient {
	return &CriticalDataElementsClient{
		httpClient: httpClient,
	}
}

// Create implements ucapi.CriticalDataElementsClient.Create
func (c *CriticalDataElementsClient) Create(ctx context.Context, request *ucapi.CriticalDataElementCreateRequest) (*ucapi.CriticalDataElement, error) {
	resp, err := c.httpClient.Post(ctx, criticalDataElementsPath, request)
	if err != nil {
		return nil, fmt.Errorf("creating critical data element: %w", err)
	}

	var element ucapi.CriticalDataElement
	if err := json.Unmarshal(resp.Body, &element); err != nil {
		return nil, fmt.Errorf("parsing critical data element response: %w", err)
	}

	return &element, nil
}

// Get implements ucapi.CriticalDataElementsClient.Get
func (c *CriticalDataElementsClient) Get(ctx context.Context, id string) (*ucapi.CriticalDataElement, error) {
	if id == "" {
		return nil, ucapi.ErrEntityIDRequired
	}

	path := fmt.Sprintf("%s/%s", criticalDataElementsPath, id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting critical data element: %w", err)
	}

	var element ucapi.CriticalDataElement
	if err := json.Unmarshal(resp.Body, &element); err != nil {
		return nil, fmt.Errorf("parsing critical data element response: %w", err)
	}

	return &element, nil
}

// Update implements ucapi.CriticalDataElementsClient.Update
func (c *CriticalDataElementsClient) Update(ctx context.Context, id string, request *ucapi.CriticalDataElementUpdateRequest) (*ucapi.CriticalDataElement, error) {
	if id == "" {
		return nil, ucapi.ErrEntityIDRequired
	}

	path := fmt.Sprintf("%s/%s", criticalDataElementsPath, id)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating critical data element: %w", err)
	}

	var element ucapi.CriticalDataElement
	if err := json.Unmarshal(resp.Body, &element); err != nil {
		return nil, fmt.Errorf("parsing critical data element response: %w", err)
	}

	return &element, nil
}

// Delete implements ucapi.CriticalDataElementsClient.Delete
func (c *CriticalDataElementsClient) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ucapi.ErrEntityIDRequired
	}

	path := fmt.Sprintf("%s/%s", criticalDataElementsPath, id)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting critical data element: %w", err)
	}

	return nil
}

// List implements ucapi.CriticalDataElementsClient.List
func (c *CriticalDataElementsClient) List(ctx context.Context, params *ucapi.QueryParams) (*ucapi.ListResponse[ucapi.CriticalDataElement], error) {
	result, err := listPage[ucapi.CriticalDataElement](ctx, c.httpClient, criticalDataElementsPath, params)
	if err != nil {
		return nil, fmt.Errorf("listing critical data elements: %w", err)
	}

	return result, nil
}

// ListWithPath implements ucapi.CriticalDataElementsClient.ListWithPath
func (c *CriticalDataElementsClient) ListWithPath(ctx context.Context, path string, params *ucapi.QueryParams) (*ucapi.ListResponse[ucapi.CriticalDataElement], error) {
	result, err := listPage[ucapi.CriticalDataElement](ctx, c.httpClient, path, params)
	if err != nil {
		return nil, fmt.Errorf("listing critical data elements: %w", err)
	}

	return result, nil
}

// ListAll implements ucapi.CriticalDataElementsClient.ListAll
func (c *CriticalDataElementsClient) ListAll(ctx context.Context, domainID string) ([]ucapi.CriticalDataElement, error) {
	params := ucapi.NewQueryParams()
	if domainID != "" {
		params.WithDomainID(domainID)
	}

	return ucapi.FetchAllPages[ucapi.CriticalDataElement](ctx, c, criticalDataElementsPath, params, nil)
}

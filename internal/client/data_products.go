package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/unifiedcatalog-io/ucapi/internal/http"
	"github.com/unifiedcatalog-io/ucapi/pkg/ucapi"
)

const dataProductsPath = "/dataproducts"

// DataProductsClient implements ucapi.DataProductsClient
type DataProductsClient struct {
	httpClient *http.Client
}

// NewDataProductsClient creates a new data products client
func NewDataProductsClient(httpClient *http.Client) *DataProductsClient {
	return &DataProductsClient{
		httpClient: httpClient,
	}
}

// Create implements ucapi.DataProductsClient.Create
func (c *DataProductsClient) Create(ctx context.Context, request *ucapi.DataProductCreateRequest) (*ucapi.DataProduct, error) {
	resp, err := c.httpClient.Post(ctx, dataProductsPath, request)
	if err != nil {
		return nil, fmt.Errorf("creating data product: %w", err)
	}

	var product ucapi.DataProduct
	if err := json.Unmarshal(resp.Body, &product); err != nil {
		return nil, fmt.Errorf("parsing data product response: %w", err)
	}

	return &product, nil
}

// Get implements ucapi.DataProductsClient.Get
func (c *DataProductsClient) Get(ctx context.Context, id string) (*ucapi.DataProduct, error) {
	if id == "" {
		return nil, ucapi.ErrEntityIDRequired
	}

	path := fmt.Sprintf("%s/%s", dataProductsPath, id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting data product: %w", err)
	}

	var product ucapi.DataProduct
	if err := json.Unmarshal(resp.Body, &product); err != nil {
		return nil, fmt.Errorf("parsing data product response: %w", err)
	}

	return &product, nil
}

// Update implements ucapi.DataProductsClient.Update
func (c *DataProductsClient) Update(ctx context.Context, id string, request *ucapi.DataProductUpdateRequest) (*ucapi.DataProduct, error) {
	if id == "" {
		return nil, ucapi.ErrEntityIDRequired
	}

	path := fmt.Sprintf("%s/%s", dataProductsPath, id)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating data product: %w", err)
	}

	var product ucapi.DataProduct
	if err := json.Unmarshal(resp.Body, &product); err != nil {
		return nil, fmt.Errorf("parsing data product response: %w", err)
	}

	return &product, nil
}

// Delete implements ucapi.DataProductsClient.Delete
func (c *DataProductsClient) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ucapi.ErrEntityIDRequired
	}

	path := fmt.Sprintf("%s/%s", dataProductsPath, id)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting data product: %w", err)
	}

	return nil
}

// List implements ucapi.DataProductsClient.List
func (c *DataProductsClient) List(ctx context.Context, params *ucapi.QueryParams) (*ucapi.ListResponse[ucapi.DataProduct], error) {
	result, err := listPage[ucapi.DataProduct](ctx, c.httpClient, dataProductsPath, params)
	if err != nil {
		return nil, fmt.Errorf("listing data products: %w", err)
	}

	return result, nil
}

// ListWithPath implements ucapi.DataProductsClient.ListWithPath
func (c *DataProductsClient) ListWithPath(ctx context.Context, path string, params *ucapi.QueryParams) (*ucapi.ListResponse[ucapi.DataProduct], error) {
	result, err := listPage[ucapi.DataProduct](ctx, c.httpClient, path, params)
	if err != nil {
		return nil, fmt.Errorf("listing data products: %w", err)
	}

	return result, nil
}

// ListAll implements ucapi.DataProductsClient.ListAll
func (c *DataProductsClient) ListAll(ctx context.Context, domainID string) ([]ucapi.DataProduct, error) {
	params := ucapi.NewQueryParams()
	if domainID != "" {
		params.WithDomainID(domainID)
	}

	return ucapi.FetchAllPages[ucapi.DataProduct](ctx, c, dataProductsPath, params, nil)
}

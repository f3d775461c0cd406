package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/unifiedcatalog-io/ucapi/internal/http"
	"github.com/unifiedcatalog-io/ucapi/pkg/ucapi"
)

const governanceDomainsPath = "/businessdomains"

// GovernanceDomainsClient implements ucapi.GovernanceDomainsClient
type GovernanceDomainsClient struct {
	httpClient *http.Client
}

// NewGovernanceDomainsClient creates a new governance domains client
func NewGovernanceDomainsClient(httpClient *http.Client) *GovernanceDomainsClient {
	return &GovernanceDomainsClient{
		httpClient: httpClient,
	}
}

// Create implements ucapi.GovernanceDomainsClient.Create
func (c *GovernanceDomainsClient) Create(ctx context.Context, request *ucapi.GovernanceDomainCreateRequest) (*ucapi.GovernanceDomain, error) {
	resp, err := c.httpClient.Post(ctx, governanceDomainsPath, request)
	if err != nil {
		return nil, fmt.Errorf("creating governance domain: %w", err)
	}

	var domain ucapi.GovernanceDomain
	if err := json.Unmarshal(resp.Body, &domain); err != nil {
		return nil, fmt.Errorf("parsing governance domain response: %w", err)
	}

	return &domain, nil
}

// Get implements ucapi.GovernanceDomainsClient.Get
func (c *GovernanceDomainsClient) Get(ctx context.Context, id string) (*ucapi.GovernanceDomain, error) {
	if id == "" {
		return nil, ucapi.ErrEntityIDRequired
	}

	path := fmt.Sprintf("%s/%s", governanceDomainsPath, id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting governance domain: %w", err)
	}

	var domain ucapi.GovernanceDomain
	if err := json.Unmarshal(resp.Body, &domain); err != nil {
		return nil, fmt.Errorf("parsing governance domain response: %w", err)
	}

	return &domain, nil
}

// Update implements ucapi.GovernanceDomainsClient.Update
func (c *GovernanceDomainsClient) Update(ctx context.Context, id string, request *ucapi.GovernanceDomainUpdateRequest) (*ucapi.GovernanceDomain, error) {
	if id == "" {
		return nil, ucapi.ErrEntityIDRequired
	}

	path := fmt.Sprintf("%s/%s", governanceDomainsPath, id)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating governance domain: %w", err)
	}

	var domain ucapi.GovernanceDomain
	if err := json.Unmarshal(resp.Body, &domain); err != nil {
		return nil, fmt.Errorf("parsing governance domain response: %w", err)
	}

	return &domain, nil
}

// Delete implements ucapi.GovernanceDomainsClient.Delete
func (c *GovernanceDomainsClient) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ucapi.ErrEntityIDRequired
	}

	path := fmt.Sprintf("%s/%s", governanceDomainsPath, id)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting governance domain: %w", err)
	}

	return nil
}

// List implements ucapi.GovernanceDomainsClient.List
func (c *GovernanceDomainsClient) List(ctx context.Context, params *ucapi.QueryParams) (*ucapi.ListResponse[ucapi.GovernanceDomain], error) {
	result, err := listPage[ucapi.GovernanceDomain](ctx, c.httpClient, governanceDomainsPath, params)
	if err != nil {
		return nil, fmt.Errorf("listing governance domains: %w", err)
	}

	return result, nil
}

// ListWithPath implements ucapi.GovernanceDomainsClient.ListWithPath
func (c *GovernanceDomainsClient) ListWithPath(ctx context.Context, path string, params *ucapi.QueryParams) (*ucapi.ListResponse[ucapi.GovernanceDomain], error) {
	result, err := listPage[ucapi.GovernanceDomain](ctx, c.httpClient, path, params)
	if err != nil {
		return nil, fmt.Errorf("listing governance domains: %w", err)
	}

	return result, nil
}

// ListAll implements ucapi.GovernanceDomainsClient.ListAll
func (c *GovernanceDomainsClient) ListAll(ctx context.Context) ([]ucapi.GovernanceDomain, error) {
	return ucapi.FetchAllPages[ucapi.GovernanceDomain](ctx, c, governanceDomainsPath, ucapi.NewQueryParams(), nil)
}

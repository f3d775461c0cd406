package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/unifiedcatalog-io/ucapi/internal/http"
	"github.com/unifiedcatalog-io/ucapi/pkg/ucapi"
)

const termsPath = "/terms"

// TermsClient implements ucapi.TermsClient
type TermsClient struct {
	httpClient *http.Client
}

// NewTermsClient creates a new glossary terms client
func NewTermsClient(httpClient *http.Client) *TermsClient {
	return &TermsClient{
		httpClient: httpClient,
	}
}

// Create implements ucapi.TermsClient.Create
func (c *TermsClient) Create(ctx context.Context, request *ucapi.TermCreateRequest) (*ucapi.Term, error) {
	resp, err := c.httpClient.Post(ctx, termsPath, request)
	if err != nil {
		return nil, fmt.Errorf("creating term: %w", err)
	}

	var term ucapi.Term
	if err := json.Unmarshal(resp.Body, &term); err != nil {
		return nil, fmt.Errorf("parsing term response: %w", err)
	}

	return &term, nil
}

// Get implements ucapi.TermsClient.Get
func (c *TermsClient) Get(ctx context.Context, id string) (*ucapi.Term, error) {
	if id == "" {
		return nil, ucapi.ErrEntityIDRequired
	}

	path := fmt.Sprintf("%s/%s", termsPath, id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting term: %w", err)
	}

	var term ucapi.Term
	if err := json.Unmarshal(resp.Body, &term); err != nil {
		return nil, fmt.Errorf("parsing term response: %w", err)
	}

	return &term, nil
}

// Update implements ucapi.TermsClient.Update
func (c *TermsClient) Update(ctx context.Context, id string, request *ucapi.TermUpdateRequest) (*ucapi.Term, error) {
	if id == "" {
		return nil, ucapi.ErrEntityIDRequired
	}

	path := fmt.Sprintf("%s/%s", termsPath, id)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating term: %w", err)
	}

	var term ucapi.Term
	if err := json.Unmarshal(resp.Body, &term); err != nil {
		return nil, fmt.Errorf("parsing term response: %w", err)
	}

	return &term, nil
}

// Delete implements ucapi.TermsClient.Delete
func (c *TermsClient) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ucapi.ErrEntityIDRequired
	}

	path := fmt.Sprintf("%s/%s", termsPath, id)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting term: %w", err)
	}

	return nil
}

// List implements ucapi.TermsClient.List
func (c *TermsClient) List(ctx context.Context, params *ucapi.QueryParams) (*ucapi.ListResponse[ucapi.Term], error) {
	result, err := listPage[ucapi.Term](ctx, c.httpClient, termsPath, params)
	if err != nil {
		return nil, fmt.Errorf("listing terms: %w", err)
	}

	return result, nil
}

// ListWithPath implements ucapi.TermsClient.ListWithPath
func (c *TermsClient) ListWithPath(ctx context.Context, path string, params *ucapi.QueryParams) (*ucapi.ListResponse[ucapi.Term], error) {
	result, err := listPage[ucapi.Term](ctx, c.httpClient, path, params)
	if err != nil {
		return nil, fmt.Errorf("listing terms: %w", err)
	}

	return result, nil
}

// ListAll implements ucapi.TermsClient.ListAll
func (c *TermsClient) ListAll(ctx context.Context, domainID string) ([]ucapi.Term, error) {
	params := ucapi.NewQueryParams()
	if domainID != "" {
		params.WithDomainID(domainID)
	}

	return ucapi.FetchAllPages[ucapi.Term](ctx, c, termsPath, params, nil)
}

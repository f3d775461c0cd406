package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/unifiedcatalog-io/ucapi/internal/http"
	"github.com/unifiedcatalog-io/ucapi/pkg/ucapi"
)

// listPage fetches one page of a collection listing.
func listPage[T any](ctx context.Context, httpClient *http.Client, path string, params *ucapi.QueryParams) (*ucapi.ListResponse[T], error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	resp, err := httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, err
	}

	var result ucapi.ListResponse[T]
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing list response: %w", err)
	}

	return &result, nil
}

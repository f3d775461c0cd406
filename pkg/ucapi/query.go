package ucapi

import (
	"net/url"
	"strconv"
	"strings"
)

// QueryParams expresses common list options for Unified Catalog endpoints.
type QueryParams struct {
	// PageSize requests up to this many items per page (server may cap it).
	// Zero leaves the server default in place.
	PageSize int
	// ContinuationToken resumes a traversal from a prior page.
	ContinuationToken string
	// DomainID scopes the listing to one governance domain.
	DomainID string
	// OrderBy selects the server-side ordering, e.g. "name" or "-createdAt".
	OrderBy string
	// Keyword is a free-text search filter.
	Keyword string
	// Filters holds additional filter parameters keyed by name.
	Filters map[string][]string
}

// NewQueryParams creates an empty QueryParams.
func NewQueryParams() *QueryParams {
	return &QueryParams{
		Filters: make(map[string][]string),
	}
}

// WithPageSize sets the page size.
func (q *QueryParams) WithPageSize(size int) *QueryParams {
	q.PageSize = size

	return q
}

// WithContinuationToken sets the continuation token.
func (q *QueryParams) WithContinuationToken(token string) *QueryParams {
	q.ContinuationToken = token

	return q
}

// WithDomainID scopes the listing to a governance domain.
func (q *QueryParams) WithDomainID(domainID string) *QueryParams {
	q.DomainID = domainID

	return q
}

// WithOrderBy sets the ordering.
func (q *QueryParams) WithOrderBy(orderBy string) *QueryParams {
	q.OrderBy = orderBy

	return q
}

// WithKeyword sets the free-text search filter.
func (q *QueryParams) WithKeyword(keyword string) *QueryParams {
	q.Keyword = keyword

	return q
}

// WithFilter appends values to a named filter.
func (q *QueryParams) WithFilter(name string, values ...string) *QueryParams {
	if q.Filters == nil {
		q.Filters = make(map[string][]string)
	}

	q.Filters[name] = append(q.Filters[name], values...)

	return q
}

// Clone returns an independent copy so a cursor can hold its source query
// immutably for its whole lifetime.
func (q *QueryParams) Clone() *QueryParams {
	if q == nil {
		return NewQueryParams()
	}

	clone := &QueryParams{
		PageSize:          q.PageSize,
		ContinuationToken: q.ContinuationToken,
		DomainID:          q.DomainID,
		OrderBy:           q.OrderBy,
		Keyword:           q.Keyword,
		Filters:           make(map[string][]string, len(q.Filters)),
	}

	for name, values := range q.Filters {
		clone.Filters[name] = append([]string(nil), values...)
	}

	return clone
}

// ToValues converts the params to url.Values for the request.
func (q *QueryParams) ToValues() url.Values {
	values := url.Values{}

	if q.PageSize > 0 {
		values.Set("pageSize", strconv.Itoa(q.PageSize))
	}

	if q.ContinuationToken != "" {
		values.Set("continuationToken", q.ContinuationToken)
	}

	if q.DomainID != "" {
		values.Set("domainId", q.DomainID)
	}

	if q.OrderBy != "" {
		values.Set("orderBy", q.OrderBy)
	}

	if q.Keyword != "" {
		values.Set("keyword", q.Keyword)
	}

	for name, filterValues := range q.Filters {
		if len(filterValues) > 0 {
			values.Set(name, strings.Join(filterValues, ","))
		}
	}

	return values
}

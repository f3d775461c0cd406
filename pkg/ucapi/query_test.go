package ucapi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unifiedcatalog-io/ucapi/pkg/ucapi"
)

func TestQueryParams_ToValues(t *testing.T) {
	t.Parallel()

	params := ucapi.NewQueryParams().
		WithPageSize(50).
		WithContinuationToken("abc123").
		WithDomainID("domain-1").
		WithOrderBy("name").
		WithKeyword("revenue").
		WithFilter("status", "Published")

	values := params.ToValues()

	assert.Equal(t, "50", values.Get("pageSize"))
	assert.Equal(t, "abc123", values.Get("continuationToken"))
	assert.Equal(t, "domain-1", values.Get("domainId"))
	assert.Equal(t, "name", values.Get("orderBy"))
	assert.Equal(t, "revenue", values.Get("keyword"))
	assert.Equal(t, "Published", values.Get("status"))
}

func TestQueryParams_ToValuesEmpty(t *testing.T) {
	t.Parallel()

	values := ucapi.NewQueryParams().ToValues()

	assert.Empty(t, values)
}

func TestQueryParams_ToValuesSkipsZeroPageSize(t *testing.T) {
	t.Parallel()

	values := ucapi.NewQueryParams().WithPageSize(0).ToValues()

	assert.Empty(t, values.Get("pageSize"))
}

func TestQueryParams_MultiValueFilter(t *testing.T) {
	t.Parallel()

	params := ucapi.NewQueryParams().WithFilter("status", "Draft", "Published")

	assert.Equal(t, "Draft,Published", params.ToValues().Get("status"))
}

func TestQueryParams_Clone(t *testing.T) {
	t.Parallel()

	original := ucapi.NewQueryParams().
		WithPageSize(10).
		WithDomainID("domain-1").
		WithFilter("status", "Draft")

	clone := original.Clone()

	require.Equal(t, original.PageSize, clone.PageSize)
	require.Equal(t, original.DomainID, clone.DomainID)
	require.Equal(t, original.Filters, clone.Filters)

	// Mutating the clone must not leak into the original
	clone.WithPageSize(99).WithFilter("status", "Published")

	assert.Equal(t, 10, original.PageSize)
	assert.Equal(t, []string{"Draft"}, original.Filters["status"])
}

func TestQueryParams_CloneNil(t *testing.T) {
	t.Parallel()

	var params *ucapi.QueryParams

	clone := params.Clone()

	require.NotNil(t, clone)
	assert.Empty(t, clone.ToValues())
}

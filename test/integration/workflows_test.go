//go:build integration

package integration

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unifiedcatalog-io/ucapi/pkg/ucapi"
	"github.com/unifiedcatalog-io/ucapi/pkg/ucclient"
)

// newCatalogClient builds a client from the UC_* environment variables and
// skips the test when no account is configured.
func newCatalogClient(t *testing.T) ucapi.Client {
	t.Helper()

	if os.Getenv("UC_ACCOUNT_ID") == "" && os.Getenv("UC_BASE_URL") == "" {
		t.Skip("set UC_ACCOUNT_ID (or UC_BASE_URL) and credentials to run integration tests")
	}

	client, err := ucclient.NewFromEnv()
	require.NoError(t, err)

	return client
}

// TestGlossaryWorkflow walks a complete glossary journey: create a governance
// domain, attach a term, link a data product, then tear everything down.
func TestGlossaryWorkflow(t *testing.T) {
	client := newCatalogClient(t)
	ctx := context.Background()

	// 1. Create a governance domain
	domain, err := client.GovernanceDomains().Create(ctx, &ucapi.GovernanceDomainCreateRequest{
		Name:        "Integration Test Domain",
		Description: "Created by integration tests",
		Type:        ucapi.DomainTypeDataDomain,
		Status:      ucapi.StatusDraft,
	})
	require.NoError(t, err)
	require.NotEmpty(t, domain.ID)

	defer func() {
		assert.NoError(t, client.GovernanceDomains().Delete(ctx, domain.ID))
	}()

	// 2. Create a term in the domain
	term, err := client.Terms().Create(ctx, &ucapi.TermCreateRequest{
		Name:        "Integration Test Term",
		Description: "Created by integration tests",
		DomainID:    domain.ID,
		Acronyms:    []string{"ITT"},
	})
	require.NoError(t, err)

	defer func() {
		assert.NoError(t, client.Terms().Delete(ctx, term.ID))
	}()

	// 3. Create a data product and link it to the term
	product, err := client.DataProducts().Create(ctx, &ucapi.DataProductCreateRequest{
		Name:        "Integration Test Product",
		Description: "Created by integration tests",
		Type:        ucapi.DataProductTypeDataset,
		DomainID:    domain.ID,
	})
	require.NoError(t, err)

	defer func() {
		assert.NoError(t, client.DataProducts().Delete(ctx, product.ID))
	}()

	_, err = client.Relationships().Add(ctx, ucapi.CollectionTerms, term.ID, &ucapi.RelationshipCreateRequest{
		EntityType: ucapi.EntityTypeDataProduct,
		EntityID:   product.ID,
	})
	require.NoError(t, err)

	related, err := client.Relationships().List(ctx, ucapi.CollectionTerms, term.ID, ucapi.EntityTypeDataProduct)
	require.NoError(t, err)

	var found bool

	for _, rel := range related.Value {
		if rel.EntityID == product.ID {
			found = true
		}
	}

	assert.True(t, found, "linked data product missing from relationship listing")

	// 4. Detach the relationship before cleanup
	err = client.Relationships().Delete(ctx, ucapi.CollectionTerms, term.ID, ucapi.EntityTypeDataProduct, product.ID)
	require.NoError(t, err)

	// 5. The term listing for the domain sees the created term
	terms, err := client.Terms().ListAll(ctx, domain.ID)
	require.NoError(t, err)

	var seen bool

	for _, candidate := range terms {
		if candidate.ID == term.ID {
			seen = true
		}
	}

	assert.True(t, seen, "created term missing from domain listing")
}

// TestObjectiveWorkflow exercises objectives and key results end to end.
func TestObjectiveWorkflow(t *testing.T) {
	client := newCatalogClient(t)
	ctx := context.Background()

	domain, err := client.GovernanceDomains().Create(ctx, &ucapi.GovernanceDomainCreateRequest{
		Name: "Integration OKR Domain",
		Type: ucapi.DomainTypeDataDomain,
	})
	require.NoError(t, err)

	defer func() {
		assert.NoError(t, client.GovernanceDomains().Delete(ctx, domain.ID))
	}()

	objective, err := client.Objectives().Create(ctx, &ucapi.ObjectiveCreateRequest{
		Definition: "Publish all glossary terms",
		DomainID:   domain.ID,
	})
	require.NoError(t, err)

	defer func() {
		assert.NoError(t, client.Objectives().Delete(ctx, objective.ID))
	}()

	keyResult, err := client.KeyResults().Create(ctx, objective.ID, &ucapi.KeyResultCreateRequest{
		Definition: "Publish 50 terms",
		Progress:   0,
		Goal:       50,
		Max:        100,
		DomainID:   domain.ID,
	})
	require.NoError(t, err)

	updated, err := client.KeyResults().Update(ctx, objective.ID, keyResult.ID, &ucapi.KeyResultUpdateRequest{
		Definition: keyResult.Definition,
		Progress:   25,
		Goal:       keyResult.Goal,
		Max:        keyResult.Max,
		Status:     ucapi.KeyResultStatusOnTrack,
		DomainID:   domain.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, 25, updated.Progress)

	err = client.KeyResults().Delete(ctx, objective.ID, keyResult.ID)
	require.NoError(t, err)
}

// Package ucclient provides the primary entry point for constructing a
// Microsoft Purview Unified Catalog client that implements the ucapi.Client
// interface.
//
// It layers configuration, the resilient HTTP transport, and authentication
// on top of the resource interfaces and types defined in the ucapi package.
// Most applications should import ucclient to build a client, then use the
// returned ucapi.Client to access resource-specific clients, for example
// GovernanceDomains(), Terms(), DataProducts().
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/unifiedcatalog-io/ucapi/pkg/ucapi"
//	  "github.com/unifiedcatalog-io/ucapi/pkg/ucclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // With an access token you already have:
//	  cli, err := ucclient.NewWithToken("my-account", "eyJhbGciOi...")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with a service principal; tokens are acquired and refreshed
//	  // automatically via the client credentials grant:
//	  cli, err = ucclient.New(&ucapi.Config{
//	    AccountID:    "my-account",
//	    TenantID:     "tenant-id",
//	    ClientID:     "client-id",
//	    ClientSecret: "client-secret",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Use resource clients via the ucapi.Client interface
//	  domains, err := cli.GovernanceDomains().List(ctx, ucapi.NewQueryParams().WithPageSize(10))
//	  if err != nil { log.Fatal(err) }
//	  _ = domains
//	}
//
// # Helpers
//
// The package also provides convenience constructors NewWithToken,
// NewWithClientCredentials, NewWithConnectionString, and NewFromEnv that wrap
// New with the appropriate configuration.
package ucclient

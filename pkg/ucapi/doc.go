// Package ucapi provides the public types and interfaces for the Microsoft
// Purview Unified Catalog client.
//
// It defines the resource model (governance domains, glossary terms, data
// products, objectives and key results, critical data elements, and
// relationships), the client interfaces for each resource collection, query
// and pagination helpers, retry and circuit breaker policies, and the error
// types returned by API operations.
//
// Construct a working client with the ucclient package:
//
//	client, err := ucclient.New(&ucapi.Config{
//		AccountID: "my-account",
//		TenantID:  os.Getenv("AZURE_TENANT_ID"),
//		ClientID:  os.Getenv("AZURE_CLIENT_ID"),
//		ClientSecret: os.Getenv("AZURE_CLIENT_SECRET"),
//	})
package ucapi

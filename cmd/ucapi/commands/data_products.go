package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/unifiedcatalog-io/ucapi/internal/constants"
	"github.com/unifiedcatalog-io/ucapi/pkg/ucapi"
)

// NewDataProductsCommand creates the dataproducts command group.
func NewDataProductsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "dataproducts",
		Aliases: []string{"dataproduct", "dp"},
		Short:   "Manage data products",
		Long:    "List and manage Unified Catalog data products",
	}

	cmd.AddCommand(newDataProductsListCommand())
	cmd.AddCommand(newDataProductsGetCommand())
	cmd.AddCommand(newDataProductsCreateCommand())
	cmd.AddCommand(newDataProductsDeleteCommand())

	return cmd
}

func newDataProductsListCommand() *cobra.Command {
	var (
		domainID string
		allPages bool
		pageSize int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List data products",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			var products []ucapi.DataProduct

			if allPages {
				products, err = client.DataProducts().ListAll(ctx, domainID)
				if err != nil {
					return fmt.Errorf("failed to list data products: %w", err)
				}
			} else {
				params := ucapi.NewQueryParams().WithPageSize(pageSize)
				if domainID != "" {
					params.WithDomainID(domainID)
				}

				page, err := client.DataProducts().List(ctx, params)
				if err != nil {
					return fmt.Errorf("failed to list data products: %w", err)
				}

				products = page.Value
			}

			return StandardOutput(products, func() error {
				return renderDataProductsTable(products)
			})
		},
	}

	cmd.Flags().StringVarP(&domainID, "domain", "d", "", "filter by governance domain ID")
	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&pageSize, "page-size", constants.StandardPageSize, "results per page")

	return cmd
}

func renderDataProductsTable(products []ucapi.DataProduct) error {
	if len(products) == 0 {
		_, _ = os.Stdout.WriteString("No data products found\n")

		return nil
	}

	table := newTable("ID", "Name", "Type", "Status", "Domain", "Endorsed")

	for _, product := range products {
		_ = table.Append(product.ID, product.Name, string(product.Type), string(product.Status), product.DomainID, fmt.Sprintf("%t", product.Endorsed))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newDataProductsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <product-id>",
		Short: "Show a data product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			product, err := client.DataProducts().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get data product: %w", err)
			}

			return StandardOutput(product, func() error {
				table := newTable("Property", "Value")
				_ = table.Append("ID", product.ID)
				_ = table.Append("Name", product.Name)
				_ = table.Append("Type", string(product.Type))
				_ = table.Append("Status", string(product.Status))
				_ = table.Append("Domain", product.DomainID)
				_ = table.Append("Description", truncate(product.Description, 80))
				_ = table.Append("Business Use", truncate(product.BusinessUse, 80))
				_ = table.Append("Update Frequency", string(product.UpdateFrequency))
				_ = table.Append("Endorsed", fmt.Sprintf("%t", product.Endorsed))
				_ = table.Append("Owners", formatContacts(product.Contacts))
				_ = table.Append("Created", formatTime(product.CreatedAt))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			})
		},
	}
}

func newDataProductsCreateCommand() *cobra.Command {
	var (
		name        string
		description string
		domainID    string
		productType string
		status      string
		businessUse string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a data product",
		RunE: func(cmd *cobra.Command, args []string) error {
			if domainID == "" {
				return ErrDomainRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			product, err := client.DataProducts().Create(context.Background(), &ucapi.DataProductCreateRequest{
				Name:        name,
				Description: description,
				DomainID:    domainID,
				Type:        ucapi.DataProductType(productType),
				Status:      ucapi.EntityStatus(status),
				BusinessUse: businessUse,
			})
			if err != nil {
				return fmt.Errorf("failed to create data product: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Created data product %s (%s)\n", product.Name, product.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "data product name (required)")
	cmd.Flags().StringVar(&description, "description", "", "data product description")
	cmd.Flags().StringVarP(&domainID, "domain", "d", "", "governance domain ID (required)")
	cmd.Flags().StringVar(&productType, "type", string(ucapi.DataProductTypeDataset), "data product type")
	cmd.Flags().StringVar(&status, "status", string(ucapi.StatusDraft), "data product status")
	cmd.Flags().StringVar(&businessUse, "business-use", "", "business use description")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newDataProductsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <product-id>",
		Short: "Delete a data product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.DataProducts().Delete(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete data product: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Deleted data product %s\n", args[0])

			return nil
		},
	}
}

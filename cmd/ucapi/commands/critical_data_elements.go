package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/unifiedcatalog-io/ucapi/internal/constants"
	"github.com/unifiedcatalog-io/ucapi/pkg/ucapi"
)

// NewCriticalDataElementsCommand creates the cdes command group.
func NewCriticalDataElementsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "cdes",
		Aliases: []string{"cde"},
		Short:   "Manage critical data elements",
		Long:    "List and manage Unified Catalog critical data elements",
	}

	cmd.AddCommand(newCDEsListCommand())
	cmd.AddCommand(newCDEsGetCommand())
	cmd.AddCommand(newCDEsCreateCommand())
	cmd.AddCommand(newCDEsDeleteCommand())

	return cmd
}

func newCDEsListCommand() *cobra.Command {
	var (
		domainID string
		allPages bool
		pageSize int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List critical data elements",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			var elements []ucapi.CriticalDataElement

			if allPages {
				elements, err = client.CriticalDataElements().ListAll(ctx, domainID)
				if err != nil {
					return fmt.Errorf("failed to list critical data elements: %w", err)
				}
			} else {
				params := ucapi.NewQueryParams().WithPageSize(pageSize)
				if domainID != "" {
					params.WithDomainID(domainID)
				}

				page, err := client.CriticalDataElements().List(ctx, params)
				if err != nil {
					return fmt.Errorf("failed to list critical data elements: %w", err)
				}

				elements = page.Value
			}

			return StandardOutput(elements, func() error {
				return renderCDEsTable(elements)
			})
		},
	}

	cmd.Flags().StringVarP(&domainID, "domain", "d", "", "filter by governance domain ID")
	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&pageSize, "page-size", constants.StandardPageSize, "results per page")

	return cmd
}

func renderCDEsTable(elements []ucapi.CriticalDataElement) error {
	if len(elements) == 0 {
		_, _ = os.Stdout.WriteString("No critical data elements found\n")

		return nil
	}

	table := newTable("ID", "Name", "Data Type", "Status", "Domain")

	for _, element := range elements {
		_ = table.Append(element.ID, element.Name, element.DataType, string(element.Status), element.DomainID)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newCDEsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <cde-id>",
		Short: "Show a critical data element",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			element, err := client.CriticalDataElements().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get critical data element: %w", err)
			}

			return StandardOutput(element, func() error {
				table := newTable("Property", "Value")
				_ = table.Append("ID", element.ID)
				_ = table.Append("Name", element.Name)
				_ = table.Append("Data Type", element.DataType)
				_ = table.Append("Status", string(element.Status))
				_ = table.Append("Domain", element.DomainID)
				_ = table.Append("Description", truncate(element.Description, 80))
				_ = table.Append("Owners", formatContacts(element.Contacts))
				_ = table.Append("Created", formatTime(element.CreatedAt))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			})
		},
	}
}

func newCDEsCreateCommand() *cobra.Command {
	var (
		name        string
		description string
		domainID    string
		dataType    string
		status      string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a critical data element",
		RunE: func(cmd *cobra.Command, args []string) error {
			if domainID == "" {
				return ErrDomainRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			element, err := client.CriticalDataElements().Create(context.Background(), &ucapi.CriticalDataElementCreateRequest{
				Name:        name,
				Description: description,
				DomainID:    domainID,
				DataType:    dataType,
				Status:      ucapi.EntityStatus(status),
			})
			if err != nil {
				return fmt.Errorf("failed to create critical data element: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Created critical data element %s (%s)\n", element.Name, element.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "element name (required)")
	cmd.Flags().StringVar(&description, "description", "", "element description")
	cmd.Flags().StringVarP(&domainID, "domain", "d", "", "governance domain ID (required)")
	cmd.Flags().StringVar(&dataType, "data-type", "Text", "element data type")
	cmd.Flags().StringVar(&status, "status", string(ucapi.StatusDraft), "element status")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newCDEsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <cde-id>",
		Short: "Delete a critical data element",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.CriticalDataElements().Delete(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete critical data element: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Deleted critical data element %s\n", args[0])

			return nil
		},
	}
}

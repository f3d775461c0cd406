package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/unifiedcatalog-io/ucapi/internal/constants"
	"github.com/unifiedcatalog-io/ucapi/pkg/ucapi"
)

// NewDomainsCommand creates the domains command group.
func NewDomainsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "domains",
		Aliases: []string{"domain"},
		Short:   "Manage governance domains",
		Long:    "List and manage Unified Catalog governance domains",
	}

	cmd.AddCommand(newDomainsListCommand())
	cmd.AddCommand(newDomainsGetCommand())
	cmd.AddCommand(newDomainsCreateCommand())
	cmd.AddCommand(newDomainsUpdateCommand())
	cmd.AddCommand(newDomainsDeleteCommand())

	return cmd
}

func newDomainsListCommand() *cobra.Command {
	var (
		allPages bool
		pageSize int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List governance domains",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			var domains []ucapi.GovernanceDomain

			if allPages {
				domains, err = client.GovernanceDomains().ListAll(ctx)
				if err != nil {
					return fmt.Errorf("failed to list governance domains: %w", err)
				}
			} else {
				page, err := client.GovernanceDomains().List(ctx, ucapi.NewQueryParams().WithPageSize(pageSize))
				if err != nil {
					return fmt.Errorf("failed to list governance domains: %w", err)
				}

				domains = page.Value
			}

			return StandardOutput(domains, func() error {
				return renderDomainsTable(domains)
			})
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&pageSize, "page-size", constants.StandardPageSize, "results per page")

	return cmd
}

func renderDomainsTable(domains []ucapi.GovernanceDomain) error {
	if len(domains) == 0 {
		_, _ = os.Stdout.WriteString("No governance domains found\n")

		return nil
	}

	table := newTable("ID", "Name", "Type", "Status", "Created")

	for _, domain := range domains {
		_ = table.Append(domain.ID, domain.Name, string(domain.Type), string(domain.Status), formatTime(domain.CreatedAt))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newDomainsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <domain-id>",
		Short: "Show a governance domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			domain, err := client.GovernanceDomains().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get governance domain: %w", err)
			}

			return StandardOutput(domain, func() error {
				table := newTable("Property", "Value")
				_ = table.Append("ID", domain.ID)
				_ = table.Append("Name", domain.Name)
				_ = table.Append("Type", string(domain.Type))
				_ = table.Append("Status", string(domain.Status))
				_ = table.Append("Description", truncate(domain.Description, 80))
				_ = table.Append("Parent", domain.ParentID)
				_ = table.Append("Owners", formatContacts(domain.Contacts))
				_ = table.Append("Created", formatTime(domain.CreatedAt))
				_ = table.Append("Updated", formatTime(domain.UpdatedAt))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			})
		},
	}
}

func newDomainsCreateCommand() *cobra.Command {
	var (
		name        string
		description string
		domainType  string
		status      string
		parentID    string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a governance domain",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			domain, err := client.GovernanceDomains().Create(context.Background(), &ucapi.GovernanceDomainCreateRequest{
				Name:        name,
				Description: description,
				Type:        ucapi.GovernanceDomainType(domainType),
				Status:      ucapi.EntityStatus(status),
				ParentID:    parentID,
			})
			if err != nil {
				return fmt.Errorf("failed to create governance domain: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Created governance domain %s (%s)\n", domain.Name, domain.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "domain name (required)")
	cmd.Flags().StringVar(&description, "description", "", "domain description")
	cmd.Flags().StringVar(&domainType, "type", string(ucapi.DomainTypeDataDomain), "domain type")
	cmd.Flags().StringVar(&status, "status", string(ucapi.StatusDraft), "domain status")
	cmd.Flags().StringVar(&parentID, "parent", "", "parent domain ID")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newDomainsUpdateCommand() *cobra.Command {
	var (
		name        string
		description string
		domainType  string
		status      string
		parentID    string
	)

	cmd := &cobra.Command{
		Use:   "update <domain-id>",
		Short: "Update a governance domain",
		Long:  "Update a governance domain. The service replaces the entity, so fields left empty are fetched from the current state first.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			changed := false
			for _, flag := range []string{"name", "description", "type", "status", "parent"} {
				if cmd.Flags().Changed(flag) {
					changed = true

					break
				}
			}

			if !changed {
				return ErrNothingToUpdate
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			current, err := client.GovernanceDomains().Get(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get governance domain: %w", err)
			}

			request := &ucapi.GovernanceDomainUpdateRequest{
				Name:        current.Name,
				Description: current.Description,
				Type:        current.Type,
				Status:      current.Status,
				ParentID:    current.ParentID,
				Contacts:    &current.Contacts,
			}

			if cmd.Flags().Changed("name") {
				request.Name = name
			}

			if cmd.Flags().Changed("description") {
				request.Description = description
			}

			if cmd.Flags().Changed("type") {
				request.Type = ucapi.GovernanceDomainType(domainType)
			}

			if cmd.Flags().Changed("status") {
				request.Status = ucapi.EntityStatus(status)
			}

			if cmd.Flags().Changed("parent") {
				request.ParentID = parentID
			}

			domain, err := client.GovernanceDomains().Update(ctx, args[0], request)
			if err != nil {
				return fmt.Errorf("failed to update governance domain: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Updated governance domain %s (%s)\n", domain.Name, domain.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "domain name")
	cmd.Flags().StringVar(&description, "description", "", "domain description")
	cmd.Flags().StringVar(&domainType, "type", "", "domain type")
	cmd.Flags().StringVar(&status, "status", "", "domain status")
	cmd.Flags().StringVar(&parentID, "parent", "", "parent domain ID")

	return cmd
}

func newDomainsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <domain-id>",
		Short: "Delete a governance domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.GovernanceDomains().Delete(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete governance domain: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Deleted governance domain %s\n", args[0])

			return nil
		},
	}
}

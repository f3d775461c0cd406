package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/unifiedcatalog-io/ucapi/internal/constants"
	"github.com/unifiedcatalog-io/ucapi/pkg/ucapi"
)

// NewTermsCommand creates the terms command group.
func NewTermsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "terms",
		Aliases: []string{"term"},
		Short:   "Manage glossary terms",
		Long:    "List and manage Unified Catalog glossary terms",
	}

	cmd.AddCommand(newTermsListCommand())
	cmd.AddCommand(newTermsGetCommand())
	cmd.AddCommand(newTermsCreateCommand())
	cmd.AddCommand(newTermsDeleteCommand())

	return cmd
}

func newTermsListCommand() *cobra.Command {
	var (
		domainID string
		allPages bool
		pageSize int
		keyword  string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List glossary terms",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			var terms []ucapi.Term

			if allPages {
				terms, err = client.Terms().ListAll(ctx, domainID)
				if err != nil {
					return fmt.Errorf("failed to list terms: %w", err)
				}
			} else {
				params := ucapi.NewQueryParams().WithPageSize(pageSize)
				if domainID != "" {
					params.WithDomainID(domainID)
				}

				if keyword != "" {
					params.WithKeyword(keyword)
				}

				page, err := client.Terms().List(ctx, params)
				if err != nil {
					return fmt.Errorf("failed to list terms: %w", err)
				}

				terms = page.Value
			}

			return StandardOutput(terms, func() error {
				return renderTermsTable(terms)
			})
		},
	}

	cmd.Flags().StringVarP(&domainID, "domain", "d", "", "filter by governance domain ID")
	cmd.Flags().StringVar(&keyword, "keyword", "", "free-text search filter")
	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&pageSize, "page-size", constants.StandardPageSize, "results per page")

	return cmd
}

func renderTermsTable(terms []ucapi.Term) error {
	if len(terms) == 0 {
		_, _ = os.Stdout.WriteString("No terms found\n")

		return nil
	}

	table := newTable("ID", "Name", "Status", "Domain", "Created")

	for _, term := range terms {
		_ = table.Append(term.ID, term.Name, string(term.Status), term.DomainID, formatTime(term.CreatedAt))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newTermsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <term-id>",
		Short: "Show a glossary term",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			term, err := client.Terms().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get term: %w", err)
			}

			return StandardOutput(term, func() error {
				table := newTable("Property", "Value")
				_ = table.Append("ID", term.ID)
				_ = table.Append("Name", term.Name)
				_ = table.Append("Status", string(term.Status))
				_ = table.Append("Domain", term.DomainID)
				_ = table.Append("Description", truncate(term.Description, 80))
				_ = table.Append("Parent", term.ParentID)
				_ = table.Append("Owners", formatContacts(term.Contacts))
				_ = table.Append("Created", formatTime(term.CreatedAt))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			})
		},
	}
}

func newTermsCreateCommand() *cobra.Command {
	var (
		name        string
		description string
		domainID    string
		status      string
		parentID    string
		acronyms    []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a glossary term",
		RunE: func(cmd *cobra.Command, args []string) error {
			if domainID == "" {
				return ErrDomainRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			term, err := client.Terms().Create(context.Background(), &ucapi.TermCreateRequest{
				Name:        name,
				Description: description,
				DomainID:    domainID,
				Status:      ucapi.EntityStatus(status),
				ParentID:    parentID,
				Acronyms:    acronyms,
			})
			if err != nil {
				return fmt.Errorf("failed to create term: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Created term %s (%s)\n", term.Name, term.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "term name (required)")
	cmd.Flags().StringVar(&description, "description", "", "term description")
	cmd.Flags().StringVarP(&domainID, "domain", "d", "", "governance domain ID (required)")
	cmd.Flags().StringVar(&status, "status", string(ucapi.StatusDraft), "term status")
	cmd.Flags().StringVar(&parentID, "parent", "", "parent term ID")
	cmd.Flags().StringSliceVar(&acronyms, "acronym", nil, "acronym for the term (repeatable)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newTermsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <term-id>",
		Short: "Delete a glossary term",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.Terms().Delete(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete term: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Deleted term %s\n", args[0])

			return nil
		},
	}
}

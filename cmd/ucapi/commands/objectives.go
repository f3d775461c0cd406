package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/unifiedcatalog-io/ucapi/internal/constants"
	"github.com/unifiedcatalog-io/ucapi/pkg/ucapi"
)

// NewObjectivesCommand creates the objectives command group, including key
// result subcommands.
func NewObjectivesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "objectives",
		Aliases: []string{"objective", "okr"},
		Short:   "Manage objectives and key results",
		Long:    "List and manage Unified Catalog objectives and their key results",
	}

	cmd.AddCommand(newObjectivesListCommand())
	cmd.AddCommand(newObjectivesGetCommand())
	cmd.AddCommand(newObjectivesCreateCommand())
	cmd.AddCommand(newObjectivesDeleteCommand())
	cmd.AddCommand(newKeyResultsCommand())

	return cmd
}

func newObjectivesListCommand() *cobra.Command {
	var (
		domainID string
		allPages bool
		pageSize int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List objectives",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			var objectives []ucapi.Objective

			if allPages {
				objectives, err = client.Objectives().ListAll(ctx, domainID)
				if err != nil {
					return fmt.Errorf("failed to list objectives: %w", err)
				}
			} else {
				params := ucapi.NewQueryParams().WithPageSize(pageSize)
				if domainID != "" {
					params.WithDomainID(domainID)
				}

				page, err := client.Objectives().List(ctx, params)
				if err != nil {
					return fmt.Errorf("failed to list objectives: %w", err)
				}

				objectives = page.Value
			}

			return StandardOutput(objectives, func() error {
				return renderObjectivesTable(objectives)
			})
		},
	}

	cmd.Flags().StringVarP(&domainID, "domain", "d", "", "filter by governance domain ID")
	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&pageSize, "page-size", constants.StandardPageSize, "results per page")

	return cmd
}

func renderObjectivesTable(objectives []ucapi.Objective) error {
	if len(objectives) == 0 {
		_, _ = os.Stdout.WriteString("No objectives found\n")

		return nil
	}

	table := newTable("ID", "Definition", "Status", "Domain", "Target Date")

	for _, objective := range objectives {
		_ = table.Append(objective.ID, truncate(objective.Definition, 60), string(objective.Status), objective.DomainID, formatTime(objective.TargetDate))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newObjectivesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <objective-id>",
		Short: "Show an objective",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			objective, err := client.Objectives().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get objective: %w", err)
			}

			return StandardOutput(objective, func() error {
				table := newTable("Property", "Value")
				_ = table.Append("ID", objective.ID)
				_ = table.Append("Definition", truncate(objective.Definition, 80))
				_ = table.Append("Status", string(objective.Status))
				_ = table.Append("Domain", objective.DomainID)
				_ = table.Append("Target Date", formatTime(objective.TargetDate))
				_ = table.Append("Owners", formatContacts(objective.Contacts))
				_ = table.Append("Created", formatTime(objective.CreatedAt))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			})
		},
	}
}

func newObjectivesCreateCommand() *cobra.Command {
	var (
		definition string
		domainID   string
		status     string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an objective",
		RunE: func(cmd *cobra.Command, args []string) error {
			if domainID == "" {
				return ErrDomainRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			objective, err := client.Objectives().Create(context.Background(), &ucapi.ObjectiveCreateRequest{
				Definition: definition,
				DomainID:   domainID,
				Status:     ucapi.EntityStatus(status),
			})
			if err != nil {
				return fmt.Errorf("failed to create objective: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Created objective %s\n", objective.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&definition, "definition", "", "objective definition (required)")
	cmd.Flags().StringVarP(&domainID, "domain", "d", "", "governance domain ID (required)")
	cmd.Flags().StringVar(&status, "status", string(ucapi.StatusDraft), "objective status")
	_ = cmd.MarkFlagRequired("definition")

	return cmd
}

func newObjectivesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <objective-id>",
		Short: "Delete an objective",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.Objectives().Delete(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete objective: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Deleted objective %s\n", args[0])

			return nil
		},
	}
}

func newKeyResultsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "keyresults",
		Aliases: []string{"kr"},
		Short:   "Manage key results of an objective",
	}

	cmd.AddCommand(newKeyResultsListCommand())
	cmd.AddCommand(newKeyResultsCreateCommand())
	cmd.AddCommand(newKeyResultsDeleteCommand())

	return cmd
}

func newKeyResultsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list <objective-id>",
		Short: "List key results of an objective",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			page, err := client.KeyResults().List(context.Background(), args[0], nil)
			if err != nil {
				return fmt.Errorf("failed to list key results: %w", err)
			}

			return StandardOutput(page.Value, func() error {
				if len(page.Value) == 0 {
					_, _ = os.Stdout.WriteString("No key results found\n")

					return nil
				}

				table := newTable("ID", "Definition", "Progress", "Goal", "Status")

				for _, keyResult := range page.Value {
					_ = table.Append(
						keyResult.ID,
						truncate(keyResult.Definition, 60),
						fmt.Sprintf("%.0f%%", keyResult.ProgressPercentage()),
						fmt.Sprintf("%.0f%%", keyResult.GoalPercentage()),
						string(keyResult.Status),
					)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			})
		},
	}
}

func newKeyResultsCreateCommand() *cobra.Command {
	var (
		definition string
		domainID   string
		progress   int
		goal       int
		maxValue   int
		status     string
	)

	cmd := &cobra.Command{
		Use:   "create <objective-id>",
		Short: "Create a key result under an objective",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if domainID == "" {
				return ErrDomainRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			keyResult, err := client.KeyResults().Create(context.Background(), args[0], &ucapi.KeyResultCreateRequest{
				Definition: definition,
				DomainID:   domainID,
				Progress:   progress,
				Goal:       goal,
				Max:        maxValue,
				Status:     ucapi.KeyResultStatus(status),
			})
			if err != nil {
				return fmt.Errorf("failed to create key result: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Created key result %s\n", keyResult.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&definition, "definition", "", "key result definition (required)")
	cmd.Flags().StringVarP(&domainID, "domain", "d", "", "governance domain ID (required)")
	cmd.Flags().IntVar(&progress, "progress", 0, "current progress value")
	cmd.Flags().IntVar(&goal, "goal", 100, "goal value")
	cmd.Flags().IntVar(&maxValue, "max", 100, "maximum value")
	cmd.Flags().StringVar(&status, "status", string(ucapi.KeyResultStatusOnTrack), "key result status")
	_ = cmd.MarkFlagRequired("definition")

	return cmd
}

func newKeyResultsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <objective-id> <keyresult-id>",
		Short: "Delete a key result",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.KeyResults().Delete(context.Background(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to delete key result: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Deleted key result %s\n", args[1])

			return nil
		},
	}
}

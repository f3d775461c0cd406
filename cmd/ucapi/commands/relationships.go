package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/unifiedcatalog-io/ucapi/pkg/ucapi"
)

// NewRelationshipsCommand creates the relationships command group.
func NewRelationshipsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "relationships",
		Aliases: []string{"rel", "rels"},
		Short:   "Manage entity relationships",
		Long:    "Attach, list, and detach relationships between catalog entities",
	}

	cmd.AddCommand(newRelationshipsListCommand())
	cmd.AddCommand(newRelationshipsAddCommand())
	cmd.AddCommand(newRelationshipsRemoveCommand())

	return cmd
}

func newRelationshipsListCommand() *cobra.Command {
	var (
		collection string
		entityType string
	)

	cmd := &cobra.Command{
		Use:   "list <entity-id>",
		Short: "List relationships for an entity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			page, err := client.Relationships().List(context.Background(), collection, args[0], ucapi.EntityType(entityType))
			if err != nil {
				return fmt.Errorf("failed to list relationships: %w", err)
			}

			return StandardOutput(page.Value, func() error {
				return renderRelationshipsTable(page.Value)
			})
		},
	}

	cmd.Flags().StringVarP(&collection, "collection", "c", ucapi.CollectionTerms, "owning entity collection (terms, dataproducts, criticalDataElements)")
	cmd.Flags().StringVarP(&entityType, "entity-type", "t", string(ucapi.EntityTypeDataAsset), "related entity type to list")

	return cmd
}

func renderRelationshipsTable(relationships []ucapi.Relationship) error {
	if len(relationships) == 0 {
		_, _ = os.Stdout.WriteString("No relationships found\n")

		return nil
	}

	table := newTable("Entity ID", "Entity Type", "Relationship", "Description")

	for _, rel := range relationships {
		_ = table.Append(rel.EntityID, string(rel.EntityType), rel.RelationshipType, truncate(rel.Description, 50))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newRelationshipsAddCommand() *cobra.Command {
	var (
		collection       string
		entityType       string
		relationshipType string
		description      string
	)

	cmd := &cobra.Command{
		Use:   "add <entity-id> <target-id>",
		Short: "Attach a target entity to an entity",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			rel, err := client.Relationships().Add(context.Background(), collection, args[0], &ucapi.RelationshipCreateRequest{
				EntityType:       ucapi.EntityType(entityType),
				EntityID:         args[1],
				RelationshipType: relationshipType,
				Description:      description,
			})
			if err != nil {
				return fmt.Errorf("failed to add relationship: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Added relationship to %s\n", rel.EntityID)

			return nil
		},
	}

	cmd.Flags().StringVarP(&collection, "collection", "c", ucapi.CollectionTerms, "owning entity collection (terms, dataproducts, criticalDataElements)")
	cmd.Flags().StringVarP(&entityType, "entity-type", "t", string(ucapi.EntityTypeDataAsset), "target entity type")
	cmd.Flags().StringVar(&relationshipType, "relationship-type", "Related", "relationship type")
	cmd.Flags().StringVar(&description, "description", "", "relationship description")

	return cmd
}

func newRelationshipsRemoveCommand() *cobra.Command {
	var (
		collection string
		entityType string
	)

	cmd := &cobra.Command{
		Use:   "remove <entity-id> <target-id>",
		Short: "Detach a target entity from an entity",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.Relationships().Delete(context.Background(), collection, args[0], ucapi.EntityType(entityType), args[1])
			if err != nil {
				return fmt.Errorf("failed to remove relationship: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Removed relationship to %s\n", args[1])

			return nil
		},
	}

	cmd.Flags().StringVarP(&collection, "collection", "c", ucapi.CollectionTerms, "owning entity collection (terms, dataproducts, criticalDataElements)")
	cmd.Flags().StringVarP(&entityType, "entity-type", "t", string(ucapi.EntityTypeDataAsset), "target entity type")

	return cmd
}

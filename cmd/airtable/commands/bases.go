package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewBasesCommand creates the bases command group.
func NewBasesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "bases",
		Aliases: []string{"base"},
		Short:   "Inspect bases",
		Long:    "List accessible bases and show their table schemas",
	}

	cmd.AddCommand(newBasesListCommand())
	cmd.AddCommand(newBasesSchemaCommand())

	return cmd
}

func newBasesListCommand() *cobra.Command {
	var offset string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List bases",
		Long:  "List the bases the token can access",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			bases, err := client.Bases().List(context.Background(), offset)
			if err != nil {
				return fmt.Errorf("failed to list bases: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return outputJSON(bases.Bases)
			case OutputFormatYAML:
				return outputYAML(bases.Bases)
			default:
				if len(bases.Bases) == 0 {
					fmt.Println("No bases found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Permission Level")

				for _, base := range bases.Bases {
					_ = table.Append(base.ID, base.Name, base.PermissionLevel)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				if bases.Offset != "" {
					fmt.Printf("\nMore bases available, next offset: %s\n", bases.Offset)
				}

				return nil
			}
		},
	}

	cmd.Flags().StringVar(&offset, "offset", "", "pagination cursor to resume from")

	return cmd
}

func newBasesSchemaCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Show base schema",
		Long:  "Show the table schemas of the targeted base",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			base, err := resolveBase()
			if err != nil {
				return err
			}

			schema, err := client.Bases().GetSchema(context.Background(), base)
			if err != nil {
				return fmt.Errorf("failed to get base schema: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return outputJSON(schema)
			case OutputFormatYAML:
				return outputYAML(schema)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Table", "Field", "Type", "Description")

				for _, ts := range schema.Tables {
					for _, field := range ts.Fields {
						_ = table.Append(ts.Name, field.Name, field.Type, field.Description)
					}
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			}
		},
	}

	return cmd
}

package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/airtable/internal/constants"
	"github.com/fivetwenty-io/airtable/pkg/airtable"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRecordsCommand creates the records command group.
func NewRecordsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "records",
		Aliases: []string{"record", "rec"},
		Short:   "Manage records",
		Long:    "List, get, create, update, and delete records in a table",
	}

	cmd.PersistentFlags().String("table", "", "table ID or name")
	_ = viper.BindPFlag("table", cmd.PersistentFlags().Lookup("table"))

	cmd.AddCommand(newRecordsListCommand())
	cmd.AddCommand(newRecordsGetCommand())
	cmd.AddCommand(newRecordsCreateCommand())
	cmd.AddCommand(newRecordsUpdateCommand())
	cmd.AddCommand(newRecordsDeleteCommand())

	return cmd
}

// resolveTable returns the table from the flag or configuration.
func resolveTable() (string, error) {
	table := viper.GetString("table")
	if table == "" {
		return "", constants.ErrTableFlagRequired
	}

	return table, nil
}

func newRecordsListCommand() *cobra.Command {
	var (
		filter     string
		fields     []string
		maxRecords int
		view       string
		offset     string
		all        bool
		maxPages   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List records",
		Long:  "List records from a table, optionally following pagination cursors with --all",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			base, err := resolveBase()
			if err != nil {
				return err
			}

			table, err := resolveTable()
			if err != nil {
				return err
			}

			opts := airtable.NewListOptions().
				WithFilterByFormula(filter).
				WithFields(fields...).
				WithMaxRecords(maxRecords).
				WithView(view).
				WithOffset(offset)

			ctx := context.Background()

			var records []airtable.Record

			if all {
				records, err = airtable.FetchAllRecords(ctx, client.Records(), base, table, opts,
					&airtable.PaginationOptions{MaxPages: maxPages})
				if err != nil {
					return fmt.Errorf("failed to list records: %w", err)
				}
			} else {
				page, err := client.Records().List(ctx, base, table, opts)
				if err != nil {
					return fmt.Errorf("failed to list records: %w", err)
				}

				records = page.Records

				if page.HasMore() && viper.GetString("output") == "table" {
					defer fmt.Printf("\nMore records available, next offset: %s\n", page.Offset)
				}
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return outputJSON(records)
			case OutputFormatYAML:
				return outputYAML(records)
			default:
				return renderRecordsTable(records)
			}
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "filterByFormula expression")
	cmd.Flags().StringSliceVar(&fields, "fields", nil, "fields to return (repeatable)")
	cmd.Flags().IntVar(&maxRecords, "max-records", 0, "per-page record cap")
	cmd.Flags().StringVar(&view, "view", "", "view ID or name")
	cmd.Flags().StringVar(&offset, "offset", "", "pagination cursor to resume from")
	cmd.Flags().BoolVar(&all, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&maxPages, "max-pages", 0, "page cap when using --all (0 = no cap)")

	return cmd
}

func newRecordsGetCommand() *cobra.Command {
	var fields []string

	cmd := &cobra.Command{
		Use:   "get RECORD_ID",
		Short: "Get a record",
		Long:  "Get a single record by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			base, err := resolveBase()
			if err != nil {
				return err
			}

			table, err := resolveTable()
			if err != nil {
				return err
			}

			record, err := client.Records().Get(context.Background(), base, table, args[0], fields)
			if err != nil {
				return fmt.Errorf("failed to get record: %w", err)
			}

			return outputRecord(record)
		},
	}

	cmd.Flags().StringSliceVar(&fields, "fields", nil, "fields to return (repeatable)")

	return cmd
}

func newRecordsCreateCommand() *cobra.Command {
	var (
		fieldsJSON  string
		recordsJSON string
		typecast    bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create records",
		Long:  "Create one record with --fields, or up to 10 records with --records",
		RunE: func(cmd *cobra.Command, args []string) error {
			if fieldsJSON != "" && recordsJSON != "" {
				return airtable.ErrFieldsAndRecords
			}

			if fieldsJSON == "" && recordsJSON == "" {
				return airtable.ErrFieldsOrRecords
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			base, err := resolveBase()
			if err != nil {
				return err
			}

			table, err := resolveTable()
			if err != nil {
				return err
			}

			ctx := context.Background()

			if fieldsJSON != "" {
				var fields map[string]any
				if err := json.Unmarshal([]byte(fieldsJSON), &fields); err != nil {
					return fmt.Errorf("%w: %w", constants.ErrInvalidFieldsJSON, err)
				}

				record, err := client.Records().Create(ctx, base, table, fields, typecast)
				if err != nil {
					return fmt.Errorf("failed to create record: %w", err)
				}

				return outputRecord(record)
			}

			var batch []map[string]any
			if err := json.Unmarshal([]byte(recordsJSON), &batch); err != nil {
				return fmt.Errorf("%w: %w", constants.ErrInvalidRecordsJSON, err)
			}

			created, err := client.Records().CreateBatch(ctx, base, table, batch, typecast)
			if err != nil {
				return fmt.Errorf("failed to create records: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return outputJSON(created)
			case OutputFormatYAML:
				return outputYAML(created)
			default:
				return renderRecordsTable(created)
			}
		},
	}

	cmd.Flags().StringVar(&fieldsJSON, "fields", "", "field map as a JSON object (single record)")
	cmd.Flags().StringVar(&recordsJSON, "records", "", "field maps as a JSON array (batch)")
	cmd.Flags().BoolVar(&typecast, "typecast", false, "let the service coerce value types")

	return cmd
}

func newRecordsUpdateCommand() *cobra.Command {
	var (
		fieldsJSON string
		typecast   bool
	)

	cmd := &cobra.Command{
		Use:   "update RECORD_ID",
		Short: "Update a record",
		Long:  "Partially update a record: fields not named keep their value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if fieldsJSON == "" {
				return constants.ErrFieldsFlagRequired
			}

			var fields map[string]any
			if err := json.Unmarshal([]byte(fieldsJSON), &fields); err != nil {
				return fmt.Errorf("%w: %w", constants.ErrInvalidFieldsJSON, err)
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			base, err := resolveBase()
			if err != nil {
				return err
			}

			table, err := resolveTable()
			if err != nil {
				return err
			}

			record, err := client.Records().Update(context.Background(), base, table, args[0], fields, typecast)
			if err != nil {
				return fmt.Errorf("failed to update record: %w", err)
			}

			return outputRecord(record)
		},
	}

	cmd.Flags().StringVar(&fieldsJSON, "fields", "", "field map of changes as a JSON object")
	cmd.Flags().BoolVar(&typecast, "typecast", false, "let the service coerce value types")

	return cmd
}

func newRecordsDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete RECORD_ID",
		Short: "Delete a record",
		Long:  "Delete a record by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			base, err := resolveBase()
			if err != nil {
				return err
			}

			table, err := resolveTable()
			if err != nil {
				return err
			}

			record, err := client.Records().Delete(context.Background(), base, table, args[0])
			if err != nil {
				return fmt.Errorf("failed to delete record: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return outputJSON(record)
			case OutputFormatYAML:
				return outputYAML(record)
			default:
				fmt.Printf("Deleted record %s\n", record.ID)

				return nil
			}
		},
	}

	return cmd
}

// outputRecord prints a single record in the selected format.
func outputRecord(record *airtable.Record) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return outputJSON(record)
	case OutputFormatYAML:
		return outputYAML(record)
	default:
		return renderRecordsTable([]airtable.Record{*record})
	}
}

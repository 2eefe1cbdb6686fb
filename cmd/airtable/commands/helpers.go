package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/fivetwenty-io/airtable/internal/constants"
	"github.com/fivetwenty-io/airtable/pkg/airtable"
	"github.com/fivetwenty-io/airtable/pkg/atclient"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

// createClient builds an API client from the effective configuration
// (flags, environment, config file).
func createClient() (airtable.Client, error) {
	token := viper.GetString("token")
	if token == "" {
		return nil, constants.ErrNoAPIToken
	}

	return atclient.New(&airtable.Config{
		APIToken: token,
		Endpoint: viper.GetString("endpoint"),
		RetryMax: viper.GetInt("retry_max"),
		Debug:    viper.GetBool("verbose"),
	})
}

// resolveBase returns the base ID from the flag or configuration.
func resolveBase() (string, error) {
	base := viper.GetString("base")
	if base == "" {
		return "", constants.ErrBaseFlagRequired
	}

	return base, nil
}

func outputJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	return encoder.Encode(v)
}

func outputYAML(v any) error {
	encoder := yaml.NewEncoder(os.Stdout)

	return encoder.Encode(v)
}

// renderRecordsTable prints records with one column per field name seen
// across the result set, plus the record ID.
func renderRecordsTable(records []airtable.Record) error {
	if len(records) == 0 {
		fmt.Println("No records found")

		return nil
	}

	columns := fieldColumns(records)

	header := append([]string{"ID"}, columns...)
	table := tablewriter.NewWriter(os.Stdout)
	table.Header(toAnySlice(header)...)

	for _, record := range records {
		row := make([]string, 0, len(columns)+1)
		row = append(row, record.ID)

		for _, col := range columns {
			row = append(row, formatFieldValue(record.Fields[col]))
		}

		_ = table.Append(toAnySlice(row)...)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// fieldColumns collects the field names present in the records, sorted
// for a stable layout.
func fieldColumns(records []airtable.Record) []string {
	seen := make(map[string]struct{})
	for _, record := range records {
		for name := range record.Fields {
			seen[name] = struct{}{}
		}
	}

	columns := make([]string, 0, len(seen))
	for name := range seen {
		columns = append(columns, name)
	}

	sort.Strings(columns)

	return columns
}

// formatFieldValue renders a field value for table output, truncating
// long values.
func formatFieldValue(value any) string {
	if value == nil {
		return ""
	}

	var s string

	switch v := value.(type) {
	case string:
		s = v
	case float64, bool, int:
		s = fmt.Sprintf("%v", v)
	default:
		data, err := json.Marshal(v)
		if err != nil {
			s = fmt.Sprintf("%v", v)
		} else {
			s = string(data)
		}
	}

	if len(s) > constants.FieldTruncationLimit {
		s = s[:constants.FieldTruncationLimit-3] + "..."
	}

	return strings.ReplaceAll(s, "\n", " ")
}

func toAnySlice(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}

	return out
}

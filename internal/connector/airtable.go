package connector

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/fivetwenty-io/airtable/pkg/airtable"
)

// Fetch types control what the list action does with the rows it reads.
const (
	// FetchTypeFetch returns all rows inline in the action output.
	FetchTypeFetch = "FETCH"

	// FetchTypeFetchOne returns only the first row.
	FetchTypeFetchOne = "FETCH_ONE"

	// FetchTypeStore writes rows to storage as newline-delimited JSON
	// and returns the URI.
	FetchTypeStore = "STORE"

	// FetchTypeNone discards the rows and returns only the count.
	FetchTypeNone = "NONE"
)

// Static connector errors.
var (
	ErrClientRequired    = errors.New("airtable connector: client is required")
	ErrStorageRequired   = errors.New("airtable connector: storage is required for fetch type STORE")
	ErrUnknownFetchType  = errors.New("airtable connector: unknown fetch type")
	ErrUnknownAction     = errors.New("airtable connector: unknown action")
	ErrInvalidFieldsType = errors.New("airtable connector: 'fields' must be an object of field name to value")
	ErrInvalidRecords    = errors.New("airtable connector: 'records' must be an array of field objects")
)

// AirtableConnector exposes record CRUD against one Airtable API
// connection as workflow actions.
type AirtableConnector struct {
	client  airtable.Client
	storage Storage
}

// NewAirtableConnector creates the connector. Storage may be nil when
// the STORE fetch type is not used.
func NewAirtableConnector(client airtable.Client, storage Storage) *AirtableConnector {
	return &AirtableConnector{client: client, storage: storage}
}

func (a *AirtableConnector) Name() string { return "airtable" }

// Validate implements Connector.Validate.
func (a *AirtableConnector) Validate() error {
	if a.client == nil {
		return ErrClientRequired
	}

	return nil
}

func (a *AirtableConnector) Actions() []ActionDef {
	listInput := map[string]FieldDef{
		"base":               {Type: "string", Description: "Base ID (appXXXX)", Required: true},
		"table":              {Type: "string", Description: "Table ID or name", Required: true},
		"filterByFormula":    {Type: "string", Description: "Airtable formula restricting the rows", Required: false},
		"fields":             {Type: "array", Description: "Field names to return", Required: false},
		"maxRecords":         {Type: "integer", Description: "Per-page record cap", Required: false},
		"view":               {Type: "string", Description: "View ID or name", Required: false},
		"fetchType":          {Type: "string", Description: "FETCH, FETCH_ONE, STORE, or NONE (default FETCH)", Required: false},
		"autoPaginate":       {Type: "boolean", Description: "Follow pagination cursors (default false: one page per run)", Required: false},
		"maxPages":           {Type: "integer", Description: "Cap on pages fetched when auto-paginating (0 = no cap)", Required: false},
	}

	return []ActionDef{
		{
			Name:        "list",
			Description: "List records from a table, optionally following pagination cursors",
			Input:       listInput,
			Output: map[string]FieldDef{
				"records": {Type: "array", Description: "Fetched rows (fetchType FETCH)"},
				"record":  {Type: "object", Description: "First row (fetchType FETCH_ONE)"},
				"uri":     {Type: "string", Description: "Stored object URI (fetchType STORE)"},
				"size":    {Type: "integer", Description: "Number of rows read"},
				"offset":  {Type: "string", Description: "Next-page cursor when auto-pagination is off"},
			},
		},
		{
			Name:        "get",
			Description: "Get a single record by ID",
			Input: map[string]FieldDef{
				"base":     {Type: "string", Description: "Base ID (appXXXX)", Required: true},
				"table":    {Type: "string", Description: "Table ID or name", Required: true},
				"recordId": {Type: "string", Description: "Record ID (recXXXX)", Required: true},
				"fields":   {Type: "array", Description: "Field names to return", Required: false},
			},
			Output: map[string]FieldDef{
				"record": {Type: "object", Description: "The fetched record"},
			},
		},
		{
			Name:        "create",
			Description: "Create one record ('fields') or up to 10 records ('records')",
			Input: map[string]FieldDef{
				"base":     {Type: "string", Description: "Base ID (appXXXX)", Required: true},
				"table":    {Type: "string", Description: "Table ID or name", Required: true},
				"fields":   {Type: "object", Description: "Field map for a single record", Required: false},
				"records":  {Type: "array", Description: "Field maps for multiple records", Required: false},
				"typecast": {Type: "boolean", Description: "Let the service coerce value types", Required: false},
			},
			Output: map[string]FieldDef{
				"record":  {Type: "object", Description: "Created record (single)"},
				"records": {Type: "array", Description: "Created records (batch)"},
				"size":    {Type: "integer", Description: "Number of records created"},
			},
		},
		{
			Name:        "update",
			Description: "Partially update a record: unnamed fields keep their value",
			Input: map[string]FieldDef{
				"base":     {Type: "string", Description: "Base ID (appXXXX)", Required: true},
				"table":    {Type: "string", Description: "Table ID or name", Required: true},
				"recordId": {Type: "string", Description: "Record ID (recXXXX)", Required: true},
				"fields":   {Type: "object", Description: "Field map of changes", Required: true},
				"typecast": {Type: "boolean", Description: "Let the service coerce value types", Required: false},
			},
			Output: map[string]FieldDef{
				"record": {Type: "object", Description: "The updated record"},
			},
		},
		{
			Name:        "delete",
			Description: "Delete a record by ID",
			Input: map[string]FieldDef{
				"base":     {Type: "string", Description: "Base ID (appXXXX)", Required: true},
				"table":    {Type: "string", Description: "Table ID or name", Required: true},
				"recordId": {Type: "string", Description: "Record ID (recXXXX)", Required: true},
			},
			Output: map[string]FieldDef{
				"record":  {Type: "object", Description: "Deletion acknowledgment (ID only)"},
				"deleted": {Type: "boolean", Description: "Whether the service acknowledged the deletion"},
			},
		},
	}
}

// Execute implements Connector.Execute.
func (a *AirtableConnector) Execute(ctx context.Context, action string, input map[string]any) (map[string]any, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}

	switch action {
	case "list":
		return a.list(ctx, input)
	case "get":
		return a.get(ctx, input)
	case "create":
		return a.create(ctx, input)
	case "update":
		return a.update(ctx, input)
	case "delete":
		return a.delete(ctx, input)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
}

func (a *AirtableConnector) list(ctx context.Context, input map[string]any) (map[string]any, error) {
	base, table := stringInput(input, "base"), stringInput(input, "table")

	opts := airtable.NewListOptions().
		WithFilterByFormula(stringInput(input, "filterByFormula")).
		WithMaxRecords(intInput(input, "maxRecords")).
		WithView(stringInput(input, "view"))

	fields, err := stringSliceInput(input, "fields")
	if err != nil {
		return nil, err
	}

	opts.WithFields(fields...)

	fetchType := strings.ToUpper(stringInput(input, "fetchType"))
	if fetchType == "" {
		fetchType = FetchTypeFetch
	}

	switch fetchType {
	case FetchTypeFetch, FetchTypeFetchOne, FetchTypeStore, FetchTypeNone:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFetchType, fetchType)
	}

	autoPaginate := boolInput(input, "autoPaginate", false)

	var (
		records []airtable.Record
		offset  string
	)

	if autoPaginate {
		popts := &airtable.PaginationOptions{MaxPages: intInput(input, "maxPages")}

		records, err = airtable.FetchAllRecords(ctx, a.client.Records(), base, table, opts, popts)
		if err != nil {
			return nil, err
		}
	} else {
		page, err := a.client.Records().List(ctx, base, table, opts)
		if err != nil {
			return nil, err
		}

		records = page.Records
		offset = page.Offset
	}

	output := map[string]any{"size": len(records)}
	if offset != "" {
		output["offset"] = offset
	}

	switch fetchType {
	case FetchTypeFetch:
		output["records"] = recordMaps(records)
	case FetchTypeFetchOne:
		// size stays the total rows read, as for the other fetch types
		if len(records) > 0 {
			output["record"] = records[0].ToMap()
		}
	case FetchTypeStore:
		uri, err := a.storeRecords(ctx, table, records)
		if err != nil {
			return nil, err
		}

		output["uri"] = uri
	case FetchTypeNone:
	}

	return output, nil
}

func (a *AirtableConnector) get(ctx context.Context, input map[string]any) (map[string]any, error) {
	fields, err := stringSliceInput(input, "fields")
	if err != nil {
		return nil, err
	}

	record, err := a.client.Records().Get(ctx,
		stringInput(input, "base"), stringInput(input, "table"), stringInput(input, "recordId"), fields)
	if err != nil {
		return nil, err
	}

	return map[string]any{"record": record.ToMap()}, nil
}

// create accepts exactly one of 'fields' (single record) or 'records'
// (batch). Supplying both, or neither, is a validation failure.
func (a *AirtableConnector) create(ctx context.Context, input map[string]any) (map[string]any, error) {
	base, table := stringInput(input, "base"), stringInput(input, "table")
	typecast := boolInput(input, "typecast", false)

	fieldsRaw, hasFields := input["fields"]
	recordsRaw, hasRecords := input["records"]

	hasFields = hasFields && fieldsRaw != nil
	hasRecords = hasRecords && recordsRaw != nil

	switch {
	case hasFields && hasRecords:
		return nil, airtable.ErrFieldsAndRecords
	case !hasFields && !hasRecords:
		return nil, airtable.ErrFieldsOrRecords
	}

	if hasFields {
		fields, ok := fieldsRaw.(map[string]any)
		if !ok {
			return nil, ErrInvalidFieldsType
		}

		record, err := a.client.Records().Create(ctx, base, table, fields, typecast)
		if err != nil {
			return nil, err
		}

		return map[string]any{"record": record.ToMap(), "size": 1}, nil
	}

	batch, err := fieldMapsInput(recordsRaw)
	if err != nil {
		return nil, err
	}

	created, err := a.client.Records().CreateBatch(ctx, base, table, batch, typecast)
	if err != nil {
		return nil, err
	}

	return map[string]any{"records": recordMaps(created), "size": len(created)}, nil
}

func (a *AirtableConnector) update(ctx context.Context, input map[string]any) (map[string]any, error) {
	fields, ok := input["fields"].(map[string]any)
	if !ok {
		return nil, ErrInvalidFieldsType
	}

	record, err := a.client.Records().Update(ctx,
		stringInput(input, "base"), stringInput(input, "table"), stringInput(input, "recordId"),
		fields, boolInput(input, "typecast", false))
	if err != nil {
		return nil, err
	}

	return map[string]any{"record": record.ToMap()}, nil
}

func (a *AirtableConnector) delete(ctx context.Context, input map[string]any) (map[string]any, error) {
	record, err := a.client.Records().Delete(ctx,
		stringInput(input, "base"), stringInput(input, "table"), stringInput(input, "recordId"))
	if err != nil {
		return nil, err
	}

	return map[string]any{"record": record.ToMap(), "deleted": record.Deleted()}, nil
}

// storeRecords writes rows as newline-delimited JSON and returns the
// storage URI.
func (a *AirtableConnector) storeRecords(ctx context.Context, table string, records []airtable.Record) (string, error) {
	if a.storage == nil {
		return "", ErrStorageRequired
	}

	var buf bytes.Buffer

	encoder := json.NewEncoder(&buf)
	for i := range records {
		if err := encoder.Encode(records[i].ToMap()); err != nil {
			return "", fmt.Errorf("encoding record %q: %w", records[i].ID, err)
		}
	}

	uri, err := a.storage.Store(ctx, table+"-records.ndjson", &buf)
	if err != nil {
		return "", fmt.Errorf("storing records: %w", err)
	}

	return uri, nil
}

func recordMaps(records []airtable.Record) []map[string]any {
	maps := make([]map[string]any, 0, len(records))
	for i := range records {
		maps = append(maps, records[i].ToMap())
	}

	return maps
}

// Input coercion helpers. Workflow inputs arrive as decoded JSON, so
// numbers are float64 and arrays are []any.

func stringInput(input map[string]any, key string) string {
	s, _ := input[key].(string)

	return s
}

func boolInput(input map[string]any, key string, def bool) bool {
	if b, ok := input[key].(bool); ok {
		return b
	}

	return def
}

func intInput(input map[string]any, key string) int {
	switch v := input[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	default:
		return 0
	}
}

func stringSliceInput(input map[string]any, key string) ([]string, error) {
	raw, ok := input[key]
	if !ok || raw == nil {
		return nil, nil
	}

	switch v := raw.(type) {
	case []string:
		return v, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("airtable connector: %q must be an array of strings", key)
			}

			out = append(out, s)
		}

		return out, nil
	default:
		return nil, fmt.Errorf("airtable connector: %q must be an array of strings", key)
	}
}

func fieldMapsInput(raw any) ([]map[string]any, error) {
	switch v := raw.(type) {
	case []map[string]any:
		return v, nil
	case []any:
		out := make([]map[string]any, 0, len(v))
		for _, item := range v {
			fields, ok := item.(map[string]any)
			if !ok {
				return nil, ErrInvalidRecords
			}

			out = append(out, fields)
		}

		return out, nil
	default:
		return nil, ErrInvalidRecords
	}
}

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/airtable/internal/http"
	"github.com/fivetwenty-io/airtable/pkg/airtable"
)

// RecordsClient implements airtable.RecordsClient.
type RecordsClient struct {
	httpClient *http.Client
}

// NewRecordsClient creates a new records client.
func NewRecordsClient(httpClient *http.Client) *RecordsClient {
	return &RecordsClient{
		httpClient: httpClient,
	}
}

// createRecordRequest is the body of a single-record create or a partial
// update. Typecast is only serialized when true: the API treats a
// missing key and an explicit false identically, and requests without
// coercion stay byte-for-byte free of the key.
type createRecordRequest struct {
	Fields   map[string]any `json:"fields"`
	Typecast bool           `json:"typecast,omitempty"`
}

// createBatchRequest is the body of a multi-record create.
type createBatchRequest struct {
	Records  []recordFields `json:"records"`
	Typecast bool           `json:"typecast,omitempty"`
}

type recordFields struct {
	Fields map[string]any `json:"fields"`
}

// tablePath builds the record-collection path for a base and table. The
// table segment accepts either a table ID or a display name, so it is
// escaped for safe embedding.
func tablePath(baseID, table string) string {
	return "/" + url.PathEscape(baseID) + "/" + url.PathEscape(table)
}

func recordPath(baseID, table, recordID string) string {
	return tablePath(baseID, table) + "/" + url.PathEscape(recordID)
}

func validateRef(baseID, table string) error {
	if baseID == "" {
		return airtable.ErrBaseIDRequired
	}

	if table == "" {
		return airtable.ErrTableRequired
	}

	return nil
}

// List implements airtable.RecordsClient.List.
func (c *RecordsClient) List(ctx context.Context, baseID, table string, opts *airtable.ListOptions) (*airtable.ListResponse, error) {
	if err := validateRef(baseID, table); err != nil {
		return nil, err
	}

	var query url.Values
	if opts != nil {
		if err := opts.Validate(); err != nil {
			return nil, err
		}

		query = opts.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, tablePath(baseID, table), query)
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}

	var result airtable.ListResponse
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing record list response: %w", err)
	}

	return &result, nil
}

// Get implements airtable.RecordsClient.Get.
func (c *RecordsClient) Get(ctx context.Context, baseID, table, recordID string, fields []string) (*airtable.Record, error) {
	if err := validateRef(baseID, table); err != nil {
		return nil, err
	}

	if recordID == "" {
		return nil, airtable.ErrRecordIDRequired
	}

	resp, err := c.httpClient.Get(ctx, recordPath(baseID, table, recordID), airtable.FieldValues(fields))
	if err != nil {
		return nil, fmt.Errorf("getting record: %w", err)
	}

	var record airtable.Record
	if err := json.Unmarshal(resp.Body, &record); err != nil {
		return nil, fmt.Errorf("parsing record response: %w", err)
	}

	return &record, nil
}

// Create implements airtable.RecordsClient.Create.
func (c *RecordsClient) Create(ctx context.Context, baseID, table string, fields map[string]any, typecast bool) (*airtable.Record, error) {
	if err := validateRef(baseID, table); err != nil {
		return nil, err
	}

	request := &createRecordRequest{Fields: fields, Typecast: typecast}

	resp, err := c.httpClient.Post(ctx, tablePath(baseID, table), request)
	if err != nil {
		return nil, fmt.Errorf("creating record: %w", err)
	}

	var record airtable.Record
	if err := json.Unmarshal(resp.Body, &record); err != nil {
		return nil, fmt.Errorf("parsing record response: %w", err)
	}

	return &record, nil
}

// CreateBatch implements airtable.RecordsClient.CreateBatch. The batch
// limit is enforced here, before any request is made: an over-limit
// input never reaches the network.
func (c *RecordsClient) CreateBatch(ctx context.Context, baseID, table string, records []map[string]any, typecast bool) ([]airtable.Record, error) {
	if err := validateRef(baseID, table); err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, airtable.ErrNoRecords
	}

	if len(records) > airtable.MaxRecordsPerBatch {
		return nil, airtable.ErrTooManyRecords
	}

	request := &createBatchRequest{
		Records:  make([]recordFields, 0, len(records)),
		Typecast: typecast,
	}
	for _, fields := range records {
		request.Records = append(request.Records, recordFields{Fields: fields})
	}

	resp, err := c.httpClient.Post(ctx, tablePath(baseID, table), request)
	if err != nil {
		return nil, fmt.Errorf("creating records: %w", err)
	}

	// The batch response reuses the list envelope, minus the cursor.
	var result airtable.ListResponse
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing record list response: %w", err)
	}

	return result.Records, nil
}

// Update implements airtable.RecordsClient.Update. The update is
// partial: fields absent from the map keep their current value.
func (c *RecordsClient) Update(ctx context.Context, baseID, table, recordID string, fields map[string]any, typecast bool) (*airtable.Record, error) {
	if err := validateRef(baseID, table); err != nil {
		return nil, err
	}

	if recordID == "" {
		return nil, airtable.ErrRecordIDRequired
	}

	request := &createRecordRequest{Fields: fields, Typecast: typecast}

	resp, err := c.httpClient.Patch(ctx, recordPath(baseID, table, recordID), request)
	if err != nil {
		return nil, fmt.Errorf("updating record: %w", err)
	}

	var record airtable.Record
	if err := json.Unmarshal(resp.Body, &record); err != nil {
		return nil, fmt.Errorf("parsing record response: %w", err)
	}

	return &record, nil
}

// Delete implements airtable.RecordsClient.Delete. The service answers
// with a deletion acknowledgment that carries only the record ID, so
// the returned record reports Deleted() as true.
func (c *RecordsClient) Delete(ctx context.Context, baseID, table, recordID string) (*airtable.Record, error) {
	if err := validateRef(baseID, table); err != nil {
		return nil, err
	}

	if recordID == "" {
		return nil, airtable.ErrRecordIDRequired
	}

	resp, err := c.httpClient.Delete(ctx, recordPath(baseID, table, recordID))
	if err != nil {
		return nil, fmt.Errorf("deleting record: %w", err)
	}

	var record airtable.Record
	if err := json.Unmarshal(resp.Body, &record); err != nil {
		return nil, fmt.Errorf("parsing record response: %w", err)
	}

	return &record, nil
}

package airtable

import (
	"context"
	"net/http"
	"time"
)

// DefaultEndpoint is the base URL of the Airtable REST API.
const DefaultEndpoint = "https://api.airtable.com/v0"

// RecordsClient exposes the record operations of one Airtable API
// connection. Implementations are safe for concurrent use: no per-call
// state is retained.
type RecordsClient interface {
	// List fetches one page of records. Pagination across pages is the
	// caller's concern; see FetchAllRecords and PageIterator.
	List(ctx context.Context, baseID, table string, opts *ListOptions) (*ListResponse, error)

	// Get fetches a single record by ID, optionally restricted to the
	// given fields.
	Get(ctx context.Context, baseID, table, recordID string, fields []string) (*Record, error)

	// Create creates a single record from a field map. When typecast is
	// true the remote service coerces submitted values best-effort.
	Create(ctx context.Context, baseID, table string, fields map[string]any, typecast bool) (*Record, error)

	// CreateBatch creates up to MaxRecordsPerBatch records in one
	// request. Larger inputs fail with ErrTooManyRecords before any
	// network call.
	CreateBatch(ctx context.Context, baseID, table string, records []map[string]any, typecast bool) ([]Record, error)

	// Update applies a partial update: only the given fields change,
	// all others keep their prior value.
	Update(ctx context.Context, baseID, table, recordID string, fields map[string]any, typecast bool) (*Record, error)

	// Delete removes a record. The returned record is a deletion
	// acknowledgment carrying only the ID.
	Delete(ctx context.Context, baseID, table, recordID string) (*Record, error)
}

// BasesClient exposes the base metadata operations.
type BasesClient interface {
	// List fetches one page of the bases the token can access.
	List(ctx context.Context, offset string) (*BaseList, error)

	// GetSchema fetches the table schemas of a base.
	GetSchema(ctx context.Context, baseID string) (*BaseSchema, error)
}

// Client is the top-level Airtable API client.
type Client interface {
	Records() RecordsClient
	Bases() BasesClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a Client.
//
// The API token is the only required field; it is sent as a Bearer
// credential on every request and is immutable after construction.
// Retries are disabled unless RetryMax is set: the client performs no
// recovery of its own, every failure is surfaced to the caller.
type Config struct {
	// APIToken: personal access token or legacy API key.
	APIToken string

	// Endpoint: base URL for the Airtable API. Defaults to
	// DefaultEndpoint; atclient.New normalizes a trailing slash.
	Endpoint string

	// HTTPClient: optional outbound transport. Defaults to a client
	// with a conservative timeout.
	HTTPClient *http.Client

	// RetryMax: maximum number of retries for transient failures
	// (>=500, 429, connection errors). Zero disables retries.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration

	// Debug: enables verbose HTTP request/response logging when a
	// Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent: overrides the default User-Agent header.
	UserAgent string
}

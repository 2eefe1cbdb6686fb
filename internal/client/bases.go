package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/airtable/internal/http"
	"github.com/fivetwenty-io/airtable/pkg/airtable"
)

// BasesClient implements airtable.BasesClient against the metadata API.
type BasesClient struct {
	httpClient *http.Client
}

// NewBasesClient creates a new bases client.
func NewBasesClient(httpClient *http.Client) *BasesClient {
	return &BasesClient{
		httpClient: httpClient,
	}
}

// List implements airtable.BasesClient.List.
func (c *BasesClient) List(ctx context.Context, offset string) (*airtable.BaseList, error) {
	var query url.Values
	if offset != "" {
		query = url.Values{"offset": []string{offset}}
	}

	resp, err := c.httpClient.Get(ctx, "/meta/bases", query)
	if err != nil {
		return nil, fmt.Errorf("listing bases: %w", err)
	}

	var result airtable.BaseList
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing base list response: %w", err)
	}

	return &result, nil
}

// GetSchema implements airtable.BasesClient.GetSchema.
func (c *BasesClient) GetSchema(ctx context.Context, baseID string) (*airtable.BaseSchema, error) {
	if baseID == "" {
		return nil, airtable.ErrBaseIDRequired
	}

	path := "/meta/bases/" + url.PathEscape(baseID) + "/tables"

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting base schema: %w", err)
	}

	var schema airtable.BaseSchema
	if err := json.Unmarshal(resp.Body, &schema); err != nil {
		return nil, fmt.Errorf("parsing base schema response: %w", err)
	}

	return &schema, nil
}

// Package client implements the airtable.Client interface on top of the
// internal HTTP transport.
package client

import (
	"strings"

	"github.com/fivetwenty-io/airtable/internal/constants"
	"github.com/fivetwenty-io/airtable/internal/http"
	"github.com/fivetwenty-io/airtable/pkg/airtable"
)

// Client implements the airtable.Client interface.
type Client struct {
	httpClient *http.Client
	endpoint   string
	logger     airtable.Logger

	// Resource clients
	records airtable.RecordsClient
	bases   airtable.BasesClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *airtable.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPClient != nil {
		httpOpts = append(httpOpts, http.WithHTTPClient(config.HTTPClient))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// New creates a new Airtable API client.
func New(config *airtable.Config) (*Client, error) {
	if config == nil {
		return nil, airtable.ErrConfigRequired
	}

	if config.APIToken == "" {
		return nil, airtable.ErrAPITokenRequired
	}

	endpoint := config.Endpoint
	if endpoint == "" {
		endpoint = airtable.DefaultEndpoint
	}

	endpoint = strings.TrimSuffix(endpoint, "/")

	httpOpts := createHTTPClientOptions(config)
	httpClient := http.NewClient(endpoint, config.APIToken, httpOpts...)

	client := &Client{
		httpClient: httpClient,
		endpoint:   endpoint,
		logger:     config.Logger,
	}

	client.records = NewRecordsClient(httpClient)
	client.bases = NewBasesClient(httpClient)

	return client, nil
}

// Records returns the records resource client.
func (c *Client) Records() airtable.RecordsClient {
	return c.records
}

// Bases returns the bases resource client.
func (c *Client) Bases() airtable.BasesClient {
	return c.bases
}

// loggerAdapter adapts airtable.Logger to the transport's logger.
type loggerAdapter struct {
	logger airtable.Logger
}

func (a *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	a.logger.Debug(msg, fields)
}

func (a *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	a.logger.Info(msg, fields)
}

func (a *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	a.logger.Warn(msg, fields)
}

func (a *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	a.logger.Error(msg, fields)
}

// Package atclient provides the main entry point for creating Airtable
// API clients.
package atclient

import (
	"fmt"
	"strings"

	"github.com/fivetwenty-io/airtable/internal/client"
	"github.com/fivetwenty-io/airtable/pkg/airtable"
)

// New creates a new Airtable API client from a config. The API token is
// required; everything else falls back to defaults.
func New(config *airtable.Config) (airtable.Client, error) {
	if config == nil {
		return nil, airtable.ErrConfigRequired
	}

	if config.APIToken == "" {
		return nil, airtable.ErrAPITokenRequired
	}

	if config.Endpoint != "" {
		endpoint := strings.TrimSuffix(config.Endpoint, "/")
		if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
			endpoint = "https://" + endpoint
		}

		config.Endpoint = endpoint
	}

	apiClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// NewWithToken creates a client for the public API with just a token.
func NewWithToken(token string) (airtable.Client, error) {
	return New(&airtable.Config{APIToken: token})
}

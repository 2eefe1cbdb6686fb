package client_test

import (
	"testing"

	"github.com/fivetwenty-io/airtable/internal/client"
	"github.com/fivetwenty-io/airtable/pkg/airtable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	c, err := client.New(&airtable.Config{APIToken: "test-token"})
	require.NoError(t, err)
	assert.NotNil(t, c.Records())
	assert.NotNil(t, c.Bases())
}

func TestNewValidation(t *testing.T) {
	t.Parallel()

	_, err := client.New(nil)
	require.ErrorIs(t, err, airtable.ErrConfigRequired)

	_, err = client.New(&airtable.Config{})
	require.ErrorIs(t, err, airtable.ErrAPITokenRequired)
}

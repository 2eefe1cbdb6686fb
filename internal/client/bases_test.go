package client_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/fivetwenty-io/airtable/pkg/airtable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasesClient_List(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/meta/bases", r.URL.Path)
		assert.Equal(t, "GET", r.Method)
		assert.Empty(t, r.URL.RawQuery)

		fmt.Fprint(w, `{"bases":[
			{"id":"app1","name":"Inventory","permissionLevel":"create"},
			{"id":"app2","name":"CRM","permissionLevel":"read"}]}`)
	})

	bases, err := c.Bases().List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, bases.Bases, 2)
	assert.Equal(t, "Inventory", bases.Bases[0].Name)
	assert.Equal(t, "read", bases.Bases[1].PermissionLevel)
	assert.Empty(t, bases.Offset)
}

func TestBasesClient_ListWithOffset(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "cursor1", r.URL.Query().Get("offset"))
		fmt.Fprint(w, `{"bases":[{"id":"app3","name":"Ops","permissionLevel":"read"}],"offset":"cursor2"}`)
	})

	bases, err := c.Bases().List(context.Background(), "cursor1")
	require.NoError(t, err)
	assert.Equal(t, "cursor2", bases.Offset)
}

func TestBasesClient_GetSchema(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/meta/bases/app1/tables", r.URL.Path)

		fmt.Fprint(w, `{"tables":[{
			"id":"tbl1","name":"Tasks","primaryFieldId":"fld1",
			"fields":[{"id":"fld1","name":"Name","type":"singleLineText"}]}]}`)
	})

	schema, err := c.Bases().GetSchema(context.Background(), "app1")
	require.NoError(t, err)
	require.Len(t, schema.Tables, 1)
	assert.Equal(t, "Tasks", schema.Tables[0].Name)
	require.Len(t, schema.Tables[0].Fields, 1)
	assert.Equal(t, "singleLineText", schema.Tables[0].Fields[0].Type)
}

func TestBasesClient_GetSchemaValidation(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	_, err := c.Bases().GetSchema(context.Background(), "")
	require.ErrorIs(t, err, airtable.ErrBaseIDRequired)
}

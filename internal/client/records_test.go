package client_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/fivetwenty-io/airtable/internal/client"
	"github.com/fivetwenty-io/airtable/pkg/airtable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) airtable.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c, err := client.New(&airtable.Config{
		APIToken: "test-token",
		Endpoint: server.URL,
	})
	require.NoError(t, err)

	return c
}

func TestRecordsClient_List(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/app1/Tasks", r.URL.Path)
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "AND({Status}!='Done',{Priority}='High')", r.URL.Query().Get("filterByFormula"))
		assert.Equal(t, "50", r.URL.Query().Get("maxRecords"))

		fmt.Fprint(w, `{"records":[{"id":"rec1","fields":{"Status":"High"}}],"offset":null}`)
	})

	opts := airtable.NewListOptions().
		WithFilterByFormula("AND({Status}!='Done',{Priority}='High')").
		WithMaxRecords(50)

	page, err := c.Records().List(context.Background(), "app1", "Tasks", opts)
	require.NoError(t, err)
	require.Len(t, page.Records, 1)
	assert.Equal(t, "rec1", page.Records[0].ID)
	assert.False(t, page.HasMore())
}

func TestRecordsClient_ListFieldsOrdered(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, []string{"Name", "Status"}, r.URL.Query()["fields[]"])
		fmt.Fprint(w, `{"records":[]}`)
	})

	_, err := c.Records().List(context.Background(), "app1", "Tasks",
		airtable.NewListOptions().WithFields("Name", "Status"))
	require.NoError(t, err)
}

func TestRecordsClient_ListOmitsEmptyParams(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		fmt.Fprint(w, `{"records":[]}`)
	})

	_, err := c.Records().List(context.Background(), "app1", "Tasks", airtable.NewListOptions())
	require.NoError(t, err)
}

func TestRecordsClient_ListTableNameEscaped(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/app1/My%20Tasks", r.URL.EscapedPath())
		fmt.Fprint(w, `{"records":[]}`)
	})

	_, err := c.Records().List(context.Background(), "app1", "My Tasks", nil)
	require.NoError(t, err)
}

func TestRecordsClient_ListValidation(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	_, err := c.Records().List(context.Background(), "", "Tasks", nil)
	require.ErrorIs(t, err, airtable.ErrBaseIDRequired)

	_, err = c.Records().List(context.Background(), "app1", "", nil)
	require.ErrorIs(t, err, airtable.ErrTableRequired)

	_, err = c.Records().List(context.Background(), "app1", "Tasks",
		airtable.NewListOptions().WithMaxRecords(-1))
	require.ErrorIs(t, err, airtable.ErrNegativeMaxRecords)
}

func TestRecordsClient_Get(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/app1/Tasks/rec1", r.URL.Path)
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, []string{"Name"}, r.URL.Query()["fields[]"])

		fmt.Fprint(w, `{"id":"rec1","createdTime":"2024-03-01T12:30:00.000Z","fields":{"Name":"Widget"}}`)
	})

	record, err := c.Records().Get(context.Background(), "app1", "Tasks", "rec1", []string{"Name"})
	require.NoError(t, err)
	assert.Equal(t, "rec1", record.ID)
	assert.False(t, record.Deleted())
	assert.Equal(t, "Widget", record.Fields["Name"])
}

func TestRecordsClient_GetNotFound(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"error":{"type":"NOT_FOUND","message":"Record not found"}}`)
	})

	_, err := c.Records().Get(context.Background(), "app1", "Tasks", "rec404", nil)
	require.Error(t, err)
	assert.True(t, airtable.IsNotFound(err))
}

func TestRecordsClient_Create(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/app1/Tasks", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		// typecast false never appears in the request body
		assert.NotContains(t, string(body), "typecast")

		var req map[string]any
		require.NoError(t, json.Unmarshal(body, &req))
		assert.Equal(t, map[string]any{"Name": "Widget"}, req["fields"])

		fmt.Fprint(w, `{"id":"rec1","createdTime":"2024-03-01T12:30:00.000Z","fields":{"Name":"Widget"}}`)
	})

	record, err := c.Records().Create(context.Background(), "app1", "Tasks",
		map[string]any{"Name": "Widget"}, false)
	require.NoError(t, err)
	assert.Equal(t, "rec1", record.ID)
}

func TestRecordsClient_CreateTypecast(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, true, req["typecast"])

		fmt.Fprint(w, `{"id":"rec1","createdTime":"2024-03-01T12:30:00.000Z","fields":{}}`)
	})

	_, err := c.Records().Create(context.Background(), "app1", "Tasks",
		map[string]any{"Count": "12"}, true)
	require.NoError(t, err)
}

func TestRecordsClient_CreateBatch(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/app1/Tasks", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		var req struct {
			Records []struct {
				Fields map[string]any `json:"fields"`
			} `json:"records"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Records, 3)
		assert.Equal(t, "a", req.Records[0].Fields["Name"])
		assert.Equal(t, "b", req.Records[1].Fields["Name"])
		assert.Equal(t, "c", req.Records[2].Fields["Name"])

		fmt.Fprint(w, `{"records":[
			{"id":"rec1","createdTime":"2024-03-01T12:30:00.000Z","fields":{"Name":"a"}},
			{"id":"rec2","createdTime":"2024-03-01T12:30:00.000Z","fields":{"Name":"b"}},
			{"id":"rec3","createdTime":"2024-03-01T12:30:00.000Z","fields":{"Name":"c"}}]}`)
	})

	batch := []map[string]any{{"Name": "a"}, {"Name": "b"}, {"Name": "c"}}

	created, err := c.Records().CreateBatch(context.Background(), "app1", "Tasks", batch, false)
	require.NoError(t, err)
	require.Len(t, created, 3)
	assert.Equal(t, "rec1", created[0].ID)
	assert.Equal(t, "rec2", created[1].ID)
	assert.Equal(t, "rec3", created[2].ID)
}

func TestRecordsClient_CreateBatchTooLarge(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	})

	batch := make([]map[string]any, airtable.MaxRecordsPerBatch+1)
	for i := range batch {
		batch[i] = map[string]any{"Name": strings.Repeat("x", i+1)}
	}

	_, err := c.Records().CreateBatch(context.Background(), "app1", "Tasks", batch, false)
	require.ErrorIs(t, err, airtable.ErrTooManyRecords)

	// The over-limit batch never reached the network
	assert.Equal(t, int32(0), calls.Load())
}

func TestRecordsClient_CreateBatchEmpty(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	_, err := c.Records().CreateBatch(context.Background(), "app1", "Tasks", nil, false)
	require.ErrorIs(t, err, airtable.ErrNoRecords)
}

func TestRecordsClient_CreateBatchAtLimit(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)

		var req struct {
			Records []json.RawMessage `json:"records"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Len(t, req.Records, airtable.MaxRecordsPerBatch)

		fmt.Fprint(w, `{"records":[]}`)
	})

	batch := make([]map[string]any, airtable.MaxRecordsPerBatch)
	for i := range batch {
		batch[i] = map[string]any{"N": i}
	}

	_, err := c.Records().CreateBatch(context.Background(), "app1", "Tasks", batch, false)
	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestRecordsClient_Update(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/app1/Tasks/rec1", r.URL.Path)
		assert.Equal(t, "PATCH", r.Method)

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, map[string]any{"Status": "Done"}, req["fields"])
		assert.NotContains(t, req, "typecast")

		fmt.Fprint(w, `{"id":"rec1","createdTime":"2024-03-01T12:30:00.000Z","fields":{"Name":"Widget","Status":"Done"}}`)
	})

	record, err := c.Records().Update(context.Background(), "app1", "Tasks", "rec1",
		map[string]any{"Status": "Done"}, false)
	require.NoError(t, err)
	assert.Equal(t, "Done", record.Fields["Status"])
	assert.Equal(t, "Widget", record.Fields["Name"])
}

func TestRecordsClient_Delete(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/app1/Tasks/rec1", r.URL.Path)
		assert.Equal(t, "DELETE", r.Method)

		fmt.Fprint(w, `{"id":"rec1","deleted":true}`)
	})

	record, err := c.Records().Delete(context.Background(), "app1", "Tasks", "rec1")
	require.NoError(t, err)
	assert.Equal(t, "rec1", record.ID)
	assert.True(t, record.Deleted())
}

func TestRecordsClient_RecordIDValidation(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	ctx := context.Background()

	_, err := c.Records().Get(ctx, "app1", "Tasks", "", nil)
	require.ErrorIs(t, err, airtable.ErrRecordIDRequired)

	_, err = c.Records().Update(ctx, "app1", "Tasks", "", nil, false)
	require.ErrorIs(t, err, airtable.ErrRecordIDRequired)

	_, err = c.Records().Delete(ctx, "app1", "Tasks", "")
	require.ErrorIs(t, err, airtable.ErrRecordIDRequired)
}

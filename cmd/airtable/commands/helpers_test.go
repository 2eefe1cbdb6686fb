package commands

import (
	"testing"

	"github.com/fivetwenty-io/airtable/pkg/airtable"
	"github.com/stretchr/testify/assert"
)

func TestFormatFieldValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{"nil", nil, ""},
		{"string", "hello", "hello"},
		{"number", 42.0, "42"},
		{"bool", true, "true"},
		{"array", []any{"a", "b"}, `["a","b"]`},
		{"newlines flattened", "line1\nline2", "line1 line2"},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, testCase.expected, formatFieldValue(testCase.value))
		})
	}
}

func TestFormatFieldValueTruncates(t *testing.T) {
	t.Parallel()

	long := make([]byte, 200)
	for i := range long {
		long[i] = 'x'
	}

	out := formatFieldValue(string(long))
	assert.LessOrEqual(t, len(out), 50)
	assert.Contains(t, out, "...")
}

func TestFieldColumns(t *testing.T) {
	t.Parallel()

	records := []airtable.Record{
		{ID: "rec1", Fields: map[string]any{"Name": "a", "Status": "x"}},
		{ID: "rec2", Fields: map[string]any{"Priority": "high"}},
		{ID: "rec3"},
	}

	assert.Equal(t, []string{"Name", "Priority", "Status"}, fieldColumns(records))
}

func TestMaskToken(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "***", maskToken("short"))
	assert.Equal(t, "patABC***", maskToken("patABCDEFGH"))
}

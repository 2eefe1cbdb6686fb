package airtable

import (
	"strings"
	"time"
)

// MaxRecordsPerBatch is the maximum number of records the Airtable API
// accepts in a single create request.
const MaxRecordsPerBatch = 10

// Record represents a single Airtable record. Records are assigned their
// ID by the remote service and are only ever constructed by parsing an
// API response.
type Record struct {
	ID          string         `json:"id"                    yaml:"id"`
	CreatedTime *time.Time     `json:"createdTime,omitempty" yaml:"createdTime,omitempty"`
	Fields      map[string]any `json:"fields,omitempty"      yaml:"fields,omitempty"`
}

// Deleted reports whether this record is a deletion acknowledgment.
// Deleted records carry only their ID.
func (r *Record) Deleted() bool {
	return r.CreatedTime == nil && r.Fields == nil
}

// ToMap converts the record into a plain map, omitting absent parts.
// Workflow and CLI callers use this as the canonical output shape.
func (r *Record) ToMap() map[string]any {
	m := map[string]any{"id": r.ID}
	if r.CreatedTime != nil {
		m["createdTime"] = r.CreatedTime.UTC().Format(time.RFC3339)
	}

	if r.Fields != nil {
		m["fields"] = r.Fields
	}

	return m
}

// ListResponse represents one page of a record listing. The batch-create
// response shares this shape (a "records" array, no offset).
type ListResponse struct {
	Records []Record `json:"records"          yaml:"records"`
	Offset  string   `json:"offset,omitempty" yaml:"offset,omitempty"`
}

// HasMore reports whether the remote service indicated further pages.
// A null or blank offset means the listing is complete.
func (l *ListResponse) HasMore() bool {
	return strings.TrimSpace(l.Offset) != ""
}

// Base represents an Airtable base from the metadata API.
type Base struct {
	ID              string `json:"id"              yaml:"id"`
	Name            string `json:"name"            yaml:"name"`
	PermissionLevel string `json:"permissionLevel" yaml:"permissionLevel"`
}

// BaseList represents one page of the bases listing.
type BaseList struct {
	Bases  []Base `json:"bases"            yaml:"bases"`
	Offset string `json:"offset,omitempty" yaml:"offset,omitempty"`
}

// TableSchema describes one table of a base, as reported by the
// metadata API.
type TableSchema struct {
	ID             string        `json:"id"                    yaml:"id"`
	Name           string        `json:"name"                  yaml:"name"`
	PrimaryFieldID string        `json:"primaryFieldId"        yaml:"primaryFieldId"`
	Description    string        `json:"description,omitempty" yaml:"description,omitempty"`
	Fields         []FieldSchema `json:"fields"                yaml:"fields"`
}

// FieldSchema describes one field of a table schema. Field options are
// an open map; their shape depends on the field type.
type FieldSchema struct {
	ID          string         `json:"id"                    yaml:"id"`
	Name        string         `json:"name"                  yaml:"name"`
	Type        string         `json:"type"                  yaml:"type"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Options     map[string]any `json:"options,omitempty"     yaml:"options,omitempty"`
}

// BaseSchema is the response of the table-schema endpoint.
type BaseSchema struct {
	Tables []TableSchema `json:"tables" yaml:"tables"`
}

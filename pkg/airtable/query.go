package airtable

import (
	"net/url"
	"strconv"
	"strings"
)

// ListOptions expresses the optional query parameters of the record
// listing endpoint. Zero values are never emitted as empty-valued
// parameters.
type ListOptions struct {
	// FilterByFormula is an Airtable formula restricting the result set,
	// e.g. `AND({Status} != 'Done', {Priority} = 'High')`.
	FilterByFormula string

	// Fields restricts the returned field set. One `fields[]` query
	// parameter is emitted per entry, in the given order.
	Fields []string

	// MaxRecords caps the number of records returned per page (the
	// remote service itself caps pages at 100).
	MaxRecords int

	// View names a view; records are returned in the view's order.
	View string

	// Offset is the opaque pagination cursor from a previous page.
	Offset string
}

// NewListOptions creates an empty ListOptions.
func NewListOptions() *ListOptions {
	return &ListOptions{}
}

// WithFilterByFormula sets the filter formula.
func (o *ListOptions) WithFilterByFormula(formula string) *ListOptions {
	o.FilterByFormula = formula

	return o
}

// WithFields appends to the requested field set.
func (o *ListOptions) WithFields(fields ...string) *ListOptions {
	o.Fields = append(o.Fields, fields...)

	return o
}

// WithMaxRecords sets the per-page record cap.
func (o *ListOptions) WithMaxRecords(max int) *ListOptions {
	o.MaxRecords = max

	return o
}

// WithView sets the view name or ID.
func (o *ListOptions) WithView(view string) *ListOptions {
	o.View = view

	return o
}

// WithOffset sets the pagination cursor.
func (o *ListOptions) WithOffset(offset string) *ListOptions {
	o.Offset = offset

	return o
}

// Validate checks the options for values the remote service would
// reject, so bad input fails before a request is made.
func (o *ListOptions) Validate() error {
	if o != nil && o.MaxRecords < 0 {
		return ErrNegativeMaxRecords
	}

	return nil
}

// ToValues converts the options to URL query values. Blank or zero
// inputs never appear in the result.
func (o *ListOptions) ToValues() url.Values {
	values := url.Values{}

	if o == nil {
		return values
	}

	if strings.TrimSpace(o.FilterByFormula) != "" {
		values.Set("filterByFormula", o.FilterByFormula)
	}

	for _, field := range o.Fields {
		values.Add("fields[]", field)
	}

	if o.MaxRecords > 0 {
		values.Set("maxRecords", strconv.Itoa(o.MaxRecords))
	}

	if strings.TrimSpace(o.View) != "" {
		values.Set("view", o.View)
	}

	if strings.TrimSpace(o.Offset) != "" {
		values.Set("offset", o.Offset)
	}

	return values
}

// FieldValues builds the query values for a bare field selection, as
// used by the get-record endpoint.
func FieldValues(fields []string) url.Values {
	if len(fields) == 0 {
		return nil
	}

	values := url.Values{}
	for _, field := range fields {
		values.Add("fields[]", field)
	}

	return values
}

package airtable

import (
	"context"
	"errors"
	"fmt"
)

// RecordLister is the subset of RecordsClient needed by the pagination
// helpers.
type RecordLister interface {
	List(ctx context.Context, baseID, table string, opts *ListOptions) (*ListResponse, error)
}

// PaginationOptions controls the auto-pagination loop.
type PaginationOptions struct {
	// MaxPages caps the number of pages fetched. Zero means no cap,
	// matching the remote service's contract that a missing offset is
	// the only terminator. A cap guards against an endpoint that never
	// stops returning cursors.
	MaxPages int
}

// DefaultPaginationOptions returns the default pagination behavior:
// follow cursors until the service stops returning them.
func DefaultPaginationOptions() *PaginationOptions {
	return &PaginationOptions{MaxPages: 0}
}

// PageIterator walks the cursor chain of a record listing one page at a
// time. Each Next call issues exactly one request; the iterator is done
// once a page comes back without an offset.
type PageIterator struct {
	client RecordLister
	baseID string
	table  string
	opts   *ListOptions
	ctx    context.Context
	offset string
	done   bool
}

// NewPageIterator creates an iterator over the pages of a listing. The
// Offset of opts seeds the first request; subsequent requests use the
// cursor returned by the service.
func NewPageIterator(ctx context.Context, client RecordLister, baseID, table string, opts *ListOptions) *PageIterator {
	var seed string
	if opts != nil {
		seed = opts.Offset
	}

	return &PageIterator{
		client: client,
		baseID: baseID,
		table:  table,
		opts:   opts,
		ctx:    ctx,
		offset: seed,
	}
}

// HasNext reports whether another page can be fetched.
func (it *PageIterator) HasNext() bool {
	return !it.done
}

// Next fetches the next page.
func (it *PageIterator) Next() (*ListResponse, error) {
	if it.done {
		return nil, ErrNoMorePages
	}

	opts := it.pageOptions()

	page, err := it.client.List(it.ctx, it.baseID, it.table, opts)
	if err != nil {
		return nil, err
	}

	it.offset = page.Offset
	it.done = !page.HasMore()

	return page, nil
}

func (it *PageIterator) pageOptions() *ListOptions {
	var opts ListOptions
	if it.opts != nil {
		opts = *it.opts
	}

	opts.Offset = it.offset

	return &opts
}

// ErrNoMorePages is returned by PageIterator.Next after the last page.
var ErrNoMorePages = errors.New("no more pages")

// FetchAllRecords drives the auto-pagination loop: it repeatedly lists
// pages, threading the returned cursor, until the service reports no
// further pages or the MaxPages cap is reached. Records are aggregated
// in page order, preserving within-page order.
func FetchAllRecords(ctx context.Context, client RecordLister, baseID, table string, opts *ListOptions, popts *PaginationOptions) ([]Record, error) {
	if popts == nil {
		popts = DefaultPaginationOptions()
	}

	var all []Record

	iterator := NewPageIterator(ctx, client, baseID, table, opts)
	pages := 0

	for iterator.HasNext() {
		if popts.MaxPages > 0 && pages >= popts.MaxPages {
			break
		}

		page, err := iterator.Next()
		if err != nil {
			return nil, fmt.Errorf("fetching page %d: %w", pages+1, err)
		}

		all = append(all, page.Records...)
		pages++
	}

	return all, nil
}

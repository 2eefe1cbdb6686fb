// Package airtable provides types, interfaces, and helpers for working
// with the Airtable REST API.
//
// # Overview
//
// The airtable package defines the domain types (Record, ListResponse,
// Base, TableSchema) and the interfaces for resource-oriented clients
// (RecordsClient, BasesClient). A concrete implementation is provided
// by the atclient package, which wires configuration, transport, and
// authentication. Most consumers should import atclient to construct a
// client and then interact with the interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/airtable/pkg/airtable"
//	  "github.com/fivetwenty-io/airtable/pkg/atclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := atclient.New(&airtable.Config{APIToken: "pat..."})
//	  if err != nil { log.Fatal(err) }
//
//	  // List the first page of records
//	  page, err := cli.Records().List(ctx, "appXXXX", "Tasks",
//	    airtable.NewListOptions().WithMaxRecords(50))
//	  if err != nil { log.Fatal(err) }
//	  _ = page
//	}
//
// # Queries and pagination
//
// Use ListOptions to express the listing query (filterByFormula,
// fields[], maxRecords, view). The record listing paginates with an
// opaque cursor; helpers collect or iterate pages:
//
//	all, err := airtable.FetchAllRecords(ctx, cli.Records(), "appXXXX", "Tasks", nil, nil)
//	if err != nil { /* handle error */ }
//	_ = all
//
// or page by page:
//
//	it := airtable.NewPageIterator(ctx, cli.Records(), "appXXXX", "Tasks", nil)
//	for it.HasNext() {
//	  page, err := it.Next()
//	  if err != nil { break }
//	  _ = page
//	}
//
// # Errors
//
// Non-2xx responses are represented by APIError, which preserves the
// HTTP status and raw body. Helpers such as IsNotFound, IsUnauthorized,
// and IsRateLimited make it easy to branch on common cases. Local
// precondition failures (an over-limit batch, missing inputs) are
// static sentinel errors and never reach the network.
package airtable

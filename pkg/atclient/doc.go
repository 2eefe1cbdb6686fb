// Package atclient provides the primary entry point for constructing an
// Airtable REST API client that implements the airtable.Client interface.
//
// It layers configuration and HTTP transport on top of the resource
// interfaces and types defined in the airtable package. Most applications
// should import atclient to build a client, then use the returned
// airtable.Client to access resource-specific clients via Records() and
// Bases().
//
// Quick start
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
//
//	  // Minimal: just a personal access token.
//	  cli, err := atclient.NewWithToken("patXXXX")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with explicit configuration:
//	  cli, err = atclient.New(&airtable.Config{
//	    APIToken: "patXXXX",
//	    RetryMax: 3, // opt in to retries for 429 and 5xx
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Use resource clients via the airtable.Client interface
//	  page, err := cli.Records().List(ctx, "appXXXX", "Tasks",
//	    airtable.NewListOptions().WithView("Grid view"))
//	  if err != nil { log.Fatal(err) }
//	  _ = page
//	}
//
// # Helpers
//
// The package also provides the convenience constructor NewWithToken,
// which wraps New with a token-only configuration.
package atclient

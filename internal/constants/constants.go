package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600

	// OutputFilePerm is the permission for files written by fetch actions.
	OutputFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// Retry defaults. Retries are off unless a caller opts in; these are the
// backoff bounds used when it does.
const (
	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// DefaultUserAgent identifies this client to the Airtable API.
const DefaultUserAgent = "airtable-go/1.0"

// Display limits.
const (
	// FieldTruncationLimit caps cell width in table output.
	FieldTruncationLimit = 50
)

package constants

import "errors"

// Configuration errors.
var (
	ErrNoAPIToken = errors.New("no API token configured, use 'airtable auth' or set AIRTABLE_API_TOKEN")
	ErrEmptyToken = errors.New("token must not be empty")
)

// Flag validation errors.
var (
	ErrBaseFlagRequired   = errors.New("--base flag is required")
	ErrTableFlagRequired  = errors.New("--table flag is required")
	ErrFieldsFlagRequired = errors.New("--fields flag is required")
	ErrInvalidFieldsJSON  = errors.New("--fields must be a JSON object of field name to value")
	ErrInvalidRecordsJSON = errors.New("--records must be a JSON array of field objects")
)

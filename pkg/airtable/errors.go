package airtable

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError represents a non-2xx response from the Airtable API. The raw
// body is preserved so callers can distinguish auth failures, not-found,
// and rate limiting even when the body is not the documented error
// envelope.
type APIError struct {
	StatusCode int    `json:"statusCode" yaml:"statusCode"`
	ErrorType  string `json:"type"       yaml:"type"`
	Message    string `json:"message"    yaml:"message"`
	Body       string `json:"body"       yaml:"body"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.ErrorType != "" || e.Message != "" {
		return fmt.Sprintf("airtable: %s: %s (status: %d)", e.ErrorType, e.Message, e.StatusCode)
	}

	return fmt.Sprintf("airtable: request failed with status %d: %s", e.StatusCode, e.Body)
}

// errorEnvelope is the documented error body shape. The "error" member
// is a string for some endpoints and an object for others.
type errorEnvelope struct {
	Error json.RawMessage `json:"error"`
}

type errorDetail struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// NewAPIError builds an APIError from a response status and raw body,
// extracting type and message when the body is the documented envelope.
func NewAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: statusCode,
		Body:       string(body),
	}

	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Error == nil {
		return apiErr
	}

	var detail errorDetail
	if err := json.Unmarshal(envelope.Error, &detail); err == nil {
		apiErr.ErrorType = detail.Type
		apiErr.Message = detail.Message

		return apiErr
	}

	var message string
	if err := json.Unmarshal(envelope.Error, &message); err == nil {
		apiErr.Message = message
	}

	return apiErr
}

// IsNotFound checks if the error is a not-found error.
func IsNotFound(err error) bool {
	apiErr := &APIError{}

	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsUnauthorized checks if the error is an authentication error.
func IsUnauthorized(err error) bool {
	apiErr := &APIError{}

	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// IsForbidden checks if the error is an authorization error.
func IsForbidden(err error) bool {
	apiErr := &APIError{}

	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusForbidden
}

// IsRateLimited checks if the error is a rate-limit rejection.
func IsRateLimited(err error) bool {
	apiErr := &APIError{}

	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusTooManyRequests
}

// Static validation errors. These are surfaced before any network call
// is made.
var (
	ErrAPITokenRequired   = errors.New("API token is required")
	ErrBaseIDRequired     = errors.New("base ID is required")
	ErrTableRequired      = errors.New("table ID or name is required")
	ErrRecordIDRequired   = errors.New("record ID is required")
	ErrNoRecords          = errors.New("at least one record is required")
	ErrTooManyRecords     = fmt.Errorf("cannot create more than %d records in one request", MaxRecordsPerBatch)
	ErrFieldsAndRecords   = errors.New("cannot specify both 'fields' and 'records'; use one or the other")
	ErrFieldsOrRecords    = errors.New("either 'fields' for a single record or 'records' for multiple records must be provided")
	ErrConfigRequired     = errors.New("config is required")
	ErrNegativeMaxRecords = errors.New("maxRecords cannot be negative")
)

// Package connector exposes the Airtable operations as workflow-engine
// actions: named connectors executing schema-described actions against
// plain input maps.
package connector

import (
	"context"
)

// Connector defines the interface that all workflow connectors must
// implement.
type Connector interface {
	// Name returns the connector identifier (e.g., "airtable").
	Name() string

	// Actions returns available actions with their input/output schemas.
	Actions() []ActionDef

	// Execute runs a specific action with the given input. Inputs arrive
	// fully resolved; no templating or secret expansion happens here.
	Execute(ctx context.Context, action string, input map[string]any) (map[string]any, error)

	// Validate checks if the connector is properly configured.
	Validate() error
}

// ActionDef describes an action a connector supports.
type ActionDef struct {
	Name        string
	Description string
	Input       map[string]FieldDef
	Output      map[string]FieldDef
}

// FieldDef describes a single field in an action schema.
type FieldDef struct {
	Type        string `yaml:"type"        json:"type"`
	Description string `yaml:"description" json:"description"`
	Required    bool   `yaml:"required"    json:"required"`
}

// Result holds the outcome of executing a single connector action.
type Result struct {
	Connector  string         `json:"connector"`
	Action     string         `json:"action"`
	Status     string         `json:"status"`
	Output     map[string]any `json:"output,omitempty"`
	Error      string         `json:"error,omitempty"`
	DurationMs int64          `json:"duration_ms"`
}

// Execution statuses.
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

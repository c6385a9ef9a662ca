package models

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced by the scheduler and config codec. Callers match
// them with errors.Is to choose an HTTP status or exit code.
var (
	// ErrInsufficientRoster means the roster has fewer than two members;
	// assignment is meaningless with one.
	ErrInsufficientRoster = errors.New("at least two team members are required")

	// ErrEmptyCatalog means no shift types are configured for any weekday.
	ErrEmptyCatalog = errors.New("shift configuration defines no shift types")

	// ErrMalformedDocument means the interchange document failed to parse.
	ErrMalformedDocument = errors.New("malformed configuration document")

	// ErrEmptyDocument means the document parsed but carried no recognizable
	// team_members, shift_configuration or constraints fields.
	ErrEmptyDocument = errors.New("no valid configuration data found")
)

// ConfigError reports an invalid configuration value with enough detail for
// the caller to fix the input.
type ConfigError struct {
	Field  string
	Detail string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Detail)
}

// Package plannererror defines the typed errors shared by the planner packages.
package plannererror

import (
	"errors"
	"fmt"
)

// ErrNoProfile is returned when an operation needs a saved study profile and none exists.
var ErrNoProfile = errors.New("no study profile saved")

// InvalidInputError represents user input rejected at the input boundary.
type InvalidInputError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s='%s': %s", e.Field, e.Value, e.Reason)
}

// StoreError represents a failure of a persistence backend.
type StoreError struct {
	Backend string
	Op      string
	Key     string
	Err     error
}

func (e *StoreError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s store: %s failed: %v", e.Backend, e.Op, e.Err)
	}
	return fmt.Sprintf("%s store: %s '%s' failed: %v", e.Backend, e.Op, e.Key, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// ConfigError represents an invalid configuration value.
type ConfigError struct {
	Key    string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration %s: %s", e.Key, e.Reason)
}

// IsInvalidInput reports whether err wraps an InvalidInputError.
func IsInvalidInput(err error) bool {
	var target *InvalidInputError
	return errors.As(err, &target)
}

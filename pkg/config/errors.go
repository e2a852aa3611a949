package config

import (
	"errors"
	"fmt"
)

// Sentinel errors for load and validation failures. Callers branch with
// errors.Is; the wrapping types below carry the file or field context.
var (
	ErrConfigNotFound       = errors.New("configuration file not found")
	ErrInvalidYAML          = errors.New("invalid YAML syntax")
	ErrMissingRequiredField = errors.New("missing required field")
	ErrInvalidValue         = errors.New("invalid field value")
)

// ValidationError ties a validation failure to the memobase.yaml option that
// caused it, so the message names the exact key to fix.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field '%s': %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// NewValidationError wraps err with the offending option name.
func NewValidationError(field string, err error) *ValidationError {
	return &ValidationError{Field: field, Err: err}
}

// LoadError ties a load failure to the file that produced it.
type LoadError struct {
	File string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.File, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// NewLoadError wraps err with the file being loaded.
func NewLoadError(file string, err error) *LoadError {
	return &LoadError{File: file, Err: err}
}

// Package services contains the storage-facing services: profiles, blobs,
// buffer entries, and events. Each service wraps the ent client and maps
// storage failures to the shared error taxonomy.
package services

import (
	"errors"
	"fmt"

	"github.com/AlwaysBluer/lindorm-memobase/ent"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/memerr"
)

// storageErr maps an ent error to the shared taxonomy. Missing rows become
// not-found; everything else is treated as a transient storage failure so
// callers can apply bounded retries.
func storageErr(op string, err error) error {
	if ent.IsNotFound(err) {
		return memerr.E(memerr.ErrNotFound, op, err)
	}
	if ent.IsConstraintError(err) {
		return memerr.E(memerr.ErrInternal, op, err)
	}
	return memerr.E(memerr.ErrServiceUnavailable, op, err)
}

// ValidationError rejects a request argument before it reaches storage.
// Callers test for it with IsValidationError rather than string matching.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// NewValidationError flags the named argument as unusable.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError reports whether err is (or wraps) an argument rejection.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

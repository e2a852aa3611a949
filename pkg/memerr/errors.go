// Package memerr defines the error taxonomy shared by every memory engine
// component. Callers classify failures with errors.Is against the sentinels;
// wrapping preserves both the sentinel and the underlying cause.
package memerr

import (
	"errors"
	"fmt"
)

// Sentinel errors. Each fallible operation wraps exactly one of these.
var (
	// ErrConfig indicates a missing credential, dimension mismatch, or an
	// unknown provider style. Raised at construction or first use; not
	// recoverable in-band.
	ErrConfig = errors.New("configuration error")

	// ErrServiceUnavailable indicates a transient LLM, embedding, or storage
	// failure. The extraction pipeline retries once, the façade twice for
	// idempotent reads, then the error surfaces.
	ErrServiceUnavailable = errors.New("service unavailable")

	// ErrUnprocessable indicates malformed JSON from the LLM after one
	// reformat attempt. Fatal for the current batch only.
	ErrUnprocessable = errors.New("unprocessable response")

	// ErrNotImplemented indicates a refused operation, e.g. vector search
	// with embeddings disabled. Never retried.
	ErrNotImplemented = errors.New("not implemented")

	// ErrNotFound indicates a storage read of a missing row. Profile updates
	// absorb it silently; event lookups return empty lists instead.
	ErrNotFound = errors.New("not found")

	// ErrInternal indicates an invariant violation such as a duplicate
	// (topic, sub_topic) slot or a negative token size.
	ErrInternal = errors.New("internal error")
)

// Error attaches an operation name and a taxonomy sentinel to an underlying
// cause. errors.Is matches both the sentinel and the cause.
type Error struct {
	Op   string // operation that failed, e.g. "search.SearchGists"
	Kind error  // one of the sentinels above
	Err  error  // underlying cause, may be nil
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// E builds a taxonomy error. err may be nil when the sentinel and operation
// carry all the context.
func E(kind error, op string, err error) error {
	return &Error{Op: op, Kind: kind, Err: err}
}

// Ef builds a taxonomy error from a formatted message.
func Ef(kind error, op, format string, args ...any) error {
	return &Error{Op: op, Kind: kind, Err: fmt.Errorf(format, args...)}
}

// IsRetryable reports whether the error is worth retrying at all.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrServiceUnavailable)
}

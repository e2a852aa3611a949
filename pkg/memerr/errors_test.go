package memerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMatchesSentinelAndCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := E(ErrServiceUnavailable, "llm.Complete", cause)

	assert.True(t, errors.Is(err, ErrServiceUnavailable))
	assert.True(t, errors.Is(err, cause))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "llm.Complete")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestErrorWithoutCause(t *testing.T) {
	err := E(ErrNotImplemented, "search.SearchGists", nil)

	assert.True(t, errors.Is(err, ErrNotImplemented))
	assert.Equal(t, "search.SearchGists: not implemented", err.Error())
}

func TestErrorSurvivesWrapping(t *testing.T) {
	err := Ef(ErrUnprocessable, "extraction.facts", "bad JSON at offset %d", 12)
	wrapped := fmt.Errorf("flush failed: %w", err)

	assert.True(t, errors.Is(wrapped, ErrUnprocessable))

	var taxErr *Error
	assert.True(t, errors.As(wrapped, &taxErr))
	assert.Equal(t, "extraction.facts", taxErr.Op)
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"service unavailable", E(ErrServiceUnavailable, "op", nil), true},
		{"not implemented", E(ErrNotImplemented, "op", nil), false},
		{"unprocessable", E(ErrUnprocessable, "op", nil), false},
		{"plain error", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}

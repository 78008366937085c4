/*
errors.go - Error types for the savings engine

PURPOSE:
  All error types in one place. The taxonomy is deliberately small:

  1. ParseError - an unrecognized timestamp. Fatal to the enclosing call;
     surfaced to the caller with the offending string and expected format.
  2. MissingFieldError - a required numeric field (age, wage, inflation)
     absent from the request. Caller contract violation, fails fast.

  Validation failures (negative amount, duplicate date) are NOT errors.
  They are captured as InvalidTransaction data so one bad transaction never
  aborts the rest of the batch. See validate.go.

USAGE:
  Transport layers map client errors to 4xx:

    if savings.IsClientError(err) {
        writeError(w, http.StatusBadRequest, ...)
    }
*/
package savings

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrUnparsableTimestamp is returned (wrapped) when a timestamp string
	// matches neither accepted format.
	ErrUnparsableTimestamp = errors.New("unparsable timestamp")

	// ErrMissingField is returned (wrapped) when a required request field
	// is absent.
	ErrMissingField = errors.New("missing required field")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// ParseError reports a timestamp that matches neither accepted format.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse datetime %q: expected format YYYY-MM-DD HH:mm:ss", e.Input)
}

func (e *ParseError) Unwrap() error { return ErrUnparsableTimestamp }

// MissingFieldError reports a required request field that was not supplied.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

func (e *MissingFieldError) Unwrap() error { return ErrMissingField }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid client input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrUnparsableTimestamp) ||
		errors.Is(err, ErrMissingField)
}

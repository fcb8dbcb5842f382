package recur

import (
	"errors"
)

var (
	// ErrInvalidInput is the error returned when SetValue receives something
	// that is neither rule text nor a structured mapping.
	ErrInvalidInput = errors.New("unsupported input for a recurrence value")
	// ErrMalformedRulePart is the error returned when a textual rule part has
	// no name/value separator.
	ErrMalformedRulePart = errors.New("rule part missing name/value separator")
	// ErrMalformedTimestamp is the error returned when an UNTIL sub-value
	// cannot be read as a packed date or date-time.
	ErrMalformedTimestamp = errors.New("malformed until timestamp")
)

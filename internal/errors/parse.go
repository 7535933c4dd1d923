package errors

import (
	"errors"
	"fmt"
)

// ParseError represents a failure to parse a payload fetched from Letterboxd.
// It always wraps the underlying cause so callers can inspect it.
type ParseError struct {
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a ParseError wrapping the given cause
func NewParseError(message string, cause error) *ParseError {
	return &ParseError{Message: message, Err: cause}
}

// IsParseError reports whether err is a ParseError (even when wrapped).
func IsParseError(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}

package errors

import (
	"errors"
	"fmt"
)

// LookupError represents a failure to resolve a movie on Letterboxd
// (unexpected redirect status, missing Location header, unknown IMDB ID).
type LookupError struct {
	Message    string
	StatusCode int
}

func (e *LookupError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (HTTP %d)", e.Message, e.StatusCode)
	}
	return e.Message
}

// NewLookupError creates a lookup error with the offending HTTP status.
// Pass 0 when no HTTP status applies.
func NewLookupError(statusCode int, message string) *LookupError {
	return &LookupError{Message: message, StatusCode: statusCode}
}

// IsLookupError reports whether err is a LookupError (even when wrapped).
func IsLookupError(err error) bool {
	var lookupErr *LookupError
	return errors.As(err, &lookupErr)
}

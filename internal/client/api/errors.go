package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable means no response was received at all: connection
	// refused, timeout, DNS failure.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized means the server rejected the caller's credentials.
	ErrUnauthorized = errors.New("unauthorized")
)

// Error is a server-rejected request: a response arrived, but its envelope
// carried a non-success status.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request rejected (status %d)", e.StatusCode)
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

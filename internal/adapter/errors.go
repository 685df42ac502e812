package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized is returned for 401 responses: the client has no
	// valid session.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound is returned for 404 responses.
	ErrNotFound = errors.New("not found")
)

// APIError carries the server's status code and localized message for
// responses that do not map to a sentinel.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server returned status %d", e.Status)
}

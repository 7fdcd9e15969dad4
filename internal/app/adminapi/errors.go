// internal/app/adminapi/errors.go
package adminapi

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is returned when the Admin API answers 401 to an
// authenticated call. Callers treat it as the end of the session.
var ErrUnauthorized = errors.New("adminapi: unauthorized")

// APIError describes a response the Admin API sent back but which did not
// carry a successful envelope: a non-2xx status or {"success": false}.
type APIError struct {
	Status  int    // HTTP status code (0 when unknown)
	Message string // server supplied message, may be empty
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("adminapi: status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("adminapi: status %d", e.Status)
}

// MessageOf returns the server supplied message carried by err, if any.
func MessageOf(err error) (string, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message, true
	}
	return "", false
}

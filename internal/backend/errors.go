package backend

import (
	"errors"
	"fmt"
)

// ErrUnauthorized means the backend rejected the bearer credential
// (401 or 403). Handlers clear the session and send the user to login.
var ErrUnauthorized = errors.New("backend rejected credentials")

// ErrUnreachable wraps transport-level failures so pages can show a
// single "cannot reach the server" message.
var ErrUnreachable = errors.New("cannot reach the server")

// APIError carries a backend-provided message for a business-rule or
// validation failure, to be surfaced inline to the user.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("backend returned status %d", e.Status)
}

// UserMessage extracts the text a page should display for err. It
// never exposes transport internals.
func UserMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if errors.Is(err, ErrUnreachable) {
		return "Unable to connect to the server."
	}
	return fallback
}

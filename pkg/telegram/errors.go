package telegram

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is an error reported by the Bot API.
type APIError struct {
	Code        int    // error_code from the response
	Description string // human readable description
	RetryAfter  int    // seconds to wait, set on flood control errors
}

func (e *APIError) Error() string {
	return fmt.Sprintf("telegram api error %d: %s", e.Code, e.Description)
}

// Forbidden reports whether the bot may not write to the chat,
// e.g. it was blocked by the user or the user is deactivated.
func (e *APIError) Forbidden() bool { return e.Code == http.StatusForbidden }

// TooManyRequests reports whether the request hit flood control.
func (e *APIError) TooManyRequests() bool { return e.Code == http.StatusTooManyRequests }

// BadRequest reports whether the request was rejected as malformed,
// e.g. unknown chat or unparsable entities.
func (e *APIError) BadRequest() bool { return e.Code == http.StatusBadRequest }

// AsAPIError extracts an *APIError from err.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}

	return nil, false
}

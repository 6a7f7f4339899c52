package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error is a non-2xx response from the API, carrying the HTTP status and
// whatever the server put in its error body.
type Error struct {
	Status        int
	Code          string
	Message       string
	CorrelationID string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: %d %s", e.Status, http.StatusText(e.Status))
}

// errorBody is the server's standard error envelope.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// newError builds an *Error from a non-2xx response body. Bodies that
// are not the standard envelope are kept verbatim as the message.
func newError(status int, body []byte, correlationID string) *Error {
	apiErr := &Error{Status: status, CorrelationID: correlationID}

	var envelope errorBody
	if err := json.Unmarshal(body, &envelope); err == nil && (envelope.Error != "" || envelope.Message != "") {
		apiErr.Code = envelope.Error
		apiErr.Message = envelope.Message
		if apiErr.Message == "" {
			apiErr.Message = envelope.Error
		}
		return apiErr
	}

	apiErr.Message = strings.TrimSpace(string(body))
	return apiErr
}

// StatusOf returns the HTTP status carried by err, or 0 if err is not an
// API error.
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	return StatusOf(err) == http.StatusNotFound
}

// IsUnauthorized reports whether err is a 401 from the API.
func IsUnauthorized(err error) bool {
	return StatusOf(err) == http.StatusUnauthorized
}

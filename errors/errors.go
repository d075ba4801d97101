package errors

import (
	"fmt"
	"net/http"
)

// Error carries a message plus the HTTP status it should surface as. Service
// methods return it so handlers can pick the right response code without
// string matching.
type Error struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("error: message: %s", e.Message)
}

// New creates a new Error with the given message and status.
func New(message string, status int) *Error {
	return &Error{
		Message: message,
		Status:  status,
	}
}

var (
	ErrNotFound            = New("not found", http.StatusNotFound)
	ErrBadRequest          = New("bad request", http.StatusBadRequest)
	ErrInternalServerError = New("internal server error", http.StatusInternalServerError)
)

// StatusOf extracts the HTTP status from an error, defaulting to 500 for
// anything that is not an *Error.
func StatusOf(err error) int {
	if e, ok := err.(*Error); ok {
		return e.Status
	}
	return http.StatusInternalServerError
}

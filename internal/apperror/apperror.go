// Package apperror defines the typed failure returned by services and rendered
// by the HTTP error handler.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Machine-readable error codes clients can branch on.
const (
	CodeAlreadyExists      = "ALREADY_EXISTS"
	CodeNotFound           = "NOT_FOUND"
	CodeValidationFailed   = "VALIDATION_FAILED"
	CodeInvalidID          = "INVALID_ID"
	CodeInvalidPayload     = "INVALID_PAYLOAD"
	CodeBadRequest         = "BAD_REQUEST"
	CodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	CodeInternal           = "INTERNAL_ERROR"
)

// Error carries the action that failed, the HTTP status to answer with, a stable code
// and a human message. Err holds the underlying cause and is never sent to clients.
type Error struct {
	Action  string
	Status  int
	Code    string
	Message string
	Details map[string]string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Action, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Action, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New constructs an Error.
func New(action string, status int, code, message string) *Error {
	return &Error{Action: action, Status: status, Code: code, Message: message}
}

// Wrap returns a copy of e with err attached as the cause.
func (e *Error) Wrap(err error) *Error {
	cp := *e
	cp.Err = err
	return &cp
}

// Conflict reports that the requested name is already in use.
func Conflict(action, message string) *Error {
	return New(action, http.StatusConflict, CodeAlreadyExists, message)
}

// NotFound reports that the id does not resolve to a record.
func NotFound(action, message string) *Error {
	return New(action, http.StatusNotFound, CodeNotFound, message)
}

// Validation reports invalid input with per-field details.
func Validation(action string, details map[string]string) *Error {
	e := New(action, http.StatusBadRequest, CodeValidationFailed, "validation failed")
	e.Details = details
	return e
}

// BadRequest reports malformed input that is not tied to a field.
func BadRequest(action, code, message string) *Error {
	return New(action, http.StatusBadRequest, code, message)
}

// As extracts an *Error from the chain.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

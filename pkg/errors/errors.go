// Package errors defines the coded errors shared by the session, the solver
// client, the CLI and the web viewer.
//
// Every failure a user can see carries a [Code] and a message that is shown
// verbatim in the output pane, so messages are written for people:
//
//	err := errors.New(errors.ErrCodeInvalidAlgorithm, "unknown algorithm %q", name)
//	if errors.Is(err, errors.ErrCodeInvalidAlgorithm) {
//	    fmt.Println(errors.UserMessage(err))
//	}
//
// Solver failures that came back over HTTP are wrapped in a [StatusError]
// so the upstream status survives.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code is a machine-readable error class.
type Code string

const (
	// Rejected before anything is drawn or sent.
	ErrCodeInvalidInput     Code = "INVALID_INPUT"
	ErrCodeInvalidAlgorithm Code = "INVALID_ALGORITHM"
	ErrCodeInvalidFormat    Code = "INVALID_FORMAT"
	ErrCodeInvalidPath      Code = "INVALID_PATH"
	ErrCodeFileNotFound     Code = "FILE_NOT_FOUND"

	// ErrCodeSolver covers non-2xx statuses and bodies with a truthy
	// "error" field. ErrCodeInvalidResponse covers bodies that are not JSON
	// or do not match the algorithm's result shape.
	ErrCodeSolver          Code = "SOLVER_ERROR"
	ErrCodeInvalidResponse Code = "INVALID_RESPONSE"

	ErrCodeNetwork Code = "NETWORK_ERROR"
	ErrCodeTimeout Code = "TIMEOUT"

	// ErrCodeSuperseded marks work dropped because newer work replaced it.
	ErrCodeSuperseded Code = "SUPERSEDED"

	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// HTTPStatus is the status the web viewer answers with for c.
func (c Code) HTTPStatus() int {
	switch c {
	case ErrCodeInvalidInput, ErrCodeInvalidAlgorithm, ErrCodeInvalidPath, ErrCodeFileNotFound:
		return http.StatusBadRequest
	case ErrCodeInvalidFormat:
		return http.StatusNotFound
	case ErrCodeSolver, ErrCodeInvalidResponse, ErrCodeNetwork:
		return http.StatusBadGateway
	case ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case ErrCodeUnsupported:
		return http.StatusNotImplemented
	case ErrCodeSuperseded:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error is a coded error with an optional cause.
type Error struct {
	Code    Code
	Message string // shown to the user as-is
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap returns an Error with a formatted message and cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether the first *Error in err's chain has code.
func Is(err error, code Code) bool {
	return GetCode(err) == code && code != ""
}

// GetCode returns the code of the first *Error in err's chain, or "".
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns the message of the first *Error in err's chain, or
// err.Error() for uncoded errors.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// HTTPStatus maps err to a response status; uncoded errors are 500.
func HTTPStatus(err error) int {
	return GetCode(err).HTTPStatus()
}

// StatusError carries the HTTP status of a failed solver response
// alongside the structured error.
type StatusError struct {
	Err    *Error
	Status int
}

func (e *StatusError) Error() string { return e.Err.Error() }

func (e *StatusError) Unwrap() error { return e.Err }

// Status returns the upstream HTTP status recorded on err, or 0.
func Status(err error) int {
	var e *StatusError
	if errors.As(err, &e) {
		return e.Status
	}
	return 0
}

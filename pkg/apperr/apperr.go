// Package apperr is the error type shared by repositories, services and
// controllers. Codes map onto HTTP statuses at the edge.
package apperr

import (
	"errors"
	"net/http"
)

type Code string

const (
	CodeNotFound        Code = "not_found"
	CodeInvalidArgument Code = "invalid_argument"
	CodeUnavailable     Code = "unavailable"
	CodeInternal        Code = "internal"
)

// HTTPStatus returns the response status for the code.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeNotFound:
		return http.StatusNotFound
	case CodeInvalidArgument:
		return http.StatusBadRequest
	case CodeUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Cause }

// Is matches another *Error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

func NotFound(message string) *Error { return New(CodeNotFound, message) }

func Invalid(message string) *Error { return New(CodeInvalidArgument, message) }

// Sentinels for errors.Is checks.
var (
	ErrNotFound = New(CodeNotFound, "not found")
	ErrInvalid  = New(CodeInvalidArgument, "invalid argument")
)

// CodeOf extracts the code of err, or CodeInternal when err is not an *Error.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// IsNotFound reports whether err carries CodeNotFound.
func IsNotFound(err error) bool { return CodeOf(err) == CodeNotFound }

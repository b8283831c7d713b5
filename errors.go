package caniuse

import (
	"errors"
	"fmt"
)

// Application error codes. These are portable across the transport and UI
// layers; the CLI maps them to exit behavior.
const (
	ECANCELLED = "cancelled"
	ECONTENT   = "content"
	EINTERNAL  = "internal"
	EINVALID   = "invalid"
	ENETWORK   = "network"
	ENOTFOUND  = "not_found"
	ETIMEOUT   = "timeout"
)

// Error represents an application-specific error. Application errors carry a
// machine-readable code and a human-readable message.
type Error struct {
	// Code is one of the error code constants above.
	Code string

	// Message is a human-readable description of the error.
	Message string
}

// Error implements the error interface. Not intended for end users; the CLI
// surfaces ErrorMessage instead.
func (e *Error) Error() string {
	return fmt.Sprintf("caniuse error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code. Non-application
// errors return EINTERNAL; a nil error returns an empty string.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors return a generic message; nil returns an empty
// string.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

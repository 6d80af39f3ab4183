// Package errors provides structured error types for wordvis.
//
// Every failure of a run maps to one error code so the CLI can pick an exit
// status and print a message without string matching:
//   - INVALID_*: malformed input records, formats or configuration
//   - USAGE: wrong command invocation
//   - IO_ERROR: unreadable input or unwritable output
//   - INVARIANT_VIOLATION: a broken internal invariant (programming error)
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidRecord, "line %d: missing tab", n)
//	if errors.Is(err, errors.ErrCodeInvalidRecord) {
//	    // Handle bad input
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeIO, origErr, "open %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidRecord  Code = "INVALID_RECORD"
	ErrCodeInvalidFormat  Code = "INVALID_FORMAT"
	ErrCodeInvalidVizType Code = "INVALID_VIZ_TYPE"
	ErrCodeInvalidConfig  Code = "INVALID_CONFIG"

	// Invocation errors
	ErrCodeUsage Code = "USAGE"

	// File system errors
	ErrCodeIO Code = "IO_ERROR"

	// Internal errors
	ErrCodeInvariantViolation Code = "INVARIANT_VIOLATION"
	ErrCodeInternal           Code = "INTERNAL_ERROR"
	ErrCodeUnsupported        Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix, followed
// by the cause when there is one. For other errors, returns the error string
// as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	}
	return err.Error()
}

// Package errors provides structured error types for the hillclimb application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across CLI and API
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Input problems share the INVALID_INPUT family but carry a specific code so
// callers can tell them apart:
//   - UNKNOWN_NODE: start, goal or heuristic entry names an undeclared node
//   - UNKNOWN_EDGE_ENDPOINT: an edge references an undeclared node or is malformed
//   - INVALID_HEURISTIC: a heuristic value is missing, non-numeric or negative
//   - MISSING_ENDPOINT: start or goal was not given
//
// A search that stops on a local optimum is not an error. STEP_LIMIT is
// reserved for walks that exceed their move budget.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeUnknownNode, "start node %q is not in the graph", start)
//	if errors.IsInvalidInput(err) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInternal, origErr, "render %s", format)
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
	ErrCodeInvalidInput        Code = "INVALID_INPUT"
	ErrCodeUnknownNode         Code = "UNKNOWN_NODE"
	ErrCodeUnknownEdgeEndpoint Code = "UNKNOWN_EDGE_ENDPOINT"
	ErrCodeInvalidHeuristic    Code = "INVALID_HEURISTIC"
	ErrCodeMissingEndpoint     Code = "MISSING_ENDPOINT"
	ErrCodeInvalidFormat       Code = "INVALID_FORMAT"

	// Resource not found errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Search errors
	ErrCodeStepLimit Code = "STEP_LIMIT"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// invalidInputCodes are the codes reported as bad input by IsInvalidInput.
var invalidInputCodes = map[Code]bool{
	ErrCodeInvalidInput:        true,
	ErrCodeUnknownNode:         true,
	ErrCodeUnknownEdgeEndpoint: true,
	ErrCodeInvalidHeuristic:    true,
	ErrCodeMissingEndpoint:     true,
	ErrCodeInvalidFormat:       true,
}

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

// IsInvalidInput reports whether err carries one of the input validation codes.
func IsInvalidInput(err error) bool {
	return invalidInputCodes[GetCode(err)]
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
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

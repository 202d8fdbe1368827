// Package errors provides structured error types for the cnfgen library.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and the library packages
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages that point at the offending line,
//     vertex or clause where feasible
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: validation failures (clauses, parameters, graphs)
//   - PARSE_*: malformed bytes for a declared file format
//   - UNSUPPORTED_*: a format/type combination outside the codec table
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidClause, "literal %d repeated", lit)
//	if errors.Is(err, errors.ErrCodeInvalidClause) {
//	    // Handle clause validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeParse, origErr, "reading %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Clause and variable model errors
	ErrCodeInvalidClause   Code = "INVALID_CLAUSE"
	ErrCodeUnknownVariable Code = "UNKNOWN_VARIABLE"

	// Graph input errors
	ErrCodeParse               Code = "PARSE_ERROR"
	ErrCodeTypeMismatch        Code = "TYPE_MISMATCH"
	ErrCodeBipartitionConflict Code = "BIPARTITION_CONFLICT"
	ErrCodeUnsupportedFormat   Code = "UNSUPPORTED_FORMAT"
	ErrCodeInvalidGraph        Code = "INVALID_GRAPH"

	// Formula construction errors
	ErrCodeInvalidParameter Code = "INVALID_PARAMETER"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
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
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

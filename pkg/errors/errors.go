// Package errors provides structured error types for the lattica layout engine.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and pipeline
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// The layout codes mirror the failure taxonomy of the layout algorithms:
//   - INVALID_GRAPH: the graph has the wrong shape for the requested algorithm
//   - NO_ROOT: a tree algorithm was given a rootless or cyclic structure
//   - INVALID_WEIGHT: required leaf weights are missing or non-numeric
//   - INVALID_OPTION: unrecognized or mutually inconsistent options
//   - MISSING_LEVEL: an explicit ordering references an absent category
//   - UNKNOWN_LAYOUT: an algorithm name could not be resolved
//
// Infrastructure codes (INVALID_INPUT, NOT_FOUND, INTERNAL_ERROR) cover
// serialization, caching, and CLI concerns.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeNoRoot, "no vertex with zero in-degree")
//	if errors.Is(err, errors.ErrCodeNoRoot) {
//	    // Handle rootless graph
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInternal, origErr, "graphviz render failed")
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Layout algorithm errors
	ErrCodeInvalidGraph  Code = "INVALID_GRAPH"
	ErrCodeNoRoot        Code = "NO_ROOT"
	ErrCodeInvalidWeight Code = "INVALID_WEIGHT"
	ErrCodeInvalidOption Code = "INVALID_OPTION"
	ErrCodeMissingLevel  Code = "MISSING_LEVEL"
	ErrCodeUnknownLayout Code = "UNKNOWN_LAYOUT"

	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"

	// Resource errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
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

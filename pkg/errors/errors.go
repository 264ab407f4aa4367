// Package errors provides structured error types for the scenegen
// application boundary.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across CLI and API
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// Resolution itself reports failures with the typed errors in pkg/scene;
// this package classifies them at the boundary so exit codes and HTTP
// status codes stay consistent.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidDocument, "document %s has no entities", name)
//	if errors.Is(err, errors.ErrCodeInvalidDocument) {
//	    // Handle validation error
//	}
//
//	// Classify resolver failures
//	boundary := errors.FromResolution(resolveErr)
package errors

import (
	"errors"
	"fmt"

	"github.com/mengfei0517/robocasa/pkg/scene"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidDocument Code = "INVALID_DOCUMENT"
	ErrCodeInvalidCatalog  Code = "INVALID_CATALOG"

	// Resolution errors (mapped from pkg/scene error types)
	ErrCodeUnresolvedReference Code = "UNRESOLVED_REFERENCE"
	ErrCodeCyclicDependency    Code = "CYCLIC_DEPENDENCY"
	ErrCodeInvalidStack        Code = "INVALID_STACK"
	ErrCodeAmbiguousDimension  Code = "AMBIGUOUS_DIMENSION"
	ErrCodePlacementInfeasible Code = "PLACEMENT_INFEASIBLE"

	// Resource not found errors
	ErrCodeNotFound      Code = "NOT_FOUND"
	ErrCodeSceneNotFound Code = "SCENE_NOT_FOUND"
	ErrCodeFileNotFound  Code = "FILE_NOT_FOUND"

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

// FromResolution classifies a resolution failure into a boundary error.
// The typed scene errors keep their payload as the cause; anything
// unrecognized becomes an internal error.
func FromResolution(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}

	var (
		unresolved *scene.UnresolvedReferenceError
		cyclic     *scene.CyclicDependencyError
		stack      *scene.InvalidStackError
		ambiguous  *scene.AmbiguousDimensionError
		placement  *scene.PlacementInfeasibleError
	)
	switch {
	case errors.As(err, &unresolved):
		return Wrap(ErrCodeUnresolvedReference, err, "entity %q references unknown entity %q", unresolved.From, unresolved.To)
	case errors.As(err, &cyclic):
		return Wrap(ErrCodeCyclicDependency, err, "entities form a dependency cycle")
	case errors.As(err, &stack):
		return Wrap(ErrCodeInvalidStack, err, "stack %q has invalid level percentages", stack.Entity)
	case errors.As(err, &ambiguous):
		return Wrap(ErrCodeAmbiguousDimension, err, "entity %q size is ambiguous on axis %s", ambiguous.Entity, ambiguous.Axis)
	case errors.As(err, &placement):
		return Wrap(ErrCodePlacementInfeasible, err, "object %q cannot be placed on %q", placement.Object, placement.Fixture)
	}
	return Wrap(ErrCodeInternal, err, "resolution failed")
}

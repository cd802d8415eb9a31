// Package errors provides structured error types for the Docktile application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across CLI and API
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - *_NOT_FOUND: Resource not found
//   - Layout engine codes mirror the sentinels of pkg/tile
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidInput, "invalid layout name: %s", name)
//	if errors.Is(err, errors.ErrCodeInvalidInput) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeStorage, origErr, "failed to load %s", key)
package errors

import (
	"errors"
	"fmt"

	"github.com/docktile/docktile/pkg/tile"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput     Code = "INVALID_INPUT"
	ErrCodeInvalidLayout    Code = "INVALID_LAYOUT"
	ErrCodeInvalidFormat    Code = "INVALID_FORMAT"
	ErrCodeInvalidPath      Code = "INVALID_PATH"
	ErrCodeInvalidDirection Code = "INVALID_DIRECTION"

	// Layout engine errors, mirroring the pkg/tile sentinels
	ErrCodeTileNotFound    Code = "TILE_NOT_FOUND"
	ErrCodeWrongTileType   Code = "WRONG_TILE_TYPE"
	ErrCodeInvalidParent   Code = "INVALID_PARENT"
	ErrCodeAlreadyHasChild Code = "ALREADY_HAS_CHILD"
	ErrCodeTabNotInPanel   Code = "TAB_NOT_IN_PANEL"
	ErrCodeDegenerateSplit Code = "DEGENERATE_SPLIT"
	ErrCodeFocusNotActive  Code = "FOCUS_NOT_ACTIVE"
	ErrCodeEmptyContainer  Code = "EMPTY_CONTAINER"
	ErrCodeRedundantGrid   Code = "REDUNDANT_GRID"
	ErrCodeOrphanTile      Code = "ORPHAN_TILE"

	// Resource not found errors
	ErrCodeNotFound         Code = "NOT_FOUND"
	ErrCodeSnapshotNotFound Code = "SNAPSHOT_NOT_FOUND"
	ErrCodeFileNotFound     Code = "FILE_NOT_FOUND"
	ErrCodePresetNotFound   Code = "PRESET_NOT_FOUND"

	// Persistence errors
	ErrCodeStorage Code = "STORAGE_ERROR"
	ErrCodeTimeout Code = "TIMEOUT"

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

// sentinelCodes maps the pkg/tile sentinels onto their wire codes.
var sentinelCodes = []struct {
	err  error
	code Code
}{
	{tile.ErrTileNotFound, ErrCodeTileNotFound},
	{tile.ErrWrongTileType, ErrCodeWrongTileType},
	{tile.ErrInvalidParent, ErrCodeInvalidParent},
	{tile.ErrAlreadyHasChild, ErrCodeAlreadyHasChild},
	{tile.ErrTabNotInPanel, ErrCodeTabNotInPanel},
	{tile.ErrDegenerateSplit, ErrCodeDegenerateSplit},
	{tile.ErrFocusNotActive, ErrCodeFocusNotActive},
	{tile.ErrInvalidDirection, ErrCodeInvalidDirection},
	{tile.ErrEmptyContainer, ErrCodeEmptyContainer},
	{tile.ErrRedundantGrid, ErrCodeRedundantGrid},
	{tile.ErrOrphanTile, ErrCodeOrphanTile},
}

// FromLayout converts a layout engine error into a structured Error. A
// recognized sentinel anywhere in the chain picks the matching code;
// anything else maps to INTERNAL_ERROR. A nil error returns nil. The
// engine's message becomes the Error message, so the result stands on
// its own without the original chain.
func FromLayout(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	for _, m := range sentinelCodes {
		if errors.Is(err, m.err) {
			return &Error{Code: m.code, Message: err.Error()}
		}
	}
	return &Error{Code: ErrCodeInternal, Message: err.Error()}
}

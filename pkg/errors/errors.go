// Package errors provides the coded error type shared by the trim, playback
// and segment layers. Every condition is local and recoverable; callers decide
// per clip how to surface it.
package errors

import (
	"errors"
	"fmt"
)

// Error codes organized by category
const (
	CodeUnknown = 1000

	// Trim window errors (1100-1199)
	CodeInvalidTimeField = 1100
	CodeDegenerateWindow = 1101

	// Store errors (1200-1299)
	CodeIndexOutOfRange = 1200

	// Segment errors (1300-1399)
	CodeEmptySegment = 1300

	// Playback errors (1400-1499)
	CodeCapabilityDisabled = 1400

	// Media layer errors (1500-1599)
	CodeSurfaceUnavailable = 1500
	CodeProbeFailed        = 1501

	// Configuration errors (1600-1699)
	CodeInvalidConfig = 1600
)

// AppError represents a structured application error
type AppError struct {
	Code    int
	Message string
	Detail  string
	Cause   error
}

// Error implements the error interface
func (e *AppError) Error() string {
	msg := fmt.Sprintf("[%d] %s", e.Code, e.Message)
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an AppError with the same code, so that
// errors.Is(err, ErrEmptySegment) matches any EmptySegment error.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// New creates a new AppError
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with an AppError
func Wrap(code int, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithDetail returns a copy of e carrying detail. The predefined errors are
// never mutated.
func (e *AppError) WithDetail(format string, args ...interface{}) *AppError {
	cp := *e
	cp.Detail = fmt.Sprintf(format, args...)
	return &cp
}

// Is checks if the target error is an AppError with the specified code
func Is(err error, code int) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// GetCode extracts error code from error, returns CodeUnknown if not AppError
func GetCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeUnknown
}

// GetMessage extracts message from error
func GetMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

// Predefined errors
var (
	ErrInvalidTimeField = New(CodeInvalidTimeField, "invalid time field")
	ErrDegenerateWindow = New(CodeDegenerateWindow, "trim window end must be after start")

	ErrIndexOutOfRange = New(CodeIndexOutOfRange, "clip index out of range")

	ErrEmptySegment = New(CodeEmptySegment, "trimmed segment has no frames")

	ErrCapabilityDisabled = New(CodeCapabilityDisabled, "capability disabled")

	ErrSurfaceUnavailable = New(CodeSurfaceUnavailable, "playback surface unavailable")
	ErrProbeFailed        = New(CodeProbeFailed, "metadata probe failed")

	ErrInvalidConfig = New(CodeInvalidConfig, "invalid configuration")
)

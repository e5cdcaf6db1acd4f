package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	err := New(CodeEmptySegment, "Test error")
	assert.Equal(t, "[1300] Test error", err.Error())

	cause := errors.New("underlying error")
	errWithCause := Wrap(CodeProbeFailed, "Test error", cause)
	assert.Contains(t, errWithCause.Error(), "underlying error")
	assert.Contains(t, errWithCause.Error(), "1501")
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(CodeProbeFailed, "probe", cause)

	assert.Equal(t, cause, err.Unwrap())
	assert.True(t, errors.Is(err, cause))
}

func TestErrorsIsMatchesByCode(t *testing.T) {
	err := ErrInvalidTimeField.WithDetail("minutes=75")
	wrapped := fmt.Errorf("edit start: %w", err)

	assert.True(t, errors.Is(wrapped, ErrInvalidTimeField))
	assert.False(t, errors.Is(wrapped, ErrEmptySegment))
	assert.Contains(t, wrapped.Error(), "minutes=75")
}

func TestWithDetailDoesNotMutatePredefined(t *testing.T) {
	_ = ErrIndexOutOfRange.WithDetail("index 7")
	assert.Empty(t, ErrIndexOutOfRange.Detail)
}

func TestIs(t *testing.T) {
	err := New(CodeDegenerateWindow, "degenerate")

	assert.True(t, Is(err, CodeDegenerateWindow))
	assert.False(t, Is(err, CodeEmptySegment))

	regularErr := errors.New("regular error")
	assert.False(t, Is(regularErr, CodeDegenerateWindow))
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, CodeEmptySegment, GetCode(ErrEmptySegment))
	assert.Equal(t, CodeUnknown, GetCode(errors.New("regular error")))
}

func TestGetMessage(t *testing.T) {
	assert.Equal(t, "clip index out of range", GetMessage(fmt.Errorf("x: %w", ErrIndexOutOfRange)))
	assert.Equal(t, "plain", GetMessage(errors.New("plain")))
}

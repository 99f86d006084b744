package domain

import (
	"errors"
	"fmt"
)

// Domain errors (no external dependencies).
var (
	ErrNotFound           = errors.New("resource not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicate          = errors.New("duplicate resource")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("access denied")
	ErrConflict           = errors.New("conflict with current state")
)

// ValidationError reports a precondition violation on caller input with
// enough detail (field, row) to build a user-facing message. Handlers map
// it to HTTP 400 via errors.Is(err, ErrInvalidInput) or errors.As.
//
// Row is 0-based and only meaningful when >= 0; -1 means the error is not
// tied to a particular row.
type ValidationError struct {
	Field string
	Row   int
	Msg   string
}

// NewValidationError builds a ValidationError for a field without row context.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Field: field, Row: -1, Msg: msg}
}

// NewRowValidationError builds a ValidationError tied to a row index (0-based).
func NewRowValidationError(field string, row int, msg string) *ValidationError {
	return &ValidationError{Field: field, Row: row, Msg: msg}
}

func (e *ValidationError) Error() string {
	if e.Row >= 0 {
		return fmt.Sprintf("%s (row %d): %s", e.Field, e.Row, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

// Unwrap lets callers treat any ValidationError as ErrInvalidInput.
func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

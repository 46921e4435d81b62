package domain

import (
	"errors"
	"fmt"
)

// sentinel errors shared by repositories and the HTTP layer
var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation failed")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
)

// NotFoundError reports a missing entity, message matches "<Entity> not found"
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

// Unwrap allows errors.Is(err, ErrNotFound)
func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// NotFound makes a NotFoundError for the given entity name
func NotFound(entity string) error {
	return &NotFoundError{Entity: entity}
}

// ValidationError reports a bad or missing input field
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap allows errors.Is(err, ErrValidation)
func (e *ValidationError) Unwrap() error { return ErrValidation }

// Invalid makes a ValidationError
func Invalid(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

// ConflictError reports a unique or referential constraint violation
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// Unwrap allows errors.Is(err, ErrConflict)
func (e *ConflictError) Unwrap() error { return ErrConflict }

// Conflict makes a ConflictError
func Conflict(format string, args ...any) error {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

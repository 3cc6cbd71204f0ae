package patch

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound is returned when the UPDATE matched no row.
	ErrNotFound = errors.New("not found")

	// ErrNoFields is returned when no field was provided.
	ErrNoFields = errors.New("no fields provided for update")

	// ErrDBNil is returned if the database handle is nil.
	ErrDBNil = errors.New("db is nil")
)

// FieldError reports an invalid field value.
type FieldError struct {
	Field   string
	Message string
}

// Error implements error.
func (e *FieldError) Error() string {
	return e.Message
}

// ConflictError reports a value that is already used by another row.
type ConflictError struct {
	Field   string
	Message string
}

// Error implements error.
func (e *ConflictError) Error() string {
	return e.Message
}

// NotFoundError names the resource that has no row with the requested id.
// It matches ErrNotFound with errors.Is.
type NotFoundError struct {
	Resource string // e.g. "Post"
}

// Error implements error.
func (e *NotFoundError) Error() string {
	return strings.ToLower(e.Resource) + " not found"
}

// Message returns the client facing text.
func (e *NotFoundError) Message() string {
	return e.Resource + " not found"
}

// Unwrap returns ErrNotFound.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NotFound returns a NotFoundError for resource.
func NotFound(resource string) error {
	return &NotFoundError{Resource: resource}
}

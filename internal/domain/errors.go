package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Field-level validation messages shared by entity packages.
const (
	MsgRequired     = "is required"
	MsgMustNotEmpty = "must not be empty"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
	ErrStorage    = errors.New("storage error")
)

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		keys = append(keys, field)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, field := range keys {
		parts = append(parts, field+": "+e.Fields[field])
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// StorageError reports a failure of the persistence layer. It matches
// ErrStorage via errors.Is and exposes the underlying driver error through
// Unwrap so callers can still inspect the cause.
type StorageError struct {
	Op  string
	Err error
}

// NewStorageError wraps err as a StorageError for the named operation.
// Returns nil when err is nil.
func NewStorageError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrStorage.Error(), e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrStorage so that wrapped driver errors
// remain distinguishable from not-found and validation failures.
func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

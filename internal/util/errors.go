package util

import (
	"errors"
	"fmt"
)

var (
	ErrEmailRegistered    = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPermissionDenied   = errors.New("permission denied")
)

// InvalidInputError reports a malformed request value. It is raised before any
// storage access and is always user-facing.
type InvalidInputError struct {
	Field  string
	Rule   string
	Detail string
}

func (e *InvalidInputError) Error() string {
	return e.Detail
}

func NewInvalidInputError(field, rule, detail string) *InvalidInputError {
	return &InvalidInputError{Field: field, Rule: rule, Detail: detail}
}

// NotFoundError reports a well-formed lookup that matched nothing.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

func NewNotFoundError(resource string) *NotFoundError {
	return &NotFoundError{Resource: resource}
}

// RepositoryError wraps a storage failure with the lookup that produced it.
// The wrapped cause is logged internally and never shown to the caller.
type RepositoryError struct {
	Lookup string
	Err    error
}

func (e *RepositoryError) Error() string {
	return fmt.Sprintf("repository error on %s: %v", e.Lookup, e.Err)
}

func (e *RepositoryError) Unwrap() error {
	return e.Err
}

func NewRepositoryError(lookup string, err error) *RepositoryError {
	return &RepositoryError{Lookup: lookup, Err: err}
}

// IntegrityError signals a violated data invariant, e.g. a time limit stored
// on a quiz. It marks a bug in the writing path, not a valid external
// condition, and is kept distinct from the three expected error kinds.
type IntegrityError struct {
	Detail string
}

func (e *IntegrityError) Error() string {
	return "data integrity violation: " + e.Detail
}

func NewIntegrityError(detail string) *IntegrityError {
	return &IntegrityError{Detail: detail}
}

package models

import (
	"errors"
	"fmt"
)

// ErrIntegrity marks a broken invariant inside the engine, such as a post
// referencing a user that no longer exists. It indicates a bug in the
// cascade rules, never bad client input.
var ErrIntegrity = errors.New("data integrity violation")

// NotFoundError reports that a referenced entity does not exist.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s does not exist: %s", e.Entity, e.ID)
}

// ConflictError reports a uniqueness violation.
type ConflictError struct {
	Field string
	Value string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s is already taken: %s", e.Field, e.Value)
}

// ValidationError reports a domain-rule violation that is not a plain
// foreign-key miss, such as commenting on an unpublished post.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

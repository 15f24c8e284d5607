package database

import (
	"errors"
	"fmt"
)

// Error kinds. Match them with errors.Is.
var (
	ErrNotFound    = errors.New("not found")
	ErrDuplicateID = errors.New("duplicate id")
	ErrValidation  = errors.New("validation failed")
)

// Error identifies the kind of failure and the offending record.
type Error struct {
	Kind   error
	Entity string // "student", "test" or "results"
	ID     int
	Reason string
}

func (e *Error) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s %d: %v: %s", e.Entity, e.ID, e.Kind, e.Reason)
	}
	return fmt.Sprintf("%s %d: %v", e.Entity, e.ID, e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func NotFound(entity string, id int) *Error {
	return &Error{Kind: ErrNotFound, Entity: entity, ID: id}
}

func DuplicateID(entity string, id int) *Error {
	return &Error{Kind: ErrDuplicateID, Entity: entity, ID: id}
}

func Invalid(entity string, id int, reason string) *Error {
	return &Error{Kind: ErrValidation, Entity: entity, ID: id, Reason: reason}
}

package repo

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes repository errors.
type ErrorCode string

const (
	// ErrCodeNotFound indicates an update/delete referenced an unknown ID
	// under the FailMissing policy.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"

	// ErrCodeInvalidEntity indicates an entity failed invariant checks
	// (empty name, negative price, out-of-range tax rate, bad color).
	ErrCodeInvalidEntity ErrorCode = "INVALID_ENTITY"
)

// Error is a structured repository error with a code for callers that
// need to branch on the failure category.
type Error struct {
	Code    ErrorCode
	Entity  string // "inventory item", "invoice", "organization"
	ID      string // affected ID, when known
	Message string
}

func (e *Error) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s: %s %s: %s", e.Code, e.Entity, e.ID, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Code, e.Entity, e.Message)
}

// IsNotFound reports whether err is a NOT_FOUND repository error.
// Uses errors.As to handle wrapped errors.
func IsNotFound(err error) bool {
	var re *Error
	return errors.As(err, &re) && re.Code == ErrCodeNotFound
}

func notFoundError(entity, id string) *Error {
	return &Error{Code: ErrCodeNotFound, Entity: entity, ID: id, Message: "no such record"}
}

func invalidEntityError(entity, message string) *Error {
	return &Error{Code: ErrCodeInvalidEntity, Entity: entity, Message: message}
}

// MissingIDPolicy controls how Update and Delete treat an ID that does
// not exist. IgnoreMissing, the default, treats it as a silent no-op
// reported as success (tolerant of double submission). FailMissing
// returns a NOT_FOUND error instead.
type MissingIDPolicy int

const (
	IgnoreMissing MissingIDPolicy = iota
	FailMissing
)

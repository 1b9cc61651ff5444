package domain

import (
	"errors"
	"fmt"
)

// ErrNilArgument is returned by setters that reject a missing value.
var ErrNilArgument = errors.New("argument must not be nil")

// InvalidValueError is returned when raw input does not satisfy a value type's rule.
type InvalidValueError struct {
	Field   string
	Value   string
	Message string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Message)
}

func invalid(field, value, message string) error {
	return &InvalidValueError{Field: field, Value: value, Message: message}
}

// DuplicateEntityError is returned when an insert or replace would leave two
// entries with the same identity in a store.
type DuplicateEntityError struct {
	Entity EntityType
	Key    string
}

func (e *DuplicateEntityError) Error() string {
	return fmt.Sprintf("%s %s already exists", e.Entity, e.Key)
}

// EntityNotFoundError is returned when a remove or replace target is absent.
type EntityNotFoundError struct {
	Entity EntityType
	Key    string
}

func (e *EntityNotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.Key)
}

// IsDuplicate reports whether err carries a DuplicateEntityError.
func IsDuplicate(err error) bool {
	var dup *DuplicateEntityError
	return errors.As(err, &dup)
}

// IsNotFound reports whether err carries an EntityNotFoundError.
func IsNotFound(err error) bool {
	var nf *EntityNotFoundError
	return errors.As(err, &nf)
}

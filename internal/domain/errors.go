package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidData is the sentinel matched by every InvalidDataError.
var ErrInvalidData = errors.New("invalid data")

// ErrNotFound is returned by lookups that find no record.
var ErrNotFound = errors.New("not found")

// InvalidDataError reports a record whose field is outside its closed set
// of allowed values.
type InvalidDataError struct {
	Entity string
	ID     string
	Field  string
	Value  string
}

func (e *InvalidDataError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("invalid %s %s: %s %q", e.Entity, e.ID, e.Field, e.Value)
	}
	return fmt.Sprintf("invalid %s: %s %q", e.Entity, e.Field, e.Value)
}

func (e *InvalidDataError) Unwrap() error {
	return ErrInvalidData
}

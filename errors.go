package typeframe

import (
	"fmt"

	"github.com/typeframe/typeframe/frame"
)

// MissingColumnError reports a declared column absent from the actual table.
// Raised only at table construction and typed-reader completion.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing column %q", e.Column)
}

// TypeMismatchError reports a declared column present with a different
// runtime element type.
type TypeMismatchError struct {
	Column   string
	Expected frame.Type
	Actual   frame.Type
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("column %q has type %s, expected %s", e.Column, e.Actual, e.Expected)
}

// DuplicateFieldError reports two schema fields registered under one name.
// Surfaces from Build, before any data ever reaches validation.
type DuplicateFieldError struct {
	Name string
}

func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf("duplicate field name %q", e.Name)
}

package biopax

import (
	"errors"
	"fmt"
)

// Sentinel error categories. Concrete errors returned by this package
// unwrap to one of these, so callers can classify with errors.Is.
var (
	// ErrSchemaViolation covers unknown classes, undeclared properties,
	// kind mismatches and cardinality mismatches.
	ErrSchemaViolation = errors.New("schema violation")

	// ErrDuplicateUID is returned when two entities with the same uid
	// are placed in one model.
	ErrDuplicateUID = errors.New("duplicate uid")
)

// SchemaError reports a property assignment or lookup that violates the
// class schema.
type SchemaError struct {
	Class    Class
	Property string
	Reason   string
}

func (e *SchemaError) Error() string {
	if e.Property == "" {
		return fmt.Sprintf("schema violation: %s: %s", e.Class, e.Reason)
	}
	return fmt.Sprintf("schema violation: %s.%s: %s", e.Class, e.Property, e.Reason)
}

func (e *SchemaError) Unwrap() error {
	return ErrSchemaViolation
}

// DuplicateUIDError reports an identifier collision within a model.
type DuplicateUIDError struct {
	UID string
}

func (e *DuplicateUIDError) Error() string {
	return fmt.Sprintf("duplicate uid: %q already present in model", e.UID)
}

func (e *DuplicateUIDError) Unwrap() error {
	return ErrDuplicateUID
}

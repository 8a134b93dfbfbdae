// Package parsererror defines the typed errors shared by the statement
// parsers. Callers distinguish failure kinds with errors.As: structural
// violations, integrity (reconciliation) violations and unsupported format
// features each have their own type.
package parsererror

import "fmt"

// ParseError represents a field-level decoding failure, such as a malformed
// date or a non-numeric amount.
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// StructureError represents a structural violation in a record stream: an
// unexpected record code at a required position, or a section missing a
// structurally required collection.
type StructureError struct {
	Expected string
	Actual   string
	Msg      string
}

func (e *StructureError) Error() string {
	if e.Expected != "" {
		return fmt.Sprintf("expected record code %s, got %s instead", e.Expected, e.Actual)
	}
	return e.Msg
}

// IntegrityError represents a reconciliation failure: a declared count or
// control total that does not match the value derived from the parsed tree.
type IntegrityError struct {
	Entity   string
	Check    string
	Expected string
	Actual   string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("invalid %s for %s: expected %s, found %s",
		e.Check, e.Entity, e.Expected, e.Actual)
}

// UnsupportedFormatError represents input that is recognizable but outside
// the supported subset of the format, such as an unknown statement version
// or a type code absent from the registry.
type UnsupportedFormatError struct {
	Msg string
}

func (e *UnsupportedFormatError) Error() string {
	return e.Msg
}

// ValidationError represents a schema validation failure on a normalized
// output row.
type ValidationError struct {
	FilePath string
	Reason   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.FilePath, e.Reason)
}

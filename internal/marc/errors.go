package marc

import (
	"fmt"
)

// MalformedLeaderError reports a unit too short to hold a leader or whose
// directory width digits are not numeric.
type MalformedLeaderError struct {
	Leader string
	Reason string
}

func (e *MalformedLeaderError) Error() string {
	return fmt.Sprintf("marc: malformed leader %q: %s", e.Leader, e.Reason)
}

// MalformedDirectoryError reports a directory entry whose starting position
// cannot be read.
type MalformedDirectoryError struct {
	Entry string
}

func (e *MalformedDirectoryError) Error() string {
	return fmt.Sprintf("marc: malformed directory entry %q", e.Entry)
}

// FieldCountMismatchError reports a directory that does not describe the
// payload that follows it.
type FieldCountMismatchError struct {
	DirectoryEntries int
	Fields           int
}

func (e *FieldCountMismatchError) Error() string {
	return fmt.Sprintf("marc: directory has %d entries but record has %d fields", e.DirectoryEntries, e.Fields)
}

// SchemaValidationError wraps the structural check failures of a decoded record.
type SchemaValidationError struct {
	Err error
}

func (e *SchemaValidationError) Error() string {
	return "marc: record failed validation: " + e.Err.Error()
}

func (e *SchemaValidationError) Unwrap() error {
	return e.Err
}

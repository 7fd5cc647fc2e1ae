package errors

import (
	"fmt"
	"strings"
)

// NilArgumentError occurs when a required argument to an operation is nil
type NilArgumentError struct{ Name string }

// Error returns a textual representation of this NilArgumentError
func (e NilArgumentError) Error() string {
	return fmt.Sprintf("Argument %s must not be nil", e.Name)
}

// MissingColumnError occurs when a referenced column does not exist where
// its presence is required
type MissingColumnError struct {
	Table string
	Name  string
}

// Error returns a textual representation of this MissingColumnError
func (e MissingColumnError) Error() string {
	if len(e.Table) == 0 {
		return fmt.Sprintf("Column %s does not exist", e.Name)
	}
	return fmt.Sprintf("Column %s does not exist in %s", e.Name, e.Table)
}

// DuplicateColumnError occurs when a Table or Schema is defined with a
// repeated column name
type DuplicateColumnError struct{ Name string }

// Error returns a textual representation of this DuplicateColumnError
func (e DuplicateColumnError) Error() string {
	return fmt.Sprintf("Column %s is defined more than once", e.Name)
}

// ConflictingSpecError occurs when a ProjectionSpec both keeps and drops
// the same column
type ConflictingSpecError struct{ Names []string }

// Error returns a textual representation of this ConflictingSpecError
func (e ConflictingSpecError) Error() string {
	return fmt.Sprintf("Columns cannot be both force-kept and force-dropped: %s", strings.Join(e.Names, ", "))
}

// RaggedRowError occurs when a row's cell count does not match a Table's
// column count
type RaggedRowError struct {
	Row      int
	Expected int
	Actual   int
}

// Error returns a textual representation of this RaggedRowError
func (e RaggedRowError) Error() string {
	return fmt.Sprintf("Row %d has %d cells but the table has %d columns", e.Row, e.Actual, e.Expected)
}

// UnsupportedFormatError occurs when a file's extension does not correspond
// to a known table format
type UnsupportedFormatError struct{ Path string }

// Error returns a textual representation of this UnsupportedFormatError
func (e UnsupportedFormatError) Error() string {
	return fmt.Sprintf("File %s is not in a recognized table format", e.Path)
}

// MalformedTableError occurs when table data cannot be parsed into rows
// and columns
type MalformedTableError struct {
	Source string
	Reason string
}

// Error returns a textual representation of this MalformedTableError
func (e MalformedTableError) Error() string {
	return fmt.Sprintf("Malformed table data in %s: %s", e.Source, e.Reason)
}

// UnknownSchemaError occurs when a table name has no registered data model
type UnknownSchemaError struct{ Name string }

// Error returns a textual representation of this UnknownSchemaError
func (e UnknownSchemaError) Error() string {
	return fmt.Sprintf("No data model is registered for table type %s", e.Name)
}

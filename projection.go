package wrangler

import (
	"github.com/go-wrangler/wrangler/errors"
)

// ProjectionSpec adjusts the outcome of a Projection beyond the plain
// intersection of a Table's columns with a Schema's declared fields.
type ProjectionSpec struct {
	ForceKeep      []string // columns to retain even if the Schema does not declare them. Each must exist in the Table.
	ForceDrop      []string // columns to remove even if both the Table and the Schema include them
	PriorityFields []string // columns which must appear first in the result, in this order. Each must survive the projection.
}

// Project returns a new Table containing the intersection of t's columns
// with s's declared fields, adjusted by spec. Columns named in
// spec.PriorityFields come first, in the given order, followed by the
// remaining retained columns in t's original column order. Rows are
// never filtered or altered, and neither input is mutated. Projecting an
// already-projected Table with the same Schema and spec is a no-op.
//
// A nil spec is equivalent to an empty one.
func Project(t Table, s Schema, spec *ProjectionSpec) (Table, error) {
	if t == nil {
		return nil, errors.NilArgumentError{Name: "table"}
	}
	if s == nil {
		return nil, errors.NilArgumentError{Name: "schema"}
	}
	if spec == nil {
		spec = &ProjectionSpec{}
	}
	drop := make(map[string]bool, len(spec.ForceDrop))
	for _, colName := range spec.ForceDrop {
		drop[colName] = true
	}
	var conflicts []string
	for _, colName := range spec.ForceKeep {
		if drop[colName] {
			conflicts = append(conflicts, colName)
		}
	}
	if len(conflicts) > 0 {
		return nil, errors.ConflictingSpecError{Names: conflicts}
	}
	// forced columns must exist - we never synthesize data
	for _, colName := range spec.ForceKeep {
		if !t.HasColumn(colName) {
			return nil, errors.MissingColumnError{Table: s.Name(), Name: colName}
		}
	}
	candidate := make(map[string]bool, t.NumColumns())
	for _, colName := range t.ColumnNames() {
		if s.HasField(colName) && !drop[colName] {
			candidate[colName] = true
		}
	}
	for _, colName := range spec.ForceKeep {
		candidate[colName] = true
	}
	selected := make([]string, 0, len(candidate))
	seen := make(map[string]bool, len(candidate))
	for _, colName := range spec.PriorityFields {
		if !candidate[colName] {
			return nil, errors.MissingColumnError{Table: s.Name(), Name: colName}
		}
		if seen[colName] {
			continue
		}
		selected = append(selected, colName)
		seen[colName] = true
	}
	for _, colName := range t.ColumnNames() {
		if candidate[colName] && !seen[colName] {
			selected = append(selected, colName)
			seen[colName] = true
		}
	}
	return t.Select(selected...)
}

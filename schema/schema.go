package schema

import (
	"github.com/go-wrangler/wrangler"
	"github.com/go-wrangler/wrangler/errors"
)

// schema is an ordered set of declared field names
type schema struct {
	name   string
	fields []string
	index  map[string]int
}

// Create is a factory for Schemas, declaring the named fields in the
// given order
func Create(name string, fieldNames ...string) (wrangler.Schema, error) {
	index := make(map[string]int, len(fieldNames))
	for i, fieldName := range fieldNames {
		if _, exists := index[fieldName]; exists {
			return nil, errors.DuplicateColumnError{Name: fieldName}
		}
		index[fieldName] = i
	}
	fields := make([]string, len(fieldNames))
	copy(fields, fieldNames)
	return &schema{name: name, fields: fields, index: index}, nil
}

// Name returns the name of the table type this Schema describes
func (s *schema) Name() string {
	return s.name
}

// FieldNames returns the declared field names, in declaration order
func (s *schema) FieldNames() []string {
	fields := make([]string, len(s.fields))
	copy(fields, s.fields)
	return fields
}

// NumFields returns the number of declared fields
func (s *schema) NumFields() int {
	return len(s.fields)
}

// HasField returns true iff this Schema declares a field with the given name
func (s *schema) HasField(fieldName string) bool {
	_, exists := s.index[fieldName]
	return exists
}

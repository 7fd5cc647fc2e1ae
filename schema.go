package wrangler

// Schema is an ordered set of declared field names which a Table of a
// given type is expected to conform to. Schemas are read-only - they are
// declared once (see the schema package for the canonical roadway and
// transit models) and consulted during projection.
type Schema interface {
	Name() string                   // Name returns the name of the table type this Schema describes
	FieldNames() []string           // FieldNames returns the declared field names, in declaration order
	NumFields() int                 // NumFields returns the number of declared fields
	HasField(fieldName string) bool // HasField returns true iff this Schema declares a field with the given name
}

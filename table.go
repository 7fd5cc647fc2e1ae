package wrangler

// Table is an in-memory collection of named columns of uniform length.
// Tables are treated as immutable once constructed: operations which
// reduce or reorder columns return a new Table rather than modifying
// the receiver.
type Table interface {
	ColumnNames() []string                        // ColumnNames returns the names of this Table's columns, in column order
	NumColumns() int                              // NumColumns returns the number of columns in this Table
	NumRows() int                                 // NumRows returns the number of rows in this Table
	HasColumn(colName string) bool                // HasColumn returns true iff this Table contains a column with the given name
	Column(colName string) ([]interface{}, error) // Column returns the cell values of the named column, in row order. Missing cells are nil.
	Select(colNames ...string) (Table, error)     // Select returns a new Table containing exactly the named columns, in the given order, with all rows unchanged
	Fingerprint() uint64                          // Fingerprint returns a hash of this Table's column names and cell values
	Equals(other Table) error                     // Equals returns nil iff this and another Table have identical columns, order and cell values
}

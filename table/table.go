package table

import (
	"fmt"
	"reflect"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/go-wrangler/wrangler"
	"github.com/go-wrangler/wrangler/errors"
)

// table is a column-major, in-memory implementation of wrangler.Table.
// Cell values are interface{}, with nil representing a missing value.
type table struct {
	names []string
	index map[string]int
	cols  [][]interface{}
	rows  int
}

// CreateTable is a factory for Tables, returning an empty Table with the
// given column names
func CreateTable(colNames ...string) (wrangler.Table, error) {
	index := make(map[string]int, len(colNames))
	cols := make([][]interface{}, len(colNames))
	for i, name := range colNames {
		if _, exists := index[name]; exists {
			return nil, errors.DuplicateColumnError{Name: name}
		}
		index[name] = i
		cols[i] = make([]interface{}, 0)
	}
	names := make([]string, len(colNames))
	copy(names, colNames)
	return &table{names: names, index: index, cols: cols}, nil
}

// FromRows builds a Table from row-major data. Every row must have
// exactly one cell per column.
func FromRows(colNames []string, rows [][]interface{}) (wrangler.Table, error) {
	result, err := CreateTable(colNames...)
	if err != nil {
		return nil, err
	}
	t := result.(*table)
	for i := range t.cols {
		t.cols[i] = make([]interface{}, 0, len(rows))
	}
	for i, row := range rows {
		if len(row) != len(t.names) {
			return nil, errors.RaggedRowError{Row: i, Expected: len(t.names), Actual: len(row)}
		}
		for j, cell := range row {
			t.cols[j] = append(t.cols[j], cell)
		}
		t.rows++
	}
	return t, nil
}

// FromColumns builds a Table from column-major data. Every column must
// have the same number of cells.
func FromColumns(colNames []string, cols [][]interface{}) (wrangler.Table, error) {
	if len(colNames) != len(cols) {
		return nil, errors.MalformedTableError{Source: "columns", Reason: fmt.Sprintf("%d names for %d columns", len(colNames), len(cols))}
	}
	result, err := CreateTable(colNames...)
	if err != nil {
		return nil, err
	}
	t := result.(*table)
	for i, col := range cols {
		if i > 0 && len(col) != len(cols[0]) {
			return nil, errors.MalformedTableError{Source: colNames[i], Reason: fmt.Sprintf("column has %d cells, expected %d", len(col), len(cols[0]))}
		}
		t.cols[i] = make([]interface{}, len(col))
		copy(t.cols[i], col)
	}
	if len(cols) > 0 {
		t.rows = len(cols[0])
	}
	return t, nil
}

// ColumnNames returns the names of this Table's columns, in column order
func (t *table) ColumnNames() []string {
	names := make([]string, len(t.names))
	copy(names, t.names)
	return names
}

// NumColumns returns the number of columns in this Table
func (t *table) NumColumns() int {
	return len(t.names)
}

// NumRows returns the number of rows in this Table
func (t *table) NumRows() int {
	return t.rows
}

// HasColumn returns true iff this Table contains a column with the given name
func (t *table) HasColumn(colName string) bool {
	_, exists := t.index[colName]
	return exists
}

// Column returns the cell values of the named column, in row order
func (t *table) Column(colName string) ([]interface{}, error) {
	i, exists := t.index[colName]
	if !exists {
		return nil, errors.MissingColumnError{Name: colName}
	}
	cells := make([]interface{}, len(t.cols[i]))
	copy(cells, t.cols[i])
	return cells, nil
}

// Select returns a new Table containing exactly the named columns, in the
// given order, with all rows unchanged
func (t *table) Select(colNames ...string) (wrangler.Table, error) {
	result, err := CreateTable(colNames...)
	if err != nil {
		return nil, err
	}
	selected := result.(*table)
	for i, name := range colNames {
		src, exists := t.index[name]
		if !exists {
			return nil, errors.MissingColumnError{Name: name}
		}
		selected.cols[i] = make([]interface{}, len(t.cols[src]))
		copy(selected.cols[i], t.cols[src])
	}
	selected.rows = t.rows
	return selected, nil
}

// Fingerprint returns a hash of this Table's column names and cell values.
// Tables with identical columns, order and cells hash identically.
func (t *table) Fingerprint() uint64 {
	digest := xxhash.New()
	for i, name := range t.names {
		digest.WriteString(name)
		digest.Write([]byte{0x1f})
		for _, cell := range t.cols[i] {
			if cell == nil {
				digest.Write([]byte{0x00})
			} else {
				digest.WriteString(fmt.Sprint(cell))
			}
			digest.Write([]byte{0x1e})
		}
	}
	return digest.Sum64()
}

// Equals returns nil iff this and another Table have identical columns,
// order and cell values
func (t *table) Equals(other wrangler.Table) error {
	if other == nil {
		return errors.NilArgumentError{Name: "other"}
	}
	otherNames := other.ColumnNames()
	if len(otherNames) != len(t.names) {
		return fmt.Errorf("Tables have unequal numbers of columns")
	}
	for i, name := range t.names {
		if otherNames[i] != name {
			return fmt.Errorf("Column %d is named %s in one table and %s in the other", i, name, otherNames[i])
		}
	}
	if other.NumRows() != t.rows {
		return fmt.Errorf("Tables have unequal numbers of rows")
	}
	for i, name := range t.names {
		otherCol, err := other.Column(name)
		if err != nil {
			return err
		}
		if !reflect.DeepEqual(t.cols[i], otherCol) {
			return fmt.Errorf("Column %s cell values do not match", name)
		}
	}
	return nil
}

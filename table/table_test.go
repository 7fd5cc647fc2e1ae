package table

import (
	"testing"

	"github.com/go-wrangler/wrangler/errors"
	"github.com/stretchr/testify/require"
)

func TestCreateTable(t *testing.T) {
	tbl, err := CreateTable("id", "name")
	require.Nil(t, err)
	require.Equal(t, 2, tbl.NumColumns())
	require.Equal(t, 0, tbl.NumRows())
	require.True(t, tbl.HasColumn("id"))
	require.False(t, tbl.HasColumn("missing"))
}

func TestCreateTableDuplicateColumn(t *testing.T) {
	_, err := CreateTable("id", "id")
	require.NotNil(t, err)
	require.IsType(t, errors.DuplicateColumnError{}, err)
}

func TestFromRows(t *testing.T) {
	tbl, err := FromRows([]string{"id", "name"}, [][]interface{}{
		{1, "first"},
		{2, nil},
	})
	require.Nil(t, err)
	require.Equal(t, 2, tbl.NumRows())
	names, err := tbl.Column("name")
	require.Nil(t, err)
	require.Equal(t, []interface{}{"first", nil}, names)
}

func TestFromRowsRagged(t *testing.T) {
	_, err := FromRows([]string{"id", "name"}, [][]interface{}{
		{1, "first"},
		{2},
	})
	require.NotNil(t, err)
	require.IsType(t, errors.RaggedRowError{}, err)
}

func TestFromColumns(t *testing.T) {
	tbl, err := FromColumns([]string{"id", "name"}, [][]interface{}{
		{1, 2},
		{"first", "second"},
	})
	require.Nil(t, err)
	require.Equal(t, 2, tbl.NumRows())
	ids, err := tbl.Column("id")
	require.Nil(t, err)
	require.Equal(t, []interface{}{1, 2}, ids)
}

func TestFromColumnsUneven(t *testing.T) {
	_, err := FromColumns([]string{"id", "name"}, [][]interface{}{
		{1, 2},
		{"first"},
	})
	require.NotNil(t, err)
	require.IsType(t, errors.MalformedTableError{}, err)
}

func TestSelect(t *testing.T) {
	tbl, err := FromRows([]string{"id", "name", "extra"}, [][]interface{}{
		{1, "first", true},
		{2, "second", false},
	})
	require.Nil(t, err)
	selected, err := tbl.Select("name", "id")
	require.Nil(t, err)
	require.Equal(t, []string{"name", "id"}, selected.ColumnNames())
	require.Equal(t, 2, selected.NumRows())
	ids, err := selected.Column("id")
	require.Nil(t, err)
	require.Equal(t, []interface{}{1, 2}, ids)
	_, err = selected.Column("extra")
	require.NotNil(t, err)
}

func TestSelectMissingColumn(t *testing.T) {
	tbl, err := CreateTable("id")
	require.Nil(t, err)
	_, err = tbl.Select("missing")
	require.NotNil(t, err)
	require.IsType(t, errors.MissingColumnError{}, err)
}

func TestSelectDoesNotAliasSource(t *testing.T) {
	tbl, err := FromRows([]string{"id"}, [][]interface{}{{1}})
	require.Nil(t, err)
	selected, err := tbl.Select("id")
	require.Nil(t, err)
	cells, err := selected.Column("id")
	require.Nil(t, err)
	cells[0] = 99
	original, err := tbl.Column("id")
	require.Nil(t, err)
	require.Equal(t, []interface{}{1}, original)
}

func TestFingerprint(t *testing.T) {
	first, err := FromRows([]string{"id", "name"}, [][]interface{}{{1, "a"}})
	require.Nil(t, err)
	second, err := FromRows([]string{"id", "name"}, [][]interface{}{{1, "a"}})
	require.Nil(t, err)
	require.Equal(t, first.Fingerprint(), second.Fingerprint())

	reordered, err := FromRows([]string{"name", "id"}, [][]interface{}{{"a", 1}})
	require.Nil(t, err)
	require.NotEqual(t, first.Fingerprint(), reordered.Fingerprint())

	changed, err := FromRows([]string{"id", "name"}, [][]interface{}{{2, "a"}})
	require.Nil(t, err)
	require.NotEqual(t, first.Fingerprint(), changed.Fingerprint())
}

func TestEquals(t *testing.T) {
	first, err := FromRows([]string{"id"}, [][]interface{}{{1}, {2}})
	require.Nil(t, err)
	second, err := FromRows([]string{"id"}, [][]interface{}{{1}, {2}})
	require.Nil(t, err)
	require.Nil(t, first.Equals(second))

	shorter, err := FromRows([]string{"id"}, [][]interface{}{{1}})
	require.Nil(t, err)
	require.NotNil(t, first.Equals(shorter))

	renamed, err := FromRows([]string{"other"}, [][]interface{}{{1}, {2}})
	require.Nil(t, err)
	require.NotNil(t, first.Equals(renamed))
}

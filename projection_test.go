package wrangler_test

import (
	"testing"

	"github.com/go-wrangler/wrangler"
	"github.com/go-wrangler/wrangler/errors"
	"github.com/go-wrangler/wrangler/schema"
	"github.com/go-wrangler/wrangler/table"
	"github.com/stretchr/testify/require"
)

func makeTable(t *testing.T, colNames []string, rows [][]interface{}) wrangler.Table {
	tbl, err := table.FromRows(colNames, rows)
	require.Nil(t, err)
	return tbl
}

func makeSchema(t *testing.T, name string, fieldNames ...string) wrangler.Schema {
	s, err := schema.Create(name, fieldNames...)
	require.Nil(t, err)
	return s
}

func TestProjectIntersectsColumnsWithSchema(t *testing.T) {
	tbl := makeTable(t, []string{"A", "B", "C", "D"}, [][]interface{}{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
	})
	s := makeSchema(t, "test_table", "A", "B", "X")
	projected, err := wrangler.Project(tbl, s, nil)
	require.Nil(t, err)
	require.Equal(t, []string{"A", "B"}, projected.ColumnNames())
	require.Equal(t, 2, projected.NumRows())
	col, err := projected.Column("B")
	require.Nil(t, err)
	require.Equal(t, []interface{}{2, 6}, col)
}

func TestProjectForceKeepAndPriority(t *testing.T) {
	tbl := makeTable(t, []string{"A", "B", "C", "D"}, [][]interface{}{
		{1, 2, 3, 4},
	})
	s := makeSchema(t, "test_table", "A", "B", "X")
	projected, err := wrangler.Project(tbl, s, &wrangler.ProjectionSpec{
		ForceKeep:      []string{"C"},
		PriorityFields: []string{"A"},
	})
	require.Nil(t, err)
	require.Equal(t, []string{"A", "B", "C"}, projected.ColumnNames())
}

func TestProjectRoadwayLinkCleaning(t *testing.T) {
	tbl := makeTable(t, []string{"model_link_id", "A", "B", "locationReferences", "geometry"}, [][]interface{}{
		{100, 1, 2, "[]", "{\"type\":\"LineString\"}"},
	})
	s := makeSchema(t, "road_links", "model_link_id", "A", "B", "locationReferences")
	projected, err := wrangler.Project(tbl, s, &wrangler.ProjectionSpec{
		ForceKeep:      []string{"geometry"},
		ForceDrop:      []string{"locationReferences"},
		PriorityFields: []string{"model_link_id", "A", "B"},
	})
	require.Nil(t, err)
	require.Equal(t, []string{"model_link_id", "A", "B", "geometry"}, projected.ColumnNames())
	require.Equal(t, 1, projected.NumRows())
}

func TestProjectIdempotent(t *testing.T) {
	tbl := makeTable(t, []string{"A", "B", "C"}, [][]interface{}{
		{1, 2, 3},
		{4, 5, 6},
	})
	s := makeSchema(t, "test_table", "B", "A")
	spec := &wrangler.ProjectionSpec{PriorityFields: []string{"B"}}
	once, err := wrangler.Project(tbl, s, spec)
	require.Nil(t, err)
	twice, err := wrangler.Project(once, s, spec)
	require.Nil(t, err)
	require.Nil(t, once.Equals(twice))
	require.Equal(t, once.Fingerprint(), twice.Fingerprint())
}

func TestProjectDoesNotMutateInput(t *testing.T) {
	tbl := makeTable(t, []string{"A", "B"}, [][]interface{}{{1, 2}})
	s := makeSchema(t, "test_table", "A")
	fingerprint := tbl.Fingerprint()
	_, err := wrangler.Project(tbl, s, nil)
	require.Nil(t, err)
	require.Equal(t, []string{"A", "B"}, tbl.ColumnNames())
	require.Equal(t, fingerprint, tbl.Fingerprint())
}

func TestProjectEmptySchema(t *testing.T) {
	tbl := makeTable(t, []string{"A", "B"}, [][]interface{}{{1, 2}})
	s := makeSchema(t, "empty_table")
	projected, err := wrangler.Project(tbl, s, nil)
	require.Nil(t, err)
	require.Equal(t, 0, projected.NumColumns())
	require.Equal(t, []string{}, projected.ColumnNames())
}

func TestProjectZeroRows(t *testing.T) {
	tbl := makeTable(t, []string{"A", "B", "C"}, nil)
	s := makeSchema(t, "test_table", "C", "A")
	projected, err := wrangler.Project(tbl, s, nil)
	require.Nil(t, err)
	require.Equal(t, []string{"A", "C"}, projected.ColumnNames())
	require.Equal(t, 0, projected.NumRows())
}

func TestProjectForceDropBeatsSchema(t *testing.T) {
	tbl := makeTable(t, []string{"A", "B"}, [][]interface{}{{1, 2}})
	s := makeSchema(t, "test_table", "A", "B")
	projected, err := wrangler.Project(tbl, s, &wrangler.ProjectionSpec{ForceDrop: []string{"B"}})
	require.Nil(t, err)
	require.Equal(t, []string{"A"}, projected.ColumnNames())
}

func TestProjectForceKeepMissingColumn(t *testing.T) {
	tbl := makeTable(t, []string{"A"}, [][]interface{}{{1}})
	s := makeSchema(t, "test_table", "A")
	_, err := wrangler.Project(tbl, s, &wrangler.ProjectionSpec{ForceKeep: []string{"Z"}})
	require.NotNil(t, err)
	require.IsType(t, errors.MissingColumnError{}, err)
}

func TestProjectPriorityFieldDropped(t *testing.T) {
	tbl := makeTable(t, []string{"A", "B"}, [][]interface{}{{1, 2}})
	s := makeSchema(t, "test_table", "A", "B")
	_, err := wrangler.Project(tbl, s, &wrangler.ProjectionSpec{
		ForceDrop:      []string{"A"},
		PriorityFields: []string{"A"},
	})
	require.NotNil(t, err)
	require.IsType(t, errors.MissingColumnError{}, err)
}

func TestProjectConflictingSpec(t *testing.T) {
	tbl := makeTable(t, []string{"A", "B"}, [][]interface{}{{1, 2}})
	s := makeSchema(t, "test_table", "A", "B")
	_, err := wrangler.Project(tbl, s, &wrangler.ProjectionSpec{
		ForceKeep: []string{"B"},
		ForceDrop: []string{"B"},
	})
	require.NotNil(t, err)
	require.IsType(t, errors.ConflictingSpecError{}, err)
}

func TestProjectNilArguments(t *testing.T) {
	tbl := makeTable(t, []string{"A"}, [][]interface{}{{1}})
	s := makeSchema(t, "test_table", "A")
	_, err := wrangler.Project(nil, s, nil)
	require.NotNil(t, err)
	require.IsType(t, errors.NilArgumentError{}, err)
	_, err = wrangler.Project(tbl, nil, nil)
	require.NotNil(t, err)
	require.IsType(t, errors.NilArgumentError{}, err)
}

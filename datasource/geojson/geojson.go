// Package geojson reads and writes roadway tables stored as GeoJSON
// FeatureCollections, or as flat JSON record arrays (the geometry-free
// "json" flavor of the roadway standard).
package geojson

import (
	"encoding/json"
	"io"

	"github.com/go-wrangler/wrangler"
	"github.com/go-wrangler/wrangler/errors"
	"github.com/go-wrangler/wrangler/table"
	"github.com/tidwall/gjson"
)

// GeometryColumn is the name of the column holding raw GeoJSON geometry
const GeometryColumn = "geometry"

// ReadFeatures parses a GeoJSON FeatureCollection into a Table. Each
// feature property becomes a column, in first-seen order, with the raw
// geometry stored last under the geometry column. Properties absent from
// a feature load as nil cells.
func ReadFeatures(data []byte) (wrangler.Table, error) {
	parsed := gjson.ParseBytes(data)
	features := parsed.Get("features")
	if !features.IsArray() {
		return nil, errors.MalformedTableError{Source: "geojson", Reason: "missing features array"}
	}
	var names []string
	index := make(map[string]int)
	var cells []map[string]interface{}
	features.ForEach(func(_, feature gjson.Result) bool {
		row := make(map[string]interface{})
		feature.Get("properties").ForEach(func(key, value gjson.Result) bool {
			name := key.String()
			if _, exists := index[name]; !exists {
				index[name] = len(names)
				names = append(names, name)
			}
			row[name] = cellValue(value)
			return true
		})
		if geometry := feature.Get("geometry"); geometry.Exists() {
			row[GeometryColumn] = json.RawMessage(geometry.Raw)
		}
		cells = append(cells, row)
		return true
	})
	if _, exists := index[GeometryColumn]; !exists {
		names = append(names, GeometryColumn)
	}
	return assemble(names, cells)
}

// ReadRecords parses a flat JSON array of records into a Table, with
// columns in first-seen order
func ReadRecords(data []byte) (wrangler.Table, error) {
	parsed := gjson.ParseBytes(data)
	if !parsed.IsArray() {
		return nil, errors.MalformedTableError{Source: "json", Reason: "expected a top-level array of records"}
	}
	var names []string
	index := make(map[string]int)
	var cells []map[string]interface{}
	parsed.ForEach(func(_, record gjson.Result) bool {
		row := make(map[string]interface{})
		record.ForEach(func(key, value gjson.Result) bool {
			name := key.String()
			if _, exists := index[name]; !exists {
				index[name] = len(names)
				names = append(names, name)
			}
			row[name] = cellValue(value)
			return true
		})
		cells = append(cells, row)
		return true
	})
	return assemble(names, cells)
}

// Parse reads either supported JSON flavor, preferring the
// FeatureCollection form when a features array is present
func Parse(r io.Reader) (wrangler.Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if gjson.GetBytes(data, "features").IsArray() {
		return ReadFeatures(data)
	}
	return ReadRecords(data)
}

// WriteFeatures serializes a Table as a GeoJSON FeatureCollection. The
// Table must contain a geometry column; all other columns become feature
// properties. Nil cells are omitted.
func WriteFeatures(w io.Writer, t wrangler.Table) error {
	if t == nil {
		return errors.NilArgumentError{Name: "table"}
	}
	if !t.HasColumn(GeometryColumn) {
		return errors.MissingColumnError{Name: GeometryColumn}
	}
	names := t.ColumnNames()
	cols, err := materialize(t, names)
	if err != nil {
		return err
	}
	type feature struct {
		Type       string                 `json:"type"`
		Properties map[string]interface{} `json:"properties"`
		Geometry   json.RawMessage        `json:"geometry"`
	}
	featureCollection := struct {
		Type     string    `json:"type"`
		Features []feature `json:"features"`
	}{Type: "FeatureCollection", Features: make([]feature, 0, t.NumRows())}
	for row := 0; row < t.NumRows(); row++ {
		f := feature{Type: "Feature", Properties: make(map[string]interface{})}
		for i, name := range names {
			cell := cols[i][row]
			if name == GeometryColumn {
				f.Geometry = rawGeometry(cell)
				continue
			}
			if cell != nil {
				f.Properties[name] = cell
			}
		}
		featureCollection.Features = append(featureCollection.Features, f)
	}
	encoder := json.NewEncoder(w)
	return encoder.Encode(&featureCollection)
}

// WriteRecords serializes a Table as a flat JSON array of records. Nil
// cells are omitted.
func WriteRecords(w io.Writer, t wrangler.Table) error {
	if t == nil {
		return errors.NilArgumentError{Name: "table"}
	}
	names := t.ColumnNames()
	cols, err := materialize(t, names)
	if err != nil {
		return err
	}
	records := make([]map[string]interface{}, 0, t.NumRows())
	for row := 0; row < t.NumRows(); row++ {
		record := make(map[string]interface{})
		for i, name := range names {
			if cell := cols[i][row]; cell != nil {
				record[name] = cell
			}
		}
		records = append(records, record)
	}
	encoder := json.NewEncoder(w)
	return encoder.Encode(records)
}

// cellValue converts a parsed JSON value to a table cell. Scalars map to
// their Go equivalents; objects and arrays are kept as raw JSON so they
// round-trip without reshaping.
func cellValue(value gjson.Result) interface{} {
	if value.Type == gjson.Null {
		return nil
	}
	if value.IsObject() || value.IsArray() {
		return json.RawMessage(value.Raw)
	}
	return value.Value()
}

func rawGeometry(cell interface{}) json.RawMessage {
	switch v := cell.(type) {
	case nil:
		return json.RawMessage("null")
	case json.RawMessage:
		return v
	case []byte:
		return json.RawMessage(v)
	case string:
		return json.RawMessage(v)
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return json.RawMessage("null")
		}
		return encoded
	}
}

func materialize(t wrangler.Table, names []string) ([][]interface{}, error) {
	cols := make([][]interface{}, len(names))
	for i, name := range names {
		col, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		cols[i] = col
	}
	return cols, nil
}

func assemble(names []string, cells []map[string]interface{}) (wrangler.Table, error) {
	rows := make([][]interface{}, len(cells))
	for i, rowCells := range cells {
		row := make([]interface{}, len(names))
		for j, name := range names {
			row[j] = rowCells[name]
		}
		rows[i] = row
	}
	return table.FromRows(names, rows)
}

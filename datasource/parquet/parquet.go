// Package parquet writes tables to the parquet format via Apache Arrow.
// Column types are inferred from cell values: a column whose non-nil
// cells are all integers becomes int64, all numbers becomes float64,
// all booleans becomes boolean, and anything else becomes utf8.
package parquet

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/apache/arrow/go/v15/arrow"
	"github.com/apache/arrow/go/v15/arrow/array"
	"github.com/apache/arrow/go/v15/arrow/memory"
	"github.com/apache/arrow/go/v15/parquet"
	"github.com/apache/arrow/go/v15/parquet/pqarrow"
	"github.com/go-wrangler/wrangler"
	"github.com/go-wrangler/wrangler/errors"
)

// Write serializes a Table as a parquet file
func Write(w io.Writer, t wrangler.Table) error {
	if t == nil {
		return errors.NilArgumentError{Name: "table"}
	}
	names := t.ColumnNames()
	cols := make([][]interface{}, len(names))
	fields := make([]arrow.Field, len(names))
	for i, name := range names {
		col, err := t.Column(name)
		if err != nil {
			return err
		}
		cols[i] = col
		fields[i] = arrow.Field{Name: name, Type: inferType(col), Nullable: true}
	}
	pool := memory.NewGoAllocator()
	arrowSchema := arrow.NewSchema(fields, nil)
	builder := array.NewRecordBuilder(pool, arrowSchema)
	defer builder.Release()
	for i := range names {
		if err := appendColumn(builder.Field(i), cols[i]); err != nil {
			return err
		}
	}
	record := builder.NewRecord()
	defer record.Release()
	arrowTable := array.NewTableFromRecords(arrowSchema, []arrow.Record{record})
	defer arrowTable.Release()
	chunkSize := int64(t.NumRows())
	if chunkSize == 0 {
		chunkSize = 1
	}
	return pqarrow.WriteTable(arrowTable, w, chunkSize, parquet.NewWriterProperties(), pqarrow.DefaultWriterProps())
}

func inferType(cells []interface{}) arrow.DataType {
	isInt, isFloat, isBool := true, true, true
	sawValue := false
	for _, cell := range cells {
		if cell == nil {
			continue
		}
		sawValue = true
		switch v := cell.(type) {
		case bool:
			isInt, isFloat = false, false
		case int, int64:
			isBool = false
		case float64:
			isBool = false
			if v != float64(int64(v)) {
				isInt = false
			}
		case string:
			if _, err := strconv.ParseInt(v, 10, 64); err != nil {
				isInt = false
			}
			if _, err := strconv.ParseFloat(v, 64); err != nil {
				isFloat = false
			}
			if v != "true" && v != "false" {
				isBool = false
			}
		default:
			return arrow.BinaryTypes.String
		}
		if !isInt && !isFloat && !isBool {
			return arrow.BinaryTypes.String
		}
	}
	if !sawValue {
		return arrow.BinaryTypes.String
	}
	if isBool {
		return arrow.FixedWidthTypes.Boolean
	}
	if isInt {
		return arrow.PrimitiveTypes.Int64
	}
	if isFloat {
		return arrow.PrimitiveTypes.Float64
	}
	return arrow.BinaryTypes.String
}

func appendColumn(builder array.Builder, cells []interface{}) error {
	for _, cell := range cells {
		if cell == nil {
			builder.AppendNull()
			continue
		}
		switch b := builder.(type) {
		case *array.Int64Builder:
			v, err := toInt64(cell)
			if err != nil {
				return err
			}
			b.Append(v)
		case *array.Float64Builder:
			v, err := toFloat64(cell)
			if err != nil {
				return err
			}
			b.Append(v)
		case *array.BooleanBuilder:
			v, err := toBool(cell)
			if err != nil {
				return err
			}
			b.Append(v)
		case *array.StringBuilder:
			b.Append(toString(cell))
		default:
			return fmt.Errorf("unsupported arrow builder %T", builder)
		}
	}
	return nil
}

func toInt64(cell interface{}) (int64, error) {
	switch v := cell.(type) {
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case float64:
		return int64(v), nil
	case string:
		return strconv.ParseInt(v, 10, 64)
	}
	return 0, fmt.Errorf("cannot convert %T to int64", cell)
}

func toFloat64(cell interface{}) (float64, error) {
	switch v := cell.(type) {
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case float64:
		return v, nil
	case string:
		return strconv.ParseFloat(v, 64)
	}
	return 0, fmt.Errorf("cannot convert %T to float64", cell)
}

func toBool(cell interface{}) (bool, error) {
	switch v := cell.(type) {
	case bool:
		return v, nil
	case string:
		return strconv.ParseBool(v)
	}
	return false, fmt.Errorf("cannot convert %T to bool", cell)
}

func toString(cell interface{}) string {
	switch v := cell.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case json.RawMessage:
		return string(v)
	default:
		return fmt.Sprint(v)
	}
}

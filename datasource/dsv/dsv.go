// Package dsv reads and writes tables stored as delimiter-separated
// values, such as the .txt files of a GTFS feed. The first unskipped
// line is taken as the column header.
package dsv

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-wrangler/wrangler"
	"github.com/go-wrangler/wrangler/errors"
	"github.com/go-wrangler/wrangler/table"
)

// ParserConf configures a DSV Parser
type ParserConf struct {
	Delimiter   rune   // The delimiter separating columns in the file. Defaults to ,
	Comment     rune   // Lines beginning with the comment character are ignored. Cannot be equal to the Delimiter. Defaults to no comment character.
	NilValue    string // A special string which represents nil values in the data. Defaults to "" (the empty string).
	HeaderLines int    // The number of lines to ignore before the column header. Defaults to 0.
}

// Parser reads and writes Tables as DSV data
type Parser struct {
	conf *ParserConf
}

// CreateParser returns a new DSV Parser
func CreateParser(conf *ParserConf) *Parser {
	if conf == nil {
		conf = &ParserConf{}
	}
	if conf.Delimiter == 0 {
		conf.Delimiter = ','
	}
	return &Parser{conf: conf}
}

// Parse reads DSV data into a Table. Cell values are strings, with
// empty cells (or cells equal to the configured NilValue) loaded as nil.
func (p *Parser) Parse(r io.Reader) (wrangler.Table, error) {
	reader := csv.NewReader(r)
	reader.Comma = p.conf.Delimiter
	reader.Comment = p.conf.Comment
	reader.TrimLeadingSpace = true

	for i := 0; i < p.conf.HeaderLines; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}
	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.MalformedTableError{Source: "dsv", Reason: "no header row"}
	} else if err != nil {
		return nil, err
	}
	var rows [][]interface{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		row := make([]interface{}, len(record))
		for i, cell := range record {
			if len(cell) == 0 || cell == p.conf.NilValue {
				row[i] = nil
			} else {
				row[i] = cell
			}
		}
		rows = append(rows, row)
	}
	return table.FromRows(header, rows)
}

// Write serializes a Table as DSV data, with a header row of column names.
// Nil cells are written as the configured NilValue.
func (p *Parser) Write(w io.Writer, t wrangler.Table) error {
	if t == nil {
		return errors.NilArgumentError{Name: "table"}
	}
	writer := csv.NewWriter(w)
	writer.Comma = p.conf.Delimiter
	names := t.ColumnNames()
	if err := writer.Write(names); err != nil {
		return err
	}
	cols := make([][]interface{}, len(names))
	for i, name := range names {
		col, err := t.Column(name)
		if err != nil {
			return err
		}
		cols[i] = col
	}
	record := make([]string, len(names))
	for row := 0; row < t.NumRows(); row++ {
		for i := range names {
			record[i] = formatCell(cols[i][row], p.conf.NilValue)
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func formatCell(cell interface{}, nilValue string) string {
	switch v := cell.(type) {
	case nil:
		return nilValue
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

package dsv

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	data := "trip_id,route_id,headway_secs\nt1,r1,600\nt2,r2,\n"
	parsed, err := CreateParser(nil).Parse(strings.NewReader(data))
	require.Nil(t, err)
	require.Equal(t, []string{"trip_id", "route_id", "headway_secs"}, parsed.ColumnNames())
	require.Equal(t, 2, parsed.NumRows())
	headways, err := parsed.Column("headway_secs")
	require.Nil(t, err)
	require.Equal(t, []interface{}{"600", nil}, headways)
}

func TestParseCustomDelimiterAndNilValue(t *testing.T) {
	data := "stop_id|stop_name\ns1|NA\ns2|Main St\n"
	parser := CreateParser(&ParserConf{Delimiter: '|', NilValue: "NA"})
	parsed, err := parser.Parse(strings.NewReader(data))
	require.Nil(t, err)
	names, err := parsed.Column("stop_name")
	require.Nil(t, err)
	require.Equal(t, []interface{}{nil, "Main St"}, names)
}

func TestParseHeaderLines(t *testing.T) {
	data := "generated by wrangler\nstop_id\ns1\n"
	parser := CreateParser(&ParserConf{HeaderLines: 1})
	parsed, err := parser.Parse(strings.NewReader(data))
	require.Nil(t, err)
	require.Equal(t, []string{"stop_id"}, parsed.ColumnNames())
	require.Equal(t, 1, parsed.NumRows())
}

func TestParseEmptyInput(t *testing.T) {
	_, err := CreateParser(nil).Parse(strings.NewReader(""))
	require.NotNil(t, err)
}

func TestWriteRoundTrip(t *testing.T) {
	data := "trip_id,start_time,end_time,headway_secs\nt1,06:00:00,09:00:00,300\nt1,09:00:00,15:00:00,\n"
	parser := CreateParser(nil)
	parsed, err := parser.Parse(strings.NewReader(data))
	require.Nil(t, err)

	var buf bytes.Buffer
	require.Nil(t, parser.Write(&buf, parsed))
	reparsed, err := parser.Parse(strings.NewReader(buf.String()))
	require.Nil(t, err)
	require.Nil(t, parsed.Equals(reparsed))
}

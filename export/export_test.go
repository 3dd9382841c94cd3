package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/justin4957/UNStatsExplorer/table"
)

func sampleResult() table.Result {
	return table.Result{
		Columns: []string{"GeoAreaName", "TimePeriod", "Value"},
		Rows: []table.Row{
			{
				"GeoAreaName": table.String("Afghanistan"),
				"TimePeriod":  table.Number(2015),
				"Value":       table.Number(13.8),
			},
			{
				"GeoAreaName": table.String("Albania"),
				"TimePeriod":  table.Number(2016),
				"Value":       table.Missing(),
			},
		},
	}
}

func TestWriteFileCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, WriteFile(path, sampleResult()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 3, "header plus two data rows")
	assert.Equal(t, []string{"GeoAreaName", "TimePeriod", "Value"}, records[0])
	assert.Equal(t, []string{"Afghanistan", "2015", "13.8"}, records[1])
	assert.Equal(t, "", records[2][2], "missing cell is an empty field")
}

func TestWriteFileJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, WriteFile(path, sampleResult()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(data, &rows))

	require.Len(t, rows, 2)
	assert.Equal(t, "Afghanistan", rows[0]["GeoAreaName"])
	assert.Equal(t, 13.8, rows[0]["Value"])
	assert.Equal(t, 2015.0, rows[0]["TimePeriod"])
	assert.Nil(t, rows[1]["Value"], "missing cell is null")
}

func TestWriteFileJSONEmptyResult(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, WriteFile(path, table.Result{Columns: []string{"Code"}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(data, &rows))
	assert.Empty(t, rows)
}

func TestWriteFileArrow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.arrow")
	require.NoError(t, WriteFile(path, sampleResult()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	fr, err := ipc.NewFileReader(f)
	require.NoError(t, err)
	defer fr.Close()

	schema := fr.Schema()
	require.Equal(t, 3, len(schema.Fields()))
	assert.Equal(t, "GeoAreaName", schema.Field(0).Name)
	assert.Equal(t, arrow.STRING, schema.Field(0).Type.ID(), "text column stays string")
	assert.Equal(t, arrow.FLOAT64, schema.Field(1).Type.ID(), "numeric column becomes float64")
	assert.Equal(t, arrow.FLOAT64, schema.Field(2).Type.ID())

	require.Equal(t, 1, fr.NumRecords())
	rec, err := fr.Read()
	require.NoError(t, err)
	require.EqualValues(t, 2, rec.NumRows())

	names := rec.Column(0).(*array.String)
	assert.Equal(t, "Afghanistan", names.Value(0))
	assert.Equal(t, "Albania", names.Value(1))

	values := rec.Column(2).(*array.Float64)
	assert.Equal(t, 13.8, values.Value(0))
	assert.True(t, values.IsNull(1), "missing cell is a null, not a zero")
}

func TestWriteFileExcel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, WriteFile(path, sampleResult()))

	wb, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer wb.Close()

	assert.Equal(t, []string{"Data"}, wb.GetSheetList())

	header, err := wb.GetCellValue("Data", "A1")
	require.NoError(t, err)
	assert.Equal(t, "GeoAreaName", header)

	value, err := wb.GetCellValue("Data", "C2")
	require.NoError(t, err)
	assert.Equal(t, "13.8", value)

	missing, err := wb.GetCellValue("Data", "C3")
	require.NoError(t, err)
	assert.Equal(t, "", missing)
}

func TestWriteFileUnsupported(t *testing.T) {
	tests := []struct {
		path    string
		wantExt string
	}{
		{path: "out.txt", wantExt: ".txt"},
		{path: "out", wantExt: ""},
		{path: "out.parquet", wantExt: ".parquet"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			err := WriteFile(tt.path, sampleResult())
			var formatErr *UnsupportedFormatError
			require.ErrorAs(t, err, &formatErr)
			assert.Equal(t, tt.wantExt, formatErr.Ext)
		})
	}
}

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()

	t.Run("all destinations written", func(t *testing.T) {
		paths := []string{
			filepath.Join(dir, "a.csv"),
			filepath.Join(dir, "b.json"),
			filepath.Join(dir, "c.xlsx"),
		}
		require.NoError(t, WriteFiles(paths, sampleResult()))
		for _, p := range paths {
			_, err := os.Stat(p)
			assert.NoError(t, err, p)
		}
	})

	t.Run("failure names the path", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.txt")
		err := WriteFiles([]string{filepath.Join(dir, "ok.csv"), bad}, sampleResult())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bad.txt")

		var formatErr *UnsupportedFormatError
		assert.ErrorAs(t, err, &formatErr)
	})
}

func TestWriteWorkbook(t *testing.T) {
	goals := table.Result{
		Columns: []string{"GoalCode", "Title"},
		Rows: []table.Row{
			{"GoalCode": table.String("1"), "Title": table.String("No Poverty")},
		},
	}
	areas := table.Result{
		Columns: []string{"GeoAreaCode", "GeoAreaName"},
		Rows: []table.Row{
			{"GeoAreaCode": table.String("4"), "GeoAreaName": table.String("Afghanistan")},
		},
	}

	path := filepath.Join(t.TempDir(), "book.xlsx")
	require.NoError(t, WriteWorkbook(path, map[string]table.Result{
		"goals":    goals,
		"geoareas": areas,
	}))

	wb, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer wb.Close()

	// Sheets come out in name order regardless of map iteration.
	assert.Equal(t, []string{"geoareas", "goals"}, wb.GetSheetList())

	cell, err := wb.GetCellValue("goals", "B2")
	require.NoError(t, err)
	assert.Equal(t, "No Poverty", cell)

	t.Run("non-xlsx destination rejected", func(t *testing.T) {
		err := WriteWorkbook(filepath.Join(t.TempDir(), "book.csv"), map[string]table.Result{"goals": goals})
		var formatErr *UnsupportedFormatError
		require.ErrorAs(t, err, &formatErr)
		assert.Equal(t, ".csv", formatErr.Ext)
	})
}

package export

import (
	"fmt"
	"os"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/justin4957/UNStatsExplorer/table"
)

// writeArrow writes the result as an Arrow IPC file. A column where the
// numeric cells outnumber the string cells becomes float64 (non-numeric
// cells turn into nulls); every other column is string with nulls for
// missing cells.
func writeArrow(path string, res table.Result) error {
	numeric := make([]bool, len(res.Columns))
	fields := make([]arrow.Field, len(res.Columns))
	for i, col := range res.Columns {
		numeric[i] = numericMajority(res.Column(col))
		var dt arrow.DataType = arrow.BinaryTypes.String
		if numeric[i] {
			dt = arrow.PrimitiveTypes.Float64
		}
		fields[i] = arrow.Field{Name: col, Type: dt, Nullable: true}
	}
	schema := arrow.NewSchema(fields, nil)

	mem := memory.NewGoAllocator()
	builder := array.NewRecordBuilder(mem, schema)
	defer builder.Release()

	for _, row := range res.Rows {
		for i, col := range res.Columns {
			cell := row[col]
			if numeric[i] {
				fb := builder.Field(i).(*array.Float64Builder)
				if cell.Kind == table.KindNumber {
					fb.Append(cell.Num)
				} else {
					fb.AppendNull()
				}
				continue
			}
			sb := builder.Field(i).(*array.StringBuilder)
			if cell.IsMissing() {
				sb.AppendNull()
			} else {
				sb.Append(cell.Format())
			}
		}
	}

	rec := builder.NewRecord()
	defer rec.Release()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create Arrow file: %w", err)
	}
	defer f.Close()

	w, err := ipc.NewFileWriter(f, ipc.WithSchema(schema), ipc.WithAllocator(mem))
	if err != nil {
		return fmt.Errorf("failed to create Arrow writer: %w", err)
	}
	if err := w.Write(rec); err != nil {
		w.Close()
		return fmt.Errorf("failed to write Arrow record: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finalize Arrow file: %w", err)
	}
	return nil
}

func numericMajority(cells []table.Value) bool {
	var numbers, texts int
	for _, c := range cells {
		switch c.Kind {
		case table.KindNumber:
			numbers++
		case table.KindString:
			texts++
		}
	}
	return numbers > 0 && numbers >= texts
}

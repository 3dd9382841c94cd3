package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/justin4957/UNStatsExplorer/table"
)

// writeCSV writes a header row followed by formatted cells. Missing cells
// become empty fields.
func writeCSV(path string, res table.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(res.Columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	record := make([]string, len(res.Columns))
	for _, row := range res.Rows {
		for i, col := range res.Columns {
			record[i] = row[col].Format()
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

package export

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/justin4957/UNStatsExplorer/table"
)

// writeJSON writes an array of row objects. Numbers stay numbers and
// missing cells become null.
func writeJSON(path string, res table.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create JSON: %w", err)
	}
	defer f.Close()

	rows := res.Rows
	if rows == nil {
		rows = []table.Row{}
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rows); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// Package export writes results to files, selecting the encoding from the
// destination's extension: .csv, .json, .arrow (Arrow IPC), or .xlsx.
package export

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/justin4957/UNStatsExplorer/table"
)

// UnsupportedFormatError names an extension no encoder exists for.
type UnsupportedFormatError struct {
	Ext string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported export format %q (use .csv, .json, .arrow, or .xlsx)", e.Ext)
}

// WriteFile writes the result to path, dispatching on the extension.
func WriteFile(path string, res table.Result) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return writeCSV(path, res)
	case ".json":
		return writeJSON(path, res)
	case ".arrow":
		return writeArrow(path, res)
	case ".xlsx":
		return writeExcel(path, res)
	default:
		return &UnsupportedFormatError{Ext: filepath.Ext(path)}
	}
}

// WriteFiles writes the same result to several destinations at once. The
// destinations are independent files, so the writes run concurrently; the
// first failure is reported with its path.
func WriteFiles(paths []string, res table.Result) error {
	var g errgroup.Group
	g.SetLimit(4)

	for _, path := range paths {
		g.Go(func() error {
			if err := WriteFile(path, res); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			return nil
		})
	}

	return g.Wait()
}

// WriteWorkbook writes one sheet per result into a single .xlsx workbook,
// sheets ordered by name. Only the xlsx format can hold multiple sheets.
func WriteWorkbook(path string, sheets map[string]table.Result) error {
	if strings.ToLower(filepath.Ext(path)) != ".xlsx" {
		return &UnsupportedFormatError{Ext: filepath.Ext(path)}
	}

	names := make([]string, 0, len(sheets))
	for name := range sheets {
		names = append(names, name)
	}
	sort.Strings(names)

	return writeWorkbook(path, names, sheets)
}

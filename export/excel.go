package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/justin4957/UNStatsExplorer/table"
)

const defaultSheet = "Data"

// writeExcel writes a single-sheet workbook.
func writeExcel(path string, res table.Result) error {
	wb := excelize.NewFile()
	defer wb.Close()

	if err := wb.SetSheetName("Sheet1", defaultSheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	if err := fillSheet(wb, defaultSheet, res); err != nil {
		return err
	}
	if err := wb.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// writeWorkbook writes one sheet per named result.
func writeWorkbook(path string, names []string, sheets map[string]table.Result) error {
	wb := excelize.NewFile()
	defer wb.Close()

	for i, name := range names {
		if i == 0 {
			if err := wb.SetSheetName("Sheet1", name); err != nil {
				return fmt.Errorf("failed to rename sheet: %w", err)
			}
		} else if _, err := wb.NewSheet(name); err != nil {
			return fmt.Errorf("failed to add sheet %q: %w", name, err)
		}
		if err := fillSheet(wb, name, sheets[name]); err != nil {
			return err
		}
	}

	if err := wb.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// fillSheet writes the header row and all cells. Numbers are written as
// numbers so spreadsheet formulas work on them; missing cells stay empty.
func fillSheet(wb *excelize.File, sheet string, res table.Result) error {
	for i, col := range res.Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("failed to address header cell: %w", err)
		}
		if err := wb.SetCellValue(sheet, cell, col); err != nil {
			return fmt.Errorf("failed to write header cell: %w", err)
		}
	}

	for r, row := range res.Rows {
		for i, col := range res.Columns {
			value := row[col]
			if value.IsMissing() {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(i+1, r+2)
			if err != nil {
				return fmt.Errorf("failed to address cell: %w", err)
			}
			if err := wb.SetCellValue(sheet, cell, value.Any()); err != nil {
				return fmt.Errorf("failed to write cell: %w", err)
			}
		}
	}
	return nil
}

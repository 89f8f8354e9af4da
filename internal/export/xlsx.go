package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Sheet1"

// ToXLSX writes rows as a single-sheet workbook at path
func ToXLSX[T any](path string, rows []T) error {
	names, data := Table(rows)

	f := excelize.NewFile()
	defer f.Close()

	header := make([]interface{}, len(names))
	for i, n := range names {
		header[i] = n
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for i, record := range data {
		row := make([]interface{}, len(record))
		for j, v := range record {
			row[j] = v
		}
		axis, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, axis, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	return f.SaveAs(path)
}

package export

import (
	"encoding/csv"
	"io"
)

// ToCSV writes rows as CSV with a header row. Empty input still writes the
// header so the file identifies its columns.
func ToCSV[T any](w io.Writer, rows []T) error {
	names, data := Table(rows)

	writer := csv.NewWriter(w)
	if err := writer.Write(names); err != nil {
		return err
	}
	for _, record := range data {
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

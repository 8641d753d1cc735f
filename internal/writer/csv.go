// Package writer renders a Table back out as CSV. This is the mechanical
// half of the cleaning flow: the engine produces the cleaned table, the
// writer only serializes it.
package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"inspector/internal/table"
)

// WriteCSV writes t to w with a header row. Missing cells render as empty
// fields.
func WriteCSV(w io.Writer, t *table.Table) error {
	cw := csv.NewWriter(w)

	header := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = c.Name
	}
	if len(header) > 0 {
		if err := cw.Write(header); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	rows := t.RowCount()
	rec := make([]string, len(t.Columns))
	for r := 0; r < rows; r++ {
		for c := range t.Columns {
			cell := t.Columns[c].Cells[r]
			if cell.Valid {
				rec[c] = cell.Value
			} else {
				rec[c] = ""
			}
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write row %d: %w", r, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes t to path, creating or truncating the file.
func WriteCSVFile(path string, t *table.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteCSV(f, t); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

package writer

import (
	"bytes"
	"testing"

	"inspector/internal/table"
)

//
// WriteCSV
//

// TestWriteCSV verifies header emission and that missing cells render as
// empty fields.
func TestWriteCSV(t *testing.T) {
	t.Parallel()

	tab := &table.Table{Columns: []table.Column{
		{Name: "id", Cells: []table.Cell{table.String("1"), table.String("2")}},
		{Name: "name", Cells: []table.Cell{table.String("Ana"), table.Missing()}},
	}}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, tab); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	want := "id,name\n1,Ana\n2,\n"
	if got := buf.String(); got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

// TestWriteCSVQuoting verifies fields containing the delimiter survive a
// round trip through encoding/csv quoting.
func TestWriteCSVQuoting(t *testing.T) {
	t.Parallel()

	tab := &table.Table{Columns: []table.Column{
		{Name: "note", Cells: []table.Cell{table.String(`hello, "world"`)}},
	}}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, tab); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	want := "note\n\"hello, \"\"world\"\"\"\n"
	if got := buf.String(); got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

// TestWriteCSVEmptyTable verifies an empty table writes nothing at all.
func TestWriteCSVEmptyTable(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteCSV(&buf, &table.Table{}); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("output = %q, want empty", buf.String())
	}
}

package htmltable

import (
	"strings"
	"testing"
)

//
// Read
//

// TestReadHeaderedTable verifies extraction of a conventional table: th
// header, td body, whitespace-trimmed text, empty cells loading as missing.
func TestReadHeaderedTable(t *testing.T) {
	t.Parallel()

	in := `<html><body>
	<table>
	  <tr><th> id </th><th>city</th></tr>
	  <tr><td>1</td><td>Oslo</td></tr>
	  <tr><td>2</td><td>  </td></tr>
	</table>
	</body></html>`

	tab, err := Read(strings.NewReader(in), "table")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if tab.ColumnCount() != 2 || tab.RowCount() != 2 {
		t.Fatalf("shape = %dx%d, want 2x2", tab.RowCount(), tab.ColumnCount())
	}
	if tab.Columns[0].Name != "id" {
		t.Fatalf("header = %q, want id", tab.Columns[0].Name)
	}
	if got := tab.Columns[1].Cells[0].Value; got != "Oslo" {
		t.Fatalf("cell = %q, want Oslo", got)
	}
	if tab.Columns[1].Cells[1].Valid {
		t.Fatalf("blank cell must load as missing: %+v", tab.Columns[1].Cells[1])
	}
}

// TestReadHeaderFallsBackToTD verifies a table without th cells uses its
// first row as the header.
func TestReadHeaderFallsBackToTD(t *testing.T) {
	t.Parallel()

	in := `<table>
	  <tr><td>a</td><td>b</td></tr>
	  <tr><td>1</td><td>2</td></tr>
	</table>`

	tab, err := Read(strings.NewReader(in), "table")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if tab.Columns[0].Name != "a" || tab.Columns[1].Name != "b" {
		t.Fatalf("headers = %q,%q, want a,b", tab.Columns[0].Name, tab.Columns[1].Name)
	}
	if tab.RowCount() != 1 {
		t.Fatalf("RowCount = %d, want 1", tab.RowCount())
	}
}

// TestReadSkipsRaggedRows verifies rows with the wrong cell count are
// dropped, matching the CSV loader's best-effort behavior.
func TestReadSkipsRaggedRows(t *testing.T) {
	t.Parallel()

	in := `<table>
	  <tr><th>a</th><th>b</th></tr>
	  <tr><td>1</td><td>2</td></tr>
	  <tr><td>colspan-ish</td></tr>
	  <tr><td>3</td><td>4</td></tr>
	</table>`

	tab, err := Read(strings.NewReader(in), "table")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if tab.RowCount() != 2 {
		t.Fatalf("RowCount = %d, want 2", tab.RowCount())
	}
	if got := tab.Columns[0].Cells[1].Value; got != "3" {
		t.Fatalf("cell = %q, want 3", got)
	}
}

// TestReadSelectorPicksTable verifies a CSS selector targets the intended
// table when the page holds several.
func TestReadSelectorPicksTable(t *testing.T) {
	t.Parallel()

	in := `<body>
	<table id="nav"><tr><th>link</th></tr><tr><td>home</td></tr></table>
	<table id="data"><tr><th>value</th></tr><tr><td>42</td></tr></table>
	</body>`

	tab, err := Read(strings.NewReader(in), "table#data")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if tab.Columns[0].Name != "value" {
		t.Fatalf("header = %q, want value", tab.Columns[0].Name)
	}
}

// TestReadNoMatch verifies a selector with no match is an error rather than
// a silent empty table.
func TestReadNoMatch(t *testing.T) {
	t.Parallel()

	if _, err := Read(strings.NewReader("<p>no tables here</p>"), "table"); err == nil {
		t.Fatal("expected error when the selector matches nothing")
	}
}
